package users

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/authgate/internal/common"
	"github.com/dmitrijs2005/authgate/internal/server/models"
)

// InMemoryRepository is a mutex-guarded map store used in tests and demos.
// Insert-if-absent happens under one lock, so it upholds the same atomicity
// contract as the UNIQUE constraint in Postgres.
type InMemoryRepository struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{users: make(map[string]*models.User)}
}

func (r *InMemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.UserName]; ok {
		return nil, common.ErrorAlreadyExists
	}

	stored := *user
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	r.users[user.UserName] = &stored

	result := stored
	return &result, nil
}

func (r *InMemoryRepository) GetUserByLogin(ctx context.Context, userName string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userName]
	if !ok {
		return nil, common.ErrorNotFound
	}

	result := *user
	return &result, nil
}
