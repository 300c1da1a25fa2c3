package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/authgate/internal/dbx"
	"github.com/dmitrijs2005/authgate/internal/server/repositories/users"
)

// InMemoryRepositoryManager backs the service with map-based repositories.
// Used by tests and by handler-level integration setups that need no DB.
type InMemoryRepositoryManager struct {
	users users.Repository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{users: users.NewInMemoryRepository()}
}

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return nil
}

func (m *InMemoryRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return m.users
}
