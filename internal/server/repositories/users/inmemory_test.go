package users

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/dmitrijs2005/authgate/internal/common"
	"github.com/dmitrijs2005/authgate/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemory_CreateAndGet(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, &models.User{ID: "u-1", UserName: "alice@example.com", PasswordHash: "h1"})
	require.NoError(t, err)
	require.False(t, created.CreatedAt.IsZero())

	got, err := repo.GetUserByLogin(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u-1", got.ID)
	assert.Equal(t, "h1", got.PasswordHash)
}

func TestInMemory_CreateDuplicate(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, &models.User{ID: "u-1", UserName: "alice@example.com", PasswordHash: "h1"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &models.User{ID: "u-2", UserName: "alice@example.com", PasswordHash: "h2"})
	require.ErrorIs(t, err, common.ErrorAlreadyExists)

	// the original record is untouched
	got, err := repo.GetUserByLogin(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "h1", got.PasswordHash)
}

func TestInMemory_GetUnknown(t *testing.T) {
	repo := NewInMemoryRepository()

	_, err := repo.GetUserByLogin(context.Background(), "ghost")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

// Two racing registrations for one unseen username: exactly one wins.
func TestInMemory_ConcurrentCreate_OneWinner(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	const workers = 16
	var ok, taken atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := repo.Create(ctx, &models.User{ID: "u", UserName: "race@example.com", PasswordHash: "h"})
			switch {
			case err == nil:
				ok.Add(1)
			case errors.Is(err, common.ErrorAlreadyExists):
				taken.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), ok.Load(), "exactly one Create must succeed")
	assert.Equal(t, int32(workers-1), taken.Load())
}
