// Package users provides storage for credential records.
package users

import (
	"context"

	"github.com/dmitrijs2005/authgate/internal/server/models"
)

// Repository is the credential store contract.
//
// Create must be an atomic insert-if-absent: when a record with the same
// username already exists it returns common.ErrorAlreadyExists, and two
// concurrent Create calls for one username can never both succeed.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByLogin(ctx context.Context, userName string) (*models.User, error)
}
