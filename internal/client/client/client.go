// Package client implements the transport to the authentication server.
package client

import (
	"context"

	"github.com/dmitrijs2005/authgate/internal/client/models"
)

type Client interface {
	Close() error
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (*models.LoginResponse, error)
	Profile(ctx context.Context, token string) (*models.Profile, error)
}
