package client

import "errors"

var (
	ErrUnavailable   = errors.New("server unavailable")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrUsernameTaken = errors.New("username already exists")
	ErrServer        = errors.New("server error")
)
