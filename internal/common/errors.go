// Package common contains sentinel errors and small helpers shared by the
// server and client components.
package common

import "errors"

var (

	// repository specific errors
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// service specific errors
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
)
