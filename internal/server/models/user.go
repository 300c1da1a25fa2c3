// Package models defines server-side domain entities.
package models

import "time"

// User is a stored credential record. The password is kept only as a bcrypt
// hash; there is no way to recover the original value.
type User struct {
	ID           string
	UserName     string
	PasswordHash string
	CreatedAt    time.Time
}
