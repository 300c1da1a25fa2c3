// Package models defines data structures shared by the client transport,
// session, and CLI layers.
package models

// Profile is the displayable user profile cached alongside the auth token.
// JSON tags match the wire format of the login and profile responses.
type Profile struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	AccountType string `json:"accountType"`
	MemberSince string `json:"memberSince"`
}

// LoginResponse is the body of a successful POST /login.
// All fields except Message are optional on the wire.
type LoginResponse struct {
	Message     string `json:"message"`
	Token       string `json:"token"`
	Name        string `json:"name"`
	AccountType string `json:"accountType"`
	MemberSince string `json:"memberSince"`
}
