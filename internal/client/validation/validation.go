// Package validation checks registration input locally, before anything is
// sent to the server.
package validation

import (
	"fmt"
	"regexp"
)

// Error describes a single invalid field.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

const MinPasswordLength = 8

var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail checks the username for a plausible email shape.
func ValidateEmail(email string) error {
	if email == "" {
		return &Error{Field: "email", Message: "email is required"}
	}
	if !emailRegexp.MatchString(email) {
		return &Error{Field: "email", Message: "please enter a valid email address"}
	}
	return nil
}

// ValidatePassword enforces the minimum length.
func ValidatePassword(password string) error {
	if password == "" {
		return &Error{Field: "password", Message: "password is required"}
	}
	if len(password) < MinPasswordLength {
		return &Error{Field: "password", Message: fmt.Sprintf("password must be at least %d characters", MinPasswordLength)}
	}
	return nil
}

// ValidateConfirmation checks that the password was retyped correctly.
func ValidateConfirmation(password, confirmation string) error {
	if password != confirmation {
		return &Error{Field: "confirm-password", Message: "passwords do not match"}
	}
	return nil
}

// ValidateRegistration runs all registration checks and returns the first
// failure.
func ValidateRegistration(email, password, confirmation string) error {
	if err := ValidateEmail(email); err != nil {
		return err
	}
	if err := ValidatePassword(password); err != nil {
		return err
	}
	return ValidateConfirmation(password, confirmation)
}

// Strength labels for PasswordStrength scores.
type Strength string

const (
	StrengthWeak   Strength = "weak"
	StrengthMedium Strength = "medium"
	StrengthStrong Strength = "strong"
)

// PasswordStrength scores a password from 0 to 8: two points for length
// (8 and 12 characters), one per character class, and two for mixing
// classes.
func PasswordStrength(password string) int {
	score := 0

	if len(password) >= 8 {
		score++
	}
	if len(password) >= 12 {
		score++
	}

	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			hasSpecial = true
		}
	}

	for _, ok := range []bool{hasLower, hasUpper, hasDigit, hasSpecial} {
		if ok {
			score++
		}
	}

	if hasLower && hasUpper {
		score++
	}
	if hasDigit && (hasLower || hasUpper) {
		score++
	}

	return score
}

// ClassifyStrength maps a score to a label: below 3 is weak, below 6 is
// medium, the rest is strong.
func ClassifyStrength(score int) Strength {
	switch {
	case score < 3:
		return StrengthWeak
	case score < 6:
		return StrengthMedium
	default:
		return StrengthStrong
	}
}
