package cli

import (
	"context"
	"errors"
	"os"

	"github.com/dmitrijs2005/authgate/internal/client/client"
	"github.com/dmitrijs2005/authgate/internal/client/pages"
	"github.com/dmitrijs2005/authgate/internal/client/session"
	"github.com/dmitrijs2005/authgate/internal/client/validation"
	"github.com/dmitrijs2005/authgate/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for an email, a password, and its confirmation, validates
// them locally, and attempts to create an account. On success the user is
// taken to the login page, matching the site's register flow.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirmation, err := getPassword("Confirm password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirmation)

	if err := validation.ValidateRegistration(userName, string(password), string(confirmation)); err != nil {
		printlnFn(err.Error())
		return nil
	}

	if strength := validation.PasswordStrength(string(password)); validation.ClassifyStrength(strength) == validation.StrengthWeak {
		printlnFn("Warning: weak password")
	}

	if err := a.session.Register(ctx, userName, string(password)); err != nil {
		switch {
		case errors.Is(err, client.ErrUsernameTaken):
			printlnFn("Username already exists.")
		case errors.Is(err, client.ErrUnavailable):
			printlnFn("Connection error. Please try again later.")
		case errors.Is(err, session.ErrRequestInFlight):
			printlnFn("Another request is already in progress.")
		default:
			printlnFn("Registration failed:", err.Error())
		}
		return nil
	}

	printlnFn("Registration successful! You can now log in.")
	return a.Open(ctx, pages.LoginPage)
}

// Login prompts for credentials and authenticates. On success the user lands
// on the pending return target, or the dashboard when there is none.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if _, err := a.session.Login(ctx, userName, string(password)); err != nil {
		switch {
		case errors.Is(err, client.ErrUnauthorized):
			printlnFn("Invalid credentials")
		case errors.Is(err, client.ErrUnavailable):
			printlnFn("Connection error. Please try again later.")
		case errors.Is(err, session.ErrRequestInFlight):
			printlnFn("Another request is already in progress.")
		default:
			printlnFn("Login failed:", err.Error())
		}
		return nil
	}

	printlnFn("Login successful!")

	target := a.returnTarget
	a.returnTarget = ""
	if target == "" {
		target = pages.DefaultLanding
	}
	return a.Open(ctx, target)
}

// Logout drops the stored session and returns to the login page. It never
// fails because of the network.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	printlnFn("Logged out.")
	return a.Open(ctx, pages.LoginPage)
}
