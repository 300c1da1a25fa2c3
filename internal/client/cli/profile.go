package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/authgate/internal/client/client"
	"github.com/dmitrijs2005/authgate/internal/client/models"
	"github.com/dmitrijs2005/authgate/internal/client/pages"
	"github.com/dmitrijs2005/authgate/internal/client/session"
)

// Profile shows the user's profile. It asks the server first so the data is
// fresh; when the server is unreachable it falls back to the cached copy,
// and when the token has expired it drops the session.
func (a *App) Profile(ctx context.Context) error {
	p, err := a.session.FetchProfile(ctx)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrNotAuthenticated):
			printlnFn("Not logged in.")
			return nil
		case errors.Is(err, client.ErrUnauthorized):
			printlnFn("Session expired, please log in again.")
			if err := a.session.Logout(ctx); err != nil {
				return err
			}
			return a.Open(ctx, pages.LoginPage)
		case errors.Is(err, client.ErrUnavailable):
			printlnFn("Server unavailable, showing cached profile.")
			p, err = a.session.Profile(ctx)
			if err != nil {
				return err
			}
		default:
			return err
		}
	}

	a.printProfile(p)
	return nil
}

func (a *App) printProfile(p *models.Profile) {
	printlnFn(fmt.Sprintf("Name:         %s", p.Name))
	printlnFn(fmt.Sprintf("Email:        %s", p.Email))
	printlnFn(fmt.Sprintf("Account type: %s", p.AccountType))
	printlnFn(fmt.Sprintf("Member since: %s", p.MemberSince))
}
