package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/authgate/internal/client/pages"
)

// Open navigates to a page, honoring the access policy. Redirects update
// the current page the same way the browser would follow a Location header.
func (a *App) Open(ctx context.Context, page string) error {
	d := pages.Decide(page, a.loggedIn(ctx))

	if d.Allow {
		a.currentPage = page
		printlnFn("Now on", page)
		return nil
	}

	a.currentPage = d.RedirectTo
	if d.ReturnTarget != "" {
		a.returnTarget = d.ReturnTarget
		printlnFn(fmt.Sprintf("Please log in to view %s (redirected to %s)", d.ReturnTarget, d.RedirectTo))
	} else {
		printlnFn("Redirected to", d.RedirectTo)
	}
	return nil
}

// Status prints the session state and the current page.
func (a *App) Status(ctx context.Context) error {
	if !a.loggedIn(ctx) {
		printlnFn("Not logged in. Current page:", a.currentPage)
		return nil
	}

	p, err := a.session.Profile(ctx)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Logged in as %s. Current page: %s", p.Email, a.currentPage))
	return nil
}
