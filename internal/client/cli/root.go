package cli

import (
	"bufio"
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/authgate/internal/client/pages"
)

func (a *App) getStatus() string {
	s := a.currentPage
	if a.loggedIn(context.Background()) {
		s = s + " *"
	}
	return s
}

func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to the auth demo CLI (type 'help' for commands)")

	// land on the dashboard; the policy bounces anonymous visitors to the
	// login page and remembers where they were headed
	_ = a.Open(ctx, pages.DefaultLanding)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
