// Package cli is the interactive front end: it plays the role of the
// browser, navigating between pages and driving the session.
package cli

import (
	"bufio"
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/authgate/internal/client/client"
	"github.com/dmitrijs2005/authgate/internal/client/config"
	"github.com/dmitrijs2005/authgate/internal/client/models"
	"github.com/dmitrijs2005/authgate/internal/client/pages"
	"github.com/dmitrijs2005/authgate/internal/client/session"

	_ "modernc.org/sqlite"
)

// sessionIface is the slice of *session.Session the CLI uses. Tests provide
// a stub.
type sessionIface interface {
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (*models.Profile, error)
	Logout(ctx context.Context) error
	IsAuthenticated(ctx context.Context) (bool, error)
	Profile(ctx context.Context) (*models.Profile, error)
	FetchProfile(ctx context.Context) (*models.Profile, error)
	Close(ctx context.Context) error
}

type App struct {
	config  *config.Config
	session sessionIface

	// currentPage and returnTarget emulate the browser location and the
	// ?redirect= parameter of the login page.
	currentPage  string
	returnTarget string

	reader *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	apiClient := client.NewHTTPClient(c.ServerEndpointAddr, c.RequestTimeout)
	s := session.NewSession(apiClient, db)

	return &App{
		config:      c,
		session:     s,
		currentPage: pages.LoginPage,
		reader:      bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.session.Close(ctx)
	a.Root(ctx)
}

func (a *App) loggedIn(ctx context.Context) bool {
	ok, err := a.session.IsAuthenticated(ctx)
	if err != nil {
		log.Printf("error reading session state: %s", err.Error())
		return false
	}
	return ok
}
