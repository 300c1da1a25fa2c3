// Package session holds the client's authentication state: the bearer token
// and the cached profile, persisted in the local database the way a browser
// would keep them in localStorage.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/dmitrijs2005/authgate/internal/client/client"
	"github.com/dmitrijs2005/authgate/internal/client/models"
	"github.com/dmitrijs2005/authgate/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/authgate/internal/dbx"
)

// Storage keys in the local metadata store.
const (
	KeyAuthToken = "authToken"
	KeyUserData  = "userData"
)

// Fallbacks used when the login response omits optional fields.
const (
	fallbackToken       = "mock-token"
	fallbackName        = "User"
	fallbackAccountType = "Standard"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrRequestInFlight  = errors.New("request already in flight")
)

// Session is either anonymous (no token stored) or authenticated (token plus
// cached profile). At most one Register/Login call may be in flight at a
// time; concurrent attempts fail fast with ErrRequestInFlight.
type Session struct {
	client client.Client
	db     *sql.DB

	mu       sync.Mutex
	inFlight bool
}

func NewSession(c client.Client, db *sql.DB) *Session {
	return &Session{client: c, db: db}
}

func (s *Session) beginRequest() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight {
		return ErrRequestInFlight
	}
	s.inFlight = true
	return nil
}

func (s *Session) endRequest() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false
}

// Register creates an account on the server. It does not log the user in.
func (s *Session) Register(ctx context.Context, username, password string) error {
	if err := s.beginRequest(); err != nil {
		return err
	}
	defer s.endRequest()

	return s.client.Register(ctx, username, password)
}

// Login authenticates against the server and, on success, persists the token
// and the cached profile in a single transaction. Missing response fields
// are filled with fallbacks so the cached profile is always complete.
func (s *Session) Login(ctx context.Context, username, password string) (*models.Profile, error) {
	if err := s.beginRequest(); err != nil {
		return nil, err
	}
	defer s.endRequest()

	resp, err := s.client.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}

	token := resp.Token
	if token == "" {
		token = fallbackToken
	}

	profile := &models.Profile{
		Name:        resp.Name,
		Email:       username,
		AccountType: resp.AccountType,
		MemberSince: resp.MemberSince,
	}
	if profile.Name == "" {
		profile.Name = fallbackName
	}
	if profile.AccountType == "" {
		profile.AccountType = fallbackAccountType
	}
	if profile.MemberSince == "" {
		profile.MemberSince = strconv.Itoa(time.Now().Year())
	}

	if err := s.saveSessionData(ctx, token, profile); err != nil {
		return nil, fmt.Errorf("session data saving error: %w", err)
	}

	return profile, nil
}

// saveSessionData persists the token and cached profile atomically. Either
// both keys are written or neither.
func (s *Session) saveSessionData(ctx context.Context, token string, profile *models.Profile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, KeyAuthToken, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, KeyUserData, data)
	})
}

// Logout clears the stored token and profile. It never touches the network
// and is idempotent: logging out an anonymous session is a no-op.
func (s *Session) Logout(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, KeyAuthToken); err != nil {
			return err
		}
		return repo.Delete(ctx, KeyUserData)
	})
}

// IsAuthenticated reports whether a token is stored. It performs no network
// call and does not check whether the token is still valid.
func (s *Session) IsAuthenticated(ctx context.Context) (bool, error) {
	token, err := metadata.NewSQLiteRepository(s.db).Get(ctx, KeyAuthToken)
	if err != nil {
		return false, err
	}
	return len(token) > 0, nil
}

// Token returns the stored bearer token, or ErrNotAuthenticated.
func (s *Session) Token(ctx context.Context) (string, error) {
	token, err := metadata.NewSQLiteRepository(s.db).Get(ctx, KeyAuthToken)
	if err != nil {
		return "", err
	}
	if len(token) == 0 {
		return "", ErrNotAuthenticated
	}
	return string(token), nil
}

// Profile returns the locally cached profile without a network call.
func (s *Session) Profile(ctx context.Context) (*models.Profile, error) {
	data, err := metadata.NewSQLiteRepository(s.db).Get(ctx, KeyUserData)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, ErrNotAuthenticated
	}

	var p models.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("error decoding cached profile: %w", err)
	}
	return &p, nil
}

// FetchProfile loads a fresh profile from the server using the stored token
// and updates the local cache.
func (s *Session) FetchProfile(ctx context.Context) (*models.Profile, error) {
	token, err := s.Token(ctx)
	if err != nil {
		return nil, err
	}

	p, err := s.client.Profile(ctx, token)
	if err != nil {
		return nil, err
	}

	if err := s.saveSessionData(ctx, token, p); err != nil {
		return nil, fmt.Errorf("session data saving error: %w", err)
	}

	return p, nil
}

// Close releases the transport resources. The local database is owned by the
// caller and stays open.
func (s *Session) Close(ctx context.Context) error {
	return s.client.Close()
}
