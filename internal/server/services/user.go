// Package services contains server-side business logic. UserService handles
// registration and login and mints bearer tokens for authenticated users.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/authgate/internal/common"
	"github.com/dmitrijs2005/authgate/internal/server/auth"
	"github.com/dmitrijs2005/authgate/internal/server/config"
	"github.com/dmitrijs2005/authgate/internal/server/models"
	"github.com/dmitrijs2005/authgate/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// DefaultAccountType is the account label for every self-registered user.
// There is no plan tier model; the value only feeds the profile display.
const DefaultAccountType = "Standard"

// Profile is the displayable slice of a user record returned alongside a
// token. All fields are optional on the wire; the client fills gaps with
// its own defaults.
type Profile struct {
	Name        string
	Email       string
	AccountType string
	MemberSince string
}

// LoginResult bundles the minted token with the user's profile.
type LoginResult struct {
	Token string
	Profile
}

// UserService provides the authentication operations:
//   - Register: create a credential record
//   - Login: verify credentials and mint a token
//   - Profile: fetch the displayable profile for a known username
type UserService struct {
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	jwtSecret     []byte
	tokenValidity time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:            db,
		repomanager:   m,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidityDuration,
	}
}

// Register creates a new user with the given username and password. The
// password is stored only as a bcrypt hash. When the username is taken the
// store's common.ErrorAlreadyExists is passed through unchanged.
func (s *UserService) Register(ctx context.Context, username, password string) (*models.User, error) {
	hash, err := auth.HashPassword([]byte(password))
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{ID: uuid.NewString(), UserName: username, PasswordHash: hash}
	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// Login verifies the supplied password against the stored hash and, on
// success, returns a fresh token plus profile fields.
//
// Unknown usernames and wrong passwords both come back as
// common.ErrorUnauthorized so callers cannot probe which usernames exist;
// the unknown-user branch burns a bcrypt comparison to keep the two paths
// close in cost.
func (s *UserService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetUserByLogin(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			auth.BurnPasswordCheck([]byte(password))
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if !auth.CheckPassword(user.PasswordHash, []byte(password)) {
		return nil, common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, user.UserName, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &LoginResult{Token: token, Profile: profileFromUser(user)}, nil
}

// Profile returns the displayable profile for an existing username.
func (s *UserService) Profile(ctx context.Context, username string) (*Profile, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetUserByLogin(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	p := profileFromUser(user)
	return &p, nil
}

func profileFromUser(user *models.User) Profile {
	name := user.UserName
	if local, _, found := strings.Cut(user.UserName, "@"); found && local != "" {
		name = local
	}
	return Profile{
		Name:        name,
		Email:       user.UserName,
		AccountType: DefaultAccountType,
		MemberSince: user.CreatedAt.Format("2006"),
	}
}
