package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/askpro/internal/common"
	"github.com/dmitrijs2005/askpro/internal/logging"
	"github.com/dmitrijs2005/askpro/internal/models"
)

// MinPasswordLength is the shortest secret Signup accepts.
const MinPasswordLength = 6

// AuthService defines the account operations.
//
// Contract:
//   - Login: match identifier (username or email) and secret, then store the session.
//   - Signup: validate input, create the account and log it in.
//   - Logout: clear the session; safe when nobody is logged in.
//   - Current: the logged-in session or nil.
type AuthService interface {
	Login(ctx context.Context, identifier, secret string) (*models.Session, error)
	Signup(ctx context.Context, handle, email, secret, fullName string) (*models.Session, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (*models.Session, error)
}

type authService struct {
	users    UserRepository
	sessions SessionStore
	log      logging.Logger
}

// NewAuthService constructs an AuthService over the account list and session store.
func NewAuthService(users UserRepository, sessions SessionStore, log logging.Logger) AuthService {
	if log == nil {
		log = logging.NewNop()
	}
	return &authService{users: users, sessions: sessions, log: log.With("service", "auth")}
}

// Login trims identifier but compares secret verbatim. A miss returns
// common.ErrInvalidCredentials and leaves any existing session alone.
func (a *authService) Login(ctx context.Context, identifier, secret string) (*models.Session, error) {
	u, ok := a.users.FindByCredential(strings.TrimSpace(identifier), secret)
	if !ok {
		a.log.Info(ctx, "login failed", "identifier", identifier)
		return nil, common.ErrInvalidCredentials
	}
	return a.sessions.Establish(ctx, *u)
}

// Signup trims handle, email and fullName. The secret is checked for length
// before uniqueness, so a short password is reported even for a taken handle.
func (a *authService) Signup(ctx context.Context, handle, email, secret, fullName string) (*models.Session, error) {
	handle = strings.TrimSpace(handle)
	email = strings.TrimSpace(email)
	fullName = strings.TrimSpace(fullName)

	if len(secret) < MinPasswordLength {
		return nil, fmt.Errorf("password must be at least %d characters long: %w", MinPasswordLength, common.ErrValidation)
	}
	if handle == "" || email == "" || fullName == "" {
		return nil, fmt.Errorf("please fill in all fields: %w", common.ErrValidation)
	}

	u, err := a.users.Create(ctx, handle, email, secret, fullName)
	if err != nil {
		return nil, err
	}
	return a.sessions.Establish(ctx, *u)
}

func (a *authService) Logout(ctx context.Context) error {
	return a.sessions.Clear(ctx)
}

func (a *authService) Current(ctx context.Context) (*models.Session, error) {
	return a.sessions.Current(ctx)
}
