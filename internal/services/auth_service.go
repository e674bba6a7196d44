package services

import (
	"context"
	"errors"
	"strings"

	"github.com/rohanjx/workouthub-backend/internal/models"
	"github.com/rohanjx/workouthub-backend/internal/store"
	"github.com/rohanjx/workouthub-backend/pkg/utils"
)

var (
	// ErrDuplicateEmail indicates a registration with an already-registered email.
	ErrDuplicateEmail = errors.New("a user with this email already exists")
	// ErrUnknownEmail indicates a login attempt with an email nobody registered.
	ErrUnknownEmail = errors.New("email does not exist")
	// ErrBadPassword indicates a login attempt with the wrong password.
	ErrBadPassword = errors.New("wrong password")
	// ErrMissingField indicates an empty required registration field.
	ErrMissingField = errors.New("name, email, and password are required")
)

// AuthService handles registration, credential verification, and sessions.
// It is the only component that establishes or destroys authenticated identity.
type AuthService struct {
	users    store.UserStore
	sessions SessionStore
}

// NewAuthService creates an AuthService over the given stores.
func NewAuthService(users store.UserStore, sessions SessionStore) *AuthService {
	return &AuthService{users: users, sessions: sessions}
}

// Register hashes the password and creates a new user. A duplicate email
// fails with ErrDuplicateEmail and leaves the store unchanged.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || password == "" {
		return nil, ErrMissingField
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, strings.TrimSpace(name), email, hash)
	if errors.Is(err, store.ErrDuplicateEmail) {
		return nil, ErrDuplicateEmail
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and establishes a session, returning its
// token. The error distinguishes unknown email from wrong password, matching
// the message text users see on the login page.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return "", ErrUnknownEmail
	}
	if err != nil {
		return "", err
	}

	valid, err := utils.VerifyPassword(password, user.PasswordHash)
	if err != nil || !valid {
		return "", ErrBadPassword
	}

	return s.sessions.Create(ctx, user.ID)
}

// CurrentUser resolves a session token to its user. Returns (nil, nil) for
// an anonymous request: an absent, expired, or unknown token.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	userID, ok, err := s.sessions.Validate(ctx, token)
	if err != nil || !ok {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		// Session outlived the user row; treat as anonymous
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Logout invalidates the session, returning the client to anonymous.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Invalidate(ctx, token)
}
