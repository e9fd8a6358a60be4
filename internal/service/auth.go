// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/daybook/daybook/internal/auth"
	"github.com/daybook/daybook/internal/metrics"
	"github.com/daybook/daybook/internal/model"
	"github.com/daybook/daybook/internal/repository"
)

// Auth service errors.
var (
	ErrDuplicateUser = errors.New("username or email already taken")
	ErrWeakPassword  = errors.New("password does not meet the minimum length policy")
	// ErrInvalidCredentials is returned for both an unknown email and a
	// wrong password so a caller cannot tell which field was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUnauthenticated is returned for any token failure.
	ErrUnauthenticated = errors.New("authentication required")
	ErrMissingField    = errors.New("username and email are required")
)

// MinPasswordLength is the server-side password policy.
const MinPasswordLength = 6

// UserStore is the credential store interface required by AuthService.
// *repository.Repository satisfies it.
type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, id string) (*model.User, error)
}

// AuthService verifies credentials and issues and validates bearer tokens.
// Register and Login are the only writers of user records and the only
// minters of tokens.
type AuthService struct {
	users   UserStore
	tokens  *auth.TokenManager
	metrics metrics.Recorder
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore, tokens *auth.TokenManager, recorder metrics.Recorder) *AuthService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &AuthService{
		users:   users,
		tokens:  tokens,
		metrics: recorder,
	}
}

// Session is the result of a successful registration or login.
type Session struct {
	Token string
	User  *model.User
}

// RegisterInput defines input for registering a user.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Register creates a new user and mints a session token for them.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*Session, error) {
	if input.Username == "" || input.Email == "" {
		return nil, ErrMissingField
	}
	if len(input.Password) < MinPasswordLength {
		return nil, ErrWeakPassword
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:           ulid.Make().String(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	// Uniqueness of username and email is enforced by the store; a
	// concurrent duplicate registration surfaces here the same way.
	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return nil, ErrDuplicateUser
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.tokens.Mint(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to mint token: %w", err)
	}

	s.metrics.IncUserRegistered()

	return &Session{Token: token, User: user}, nil
}

// Login authenticates a user by email and password and mints a session
// token on success.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.metrics.IncAuthFailure()
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	match, err := auth.VerifyPassword(password, user.PasswordHash)
	if err != nil || !match {
		s.metrics.IncAuthFailure()
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Mint(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to mint token: %w", err)
	}

	s.metrics.IncUserLoggedIn()

	return &Session{Token: token, User: user}, nil
}

// VerifyToken validates the token signature and expiry and returns the
// embedded user id. It is a pure check with no persistence effect.
func (s *AuthService) VerifyToken(token string) (string, error) {
	userID, err := s.tokens.Verify(token)
	if err != nil {
		return "", ErrUnauthenticated
	}
	return userID, nil
}
