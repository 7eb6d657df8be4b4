// Package session holds the authenticated state of one browser session:
// the bearer token and the cached profile, mirrored into persistent storage.
package session

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-stallui/internal/app/models"
)

// Persistence is the durable mirror of the session.
type Persistence interface {
	Token(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	User(ctx context.Context) (*models.User, error)
	SetUser(ctx context.Context, u *models.User) error
	ClearAuth(ctx context.Context) error
}

// AuthAPI is the remote surface the store depends on.
type AuthAPI interface {
	GetUserInfo(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
}

// Store is the session state. A profile is never held without a token.
type Store struct {
	mu      sync.RWMutex
	token   string
	user    *models.User
	persist Persistence
	api     AuthAPI
	logger  *zap.Logger
}

// New restores the session from persistence.
func New(ctx context.Context, persist Persistence, api AuthAPI, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{persist: persist, api: api, logger: logger}

	token, err := persist.Token(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "restore token")
	}
	user, err := persist.User(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "restore user")
	}
	if token == "" && user != nil {
		// orphaned profile from an interrupted clear
		if err := persist.ClearAuth(ctx); err != nil {
			logger.Warn("Failed to drop orphaned profile", zap.Error(err))
		}
		user = nil
	}
	s.token = token
	s.user = user
	return s, nil
}

// Login stores the token from a successful authentication and hydrates the
// profile. When hydration fails the store is left cleared and the error is
// returned.
func (s *Store) Login(ctx context.Context, result *models.LoginResult) error {
	if result == nil || result.Token == "" {
		return errors.Wrap(models.ErrUnauthenticated, "login result carries no token")
	}

	s.mu.Lock()
	s.token = result.Token
	s.mu.Unlock()
	if err := s.persist.SetToken(ctx, result.Token); err != nil {
		s.Reset(ctx)
		return errors.Wrap(err, "persist token")
	}

	s.logger.Info("Session started",
		zap.Int64("user_id", result.UserID),
		zap.String("username", result.Username))

	return s.FetchUserInfo(ctx)
}

// FetchUserInfo refreshes the profile. Any failure is treated as an invalid
// session: token and profile are both cleared.
func (s *Store) FetchUserInfo(ctx context.Context) error {
	user, err := s.api.GetUserInfo(ctx)
	if err == nil {
		err = s.persist.SetUser(ctx, user)
	}
	if err != nil {
		s.logger.Warn("Profile refresh failed, clearing session", zap.Error(err))
		s.Reset(ctx)
		return err
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	return nil
}

// Logout notifies the backend best-effort; local state is always cleared.
func (s *Store) Logout(ctx context.Context) error {
	err := s.api.Logout(ctx)
	if err != nil {
		s.logger.Warn("Remote logout failed", zap.Error(err))
	}
	s.Reset(ctx)
	return err
}

// Reset clears token and profile in memory and in persistence.
func (s *Store) Reset(ctx context.Context) {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	if err := s.persist.ClearAuth(ctx); err != nil {
		s.logger.Error("Failed to clear persisted session", zap.Error(err))
	}
}

func (s *Store) IsLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// IsAdmin is case-sensitive on the role value.
func (s *Store) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.user.Role == models.RoleAdmin
}

func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns a copy of the cached profile, or nil.
func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}
