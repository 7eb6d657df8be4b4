package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"github.com/FACorreiaa/go-stallui/internal/app/models"
)

const (
	TokenKey = "stall_token"
	UserKey  = "stall_user"
)

// SessionStorage is the typed view over the two persisted session keys.
type SessionStorage struct {
	store Storage
	now   func() time.Time
}

func NewSessionStorage(store Storage) *SessionStorage {
	return &SessionStorage{store: store, now: time.Now}
}

// Token returns the stored token, or "" when none is held.
func (s *SessionStorage) Token(ctx context.Context) (string, error) {
	v, _, err := s.store.Get(ctx, TokenKey)
	return v, err
}

func (s *SessionStorage) SetToken(ctx context.Context, token string) error {
	return s.store.Set(ctx, TokenKey, token, s.tokenTTL(token))
}

func (s *SessionStorage) RemoveToken(ctx context.Context) error {
	return s.store.Delete(ctx, TokenKey)
}

// User returns the cached profile, or nil when none is held. A record that
// no longer decodes is treated as absent.
func (s *SessionStorage) User(ctx context.Context) (*models.User, error) {
	raw, ok, err := s.store.Get(ctx, UserKey)
	if err != nil || !ok || raw == "" {
		return nil, err
	}
	var u models.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil, nil
	}
	return &u, nil
}

func (s *SessionStorage) SetUser(ctx context.Context, u *models.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return errors.Wrap(err, "encode user")
	}
	return s.store.Set(ctx, UserKey, string(raw), 0)
}

func (s *SessionStorage) RemoveUser(ctx context.Context) error {
	return s.store.Delete(ctx, UserKey)
}

// ClearAuth removes both the token and the profile.
func (s *SessionStorage) ClearAuth(ctx context.Context) error {
	return s.store.Delete(ctx, TokenKey, UserKey)
}

// tokenTTL follows the JWT exp claim when the token carries one; opaque
// tokens use the backend default.
func (s *SessionStorage) tokenTTL(token string) time.Duration {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return 0
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return 0
	}
	ttl := exp.Sub(s.now())
	if ttl <= 0 {
		// already expired, keep it briefly so the backend can reject it
		return time.Second
	}
	return ttl
}
