package storage

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-stallui/internal/app/models"
)

func TestSessionStorage_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewSessionStorage(NewMemoryStorage(0))

	token, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	u, err := s.User(ctx)
	require.NoError(t, err)
	assert.Nil(t, u)

	require.NoError(t, s.SetToken(ctx, "abc"))
	token, err = s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	profile := &models.User{
		ID:         7,
		Username:   "merchant",
		Nickname:   "Night Market",
		Phone:      "13800000000",
		Role:       models.RoleUser,
		Status:     models.UserEnabled,
		CreateTime: "2024-03-01T10:00:00",
	}
	require.NoError(t, s.SetUser(ctx, profile))
	got, err := s.User(ctx)
	require.NoError(t, err)
	assert.Equal(t, profile, got)
}

func TestSessionStorage_ClearAuth(t *testing.T) {
	ctx := context.Background()
	s := NewSessionStorage(NewMemoryStorage(0))

	require.NoError(t, s.SetToken(ctx, "abc"))
	require.NoError(t, s.SetUser(ctx, &models.User{ID: 1, Role: models.RoleAdmin}))
	require.NoError(t, s.ClearAuth(ctx))

	token, _ := s.Token(ctx)
	u, _ := s.User(ctx)
	assert.Empty(t, token)
	assert.Nil(t, u)
}

func TestSessionStorage_CorruptUserIsAbsent(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryStorage(0)
	s := NewSessionStorage(mem)

	require.NoError(t, mem.Set(ctx, UserKey, "{not json", 0))
	u, err := s.User(ctx)
	assert.NoError(t, err)
	assert.Nil(t, u)
}

func TestSessionStorage_TokenTTL(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	s := NewSessionStorage(NewMemoryStorage(0))
	s.now = func() time.Time { return now }

	sign := func(exp time.Time) string {
		tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "merchant",
			"exp": exp.Unix(),
		})
		signed, err := tok.SignedString([]byte("test-secret"))
		require.NoError(t, err)
		return signed
	}

	assert.Equal(t, 2*time.Hour, s.tokenTTL(sign(now.Add(2*time.Hour))))
	assert.Equal(t, time.Second, s.tokenTTL(sign(now.Add(-time.Minute))))
	assert.Equal(t, time.Duration(0), s.tokenTTL("abc"), "opaque tokens use the default ttl")
}
