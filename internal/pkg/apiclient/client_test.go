package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-stallui/internal/app/models"
	"github.com/FACorreiaa/go-stallui/internal/pkg/storage"
)

type notice struct {
	Level   Level
	Message string
}

type recorder struct {
	mu      sync.Mutex
	notices []notice
	events  []Event
}

func (r *recorder) Notify(_ context.Context, level Level, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, notice{level, message})
}

func (r *recorder) listen(_ context.Context, ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func writeEnvelope(w http.ResponseWriter, status, code int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"code": code, "message": message, "data": data})
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *storage.SessionStorage, *recorder) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	creds := storage.NewSessionStorage(storage.NewMemoryStorage(0))
	rec := &recorder{}
	c, err := New(Options{BaseURL: srv.URL + "/api", HTTPClient: srv.Client()}, creds, rec)
	require.NoError(t, err)
	c.Subscribe(rec.listen)
	return c, creds, rec
}

func TestClient_AttachesBearerToken(t *testing.T) {
	ctx := context.Background()
	var gotAuth []string
	c, creds, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = append(gotAuth, r.Header.Get("Authorization"))
		writeEnvelope(w, http.StatusOK, 200, "ok", nil)
	})

	require.NoError(t, c.Do(ctx, Request{Method: http.MethodGet, Path: "/stall/list"}, nil))

	require.NoError(t, creds.SetToken(ctx, "abc"))
	require.NoError(t, c.Do(ctx, Request{Method: http.MethodGet, Path: "/stall/list"}, nil))

	require.NoError(t, creds.SetToken(ctx, "rotated"))
	require.NoError(t, c.Do(ctx, Request{Method: http.MethodGet, Path: "/stall/list"}, nil))

	assert.Equal(t, []string{"", "Bearer abc", "Bearer rotated"}, gotAuth)
}

func TestClient_SuccessDecodesData(t *testing.T) {
	var gotPath, gotQuery, gotBody string
	c, _, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body != nil {
			gotBody = body["username"].(string)
		}
		writeEnvelope(w, http.StatusOK, 200, "ok", models.LoginResult{Token: "abc", UserID: 1, Role: "USER"})
	})

	var out models.LoginResult
	err := c.Do(context.Background(), Request{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Query:  models.StallQuery{Status: models.Int(1)},
		Body:   models.LoginForm{Username: "u", Password: "p"},
	}, &out)

	require.NoError(t, err)
	assert.Equal(t, "/api/auth/login", gotPath)
	assert.Equal(t, "status=1", gotQuery)
	assert.Equal(t, "u", gotBody)
	assert.Equal(t, "abc", out.Token)
	assert.Empty(t, rec.notices)
	assert.Empty(t, rec.events)
}

func TestClient_EnvelopeUnauthorized(t *testing.T) {
	ctx := context.Background()
	c, creds, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, 401, "expired", nil)
	})
	require.NoError(t, creds.SetToken(ctx, "abc"))
	require.NoError(t, creds.SetUser(ctx, &models.User{ID: 1, Role: models.RoleUser}))

	err := c.Do(ctx, Request{Method: http.MethodGet, Path: "/auth/info"}, nil)

	require.Error(t, err)
	assert.Equal(t, "expired", err.Error())
	assert.True(t, IsUnauthorized(err))

	token, _ := creds.Token(ctx)
	user, _ := creds.User(ctx)
	assert.Empty(t, token)
	assert.Nil(t, user)

	require.Len(t, rec.events, 1, "exactly one invalidation per failing response")
	assert.Equal(t, EventSessionInvalidated, rec.events[0].Kind)
	assert.Equal(t, "expired", rec.events[0].Message)
	assert.Equal(t, "/auth/info", rec.events[0].Path)
}

func TestClient_EnvelopeFailure(t *testing.T) {
	ctx := context.Background()
	c, creds, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, 500, "stall already rented", nil)
	})
	require.NoError(t, creds.SetToken(ctx, "abc"))

	err := c.Do(ctx, Request{Method: http.MethodPost, Path: "/application/submit"}, nil)

	require.Error(t, err)
	assert.Equal(t, "stall already rented", err.Error())
	assert.False(t, IsUnauthorized(err))
	assert.Equal(t, []notice{{LevelError, "stall already rented"}}, rec.notices)
	assert.Empty(t, rec.events)

	token, _ := creds.Token(ctx)
	assert.Equal(t, "abc", token, "generic failures keep the session")
}

func TestClient_EnvelopeFailureWithoutMessage(t *testing.T) {
	c, _, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, 400, "", nil)
	})

	err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/x"}, nil)
	require.Error(t, err)
	assert.Equal(t, msgRequestFailed, err.Error())
	assert.Equal(t, msgRequestFailed, rec.notices[0].Message)
}

func TestClient_TransportUnauthorized(t *testing.T) {
	ctx := context.Background()
	c, creds, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	require.NoError(t, creds.SetToken(ctx, "abc"))

	err := c.Do(ctx, Request{Method: http.MethodGet, Path: "/rental/my"}, nil)

	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	token, _ := creds.Token(ctx)
	assert.Empty(t, token)
	assert.Len(t, rec.events, 1)
	assert.Equal(t, []notice{{LevelError, msgNetworkError}}, rec.notices)
}

func TestClient_TransportFailureUsesBodyMessage(t *testing.T) {
	c, _, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusForbidden, 403, "access denied", nil)
	})

	err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/user/admin/list"}, nil)

	require.Error(t, err)
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
	assert.True(t, apiErr.Transport())
	assert.Equal(t, "access denied", rec.notices[0].Message)
	assert.Empty(t, rec.events)
}

func TestClient_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	rec := &recorder{}
	c, err := New(Options{BaseURL: url}, nil, rec)
	require.NoError(t, err)
	c.Subscribe(rec.listen)

	err = c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/stall/list"}, nil)

	require.Error(t, err)
	assert.Equal(t, msgNetworkError, err.Error())
	assert.False(t, IsUnauthorized(err))
	assert.Equal(t, []notice{{LevelError, msgNetworkError}}, rec.notices)
	assert.Empty(t, rec.events)
}

func TestClient_TimeoutIsNetworkError(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	t.Cleanup(func() {
		close(release)
		srv.Close()
	})

	rec := &recorder{}
	c, err := New(Options{BaseURL: srv.URL, HTTPClient: NewHTTPClient(50 * time.Millisecond)}, nil, rec)
	require.NoError(t, err)

	err = c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/slow"}, nil)
	require.Error(t, err)
	assert.Equal(t, msgNetworkError, err.Error())
}

func TestClient_CancelledCallerIsNotNotified(t *testing.T) {
	c, _, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, models.CodeSuccess, "", nil)
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Do(ctx, Request{Method: http.MethodGet, Path: "/stall/list"}, nil)

	require.Error(t, err)
	assert.Equal(t, msgNetworkError, err.Error())
	assert.Empty(t, rec.notices)
	assert.Empty(t, rec.events)
}

func TestClient_MalformedEnvelope(t *testing.T) {
	c, _, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>gateway</html>"))
	})

	err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/x"}, nil)
	require.Error(t, err)
	assert.Equal(t, msgRequestFailed, err.Error())
	assert.Len(t, rec.notices, 1)
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "", Message(nil))
	assert.Equal(t, "expired", Message(&Error{Code: 401, Message: "expired"}))
	assert.Equal(t, assert.AnError.Error(), Message(assert.AnError))
}
