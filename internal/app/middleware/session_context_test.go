package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-stallui/internal/app/guard"
	"github.com/FACorreiaa/go-stallui/internal/app/models"
	"github.com/FACorreiaa/go-stallui/internal/pkg/storage"
)

type testEnv struct {
	engine  *gin.Engine
	store   *storage.MemoryStorage
	backend *httptest.Server
}

func newTestEnv(t *testing.T, backend http.HandlerFunc) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		store:   storage.NewMemoryStorage(0),
		backend: httptest.NewServer(backend),
	}
	t.Cleanup(env.backend.Close)

	r := gin.New()
	r.Use(sessions.Sessions("stall_session", cookie.NewStore([]byte("test-secret"))))
	r.Use(SessionContextMiddleware(SessionDeps{
		Storage:    env.store,
		HTTPClient: env.backend.Client(),
		BaseURL:    env.backend.URL,
	}))

	r.GET("/whoami", func(c *gin.Context) {
		sc, err := FromContext(c)
		require.NoError(t, err)
		c.String(http.StatusOK, sc.ID)
	})
	r.GET("/info", func(c *gin.Context) {
		sc, err := FromContext(c)
		require.NoError(t, err)
		if _, err := sc.API.GetUserInfo(c.Request.Context()); err != nil {
			return
		}
		c.String(http.StatusOK, "ok")
	})
	r.GET("/notices", func(c *gin.Context) {
		sc, _ := FromContext(c)
		c.JSON(http.StatusOK, sc.Notifier.Drain())
	})
	r.GET("/guarded", guard.New(guard.Options{Recheck: true}).Middleware(guard.Meta{RequiresAuth: true}, ResolveGuard),
		func(c *gin.Context) { c.String(http.StatusOK, "inside") })

	env.engine = r
	return env
}

func (e *testEnv) do(t *testing.T, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	e.engine.ServeHTTP(w, req)
	return w
}

// signIn creates a browser session holding token and returns its cookies.
func (e *testEnv) signIn(t *testing.T, token string) []*http.Cookie {
	t.Helper()
	w := e.do(t, "/whoami", nil)
	require.Equal(t, http.StatusOK, w.Code)
	sid := w.Body.String()
	require.NotEmpty(t, sid)

	persist := storage.NewSessionStorage(storage.Namespace(e.store, storage.BrowserPrefix(sid)))
	require.NoError(t, persist.SetToken(context.Background(), token))
	return merge(nil, w.Result().Cookies())
}

// merge replaces cookies by name the way a browser would.
func merge(old, fresh []*http.Cookie) []*http.Cookie {
	byName := map[string]*http.Cookie{}
	var order []string
	for _, ck := range append(old, fresh...) {
		if _, seen := byName[ck.Name]; !seen {
			order = append(order, ck.Name)
		}
		byName[ck.Name] = ck
	}
	out := make([]*http.Cookie, 0, len(order))
	for _, name := range order {
		out = append(out, byName[name])
	}
	return out
}

func writeEnvelope(w http.ResponseWriter, env models.Envelope) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(env)
}

func TestSessionContextMiddleware(t *testing.T) {
	t.Run("BrowserSessionIsStable", func(t *testing.T) {
		env := newTestEnv(t, func(w http.ResponseWriter, _ *http.Request) {})

		first := env.do(t, "/whoami", nil)
		cookies := first.Result().Cookies()
		require.NotEmpty(t, cookies)

		second := env.do(t, "/whoami", cookies)
		assert.Equal(t, first.Body.String(), second.Body.String())
	})

	t.Run("TokenIsAttachedFromBrowserNamespace", func(t *testing.T) {
		var auth string
		env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
			auth = r.Header.Get("Authorization")
			writeEnvelope(w, models.Envelope{Code: models.CodeSuccess, Data: json.RawMessage(`{"id":1,"role":"USER"}`)})
		})
		cookies := env.signIn(t, "tok-1")

		w := env.do(t, "/info", cookies)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Bearer tok-1", auth)
	})

	t.Run("InvalidationRedirectsToLogin", func(t *testing.T) {
		env := newTestEnv(t, func(w http.ResponseWriter, _ *http.Request) {
			writeEnvelope(w, models.Envelope{Code: models.CodeUnauthorized, Message: "token expired"})
		})
		cookies := env.signIn(t, "tok-1")

		w := env.do(t, "/info", cookies)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, guard.LoginPath, w.Header().Get("Location"))
		assert.Equal(t, 0, env.store.Len())

		// the flash survives the redirect
		cookies = merge(cookies, w.Result().Cookies())
		notices := env.do(t, "/notices", cookies)
		var got []models.Notice
		require.NoError(t, json.Unmarshal(notices.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "token expired", got[0].Message)
	})

	t.Run("GuardSeesRestoredSession", func(t *testing.T) {
		env := newTestEnv(t, func(w http.ResponseWriter, _ *http.Request) {
			writeEnvelope(w, models.Envelope{Code: models.CodeSuccess, Data: json.RawMessage(`{"id":1,"role":"USER"}`)})
		})

		anonymous := env.do(t, "/guarded", nil)
		assert.Equal(t, http.StatusFound, anonymous.Code)
		assert.Equal(t, "/login?redirect=/guarded", anonymous.Header().Get("Location"))

		cookies := env.signIn(t, "tok-1")
		w := env.do(t, "/guarded", cookies)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "inside", w.Body.String())
	})
}

func TestFromContextWithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, err := FromContext(c)
	assert.ErrorIs(t, err, models.ErrNoSession)
	assert.Nil(t, GetUserFromContext(c))
}
