package middleware

import (
	"context"
	"net/http"
	"sync"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-stallui/internal/app/api"
	"github.com/FACorreiaa/go-stallui/internal/app/guard"
	"github.com/FACorreiaa/go-stallui/internal/app/models"
	"github.com/FACorreiaa/go-stallui/internal/app/session"
	"github.com/FACorreiaa/go-stallui/internal/pkg/apiclient"
	"github.com/FACorreiaa/go-stallui/internal/pkg/storage"
)

const (
	SessionContextKey = "session_context"

	sessionIDKey = "sid"
)

// SessionContext is the state owned by one browser session for the
// duration of a request.
type SessionContext struct {
	ID       string
	Storage  *storage.SessionStorage
	API      *api.API
	Session  *session.Store
	Notifier *FlashNotifier

	mu      sync.Mutex
	pending string
}

// PendingNavigation is the location requested by a session invalidation
// during this request, if any.
func (sc *SessionContext) PendingNavigation() (string, bool) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.pending, sc.pending != ""
}

func (sc *SessionContext) navigate(location string) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.pending = location
}

// onInvalidated observes the pipeline: the in-memory session follows the
// already cleared persistent one and the login page becomes pending.
func (sc *SessionContext) onInvalidated(ctx context.Context, ev apiclient.Event) {
	if ev.Kind != apiclient.EventSessionInvalidated {
		return
	}
	sc.Session.Reset(ctx)
	sc.navigate(guard.LoginPath)
}

type SessionDeps struct {
	Storage    storage.Storage
	HTTPClient *http.Client
	BaseURL    string
	Logger     *zap.Logger
}

// SessionContextMiddleware binds a SessionContext to every request. It must
// run after sessions.Sessions. When an invalidation is pending and the
// handler wrote nothing, the request ends with a redirect to login.
func SessionContextMiddleware(deps SessionDeps) gin.HandlerFunc {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		sc, err := newSessionContext(c, deps, logger)
		if err != nil {
			logger.Error("Failed to build session context", zap.Error(err))
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.Set(SessionContextKey, sc)

		c.Next()

		if loc, ok := sc.PendingNavigation(); ok && !c.Writer.Written() {
			guard.Redirect(c, http.StatusUnauthorized, loc)
		}
	}
}

func newSessionContext(c *gin.Context, deps SessionDeps, logger *zap.Logger) (*SessionContext, error) {
	ctx := c.Request.Context()
	browser := sessions.Default(c)

	sid, _ := browser.Get(sessionIDKey).(string)
	if sid == "" {
		sid = uuid.NewString()
		browser.Set(sessionIDKey, sid)
		if err := browser.Save(); err != nil {
			return nil, errors.Wrap(err, "save browser session")
		}
	}

	sc := &SessionContext{
		ID:       sid,
		Storage:  storage.NewSessionStorage(storage.Namespace(deps.Storage, storage.BrowserPrefix(sid))),
		Notifier: NewFlashNotifier(browser, logger),
	}

	client, err := apiclient.New(apiclient.Options{
		BaseURL:    deps.BaseURL,
		HTTPClient: deps.HTTPClient,
		Logger:     logger,
	}, sc.Storage, sc.Notifier)
	if err != nil {
		return nil, err
	}
	client.Subscribe(sc.onInvalidated)
	sc.API = api.New(client)

	sc.Session, err = session.New(ctx, sc.Storage, sc.API, logger.With(zap.String("sid", sid)))
	if err != nil {
		return nil, err
	}
	return sc, nil
}

// FromContext returns the request's SessionContext.
func FromContext(c *gin.Context) (*SessionContext, error) {
	v, ok := c.Get(SessionContextKey)
	if !ok {
		return nil, models.ErrNoSession
	}
	sc, ok := v.(*SessionContext)
	if !ok {
		return nil, models.ErrNoSession
	}
	return sc, nil
}

// GetUserFromContext returns the cached profile of the signed-in user.
func GetUserFromContext(c *gin.Context) *models.User {
	sc, err := FromContext(c)
	if err != nil || !sc.Session.IsLoggedIn() {
		return nil
	}
	return sc.Session.User()
}

// ResolveGuard adapts the session context to the guard middleware.
func ResolveGuard(c *gin.Context) (guard.Session, apiclient.Notifier, error) {
	sc, err := FromContext(c)
	if err != nil {
		return nil, nil, err
	}
	return sc.Session, sc.Notifier, nil
}
