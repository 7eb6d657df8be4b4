// Package guard decides, before a page handler runs, whether the current
// session may reach a route.
package guard

import (
	"context"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-stallui/internal/app/models"
	"github.com/FACorreiaa/go-stallui/internal/app/observability/metrics"
	"github.com/FACorreiaa/go-stallui/internal/pkg/apiclient"
)

const (
	LoginPath = "/login"
	HomePath  = "/"

	MsgAdminOnly = "You are not allowed to access the admin panel"
)

// Meta is the static policy attached to a route.
type Meta struct {
	RequiresAuth  bool
	RequiresAdmin bool
}

// Target is the navigation being evaluated. FullPath includes the query.
type Target struct {
	FullPath string
	Meta     Meta
}

// Session is the read side of the session store plus the lazy refresh.
type Session interface {
	IsLoggedIn() bool
	IsAdmin() bool
	User() *models.User
	FetchUserInfo(ctx context.Context) error
}

type Outcome int

const (
	Allow Outcome = iota
	RedirectLogin
	RedirectHome
)

func (o Outcome) String() string {
	switch o {
	case RedirectLogin:
		return "redirect_login"
	case RedirectHome:
		return "redirect_home"
	default:
		return "allow"
	}
}

type Decision struct {
	Outcome  Outcome
	Location string
	// Notice is a warning for the user, empty when none.
	Notice string
}

type Options struct {
	// Recheck re-verifies the session after a lazy profile refresh, so a
	// refresh that cleared the session sends the user to login.
	Recheck bool
	Logger  *zap.Logger
}

type Guard struct {
	recheck bool
	logger  *zap.Logger
}

func New(opts Options) *Guard {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Guard{recheck: opts.Recheck, logger: logger}
}

// Evaluate runs the checks in order: authentication, lazy profile refresh,
// administrator role.
func (g *Guard) Evaluate(ctx context.Context, s Session, to Target) Decision {
	d := g.evaluate(ctx, s, to)
	metrics.Get().GuardDecisionsTotal.Add(ctx, 1,
		metric.WithAttributes(attribute.String("outcome", d.Outcome.String())))
	if d.Outcome != Allow {
		g.logger.Debug("Navigation blocked",
			zap.String("path", to.FullPath),
			zap.String("outcome", d.Outcome.String()))
	}
	return d
}

func (g *Guard) evaluate(ctx context.Context, s Session, to Target) Decision {
	if to.Meta.RequiresAuth && !s.IsLoggedIn() {
		return loginDecision(to.FullPath)
	}

	if to.Meta.RequiresAuth && s.IsLoggedIn() && s.User() == nil {
		// token restored without its profile; failure clears the session
		if err := s.FetchUserInfo(ctx); err != nil {
			g.logger.Info("Profile refresh during navigation failed",
				zap.String("path", to.FullPath),
				zap.Error(err))
		}
		if g.recheck && !s.IsLoggedIn() {
			return loginDecision(to.FullPath)
		}
	}

	if to.Meta.RequiresAdmin && !s.IsAdmin() {
		return Decision{Outcome: RedirectHome, Location: HomePath, Notice: MsgAdminOnly}
	}

	return Decision{Outcome: Allow}
}

func loginDecision(fullPath string) Decision {
	return Decision{Outcome: RedirectLogin, Location: LoginLocation(fullPath)}
}

// LoginLocation is the login route carrying fullPath as return target.
func LoginLocation(fullPath string) string {
	if fullPath == "" {
		return LoginPath
	}
	// slashes are legal in a query value: /login?redirect=/profile
	return LoginPath + "?redirect=" + strings.ReplaceAll(url.QueryEscape(fullPath), "%2F", "/")
}

// notify forwards the decision's notice, if any.
func notify(ctx context.Context, n apiclient.Notifier, d Decision) {
	if d.Notice != "" && n != nil {
		n.Notify(ctx, apiclient.LevelWarning, d.Notice)
	}
}
