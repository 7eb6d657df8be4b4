package auth

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-stallui/internal/app/guard"
	"github.com/FACorreiaa/go-stallui/internal/app/handlers"
	"github.com/FACorreiaa/go-stallui/internal/app/models"
	"github.com/FACorreiaa/go-stallui/internal/app/pages"
	"github.com/FACorreiaa/go-stallui/internal/pkg/apiclient"
)

const (
	MsgRegistered = "Registration successful, please sign in"
	MsgSignedOut  = "You have been signed out"
	MsgWelcome    = "Welcome back"

	adminHome = "/admin"
)

type AuthHandlers struct {
	*handlers.BaseHandler
}

func NewAuthHandlers(base *handlers.BaseHandler) *AuthHandlers {
	return &AuthHandlers{BaseHandler: base}
}

func (h *AuthHandlers) ShowLogin(c *gin.Context) {
	sc, ok := h.Session(c)
	if !ok {
		return
	}
	if sc.Session.IsLoggedIn() {
		c.Redirect(http.StatusFound, landing(sc.Session.IsAdmin(), SafeRedirect(c.Query("redirect"))))
		return
	}

	action := guard.LoginPath
	if target := SafeRedirect(c.Query("redirect")); target != "" {
		action = guard.LoginLocation(target)
	}
	h.RenderPage(c, "Sign in", "Sign in", pages.Section("Sign in",
		pages.Form{
			Action: action,
			Submit: "Sign in",
			Fields: []pages.Field{
				{Name: "username", Label: "Username", Required: true},
				{Name: "password", Label: "Password", Type: "password", Required: true},
			},
		}.Component(),
		pages.Actions(pages.Action{Label: "Create an account", Href: "/register"}),
	))
}

// Login authenticates, hydrates the session and sends the user to the
// requested page, or to their landing page.
func (h *AuthHandlers) Login(c *gin.Context) {
	sc, ok := h.Session(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	target := SafeRedirect(c.Query("redirect"))
	back := guard.LoginPath
	if target != "" {
		back = guard.LoginLocation(target)
	}

	var form models.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		h.Complete(c, errors.Wrap(models.ErrValidation, err.Error()), "", "", back)
		return
	}

	result, err := sc.API.Login(ctx, form)
	if err == nil {
		err = sc.Session.Login(ctx, result)
	}
	if err != nil {
		h.Logger.Info("Sign in failed", zap.String("username", form.Username), zap.Error(err))
		if errors.Is(err, models.ErrValidation) {
			sc.Notifier.Notify(ctx, apiclient.LevelWarning, handlers.MsgInvalidForm)
		}
		// stay on the login form with the return target intact
		handlers.SeeOther(c, back)
		return
	}

	h.Logger.Info("User signed in", zap.Int64("user_id", result.UserID))
	sc.Notifier.Notify(ctx, apiclient.LevelInfo, MsgWelcome)
	handlers.SeeOther(c, landing(sc.Session.IsAdmin(), target))
}

func (h *AuthHandlers) ShowRegister(c *gin.Context) {
	h.RenderPage(c, "Register", "Register", pages.Section("Create an account",
		pages.Form{
			Action: "/register",
			Submit: "Register",
			Fields: []pages.Field{
				{Name: "username", Label: "Username", Required: true},
				{Name: "password", Label: "Password", Type: "password", Required: true},
				{Name: "nickname", Label: "Nickname"},
				{Name: "phone", Label: "Phone"},
			},
			Cancel: guard.LoginPath,
		}.Component(),
	))
}

func (h *AuthHandlers) Register(c *gin.Context) {
	sc, ok := h.Session(c)
	if !ok {
		return
	}
	var form models.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		h.Complete(c, errors.Wrap(models.ErrValidation, err.Error()), "", "", "/register")
		return
	}
	err := sc.API.Register(c.Request.Context(), form)
	h.Complete(c, err, MsgRegistered, guard.LoginPath, "/register")
}

// Logout always ends the local session, even when the backend call fails.
func (h *AuthHandlers) Logout(c *gin.Context) {
	sc, ok := h.Session(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if err := sc.Session.Logout(ctx); err != nil {
		h.Logger.Warn("Remote logout failed", zap.Error(err))
	}
	sc.Notifier.Notify(ctx, apiclient.LevelInfo, MsgSignedOut)
	handlers.SeeOther(c, guard.HomePath)
}

func landing(admin bool, target string) string {
	if target != "" {
		return target
	}
	if admin {
		return adminHome
	}
	return guard.HomePath
}

// SafeRedirect returns target when it is a local path other than the login
// page, else "".
func SafeRedirect(target string) string {
	if target == "" || !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return ""
	}
	u, err := url.Parse(target)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return ""
	}
	if u.Path == guard.LoginPath {
		return ""
	}
	return target
}
