package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-stallui/internal/app/api"
	"github.com/FACorreiaa/go-stallui/internal/app/guard"
	"github.com/FACorreiaa/go-stallui/internal/app/middleware"
	"github.com/FACorreiaa/go-stallui/internal/app/models"
	"github.com/FACorreiaa/go-stallui/internal/app/observability/metrics"
	"github.com/FACorreiaa/go-stallui/internal/app/pages"
	"github.com/FACorreiaa/go-stallui/internal/pkg/apiclient"
)

const MsgInvalidForm = "Please check the form and try again"

type BaseHandler struct {
	Logger *zap.Logger
}

func NewBaseHandler(logger *zap.Logger) *BaseHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BaseHandler{Logger: logger}
}

// Session returns the request's session context. Without one the request is
// aborted with 500.
func (h *BaseHandler) Session(c *gin.Context) (*middleware.SessionContext, bool) {
	sc, err := middleware.FromContext(c)
	if err != nil {
		h.Logger.Error("Handler reached without session context", zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
		return nil, false
	}
	return sc, true
}

// NewLayoutData wraps content with the navigation and notices of the
// current session. Admin pages use the admin navigation.
func (h *BaseHandler) NewLayoutData(c *gin.Context, title, activeNav string, admin bool, content templ.Component) models.LayoutTempl {
	layout := models.LayoutTempl{
		Title:     title + " - Stall Market",
		Content:   content,
		Nav:       models.OfflineNav,
		ActiveNav: activeNav,
	}
	sc, err := middleware.FromContext(c)
	if err != nil {
		return layout
	}
	if sc.Session.IsLoggedIn() {
		layout.User = sc.Session.User()
		layout.Nav = models.MainNav
		if admin {
			layout.Nav = models.AdminNav
		}
	}
	layout.Notices = sc.Notifier.Drain()
	return layout
}

func (h *BaseHandler) Render(c *gin.Context, status int, component templ.Component) {
	start := time.Now()
	c.Status(status)
	if err := component.Render(c.Request.Context(), c.Writer); err != nil {
		h.Logger.Error("Failed to render page", zap.String("path", c.Request.URL.Path), zap.Error(err))
	}
	metrics.Get().TemplateRenderDuration.Record(c.Request.Context(), time.Since(start).Seconds(),
		metric.WithAttributes(attribute.String("path", c.FullPath())))
}

func (h *BaseHandler) RenderPage(c *gin.Context, title, activeNav string, content templ.Component) {
	h.Render(c, http.StatusOK, pages.LayoutPage(h.NewLayoutData(c, title, activeNav, false, content)))
}

func (h *BaseHandler) RenderAdminPage(c *gin.Context, title, activeNav string, content templ.Component) {
	h.Render(c, http.StatusOK, pages.LayoutPage(h.NewLayoutData(c, title, activeNav, true, content)))
}

// Fail ends a page whose data could not be loaded. A session invalidated by
// the failed call sends the browser to login; otherwise an error page is
// shown with the notice the pipeline queued.
func (h *BaseHandler) Fail(c *gin.Context, title string, err error) {
	if h.followPending(c) {
		return
	}
	h.Logger.Warn("Page data unavailable", zap.String("path", c.Request.URL.Path), zap.Error(err))
	status := http.StatusBadGateway
	switch {
	case errors.Is(err, models.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, models.ErrBadRequest):
		status = http.StatusBadRequest
	}
	h.Render(c, status, pages.LayoutPage(h.NewLayoutData(c, title, "", false,
		pages.ErrorPage(title, "This page could not be loaded."))))
}

// NotFound renders the 404 page.
func (h *BaseHandler) NotFound(c *gin.Context) {
	h.Render(c, http.StatusNotFound, pages.LayoutPage(h.NewLayoutData(c, "Not found", "", false,
		pages.ErrorPage("Not found", "The page you are looking for does not exist."))))
}

// Complete finishes a form submission: on success it queues the success
// notice and redirects to next; on failure it redirects back so the queued
// error notice is shown.
func (h *BaseHandler) Complete(c *gin.Context, err error, success, next, back string) {
	if err == nil {
		if sc, ok := h.Session(c); ok && success != "" {
			sc.Notifier.Notify(c.Request.Context(), apiclient.LevelInfo, success)
		}
		SeeOther(c, next)
		return
	}
	if h.followPending(c) {
		return
	}
	if errors.Is(err, models.ErrValidation) {
		// rejected before dispatch, the pipeline queued nothing
		if sc, ok := h.Session(c); ok {
			sc.Notifier.Notify(c.Request.Context(), apiclient.LevelWarning, MsgInvalidForm)
		}
	}
	h.Logger.Info("Submission failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
	SeeOther(c, back)
}

func (h *BaseHandler) followPending(c *gin.Context) bool {
	sc, err := middleware.FromContext(c)
	if err != nil {
		return false
	}
	if loc, ok := sc.PendingNavigation(); ok {
		guard.Redirect(c, http.StatusUnauthorized, loc)
		return true
	}
	return false
}

// Mutate runs fn against the :id path parameter and completes the
// submission, returning to back either way.
func (h *BaseHandler) Mutate(c *gin.Context, success, back string, fn func(ctx context.Context, a *api.API, id int64) error) {
	sc, ok := h.Session(c)
	if !ok {
		return
	}
	id, ok := PathID(c, "id")
	if !ok {
		h.NotFound(c)
		return
	}
	err := fn(c.Request.Context(), sc.API, id)
	h.Complete(c, err, success, back, back)
}

// SeeOther redirects after a POST.
func SeeOther(c *gin.Context, location string) {
	if c.GetHeader("HX-Request") == "true" {
		c.Header("HX-Redirect", location)
		c.Status(http.StatusOK)
		return
	}
	c.Redirect(http.StatusSeeOther, location)
}

// PathID parses the named path parameter as a positive id.
func PathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
