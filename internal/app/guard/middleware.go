package guard

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-stallui/internal/pkg/apiclient"
)

// Resolver returns the session and notifier bound to the request.
type Resolver func(c *gin.Context) (Session, apiclient.Notifier, error)

// Middleware enforces meta on every request of a route.
func (g *Guard) Middleware(meta Meta, resolve Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !meta.RequiresAuth && !meta.RequiresAdmin {
			c.Next()
			return
		}

		s, notifier, err := resolve(c)
		if err != nil {
			g.logger.Error("No session bound to request", zap.Error(err))
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		d := g.Evaluate(c.Request.Context(), s, Target{FullPath: c.Request.URL.RequestURI(), Meta: meta})
		notify(c.Request.Context(), notifier, d)

		switch d.Outcome {
		case RedirectLogin:
			Redirect(c, http.StatusUnauthorized, d.Location)
		case RedirectHome:
			Redirect(c, http.StatusForbidden, d.Location)
		default:
			c.Next()
		}
	}
}

// Redirect sends the browser to location. HTMX requests get an HX-Redirect
// header with htmxStatus, others a 302.
func Redirect(c *gin.Context, htmxStatus int, location string) {
	if c.GetHeader("HX-Request") == "true" {
		c.Header("HX-Redirect", location)
		c.AbortWithStatus(htmxStatus)
		return
	}
	c.Redirect(http.StatusFound, location)
	c.Abort()
}
