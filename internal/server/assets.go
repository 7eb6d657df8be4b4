package server

import (
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FACorreiaa/go-stallui/assets"
)

const (
	stylesheet        = "css/app.css"
	assetCacheControl = "public, max-age=3600"
)

// SetupAssets serves the embedded stylesheet under /assets. It fails when
// the layout's stylesheet is missing from the embedded tree.
func SetupAssets(r *gin.Engine) error {
	if _, err := fs.Stat(assets.Assets, stylesheet); err != nil {
		return err
	}

	static := r.Group("/assets", func(c *gin.Context) {
		c.Header("Cache-Control", assetCacheControl)
		c.Next()
	})
	static.StaticFS("/", http.FS(assets.Assets))
	return nil
}
