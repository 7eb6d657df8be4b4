package server

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StartPprofServer serves the profiling endpoints on their own listener.
// An empty addr disables it; the port must stay internal.
func StartPprofServer(addr string, logger *zap.Logger) {
	if addr == "" {
		return
	}

	pprofRouter := gin.New()
	pprof.Register(pprofRouter)

	go func() {
		logger.Info("Starting pprof server", zap.String("addr", addr))
		if err := pprofRouter.Run(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("pprof server stopped", zap.Error(err))
		}
	}()
}
