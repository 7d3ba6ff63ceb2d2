// internal/server/server.go
// Package server exposes the comparison board over a read-only HTTP API.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mwiater/llmcompare/internal/catalog"
	"github.com/mwiater/llmcompare/internal/logging"
	"github.com/mwiater/llmcompare/internal/query"
	"github.com/mwiater/llmcompare/internal/server/resp"
)

const shutdownTimeout = 5 * time.Second

// Server serves a fixed catalog. Each request evaluates its own state, so the
// server holds no mutable state.
type Server struct {
	models   []catalog.Model
	defaults query.State
	debug    bool
}

// New returns a server for models. defaults is the state query parameters are applied to.
func New(models []catalog.Model, defaults query.State, debug bool) *Server {
	return &Server{models: models, defaults: defaults.Normalize(), debug: debug}
}

// Handler builds the gin engine with every route registered.
func (s *Server) Handler() http.Handler {
	if s.debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logging.Errorf("[SERVER] panic serving %s: %v", c.Request.URL.Path, recovered)
		resp.Error(c, http.StatusInternalServerError, resp.ErrInternalServer)
	}))
	r.Use(requestLogger())

	api := r.Group("/api/v1")
	api.GET("/models", s.listModels)
	api.GET("/compare", s.compareModels)
	api.GET("/cost", s.scenarioCost)
	api.GET("/cost/tasks", s.taskCosts)
	api.GET("/summary", s.summary)
	api.GET("/categories", s.categories)
	api.GET("/export/:format", s.export)
	r.GET("/", s.htmlReport)

	r.NoRoute(func(c *gin.Context) {
		resp.Error(c, http.StatusNotFound, resp.ErrResourceNotFound)
	})
	return r
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.Handler(), ReadHeaderTimeout: 10 * time.Second}

	errCh := make(chan error, 1)
	go func() {
		logging.LogEvent("[SERVER] listening on http://%s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	logging.LogEvent("[SERVER] shutting down")
	return srv.Shutdown(shutdownCtx)
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logging.Sugar().Debugw("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"query", c.Request.URL.RawQuery,
			"status", c.Writer.Status(),
			"elapsed", time.Since(start),
		)
	}
}
