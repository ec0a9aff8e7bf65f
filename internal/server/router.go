package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/marquee-tv/marquee/internal/logging"
)

// Options configure the serve mode.
type Options struct {
	Dir  string // media directory; defaults to the working directory
	Addr string // listen address; defaults to :8000
}

// SetupRouter creates and configures the Gin router.
func SetupRouter(api *API) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())

	r.GET("/api/videos", api.Videos)
	r.GET("/videos/:name", api.Serve)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}

// corsMiddleware allows browser clients on other origins to read the catalog.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// Run serves the catalog until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	addr := opts.Addr
	if addr == "" {
		addr = ":8000"
	}

	router := SetupRouter(NewAPI(dir))
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.L().WithField("addr", addr).WithField("dir", dir).Info("serving catalog")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	}
}
