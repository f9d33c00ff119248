package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cheese-api/internal/adapters/primary/http/handlers"
	"cheese-api/internal/adapters/primary/http/middleware"
	"cheese-api/internal/adapters/secondary/memory"
	"cheese-api/internal/adapters/secondary/postgres"
	"cheese-api/internal/config"
	ports "cheese-api/internal/core/ports/output"
	"cheese-api/internal/core/services"
)

// healthCheck reports whether the storage backend is reachable.
type healthCheck func(ctx context.Context) error

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	repo, health, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	listingSvc := services.NewCheeseListingService(repo, cfg.API.ItemsPerPage)
	h := handlers.New(listingSvc)
	router := newRouter(cfg, h, health)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced shutdown: %w", err)
	}

	log.Info("server stopped")
	return nil
}

// openStore builds the repository selected by STORAGE_DRIVER.
func openStore(ctx context.Context, cfg *config.Config) (ports.CheeseListingRepository, healthCheck, func(), error) {
	if cfg.Storage.Driver == config.StorageDriverMemory {
		log.Warn("using in-memory storage, data is lost on restart")
		return memory.NewCheeseListingRepository(), func(context.Context) error { return nil }, func() {}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, nil, nil, err
	}
	log.Info("database connection established")

	if cfg.Database.AutoMigrate {
		if err := postgres.MigrateUp(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, nil, err
		}
	}

	return postgres.NewCheeseListingRepository(pool), pool.Ping, pool.Close, nil
}

func newRouter(cfg *config.Config, h *handlers.Handler, health healthCheck) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), middleware.Metrics(), gin.Recovery())
	if cfg.RateLimit.Enabled() {
		router.Use(middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
	}

	api := router.Group("/api")
	h.RegisterRoutes(api)

	// Health check with storage ping
	router.GET("/healthz", func(c *gin.Context) {
		if err := health(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}
