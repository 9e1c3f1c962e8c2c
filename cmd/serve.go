package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"relief-coordination.com/relief-coordination/internal/auth"
	config "relief-coordination.com/relief-coordination/internal/configs"
	httpapi "relief-coordination.com/relief-coordination/internal/http"
	middleware "relief-coordination.com/relief-coordination/internal/http/middlewares"
	"relief-coordination.com/relief-coordination/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the volunteer task HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		logger, err := config.NewLogger(cfg.LogLevel, cfg.LogFile)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		store, closeStore, err := openStore(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer closeStore()

		limiter, closeLimiter, err := newLimiter(cfg, logger)
		if err != nil {
			return err
		}
		defer closeLimiter()

		taskService := services.NewTaskService(store, logger, cfg.AssignRetryLimit)
		statsService := services.NewStatsService(store)
		tokens := auth.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.JWTTTLHours)*time.Hour)

		e := httpapi.NewRouter(httpapi.NewHandler(taskService, statsService), httpapi.RouterConfig{
			Verifier:     tokens,
			Limiter:      limiter,
			AllowOrigins: cfg.CORSAllowOrigins,
			Logger:       logger,
		})

		return runServer(ctx, e, cfg.AppURL, time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second, logger)
	},
}

// runServer serves e on addr until ctx is cancelled or the listener fails.
// A listener failure is returned after the server has been shut down.
func runServer(ctx context.Context, e *echo.Echo, addr string, shutdownTimeout time.Duration, logger *zap.Logger) error {
	serverErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	var startErr error
	select {
	case <-ctx.Done():
	case startErr = <-serverErr:
		logger.Error("server stopped", zap.Error(startErr))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Warn("HTTP server shutdown incomplete", zap.Error(err))
	}

	if startErr != nil {
		return fmt.Errorf("http server: %w", startErr)
	}
	logger.Info("HTTP server shut down gracefully")
	return nil
}

func newLimiter(cfg config.Config, logger *zap.Logger) (middleware.Limiter, func(), error) {
	if cfg.RateLimitBackend != config.RateLimitRedis {
		return middleware.NewMemoryLimiter(cfg.RateLimit, time.Minute), func() {}, nil
	}

	client, err := config.NewRedisClient(cfg.RedisAddr)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("using redis rate limiter", zap.String("addr", cfg.RedisAddr))

	limiter := middleware.NewRedisLimiter(client, cfg.RedisRateLimitPrefix, cfg.RateLimit, time.Minute, logger)
	return limiter, client.Close, nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
