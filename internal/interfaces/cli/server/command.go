// Package server implements the `vitrine server` command: it wires the
// infrastructure, starts the HTTP API and handles graceful shutdown.
package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	authApp "vitrine/internal/application/auth"
	contentApp "vitrine/internal/application/content"
	mediaApp "vitrine/internal/application/media"
	infraAuth "vitrine/internal/infrastructure/auth"
	"vitrine/internal/infrastructure/config"
	"vitrine/internal/infrastructure/kv"
	"vitrine/internal/infrastructure/objstore"
	"vitrine/internal/infrastructure/ratelimit"
	"vitrine/internal/infrastructure/session"
	httpRouter "vitrine/internal/interfaces/http"
	"vitrine/internal/shared/logger"
	"vitrine/internal/shared/services/markdown"
	"vitrine/internal/shared/version"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the portfolio API server with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = mapEnvToGinMode(env)

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("starting server",
		"environment", env,
		"version", version.String())

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelPing()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		logger.Fatal("failed to connect to redis", "error", err)
	}

	storageClient, err := objstore.NewMinioClient(&cfg.Storage)
	if err != nil {
		logger.Fatal("failed to create storage client", "error", err)
	}

	log := logger.NewLogger()
	store := kv.NewRedisStore(redisClient)

	sessions := session.NewManager(store, time.Duration(cfg.Auth.SessionTTLHours)*time.Hour, log)
	loginLimiter := ratelimit.NewLoginLimiter(
		cfg.Auth.LoginLimit.MaxAttempts,
		time.Duration(cfg.Auth.LoginLimit.WindowMinutes)*time.Minute,
		time.Duration(cfg.Auth.LoginLimit.LockoutMinutes)*time.Minute,
	)
	apiLimiter := ratelimit.NewAPILimiter(
		cfg.Auth.APILimit.Limit,
		time.Duration(cfg.Auth.APILimit.WindowSeconds)*time.Second,
	)

	verifier := infraAuth.NewPasswordVerifier(cfg.Auth.AdminPassword)
	if !verifier.Configured() {
		logger.Warn("no administrator password configured; every login will fail until VITRINE_AUTH_ADMIN_PASSWORD is set")
	}

	authService := authApp.NewService(verifier, sessions, loginLimiter, log)
	contentService := contentApp.NewService(store, markdown.NewRenderer(), log)
	mediaService := mediaApp.NewService(storageClient, &cfg.Storage, log)

	bootCtx, cancelBoot := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelBoot()
	if err := mediaService.Bootstrap(bootCtx); err != nil {
		logger.Fatal("failed to prepare media bucket", "error", err)
	}

	router := httpRouter.NewRouter(cfg, authService, contentService, mediaService, apiLimiter, log)
	router.SetupRoutes()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting",
			"address", cfg.Server.GetAddr(),
			"mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("server exited gracefully")
	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
