package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/taskmanager/internal/server"
	"github.com/iudanet/taskmanager/internal/server/auth"
	"github.com/iudanet/taskmanager/internal/server/config"
	"github.com/iudanet/taskmanager/internal/server/handlers"
	"github.com/iudanet/taskmanager/internal/server/storage"
	"github.com/iudanet/taskmanager/internal/server/storage/redis"
	"github.com/iudanet/taskmanager/internal/server/storage/sqldb"
	"github.com/iudanet/taskmanager/internal/server/tasks"
	"github.com/iudanet/taskmanager/internal/server/token"
	"github.com/iudanet/taskmanager/internal/telemetry"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Show version and exit if requested
	if cfg.ShowVersion {
		printVersion()
		os.Exit(0)
	}

	logger, err := newLogger(cfg, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("Server stopped with error", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("Server stopped")
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	shutdownTracing, err := telemetry.Setup(ctx, "taskmanager-server", Version, cfg.OTELEndpoint)
	if err != nil {
		return fmt.Errorf("setup telemetry: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.WithoutCancel(ctx)); err != nil {
			logger.Warn("Failed to flush traces", slog.Any("error", err))
		}
	}()

	dialect, err := sqldb.ParseDialect(cfg.DBDriver)
	if err != nil {
		return err
	}
	store, err := sqldb.New(ctx, dialect, cfg.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer store.Close()
	logger.Info("Database ready", slog.String("driver", string(dialect)))

	health := map[string]handlers.Pinger{"database": store}

	var revocations storage.RevocationStorage = store
	if cfg.RedisURL != "" {
		redisStore, err := redis.New(ctx, cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer redisStore.Close()
		revocations = redisStore
		health["redis"] = redisStore
		logger.Info("Using Redis for token revocation")
	}

	tokens, err := token.NewService([]byte(cfg.JWTSecret), cfg.TokenTTL)
	if err != nil {
		return fmt.Errorf("create token service: %w", err)
	}

	authSvc, err := auth.NewService(store, revocations, tokens, auth.Config{
		BcryptCost:             cfg.BcryptCost,
		RequireCurrentPassword: cfg.RequireCurrentPassword,
	}, logger)
	if err != nil {
		return fmt.Errorf("create auth service: %w", err)
	}

	srv := server.New(cfg, logger, server.Deps{
		Auth:    authSvc,
		Tasks:   tasks.NewService(store, logger),
		Health:  health,
		Version: Version,
	})
	return srv.Run(ctx)
}

// newLogger создает slog.Logger по LOG_LEVEL и LOG_FORMAT
func newLogger(cfg *config.Config, w io.Writer) (*slog.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler).With(slog.String("service", "taskmanager")), nil
}

func printVersion() {
	fmt.Printf("Task Manager Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
