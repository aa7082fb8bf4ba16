// Package server собирает HTTP API: маршруты, middleware и жизненный цикл http.Server.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/iudanet/taskmanager/internal/server/auth"
	"github.com/iudanet/taskmanager/internal/server/config"
	"github.com/iudanet/taskmanager/internal/server/handlers"
	"github.com/iudanet/taskmanager/internal/server/middleware"
	"github.com/iudanet/taskmanager/internal/server/tasks"
)

// Deps are the services the HTTP layer is built on
type Deps struct {
	Auth    *auth.Service
	Tasks   *tasks.Service
	Health  map[string]handlers.Pinger
	Version string
}

// Server is the task manager HTTP API
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
	authSvc    *auth.Service
	limiter    *middleware.RateLimiter
	cfg        *config.Config
}

// New создает сервер и регистрирует все маршруты
func New(cfg *config.Config, logger *slog.Logger, deps Deps) *Server {
	limiter := middleware.NewRateLimiter(cfg.AuthRateLimit, cfg.AuthRateBurst)

	s := &Server{
		logger:  logger,
		authSvc: deps.Auth,
		limiter: limiter,
		cfg:     cfg,
	}

	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.routes(deps),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

// Handler returns the root handler with the full middleware chain
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) routes(deps Deps) http.Handler {
	authHandler := handlers.NewAuthHandler(s.logger, deps.Auth)
	userHandler := handlers.NewUserHandler(s.logger, deps.Auth)
	taskHandler := handlers.NewTaskHandler(s.logger, deps.Tasks)
	healthHandler := handlers.NewHealthHandler(s.logger, deps.Version, deps.Health)

	rateLimited := middleware.RateLimit(s.limiter, s.cfg.TrustProxy, s.logger)
	gate := middleware.AuthGate(s.logger, deps.Auth)

	public := func(h http.HandlerFunc) http.Handler { return h }
	limited := func(h http.HandlerFunc) http.Handler { return rateLimited(h) }
	protected := func(h http.HandlerFunc) http.Handler { return gate(h) }

	routes := []struct {
		handler http.Handler
		method  string
		path    string
	}{
		{method: http.MethodPost, path: "/auth/register", handler: limited(authHandler.Register)},
		{method: http.MethodPost, path: "/auth/login", handler: limited(authHandler.Login)},
		{method: http.MethodPost, path: "/auth/logout", handler: protected(authHandler.Logout)},

		{method: http.MethodGet, path: "/user/profile", handler: protected(userHandler.Profile)},
		{method: http.MethodPut, path: "/user/profile", handler: protected(userHandler.UpdateProfile)},

		{method: http.MethodPost, path: "/tasks", handler: protected(taskHandler.Create)},
		{method: http.MethodGet, path: "/tasks", handler: protected(taskHandler.List)},
		{method: http.MethodGet, path: "/tasks/{id}", handler: protected(taskHandler.Get)},
		{method: http.MethodPut, path: "/tasks/{id}", handler: protected(taskHandler.Update)},
		{method: http.MethodDelete, path: "/tasks/{id}", handler: protected(taskHandler.Delete)},

		{method: http.MethodGet, path: "/health", handler: public(healthHandler.Health)},
	}

	mux := http.NewServeMux()
	for _, prefix := range []string{"", "/api"} {
		for _, rt := range routes {
			mux.Handle(rt.method+" "+prefix+rt.path, rt.handler)
		}
	}

	return middleware.Chain(mux,
		middleware.Recovery(s.logger),
		middleware.Logging(s.logger, "/health", "/api/health"),
		middleware.SecureHeaders,
		middleware.CORS(s.cfg.CORSOrigins),
	)
}

// Run запускает HTTP сервер и фоновую очистку отозванных токенов.
// Блокируется до отмены ctx, затем выполняет graceful shutdown.
func (s *Server) Run(ctx context.Context) error {
	defer s.limiter.Stop()

	bgCtx, cancelBg := context.WithCancel(context.WithoutCancel(ctx))
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.authSvc.RunRevocationCleanup(bgCtx, s.cfg.RevocationCleanupInterval)
	}()
	defer func() {
		cancelBg()
		wg.Wait()
	}()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", slog.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down HTTP server", slog.Duration("timeout", s.cfg.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}
