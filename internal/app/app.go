package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"delivery-api/internal/config"
	"delivery-api/internal/database"
	"delivery-api/internal/event"
	"delivery-api/internal/handler"
	"delivery-api/internal/middleware"
	"delivery-api/internal/repository"
	"delivery-api/internal/router"
	"delivery-api/internal/service"
)

type App struct {
	server       *http.Server
	events       <-chan event.Event
	cleanupFuncs []func()
}

func New(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	slog.Info("connecting to PostgreSQL")
	db, err := database.New(ctx, cfg.DatabaseURL, database.PoolOptions{
		MaxConns: cfg.DBMaxConns,
		MinConns: cfg.DBMinConns,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	userRepo := repository.NewUserRepository(db.Pool)
	orderRepo := repository.NewOrderRepository(db.Pool)
	slog.Info("database ready")

	tokenService, err := service.NewTokenService(cfg.JWTSecret, cfg.JWTAlgorithm, cfg.JWTAccessTTL)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}
	userDirectory := service.NewUserDirectory(userRepo)
	authService := service.NewAuthService(userDirectory, tokenService)
	bus := event.NewBus()
	auditEvents, unsubscribe := bus.Subscribe(0)
	orderService := service.NewOrderService(orderRepo, bus)

	authGate := middleware.NewAuthGate(tokenService, userDirectory, cfg.AuthAllowlist)
	slog.Info("auth gate configured", "allowlist", cfg.AuthAllowlist, "algorithm", cfg.JWTAlgorithm, "access_ttl", cfg.JWTAccessTTL)

	appRouter := router.New(cfg, authGate, router.Handlers{
		Auth:   handler.NewAuthHandler(authService),
		Order:  handler.NewOrderHandler(orderService),
		Docs:   handler.NewDocsHandler(cfg.DocsSpecPath),
		Health: handler.NewHealthHandler(db),
	})

	server := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           appRouter,
		ReadHeaderTimeout: cfg.ServerReadHeaderTimeout,
		WriteTimeout:      cfg.ServerWriteTimeout,
		IdleTimeout:       cfg.ServerIdleTimeout,
	}

	return &App{
		server: server,
		events: auditEvents,
		cleanupFuncs: []func(){
			unsubscribe,
			db.Close,
		},
	}, nil
}

// Run serves until SIGINT or SIGTERM, then drains in-flight requests before
// releasing the pool.
func (a *App) Run() error {
	drainCtx, stopDrain := context.WithCancel(context.Background())
	defer stopDrain()
	go event.Drain(drainCtx, a.events, event.LogAudit)

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case err := <-serveErr:
		a.cleanup()
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-stop:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	shutdownErr := a.server.Shutdown(ctx)
	a.cleanup()
	if shutdownErr != nil {
		return fmt.Errorf("graceful shutdown failed: %w", shutdownErr)
	}

	slog.Info("server stopped")
	return nil
}

func (a *App) cleanup() {
	for _, cleanup := range a.cleanupFuncs {
		cleanup()
	}
}
