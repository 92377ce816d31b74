package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/InventoryHub_Go/internal/bootstrap"
	"github.com/osse101/InventoryHub_Go/internal/config"
	"github.com/osse101/InventoryHub_Go/internal/handler"
	"github.com/osse101/InventoryHub_Go/internal/server"
)

// @title						InventoryHub API
// @version					1.0
// @description				Multi-tenant inventories with custom fields, access grants and live discussions.
// @BasePath					/api/v1
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Failed to set up logger", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	if err := run(cfg); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx := context.Background()

	storage, err := bootstrap.InitializeStorage(ctx, cfg)
	if err != nil {
		return err
	}

	authn, err := bootstrap.InitializeAuth(cfg)
	if err != nil {
		storage.Close()
		return err
	}

	bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		storage.Close()
		return err
	}

	services, err := bootstrap.InitializeServices(cfg, storage.Store, authn.Tokens, bus, publisher)
	if err != nil {
		storage.Close()
		return err
	}

	if err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus: bus,
		Registry: services.Registry,
		Locks:    services.Locks,
	}); err != nil {
		storage.Close()
		return err
	}

	readiness := map[string]handler.Pinger{}
	if storage.Pool != nil {
		readiness["database"] = storage.Pool
	} else if p, ok := storage.Store.(handler.Pinger); ok {
		readiness["store"] = p
	}
	if authn.Redis != nil {
		readiness["redis"] = authn.Redis
	}

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		TrustedProxies: cfg.TrustedProxies,
		AllowedOrigins: cfg.AllowedOrigins,
	}, server.Dependencies{
		Users:       services.Users,
		Inventories: services.Inventories,
		Items:       services.Items,
		Fields:      services.Fields,
		Likes:       services.Likes,
		Posts:       services.Posts,
		Tokens:      authn.Tokens,
		Connector:   services.Connector,
		Registry:    services.Registry,
		Readiness:   readiness,
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	var runErr error
	select {
	case <-stop:
	case runErr = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		Registry:           services.Registry,
		ResilientPublisher: publisher,
		Auth:               authn,
		Storage:            storage,
	})
	return runErr
}
