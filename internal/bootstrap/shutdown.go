package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/InventoryHub_Go/internal/discussion"
	"github.com/osse101/InventoryHub_Go/internal/event"
	"github.com/osse101/InventoryHub_Go/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server             *server.Server
	Registry           *discussion.Registry
	ResilientPublisher *event.ResilientPublisher
	Auth               *Auth
	Storage            *Storage
}

// GracefulShutdown stops the application in order:
// 1. HTTP server (stop accepting new requests)
// 2. Live discussion connections (their handlers hold the server's Shutdown open)
// 3. Event publisher (flush pending events)
// 4. Redis and database connections
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	// Hijacked websocket connections are not tracked by http.Server, so close them first.
	slog.Info(LogMsgClosingLiveConnections)
	components.Registry.CloseAll(discussion.CloseGoingAway, discussion.ReasonShutdown)

	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	slog.Info(LogMsgShuttingDownEventPublisher)
	if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
		slog.Error(LogMsgResilientPublisherFailed, "error", err)
	}

	if components.Auth != nil && components.Auth.Redis != nil {
		if err := components.Auth.Redis.Close(); err != nil {
			slog.Error(LogMsgRevocationStoreCloseFailed, "error", err)
		}
	}
	if components.Storage != nil {
		components.Storage.Close()
	}

	slog.Info(LogMsgServerStopped)
}
