package bootstrap

import (
	"context"

	"github.com/osse101/WheelOfFortune_Go/internal/logger"
	"github.com/osse101/WheelOfFortune_Go/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Any of them may be nil.
type ShutdownComponents struct {
	Server   *server.Server
	Game     *GameComponents
	Handlers *EventHandlers
	Events   *EventSystem
	Storage  *Storage
}

// GracefulShutdown stops components in dependency order:
//  1. HTTP server (stop accepting new requests)
//  2. game session, scheduler and workers (drop pending spins)
//  3. event handlers and SSE hub (close client streams)
//  4. storage (release the database pool)
//
// Errors are logged but do not stop the sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	logger.Info(LogMsgShuttingDownServer)

	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			logger.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.Game != nil {
		if err := c.Game.Shutdown(ctx); err != nil {
			logger.Error(LogMsgSchedulerShutdown, "error", err)
		}
	}

	if c.Handlers != nil {
		c.Handlers.Close()
	}
	if c.Events != nil {
		c.Events.Hub.Stop()
	}

	if c.Storage != nil {
		c.Storage.Close()
	}

	logger.Info(LogMsgServerStopped)
}
