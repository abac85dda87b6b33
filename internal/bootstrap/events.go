package bootstrap

import (
	"github.com/osse101/WheelOfFortune_Go/internal/event"
	"github.com/osse101/WheelOfFortune_Go/internal/logger"
	"github.com/osse101/WheelOfFortune_Go/internal/sse"
)

// EventSystem is the in-process bus and the SSE hub fed from it
type EventSystem struct {
	Bus event.Bus
	Hub *sse.Hub
}

// InitializeEventSystem creates the event bus and starts the SSE hub
func InitializeEventSystem() *EventSystem {
	hub := sse.NewHub()
	hub.Start()

	logger.Info(LogMsgEventSystemInitialized, "game_types", len(event.GameTypes))
	return &EventSystem{
		Bus: event.NewMemoryBus(),
		Hub: hub,
	}
}
