package sse

import (
	"context"

	"github.com/osse101/WheelOfFortune_Go/internal/event"
	"github.com/osse101/WheelOfFortune_Go/internal/logger"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub   *Hub
	scope *event.Scope
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub:   hub,
		scope: event.NewScope(bus),
	}
}

// Subscribe forwards every game notification to the hub
func (s *Subscriber) Subscribe() {
	s.scope.SubscribeMany(event.GameTypes, s.forward)

	types := make([]string, 0, len(event.GameTypes))
	for _, t := range event.GameTypes {
		types = append(types, string(t))
	}
	logger.Info(LogMsgSubscriberAttached, "types", types)
}

// Close detaches the subscriber from the bus
func (s *Subscriber) Close() {
	s.scope.Close()
}

// forward relays the typed payload unchanged; notifications are fire-and-forget
func (s *Subscriber) forward(ctx context.Context, evt event.Event) error {
	sessionID, _ := evt.GetMetadataValue(event.MetadataKeySessionID).(string)
	s.hub.Broadcast(string(evt.Type), sessionID, evt.Payload)

	logger.FromContext(ctx).Debug(LogMsgEventBroadcast, "event_type", evt.Type)
	return nil
}
