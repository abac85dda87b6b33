package metrics

import (
	"context"
	"time"

	"github.com/osse101/WheelOfFortune_Go/internal/event"
	"github.com/osse101/WheelOfFortune_Go/internal/logger"
)

// EventMetricsCollector subscribes to game events and records metrics
type EventMetricsCollector struct {
	scope *event.Scope
}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to every game event. Close undoes it.
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	e.scope = event.NewScope(bus)
	e.scope.SubscribeMany(event.GameTypes, e.HandleEvent)
	return nil
}

// Close unsubscribes the collector
func (e *EventMetricsCollector) Close() {
	if e.scope != nil {
		e.scope.Close()
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	if err := record(evt); err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgEventPayloadUndecodable, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func record(evt event.Event) error {
	switch evt.Type {
	case event.SpinStarted:
		p, err := event.DecodePayload[event.SpinStartedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		SpinsStarted.Inc()
		SpinDuration.Observe((time.Duration(p.DurationMs) * time.Millisecond).Seconds())

	case event.BombHit:
		BombHits.Inc()

	case event.RewardCollected:
		p, err := event.DecodePayload[event.RewardCollectedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		kind := string(p.Reward.Kind)
		RewardsCollected.WithLabelValues(kind).Inc()
		RewardAmount.WithLabelValues(kind).Add(float64(p.Reward.Amount))

	case event.ZoneChanged:
		p, err := event.DecodePayload[event.ZoneChangedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		CurrentZone.Set(float64(p.Zone))
		HighestZone.Set(float64(p.HighestZone))

	case event.SafeZoneEntered:
		ZonesEntered.WithLabelValues(ZoneKindLabelSafe).Inc()

	case event.SuperZoneEntered:
		ZonesEntered.WithLabelValues(ZoneKindLabelSuper).Inc()

	case event.GameRestarted:
		p, err := event.DecodePayload[event.GameRestartedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		GameRestarts.WithLabelValues(p.Reason).Inc()

	case event.StateChanged:
		p, err := event.DecodePayload[event.StateChangedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		StateTransitions.WithLabelValues(string(p.From), string(p.To)).Inc()
	}
	return nil
}
