package bootstrap

import (
	"fmt"

	"github.com/osse101/WheelOfFortune_Go/internal/event"
	"github.com/osse101/WheelOfFortune_Go/internal/logger"
	"github.com/osse101/WheelOfFortune_Go/internal/metrics"
	"github.com/osse101/WheelOfFortune_Go/internal/sse"
)

// EventHandlers are the bus subscribers owned by the application
type EventHandlers struct {
	metrics *metrics.EventMetricsCollector
	sse     *sse.Subscriber
}

// RegisterEventHandlers subscribes the metrics collector and, when hub is set,
// the SSE bridge to every game notification on bus.
func RegisterEventHandlers(bus event.Bus, hub *sse.Hub) (*EventHandlers, error) {
	h := &EventHandlers{metrics: metrics.NewEventMetricsCollector()}
	if err := h.metrics.Register(bus); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	logger.Info(LogMsgMetricsCollectorRegistered)

	if hub != nil {
		h.sse = sse.NewSubscriber(hub, bus)
		h.sse.Subscribe()
		logger.Info(LogMsgSSESubscriberRegistered)
	}

	return h, nil
}

// Close detaches every handler from the bus
func (h *EventHandlers) Close() {
	h.metrics.Close()
	if h.sse != nil {
		h.sse.Close()
	}
}
