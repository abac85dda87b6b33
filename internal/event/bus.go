package event

import (
	"context"
	"fmt"
	"sync"
)

type subscriber struct {
	id      uint64
	handler Handler
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]subscriber
	nextID   uint64
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]subscriber),
	}
}

// Publish publishes an event to all subscribers of its type, then to AnyType subscribers.
// Handlers run synchronously in subscription order; their errors are collected, not fatal.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	typed := b.handlers[event.Type]
	wildcard := b.handlers[AnyType]
	targets := make([]subscriber, 0, len(typed)+len(wildcard))
	targets = append(targets, typed...)
	targets = append(targets, wildcard...)
	b.mu.RUnlock()

	if len(targets) == 0 {
		return nil
	}

	var errs []error
	for _, sub := range targets {
		if err := sub.handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscriber{id: id, handler: handler})

	return &memorySubscription{bus: b, eventType: eventType, id: id}
}

// HandlerCount returns the number of live handlers for an event type
func (b *MemoryBus) HandlerCount(eventType Type) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[eventType])
}

func (b *MemoryBus) remove(eventType Type, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.handlers[eventType]
	for i, s := range subs {
		if s.id != id {
			continue
		}
		next := make([]subscriber, 0, len(subs)-1)
		next = append(next, subs[:i]...)
		next = append(next, subs[i+1:]...)
		if len(next) == 0 {
			delete(b.handlers, eventType)
		} else {
			b.handlers[eventType] = next
		}
		return
	}
}

type memorySubscription struct {
	bus       *MemoryBus
	eventType Type
	id        uint64
	once      sync.Once
}

func (s *memorySubscription) Unsubscribe() {
	s.once.Do(func() {
		s.bus.remove(s.eventType, s.id)
	})
}
