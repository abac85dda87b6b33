package event

import "sync"

// Scope is a listener registry owned by one component.
// Closing the scope unsubscribes everything registered through it.
type Scope struct {
	bus    Bus
	mu     sync.Mutex
	subs   []Subscription
	closed bool
}

// NewScope creates a scope that registers handlers on bus
func NewScope(bus Bus) *Scope {
	return &Scope{bus: bus}
}

// Subscribe registers handler for eventType. After Close it is a no-op.
func (s *Scope) Subscribe(eventType Type, handler Handler) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.subs = append(s.subs, s.bus.Subscribe(eventType, handler))
}

// SubscribeMany registers the same handler for several event types
func (s *Scope) SubscribeMany(types []Type, handler Handler) {
	for _, t := range types {
		s.Subscribe(t, handler)
	}
}

// Len returns the number of live subscriptions held by the scope
func (s *Scope) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// Close unsubscribes every handler registered through the scope
func (s *Scope) Close() {
	s.mu.Lock()
	subs := s.subs
	s.subs = nil
	s.closed = true
	s.mu.Unlock()

	for _, sub := range subs {
		sub.Unsubscribe()
	}
}
