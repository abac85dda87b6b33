package event

import "context"

type taggedBus struct {
	inner Bus
	key   string
	value interface{}
}

// Tagged wraps bus so every published event carries key=value in its metadata.
// Subscriptions pass straight through to the wrapped bus.
func Tagged(bus Bus, key string, value interface{}) Bus {
	return &taggedBus{inner: bus, key: key, value: value}
}

func (b *taggedBus) Publish(ctx context.Context, event Event) error {
	return b.inner.Publish(ctx, event.WithMetadata(b.key, b.value))
}

func (b *taggedBus) Subscribe(eventType Type, handler Handler) Subscription {
	return b.inner.Subscribe(eventType, handler)
}
