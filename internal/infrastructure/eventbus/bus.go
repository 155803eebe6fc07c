// Package eventbus provides the in-process transport for theme notifications.
package eventbus

import (
	"context"
	"sync"

	"github.com/gekko-browser/gekko/internal/application/port"
	"github.com/gekko-browser/gekko/internal/logging"
)

// ThemeBus implements port.ThemeNotifier with synchronous in-process
// delivery. Subscribers are called in registration order; a panicking
// subscriber is logged and does not stop delivery to the others.
type ThemeBus struct {
	mu     sync.RWMutex
	nextID uint64
	subs   []subscription
}

type subscription struct {
	id uint64
	fn func(context.Context, port.ThemeEvent)
}

// NewThemeBus creates an empty bus.
func NewThemeBus() *ThemeBus {
	return &ThemeBus{}
}

// Publish delivers event to every subscriber.
func (b *ThemeBus) Publish(ctx context.Context, event port.ThemeEvent) {
	b.mu.RLock()
	subs := make([]subscription, len(b.subs))
	copy(subs, b.subs)
	b.mu.RUnlock()

	logging.FromContext(ctx).Debug().
		Str("event", event.Kind.String()).
		Str("theme", string(event.Theme)).
		Int("subscribers", len(subs)).
		Msg("publishing theme event")

	for _, sub := range subs {
		deliver(ctx, sub, event)
	}
}

func deliver(ctx context.Context, sub subscription, event port.ThemeEvent) {
	defer func() {
		if r := recover(); r != nil {
			logging.FromContext(ctx).Error().
				Interface("panic", r).
				Uint64("subscriber", sub.id).
				Msg("theme subscriber panicked")
		}
	}()
	sub.fn(ctx, event)
}

// Subscribe registers fn and returns its unsubscribe function.
func (b *ThemeBus) Subscribe(fn func(context.Context, port.ThemeEvent)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscription{id: id, fn: fn})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, s := range b.subs {
			if s.id == id {
				b.subs = append(b.subs[:i], b.subs[i+1:]...)
				return
			}
		}
	}
}
