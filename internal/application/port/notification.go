package port

import (
	"context"

	"github.com/gekko-browser/gekko/internal/domain/entity"
)

// ThemeEventKind distinguishes theme notifications.
type ThemeEventKind int

const (
	// ThemeChanged announces a newly committed theme.
	ThemeChanged ThemeEventKind = iota
	// ThemeReverted asks views to roll back to the carried theme.
	ThemeReverted
)

// String returns a human-readable representation of the event kind.
func (k ThemeEventKind) String() string {
	if k == ThemeReverted {
		return "theme-reverted"
	}
	return "theme-changed"
}

// ThemeEvent is published whenever the committed theme changes or a
// change is rolled back.
type ThemeEvent struct {
	Kind  ThemeEventKind
	Theme entity.ThemeID
	// Origin identifies the publisher so it can ignore its own events.
	Origin string
}

// ThemeNotifier is the publish/subscribe capability for theme changes.
// The transport (in-process or cross-window) is an implementation detail.
type ThemeNotifier interface {
	Publish(ctx context.Context, event ThemeEvent)
	// Subscribe registers fn and returns a function that unsubscribes it.
	Subscribe(fn func(context.Context, ThemeEvent)) (unsubscribe func())
}

// StatusReporter is the status line of the shell.
type StatusReporter interface {
	SetStatus(ctx context.Context, message string)
}
