package headless

import (
	"context"
	"sync"

	"github.com/gekko-browser/gekko/internal/application/port"
	"github.com/gekko-browser/gekko/internal/logging"
)

// StatusLine is a port.StatusReporter that keeps the latest message.
type StatusLine struct {
	mu      sync.Mutex
	message string
}

var _ port.StatusReporter = (*StatusLine)(nil)

// SetStatus records message and logs it.
func (s *StatusLine) SetStatus(ctx context.Context, message string) {
	s.mu.Lock()
	s.message = message
	s.mu.Unlock()
	logging.FromContext(ctx).Info().Str("status", message).Msg("status updated")
}

// Message returns the latest status message.
func (s *StatusLine) Message() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.message
}
