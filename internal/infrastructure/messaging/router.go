// Package messaging decodes cross-context messages posted by content views
// and dispatches them to registered handlers.
package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/gekko-browser/gekko/internal/application/port"
	"github.com/gekko-browser/gekko/internal/logging"
)

// Message types understood by the shell.
const (
	TypeNavigate    = "navigate"
	TypeThemeChange = "themeChange"
	TypeDownload    = "download"
)

// ErrUnknownMessageType is returned for messages no handler is registered for.
var ErrUnknownMessageType = errors.New("unknown message type")

// envelope is the part of every message the router reads.
type envelope struct {
	Type string `json:"type"`
}

// MessageHandler handles a decoded message. payload is the complete
// message object, including its type field.
type MessageHandler interface {
	Handle(ctx context.Context, webviewID port.WebViewID, payload json.RawMessage) (any, error)
}

// MessageHandlerFunc adapts a function to the MessageHandler interface.
type MessageHandlerFunc func(ctx context.Context, webviewID port.WebViewID, payload json.RawMessage) (any, error)

// Handle calls f(ctx, webviewID, payload).
func (f MessageHandlerFunc) Handle(ctx context.Context, webviewID port.WebViewID, payload json.RawMessage) (any, error) {
	return f(ctx, webviewID, payload)
}

// Router dispatches messages to handlers by type. The transport that
// delivered a message does not affect how it is handled.
type Router struct {
	mu       sync.RWMutex
	handlers map[string]MessageHandler
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{handlers: make(map[string]MessageHandler)}
}

// RegisterHandler registers a handler for a message type.
func (r *Router) RegisterHandler(msgType string, handler MessageHandler) error {
	if msgType == "" {
		return errors.New("message type cannot be empty")
	}
	if handler == nil {
		return errors.New("message handler cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[msgType] = handler
	return nil
}

// Types returns the registered message types.
func (r *Router) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	types := make([]string, 0, len(r.handlers))
	for t := range r.handlers {
		types = append(types, t)
	}
	return types
}

// Dispatch decodes raw and routes it. Malformed or unknown messages and
// handler panics are returned as errors.
func (r *Router) Dispatch(ctx context.Context, webviewID port.WebViewID, raw []byte) (result any, err error) {
	log := logging.FromContext(ctx).With().Str("component", "message-router").Logger()

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		log.Warn().Err(err).Msg("failed to unmarshal message")
		return nil, fmt.Errorf("decode message: %w", err)
	}

	r.mu.RLock()
	handler, ok := r.handlers[env.Type]
	r.mu.RUnlock()
	if !ok {
		log.Warn().Str("type", env.Type).Msg("no handler registered for message type")
		return nil, fmt.Errorf("%w: %q", ErrUnknownMessageType, env.Type)
	}

	defer func() {
		if p := recover(); p != nil {
			log.Error().Interface("panic", p).Str("type", env.Type).Msg("message handler panicked")
			result, err = nil, fmt.Errorf("handle %s message: panic: %v", env.Type, p)
		}
	}()

	result, err = handler.Handle(ctx, webviewID, raw)
	if err != nil {
		log.Debug().Err(err).Str("type", env.Type).Uint64("webview_id", uint64(webviewID)).Msg("message handler failed")
		return nil, fmt.Errorf("handle %s message: %w", env.Type, err)
	}
	return result, nil
}
