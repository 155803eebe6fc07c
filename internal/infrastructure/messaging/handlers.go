package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gekko-browser/gekko/internal/application/port"
	"github.com/gekko-browser/gekko/internal/application/usecase"
	"github.com/gekko-browser/gekko/internal/domain/download"
	"github.com/gekko-browser/gekko/internal/domain/entity"
	"github.com/gekko-browser/gekko/internal/logging"
)

// NavigateMessage is {type:"navigate", url, target?, id?}.
type NavigateMessage struct {
	Type   string `json:"type"`
	URL    string `json:"url"`
	Target string `json:"target,omitempty"`
	ID     string `json:"id,omitempty"`
}

// ThemeChangeMessage is {type:"themeChange", theme}.
type ThemeChangeMessage struct {
	Type  string `json:"type"`
	Theme string `json:"theme"`
}

// DownloadMessage is {type:"download", url, filename?, mimeType?}.
type DownloadMessage struct {
	Type     string `json:"type"`
	URL      string `json:"url"`
	Filename string `json:"filename,omitempty"`
	MimeType string `json:"mimeType,omitempty"`
}

// Navigator accepts navigation intents.
type Navigator interface {
	Dispatch(ctx context.Context, intent usecase.Intent) error
}

// ThemeRequester accepts theme change requests.
type ThemeRequester interface {
	RequestThemeChange(ctx context.Context, themeID string) bool
}

// TabLookup maps a sending view to its tab.
type TabLookup interface {
	TabForView(viewID port.WebViewID) (entity.TabID, bool)
}

// NavigateHandler turns navigate messages into intents. Messages without
// a target navigate the sender's own tab when tabs can resolve it.
func NavigateHandler(nav Navigator, tabs TabLookup) MessageHandler {
	return MessageHandlerFunc(func(ctx context.Context, webviewID port.WebViewID, payload json.RawMessage) (any, error) {
		var msg NavigateMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			return nil, fmt.Errorf("decode navigate message: %w", err)
		}

		target := entity.TabID(msg.Target)
		if target == "" && tabs != nil && webviewID != 0 {
			if id, ok := tabs.TabForView(webviewID); ok {
				target = id
			}
		}

		err := nav.Dispatch(ctx, usecase.Intent{
			ID:      msg.ID,
			URL:     msg.URL,
			Target:  target,
			Channel: usecase.ChannelMessage,
		})
		if err != nil {
			return nil, err
		}
		return map[string]any{"ok": true}, nil
	})
}

// ThemeChangeHandler forwards themeChange messages to the coordinator.
func ThemeChangeHandler(themes ThemeRequester) MessageHandler {
	return MessageHandlerFunc(func(ctx context.Context, _ port.WebViewID, payload json.RawMessage) (any, error) {
		var msg ThemeChangeMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			return nil, fmt.Errorf("decode themeChange message: %w", err)
		}
		return map[string]any{"ok": themes.RequestThemeChange(ctx, msg.Theme)}, nil
	})
}

// DownloadHandler records download messages as in-progress downloads.
// The response carries the record ID and the sanitized filename.
func DownloadHandler(store port.DownloadStore, newID func() string, now func() time.Time) MessageHandler {
	return MessageHandlerFunc(func(ctx context.Context, _ port.WebViewID, payload json.RawMessage) (any, error) {
		var msg DownloadMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			return nil, fmt.Errorf("decode download message: %w", err)
		}
		if strings.TrimSpace(msg.URL) == "" {
			return nil, fmt.Errorf("download message: %w", usecase.ErrEmptyURL)
		}

		record := download.NewRecord(newID(), msg.URL, msg.Filename, msg.MimeType, now())
		if err := store.Add(ctx, record); err != nil {
			return nil, fmt.Errorf("record download: %w", err)
		}

		logging.FromContext(ctx).Info().
			Str("download_id", record.ID).
			Str("filename", record.Filename).
			Msg("download recorded")
		return map[string]any{"id": record.ID, "filename": record.Filename}, nil
	})
}
