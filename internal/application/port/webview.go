// Package port defines application-layer interfaces for external capabilities.
// Ports abstract infrastructure concerns, allowing the application layer to
// remain independent of specific implementations (WebKit, GTK, etc.).
package port

import (
	"context"
)

// WebViewID uniquely identifies a WebView instance.
type WebViewID uint64

// ViewEventKind enumerates lifecycle signals emitted by a WebView.
type ViewEventKind int

const (
	// ViewReady indicates the view finished initializing and accepts Load.
	ViewReady ViewEventKind = iota
	// ViewLoadStarted indicates navigation has begun.
	ViewLoadStarted
	// ViewDidNavigate indicates the view committed to a final URI.
	ViewDidNavigate
	// ViewTitleChanged indicates the page title changed.
	ViewTitleChanged
	// ViewFaviconChanged indicates the page favicon changed.
	ViewFaviconChanged
	// ViewLoadFinished indicates the page has fully loaded.
	ViewLoadFinished
	// ViewLoadFailed indicates the navigation failed.
	ViewLoadFailed
)

// String returns a human-readable representation of the event kind.
func (k ViewEventKind) String() string {
	switch k {
	case ViewReady:
		return "ready"
	case ViewLoadStarted:
		return "load-started"
	case ViewDidNavigate:
		return "did-navigate"
	case ViewTitleChanged:
		return "title-changed"
	case ViewFaviconChanged:
		return "favicon-changed"
	case ViewLoadFinished:
		return "load-finished"
	case ViewLoadFailed:
		return "load-failed"
	default:
		return "unknown"
	}
}

// ViewEvent is a signal from a WebView. Seq echoes the LoadRequest.Seq of
// the navigation the event belongs to; zero means unknown.
type ViewEvent struct {
	Kind    ViewEventKind
	URI     string
	Title   string
	Favicon string
	Seq     uint64
	Err     error
}

// LoadRequest asks a view to load a URI. Seq is the tab's navigation
// sequence number and must be echoed on the resulting events.
type LoadRequest struct {
	URI string
	Seq uint64
}

// WebView defines the port interface for a tab's rendering surface.
// Events may arrive at any time relative to Load calls.
type WebView interface {
	// ID returns the unique identifier for this WebView.
	ID() WebViewID

	// Load navigates to the requested URI. Returns an error when the
	// view is not ready.
	Load(ctx context.Context, req LoadRequest) error

	// SetSource records the URI as the view's load target, to be picked
	// up when the view finishes initializing.
	SetSource(req LoadRequest) error

	// IsReady returns true once the view accepts Load.
	IsReady() bool

	// SetVisible shows or hides the view.
	SetVisible(visible bool)

	// InjectCSS replaces the injected theme stylesheet.
	InjectCSS(ctx context.Context, css string) error

	// OnEvent registers the single event handler. Pass nil to clear.
	OnEvent(handler func(ViewEvent))

	// IsDestroyed returns true if the WebView has been destroyed.
	IsDestroyed() bool

	// Destroy releases all resources associated with this WebView.
	// After calling Destroy, the WebView should not be used.
	Destroy()
}

// WebViewFactory creates new WebView instances.
type WebViewFactory interface {
	Create(ctx context.Context) (WebView, error)
}

// ViewSource exposes the live views for read-only iteration.
type ViewSource interface {
	LiveViews() []WebView
}
