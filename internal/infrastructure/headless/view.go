// Package headless provides an in-memory content view. It implements the
// view ports without rendering anything, which lets the shell core run in
// the CLI and in tests.
package headless

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gekko-browser/gekko/internal/application/port"
)

var (
	// ErrNotReady is returned by Load before the view has initialized.
	ErrNotReady = errors.New("view not ready")
	// ErrDestroyed is returned by any operation on a destroyed view.
	ErrDestroyed = errors.New("view destroyed")
)

// Page is the result of loading a URI.
type Page struct {
	URI   string // final URI after redirects; empty means unchanged
	Title string
}

// Loader fetches a URI for a headless view.
type Loader func(ctx context.Context, uri string) (Page, error)

// View is an in-memory port.WebView.
type View struct {
	id     port.WebViewID
	loader Loader
	auto   bool

	mu        sync.Mutex
	ready     bool
	visible   bool
	destroyed bool
	source    *port.LoadRequest
	css       string
	loads     []string
	handler   func(port.ViewEvent)
}

var _ port.WebView = (*View)(nil)

// ID returns the unique identifier for this view.
func (v *View) ID() port.WebViewID { return v.id }

// Load navigates to req.URI, emitting the lifecycle events synchronously.
func (v *View) Load(ctx context.Context, req port.LoadRequest) error {
	v.mu.Lock()
	switch {
	case v.destroyed:
		v.mu.Unlock()
		return ErrDestroyed
	case !v.ready:
		v.mu.Unlock()
		return ErrNotReady
	}
	v.loads = append(v.loads, req.URI)
	v.mu.Unlock()

	v.emit(port.ViewEvent{Kind: port.ViewLoadStarted, URI: req.URI, Seq: req.Seq})

	page := Page{}
	if v.loader != nil {
		var err error
		page, err = v.loader(ctx, req.URI)
		if err != nil {
			v.emit(port.ViewEvent{Kind: port.ViewLoadFailed, URI: req.URI, Seq: req.Seq, Err: err})
			return nil
		}
	}
	final := req.URI
	if page.URI != "" {
		final = page.URI
	}

	v.emit(port.ViewEvent{Kind: port.ViewDidNavigate, URI: final, Seq: req.Seq})
	if page.Title != "" {
		v.emit(port.ViewEvent{Kind: port.ViewTitleChanged, Title: page.Title, Seq: req.Seq})
	}
	v.emit(port.ViewEvent{Kind: port.ViewLoadFinished, URI: final, Seq: req.Seq})
	return nil
}

// SetSource records the initial load target. Views created by an
// auto-ready factory finish initializing here.
func (v *View) SetSource(req port.LoadRequest) error {
	v.mu.Lock()
	if v.destroyed {
		v.mu.Unlock()
		return ErrDestroyed
	}
	v.source = &req
	auto := v.auto && !v.ready
	v.mu.Unlock()

	if auto {
		return v.MarkReady(context.Background())
	}
	return nil
}

// MarkReady completes initialization: the view emits ViewReady and then
// loads the pending source, if any.
func (v *View) MarkReady(ctx context.Context) error {
	v.mu.Lock()
	if v.destroyed {
		v.mu.Unlock()
		return ErrDestroyed
	}
	v.ready = true
	pending := v.source
	v.source = nil
	v.mu.Unlock()

	v.emit(port.ViewEvent{Kind: port.ViewReady})
	if pending != nil {
		if err := v.Load(ctx, *pending); err != nil {
			return fmt.Errorf("load pending source: %w", err)
		}
	}
	return nil
}

// IsReady returns true once the view accepts Load.
func (v *View) IsReady() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.ready
}

// SetVisible shows or hides the view.
func (v *View) SetVisible(visible bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.visible = visible
}

// Visible reports whether the view is shown.
func (v *View) Visible() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.visible
}

// InjectCSS replaces the injected stylesheet.
func (v *View) InjectCSS(_ context.Context, css string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.destroyed {
		return ErrDestroyed
	}
	v.css = css
	return nil
}

// CSS returns the currently injected stylesheet.
func (v *View) CSS() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.css
}

// Loads returns every URI passed to Load, in order.
func (v *View) Loads() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]string, len(v.loads))
	copy(out, v.loads)
	return out
}

// PendingSource returns the source recorded before the view was ready.
func (v *View) PendingSource() (port.LoadRequest, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.source == nil {
		return port.LoadRequest{}, false
	}
	return *v.source, true
}

// OnEvent registers the single event handler.
func (v *View) OnEvent(handler func(port.ViewEvent)) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.handler = handler
}

// Emit delivers an event as if the view produced it.
func (v *View) Emit(event port.ViewEvent) {
	v.emit(event)
}

func (v *View) emit(event port.ViewEvent) {
	v.mu.Lock()
	handler := v.handler
	destroyed := v.destroyed
	v.mu.Unlock()
	if handler != nil && !destroyed {
		handler(event)
	}
}

// IsDestroyed returns true if the view has been destroyed.
func (v *View) IsDestroyed() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.destroyed
}

// Destroy releases the view. Further events are dropped.
func (v *View) Destroy() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.destroyed = true
	v.handler = nil
}

// Factory creates headless views.
type Factory struct {
	loader    Loader
	autoReady bool
	nextID    atomic.Uint64

	mu    sync.Mutex
	views []*View
}

// FactoryOption configures a Factory.
type FactoryOption func(*Factory)

// WithLoader sets the function used to load URIs.
func WithLoader(loader Loader) FactoryOption {
	return func(f *Factory) { f.loader = loader }
}

// WithAutoReady makes views initialize as soon as their source is set.
func WithAutoReady() FactoryOption {
	return func(f *Factory) { f.autoReady = true }
}

// NewFactory creates a view factory.
func NewFactory(opts ...FactoryOption) *Factory {
	f := &Factory{}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

var _ port.WebViewFactory = (*Factory)(nil)

// Create returns a new, not yet ready view.
func (f *Factory) Create(ctx context.Context) (port.WebView, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	v := &View{
		id:     port.WebViewID(f.nextID.Add(1)),
		loader: f.loader,
		auto:   f.autoReady,
	}
	f.mu.Lock()
	f.views = append(f.views, v)
	f.mu.Unlock()
	return v, nil
}

// Views returns every view created so far, in creation order.
func (f *Factory) Views() []*View {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*View, len(f.views))
	copy(out, f.views)
	return out
}
