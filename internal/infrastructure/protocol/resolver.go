// Package protocol resolves gkp:// and gkps:// URLs to files under the
// local sites directory and serves them to content views.
package protocol

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	urlutil "github.com/gekko-browser/gekko/internal/domain/url"
	"github.com/gekko-browser/gekko/internal/logging"
)

// ResultKind classifies a resolution outcome.
type ResultKind int

const (
	// Found means AbsolutePath names a readable file.
	Found ResultKind = iota
	// NotFound means no file exists for the URL.
	NotFound
	// Error means the URL was rejected or resolution failed.
	Error
)

// String returns a human-readable representation of the kind.
func (k ResultKind) String() string {
	switch k {
	case Found:
		return "found"
	case NotFound:
		return "not-found"
	default:
		return "error"
	}
}

// ResolvedResource is the outcome of resolving one virtual URL.
// It is recomputed on every request.
type ResolvedResource struct {
	Kind         ResultKind
	AbsolutePath string
	MimeType     string
	// Err carries the reason for an Error result.
	Err error
}

// Resolver maps virtual URLs onto the sites directory.
//
// Layout:
//
//	<sites>/<domain>/...         gkp://<domain>/...
//	<sites>/secure/<domain>/...  gkps://<domain>/...
//	<shared>/...                 gkp://shared.<tld>/... and gkp:// fallback
type Resolver struct {
	fs         afero.Fs
	sitesRoot  string
	sharedRoot string
	logger     zerolog.Logger
}

// NewResolver creates a resolver reading from fs.
func NewResolver(ctx context.Context, fs afero.Fs, sitesRoot, sharedRoot string) *Resolver {
	return &Resolver{
		fs:         fs,
		sitesRoot:  filepath.Clean(sitesRoot),
		sharedRoot: filepath.Clean(sharedRoot),
		logger:     logging.FromContext(ctx).With().Str("component", "resolver").Logger(),
	}
}

// SharedRoot returns the shared resources directory.
func (r *Resolver) SharedRoot() string {
	return r.sharedRoot
}

// ResolveURL parses raw and resolves it. Parse failures yield Error.
func (r *Resolver) ResolveURL(raw string) ResolvedResource {
	vu, err := urlutil.ParseVirtual(raw)
	if err != nil {
		r.logger.Debug().Err(err).Str("url", logging.TruncateURL(raw, 80)).Msg("rejecting virtual url")
		return ResolvedResource{Kind: Error, Err: err}
	}
	return r.Resolve(vu)
}

// Resolve maps vu to a file. It never panics; filesystem failures and
// unexpected panics are reported as an Error result.
func (r *Resolver) Resolve(vu urlutil.VirtualURL) (res ResolvedResource) {
	defer func() {
		if p := recover(); p != nil {
			r.logger.Error().Interface("panic", p).Str("url", vu.String()).Msg("resolver panicked")
			res = ResolvedResource{Kind: Error, Err: fmt.Errorf("resolve %s: panic: %v", vu, p)}
		}
	}()

	// TLD check comes before any filesystem access.
	if !urlutil.IsAllowedTLD(vu.TLD()) {
		return ResolvedResource{Kind: Error, Err: fmt.Errorf("domain %q: tld not allowed", vu.Domain)}
	}

	rel := vu.CleanPath()
	mimeType := MimeType(vu.Extension())

	if vu.IsShared() {
		// A miss in the shared root still gets the regular site lookup.
		if res = r.lookup(r.sharedRoot, rel, mimeType); res.Kind != NotFound {
			return res
		}
	}

	base := filepath.Join(r.sitesRoot, vu.Domain)
	if vu.IsSecure() {
		base = filepath.Join(r.sitesRoot, "secure", vu.Domain)
	}

	res = r.lookup(base, rel, mimeType)
	if res.Kind == NotFound && !vu.IsSecure() && !vu.IsShared() {
		r.logger.Debug().Str("domain", vu.Domain).Str("path", rel).Msg("falling back to shared resources")
		return r.lookup(r.sharedRoot, rel, mimeType)
	}
	return res
}

// lookup stats root/rel. Directories resolve to their index.html.
func (r *Resolver) lookup(root, rel, mimeType string) ResolvedResource {
	candidate := filepath.Join(root, filepath.FromSlash(rel))

	info, err := r.fs.Stat(candidate)
	if err == nil && info.IsDir() {
		candidate = filepath.Join(candidate, "index.html")
		mimeType = MimeType("html")
		info, err = r.fs.Stat(candidate)
	}

	switch {
	case err == nil && !info.IsDir():
		return ResolvedResource{Kind: Found, AbsolutePath: candidate, MimeType: mimeType}
	case err == nil, os.IsNotExist(err):
		return ResolvedResource{Kind: NotFound}
	default:
		r.logger.Warn().Err(err).Str("path", candidate).Msg("stat failed")
		return ResolvedResource{Kind: Error, Err: fmt.Errorf("stat %s: %w", candidate, err)}
	}
}

// ReadFile reads a resolved resource through the resolver's filesystem.
func (r *Resolver) ReadFile(res ResolvedResource) ([]byte, error) {
	if res.Kind != Found {
		return nil, fmt.Errorf("resource is %s", res.Kind)
	}
	return afero.ReadFile(r.fs, res.AbsolutePath)
}
