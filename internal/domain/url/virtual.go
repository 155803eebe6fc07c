package url

import (
	"fmt"
	"net/url"
	"path"
	"strings"
)

const (
	// SchemeGKP serves bundled pages with shared-resource fallback.
	SchemeGKP = "gkp"
	// SchemeGKPS serves pages from the secure tree, never from shared.
	SchemeGKPS = "gkps"

	// SharedLabel is the reserved label for cross-page resources.
	SharedLabel = "shared"

	// IndexPath is served when a request has no path.
	IndexPath = "/index.html"
)

// AllowedTLDs are the pseudo top-level domains the virtual protocol serves.
var AllowedTLDs = []string{"gekko", "rust", "kewl"}

// VirtualURL is a parsed gkp:// or gkps:// URL.
type VirtualURL struct {
	Scheme string
	Domain string
	Path   string
}

// NewVirtualURL builds a VirtualURL, lowercasing scheme and domain and
// defaulting an empty or root path to IndexPath.
func NewVirtualURL(scheme, domain, p string) VirtualURL {
	if p == "" || p == "/" {
		p = IndexPath
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return VirtualURL{
		Scheme: strings.ToLower(scheme),
		Domain: strings.ToLower(strings.TrimSuffix(domain, ".")),
		Path:   p,
	}
}

// ParseVirtual parses a gkp:// or gkps:// URL. The TLD is not validated
// here; see IsAllowedTLD.
func ParseVirtual(raw string) (VirtualURL, error) {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return VirtualURL{}, fmt.Errorf("parse virtual url: %w", err)
	}
	scheme := strings.ToLower(parsed.Scheme)
	if scheme != SchemeGKP && scheme != SchemeGKPS {
		return VirtualURL{}, fmt.Errorf("unsupported scheme %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return VirtualURL{}, fmt.Errorf("virtual url %q has no domain", raw)
	}
	if parsed.Port() != "" {
		return VirtualURL{}, fmt.Errorf("virtual url %q must not carry a port", raw)
	}
	return NewVirtualURL(scheme, parsed.Hostname(), parsed.Path), nil
}

// TLD returns the top-level label of the domain.
func (v VirtualURL) TLD() string {
	if i := strings.LastIndex(v.Domain, "."); i >= 0 {
		return v.Domain[i+1:]
	}
	return v.Domain
}

// IsShared reports whether the URL addresses the shared-resources domain.
func (v VirtualURL) IsShared() bool {
	return v.Domain == SharedLabel+"."+v.TLD()
}

// IsSecure reports whether the URL uses the gkps scheme.
func (v VirtualURL) IsSecure() bool {
	return v.Scheme == SchemeGKPS
}

// CleanPath returns the path with dot segments removed, rooted at "/".
func (v VirtualURL) CleanPath() string {
	return path.Clean("/" + v.Path)
}

// Extension returns the lowercase extension of the last path segment,
// without the dot.
func (v VirtualURL) Extension() string {
	base := path.Base(v.Path)
	if i := strings.LastIndex(base, "."); i >= 0 && i < len(base)-1 {
		return strings.ToLower(base[i+1:])
	}
	return ""
}

// String renders the URL.
func (v VirtualURL) String() string {
	return v.Scheme + "://" + v.Domain + v.Path
}

// IsAllowedTLD reports whether tld is one of AllowedTLDs.
func IsAllowedTLD(tld string) bool {
	tld = strings.ToLower(tld)
	for _, allowed := range AllowedTLDs {
		if tld == allowed {
			return true
		}
	}
	return false
}

// IsInternal reports whether raw uses one of the virtual schemes.
// Internal pages are never recorded in history.
func IsInternal(raw string) bool {
	lower := strings.ToLower(strings.TrimSpace(raw))
	return strings.HasPrefix(lower, SchemeGKP+"://") || strings.HasPrefix(lower, SchemeGKPS+"://")
}
