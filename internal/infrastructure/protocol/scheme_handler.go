package protocol

import (
	"context"
	"net/http"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/gekko-browser/gekko/internal/logging"
)

// notFoundPage is the site-provided 404 page looked up in the shared root.
const notFoundPage = "404.html"

// SchemeRequest represents a request to a virtual URI scheme.
type SchemeRequest struct {
	URI    string
	Method string
}

// SchemeResponse represents a response to a scheme request.
type SchemeResponse struct {
	Data        []byte
	ContentType string
	StatusCode  int
}

// SchemeHandler serves gkp:// and gkps:// requests from a Resolver.
type SchemeHandler struct {
	resolver *Resolver
	logger   zerolog.Logger
	served   atomic.Uint64
}

// NewSchemeHandler creates a handler backed by resolver.
func NewSchemeHandler(ctx context.Context, resolver *Resolver) *SchemeHandler {
	return &SchemeHandler{
		resolver: resolver,
		logger:   logging.FromContext(ctx).With().Str("component", "scheme-handler").Logger(),
	}
}

// Handle resolves req and renders the response. It always returns a
// non-nil response.
func (h *SchemeHandler) Handle(req *SchemeRequest) *SchemeResponse {
	h.served.Add(1)
	if req == nil {
		return errorResponse()
	}

	res := h.resolver.ResolveURL(req.URI)

	h.logger.Debug().
		Str("uri", logging.TruncateURL(req.URI, 120)).
		Str("method", req.Method).
		Str("result", res.Kind.String()).
		Msg("handling scheme request")

	switch res.Kind {
	case Found:
		data, err := h.resolver.ReadFile(res)
		if err != nil {
			h.logger.Warn().Err(err).Str("path", res.AbsolutePath).Msg("failed to read resolved file")
			return errorResponse()
		}
		return &SchemeResponse{
			Data:        data,
			ContentType: res.MimeType,
			StatusCode:  http.StatusOK,
		}
	case NotFound:
		return h.notFound()
	default:
		if res.Err != nil {
			h.logger.Debug().Err(res.Err).Msg("resolution error")
		}
		return errorResponse()
	}
}

// Served returns the number of requests handled.
func (h *SchemeHandler) Served() uint64 {
	return h.served.Load()
}

// notFound prefers a 404.html in the shared root over the built-in page.
func (h *SchemeHandler) notFound() *SchemeResponse {
	page := h.resolver.lookup(h.resolver.SharedRoot(), "/"+notFoundPage, MimeType("html"))
	if page.Kind == Found {
		if data, err := h.resolver.ReadFile(page); err == nil {
			return &SchemeResponse{
				Data:        data,
				ContentType: page.MimeType,
				StatusCode:  http.StatusNotFound,
			}
		}
	}
	return &SchemeResponse{
		Data:        []byte(notFoundHTML),
		ContentType: MimeType("html"),
		StatusCode:  http.StatusNotFound,
	}
}

func errorResponse() *SchemeResponse {
	return &SchemeResponse{
		Data:        []byte(errorPageHTML),
		ContentType: MimeType("html"),
		StatusCode:  http.StatusInternalServerError,
	}
}

// Default page templates

const errorPageHTML = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>Error</title>
    <style>
        body {
            font-family: system-ui, -apple-system, sans-serif;
            background: var(--bg, #0a0a0b);
            color: var(--text, #eee);
            display: flex;
            align-items: center;
            justify-content: center;
            height: 100vh;
            margin: 0;
        }
        .container {
            text-align: center;
        }
        h1 { color: var(--destructive, #ef4444); }
        p { color: var(--muted-foreground, #888); }
    </style>
</head>
<body>
    <div class="container">
        <h1>Error</h1>
        <p>The page could not be loaded.</p>
    </div>
</body>
</html>`

const notFoundHTML = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>Not Found</title>
    <style>
        body {
            font-family: system-ui, -apple-system, sans-serif;
            background: var(--bg, #0a0a0b);
            color: var(--text, #eee);
            display: flex;
            align-items: center;
            justify-content: center;
            height: 100vh;
            margin: 0;
        }
        .container {
            text-align: center;
        }
        h1 { color: var(--warning, #fbbf24); }
        p { color: var(--muted-foreground, #888); }
    </style>
</head>
<body>
    <div class="container">
        <h1>404</h1>
        <p>Page not found.</p>
    </div>
</body>
</html>`
