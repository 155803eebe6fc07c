package headless

import (
	"context"
	"fmt"
	"html"
	"net/http"
	"regexp"
	"strings"

	urlutil "github.com/gekko-browser/gekko/internal/domain/url"
	"github.com/gekko-browser/gekko/internal/infrastructure/protocol"
)

var titlePattern = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)

// ProtocolLoader serves gkp:// and gkps:// URIs through handler and
// completes every other URI without fetching it.
func ProtocolLoader(handler *protocol.SchemeHandler) Loader {
	return func(ctx context.Context, uri string) (Page, error) {
		if err := ctx.Err(); err != nil {
			return Page{}, err
		}
		if !urlutil.IsInternal(uri) {
			return Page{URI: uri}, nil
		}
		resp := handler.Handle(&protocol.SchemeRequest{URI: uri, Method: http.MethodGet})
		if resp.StatusCode >= http.StatusInternalServerError {
			return Page{}, fmt.Errorf("load %s: status %d", uri, resp.StatusCode)
		}
		return Page{URI: uri, Title: ExtractTitle(resp.Data)}, nil
	}
}

// ExtractTitle returns the unescaped text of the first <title> element.
func ExtractTitle(doc []byte) string {
	m := titlePattern.FindSubmatch(doc)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(string(m[1])))
}
