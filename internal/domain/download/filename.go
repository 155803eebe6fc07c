// Package download derives download records from page requests.
package download

import (
	"mime"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/gekko-browser/gekko/internal/domain/entity"
)

// DefaultFilename is used when no usable name can be derived.
const DefaultFilename = "download"

// canonicalExtensions pins types whose system MIME table order varies.
var canonicalExtensions = map[string]string{
	"text/html":                ".html",
	"text/plain":               ".txt",
	"application/json":         ".json",
	"image/jpeg":               ".jpg",
	"image/svg+xml":            ".svg",
	"audio/mpeg":               ".mp3",
	"video/mp4":                ".mp4",
	"application/octet-stream": ".bin",
}

// SanitizeFilename strips directory components so a suggested name can
// never escape the download directory.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(strings.TrimSpace(name), "\\", "/")
	base := path.Base(name)
	if base == "." || base == ".." || base == "/" || base == "" {
		return DefaultFilename
	}
	return base
}

// ExtensionFor returns the extension registered for mimeType, ignoring
// parameters such as charset. Unknown types yield "".
func ExtensionFor(mimeType string) string {
	mediaType, _, err := mime.ParseMediaType(mimeType)
	if err != nil || mediaType == "" {
		return ""
	}
	if ext, ok := canonicalExtensions[mediaType]; ok {
		return ext
	}
	exts, err := mime.ExtensionsByType(mediaType)
	if err != nil || len(exts) == 0 {
		return ""
	}
	return exts[0]
}

// Filename picks the record name: the suggested name when present,
// otherwise the last path segment of uri. An extension is appended from
// mimeType when the name has none.
func Filename(uri, suggested, mimeType string) string {
	name := suggested
	if strings.TrimSpace(name) == "" {
		name = uri
		if parsed, err := url.Parse(uri); err == nil {
			name = parsed.Path
		}
	}

	clean := SanitizeFilename(name)
	if path.Ext(clean) == "" {
		clean += ExtensionFor(mimeType)
	}
	return clean
}

// NewRecord builds an in-progress download record.
func NewRecord(id, uri, suggested, mimeType string, now time.Time) entity.Download {
	return entity.Download{
		ID:        id,
		URL:       uri,
		Filename:  Filename(uri, suggested, mimeType),
		State:     entity.DownloadInProgress,
		StartTime: now,
	}
}
