package protocol

const defaultMimeType = "application/octet-stream"

// mimeTypes maps lowercase file extensions to content types.
var mimeTypes = map[string]string{
	"html":  "text/html; charset=utf-8",
	"htm":   "text/html; charset=utf-8",
	"css":   "text/css; charset=utf-8",
	"js":    "text/javascript; charset=utf-8",
	"mjs":   "text/javascript; charset=utf-8",
	"json":  "application/json",
	"map":   "application/json",
	"txt":   "text/plain; charset=utf-8",
	"xml":   "application/xml",
	"svg":   "image/svg+xml",
	"png":   "image/png",
	"jpg":   "image/jpeg",
	"jpeg":  "image/jpeg",
	"gif":   "image/gif",
	"webp":  "image/webp",
	"ico":   "image/x-icon",
	"woff":  "font/woff",
	"woff2": "font/woff2",
	"ttf":   "font/ttf",
	"otf":   "font/otf",
	"wasm":  "application/wasm",
	"mp3":   "audio/mpeg",
	"mp4":   "video/mp4",
	"webm":  "video/webm",
	"pdf":   "application/pdf",
}

// MimeType returns the content type for ext, or application/octet-stream.
func MimeType(ext string) string {
	if mt, ok := mimeTypes[ext]; ok {
		return mt
	}
	return defaultMimeType
}
