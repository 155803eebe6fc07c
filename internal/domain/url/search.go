package url

import (
	"net/url"
	"strings"

	"github.com/gekko-browser/gekko/internal/domain/entity"
)

// ParseBangShortcut extracts a bang shortcut from input.
// Input must start with "!" followed by shortcut key and a space.
// Returns (shortcutKey, query, found).
//
// Examples:
//
//	"!g golang"      → ("g", "golang", true)
//	"!gh repo name"  → ("gh", "repo name", true)
//	"!g"             → ("", "", false) - no query
//	"test !g"        → ("", "", false) - bang not at start
func ParseBangShortcut(input string) (shortcut, query string, found bool) {
	if !strings.HasPrefix(input, "!") {
		return "", "", false
	}

	spaceIdx := strings.Index(input, " ")
	if spaceIdx == -1 || spaceIdx == 1 {
		return "", "", false
	}

	shortcut = input[1:spaceIdx]
	query = strings.TrimSpace(input[spaceIdx+1:])

	if query == "" {
		return "", "", false
	}

	return shortcut, query, true
}

// EscapeQuery percent-encodes a search query, spaces as %20.
func EscapeQuery(query string) string {
	return strings.ReplaceAll(url.QueryEscape(query), "+", "%20")
}

// SearchURL fills a search template with query. Templates containing %s
// get it replaced; any other template has the query appended. An empty
// template falls back to entity.DefaultSearchEngine.
func SearchURL(template, query string) string {
	if strings.TrimSpace(template) == "" {
		template = entity.DefaultSearchEngine
	}
	escaped := EscapeQuery(query)
	if strings.Contains(template, "%s") {
		return strings.Replace(template, "%s", escaped, 1)
	}
	return template + escaped
}

// BuildSearchURL turns user input into a loadable URL.
// Bang shortcuts are checked first, then URL-like input, then the search
// template.
func BuildSearchURL(input string, shortcutURLs map[string]string, searchTemplate string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}

	if shortcutKey, query, found := ParseBangShortcut(input); found {
		if urlTemplate, ok := shortcutURLs[shortcutKey]; ok {
			return SearchURL(urlTemplate, query)
		}
		// Unknown bang falls through to default search with original input
	}

	if LooksLikeURL(input) {
		return Normalize(input)
	}

	return SearchURL(searchTemplate, input)
}
