// Package url provides URL manipulation utilities for the browser.
package url

import (
	"regexp"
	"strconv"
	"strings"
)

// knownSchemes pass through Normalize unchanged.
var knownSchemes = []string{
	"http://",
	"https://",
	"gkp://",
	"gkps://",
	"file://",
	"about:",
}

// ipv4Pattern matches a bare IPv4 address with optional port and path.
var ipv4Pattern = regexp.MustCompile(`^(\d{1,3})\.(\d{1,3})\.(\d{1,3})\.(\d{1,3})(:\d{1,5})?(/\S*)?$`)

// HasKnownScheme reports whether input starts with a scheme the browser
// loads directly.
func HasKnownScheme(input string) bool {
	lower := strings.ToLower(input)
	for _, scheme := range knownSchemes {
		if strings.HasPrefix(lower, scheme) {
			return true
		}
	}
	return false
}

// IsIPv4 reports whether input is a bare IPv4 address, optionally with a
// port and path. Each octet must be in range.
func IsIPv4(input string) bool {
	m := ipv4Pattern.FindStringSubmatch(input)
	if m == nil {
		return false
	}
	for _, octet := range m[1:5] {
		n, err := strconv.Atoi(octet)
		if err != nil || n > 255 {
			return false
		}
	}
	if m[5] != "" {
		port, err := strconv.Atoi(m[5][1:])
		if err != nil || port > 65535 {
			return false
		}
	}
	return true
}

// Normalize adds a scheme to URL-like inputs.
//
//	"https://x.test"   → unchanged
//	"192.168.1.1:8080" → "http://192.168.1.1:8080"
//	"example.com"      → "https://example.com"
//
// Inputs that don't look like a URL are returned trimmed but otherwise
// unchanged; callers decide whether to search for them.
func Normalize(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}

	switch {
	case HasKnownScheme(input):
		return input
	case IsIPv4(input):
		return "http://" + input
	case strings.Contains(input, ".") && !strings.ContainsAny(input, " \t\r\n"):
		return "https://" + input
	}

	return input
}

// LooksLikeURL checks if the input appears to be a URL (not a search query).
func LooksLikeURL(input string) bool {
	input = strings.TrimSpace(input)
	if input == "" {
		return false
	}
	if HasKnownScheme(input) || IsIPv4(input) {
		return true
	}
	return strings.Contains(input, ".") && !strings.ContainsAny(input, " \t\r\n")
}
