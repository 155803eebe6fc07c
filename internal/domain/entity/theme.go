package entity

import "strings"

// ThemeID names a UI color theme.
type ThemeID string

const (
	ThemeDark    ThemeID = "dark"
	ThemeLight   ThemeID = "light"
	ThemePurple  ThemeID = "purple"
	ThemeBlue    ThemeID = "blue"
	ThemeRed     ThemeID = "red"
	ThemeGreen   ThemeID = "green"
	ThemeMonokai ThemeID = "monokai"
	ThemeNord    ThemeID = "nord"
)

// DefaultTheme is used whenever a requested theme is not accepted.
const DefaultTheme = ThemeDark

// KnownThemes lists every theme that has a palette definition.
var KnownThemes = []ThemeID{
	ThemeDark, ThemeLight, ThemePurple, ThemeBlue,
	ThemeRed, ThemeGreen, ThemeMonokai, ThemeNord,
}

// AllowedThemes is the subset accepted for persistence and broadcast.
var AllowedThemes = []ThemeID{
	ThemeDark, ThemeLight, ThemePurple, ThemeBlue, ThemeRed,
}

// IsAllowed reports whether t passes validation.
func (t ThemeID) IsAllowed() bool {
	for _, allowed := range AllowedThemes {
		if t == allowed {
			return true
		}
	}
	return false
}

// CoerceTheme validates a raw theme name, returning DefaultTheme for
// anything outside AllowedThemes.
func CoerceTheme(raw string) ThemeID {
	t := ThemeID(strings.ToLower(strings.TrimSpace(raw)))
	if t.IsAllowed() {
		return t
	}
	return DefaultTheme
}
