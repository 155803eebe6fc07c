// Package theme defines the color palettes of the shell themes and renders
// them as CSS custom properties for injection into content views.
package theme

import (
	"fmt"
	"regexp"

	"github.com/gekko-browser/gekko/internal/domain/entity"
)

// Palette holds semantic color tokens for theming.
type Palette struct {
	Dark           bool   // Whether the palette is a dark color scheme
	Background     string // Main background color
	Surface        string // Elevated surfaces (cards, popups)
	SurfaceVariant string // Secondary surfaces
	Text           string // Primary text color
	Muted          string // Secondary/disabled text
	Accent         string // Primary accent color (actions, highlights)
	Border         string // Border and divider lines
	// Semantic status colors
	Success     string
	Warning     string
	Destructive string
}

var palettes = map[entity.ThemeID]Palette{
	entity.ThemeDark: {
		Dark:           true,
		Background:     "#0a0a0b",
		Surface:        "#1a1a1b",
		SurfaceVariant: "#2d2d2d",
		Text:           "#ffffff",
		Muted:          "#909090",
		Accent:         "#4ade80",
		Border:         "#333333",
		Success:        "#4ade80",
		Warning:        "#fbbf24",
		Destructive:    "#ef4444",
	},
	entity.ThemeLight: {
		Background:     "#fafafa",
		Surface:        "#ffffff",
		SurfaceVariant: "#f0f0f0",
		Text:           "#1a1a1a",
		Muted:          "#666666",
		Accent:         "#22c55e",
		Border:         "#dddddd",
		Success:        "#22c55e",
		Warning:        "#f59e0b",
		Destructive:    "#dc2626",
	},
	entity.ThemePurple: {
		Dark:           true,
		Background:     "#13111c",
		Surface:        "#1e1a2e",
		SurfaceVariant: "#2a2440",
		Text:           "#ede9fe",
		Muted:          "#a78bfa",
		Accent:         "#8b5cf6",
		Border:         "#3b3358",
		Success:        "#4ade80",
		Warning:        "#fbbf24",
		Destructive:    "#f87171",
	},
	entity.ThemeBlue: {
		Dark:           true,
		Background:     "#0b1120",
		Surface:        "#111a2e",
		SurfaceVariant: "#1e293b",
		Text:           "#e2e8f0",
		Muted:          "#94a3b8",
		Accent:         "#3b82f6",
		Border:         "#27344d",
		Success:        "#4ade80",
		Warning:        "#fbbf24",
		Destructive:    "#f87171",
	},
	entity.ThemeRed: {
		Dark:           true,
		Background:     "#140b0b",
		Surface:        "#221313",
		SurfaceVariant: "#331c1c",
		Text:           "#fde8e8",
		Muted:          "#c99a9a",
		Accent:         "#ef4444",
		Border:         "#4a2626",
		Success:        "#4ade80",
		Warning:        "#fbbf24",
		Destructive:    "#fca5a5",
	},
	entity.ThemeGreen: {
		Dark:           true,
		Background:     "#0b140e",
		Surface:        "#122218",
		SurfaceVariant: "#1b3324",
		Text:           "#e7f8ec",
		Muted:          "#8fbf9f",
		Accent:         "#22c55e",
		Border:         "#24462f",
		Success:        "#4ade80",
		Warning:        "#fbbf24",
		Destructive:    "#f87171",
	},
	entity.ThemeMonokai: {
		Dark:           true,
		Background:     "#272822",
		Surface:        "#3e3d32",
		SurfaceVariant: "#49483e",
		Text:           "#f8f8f2",
		Muted:          "#75715e",
		Accent:         "#a6e22e",
		Border:         "#49483e",
		Success:        "#a6e22e",
		Warning:        "#e6db74",
		Destructive:    "#f92672",
	},
	entity.ThemeNord: {
		Dark:           true,
		Background:     "#2e3440",
		Surface:        "#3b4252",
		SurfaceVariant: "#434c5e",
		Text:           "#eceff4",
		Muted:          "#d8dee9",
		Accent:         "#88c0d0",
		Border:         "#4c566a",
		Success:        "#a3be8c",
		Warning:        "#ebcb8b",
		Destructive:    "#bf616a",
	},
}

// PaletteFor returns the palette of id, or the default theme's palette
// when id has none.
func PaletteFor(id entity.ThemeID) Palette {
	if p, ok := palettes[id]; ok {
		return p
	}
	return palettes[entity.DefaultTheme]
}

// Coalesce returns the first non-empty string.
func Coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// hexColorRegex matches valid hex colors (#RGB, #RRGGBB, #RRGGBBAA).
var hexColorRegex = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{8})$`)

// ValidateHexColor checks if a string is a valid hex color.
func ValidateHexColor(color string) error {
	if !hexColorRegex.MatchString(color) {
		return fmt.Errorf("invalid hex color: %q", color)
	}
	return nil
}

// Validate checks all palette colors are valid hex values.
func (p Palette) Validate() error {
	colors := map[string]string{
		"background":      p.Background,
		"surface":         p.Surface,
		"surface_variant": p.SurfaceVariant,
		"text":            p.Text,
		"muted":           p.Muted,
		"accent":          p.Accent,
		"border":          p.Border,
		"success":         p.Success,
		"warning":         p.Warning,
		"destructive":     p.Destructive,
	}

	for name, color := range colors {
		if err := ValidateHexColor(color); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}
