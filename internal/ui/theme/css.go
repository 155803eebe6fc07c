package theme

import (
	"strings"

	"github.com/gekko-browser/gekko/internal/domain/entity"
)

// ToWebCSSVars generates CSS custom property declarations for internal pages.
func (p Palette) ToWebCSSVars() string {
	var sb strings.Builder
	sb.WriteString("  --background: " + p.Background + " !important;\n")
	sb.WriteString("  --foreground: " + p.Text + " !important;\n")
	sb.WriteString("  --card: " + p.Surface + " !important;\n")
	sb.WriteString("  --card-foreground: " + p.Text + " !important;\n")
	sb.WriteString("  --primary: " + p.Accent + " !important;\n")
	sb.WriteString("  --primary-foreground: " + p.Background + " !important;\n")
	sb.WriteString("  --muted: " + p.SurfaceVariant + " !important;\n")
	sb.WriteString("  --muted-foreground: " + p.Muted + " !important;\n")
	sb.WriteString("  --border: " + p.Border + " !important;\n")
	sb.WriteString("  --ring: " + p.Accent + " !important;\n")
	sb.WriteString("  --success: " + p.Success + " !important;\n")
	sb.WriteString("  --warning: " + p.Warning + " !important;\n")
	sb.WriteString("  --destructive: " + p.Destructive + " !important;\n")
	sb.WriteString("  --bg: " + p.Background + " !important;\n")
	sb.WriteString("  --surface: " + p.Surface + " !important;\n")
	sb.WriteString("  --surface-variant: " + p.SurfaceVariant + " !important;\n")
	sb.WriteString("  --text: " + p.Text + " !important;\n")
	sb.WriteString("  --accent: " + p.Accent + " !important;\n")
	return sb.String()
}

// StyleSheet renders the full stylesheet injected into every view for id.
func StyleSheet(id entity.ThemeID) string {
	p := PaletteFor(id)
	scheme := "light"
	if p.Dark {
		scheme = "dark"
	}

	var sb strings.Builder
	sb.WriteString(":root{\n")
	sb.WriteString("  --theme: " + string(id) + ";\n")
	sb.WriteString("  color-scheme: " + scheme + ";\n")
	sb.WriteString(p.ToWebCSSVars())
	sb.WriteString("}\n")
	return sb.String()
}
