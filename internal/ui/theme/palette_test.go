package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko-browser/gekko/internal/domain/entity"
)

func TestEveryKnownThemeHasValidPalette(t *testing.T) {
	for _, id := range entity.KnownThemes {
		p, ok := palettes[id]
		require.True(t, ok, "missing palette for %s", id)
		assert.NoError(t, p.Validate(), "palette %s", id)
	}
}

func TestPaletteFor_UnknownFallsBackToDefault(t *testing.T) {
	assert.Equal(t, palettes[entity.DefaultTheme], PaletteFor("neon"))
}

func TestStyleSheet(t *testing.T) {
	css := StyleSheet(entity.ThemeLight)
	assert.Contains(t, css, "--theme: light;")
	assert.Contains(t, css, "color-scheme: light;")
	assert.Contains(t, css, "--background: #fafafa !important;")

	assert.Contains(t, StyleSheet(entity.ThemeBlue), "color-scheme: dark;")
}

func TestValidateHexColor(t *testing.T) {
	assert.NoError(t, ValidateHexColor("#fff"))
	assert.NoError(t, ValidateHexColor("#112233aa"))
	assert.Error(t, ValidateHexColor("red"))
	assert.Error(t, ValidateHexColor(""))
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, "b", Coalesce("", "b", "c"))
	assert.Equal(t, "", Coalesce())
}
