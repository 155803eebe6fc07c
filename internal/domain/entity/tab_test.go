package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTabList_AddRejectsDuplicateID(t *testing.T) {
	tl := NewTabList()
	require.NoError(t, tl.Add(NewTab("a", 1, "https://a.test")))

	err := tl.Add(NewTab("a", 2, "https://b.test"))
	require.Error(t, err)
	assert.Equal(t, "https://a.test", tl.Find("a").URL)
	assert.Equal(t, 1, tl.Count())
}

func TestTabList_RemoveActivatesNewest(t *testing.T) {
	tl := NewTabList()
	require.NoError(t, tl.Add(NewTab("a", 1, "")))
	require.NoError(t, tl.Add(NewTab("b", 2, "")))
	require.NoError(t, tl.Add(NewTab("c", 3, "")))
	require.True(t, tl.Move("c", 0))
	tl.ActiveTabID = "b"

	assert.True(t, tl.Remove("b"))
	assert.Equal(t, TabID("c"), tl.ActiveTabID)
	assert.Equal(t, 0, tl.Find("c").Position)
	assert.Equal(t, 1, tl.Find("a").Position)
}

func TestTabList_RemoveLastClearsActive(t *testing.T) {
	tl := NewTabList()
	require.NoError(t, tl.Add(NewTab("a", 1, "")))

	assert.True(t, tl.Remove("a"))
	assert.Empty(t, tl.ActiveTabID)
	assert.Nil(t, tl.ActiveTab())
	assert.False(t, tl.Remove("a"))
}

func TestTab_DisplayTitle(t *testing.T) {
	tab := NewTab("a", 1, "")
	assert.Equal(t, "New Tab", tab.DisplayTitle())
	tab.URL = "https://example.com"
	assert.Equal(t, "https://example.com", tab.DisplayTitle())
	tab.Title = "Example"
	assert.Equal(t, "Example", tab.DisplayTitle())
}

func TestCoerceTheme(t *testing.T) {
	tests := []struct {
		input string
		want  ThemeID
	}{
		{"dark", ThemeDark},
		{"Blue", ThemeBlue},
		{" red ", ThemeRed},
		{"neon", ThemeDark},
		{"nord", ThemeDark},
		{"", ThemeDark},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, CoerceTheme(tt.input))
		})
	}
}
