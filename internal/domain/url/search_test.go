package url

import "testing"

var testShortcuts = map[string]string{
	"g":   "https://google.com/search?q=%s",
	"ddg": "https://duckduckgo.com/?q=%s",
	"gi":  "https://google.com/search?tbm=isch&q=%s",
}

const testDefaultSearch = "https://www.google.com/search?q="

func TestBuildSearchURL(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		shortcuts     map[string]string
		defaultSearch string
		want          string
	}{
		{
			name:          "bang shortcut google",
			input:         "!g golang",
			shortcuts:     testShortcuts,
			defaultSearch: testDefaultSearch,
			want:          "https://google.com/search?q=golang",
		},
		{
			name:          "bang shortcut multi-word is escaped",
			input:         "!ddg rust async await",
			shortcuts:     testShortcuts,
			defaultSearch: testDefaultSearch,
			want:          "https://duckduckgo.com/?q=rust%20async%20await",
		},
		{
			name:          "unknown bang falls back to default search",
			input:         "!unknown test",
			shortcuts:     testShortcuts,
			defaultSearch: testDefaultSearch,
			want:          "https://www.google.com/search?q=%21unknown%20test",
		},
		{
			name:          "url-like input gets normalized",
			input:         "example.com",
			shortcuts:     testShortcuts,
			defaultSearch: testDefaultSearch,
			want:          "https://example.com",
		},
		{
			name:          "plain query appended to prefix template",
			input:         "hello world",
			shortcuts:     nil,
			defaultSearch: testDefaultSearch,
			want:          "https://www.google.com/search?q=hello%20world",
		},
		{
			name:          "placeholder template",
			input:         "a&b",
			shortcuts:     nil,
			defaultSearch: "https://duckduckgo.com/?q=%s&ia=web",
			want:          "https://duckduckgo.com/?q=a%26b&ia=web",
		},
		{
			name:          "empty template uses default engine",
			input:         "hello world",
			shortcuts:     nil,
			defaultSearch: "",
			want:          "https://www.google.com/search?q=hello%20world",
		},
		{
			name:          "empty input",
			input:         "   ",
			shortcuts:     testShortcuts,
			defaultSearch: testDefaultSearch,
			want:          "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildSearchURL(tt.input, tt.shortcuts, tt.defaultSearch)
			if got != tt.want {
				t.Errorf("BuildSearchURL(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseBangShortcut(t *testing.T) {
	tests := []struct {
		input    string
		shortcut string
		query    string
		found    bool
	}{
		{"!g golang", "g", "golang", true},
		{"!gh repo name", "gh", "repo name", true},
		{"!g", "", "", false},
		{"! query", "", "", false},
		{"test !g", "", "", false},
	}
	for _, tt := range tests {
		shortcut, query, found := ParseBangShortcut(tt.input)
		if shortcut != tt.shortcut || query != tt.query || found != tt.found {
			t.Errorf("ParseBangShortcut(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tt.input, shortcut, query, found, tt.shortcut, tt.query, tt.found)
		}
	}
}
