package entity

// Settings keys accepted by the settings store.
const (
	SettingTheme           = "theme"
	SettingHomePage        = "homePage"
	SettingSearchEngine    = "searchEngine"
	SettingEnableDevTools  = "enableDevTools"
	SettingSearchShortcuts = "searchShortcuts"
)

// DefaultSearchEngine is the search template used when none is configured.
const DefaultSearchEngine = "https://www.google.com/search?q="

// DefaultHomePage is the internal start page.
const DefaultHomePage = "gkp://home.gekko/"

// Settings is the persisted user settings document.
type Settings struct {
	Theme           ThemeID           `json:"theme" jsonschema:"enum=dark,enum=light,enum=purple,enum=blue,enum=red,default=dark"`
	HomePage        string            `json:"homePage" jsonschema:"description=Page opened in new tabs"`
	SearchEngine    string            `json:"searchEngine" jsonschema:"description=Search URL template; %s is replaced by the query or the query is appended"`
	EnableDevTools  bool              `json:"enableDevTools"`
	SearchShortcuts map[string]string `json:"searchShortcuts,omitempty" jsonschema:"description=Bang shortcuts mapping a key to a search template"`
}

// DefaultSettings returns the defaults merged under every read.
func DefaultSettings() Settings {
	return Settings{
		Theme:        DefaultTheme,
		HomePage:     DefaultHomePage,
		SearchEngine: DefaultSearchEngine,
	}
}
