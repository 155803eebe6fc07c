package entity

import (
	"fmt"
	"time"
)

// TabID uniquely identifies a tab for the lifetime of the process.
type TabID string

// LoadState is the loading lifecycle of a tab's current navigation.
type LoadState int

const (
	// LoadIdle means nothing has been requested yet.
	LoadIdle LoadState = iota
	// LoadLoading means a navigation is in flight.
	LoadLoading
	// LoadComplete means the latest navigation finished.
	LoadComplete
	// LoadError means the latest navigation failed.
	LoadError
)

// String returns a human-readable representation of the load state.
func (s LoadState) String() string {
	switch s {
	case LoadIdle:
		return "idle"
	case LoadLoading:
		return "loading"
	case LoadComplete:
		return "complete"
	case LoadError:
		return "error"
	default:
		return "unknown"
	}
}

// Tab represents one browsing context in the tab bar.
// The content view bound to a tab is owned by the registry, not the entity.
type Tab struct {
	ID        TabID
	URL       string
	Title     string
	Favicon   string // empty when the page has no favicon
	LoadState LoadState
	Position  int    // Position in the tab bar (0-indexed)
	Seq       uint64 // Creation order, strictly increasing
	NavSeq    uint64 // Latest navigation sequence applied to this tab
	CreatedAt time.Time
}

// NewTab creates a tab that will load url.
func NewTab(id TabID, seq uint64, url string) *Tab {
	return &Tab{
		ID:        id,
		URL:       url,
		Seq:       seq,
		CreatedAt: time.Now(),
	}
}

// DisplayTitle returns the title, falling back to the URL or "New Tab".
func (t *Tab) DisplayTitle() string {
	if t.Title != "" {
		return t.Title
	}
	if t.URL != "" {
		return t.URL
	}
	return "New Tab"
}

// TabList manages an ordered collection of tabs.
type TabList struct {
	Tabs        []*Tab
	ActiveTabID TabID
}

// NewTabList creates an empty tab list.
func NewTabList() *TabList {
	return &TabList{
		Tabs: make([]*Tab, 0),
	}
}

// Add appends a tab to the list. A duplicate ID is rejected rather than
// overwriting the existing tab.
func (tl *TabList) Add(tab *Tab) error {
	if tab == nil {
		return fmt.Errorf("tab is nil")
	}
	if tl.Find(tab.ID) != nil {
		return fmt.Errorf("duplicate tab id: %s", tab.ID)
	}
	tab.Position = len(tl.Tabs)
	tl.Tabs = append(tl.Tabs, tab)
	if tl.ActiveTabID == "" {
		tl.ActiveTabID = tab.ID
	}
	return nil
}

// Remove removes a tab by ID and reindexes positions.
// If the removed tab was active, the most recently created remaining tab
// becomes active.
func (tl *TabList) Remove(id TabID) bool {
	for i, tab := range tl.Tabs {
		if tab.ID != id {
			continue
		}
		tl.Tabs = append(tl.Tabs[:i], tl.Tabs[i+1:]...)
		for j := i; j < len(tl.Tabs); j++ {
			tl.Tabs[j].Position = j
		}
		if tl.ActiveTabID == id {
			tl.ActiveTabID = ""
			if newest := tl.Newest(); newest != nil {
				tl.ActiveTabID = newest.ID
			}
		}
		return true
	}
	return false
}

// Newest returns the most recently created tab, or nil when empty.
func (tl *TabList) Newest() *Tab {
	var newest *Tab
	for _, tab := range tl.Tabs {
		if newest == nil || tab.Seq > newest.Seq {
			newest = tab
		}
	}
	return newest
}

// Find returns a tab by ID.
func (tl *TabList) Find(id TabID) *Tab {
	for _, tab := range tl.Tabs {
		if tab.ID == id {
			return tab
		}
	}
	return nil
}

// ActiveTab returns the currently active tab.
func (tl *TabList) ActiveTab() *Tab {
	return tl.Find(tl.ActiveTabID)
}

// Count returns the number of tabs.
func (tl *TabList) Count() int {
	return len(tl.Tabs)
}

// Move moves a tab to a new position.
func (tl *TabList) Move(id TabID, newPos int) bool {
	if newPos < 0 || newPos >= len(tl.Tabs) {
		return false
	}
	var tab *Tab
	var oldPos int
	for i, t := range tl.Tabs {
		if t.ID == id {
			tab = t
			oldPos = i
			break
		}
	}
	if tab == nil {
		return false
	}
	tl.Tabs = append(tl.Tabs[:oldPos], tl.Tabs[oldPos+1:]...)
	tl.Tabs = append(tl.Tabs[:newPos], append([]*Tab{tab}, tl.Tabs[newPos:]...)...)
	for i := range tl.Tabs {
		tl.Tabs[i].Position = i
	}
	return true
}
