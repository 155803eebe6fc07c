package entity

import "time"

// Bookmark represents a bookmarked URL.
type Bookmark struct {
	URL       string    `json:"url"`
	Title     string    `json:"title"`
	Favicon   string    `json:"favicon,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewBookmark creates a new bookmark for a URL.
func NewBookmark(url, title, favicon string) *Bookmark {
	now := time.Now()
	return &Bookmark{
		URL:       url,
		Title:     title,
		Favicon:   favicon,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
