package models

// PlaceholderImageURL replaces the poster of shows the catalog has no image for.
const PlaceholderImageURL = "https://tinyurl.com/tv-missing"

// Show represents a TV show matched by a catalog search.
// Image is never empty; it falls back to PlaceholderImageURL.
type Show struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Summary string `json:"summary"` // may contain HTML markup
	Image   string `json:"image"`
}
