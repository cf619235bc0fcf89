package view

import "linkstash/internal/models"

// Sort keys accepted by the derivation pipeline.
const (
	SortNewest = "newest"
	SortOldest = "oldest"
	SortAZ     = "az"
	SortZA     = "za"
)

// Favorites filter values.
const (
	FavoritesAll  = "all"
	FavoritesOnly = "favorites"
)

// Controls are the display inputs of a session. They are pure derivation
// inputs and never mutate the underlying list.
type Controls struct {
	Search    string `json:"search"`
	Category  string `json:"category"`
	Favorites string `json:"favorites"`
	Sort      string `json:"sort"`
}

// Normalized returns a copy with defaults applied: empty category means the
// "All" sentinel, empty favorites means "all", empty or unknown sort means
// newest-first.
func (c Controls) Normalized() Controls {
	if c.Category == "" {
		c.Category = models.CategoryAll
	}
	if c.Favorites == "" {
		c.Favorites = FavoritesAll
	}
	switch c.Sort {
	case SortNewest, SortOldest, SortAZ, SortZA:
	default:
		c.Sort = SortNewest
	}
	return c
}
