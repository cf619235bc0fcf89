package view

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"linkstash/internal/models"
)

// NoBookmarksPlaceholder stands in for the latest title when the list is empty.
const NoBookmarksPlaceholder = "No bookmarks yet"

// EmptyState distinguishes "no bookmarks exist" from "filters matched nothing".
type EmptyState string

const (
	EmptyNone        EmptyState = ""
	EmptyNoBookmarks EmptyState = "no_bookmarks"
	EmptyNoMatches   EmptyState = "no_matches"
)

// Summary holds the dashboard aggregates, always computed from the original
// unfiltered list.
type Summary struct {
	TotalBookmarks     int    `json:"total_bookmarks"`
	TotalFavorites     int    `json:"total_favorites"`
	DistinctCategories int    `json:"distinct_categories"`
	LatestTitle        string `json:"latest_title"`
}

// View is the derived render state for one (list, controls) pair.
type View struct {
	Visible []models.Bookmark `json:"visible"`
	Summary Summary           `json:"summary"`
	Empty   EmptyState        `json:"empty_state"`
}

// titleCollator orders titles the way a locale-aware comparison would, not by
// raw byte value.
var titleCollator = collate.New(language.English, collate.Loose)

// Derive runs the fixed pipeline: search, category filter, favorites filter,
// stable sort, summary. The input list is never mutated.
func Derive(list []models.Bookmark, controls Controls) View {
	c := controls.Normalized()

	visible := searchStage(list, c.Search)
	visible = categoryStage(visible, c.Category)
	visible = favoritesStage(visible, c.Favorites)
	visible = sortStage(visible, c.Sort)

	return View{
		Visible: visible,
		Summary: Summarize(list),
		Empty:   emptyState(list, visible),
	}
}

func searchStage(list []models.Bookmark, search string) []models.Bookmark {
	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return copyList(list)
	}
	out := make([]models.Bookmark, 0, len(list))
	for _, bm := range list {
		if strings.Contains(strings.ToLower(bm.Title), needle) ||
			strings.Contains(strings.ToLower(bm.URL), needle) {
			out = append(out, bm)
		}
	}
	return out
}

func categoryStage(list []models.Bookmark, category string) []models.Bookmark {
	if category == models.CategoryAll {
		return list
	}
	out := make([]models.Bookmark, 0, len(list))
	for _, bm := range list {
		if bm.EffectiveCategory() == category {
			out = append(out, bm)
		}
	}
	return out
}

func favoritesStage(list []models.Bookmark, favorites string) []models.Bookmark {
	if favorites != FavoritesOnly {
		return list
	}
	out := make([]models.Bookmark, 0, len(list))
	for _, bm := range list {
		if bm.IsFav {
			out = append(out, bm)
		}
	}
	return out
}

func sortStage(list []models.Bookmark, key string) []models.Bookmark {
	switch key {
	case SortOldest:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].CreatedAt < list[j].CreatedAt
		})
	case SortAZ:
		sort.SliceStable(list, func(i, j int) bool {
			return titleCollator.CompareString(list[i].Title, list[j].Title) < 0
		})
	case SortZA:
		sort.SliceStable(list, func(i, j int) bool {
			return titleCollator.CompareString(list[i].Title, list[j].Title) > 0
		})
	default: // newest; the zero DateTime is epoch 0 and sorts last
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].CreatedAt > list[j].CreatedAt
		})
	}
	return list
}

// Summarize computes the four aggregates over the unfiltered list. The latest
// title relies on the list's fetch-time newest-first ordering.
func Summarize(list []models.Bookmark) Summary {
	s := Summary{
		TotalBookmarks: len(list),
		LatestTitle:    NoBookmarksPlaceholder,
	}
	if len(list) > 0 {
		s.LatestTitle = list[0].Title
	}

	categories := make(map[string]struct{})
	for _, bm := range list {
		if bm.IsFav {
			s.TotalFavorites++
		}
		categories[bm.EffectiveCategory()] = struct{}{}
	}
	s.DistinctCategories = len(categories)
	return s
}

func emptyState(list, visible []models.Bookmark) EmptyState {
	switch {
	case len(list) == 0:
		return EmptyNoBookmarks
	case len(visible) == 0:
		return EmptyNoMatches
	default:
		return EmptyNone
	}
}

func copyList(list []models.Bookmark) []models.Bookmark {
	out := make([]models.Bookmark, len(list))
	copy(out, list)
	return out
}
