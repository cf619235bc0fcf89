package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultCategory is assigned when a bookmark carries no category. The
// fallback is applied once, at the model boundary, via NormalizeCategory.
const DefaultCategory = "General"

// CategoryAll is the filter sentinel that disables category filtering.
const CategoryAll = "All"

// Categories is the fixed label set a bookmark may belong to.
var Categories = []string{
	DefaultCategory,
	"Work",
	"Personal",
	"Learning",
	"Entertainment",
}

// KnownCategory reports whether label is part of the fixed set.
func KnownCategory(label string) bool {
	for _, c := range Categories {
		if c == label {
			return true
		}
	}
	return false
}

type Bookmark struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user_id,omitempty" json:"-"`
	Title     string             `bson:"title" json:"title"`
	URL       string             `bson:"url" json:"url"`
	Category  string             `bson:"category,omitempty" json:"category"`
	CreatedAt primitive.DateTime `bson:"created_at" json:"created_at"`
	IsFav     bool               `bson:"is_fav" json:"is_fav"`
}

// EffectiveCategory returns the category with the absent-value fallback
// applied.
func (b *Bookmark) EffectiveCategory() string {
	if b.Category == "" {
		return DefaultCategory
	}
	return b.Category
}

// NormalizeCategory applies the General fallback in place. Repositories call
// it on every row they hand out so consumers never see an empty category.
func (b *Bookmark) NormalizeCategory() {
	if b.Category == "" {
		b.Category = DefaultCategory
	}
}

type AddBookmarkRequestBody struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Category string `json:"category"`
}

// UpdateBookmarkRequestBody intentionally carries only title and url. The
// edit path never touches category or favorite state; those have their own
// dedicated operations.
type UpdateBookmarkRequestBody struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type ToggleFavoriteRequestBody struct {
	IsFav bool `json:"is_fav"`
}
