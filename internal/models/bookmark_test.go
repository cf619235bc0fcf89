package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKnownCategory(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, KnownCategory(c), c)
	}
	assert.False(t, KnownCategory(""))
	assert.False(t, KnownCategory("Recipes"))
	assert.False(t, KnownCategory("work"), "labels are case sensitive")
	assert.False(t, KnownCategory(CategoryAll), "the filter sentinel is not a storable category")
}

func TestEffectiveCategoryFallback(t *testing.T) {
	bm := Bookmark{Title: "Example"}
	assert.Equal(t, DefaultCategory, bm.EffectiveCategory())

	bm.Category = "Work"
	assert.Equal(t, "Work", bm.EffectiveCategory())
}

func TestNormalizeCategoryInPlace(t *testing.T) {
	bm := Bookmark{}
	bm.NormalizeCategory()
	assert.Equal(t, DefaultCategory, bm.Category)

	bm.Category = "Learning"
	bm.NormalizeCategory()
	assert.Equal(t, "Learning", bm.Category)
}
