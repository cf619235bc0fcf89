package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkstash/internal/models"
)

func TestStatePhaseTransitions(t *testing.T) {
	s := NewState()
	assert.Equal(t, PhaseUnauthenticated, s.Phase)

	s.Authenticate(&models.Session{UserID: "u1", Email: "u@example.com"})
	assert.Equal(t, PhaseLoading, s.Phase)

	s.SetList(nil)
	assert.Equal(t, PhaseReady, s.Phase)
}

func TestStateSingleEditTarget(t *testing.T) {
	s := NewState()
	first := bm("First", "https://first.example", "", false, time.Now())
	second := bm("Second", "https://second.example", "", false, time.Now())

	s.BeginEdit(first)
	require.True(t, s.Editing())
	assert.Equal(t, first.ID.Hex(), s.Edit.TargetID)
	assert.Equal(t, "First", s.Edit.Title)
	assert.Equal(t, "https://first.example", s.Edit.URL)

	// Selecting another bookmark replaces the target; there is never more
	// than one edit target.
	s.BeginEdit(second)
	assert.Equal(t, second.ID.Hex(), s.Edit.TargetID)
	assert.Equal(t, "Second", s.Edit.Title)

	s.CancelEdit()
	assert.False(t, s.Editing())
	assert.Empty(t, s.Edit.Title)
	assert.Empty(t, s.Edit.URL)
}

func TestStateApplyAddPrepends(t *testing.T) {
	s := NewState()
	s.SetList([]models.Bookmark{bm("old", "https://old.example", "", false, time.Now())})
	s.Add = AddForm{Title: "new", URL: "https://new.example"}

	s.ApplyAdd(bm("new", "https://new.example", "", false, time.Now()))

	require.Len(t, s.List, 2)
	assert.Equal(t, "new", s.List[0].Title)
	assert.Empty(t, s.Add.Title, "add form is cleared after a successful add")
}

func TestStateApplyDelete(t *testing.T) {
	s := NewState()
	keep := bm("keep", "https://keep.example", "", false, time.Now())
	drop := bm("drop", "https://drop.example", "", false, time.Now())
	s.SetList([]models.Bookmark{keep, drop})

	s.ApplyDelete(drop.ID.Hex())

	require.Len(t, s.List, 1)
	assert.Equal(t, keep.ID, s.List[0].ID)

	// Deleting an unknown id is a no-op.
	s.ApplyDelete("ffffffffffffffffffffffff")
	assert.Len(t, s.List, 1)
}

func TestStateToggleAndRevert(t *testing.T) {
	s := NewState()
	entry := bm("GitHub", "https://github.com", "Work", false, time.Now())
	s.SetList([]models.Bookmark{entry})

	prev, ok := s.ApplyToggle(entry.ID.Hex())
	require.True(t, ok)
	assert.False(t, prev)
	assert.True(t, s.List[0].IsFav)

	s.RevertToggle(entry.ID.Hex(), prev)
	assert.False(t, s.List[0].IsFav)

	// Other fields stay untouched through a toggle/revert cycle.
	assert.Equal(t, "GitHub", s.List[0].Title)
	assert.Equal(t, "https://github.com", s.List[0].URL)
	assert.Equal(t, "Work", s.List[0].Category)

	_, ok = s.ApplyToggle("ffffffffffffffffffffffff")
	assert.False(t, ok)
}
