package view

import (
	"linkstash/internal/models"
)

// Phase is the lifecycle of a view session.
type Phase string

const (
	PhaseUnauthenticated Phase = "unauthenticated"
	PhaseLoading         Phase = "loading"
	PhaseReady           Phase = "ready"
)

// AddForm holds the pending-add fields plus the inline validation message.
type AddForm struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Category string `json:"category"`
	Err      string `json:"error,omitempty"`
}

// EditForm holds the pending-edit fields. TargetID empty means no bookmark is
// in edit mode; at most one ever is.
type EditForm struct {
	TargetID string `json:"target_id,omitempty"`
	Title    string `json:"title"`
	URL      string `json:"url"`
}

// State is the process-local view state of one authenticated session: the
// server-truth list snapshot, transient form inputs, display controls, and
// the in-flight flags that disable redundant submissions.
type State struct {
	Phase    Phase           `json:"phase"`
	Session  *models.Session `json:"session,omitempty"`
	List     []models.Bookmark
	Add      AddForm
	Edit     EditForm
	Controls Controls

	AddInFlight    bool
	UpdateInFlight bool
}

func NewState() *State {
	return &State{Phase: PhaseUnauthenticated}
}

// Authenticate transitions Unauthenticated → Loading with the resolved
// identity.
func (s *State) Authenticate(session *models.Session) {
	s.Session = session
	s.Phase = PhaseLoading
}

// SetList installs a fresh server-truth snapshot and completes the transition
// to Ready.
func (s *State) SetList(list []models.Bookmark) {
	s.List = list
	s.Phase = PhaseReady
}

// BeginEdit puts the given bookmark into edit mode, copying its current title
// and url into the edit fields. Any previous edit target is replaced.
func (s *State) BeginEdit(bm models.Bookmark) {
	s.Edit = EditForm{
		TargetID: bm.ID.Hex(),
		Title:    bm.Title,
		URL:      bm.URL,
	}
}

// CancelEdit clears the edit fields and target.
func (s *State) CancelEdit() {
	s.Edit = EditForm{}
}

// Editing reports whether a bookmark is in edit mode.
func (s *State) Editing() bool {
	return s.Edit.TargetID != ""
}

// ApplyAdd prepends a persisted row to the snapshot, keeping newest-first
// order without a refetch, and clears the add form.
func (s *State) ApplyAdd(bm models.Bookmark) {
	s.List = append([]models.Bookmark{bm}, s.List...)
	s.Add = AddForm{}
}

// ApplyDelete removes the entry with the given id, if present.
func (s *State) ApplyDelete(id string) {
	for i, bm := range s.List {
		if bm.ID.Hex() == id {
			s.List = append(s.List[:i], s.List[i+1:]...)
			return
		}
	}
}

// ApplyToggle flips the favorite flag of the entry with the given id in
// memory and returns the pre-toggle value. ok is false when the id is not in
// the snapshot.
func (s *State) ApplyToggle(id string) (prev bool, ok bool) {
	for i := range s.List {
		if s.List[i].ID.Hex() == id {
			prev = s.List[i].IsFav
			s.List[i].IsFav = !prev
			return prev, true
		}
	}
	return false, false
}

// RevertToggle restores the favorite flag to its pre-toggle value. The rest
// of the entry is untouched.
func (s *State) RevertToggle(id string, prev bool) {
	for i := range s.List {
		if s.List[i].ID.Hex() == id {
			s.List[i].IsFav = prev
			return
		}
	}
}

// Derived runs the derivation pipeline over the current snapshot and controls.
func (s *State) Derived() View {
	return Derive(s.List, s.Controls)
}
