package view

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"linkstash/internal/errs"
	"linkstash/internal/metrics"
	"linkstash/internal/models"
	"linkstash/internal/services"
)

// ErrRequestInFlight is returned when an add or update is submitted while the
// previous one has not completed. Callers treat it as "control disabled".
var ErrRequestInFlight = errors.New("request already in flight")

// ErrNoEditTarget is returned when an update is submitted with no bookmark in
// edit mode.
var ErrNoEditTarget = errors.New("no bookmark in edit mode")

// Store is the identity-bound store client a session talks to. It mirrors the
// bookmark service with the user id already applied.
type Store interface {
	List(ctx context.Context) ([]models.Bookmark, error)
	Create(ctx context.Context, title, url, category string) (*models.Bookmark, error)
	Update(ctx context.Context, id, title, url string) (*models.Bookmark, error)
	SetFavorite(ctx context.Context, id string, isFav bool) error
	Delete(ctx context.Context, id string) error
}

// Session drives one user's view state against the store. All store calls are
// awaited sequentially by the initiating action; the in-flight flags are set
// before a request is issued and cleared only after completion.
type Session struct {
	State *State
	store Store
}

func NewSession(store Store) *Session {
	return &Session{
		State: NewState(),
		store: store,
	}
}

// Load transitions into Loading, fetches the list, and settles in Ready. On a
// store failure the prior list state is left unchanged.
func (s *Session) Load(ctx context.Context, session *models.Session) error {
	s.State.Authenticate(session)

	list, err := s.store.List(ctx)
	if err != nil {
		log.Error().Err(err).Str("user_id", session.UserID).Msg("Failed to load bookmark list")
		return err
	}

	s.State.SetList(list)
	return nil
}

// SubmitAdd validates the pending add form and creates the bookmark. A
// validation failure surfaces on the form and never reaches the store. On
// success the persisted row is prepended without a refetch.
func (s *Session) SubmitAdd(ctx context.Context) error {
	if s.State.AddInFlight {
		return ErrRequestInFlight
	}
	s.State.AddInFlight = true
	defer func() { s.State.AddInFlight = false }()

	form := s.State.Add
	if err := services.ValidateBookmarkFields(form.Title, form.URL); err != nil {
		var verr *errs.ValidationError
		if errors.As(err, &verr) {
			s.State.Add.Err = verr.Message
		}
		return err
	}
	s.State.Add.Err = ""

	created, err := s.store.Create(ctx, form.Title, form.URL, form.Category)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create bookmark")
		return err
	}

	s.State.ApplyAdd(*created)
	return nil
}

// SubmitUpdate sends the edit-form fields for the edit target. On success the
// whole list is refetched so the snapshot matches committed server state, and
// edit mode is exited. On failure the edit fields stay populated for retry.
func (s *Session) SubmitUpdate(ctx context.Context) error {
	if s.State.UpdateInFlight {
		return ErrRequestInFlight
	}
	if !s.State.Editing() {
		return ErrNoEditTarget
	}
	s.State.UpdateInFlight = true
	defer func() { s.State.UpdateInFlight = false }()

	edit := s.State.Edit
	if err := services.ValidateBookmarkFields(edit.Title, edit.URL); err != nil {
		return err
	}

	if _, err := s.store.Update(ctx, edit.TargetID, edit.Title, edit.URL); err != nil {
		log.Error().Err(err).Str("bookmark_id", edit.TargetID).Msg("Failed to update bookmark")
		return err
	}

	list, err := s.store.List(ctx)
	if err != nil {
		// The update committed; only the refetch failed. Keep the stale
		// snapshot rather than guessing at server state.
		log.Error().Err(err).Msg("Refetch after update failed")
		s.State.CancelEdit()
		return err
	}

	s.State.SetList(list)
	s.State.CancelEdit()
	return nil
}

// ToggleFavorite flips the flag in memory first, then issues the mutation.
// On failure the flip is reverted to the pre-toggle value.
func (s *Session) ToggleFavorite(ctx context.Context, id string) error {
	prev, ok := s.State.ApplyToggle(id)
	if !ok {
		return errs.NewStoreError("toggleFavorite", errs.ErrNotFound)
	}

	if err := s.store.SetFavorite(ctx, id, !prev); err != nil {
		s.State.RevertToggle(id, prev)
		metrics.FavoriteRevertedTotal.Inc()
		log.Warn().Err(err).Str("bookmark_id", id).Msg("Favorite toggle reverted after store failure")
		return err
	}
	return nil
}

// Delete removes the entry from the snapshot only once the store confirms.
func (s *Session) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		log.Error().Err(err).Str("bookmark_id", id).Msg("Failed to delete bookmark")
		return err
	}
	s.State.ApplyDelete(id)
	return nil
}
