package view

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"linkstash/internal/errs"
	"linkstash/internal/models"
	"linkstash/internal/services"
)

// serviceStore binds a BookmarkService to one user id, giving the session an
// identity-scoped Store.
type serviceStore struct {
	svc    services.BookmarkService
	userID primitive.ObjectID
}

func NewServiceStore(svc services.BookmarkService, userID primitive.ObjectID) Store {
	return &serviceStore{svc: svc, userID: userID}
}

func (s *serviceStore) List(ctx context.Context) ([]models.Bookmark, error) {
	return s.svc.GetBookmarks(ctx, s.userID)
}

func (s *serviceStore) Create(ctx context.Context, title, url, category string) (*models.Bookmark, error) {
	return s.svc.AddBookmark(ctx, s.userID, models.AddBookmarkRequestBody{
		Title:    title,
		URL:      url,
		Category: category,
	})
}

func (s *serviceStore) Update(ctx context.Context, id, title, url string) (*models.Bookmark, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errs.NewValidationError("id", "invalid bookmark id")
	}
	return s.svc.UpdateBookmark(ctx, s.userID, oid, models.UpdateBookmarkRequestBody{
		Title: title,
		URL:   url,
	})
}

func (s *serviceStore) SetFavorite(ctx context.Context, id string, isFav bool) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.NewValidationError("id", "invalid bookmark id")
	}
	return s.svc.SetFavorite(ctx, s.userID, oid, isFav)
}

func (s *serviceStore) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.NewValidationError("id", "invalid bookmark id")
	}
	return s.svc.DeleteBookmark(ctx, s.userID, oid)
}
