package services

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"linkstash/internal/errs"
	"linkstash/internal/metrics"
	"linkstash/internal/models"
	"linkstash/internal/repositories"
)

var urlScheme = regexp.MustCompile(`^https?://`)

// BookmarkService is the store client for a user's bookmarks. Every operation
// is scoped by user_id equality; row-level authorization beyond that filter is
// the database's responsibility, not re-checked here.
type BookmarkService interface {
	GetBookmarks(ctx context.Context, userID primitive.ObjectID) ([]models.Bookmark, error)
	AddBookmark(ctx context.Context, userID primitive.ObjectID, reqBody models.AddBookmarkRequestBody) (*models.Bookmark, error)
	GetBookmarkByID(ctx context.Context, userID, bookmarkID primitive.ObjectID) (*models.Bookmark, error)
	UpdateBookmark(ctx context.Context, userID, bookmarkID primitive.ObjectID, reqBody models.UpdateBookmarkRequestBody) (*models.Bookmark, error)
	SetFavorite(ctx context.Context, userID, bookmarkID primitive.ObjectID, isFav bool) error
	DeleteBookmark(ctx context.Context, userID, bookmarkID primitive.ObjectID) error
}

type bookmarkServiceImpl struct {
	bookmarkRepo repositories.BookmarkRepository
}

func NewBookmarkService(bookmarkRepo repositories.BookmarkRepository) BookmarkService {
	return &bookmarkServiceImpl{bookmarkRepo: bookmarkRepo}
}

// ValidateBookmarkFields runs the local pre-flight checks shared by add and
// edit. A failure here means no store call is made.
func ValidateBookmarkFields(title, url string) error {
	if strings.TrimSpace(title) == "" {
		return errs.NewValidationError("title", "title is required")
	}
	if strings.TrimSpace(url) == "" {
		return errs.NewValidationError("url", "url is required")
	}
	if !urlScheme.MatchString(url) {
		return errs.NewValidationError("url", "url must start with http:// or https://")
	}
	return nil
}

// GetBookmarks returns the caller's bookmarks ordered newest-created-first.
func (s *bookmarkServiceImpl) GetBookmarks(ctx context.Context, userID primitive.ObjectID) ([]models.Bookmark, error) {
	log.Debug().Str("userID", userID.Hex()).Msg("Attempting to retrieve bookmarks")

	filter := bson.M{"user_id": userID}
	sort := bson.D{{Key: "created_at", Value: -1}}

	bookmarks, err := s.bookmarkRepo.Find(ctx, filter, sort)
	if err != nil {
		log.Error().Err(err).Str("userID", userID.Hex()).Msg("Error finding bookmarks")
		return nil, errs.NewStoreError("list", err)
	}

	log.Debug().Str("userID", userID.Hex()).Int("count", len(bookmarks)).Msg("Successfully retrieved bookmarks")
	return bookmarks, nil
}

func (s *bookmarkServiceImpl) AddBookmark(ctx context.Context, userID primitive.ObjectID, reqBody models.AddBookmarkRequestBody) (*models.Bookmark, error) {
	log.Debug().Str("userID", userID.Hex()).Str("title", reqBody.Title).Msg("Attempting to add bookmark")

	if err := ValidateBookmarkFields(reqBody.Title, reqBody.URL); err != nil {
		log.Warn().Err(err).Str("userID", userID.Hex()).Msg("Bookmark rejected by local validation")
		return nil, err
	}

	category := reqBody.Category
	if category == "" {
		category = models.DefaultCategory
	}
	if !models.KnownCategory(category) {
		log.Warn().Str("userID", userID.Hex()).Str("category", category).Msg("Unknown category label")
		return nil, errs.NewValidationError("category", "unknown category: "+category)
	}

	bm := models.Bookmark{
		ID:        primitive.NewObjectID(),
		CreatedAt: primitive.NewDateTimeFromTime(time.Now()),
		UserID:    userID,
		URL:       reqBody.URL,
		Title:     reqBody.Title,
		Category:  category,
	}

	createdBookmark, err := s.bookmarkRepo.Create(ctx, &bm)
	if err != nil {
		log.Error().Err(err).Str("userID", userID.Hex()).Msg("Error inserting bookmark")
		return nil, errs.NewStoreError("create", err)
	}

	metrics.BookmarkCreatedTotal.Inc()
	log.Info().Str("userID", userID.Hex()).Str("bookmarkID", createdBookmark.ID.Hex()).Msg("Bookmark added successfully")
	return createdBookmark, nil
}

func (s *bookmarkServiceImpl) GetBookmarkByID(ctx context.Context, userID, bookmarkID primitive.ObjectID) (*models.Bookmark, error) {
	log.Debug().Str("userID", userID.Hex()).Str("bookmarkID", bookmarkID.Hex()).Msg("Attempting to retrieve bookmark by ID")
	filter := bson.M{"_id": bookmarkID, "user_id": userID}

	bm, err := s.bookmarkRepo.FindOne(ctx, filter)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			log.Warn().Str("userID", userID.Hex()).Str("bookmarkID", bookmarkID.Hex()).Msg("Bookmark not found")
			return nil, errs.NewStoreError("get", errs.ErrNotFound)
		}
		log.Error().Err(err).Str("bookmark_id", bookmarkID.Hex()).Str("userID", userID.Hex()).Msg("Error finding bookmark by ID")
		return nil, errs.NewStoreError("get", err)
	}
	return bm, nil
}

// UpdateBookmark mutates title and url only. Category and favorite state are
// deliberately preserved; they have their own operations.
func (s *bookmarkServiceImpl) UpdateBookmark(ctx context.Context, userID, bookmarkID primitive.ObjectID, reqBody models.UpdateBookmarkRequestBody) (*models.Bookmark, error) {
	log.Debug().Str("userID", userID.Hex()).Str("bookmarkID", bookmarkID.Hex()).Msg("Attempting to update bookmark")

	if err := ValidateBookmarkFields(reqBody.Title, reqBody.URL); err != nil {
		log.Warn().Err(err).Str("userID", userID.Hex()).Msg("Bookmark update rejected by local validation")
		return nil, err
	}

	filter := bson.M{"_id": bookmarkID, "user_id": userID}
	update := bson.M{"$set": bson.M{"title": reqBody.Title, "url": reqBody.URL}}

	result, err := s.bookmarkRepo.UpdateOne(ctx, filter, update)
	if err != nil {
		log.Error().Err(err).Str("bookmark_id", bookmarkID.Hex()).Str("userID", userID.Hex()).Msg("Error updating bookmark")
		return nil, errs.NewStoreError("update", err)
	}

	if result.MatchedCount == 0 {
		log.Warn().Str("bookmark_id", bookmarkID.Hex()).Str("userID", userID.Hex()).Msg("Bookmark not found or not authorized to update")
		return nil, errs.NewStoreError("update", errs.ErrNotFound)
	}

	updatedBookmark, err := s.bookmarkRepo.FindOne(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("bookmark_id", bookmarkID.Hex()).Str("userID", userID.Hex()).Msg("Error fetching updated bookmark")
		return nil, errs.NewStoreError("update", err)
	}

	metrics.BookmarkUpdatedTotal.Inc()
	log.Info().Str("userID", userID.Hex()).Str("bookmarkID", bookmarkID.Hex()).Msg("Bookmark updated successfully")
	return updatedBookmark, nil
}

// SetFavorite persists the desired favorite state. The optimistic flip and its
// revert live in the view layer; this call is the remote half.
func (s *bookmarkServiceImpl) SetFavorite(ctx context.Context, userID, bookmarkID primitive.ObjectID, isFav bool) error {
	log.Debug().Str("userID", userID.Hex()).Str("bookmarkID", bookmarkID.Hex()).Bool("is_fav", isFav).Msg("Attempting to set favorite state")

	filter := bson.M{"_id": bookmarkID, "user_id": userID}
	update := bson.M{"$set": bson.M{"is_fav": isFav}}

	result, err := s.bookmarkRepo.UpdateOne(ctx, filter, update)
	if err != nil {
		log.Error().Err(err).Str("bookmark_id", bookmarkID.Hex()).Str("userID", userID.Hex()).Msg("Error setting favorite state")
		return errs.NewStoreError("toggleFavorite", err)
	}

	if result.MatchedCount == 0 {
		log.Warn().Str("bookmark_id", bookmarkID.Hex()).Str("userID", userID.Hex()).Msg("Bookmark not found or not authorized to toggle")
		return errs.NewStoreError("toggleFavorite", errs.ErrNotFound)
	}

	metrics.FavoriteToggledTotal.Inc()
	log.Info().Str("userID", userID.Hex()).Str("bookmarkID", bookmarkID.Hex()).Bool("is_fav", isFav).Msg("Favorite state persisted")
	return nil
}

func (s *bookmarkServiceImpl) DeleteBookmark(ctx context.Context, userID, bookmarkID primitive.ObjectID) error {
	log.Debug().Str("userID", userID.Hex()).Str("bookmarkID", bookmarkID.Hex()).Msg("Attempting to delete bookmark")
	filter := bson.M{"_id": bookmarkID, "user_id": userID}

	deleteResult, err := s.bookmarkRepo.DeleteOne(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("bookmark_id", bookmarkID.Hex()).Str("userID", userID.Hex()).Msg("Error deleting bookmark")
		return errs.NewStoreError("delete", err)
	}

	if deleteResult.DeletedCount == 0 {
		log.Warn().Str("bookmark_id", bookmarkID.Hex()).Str("userID", userID.Hex()).Msg("Bookmark not found or not authorized to delete")
		return errs.NewStoreError("delete", errs.ErrNotFound)
	}

	metrics.BookmarkDeletedTotal.Inc()
	log.Info().Str("userID", userID.Hex()).Str("bookmarkID", bookmarkID.Hex()).Msg("Bookmark deleted successfully")
	return nil
}
