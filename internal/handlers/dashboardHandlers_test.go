package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"linkstash/internal/errs"
	"linkstash/internal/models"
	"linkstash/internal/utils"
	"linkstash/internal/view"
)

type fakeBookmarkService struct {
	list    []models.Bookmark
	listErr error

	added     *models.Bookmark
	addErr    error
	updateErr error
	favErr    error
	deleteErr error
}

func (f *fakeBookmarkService) GetBookmarks(ctx context.Context, userID primitive.ObjectID) ([]models.Bookmark, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.list, nil
}

func (f *fakeBookmarkService) AddBookmark(ctx context.Context, userID primitive.ObjectID, reqBody models.AddBookmarkRequestBody) (*models.Bookmark, error) {
	if f.addErr != nil {
		return nil, f.addErr
	}
	return f.added, nil
}

func (f *fakeBookmarkService) GetBookmarkByID(ctx context.Context, userID, bookmarkID primitive.ObjectID) (*models.Bookmark, error) {
	return nil, errs.NewStoreError("get", errs.ErrNotFound)
}

func (f *fakeBookmarkService) UpdateBookmark(ctx context.Context, userID, bookmarkID primitive.ObjectID, reqBody models.UpdateBookmarkRequestBody) (*models.Bookmark, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.added, nil
}

func (f *fakeBookmarkService) SetFavorite(ctx context.Context, userID, bookmarkID primitive.ObjectID, isFav bool) error {
	return f.favErr
}

func (f *fakeBookmarkService) DeleteBookmark(ctx context.Context, userID, bookmarkID primitive.ObjectID) error {
	return f.deleteErr
}

func authedRequest(t *testing.T, method, target string) *http.Request {
	t.Helper()
	r := httptest.NewRequest(method, target, nil)
	ctx := context.WithValue(r.Context(), utils.UserIDContextKey, primitive.NewObjectID().Hex())
	return r.WithContext(ctx)
}

func TestGetDashboardAppliesControls(t *testing.T) {
	now := time.Now()
	svc := &fakeBookmarkService{list: []models.Bookmark{
		{ID: primitive.NewObjectID(), Title: "GitHub", URL: "https://github.com", Category: "Work", IsFav: true, CreatedAt: primitive.NewDateTimeFromTime(now)},
		{ID: primitive.NewObjectID(), Title: "Go Docs", URL: "https://go.dev", Category: "Learning", CreatedAt: primitive.NewDateTimeFromTime(now.Add(-time.Hour))},
	}}
	h := NewDashboardHandler(svc)

	w := httptest.NewRecorder()
	h.GetDashboard(w, authedRequest(t, http.MethodGet, "/api/dashboard?favorites=favorites&sort=az"))

	require.Equal(t, http.StatusOK, w.Code)

	var derived view.View
	require.NoError(t, json.NewDecoder(w.Body).Decode(&derived))
	require.Len(t, derived.Visible, 1)
	assert.Equal(t, "GitHub", derived.Visible[0].Title)
	assert.Equal(t, 2, derived.Summary.TotalBookmarks, "summary reflects the unfiltered list")
	assert.Equal(t, 1, derived.Summary.TotalFavorites)
}

func TestGetDashboardEmptyStates(t *testing.T) {
	h := NewDashboardHandler(&fakeBookmarkService{})

	w := httptest.NewRecorder()
	h.GetDashboard(w, authedRequest(t, http.MethodGet, "/api/dashboard"))

	require.Equal(t, http.StatusOK, w.Code)
	var derived view.View
	require.NoError(t, json.NewDecoder(w.Body).Decode(&derived))
	assert.Equal(t, view.EmptyNoBookmarks, derived.Empty)
	assert.Equal(t, view.NoBookmarksPlaceholder, derived.Summary.LatestTitle)
}

func TestGetDashboardRequiresSession(t *testing.T) {
	h := NewDashboardHandler(&fakeBookmarkService{})

	w := httptest.NewRecorder()
	h.GetDashboard(w, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetDashboardStoreFailure(t *testing.T) {
	svc := &fakeBookmarkService{listErr: errs.NewStoreError("list", assert.AnError)}
	h := NewDashboardHandler(svc)

	w := httptest.NewRecorder()
	h.GetDashboard(w, authedRequest(t, http.MethodGet, "/api/dashboard"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
