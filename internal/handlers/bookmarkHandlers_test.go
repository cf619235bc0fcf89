package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"linkstash/internal/errs"
	"linkstash/internal/models"
	"linkstash/internal/utils"
)

func authedJSONRequest(t *testing.T, method, target, body string) *http.Request {
	t.Helper()
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	ctx := context.WithValue(r.Context(), utils.UserIDContextKey, primitive.NewObjectID().Hex())
	return r.WithContext(ctx)
}

func TestAddBookmarkValidationErrorIs400(t *testing.T) {
	svc := &fakeBookmarkService{addErr: errs.NewValidationError("url", "url must start with http:// or https://")}
	h := NewBookmarksHandler(svc)

	w := httptest.NewRecorder()
	h.AddBookmark(w, authedJSONRequest(t, http.MethodPost, "/api/bookmarks",
		`{"title":"FTP mirror","url":"ftp://x.com"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "http://")
}

func TestAddBookmarkSuccessIs201(t *testing.T) {
	created := &models.Bookmark{ID: primitive.NewObjectID(), Title: "Example", URL: "https://example.com", Category: "General"}
	h := NewBookmarksHandler(&fakeBookmarkService{added: created})

	w := httptest.NewRecorder()
	h.AddBookmark(w, authedJSONRequest(t, http.MethodPost, "/api/bookmarks",
		`{"title":"Example","url":"https://example.com"}`))

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), created.ID.Hex())
}

func TestAddBookmarkMalformedJSONIs400(t *testing.T) {
	h := NewBookmarksHandler(&fakeBookmarkService{})

	w := httptest.NewRecorder()
	h.AddBookmark(w, authedJSONRequest(t, http.MethodPost, "/api/bookmarks", `{not json`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateBookmarkNotFoundIs404(t *testing.T) {
	svc := &fakeBookmarkService{updateErr: errs.NewStoreError("update", errs.ErrNotFound)}
	h := NewBookmarksHandler(svc)

	r := authedJSONRequest(t, http.MethodPut, "/api/bookmarks/"+primitive.NewObjectID().Hex(),
		`{"title":"New","url":"https://new.example"}`)
	r = mux.SetURLVars(r, map[string]string{"id": primitive.NewObjectID().Hex()})

	w := httptest.NewRecorder()
	h.UpdateBookmark(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteBookmarkSuccessIs204(t *testing.T) {
	h := NewBookmarksHandler(&fakeBookmarkService{})

	r := authedJSONRequest(t, http.MethodDelete, "/api/bookmarks/"+primitive.NewObjectID().Hex(), "")
	r = mux.SetURLVars(r, map[string]string{"id": primitive.NewObjectID().Hex()})

	w := httptest.NewRecorder()
	h.DeleteBookmark(w, r)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestDeleteBookmarkStoreFailureIs500(t *testing.T) {
	svc := &fakeBookmarkService{deleteErr: errs.NewStoreError("delete", assert.AnError)}
	h := NewBookmarksHandler(svc)

	r := authedJSONRequest(t, http.MethodDelete, "/api/bookmarks/"+primitive.NewObjectID().Hex(), "")
	r = mux.SetURLVars(r, map[string]string{"id": primitive.NewObjectID().Hex()})

	w := httptest.NewRecorder()
	h.DeleteBookmark(w, r)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestToggleFavoriteIdempotentPayload(t *testing.T) {
	h := NewBookmarksHandler(&fakeBookmarkService{})

	r := authedJSONRequest(t, http.MethodPost, "/api/bookmarks/x/favorite", `{"is_fav":true}`)
	r = mux.SetURLVars(r, map[string]string{"id": primitive.NewObjectID().Hex()})

	w := httptest.NewRecorder()
	h.ToggleFavorite(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"is_fav":true`)
}

func TestBookmarkRoutesRejectBadIDFormat(t *testing.T) {
	h := NewBookmarksHandler(&fakeBookmarkService{})

	r := authedJSONRequest(t, http.MethodDelete, "/api/bookmarks/not-an-id", "")
	r = mux.SetURLVars(r, map[string]string{"id": "not-an-id"})

	w := httptest.NewRecorder()
	h.DeleteBookmark(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
