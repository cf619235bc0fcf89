package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"linkstash/internal/models"
)

func TestGetUserProfileAggregatesFavorites(t *testing.T) {
	user := &models.User{ID: primitive.NewObjectID(), Email: "me@example.com", Username: "me"}
	userRepo := &fakeUserRepo{byEmail: map[string]*models.User{user.Email: user}}
	bookmarkRepo := &fakeBookmarkRepo{favCount: 3}
	svc := NewUserService(userRepo, bookmarkRepo)

	profile, err := svc.GetUserProfile(context.Background(), user.ID)

	require.NoError(t, err)
	assert.Equal(t, user.ID, profile.ID)
	assert.Equal(t, "me@example.com", profile.Email)
	assert.Equal(t, int64(3), profile.TotalFavorites)
}

func TestGetUserProfileCountFailureIsNotFatal(t *testing.T) {
	user := &models.User{ID: primitive.NewObjectID(), Email: "me@example.com"}
	userRepo := &fakeUserRepo{byEmail: map[string]*models.User{user.Email: user}}
	bookmarkRepo := &fakeBookmarkRepo{favCountErr: errors.New("connection reset")}
	svc := NewUserService(userRepo, bookmarkRepo)

	profile, err := svc.GetUserProfile(context.Background(), user.ID)

	require.NoError(t, err)
	assert.Equal(t, int64(0), profile.TotalFavorites)
}

func TestGetUserProfileUnknownUser(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{}, &fakeBookmarkRepo{})

	_, err := svc.GetUserProfile(context.Background(), primitive.NewObjectID())

	assert.Error(t, err)
}
