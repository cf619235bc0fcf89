package services

import (
	"context"
	"errors"
	"testing"

	"github.com/markbates/goth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"linkstash/internal/config"
	"linkstash/internal/errs"
	"linkstash/internal/models"
)

type fakeUserRepo struct {
	byEmail map[string]*models.User
	findErr error

	created *models.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	f.created = user
	if f.byEmail == nil {
		f.byEmail = make(map[string]*models.User)
	}
	f.byEmail[user.Email] = user
	return user, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	for _, u := range f.byEmail {
		if u.ID == userID {
			return u, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserRepo) Delete(ctx context.Context, userID primitive.ObjectID) (*mongo.DeleteResult, error) {
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "test-secret", AppOrigin: config.DefaultAppOrigin}
}

func TestHandleLoginCreatesFirstTimeUser(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewAuthService(repo, nil, testConfig())

	token, err := svc.HandleLogin(context.Background(), goth.User{
		Email:    "new@example.com",
		NickName: "newbie",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	require.NotNil(t, repo.created)
	assert.Equal(t, "new@example.com", repo.created.Email)
	assert.Equal(t, "newbie", repo.created.Username)
}

func TestHandleLoginReusesExistingUser(t *testing.T) {
	existing := &models.User{ID: primitive.NewObjectID(), Email: "back@example.com"}
	repo := &fakeUserRepo{byEmail: map[string]*models.User{existing.Email: existing}}
	svc := NewAuthService(repo, nil, testConfig())

	token, err := svc.HandleLogin(context.Background(), goth.User{Email: "back@example.com"})

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Nil(t, repo.created, "no new row for a returning user")
}

func TestHandleLoginRejectsMissingEmail(t *testing.T) {
	svc := NewAuthService(&fakeUserRepo{}, nil, testConfig())

	_, err := svc.HandleLogin(context.Background(), goth.User{})

	var aerr *errs.AuthError
	assert.ErrorAs(t, err, &aerr)
}

func TestHandleLoginTreatsLookupFailureAsAuthError(t *testing.T) {
	repo := &fakeUserRepo{findErr: errors.New("connection reset")}
	svc := NewAuthService(repo, nil, testConfig())

	_, err := svc.HandleLogin(context.Background(), goth.User{Email: "x@example.com"})

	var aerr *errs.AuthError
	assert.ErrorAs(t, err, &aerr)
}

func TestResolveSessionUnknownUser(t *testing.T) {
	svc := NewAuthService(&fakeUserRepo{}, nil, testConfig())

	_, err := svc.ResolveSession(context.Background(), primitive.NewObjectID())

	var aerr *errs.AuthError
	assert.ErrorAs(t, err, &aerr)
}

func TestResolveSessionKnownUser(t *testing.T) {
	existing := &models.User{ID: primitive.NewObjectID(), Email: "me@example.com"}
	repo := &fakeUserRepo{byEmail: map[string]*models.User{existing.Email: existing}}
	svc := NewAuthService(repo, nil, testConfig())

	session, err := svc.ResolveSession(context.Background(), existing.ID)

	require.NoError(t, err)
	assert.Equal(t, existing.ID.Hex(), session.UserID)
	assert.Equal(t, "me@example.com", session.Email)
}
