package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"linkstash/internal/models"
	"linkstash/internal/repositories"
)

// UserService defines the interface for user-related business logic.
type UserService interface {
	GetUserProfile(ctx context.Context, userID primitive.ObjectID) (*models.Profile, error)
	DeleteUser(ctx context.Context, userID primitive.ObjectID) error
}

type userService struct {
	userRepo     repositories.UserRepository
	bookmarkRepo repositories.BookmarkRepository
}

func NewUserService(userRepo repositories.UserRepository, bookmarkRepo repositories.BookmarkRepository) UserService {
	return &userService{userRepo: userRepo, bookmarkRepo: bookmarkRepo}
}

// GetUserProfile assembles the owner's account view. The favorite count is
// best effort; a failed count yields 0 rather than failing the profile.
func (s *userService) GetUserProfile(ctx context.Context, userID primitive.ObjectID) (*models.Profile, error) {
	log.Debug().Str("user_id", userID.Hex()).Msg("Attempting to retrieve user profile")
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			log.Warn().Str("user_id", userID.Hex()).Msg("User profile not found")
			return nil, fmt.Errorf("user not found")
		}
		log.Error().Err(err).Str("user_id", userID.Hex()).Msg("Error retrieving user profile")
		return nil, err
	}

	favorites, err := s.bookmarkRepo.CountFavorites(ctx, userID)
	if err != nil {
		log.Warn().Err(err).Str("user_id", userID.Hex()).Msg("Error counting favorites for profile")
		favorites = 0
	}

	return &models.Profile{
		ID:             user.ID,
		Username:       user.Username,
		Email:          user.Email,
		CreatedAt:      user.CreatedAt,
		TotalFavorites: favorites,
	}, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID primitive.ObjectID) error {
	log.Debug().Str("user_id", userID.Hex()).Msg("Attempting to delete user account")
	result, err := s.userRepo.Delete(ctx, userID)
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		log.Warn().Str("user_id", userID.Hex()).Msg("User account not found during deletion")
		return fmt.Errorf("user not found")
	}
	log.Info().Str("user_id", userID.Hex()).Msg("User account deleted successfully")
	return nil
}
