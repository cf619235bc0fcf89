package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Username  string             `json:"username" bson:"username"`
	Email     string             `json:"email" bson:"email"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

// Profile is the account view returned to the owner: identity fields plus the
// favorite count aggregate.
type Profile struct {
	ID             primitive.ObjectID `json:"id"`
	Username       string             `json:"username"`
	Email          string             `json:"email"`
	CreatedAt      time.Time          `json:"created_at"`
	TotalFavorites int64              `json:"total_favorites"`
}

// Session is the resolved identity handed to the view layer. Only the user id
// and email ever leave the auth boundary.
type Session struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}
