package services

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/github"
	"github.com/markbates/goth/providers/google"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"linkstash/internal/config"
	"linkstash/internal/errs"
	"linkstash/internal/metrics"
	"linkstash/internal/models"
	"linkstash/internal/repositories"
	"linkstash/internal/utils"
)

const sessionMaxAge = 86400 * 30

// AuthService bridges the OAuth providers to the application's own session:
// a provider identity is exchanged for a local user row and a JWT.
type AuthService interface {
	HandleLogin(ctx context.Context, u goth.User) (string, error)
	ResolveSession(ctx context.Context, userID primitive.ObjectID) (*models.Session, error)
}

type authService struct {
	userRepo  repositories.UserRepository
	email     EmailService
	jwtSecret []byte
}

func NewAuthService(userRepo repositories.UserRepository, email EmailService, cfg *config.Config) AuthService {
	return &authService{
		userRepo:  userRepo,
		email:     email,
		jwtSecret: []byte(cfg.JWTSecret),
	}
}

// InitializeGoth wires the OAuth providers and the gothic cookie store. Call
// once, before the router starts serving.
func InitializeGoth(cfg *config.Config) {
	store := sessions.NewCookieStore([]byte(cfg.SessionKey))
	store.MaxAge(sessionMaxAge)

	store.Options.Path = "/"
	store.Options.HttpOnly = true
	store.Options.Secure = false
	store.Options.SameSite = http.SameSiteLaxMode

	gothic.Store = store

	goth.UseProviders(
		google.New(cfg.Google.ClientID, cfg.Google.ClientSecret, cfg.CallbackURL("google")),
		github.New(cfg.GitHub.ClientID, cfg.GitHub.ClientSecret, cfg.CallbackURL("github")),
	)
	log.Info().Str("origin", cfg.AppOrigin).Msg("Goth providers initialized")
}

// HandleLogin finds or creates the user behind a provider identity and issues
// a session token. First-time sign-ups get a welcome email, best effort.
func (a *authService) HandleLogin(ctx context.Context, u goth.User) (string, error) {
	log.Info().Str("email", u.Email).Msg("Attempting to handle login for user")
	if u.Email == "" {
		log.Error().Msg("Missing email in provider user data")
		metrics.LoginAttemptsTotal.WithLabelValues("failed").Inc()
		return "", errs.NewAuthError("missing email")
	}

	user, err := a.userRepo.FindByEmail(ctx, u.Email)
	if err != nil {
		log.Error().Err(err).Str("email", u.Email).Msg("Error finding user by email")
		metrics.LoginAttemptsTotal.WithLabelValues("failed").Inc()
		return "", errs.NewAuthError("error finding user by email")
	}

	if user == nil {
		log.Info().Str("email", u.Email).Msg("User not found, creating new user")
		newUser := &models.User{
			ID:        primitive.NewObjectID(),
			Email:     u.Email,
			Username:  u.NickName,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if _, err := a.userRepo.Create(ctx, newUser); err != nil {
			log.Error().Err(err).Str("email", u.Email).Msg("Error creating new user")
			metrics.LoginAttemptsTotal.WithLabelValues("failed").Inc()
			return "", errs.NewAuthError("error creating user")
		}
		user = newUser
		metrics.NewUsersTotal.Inc()
		log.Info().Str("email", u.Email).Str("userID", user.ID.Hex()).Msg("New user created successfully")

		go a.sendWelcomeEmail(user)
	} else {
		log.Info().Str("email", u.Email).Str("userID", user.ID.Hex()).Msg("User found in database")
	}

	token, err := utils.GenerateJWT(user.ID, a.jwtSecret)
	if err != nil {
		log.Error().Err(err).Str("userID", user.ID.Hex()).Msg("Error generating JWT for user")
		metrics.LoginAttemptsTotal.WithLabelValues("failed").Inc()
		return "", errs.NewAuthError("error generating session token")
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	log.Info().Str("userID", user.ID.Hex()).Msg("JWT generated successfully")
	return token, nil
}

// ResolveSession yields the identity behind an authenticated user id. A
// missing row is treated the same as no session.
func (a *authService) ResolveSession(ctx context.Context, userID primitive.ObjectID) (*models.Session, error) {
	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		log.Warn().Err(err).Str("userID", userID.Hex()).Msg("Session resolution failed")
		return nil, errs.NewAuthError("no session")
	}
	return &models.Session{UserID: user.ID.Hex(), Email: user.Email}, nil
}

func (a *authService) sendWelcomeEmail(user *models.User) {
	if a.email == nil {
		return
	}
	body := "<p>Welcome to linkstash, " + user.Username + "! Your bookmarks are waiting.</p>"
	if err := a.email.SendEmail(user.Email, "Welcome to linkstash", body); err != nil {
		log.Warn().Err(err).Str("email", user.Email).Msg("Failed to send welcome email")
	}
}
