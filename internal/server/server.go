package server

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"linkstash/internal/config"
	"linkstash/internal/database"
	"linkstash/internal/middlewares"
	"linkstash/internal/repositories"
	"linkstash/internal/services"
)

type Server struct {
	cfg             *config.Config
	httpServer      *http.Server
	db              database.Service
	userService     services.UserService
	bookmarkService services.BookmarkService
	authService     services.AuthService
}

func NewServer(cfg *config.Config) *Server {
	db := database.New(cfg.MongoURI)

	userRepo := repositories.NewUserRepository(db)
	bookmarkRepo := repositories.NewBookmarkRepository(db)

	emailService := services.NewEmailService(cfg)
	authService := services.NewAuthService(userRepo, emailService, cfg)

	s := &Server{
		cfg:             cfg,
		db:              db,
		userService:     services.NewUserService(userRepo, bookmarkRepo),
		bookmarkService: services.NewBookmarkService(bookmarkRepo),
		authService:     authService,
	}

	services.InitializeGoth(cfg)
	go middlewares.CleanupVisitors()

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return s
}

func (s *Server) Start() error {
	log.Info().Int("port", s.cfg.Port).Msg("Starting server")
	return s.httpServer.ListenAndServe()
}

func (s *Server) GracefulShutdown(done chan bool) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	log.Info().Msg("Shutting down gracefully, press Ctrl+C again to force")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown with error")
	}

	if err := s.db.Close(); err != nil {
		log.Error().Err(err).Msg("Error closing database connection")
	}

	log.Info().Msg("Server exiting")
	done <- true
}
