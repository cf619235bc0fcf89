package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"linkstash/internal/handlers"
	"linkstash/internal/middlewares"
)

func (s *Server) RegisterRoutes() http.Handler {
	r := mux.NewRouter()

	prom := middlewares.NewPrometheusMiddleware()
	r.Use(middlewares.NewCorsMiddleware(s.cfg.AllowedOrigins))
	r.Use(middlewares.RateLimit)
	r.Use(prom.Instrument)

	ch := handlers.NewCommonHandler(s.db)
	r.HandleFunc("/", ch.HelloWorldHandler)
	r.HandleFunc("/health", ch.HealthHandler)
	r.Handle("/metrics", promhttp.Handler())

	auth := middlewares.NewAuthMiddleware([]byte(s.cfg.JWTSecret))

	s.registerBookmarkRoutes(r, auth)
	s.registerDashboardRoutes(r, auth)
	s.registerAuthRoutes(r, auth)

	return r
}

func (s *Server) registerBookmarkRoutes(r *mux.Router, auth func(http.Handler) http.Handler) {
	bh := handlers.NewBookmarksHandler(s.bookmarkService)

	r.Handle("/api/bookmarks", auth(http.HandlerFunc(bh.GetBookmarks))).Methods("GET", "OPTIONS")
	r.Handle("/api/bookmarks", auth(http.HandlerFunc(bh.AddBookmark))).Methods("POST", "OPTIONS")
	r.Handle("/api/bookmarks/{id}", auth(http.HandlerFunc(bh.GetBookmarkByID))).Methods("GET", "OPTIONS")
	r.Handle("/api/bookmarks/{id}", auth(http.HandlerFunc(bh.UpdateBookmark))).Methods("PUT", "OPTIONS")
	r.Handle("/api/bookmarks/{id}", auth(http.HandlerFunc(bh.DeleteBookmark))).Methods("DELETE", "OPTIONS")
	r.Handle("/api/bookmarks/{id}/favorite", auth(http.HandlerFunc(bh.ToggleFavorite))).Methods("POST", "OPTIONS")
}

func (s *Server) registerDashboardRoutes(r *mux.Router, auth func(http.Handler) http.Handler) {
	dh := handlers.NewDashboardHandler(s.bookmarkService)

	r.Handle("/api/dashboard", auth(http.HandlerFunc(dh.GetDashboard))).Methods("GET", "OPTIONS")
}

func (s *Server) registerAuthRoutes(r *mux.Router, auth func(http.Handler) http.Handler) {
	uh := handlers.NewUserHandler(s.userService, s.authService)
	ah := handlers.NewAuthHandler(s.authService)

	r.Handle("/api/me", auth(http.HandlerFunc(uh.GetMyProfile))).Methods("GET", "OPTIONS")
	r.Handle("/api/me", auth(http.HandlerFunc(uh.DeleteMyProfile))).Methods("DELETE", "OPTIONS")
	r.Handle("/api/me/profile", auth(http.HandlerFunc(uh.GetProfile))).Methods("GET", "OPTIONS")

	r.HandleFunc("/api/auth/success", ah.AuthSuccess).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/auth/error", ah.AuthError).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/auth/logout", ah.Logout).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/auth/{provider}", ah.ProviderAuth).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/auth/{provider}/callback", ah.ProviderCallback).Methods("GET", "OPTIONS")
}
