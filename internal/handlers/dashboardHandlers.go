package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"linkstash/internal/metrics"
	"linkstash/internal/models"
	"linkstash/internal/services"
	"linkstash/internal/utils"
	"linkstash/internal/view"
)

// DashboardHandler runs the derivation pipeline server-side: it fetches the
// caller's list and applies the display controls supplied as query params.
type DashboardHandler struct {
	service services.BookmarkService
}

func NewDashboardHandler(service services.BookmarkService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// GetDashboard handles GET /api/dashboard?q=&category=&favorites=&sort=.
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.GetUserIDFromContext(w, r)
	if err != nil {
		return
	}

	q := r.URL.Query()
	controls := view.Controls{
		Search:    q.Get("q"),
		Category:  q.Get("category"),
		Favorites: q.Get("favorites"),
		Sort:      q.Get("sort"),
	}

	sess := view.NewSession(view.NewServiceStore(h.service, userID))
	if err := sess.Load(r.Context(), &models.Session{UserID: userID.Hex()}); err != nil {
		log.Error().Err(err).Str("user_id", userID.Hex()).Msg("Error fetching bookmarks for dashboard")
		writeError(w, err)
		return
	}

	sess.State.Controls = controls
	derived := sess.State.Derived()
	metrics.DashboardDerivedTotal.Inc()

	log.Debug().
		Str("user_id", userID.Hex()).
		Int("total", derived.Summary.TotalBookmarks).
		Int("visible", len(derived.Visible)).
		Msg("Dashboard view derived")

	utils.RespondWithJSON(w, http.StatusOK, derived)
}
