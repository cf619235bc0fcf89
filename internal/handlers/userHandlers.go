package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"linkstash/internal/services"
	"linkstash/internal/utils"
)

type UserHandler struct {
	userService services.UserService
	authService services.AuthService
}

func NewUserHandler(userService services.UserService, authService services.AuthService) *UserHandler {
	return &UserHandler{userService: userService, authService: authService}
}

// GetMyProfile returns the resolved session identity for the caller.
func (h *UserHandler) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.GetUserIDFromContext(w, r)
	if err != nil {
		return
	}

	session, err := h.authService.ResolveSession(r.Context(), userID)
	if err != nil {
		log.Warn().Err(err).Str("user_id", userID.Hex()).Msg("Error resolving session")
		writeError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, session)
}

// GetProfile returns the caller's account view with the favorite count.
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.GetUserIDFromContext(w, r)
	if err != nil {
		return
	}

	profile, err := h.userService.GetUserProfile(r.Context(), userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.Hex()).Msg("Error retrieving user profile")
		utils.SendJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, profile)
}

func (h *UserHandler) DeleteMyProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.GetUserIDFromContext(w, r)
	if err != nil {
		return
	}

	if err := h.userService.DeleteUser(r.Context(), userID); err != nil {
		log.Error().Err(err).Str("user_id", userID.Hex()).Msg("Error deleting user account")
		utils.SendJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
