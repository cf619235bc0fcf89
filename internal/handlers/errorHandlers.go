package handlers

import (
	"errors"
	"net/http"

	"linkstash/internal/errs"
	"linkstash/internal/utils"
)

// writeError maps the error taxonomy onto HTTP statuses: validation failures
// are 400, missing-or-unowned rows 404, auth failures 401, anything else from
// the store 500. Nothing here is fatal; every failure is a renderable state.
func writeError(w http.ResponseWriter, err error) {
	var verr *errs.ValidationError
	if errors.As(err, &verr) {
		utils.SendJSONError(w, verr.Message, http.StatusBadRequest)
		return
	}

	var aerr *errs.AuthError
	if errors.As(err, &aerr) {
		utils.SendJSONError(w, "Not signed in", http.StatusUnauthorized)
		return
	}

	var serr *errs.StoreError
	if errors.As(err, &serr) {
		if serr.NotFound() {
			utils.SendJSONError(w, "Bookmark not found", http.StatusNotFound)
			return
		}
		utils.SendJSONError(w, "Something went wrong, please try again", http.StatusInternalServerError)
		return
	}

	utils.SendJSONError(w, err.Error(), http.StatusInternalServerError)
}
