package handler

import (
	"net/http"

	"productivity-api/internal/model"
)

func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	// defaults are created on first read
	writeJSON(w, http.StatusOK, h.store.GetUserSettings(uid(r)))
}

func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var upd model.UserSettingsUpdate
	if err := decode(r, &upd); err != nil {
		writeMessage(w, http.StatusBadRequest, "Failed to update settings")
		return
	}
	writeJSON(w, http.StatusOK, h.store.UpdateUserSettings(uid(r), upd))
}
