package handler

import (
	"net/http"

	"productivity-api/internal/model"
)

type createSessionRequest struct {
	Type      string `json:"type"`
	Duration  int    `json:"duration"`
	Completed bool   `json:"completed"`
}

var sessionTypes = map[string]bool{
	"focus":       true,
	"short_break": true,
	"long_break":  true,
}

func (h *Handler) ListPomodoroSessions(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	writeJSON(w, http.StatusOK, h.store.ListPomodoroSessions(uid(r), date))
}

func (h *Handler) CreatePomodoroSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := decode(r, &req); err != nil || !sessionTypes[req.Type] || req.Duration <= 0 {
		writeMessage(w, http.StatusBadRequest, "Invalid session data")
		return
	}

	session := &model.PomodoroSession{
		UserID:    uid(r),
		Type:      req.Type,
		Duration:  req.Duration,
		Completed: req.Completed,
	}
	h.store.CreatePomodoroSession(session)
	writeJSON(w, http.StatusOK, session)
}

func (h *Handler) UpdatePomodoroSession(w http.ResponseWriter, r *http.Request) {
	var upd model.PomodoroSessionUpdate
	if err := decode(r, &upd); err != nil {
		writeMessage(w, http.StatusBadRequest, "Failed to update session")
		return
	}
	session, ok := h.store.UpdatePomodoroSession(r.PathValue("id"), uid(r), upd)
	if !ok {
		writeMessage(w, http.StatusNotFound, "Session not found")
		return
	}
	writeJSON(w, http.StatusOK, session)
}
