package handler

import (
	"net/http"
	"time"

	"productivity-api/internal/model"
)

type createEventRequest struct {
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	StartTime       *time.Time `json:"startTime"`
	EndTime         *time.Time `json:"endTime"`
	Location        string     `json:"location"`
	ReminderMinutes *int       `json:"reminderMinutes"`
}

func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.ListEvents(uid(r)))
}

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req createEventRequest
	if err := decode(r, &req); err != nil || req.Title == "" || req.StartTime == nil || req.EndTime == nil {
		writeMessage(w, http.StatusBadRequest, "Invalid event data")
		return
	}

	reminder := 15
	if req.ReminderMinutes != nil {
		reminder = *req.ReminderMinutes
	}

	event := &model.Event{
		UserID:          uid(r),
		Title:           req.Title,
		Description:     req.Description,
		StartTime:       *req.StartTime,
		EndTime:         *req.EndTime,
		Location:        req.Location,
		ReminderMinutes: reminder,
	}
	h.store.CreateEvent(event)
	writeJSON(w, http.StatusOK, event)
}

func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	var upd model.EventUpdate
	if err := decode(r, &upd); err != nil {
		writeMessage(w, http.StatusBadRequest, "Failed to update event")
		return
	}
	event, ok := h.store.UpdateEvent(r.PathValue("id"), uid(r), upd)
	if !ok {
		writeMessage(w, http.StatusNotFound, "Event not found")
		return
	}
	writeJSON(w, http.StatusOK, event)
}

func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	if !h.store.DeleteEvent(r.PathValue("id"), uid(r)) {
		writeMessage(w, http.StatusNotFound, "Event not found")
		return
	}
	writeMessage(w, http.StatusOK, "Event deleted successfully")
}
