package handler

import (
	"net/http"
	"time"

	"productivity-api/internal/model"
	"productivity-api/internal/store"
)

type createHabitRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Frequency   string `json:"frequency"`
	TargetCount *int   `json:"targetCount"`
	Color       string `json:"color"`
	IsActive    *bool  `json:"isActive"`
}

type createHabitEntryRequest struct {
	HabitID   string `json:"habitId"`
	Completed bool   `json:"completed"`
	Count     int    `json:"count"`
}

func (h *Handler) ListHabits(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.ListHabits(uid(r)))
}

func (h *Handler) CreateHabit(w http.ResponseWriter, r *http.Request) {
	var req createHabitRequest
	if err := decode(r, &req); err != nil || req.Name == "" {
		writeMessage(w, http.StatusBadRequest, "Invalid habit data")
		return
	}
	if req.Frequency == "" {
		req.Frequency = "daily"
	}
	if req.Color == "" {
		req.Color = "#4CAF50"
	}
	target := 1
	if req.TargetCount != nil {
		target = *req.TargetCount
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	habit := &model.Habit{
		UserID:      uid(r),
		Name:        req.Name,
		Description: req.Description,
		Frequency:   req.Frequency,
		TargetCount: target,
		Color:       req.Color,
		IsActive:    active,
	}
	h.store.CreateHabit(habit)
	writeJSON(w, http.StatusOK, habit)
}

func (h *Handler) UpdateHabit(w http.ResponseWriter, r *http.Request) {
	var upd model.HabitUpdate
	if err := decode(r, &upd); err != nil {
		writeMessage(w, http.StatusBadRequest, "Failed to update habit")
		return
	}
	habit, ok := h.store.UpdateHabit(r.PathValue("id"), uid(r), upd)
	if !ok {
		writeMessage(w, http.StatusNotFound, "Habit not found")
		return
	}
	writeJSON(w, http.StatusOK, habit)
}

func (h *Handler) DeleteHabit(w http.ResponseWriter, r *http.Request) {
	if !h.store.DeleteHabit(r.PathValue("id"), uid(r)) {
		writeMessage(w, http.StatusNotFound, "Habit not found")
		return
	}
	writeMessage(w, http.StatusOK, "Habit deleted successfully")
}

func (h *Handler) ListHabitEntries(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = store.DayKey(time.Now())
	}
	writeJSON(w, http.StatusOK, h.store.ListHabitEntries(uid(r), date))
}

func (h *Handler) CreateHabitEntry(w http.ResponseWriter, r *http.Request) {
	var req createHabitEntryRequest
	if err := decode(r, &req); err != nil || req.HabitID == "" {
		writeMessage(w, http.StatusBadRequest, "Invalid habit entry data")
		return
	}

	entry := h.store.UpsertHabitEntry(&model.HabitEntry{
		HabitID:   req.HabitID,
		UserID:    uid(r),
		Date:      store.DayKey(time.Now()),
		Completed: req.Completed,
		Count:     req.Count,
	})
	writeJSON(w, http.StatusOK, entry)
}

func (h *Handler) UpdateHabitEntry(w http.ResponseWriter, r *http.Request) {
	var upd model.HabitEntryUpdate
	if err := decode(r, &upd); err != nil {
		writeMessage(w, http.StatusBadRequest, "Failed to update habit entry")
		return
	}
	entry, ok := h.store.UpdateHabitEntry(r.PathValue("id"), uid(r), upd)
	if !ok {
		writeMessage(w, http.StatusNotFound, "Habit entry not found")
		return
	}
	writeJSON(w, http.StatusOK, entry)
}
