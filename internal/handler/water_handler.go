package handler

import (
	"net/http"
	"time"

	"productivity-api/internal/model"
	"productivity-api/internal/store"
)

type addWaterRequest struct {
	Amount int `json:"amount"`
}

func (h *Handler) ListWaterIntake(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = store.DayKey(time.Now())
	}
	writeJSON(w, http.StatusOK, h.store.ListWaterIntake(uid(r), date))
}

func (h *Handler) AddWaterIntake(w http.ResponseWriter, r *http.Request) {
	var req addWaterRequest
	if err := decode(r, &req); err != nil || req.Amount <= 0 {
		writeMessage(w, http.StatusBadRequest, "Invalid water intake data")
		return
	}

	// entries always land on today, whatever the client claims
	intake := &model.WaterIntake{
		UserID: uid(r),
		Amount: req.Amount,
		Date:   store.DayKey(time.Now()),
	}
	h.store.AddWaterIntake(intake)
	writeJSON(w, http.StatusOK, intake)
}
