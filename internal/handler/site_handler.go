package handler

import (
	"net/http"

	"productivity-api/internal/model"
)

type createSiteRequest struct {
	URL       string `json:"url"`
	Name      string `json:"name"`
	IsBlocked *bool  `json:"isBlocked"`
}

func (h *Handler) ListDistractionSites(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.ListDistractionSites(uid(r)))
}

func (h *Handler) CreateDistractionSite(w http.ResponseWriter, r *http.Request) {
	var req createSiteRequest
	if err := decode(r, &req); err != nil || req.URL == "" || req.Name == "" {
		writeMessage(w, http.StatusBadRequest, "Invalid site data")
		return
	}
	blocked := true
	if req.IsBlocked != nil {
		blocked = *req.IsBlocked
	}

	site := &model.DistractionSite{
		UserID:    uid(r),
		URL:       req.URL,
		Name:      req.Name,
		IsBlocked: blocked,
	}
	h.store.CreateDistractionSite(site)
	writeJSON(w, http.StatusOK, site)
}

func (h *Handler) UpdateDistractionSite(w http.ResponseWriter, r *http.Request) {
	var upd model.DistractionSiteUpdate
	if err := decode(r, &upd); err != nil {
		writeMessage(w, http.StatusBadRequest, "Failed to update site")
		return
	}
	site, ok := h.store.UpdateDistractionSite(r.PathValue("id"), uid(r), upd)
	if !ok {
		writeMessage(w, http.StatusNotFound, "Site not found")
		return
	}
	writeJSON(w, http.StatusOK, site)
}

func (h *Handler) DeleteDistractionSite(w http.ResponseWriter, r *http.Request) {
	if !h.store.DeleteDistractionSite(r.PathValue("id"), uid(r)) {
		writeMessage(w, http.StatusNotFound, "Site not found")
		return
	}
	writeMessage(w, http.StatusOK, "Site deleted successfully")
}
