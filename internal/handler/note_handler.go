package handler

import (
	"net/http"

	"productivity-api/internal/model"
)

type createNoteRequest struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Tags        []string `json:"tags"`
	Attachments []string `json:"attachments"`
}

func (h *Handler) ListNotes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.ListNotes(uid(r)))
}

func (h *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	var req createNoteRequest
	if err := decode(r, &req); err != nil || req.Title == "" {
		writeMessage(w, http.StatusBadRequest, "Invalid note data")
		return
	}

	note := &model.Note{
		UserID:      uid(r),
		Title:       req.Title,
		Content:     req.Content,
		Tags:        req.Tags,
		Attachments: req.Attachments,
	}
	h.store.CreateNote(note)
	writeJSON(w, http.StatusOK, note)
}

func (h *Handler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	var upd model.NoteUpdate
	if err := decode(r, &upd); err != nil {
		writeMessage(w, http.StatusBadRequest, "Failed to update note")
		return
	}
	note, ok := h.store.UpdateNote(r.PathValue("id"), uid(r), upd)
	if !ok {
		writeMessage(w, http.StatusNotFound, "Note not found")
		return
	}
	writeJSON(w, http.StatusOK, note)
}

func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	if !h.store.DeleteNote(r.PathValue("id"), uid(r)) {
		writeMessage(w, http.StatusNotFound, "Note not found")
		return
	}
	writeMessage(w, http.StatusOK, "Note deleted successfully")
}
