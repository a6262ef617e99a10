package handler

import (
	"net/http"
	"time"

	"productivity-api/internal/model"
)

type createTaskRequest struct {
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Priority      string     `json:"priority"`
	Status        string     `json:"status"`
	DueDate       *time.Time `json:"dueDate"`
	EstimatedTime *int       `json:"estimatedTime"`
	Category      string     `json:"category"`
}

func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.ListTasks(uid(r)))
}

func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := decode(r, &req); err != nil || req.Title == "" {
		writeMessage(w, http.StatusBadRequest, "Invalid task data")
		return
	}
	if req.Priority == "" {
		req.Priority = "medium"
	}
	if req.Status == "" {
		req.Status = "pending"
	}

	task := &model.Task{
		UserID:        uid(r),
		Title:         req.Title,
		Description:   req.Description,
		Priority:      req.Priority,
		Status:        req.Status,
		DueDate:       req.DueDate,
		EstimatedTime: req.EstimatedTime,
		Category:      req.Category,
	}
	h.store.CreateTask(task)
	writeJSON(w, http.StatusOK, task)
}

func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	var upd model.TaskUpdate
	if err := decode(r, &upd); err != nil {
		writeMessage(w, http.StatusBadRequest, "Failed to update task")
		return
	}
	task, ok := h.store.UpdateTask(r.PathValue("id"), uid(r), upd)
	if !ok {
		writeMessage(w, http.StatusNotFound, "Task not found")
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	if !h.store.DeleteTask(r.PathValue("id"), uid(r)) {
		writeMessage(w, http.StatusNotFound, "Task not found")
		return
	}
	writeMessage(w, http.StatusOK, "Task deleted successfully")
}
