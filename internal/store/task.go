package store

import (
	"time"

	"github.com/google/uuid"

	"productivity-api/internal/model"
)

func (s *Store) ListTasks(userID string) []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []model.Task{}
	for _, t := range s.tasks {
		if t.UserID == userID {
			out = append(out, *t)
		}
	}
	return out
}

func (s *Store) GetTask(id string) (model.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tasks[id]
	if !ok {
		return model.Task{}, false
	}
	return *t, true
}

func (s *Store) CreateTask(t *model.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t.ID = uuid.New().String()
	t.CreatedAt = time.Now()
	cp := *t
	s.tasks[t.ID] = &cp
}

func (s *Store) UpdateTask(id, userID string, upd model.TaskUpdate) (model.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	// ownership miss looks like not-found to hide existence
	if !ok || t.UserID != userID {
		return model.Task{}, false
	}
	if upd.Title != nil {
		t.Title = *upd.Title
	}
	if upd.Description != nil {
		t.Description = *upd.Description
	}
	if upd.Priority != nil {
		t.Priority = *upd.Priority
	}
	if upd.Status != nil {
		t.Status = *upd.Status
		// completedAt is set when the status transition lands on completed
		if *upd.Status == "completed" && t.CompletedAt == nil {
			now := time.Now()
			t.CompletedAt = &now
		}
	}
	if upd.DueDate != nil {
		t.DueDate = upd.DueDate
	}
	if upd.EstimatedTime != nil {
		t.EstimatedTime = upd.EstimatedTime
	}
	if upd.Category != nil {
		t.Category = *upd.Category
	}
	return *t, true
}

func (s *Store) DeleteTask(id, userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok || t.UserID != userID {
		return false
	}
	delete(s.tasks, id)
	return true
}
