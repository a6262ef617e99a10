package store

import (
	"time"

	"github.com/google/uuid"

	"productivity-api/internal/model"
)

func (s *Store) ListEvents(userID string) []model.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []model.Event{}
	for _, e := range s.events {
		if e.UserID == userID {
			out = append(out, *e)
		}
	}
	return out
}

func (s *Store) GetEvent(id string) (model.Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.events[id]
	if !ok {
		return model.Event{}, false
	}
	return *e, true
}

func (s *Store) CreateEvent(e *model.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e.ID = uuid.New().String()
	e.CreatedAt = time.Now()
	cp := *e
	s.events[e.ID] = &cp
}

func (s *Store) UpdateEvent(id, userID string, upd model.EventUpdate) (model.Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.events[id]
	if !ok || e.UserID != userID {
		return model.Event{}, false
	}
	if upd.Title != nil {
		e.Title = *upd.Title
	}
	if upd.Description != nil {
		e.Description = *upd.Description
	}
	if upd.StartTime != nil {
		e.StartTime = *upd.StartTime
	}
	if upd.EndTime != nil {
		e.EndTime = *upd.EndTime
	}
	if upd.Location != nil {
		e.Location = *upd.Location
	}
	if upd.ReminderMinutes != nil {
		e.ReminderMinutes = *upd.ReminderMinutes
	}
	return *e, true
}

func (s *Store) DeleteEvent(id, userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.events[id]
	if !ok || e.UserID != userID {
		return false
	}
	delete(s.events, id)
	return true
}
