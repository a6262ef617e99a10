package store

import (
	"time"

	"github.com/google/uuid"

	"productivity-api/internal/model"
)

func (s *Store) ListHabits(userID string) []model.Habit {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []model.Habit{}
	for _, h := range s.habits {
		if h.UserID == userID {
			out = append(out, *h)
		}
	}
	return out
}

func (s *Store) GetHabit(id string) (model.Habit, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	h, ok := s.habits[id]
	if !ok {
		return model.Habit{}, false
	}
	return *h, true
}

func (s *Store) CreateHabit(h *model.Habit) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h.ID = uuid.New().String()
	h.CreatedAt = time.Now()
	cp := *h
	s.habits[h.ID] = &cp
}

func (s *Store) UpdateHabit(id, userID string, upd model.HabitUpdate) (model.Habit, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.habits[id]
	if !ok || h.UserID != userID {
		return model.Habit{}, false
	}
	if upd.Name != nil {
		h.Name = *upd.Name
	}
	if upd.Description != nil {
		h.Description = *upd.Description
	}
	if upd.Frequency != nil {
		h.Frequency = *upd.Frequency
	}
	if upd.TargetCount != nil {
		h.TargetCount = *upd.TargetCount
	}
	if upd.Color != nil {
		h.Color = *upd.Color
	}
	if upd.IsActive != nil {
		h.IsActive = *upd.IsActive
	}
	return *h, true
}

func (s *Store) DeleteHabit(id, userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.habits[id]
	if !ok || h.UserID != userID {
		return false
	}
	delete(s.habits, id)
	return true
}

// ListHabitEntries returns the user's habit entries for the given day.
func (s *Store) ListHabitEntries(userID, date string) []model.HabitEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []model.HabitEntry{}
	for _, e := range s.habitEntries {
		if e.UserID == userID && e.Date == date {
			out = append(out, *e)
		}
	}
	return out
}

// UpsertHabitEntry records a habit check-in. A habit has at most one
// entry per day: a second check-in for the same (habit, date) pair
// mutates the existing entry instead of inserting a duplicate that
// scoring would double-count.
func (s *Store) UpsertHabitEntry(e *model.HabitEntry) model.HabitEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.habitEntries {
		if existing.HabitID == e.HabitID && existing.Date == e.Date {
			existing.Completed = e.Completed
			existing.Count = e.Count
			existing.Timestamp = time.Now()
			return *existing
		}
	}

	e.ID = uuid.New().String()
	e.Timestamp = time.Now()
	cp := *e
	s.habitEntries[e.ID] = &cp
	return cp
}

func (s *Store) UpdateHabitEntry(id, userID string, upd model.HabitEntryUpdate) (model.HabitEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.habitEntries[id]
	if !ok || e.UserID != userID {
		return model.HabitEntry{}, false
	}
	if upd.Completed != nil {
		e.Completed = *upd.Completed
	}
	if upd.Count != nil {
		e.Count = *upd.Count
	}
	e.Timestamp = time.Now()
	return *e, true
}
