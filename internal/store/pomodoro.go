package store

import (
	"time"

	"github.com/google/uuid"

	"productivity-api/internal/model"
)

// ListPomodoroSessions returns the user's sessions, narrowed to the
// calendar day of their start time when date (YYYY-MM-DD) is non-empty.
func (s *Store) ListPomodoroSessions(userID, date string) []model.PomodoroSession {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []model.PomodoroSession{}
	for _, ps := range s.sessions {
		if ps.UserID != userID {
			continue
		}
		if date != "" && DayKey(ps.StartTime) != date {
			continue
		}
		out = append(out, *ps)
	}
	return out
}

func (s *Store) CreatePomodoroSession(ps *model.PomodoroSession) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ps.ID = uuid.New().String()
	ps.StartTime = time.Now()
	ps.EndTime = nil
	cp := *ps
	s.sessions[ps.ID] = &cp
}

func (s *Store) UpdatePomodoroSession(id, userID string, upd model.PomodoroSessionUpdate) (model.PomodoroSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ps, ok := s.sessions[id]
	if !ok || ps.UserID != userID {
		return model.PomodoroSession{}, false
	}
	if upd.Type != nil {
		ps.Type = *upd.Type
	}
	if upd.Duration != nil {
		ps.Duration = *upd.Duration
	}
	if upd.Completed != nil {
		ps.Completed = *upd.Completed
	}
	if upd.EndTime != nil {
		ps.EndTime = upd.EndTime
	}
	return *ps, true
}
