package store

import (
	"time"

	"github.com/google/uuid"

	"productivity-api/internal/model"
)

// ListWaterIntake returns the user's intake entries for the given day.
func (s *Store) ListWaterIntake(userID, date string) []model.WaterIntake {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []model.WaterIntake{}
	for _, w := range s.water {
		if w.UserID == userID && w.Date == date {
			out = append(out, *w)
		}
	}
	return out
}

// AddWaterIntake records an intake entry. Entries are immutable once
// created; there is no update or delete.
func (s *Store) AddWaterIntake(w *model.WaterIntake) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w.ID = uuid.New().String()
	w.Timestamp = time.Now()
	cp := *w
	s.water[w.ID] = &cp
}
