// Package store is the process-local data store. Every entity kind lives
// in its own map keyed by id; all access goes through one RWMutex so the
// store is safe under the HTTP server's request concurrency. State lives
// and dies with the process.
package store

import (
	"sync"
	"time"

	"productivity-api/internal/model"
)

type Store struct {
	mu            sync.RWMutex
	users         map[string]*model.User
	tasks         map[string]*model.Task
	events        map[string]*model.Event
	sessions      map[string]*model.PomodoroSession
	notes         map[string]*model.Note
	water         map[string]*model.WaterIntake
	habits        map[string]*model.Habit
	habitEntries  map[string]*model.HabitEntry
	sites         map[string]*model.DistractionSite
	settings      map[string]*model.UserSettings // keyed by userID
	refreshTokens map[string]*RefreshToken       // keyed by token hash
}

func New() *Store {
	return &Store{
		users:         make(map[string]*model.User),
		tasks:         make(map[string]*model.Task),
		events:        make(map[string]*model.Event),
		sessions:      make(map[string]*model.PomodoroSession),
		notes:         make(map[string]*model.Note),
		water:         make(map[string]*model.WaterIntake),
		habits:        make(map[string]*model.Habit),
		habitEntries:  make(map[string]*model.HabitEntry),
		sites:         make(map[string]*model.DistractionSite),
		settings:      make(map[string]*model.UserSettings),
		refreshTokens: make(map[string]*RefreshToken),
	}
}

// DayKey formats t as the YYYY-MM-DD key used by date-filtered kinds.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
