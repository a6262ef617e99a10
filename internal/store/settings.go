package store

import (
	"github.com/google/uuid"

	"productivity-api/internal/model"
)

// GetUserSettings returns the user's settings, creating the defaults on
// first read so callers never see an absent settings record.
func (s *Store) GetUserSettings(userID string) model.UserSettings {
	s.mu.Lock()
	defer s.mu.Unlock()

	if st, ok := s.settings[userID]; ok {
		return *st
	}
	return *s.createSettingsLocked(userID)
}

func (s *Store) createSettingsLocked(userID string) *model.UserSettings {
	if st, ok := s.settings[userID]; ok {
		return st
	}
	st := model.DefaultSettings(userID)
	st.ID = uuid.New().String()
	s.settings[userID] = &st
	return &st
}

func (s *Store) UpdateUserSettings(userID string, upd model.UserSettingsUpdate) model.UserSettings {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.createSettingsLocked(userID)
	if upd.PomodoroFocusTime != nil {
		st.PomodoroFocusTime = *upd.PomodoroFocusTime
	}
	if upd.PomodoroShortBreak != nil {
		st.PomodoroShortBreak = *upd.PomodoroShortBreak
	}
	if upd.PomodoroLongBreak != nil {
		st.PomodoroLongBreak = *upd.PomodoroLongBreak
	}
	if upd.WaterDailyGoal != nil {
		st.WaterDailyGoal = *upd.WaterDailyGoal
	}
	if upd.WaterReminderInterval != nil {
		st.WaterReminderInterval = *upd.WaterReminderInterval
	}
	if upd.Theme != nil {
		st.Theme = *upd.Theme
	}
	if upd.Notifications != nil {
		st.Notifications = *upd.Notifications
	}
	return *st
}
