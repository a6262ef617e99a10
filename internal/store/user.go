package store

import (
	"time"

	"github.com/google/uuid"

	"productivity-api/internal/model"
)

func (s *Store) CreateUser(u *model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	u.CreatedAt = time.Now()
	cp := *u
	s.users[u.ID] = &cp

	// every user starts with default settings
	s.createSettingsLocked(u.ID)
}

func (s *Store) GetUser(id string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return model.User{}, false
	}
	return *u, true
}

func (s *Store) UserByUsername(username string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			return *u, true
		}
	}
	return model.User{}, false
}
