package store

import (
	"time"

	"github.com/google/uuid"

	"productivity-api/internal/model"
)

func (s *Store) ListDistractionSites(userID string) []model.DistractionSite {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []model.DistractionSite{}
	for _, site := range s.sites {
		if site.UserID == userID {
			out = append(out, *site)
		}
	}
	return out
}

func (s *Store) CreateDistractionSite(site *model.DistractionSite) {
	s.mu.Lock()
	defer s.mu.Unlock()

	site.ID = uuid.New().String()
	site.CreatedAt = time.Now()
	cp := *site
	s.sites[site.ID] = &cp
}

func (s *Store) UpdateDistractionSite(id, userID string, upd model.DistractionSiteUpdate) (model.DistractionSite, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	site, ok := s.sites[id]
	if !ok || site.UserID != userID {
		return model.DistractionSite{}, false
	}
	if upd.URL != nil {
		site.URL = *upd.URL
	}
	if upd.Name != nil {
		site.Name = *upd.Name
	}
	if upd.IsBlocked != nil {
		site.IsBlocked = *upd.IsBlocked
	}
	return *site, true
}

func (s *Store) DeleteDistractionSite(id, userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	site, ok := s.sites[id]
	if !ok || site.UserID != userID {
		return false
	}
	delete(s.sites, id)
	return true
}
