package store

import (
	"time"

	"github.com/google/uuid"

	"productivity-api/internal/model"
)

func (s *Store) ListNotes(userID string) []model.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []model.Note{}
	for _, n := range s.notes {
		if n.UserID == userID {
			out = append(out, *n)
		}
	}
	return out
}

func (s *Store) GetNote(id string) (model.Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.notes[id]
	if !ok {
		return model.Note{}, false
	}
	return *n, true
}

func (s *Store) CreateNote(n *model.Note) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n.ID = uuid.New().String()
	now := time.Now()
	n.CreatedAt = now
	n.UpdatedAt = now
	if n.Tags == nil {
		n.Tags = []string{}
	}
	if n.Attachments == nil {
		n.Attachments = []string{}
	}
	cp := *n
	s.notes[n.ID] = &cp
}

func (s *Store) UpdateNote(id, userID string, upd model.NoteUpdate) (model.Note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notes[id]
	if !ok || n.UserID != userID {
		return model.Note{}, false
	}
	if upd.Title != nil {
		n.Title = *upd.Title
	}
	if upd.Content != nil {
		n.Content = *upd.Content
	}
	if upd.Tags != nil {
		n.Tags = *upd.Tags
	}
	if upd.Attachments != nil {
		n.Attachments = *upd.Attachments
	}
	// every mutation refreshes updatedAt
	n.UpdatedAt = time.Now()
	return *n, true
}

func (s *Store) DeleteNote(id, userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notes[id]
	if !ok || n.UserID != userID {
		return false
	}
	delete(s.notes, id)
	return true
}
