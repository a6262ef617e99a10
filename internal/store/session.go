package store

import (
	"time"

	"github.com/google/uuid"
)

type RefreshToken struct {
	ID         string
	UserID     string
	TokenHash  string
	ExpiresAt  time.Time
	Revoked    bool
	ReplacedBy string
	CreatedAt  time.Time
}

func (s *Store) CreateRefreshToken(userID, tokenHash string, expiresAt time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New().String()
	s.refreshTokens[tokenHash] = &RefreshToken{
		ID:        id,
		UserID:    userID,
		TokenHash: tokenHash,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}
	return id
}

func (s *Store) GetRefreshTokenByHash(tokenHash string) (RefreshToken, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rt, ok := s.refreshTokens[tokenHash]
	if !ok {
		return RefreshToken{}, false
	}
	return *rt, true
}

// RotateRefreshToken revokes the old token and records its replacement,
// so a replayed old token can be detected.
func (s *Store) RotateRefreshToken(oldHash, userID, newHash string, newExpiry time.Time) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, ok := s.refreshTokens[oldHash]
	if !ok {
		return "", false
	}

	newID := uuid.New().String()
	old.Revoked = true
	old.ReplacedBy = newID

	s.refreshTokens[newHash] = &RefreshToken{
		ID:        newID,
		UserID:    userID,
		TokenHash: newHash,
		ExpiresAt: newExpiry,
		CreatedAt: time.Now(),
	}
	return newID, true
}

// RevokeAllRefreshTokens invalidates every live token for a user (logout
// or suspected theft).
func (s *Store) RevokeAllRefreshTokens(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rt := range s.refreshTokens {
		if rt.UserID == userID {
			rt.Revoked = true
		}
	}
}
