package session

import (
	"auction-marketplace/internal/auctionerrors"
	"auction-marketplace/utils"
	"fmt"
	"sync"
)

// Store maps opaque session tokens to usernames. Sessions live for the
// lifetime of the process and end only on logout.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]string // key: token -> value: username
}

// NewStore creates an empty session store
func NewStore() *Store {
	return &Store{sessions: make(map[string]string)}
}

// Create opens a session for username and returns its token
func (s *Store) Create(username string) string {
	token := utils.GenerateToken()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = username
	return token
}

// Resolve returns the username bound to token
func (s *Store) Resolve(token string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	username, ok := s.sessions[token]
	if !ok || token == "" {
		return "", fmt.Errorf("resolve session: %w", auctionerrors.ErrSessionNotFound)
	}
	return username, nil
}

// Delete ends the session. Deleting an unknown token is a no-op.
func (s *Store) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}
