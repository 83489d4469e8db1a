package service

import "sync"

// AuthService gates the bot behind a shared password.
// Authorization is kept in memory only; it resets with the process.
type AuthService struct {
	password string

	mu         sync.RWMutex
	authorized map[int64]bool
}

// NewAuthService creates a new auth service
func NewAuthService(password string) *AuthService {
	return &AuthService{
		password:   password,
		authorized: make(map[int64]bool),
	}
}

// CheckPassword verifies if provided password matches
func (s *AuthService) CheckPassword(password string) bool {
	return password == s.password
}

// IsAuthorized checks if user is authorized
func (s *AuthService) IsAuthorized(userID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authorized[userID]
}

// Authorize marks a user as authorized
func (s *AuthService) Authorize(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authorized[userID] = true
}
