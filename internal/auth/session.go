// Package auth holds the client side of a MoneyTogether login: the access
// token the API issued and the claims read out of it. The client never
// verifies signatures (the signing key is the server's); it inspects
// expiry so authorized calls are refused locally instead of bouncing off
// the API.
package auth

import (
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNoSession    = errors.New("not logged in")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("session expired")
)

// Claims are the custom JWT claims the API puts in its access tokens.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Session stores the current access token. Safe for concurrent use: the
// API client reads it from request goroutines while the login flow
// replaces it.
type Session struct {
	mu     sync.RWMutex
	token  string
	claims *Claims
}

// NewSession returns an empty, logged-out session.
func NewSession() *Session { return &Session{} }

// SetToken installs a freshly issued access token after decoding its
// claims. The token is stored as-is; only its shape is checked here.
func (s *Session) SetToken(token string) error {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	s.mu.Lock()
	s.token = token
	s.claims = claims
	s.mu.Unlock()
	return nil
}

// Clear logs the session out.
func (s *Session) Clear() {
	s.mu.Lock()
	s.token = ""
	s.claims = nil
	s.mu.Unlock()
}

// Token returns the stored access token, refusing expired or absent
// sessions.
func (s *Session) Token() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.token == "" {
		return "", ErrNoSession
	}
	if exp, err := s.claims.GetExpirationTime(); err == nil && exp != nil && exp.Before(time.Now()) {
		return "", ErrExpiredToken
	}
	return s.token, nil
}

// UserID returns the logged-in user's ID, or empty when logged out.
func (s *Session) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.claims == nil {
		return ""
	}
	return s.claims.UserID
}

// Authorize attaches the bearer token to req, or reports why it cannot.
func (s *Session) Authorize(req *http.Request) error {
	token, err := s.Token()
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return nil
}
