package api

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenStore holds the opaque auth token between sessions.
type TokenStore interface {
	// Token returns the stored token. An *AuthError is returned when no
	// usable token exists.
	Token() (string, error)
	Store(token string) error
	Clear() error
}

// FileTokenStore keeps the token in a local file, surviving restarts
// until logout or an auth failure clears it.
type FileTokenStore struct {
	path string
}

// NewFileTokenStore creates a token store backed by the file at path.
func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

// Token returns the stored token. A token that carries a readable expiry
// claim and is already expired is cleared and reported as an auth error,
// so save never fires a request that is known to bounce.
func (s *FileTokenStore) Token() (string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", &AuthError{Reason: "not logged in"}
	}
	if err != nil {
		return "", fmt.Errorf("failed to read token file %s: %w", s.path, err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", &AuthError{Reason: "not logged in"}
	}
	if tokenExpired(token) {
		_ = s.Clear()
		return "", &AuthError{Reason: "session expired, please log in again"}
	}
	return token, nil
}

// Store writes the token, creating the parent directory as needed.
func (s *FileTokenStore) Store(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("failed to write token file %s: %w", s.path, err)
	}
	return nil
}

// Clear removes the stored token. A missing file is fine.
func (s *FileTokenStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove token file %s: %w", s.path, err)
	}
	return nil
}

// tokenExpired reports whether the token is a JWT with an exp claim in
// the past. The token is contractually opaque, so anything that does not
// parse as a JWT is assumed live and left to the backend to judge.
func tokenExpired(token string) bool {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(time.Now())
}
