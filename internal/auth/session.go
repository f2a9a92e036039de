// Package auth issues and verifies owner session tokens. A session token is
// a fernet-encrypted owner ID; decrypting it yields the owner context the
// metrics endpoints use for scoping. The engine itself never sees tokens,
// only the owner ID the caller extracted.
package auth

import (
	"fmt"
	"time"

	"github.com/fernet/fernet-go"

	"github.com/brickfolio/property-portfolio-backend/internal/apperrors"
)

// SessionManager issues and verifies fernet session tokens.
type SessionManager struct {
	key *fernet.Key
	ttl time.Duration
}

// NewSessionManager creates a SessionManager from a base64 fernet key.
// The TTL bounds how long an issued token stays valid.
func NewSessionManager(encodedKey string, ttl time.Duration) (*SessionManager, error) {
	key, err := fernet.DecodeKey(encodedKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode session key: %w", err)
	}
	return &SessionManager{key: key, ttl: ttl}, nil
}

// GenerateKey creates a fresh random fernet key in encoded form. Used by
// deployments that have not configured SESSION_KEY; tokens then do not
// survive a restart.
func GenerateKey() (string, error) {
	var key fernet.Key
	if err := key.Generate(); err != nil {
		return "", fmt.Errorf("failed to generate session key: %w", err)
	}
	return key.Encode(), nil
}

// IssueToken creates a session token bound to the given owner ID.
func (m *SessionManager) IssueToken(ownerID string) (string, error) {
	token, err := fernet.EncryptAndSign([]byte(ownerID), m.key)
	if err != nil {
		return "", fmt.Errorf("failed to issue session token: %w", err)
	}
	return string(token), nil
}

// VerifyToken decrypts a session token and returns the owner ID it is bound
// to. Expired, tampered, or malformed tokens fail with ErrInvalidSessionToken.
func (m *SessionManager) VerifyToken(token string) (string, error) {
	ownerID := fernet.VerifyAndDecrypt([]byte(token), m.ttl, []*fernet.Key{m.key})
	if ownerID == nil {
		return "", apperrors.ErrInvalidSessionToken
	}
	return string(ownerID), nil
}
