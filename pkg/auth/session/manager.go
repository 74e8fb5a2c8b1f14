package session

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/honeyshop/honeyshop-backend/pkg/config"
)

const refreshTokenBytes = 32

var (
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	// ErrNoSession is returned by stores when the access id has no slot.
	ErrNoSession = errors.New("session not found")
)

// User is the denormalized copy of the signed-in user kept per session,
// the same record the original storefront mirrored into its
// current-session slot.
type User struct {
	ID      uuid.UUID `json:"id"`
	Email   string    `json:"email"`
	IsAdmin bool      `json:"is_admin"`
}

type record struct {
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}

// Store is the persistence surface session slots live behind.
type Store interface {
	Set(ctx context.Context, accessID string, value string, ttl time.Duration) error
	Get(ctx context.Context, accessID string) (string, error)
	Del(ctx context.Context, accessID string) error
}

// Manager handles session creation, lookup, rotation, and revocation.
type Manager struct {
	store Store
	ttl   time.Duration
}

// AccessSessionChecker exposes the read-only surface needed by middleware.
type AccessSessionChecker interface {
	HasSession(ctx context.Context, accessID string) (bool, error)
}

// NewManager constructs a session manager backed by the provided store.
func NewManager(store Store, cfg config.JWTConfig) (*Manager, error) {
	if store == nil {
		return nil, fmt.Errorf("session store is required")
	}
	ttl := cfg.RefreshTokenTTL()
	if ttl <= 0 {
		return nil, fmt.Errorf("refresh token ttl must be positive")
	}
	accessTTL := time.Duration(cfg.ExpirationMinutes) * time.Minute
	if ttl <= accessTTL {
		return nil, fmt.Errorf("refresh token ttl (%s) must exceed access token ttl (%s)", ttl, accessTTL)
	}

	return &Manager{store: store, ttl: ttl}, nil
}

// NewAccessID returns a fresh session identifier for use as the JWT jti.
func NewAccessID() string {
	return uuid.NewString()
}

// Create stores a new session slot for the access id and returns its refresh token.
func (m *Manager) Create(ctx context.Context, accessID string, user User) (string, error) {
	if strings.TrimSpace(accessID) == "" {
		return "", fmt.Errorf("access id is required")
	}
	token, err := generateRefreshToken()
	if err != nil {
		return "", err
	}
	if err := m.write(ctx, accessID, record{RefreshToken: token, User: user}); err != nil {
		return "", err
	}
	return token, nil
}

// HasSession reports whether the access id still maps to a live slot.
func (m *Manager) HasSession(ctx context.Context, accessID string) (bool, error) {
	_, err := m.read(ctx, accessID)
	if err != nil {
		if errors.Is(err, ErrNoSession) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// UserFor returns the denormalized user copy stored for the session.
func (m *Manager) UserFor(ctx context.Context, accessID string) (*User, error) {
	rec, err := m.read(ctx, accessID)
	if err != nil {
		return nil, err
	}
	user := rec.User
	return &user, nil
}

// Rotate validates the provided refresh token, invalidates the prior slot,
// and issues a new access id / refresh token pair carrying the same user.
func (m *Manager) Rotate(ctx context.Context, oldAccessID, provided string) (string, string, error) {
	if strings.TrimSpace(oldAccessID) == "" || strings.TrimSpace(provided) == "" {
		return "", "", ErrInvalidRefreshToken
	}

	rec, err := m.read(ctx, oldAccessID)
	if err != nil {
		if errors.Is(err, ErrNoSession) {
			return "", "", ErrInvalidRefreshToken
		}
		return "", "", err
	}

	if subtle.ConstantTimeCompare([]byte(rec.RefreshToken), []byte(provided)) != 1 {
		return "", "", ErrInvalidRefreshToken
	}

	newAccessID := NewAccessID()
	newToken, err := generateRefreshToken()
	if err != nil {
		return "", "", err
	}
	if err := m.write(ctx, newAccessID, record{RefreshToken: newToken, User: rec.User}); err != nil {
		return "", "", err
	}
	if err := m.store.Del(ctx, oldAccessID); err != nil {
		return "", "", err
	}

	return newAccessID, newToken, nil
}

// Revoke deletes the session slot tied to the access identifier.
func (m *Manager) Revoke(ctx context.Context, accessID string) error {
	if strings.TrimSpace(accessID) == "" {
		return fmt.Errorf("access id is required")
	}
	return m.store.Del(ctx, accessID)
}

func (m *Manager) write(ctx context.Context, accessID string, rec record) error {
	encoded, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return m.store.Set(ctx, accessID, string(encoded), m.ttl)
}

func (m *Manager) read(ctx context.Context, accessID string) (*record, error) {
	raw, err := m.store.Get(ctx, accessID)
	if err != nil {
		return nil, err
	}
	var rec record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &rec, nil
}

func generateRefreshToken() (string, error) {
	buf := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate refresh token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
