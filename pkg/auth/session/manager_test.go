package session

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/honeyshop/honeyshop-backend/pkg/config"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:                 "test-secret",
		Issuer:                 "honeyshop-test",
		ExpirationMinutes:      15,
		RefreshTokenTTLMinutes: 24 * 60,
	}
}

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	mgr, err := NewManager(NewMemoryStore(), testJWTConfig())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return mgr
}

func TestNewManagerValidation(t *testing.T) {
	if _, err := NewManager(nil, testJWTConfig()); err == nil {
		t.Fatal("expected error for nil store")
	}

	cfg := testJWTConfig()
	cfg.RefreshTokenTTLMinutes = 0
	if _, err := NewManager(NewMemoryStore(), cfg); err == nil {
		t.Fatal("expected error for zero refresh ttl")
	}

	cfg = testJWTConfig()
	cfg.ExpirationMinutes = 24 * 60
	if _, err := NewManager(NewMemoryStore(), cfg); err == nil {
		t.Fatal("expected error when refresh ttl does not exceed access ttl")
	}
}

func TestCreateAndLookup(t *testing.T) {
	mgr := newTestManager(t)
	ctx := context.Background()

	user := User{ID: uuid.New(), Email: "buyer@example.com", IsAdmin: false}
	accessID := NewAccessID()

	token, err := mgr.Create(ctx, accessID, user)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty refresh token")
	}

	ok, err := mgr.HasSession(ctx, accessID)
	if err != nil {
		t.Fatalf("HasSession: %v", err)
	}
	if !ok {
		t.Fatal("expected session to exist")
	}

	got, err := mgr.UserFor(ctx, accessID)
	if err != nil {
		t.Fatalf("UserFor: %v", err)
	}
	if got.ID != user.ID || got.Email != user.Email || got.IsAdmin != user.IsAdmin {
		t.Fatalf("stored user %+v does not match %+v", got, user)
	}
}

func TestHasSessionMissing(t *testing.T) {
	mgr := newTestManager(t)

	ok, err := mgr.HasSession(context.Background(), NewAccessID())
	if err != nil {
		t.Fatalf("HasSession: %v", err)
	}
	if ok {
		t.Fatal("expected no session for unknown access id")
	}
}

func TestRotate(t *testing.T) {
	mgr := newTestManager(t)
	ctx := context.Background()

	user := User{ID: uuid.New(), Email: "buyer@example.com"}
	oldID := NewAccessID()
	oldToken, err := mgr.Create(ctx, oldID, user)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	newID, newToken, err := mgr.Rotate(ctx, oldID, oldToken)
	if err != nil {
		t.Fatalf("Rotate: %v", err)
	}
	if newID == oldID {
		t.Fatal("expected a fresh access id")
	}
	if newToken == oldToken {
		t.Fatal("expected a fresh refresh token")
	}

	if ok, _ := mgr.HasSession(ctx, oldID); ok {
		t.Fatal("old session must be revoked after rotation")
	}

	got, err := mgr.UserFor(ctx, newID)
	if err != nil {
		t.Fatalf("UserFor after rotate: %v", err)
	}
	if got.Email != user.Email {
		t.Fatalf("rotated session lost user: %+v", got)
	}
}

func TestRotateRejectsBadToken(t *testing.T) {
	mgr := newTestManager(t)
	ctx := context.Background()

	accessID := NewAccessID()
	if _, err := mgr.Create(ctx, accessID, User{ID: uuid.New()}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, _, err := mgr.Rotate(ctx, accessID, "wrong-token"); err != ErrInvalidRefreshToken {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
	if _, _, err := mgr.Rotate(ctx, NewAccessID(), "whatever"); err != ErrInvalidRefreshToken {
		t.Fatalf("expected ErrInvalidRefreshToken for unknown session, got %v", err)
	}
}

func TestRevoke(t *testing.T) {
	mgr := newTestManager(t)
	ctx := context.Background()

	accessID := NewAccessID()
	if _, err := mgr.Create(ctx, accessID, User{ID: uuid.New()}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mgr.Revoke(ctx, accessID); err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	if ok, _ := mgr.HasSession(ctx, accessID); ok {
		t.Fatal("expected session gone after revoke")
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore()
	current := time.Now()
	store.now = func() time.Time { return current }

	ctx := context.Background()
	if err := store.Set(ctx, "sid", "value", time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	current = current.Add(2 * time.Minute)
	if _, err := store.Get(ctx, "sid"); err != ErrNoSession {
		t.Fatalf("expected ErrNoSession after expiry, got %v", err)
	}
}
