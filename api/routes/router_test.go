package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	authsvc "github.com/honeyshop/honeyshop-backend/internal/auth"
	cartpkg "github.com/honeyshop/honeyshop-backend/internal/cart"
	checkoutsvc "github.com/honeyshop/honeyshop-backend/internal/checkout"
	"github.com/honeyshop/honeyshop-backend/internal/inventory"
	"github.com/honeyshop/honeyshop-backend/internal/users"
	pkgAuth "github.com/honeyshop/honeyshop-backend/pkg/auth"
	"github.com/honeyshop/honeyshop-backend/pkg/auth/session"
	"github.com/honeyshop/honeyshop-backend/pkg/config"
	pkgerrors "github.com/honeyshop/honeyshop-backend/pkg/errors"
	"github.com/honeyshop/honeyshop-backend/pkg/logger"
	"github.com/honeyshop/honeyshop-backend/pkg/pagination"
)

type stubSessionChecker struct{}

func (stubSessionChecker) HasSession(ctx context.Context, accessID string) (bool, error) {
	return true, nil
}

type stubAuthService struct{}

func (stubAuthService) Register(ctx context.Context, email, password string) (*users.User, error) {
	panic("unimplemented")
}

func (stubAuthService) RegisterAdmin(ctx context.Context, email, password string) (*users.User, error) {
	panic("unimplemented")
}

func (stubAuthService) Login(ctx context.Context, email, password string) (*authsvc.LoginResult, error) {
	panic("unimplemented")
}

func (stubAuthService) Refresh(ctx context.Context, accessID, refreshToken string) (*authsvc.LoginResult, error) {
	panic("unimplemented")
}

func (stubAuthService) Logout(ctx context.Context, accessID string) error {
	return nil
}

type stubInventoryService struct{}

func (stubInventoryService) Initialize(ctx context.Context, seed []inventory.Item) error {
	return nil
}

func (stubInventoryService) List(ctx context.Context, filter inventory.ListFilter, page pagination.Params) (*inventory.ListResult, error) {
	return &inventory.ListResult{Items: []inventory.Item{}}, nil
}

func (stubInventoryService) Get(ctx context.Context, id string) (*inventory.Item, error) {
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "item not found")
}

func (stubInventoryService) Add(ctx context.Context, input inventory.NewItemInput) (*inventory.Item, error) {
	panic("unimplemented")
}

func (stubInventoryService) SetQuantity(ctx context.Context, id string, quantity int) (*inventory.Item, error) {
	panic("unimplemented")
}

func (stubInventoryService) SetFeatured(ctx context.Context, id string, featured bool) (*inventory.Item, error) {
	panic("unimplemented")
}

func (stubInventoryService) Remove(ctx context.Context, id string) error {
	panic("unimplemented")
}

func (stubInventoryService) DecrementForOrder(ctx context.Context, lines []inventory.OrderLine) error {
	panic("unimplemented")
}

func (stubInventoryService) RestoreForOrder(ctx context.Context, lines []inventory.OrderLine) error {
	panic("unimplemented")
}

type stubCheckoutService struct{}

func (stubCheckoutService) PlaceOrder(ctx context.Context, sessionID string, userID uuid.UUID) (*checkoutsvc.Order, error) {
	panic("unimplemented")
}

func (stubCheckoutService) ListOrders(ctx context.Context, userID uuid.UUID) ([]checkoutsvc.Order, error) {
	return []checkoutsvc.Order{}, nil
}

type stubUsersRepo struct{}

func (stubUsersRepo) Create(ctx context.Context, user users.User) error {
	panic("unimplemented")
}

func (stubUsersRepo) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	panic("unimplemented")
}

func (stubUsersRepo) GetByID(ctx context.Context, id uuid.UUID) (*users.User, error) {
	panic("unimplemented")
}

func (stubUsersRepo) RecordSignIn(ctx context.Context, id uuid.UUID, at time.Time) error {
	panic("unimplemented")
}

func (stubUsersRepo) List(ctx context.Context) ([]users.User, error) {
	return []users.User{}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test", Port: "0"},
		JWT: config.JWTConfig{
			Secret:                 "secret",
			Issuer:                 "issuer",
			ExpirationMinutes:      60,
			RefreshTokenTTLMinutes: 120,
		},
	}
}

func newTestRouter(cfg *config.Config) http.Handler {
	logg := logger.New(logger.Options{ServiceName: "test-routing", Level: logger.ParseLevel("debug"), Output: io.Discard})
	return NewRouter(
		cfg,
		logg,
		func(ctx context.Context) error { return nil }, // storage probe
		nil, // *prometheus.Registry
		nil, // *metrics.HTTPMetrics
		stubSessionChecker{},
		nil, // middleware.RateLimiterStore
		stubAuthService{},
		stubInventoryService{},
		stubCheckoutService{},
		cartpkg.NewRegistry(),
		stubUsersRepo{},
	)
}

func buildToken(t *testing.T, cfg *config.Config, isAdmin bool) string {
	t.Helper()
	token, err := pkgAuth.MintAccessToken(cfg.JWT, time.Now(), pkgAuth.AccessTokenPayload{
		UserID:  uuid.New(),
		Email:   "shopper@example.com",
		IsAdmin: isAdmin,
		JTI:     session.NewAccessID(),
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func TestHealthLive(t *testing.T) {
	router := newTestRouter(testConfig())
	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for liveness got %d", resp.Code)
	}
}

func TestPublicCatalogNeedsNoToken(t *testing.T) {
	router := newTestRouter(testConfig())

	for _, path := range []string{"/api/v1/products", "/api/v1/categories"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("expected 200 for %s got %d", path, resp.Code)
		}
	}
}

func TestProtectedGroupRejectsMissingJWT(t *testing.T) {
	router := newTestRouter(testConfig())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token got %d", resp.Code)
	}
}

func TestProtectedGroupSucceedsWithJWT(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, false))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for cart read got %d", resp.Code)
	}
}

func TestAdminGroupRequiresAdminFlag(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)

	nonAdmin := httptest.NewRequest(http.MethodGet, "/api/v1/admin/users", nil)
	nonAdmin.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, false))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, nonAdmin)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin got %d", resp.Code)
	}

	admin := httptest.NewRequest(http.MethodGet, "/api/v1/admin/users", nil)
	admin.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, true))
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, admin)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin got %d", resp.Code)
	}
}

func TestAdminRegisterHiddenInProd(t *testing.T) {
	cfg := testConfig()
	cfg.App.Env = "prod"
	router := newTestRouter(cfg)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/v1/auth/register", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for admin register in production got %d", resp.Code)
	}
}

func TestMetricsEndpointMountedWithRegistry(t *testing.T) {
	cfg := testConfig()
	logg := logger.New(logger.Options{ServiceName: "test-routing", Level: logger.ParseLevel("debug"), Output: io.Discard})
	router := NewRouter(
		cfg,
		logg,
		func(ctx context.Context) error { return nil },
		prometheus.NewRegistry(),
		nil,
		stubSessionChecker{},
		nil,
		stubAuthService{},
		stubInventoryService{},
		stubCheckoutService{},
		cartpkg.NewRegistry(),
		stubUsersRepo{},
	)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for metrics scrape got %d", resp.Code)
	}

	absent := newTestRouter(cfg)
	resp = httptest.NewRecorder()
	absent.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 without registry got %d", resp.Code)
	}
}
