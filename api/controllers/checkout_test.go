package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	checkoutsvc "github.com/honeyshop/honeyshop-backend/internal/checkout"
	pkgerrors "github.com/honeyshop/honeyshop-backend/pkg/errors"
)

type stubCheckoutService struct {
	placeFn func(ctx context.Context, sessionID string, userID uuid.UUID) (*checkoutsvc.Order, error)
	listFn  func(ctx context.Context, userID uuid.UUID) ([]checkoutsvc.Order, error)
}

func (s stubCheckoutService) PlaceOrder(ctx context.Context, sessionID string, userID uuid.UUID) (*checkoutsvc.Order, error) {
	return s.placeFn(ctx, sessionID, userID)
}

func (s stubCheckoutService) ListOrders(ctx context.Context, userID uuid.UUID) ([]checkoutsvc.Order, error) {
	return s.listFn(ctx, userID)
}

func TestCheckoutPlacesOrder(t *testing.T) {
	sessionID := uuid.NewString()
	order := &checkoutsvc.Order{
		ID:         uuid.New(),
		ItemCount:  3,
		TotalPrice: 52.48,
		PlacedAt:   time.Now().UTC(),
	}
	svc := stubCheckoutService{
		placeFn: func(ctx context.Context, gotSession string, userID uuid.UUID) (*checkoutsvc.Order, error) {
			if gotSession != sessionID {
				t.Fatalf("unexpected session: %s", gotSession)
			}
			if userID == uuid.Nil {
				t.Fatal("expected user id from context")
			}
			return order, nil
		},
	}

	req := authedRequest(http.MethodPost, "/api/v1/checkout", "", sessionID)
	rec := httptest.NewRecorder()
	Checkout(svc, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", rec.Code)
	}
	var envelope struct {
		Data checkoutsvc.Order `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.ID != order.ID {
		t.Fatalf("unexpected order: %+v", envelope.Data)
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	svc := stubCheckoutService{
		placeFn: func(ctx context.Context, sessionID string, userID uuid.UUID) (*checkoutsvc.Order, error) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
		},
	}

	req := authedRequest(http.MethodPost, "/api/v1/checkout", "", uuid.NewString())
	rec := httptest.NewRecorder()
	Checkout(svc, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestCheckoutRequiresSession(t *testing.T) {
	svc := stubCheckoutService{
		placeFn: func(ctx context.Context, sessionID string, userID uuid.UUID) (*checkoutsvc.Order, error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", nil)
	rec := httptest.NewRecorder()
	Checkout(svc, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rec.Code)
	}
}

func TestListOrdersScopedToUser(t *testing.T) {
	svc := stubCheckoutService{
		listFn: func(ctx context.Context, gotUser uuid.UUID) ([]checkoutsvc.Order, error) {
			if gotUser == uuid.Nil {
				t.Fatal("expected user id from context")
			}
			return []checkoutsvc.Order{{ID: uuid.New(), UserID: gotUser}}, nil
		},
	}

	req := authedRequest(http.MethodGet, "/api/v1/orders", "", uuid.NewString())
	rec := httptest.NewRecorder()
	ListOrders(svc, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	var envelope struct {
		Data []checkoutsvc.Order `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 1 {
		t.Fatalf("unexpected order count: %d", len(envelope.Data))
	}
}
