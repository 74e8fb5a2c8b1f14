package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/honeyshop/honeyshop-backend/internal/inventory"
	pkgerrors "github.com/honeyshop/honeyshop-backend/pkg/errors"
)

func TestAdminCreateProduct(t *testing.T) {
	svc := stubInventoryService{
		addFn: func(ctx context.Context, input inventory.NewItemInput) (*inventory.Item, error) {
			if input.Name != "Propolis Tincture" || input.Category != "health" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &inventory.Item{
				ID:       uuid.NewString(),
				Name:     input.Name,
				Category: input.Category,
				Price:    input.Price,
				Quantity: input.Quantity,
			}, nil
		},
	}

	body := `{"name":"Propolis Tincture","category":"health","price":14.99,"quantity":30}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/products", strings.NewReader(body))
	rec := httptest.NewRecorder()
	AdminCreateProduct(svc, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", rec.Code, rec.Body.String())
	}
	var envelope struct {
		Data inventory.Item `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.ID == "" {
		t.Fatal("expected generated id")
	}
}

func TestAdminCreateProductValidation(t *testing.T) {
	svc := stubInventoryService{
		addFn: func(ctx context.Context, input inventory.NewItemInput) (*inventory.Item, error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	}

	cases := map[string]string{
		"missing name":   `{"category":"health","price":14.99}`,
		"negative price": `{"name":"Propolis Tincture","category":"health","price":-1}`,
		"bad image url":  `{"name":"Propolis Tincture","category":"health","price":1,"image":"not a url"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/products", strings.NewReader(body))
			rec := httptest.NewRecorder()
			AdminCreateProduct(svc, nil).ServeHTTP(rec, req)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 got %d", rec.Code)
			}
		})
	}
}

func TestAdminSetQuantity(t *testing.T) {
	svc := stubInventoryService{
		setQuantityFn: func(ctx context.Context, id string, quantity int) (*inventory.Item, error) {
			if id != "h1" || quantity != 12 {
				t.Fatalf("unexpected call: id=%s quantity=%d", id, quantity)
			}
			return &inventory.Item{ID: id, Quantity: quantity}, nil
		},
	}

	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/products/h1/quantity", strings.NewReader(`{"quantity":12}`))
	req = withURLParam(req, "productId", "h1")
	rec := httptest.NewRecorder()
	AdminSetQuantity(svc, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
}

func TestAdminSetQuantityRejectsNegative(t *testing.T) {
	svc := stubInventoryService{
		setQuantityFn: func(ctx context.Context, id string, quantity int) (*inventory.Item, error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/products/h1/quantity", strings.NewReader(`{"quantity":-3}`))
	req = withURLParam(req, "productId", "h1")
	rec := httptest.NewRecorder()
	AdminSetQuantity(svc, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestAdminSetFeaturedRequiresFlag(t *testing.T) {
	svc := stubInventoryService{
		setFeaturedFn: func(ctx context.Context, id string, featured bool) (*inventory.Item, error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/products/h1/featured", strings.NewReader(`{}`))
	req = withURLParam(req, "productId", "h1")
	rec := httptest.NewRecorder()
	AdminSetFeatured(svc, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestAdminSetFeaturedFalse(t *testing.T) {
	var got *bool
	svc := stubInventoryService{
		setFeaturedFn: func(ctx context.Context, id string, featured bool) (*inventory.Item, error) {
			got = &featured
			return &inventory.Item{ID: id, Featured: featured}, nil
		},
	}

	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/products/h1/featured", strings.NewReader(`{"featured":false}`))
	req = withURLParam(req, "productId", "h1")
	rec := httptest.NewRecorder()
	AdminSetFeatured(svc, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}
	if got == nil || *got {
		t.Fatal("expected explicit false to reach the service")
	}
}

func TestAdminDeleteProduct(t *testing.T) {
	var removed string
	svc := stubInventoryService{
		removeFn: func(ctx context.Context, id string) error {
			removed = id
			return nil
		},
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/products/h1", nil)
	req = withURLParam(req, "productId", "h1")
	rec := httptest.NewRecorder()
	AdminDeleteProduct(svc, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if removed != "h1" {
		t.Fatalf("expected h1 removed, got %q", removed)
	}
}

func TestAdminDeleteProductNotFound(t *testing.T) {
	svc := stubInventoryService{
		removeFn: func(ctx context.Context, id string) error {
			return pkgerrors.New(pkgerrors.CodeNotFound, "item not found")
		},
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/products/nope", nil)
	req = withURLParam(req, "productId", "nope")
	rec := httptest.NewRecorder()
	AdminDeleteProduct(svc, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
}
