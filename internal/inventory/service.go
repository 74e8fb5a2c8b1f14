package inventory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	pkgerrors "github.com/honeyshop/honeyshop-backend/pkg/errors"
	"github.com/honeyshop/honeyshop-backend/pkg/kvstore"
	"github.com/honeyshop/honeyshop-backend/pkg/pagination"
)

const defaultPutAttempts = 5

// ListFilter narrows List results for the storefront endpoints.
type ListFilter struct {
	Category     string
	FeaturedOnly bool
}

// ListResult is one page of the inventory collection.
type ListResult struct {
	Items []Item
	Total int
}

// Service exposes inventory snapshot operations.
type Service interface {
	Initialize(ctx context.Context, seed []Item) error
	List(ctx context.Context, filter ListFilter, page pagination.Params) (*ListResult, error)
	Get(ctx context.Context, id string) (*Item, error)
	Add(ctx context.Context, input NewItemInput) (*Item, error)
	SetQuantity(ctx context.Context, id string, quantity int) (*Item, error)
	SetFeatured(ctx context.Context, id string, featured bool) (*Item, error)
	Remove(ctx context.Context, id string) error
	DecrementForOrder(ctx context.Context, lines []OrderLine) error
	RestoreForOrder(ctx context.Context, lines []OrderLine) error
}

type service struct {
	store    kvstore.Store
	attempts int
}

// NewService builds an inventory service over the provided snapshot store.
func NewService(store kvstore.Store, putAttempts int) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("snapshot store required")
	}
	if putAttempts <= 0 {
		putAttempts = defaultPutAttempts
	}
	return &service{store: store, attempts: putAttempts}, nil
}

func (s *service) Initialize(ctx context.Context, seed []Item) error {
	snap, err := s.store.Get(ctx, kvstore.KeyInventory)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read inventory snapshot")
	}
	if snap.Exists() {
		return nil
	}

	data, err := json.Marshal(seed)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode inventory seed")
	}
	if _, err := s.store.Put(ctx, kvstore.KeyInventory, data, 0); err != nil {
		if errors.Is(err, kvstore.ErrVersionConflict) {
			// Another instance seeded first.
			return nil
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "write inventory seed")
	}
	return nil
}

func (s *service) List(ctx context.Context, filter ListFilter, page pagination.Params) (*ListResult, error) {
	items, _, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]Item, 0, len(items))
	for _, item := range items {
		if filter.Category != "" && item.Category != filter.Category {
			continue
		}
		if filter.FeaturedOnly && !item.Featured {
			continue
		}
		filtered = append(filtered, item)
	}

	start, end := page.Window(len(filtered))
	return &ListResult{
		Items: filtered[start:end],
		Total: len(filtered),
	}, nil
}

func (s *service) Get(ctx context.Context, id string) (*Item, error) {
	items, _, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			item := items[i]
			return &item, nil
		}
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("item %s not found", id))
}

func (s *service) Add(ctx context.Context, input NewItemInput) (*Item, error) {
	if err := input.check(); err != nil {
		return nil, err
	}

	created := Item{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Price:       input.Price,
		Image:       strings.TrimSpace(input.Image),
		Category:    strings.TrimSpace(input.Category),
		Rating:      0,
		Quantity:    input.Quantity,
		Featured:    false,
	}

	err := s.update(ctx, func(items []Item) ([]Item, error) {
		return append(items, created), nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *service) SetQuantity(ctx context.Context, id string, quantity int) (*Item, error) {
	if quantity < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must not be negative")
	}

	var updated Item
	err := s.update(ctx, func(items []Item) ([]Item, error) {
		idx := indexOf(items, id)
		if idx < 0 {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("item %s not found", id))
		}
		items[idx].Quantity = quantity
		updated = items[idx]
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *service) SetFeatured(ctx context.Context, id string, featured bool) (*Item, error) {
	var updated Item
	err := s.update(ctx, func(items []Item) ([]Item, error) {
		idx := indexOf(items, id)
		if idx < 0 {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("item %s not found", id))
		}
		items[idx].Featured = featured
		updated = items[idx]
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *service) Remove(ctx context.Context, id string) error {
	return s.update(ctx, func(items []Item) ([]Item, error) {
		idx := indexOf(items, id)
		if idx < 0 {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("item %s not found", id))
		}
		return append(items[:idx], items[idx+1:]...), nil
	})
}

// DecrementForOrder verifies and applies every line in one snapshot write.
// A shortfall on any line rejects the whole batch.
func (s *service) DecrementForOrder(ctx context.Context, lines []OrderLine) error {
	if len(lines) == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "order has no lines")
	}
	for _, line := range lines {
		if line.Quantity <= 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("line for item %s has non-positive quantity", line.ItemID))
		}
	}

	return s.update(ctx, func(items []Item) ([]Item, error) {
		for _, line := range lines {
			idx := indexOf(items, line.ItemID)
			if idx < 0 {
				return nil, pkgerrors.New(pkgerrors.CodeStateConflict, fmt.Sprintf("item %s no longer exists", line.ItemID))
			}
			if items[idx].Quantity < line.Quantity {
				return nil, pkgerrors.New(pkgerrors.CodeStateConflict, fmt.Sprintf("insufficient stock for item %s", line.ItemID)).
					WithDetails(map[string]any{
						"item_id":   line.ItemID,
						"requested": line.Quantity,
						"available": items[idx].Quantity,
					})
			}
			items[idx].Quantity -= line.Quantity
		}
		return items, nil
	})
}

// RestoreForOrder adds previously decremented quantities back after a
// failed order persist. Lines for items removed in the meantime are
// skipped rather than resurrected.
func (s *service) RestoreForOrder(ctx context.Context, lines []OrderLine) error {
	if len(lines) == 0 {
		return nil
	}

	return s.update(ctx, func(items []Item) ([]Item, error) {
		for _, line := range lines {
			idx := indexOf(items, line.ItemID)
			if idx < 0 {
				continue
			}
			items[idx].Quantity += line.Quantity
		}
		return items, nil
	})
}

func (s *service) load(ctx context.Context) ([]Item, int64, error) {
	snap, err := s.store.Get(ctx, kvstore.KeyInventory)
	if err != nil {
		return nil, 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read inventory snapshot")
	}
	if !snap.Exists() {
		return nil, 0, nil
	}

	var items []Item
	if err := json.Unmarshal(snap.Data, &items); err != nil {
		return nil, 0, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decode inventory snapshot")
	}
	return items, snap.Version, nil
}

// update runs a read-modify-write cycle with bounded retries on version
// conflicts.
func (s *service) update(ctx context.Context, mutate func(items []Item) ([]Item, error)) error {
	for attempt := 0; attempt < s.attempts; attempt++ {
		items, version, err := s.load(ctx)
		if err != nil {
			return err
		}

		next, err := mutate(items)
		if err != nil {
			return err
		}

		data, err := json.Marshal(next)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode inventory snapshot")
		}
		if _, err := s.store.Put(ctx, kvstore.KeyInventory, data, version); err != nil {
			if errors.Is(err, kvstore.ErrVersionConflict) {
				continue
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "write inventory snapshot")
		}
		return nil
	}
	return pkgerrors.New(pkgerrors.CodeConflict, "inventory snapshot contention, retry the request")
}

func indexOf(items []Item, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}
