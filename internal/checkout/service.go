package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"

	"github.com/honeyshop/honeyshop-backend/internal/cart"
	"github.com/honeyshop/honeyshop-backend/internal/inventory"
	pkgerrors "github.com/honeyshop/honeyshop-backend/pkg/errors"
	"github.com/honeyshop/honeyshop-backend/pkg/kvstore"
	"github.com/honeyshop/honeyshop-backend/pkg/metrics"
)

const defaultPutAttempts = 5

// Order is one committed purchase, persisted under the orders snapshot.
type Order struct {
	ID         uuid.UUID   `json:"id"`
	UserID     uuid.UUID   `json:"user_id"`
	Lines      []cart.Line `json:"lines"`
	ItemCount  int         `json:"item_count"`
	TotalPrice float64     `json:"total_price"`
	PlacedAt   time.Time   `json:"placed_at"`
}

type stockAdjuster interface {
	DecrementForOrder(ctx context.Context, lines []inventory.OrderLine) error
	RestoreForOrder(ctx context.Context, lines []inventory.OrderLine) error
}

// Service commits carts into orders.
type Service interface {
	PlaceOrder(ctx context.Context, sessionID string, userID uuid.UUID) (*Order, error)
	ListOrders(ctx context.Context, userID uuid.UUID) ([]Order, error)
}

type service struct {
	store    kvstore.Store
	stock    stockAdjuster
	carts    *cart.Registry
	observe  *metrics.CheckoutMetrics
	attempts int
	now      func() time.Time
}

// NewService builds the checkout service. The metrics handle may be nil.
func NewService(store kvstore.Store, stock stockAdjuster, carts *cart.Registry, observe *metrics.CheckoutMetrics, putAttempts int) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("snapshot store required")
	}
	if stock == nil {
		return nil, fmt.Errorf("stock adjuster required")
	}
	if carts == nil {
		return nil, fmt.Errorf("cart registry required")
	}
	if putAttempts <= 0 {
		putAttempts = defaultPutAttempts
	}
	return &service{
		store:    store,
		stock:    stock,
		carts:    carts,
		observe:  observe,
		attempts: putAttempts,
		now:      time.Now,
	}, nil
}

// PlaceOrder commits the session's cart: stock is verified and decremented
// in one batch, the order is persisted, and only then is the cart dropped.
// A persist failure after the decrement puts the stock back and leaves the
// cart intact so the client can retry without draining inventory.
func (s *service) PlaceOrder(ctx context.Context, sessionID string, userID uuid.UUID) (*Order, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}

	var lines []cart.Line
	s.carts.With(sessionID, func(c *cart.Cart) {
		lines = c.Lines()
	})
	if len(lines) == 0 {
		s.observe.IncFailed("empty_cart")
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	orderLines := make([]inventory.OrderLine, 0, len(lines))
	for _, line := range lines {
		orderLines = append(orderLines, inventory.OrderLine{ItemID: line.ItemID, Quantity: line.Quantity})
	}
	if err := s.stock.DecrementForOrder(ctx, orderLines); err != nil {
		if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeStateConflict {
			s.observe.IncFailed("insufficient_stock")
		} else {
			s.observe.IncFailed("stock_error")
		}
		return nil, err
	}

	order := Order{
		ID:       uuid.New(),
		UserID:   userID,
		Lines:    lines,
		PlacedAt: s.now().UTC(),
	}
	order.ItemCount, order.TotalPrice = totalsFor(lines)

	if err := s.append(ctx, order); err != nil {
		s.observe.IncFailed("persist_error")
		if restoreErr := s.stock.RestoreForOrder(ctx, orderLines); restoreErr != nil {
			s.observe.IncFailed("restock_error")
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, multierr.Append(err, restoreErr), "order not persisted and stock not restored")
		}
		return nil, err
	}

	s.carts.Drop(sessionID)
	s.observe.IncPlaced(order.TotalPrice)
	return &order, nil
}

func (s *service) ListOrders(ctx context.Context, userID uuid.UUID) ([]Order, error) {
	all, _, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	mine := make([]Order, 0)
	for _, order := range all {
		if order.UserID == userID {
			mine = append(mine, order)
		}
	}
	return mine, nil
}

// totalsFor recomputes count and price from the lines at commit time.
func totalsFor(lines []cart.Line) (int, float64) {
	count := 0
	sum := decimal.Zero
	for _, line := range lines {
		count += line.Quantity
		sum = sum.Add(decimal.NewFromFloat(line.Price).Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	total, _ := sum.Round(2).Float64()
	return count, total
}

func (s *service) load(ctx context.Context) ([]Order, int64, error) {
	snap, err := s.store.Get(ctx, kvstore.KeyOrders)
	if err != nil {
		return nil, 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read orders snapshot")
	}
	if !snap.Exists() {
		return nil, 0, nil
	}

	var all []Order
	if err := json.Unmarshal(snap.Data, &all); err != nil {
		return nil, 0, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decode orders snapshot")
	}
	return all, snap.Version, nil
}

func (s *service) append(ctx context.Context, order Order) error {
	for attempt := 0; attempt < s.attempts; attempt++ {
		all, version, err := s.load(ctx)
		if err != nil {
			return err
		}

		data, err := json.Marshal(append(all, order))
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode orders snapshot")
		}
		if _, err := s.store.Put(ctx, kvstore.KeyOrders, data, version); err != nil {
			if errors.Is(err, kvstore.ErrVersionConflict) {
				continue
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "write orders snapshot")
		}
		return nil
	}
	return pkgerrors.New(pkgerrors.CodeConflict, "orders snapshot contention, retry the request")
}
