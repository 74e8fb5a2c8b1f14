package kvstore

import (
	"context"
	"errors"
)

// Durable snapshot slots. The names mirror the storage keys the storefront
// has always used, so existing data files stay readable.
const (
	KeyInventory = "honey_shop_inventory"
	KeyUsers     = "honey_shop_users"
	KeyOrders    = "honey_shop_orders"
)

// ErrVersionConflict signals that the stored snapshot version moved between
// the caller's read and write.
var ErrVersionConflict = errors.New("kvstore: snapshot version conflict")

// Snapshot is one whole-collection value held under a key. Version 0 with
// empty data means the key has never been written.
type Snapshot struct {
	Version int64
	Data    []byte
}

// Exists reports whether the snapshot has ever been written.
func (s Snapshot) Exists() bool {
	return s.Version > 0
}

// Store is the durable key-value surface every backend implements. Put is a
// compare-and-swap: it fails with ErrVersionConflict unless the stored
// version still equals expectedVersion. Passing expectedVersion 0 creates
// the key only if it is absent.
type Store interface {
	Get(ctx context.Context, key string) (Snapshot, error)
	Put(ctx context.Context, key string, data []byte, expectedVersion int64) (int64, error)
	Delete(ctx context.Context, key string) error
	Close() error
}
