package kvstore

import (
	"context"
	"errors"
	"testing"
)

func storesUnderTest(t *testing.T) map[string]Store {
	t.Helper()

	fileStore, err := NewFile(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create file store: %v", err)
	}

	return map[string]Store{
		"memory": NewMemory(),
		"file":   fileStore,
	}
}

func TestStoreContract(t *testing.T) {
	ctx := context.Background()

	for name, store := range storesUnderTest(t) {
		t.Run(name+"/absentKeyIsEmptySnapshot", func(t *testing.T) {
			snap, err := store.Get(ctx, "never_written")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if snap.Exists() {
				t.Fatalf("expected absent snapshot, got version %d", snap.Version)
			}
		})

		t.Run(name+"/putThenGetRoundTrips", func(t *testing.T) {
			version, err := store.Put(ctx, KeyInventory, []byte(`[{"id":"e1"}]`), 0)
			if err != nil {
				t.Fatalf("unexpected put error: %v", err)
			}
			if version != 1 {
				t.Fatalf("expected version 1, got %d", version)
			}

			snap, err := store.Get(ctx, KeyInventory)
			if err != nil {
				t.Fatalf("unexpected get error: %v", err)
			}
			if snap.Version != 1 {
				t.Fatalf("expected version 1, got %d", snap.Version)
			}
			if string(snap.Data) != `[{"id":"e1"}]` {
				t.Fatalf("unexpected data %s", snap.Data)
			}
		})

		t.Run(name+"/staleVersionConflicts", func(t *testing.T) {
			if _, err := store.Put(ctx, KeyInventory, []byte(`[]`), 0); !errors.Is(err, ErrVersionConflict) {
				t.Fatalf("expected version conflict for create on existing key, got %v", err)
			}
			if _, err := store.Put(ctx, KeyInventory, []byte(`[]`), 99); !errors.Is(err, ErrVersionConflict) {
				t.Fatalf("expected version conflict for stale version, got %v", err)
			}

			snap, err := store.Get(ctx, KeyInventory)
			if err != nil {
				t.Fatalf("unexpected get error: %v", err)
			}
			if string(snap.Data) != `[{"id":"e1"}]` {
				t.Fatalf("failed put must leave data unchanged, got %s", snap.Data)
			}
		})

		t.Run(name+"/casAdvancesVersion", func(t *testing.T) {
			version, err := store.Put(ctx, KeyInventory, []byte(`[]`), 1)
			if err != nil {
				t.Fatalf("unexpected put error: %v", err)
			}
			if version != 2 {
				t.Fatalf("expected version 2, got %d", version)
			}
		})

		t.Run(name+"/deleteResetsSlot", func(t *testing.T) {
			if err := store.Delete(ctx, KeyInventory); err != nil {
				t.Fatalf("unexpected delete error: %v", err)
			}
			snap, err := store.Get(ctx, KeyInventory)
			if err != nil {
				t.Fatalf("unexpected get error: %v", err)
			}
			if snap.Exists() {
				t.Fatalf("expected slot to be empty after delete")
			}
			if err := store.Delete(ctx, KeyInventory); err != nil {
				t.Fatalf("double delete should be a no-op, got %v", err)
			}
		})
	}
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	first, err := NewFile(dir)
	if err != nil {
		t.Fatalf("failed to create file store: %v", err)
	}
	if _, err := first.Put(ctx, KeyUsers, []byte(`[{"id":"u1"}]`), 0); err != nil {
		t.Fatalf("unexpected put error: %v", err)
	}

	second, err := NewFile(dir)
	if err != nil {
		t.Fatalf("failed to reopen file store: %v", err)
	}
	snap, err := second.Get(ctx, KeyUsers)
	if err != nil {
		t.Fatalf("unexpected get error: %v", err)
	}
	if snap.Version != 1 || string(snap.Data) != `[{"id":"u1"}]` {
		t.Fatalf("snapshot did not survive reopen: version=%d data=%s", snap.Version, snap.Data)
	}
}
