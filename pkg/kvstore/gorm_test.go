package kvstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "kvstore_test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	return db
}

func TestGormStoreCAS(t *testing.T) {
	ctx := context.Background()
	store, err := NewGorm(openTestDB(t))
	require.NoError(t, err)

	version, err := store.Put(ctx, KeyOrders, []byte(`[]`), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	_, err = store.Put(ctx, KeyOrders, []byte(`[]`), 0)
	assert.ErrorIs(t, err, ErrVersionConflict)
	_, err = store.Put(ctx, KeyOrders, []byte(`[]`), 7)
	assert.ErrorIs(t, err, ErrVersionConflict)

	version, err = store.Put(ctx, KeyOrders, []byte(`[{"id":"o1"}]`), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)

	snap, err := store.Get(ctx, KeyOrders)
	require.NoError(t, err)
	assert.Equal(t, int64(2), snap.Version)
	assert.Equal(t, `[{"id":"o1"}]`, string(snap.Data))
}

func TestGormStoreDelete(t *testing.T) {
	ctx := context.Background()
	store, err := NewGorm(openTestDB(t))
	require.NoError(t, err)

	_, err = store.Put(ctx, KeyUsers, []byte(`[]`), 0)
	require.NoError(t, err)
	require.NoError(t, store.Delete(ctx, KeyUsers))

	snap, err := store.Get(ctx, KeyUsers)
	require.NoError(t, err)
	assert.False(t, snap.Exists())
}
