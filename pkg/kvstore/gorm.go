package kvstore

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// SnapshotRow is the single-table schema backing the SQL variant: one row
// per durable slot, whole document in a blob column.
type SnapshotRow struct {
	Key     string `gorm:"column:key;primaryKey"`
	Version int64  `gorm:"column:version;not null"`
	Data    []byte `gorm:"column:data"`
}

// TableName keeps the table name stable regardless of GORM's pluralization.
func (SnapshotRow) TableName() string {
	return "snapshots"
}

// GormStore persists snapshots through GORM (sqlite or postgres). The CAS is
// an UPDATE guarded by the version column.
type GormStore struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) (*GormStore, error) {
	if db == nil {
		return nil, fmt.Errorf("kvstore: gorm db is required")
	}
	if err := db.AutoMigrate(&SnapshotRow{}); err != nil {
		return nil, fmt.Errorf("kvstore: migrate snapshots table: %w", err)
	}
	return &GormStore{db: db}, nil
}

func (g *GormStore) Get(ctx context.Context, key string) (Snapshot, error) {
	var row SnapshotRow
	err := g.db.WithContext(ctx).First(&row, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Snapshot{}, nil
		}
		return Snapshot{}, fmt.Errorf("kvstore: select %s: %w", key, err)
	}
	return Snapshot{Version: row.Version, Data: row.Data}, nil
}

func (g *GormStore) Put(ctx context.Context, key string, data []byte, expectedVersion int64) (int64, error) {
	nextVersion := expectedVersion + 1

	if expectedVersion == 0 {
		row := SnapshotRow{Key: key, Version: nextVersion, Data: data}
		if err := g.db.WithContext(ctx).Create(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return 0, ErrVersionConflict
			}
			// Drivers without translated errors surface unique violations
			// as plain errors; the key existing at all means we lost the race.
			current, getErr := g.Get(ctx, key)
			if getErr == nil && current.Exists() {
				return 0, ErrVersionConflict
			}
			return 0, fmt.Errorf("kvstore: insert %s: %w", key, err)
		}
		return nextVersion, nil
	}

	res := g.db.WithContext(ctx).
		Model(&SnapshotRow{}).
		Where("key = ? AND version = ?", key, expectedVersion).
		Updates(map[string]any{"version": nextVersion, "data": data})
	if res.Error != nil {
		return 0, fmt.Errorf("kvstore: update %s: %w", key, res.Error)
	}
	if res.RowsAffected == 0 {
		return 0, ErrVersionConflict
	}
	return nextVersion, nil
}

func (g *GormStore) Delete(ctx context.Context, key string) error {
	if err := g.db.WithContext(ctx).Delete(&SnapshotRow{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("kvstore: delete %s: %w", key, err)
	}
	return nil
}

func (g *GormStore) Close() error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
