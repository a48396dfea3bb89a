package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"personalfinance/internal/models"
)

// GormKV stores values in the kv_entries table. It works on any dialect
// gorm supports with ON CONFLICT upserts (sqlite, postgres).
type GormKV struct {
	db *gorm.DB
}

// NewGormKV creates a GormKV over an already migrated database.
func NewGormKV(db *gorm.DB) *GormKV {
	return &GormKV{db: db}
}

func (k *GormKV) Get(ctx context.Context, key string) (string, bool, error) {
	var entry models.KVEntry
	err := k.db.WithContext(ctx).Where(&models.KVEntry{Key: key}).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return entry.Value, true, nil
}

func (k *GormKV) Set(ctx context.Context, key, value string) error {
	entry := models.KVEntry{Key: key, Value: value}
	err := k.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}
