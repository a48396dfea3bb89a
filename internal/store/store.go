// Package store loads and flushes the ledger collections through a
// key-value string store. Each collection is kept as a JSON array under its
// own key; missing or unreadable collections are replaced by seed data.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"personalfinance/internal/logger"
	"personalfinance/internal/models"
)

// Keys of the persisted collections.
const (
	KeyWallets      = "wallets"
	KeyTransactions = "transactions"
	KeySavingGoals  = "savingGoals"
)

// KV is the persistence medium. Get reports found=false for an absent key;
// err is reserved for I/O failures.
type KV interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}

// Store owns the mapping between a Snapshot and the KV keys.
type Store struct {
	kv  KV
	now func() time.Time
}

// New creates a Store. now stamps seeded transactions; nil means time.Now.
func New(kv KV, now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{kv: kv, now: now}
}

// Load reads all three collections. A collection that is absent or holds
// malformed JSON is replaced with its seed, and the seed is written back.
func (s *Store) Load(ctx context.Context) (models.Snapshot, error) {
	var snap models.Snapshot
	seed := Seed(s.now())

	if err := loadCollection(ctx, s.kv, KeyWallets, &snap.Wallets, seed.Wallets); err != nil {
		return models.Snapshot{}, err
	}
	if err := loadCollection(ctx, s.kv, KeyTransactions, &snap.Transactions, seed.Transactions); err != nil {
		return models.Snapshot{}, err
	}
	if err := loadCollection(ctx, s.kv, KeySavingGoals, &snap.Goals, seed.Goals); err != nil {
		return models.Snapshot{}, err
	}
	return snap.Clone(), nil
}

func loadCollection[T any](ctx context.Context, kv KV, key string, dst *[]T, seed []T) error {
	raw, found, err := kv.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", key, err)
	}

	if found {
		var items []T
		err := json.Unmarshal([]byte(raw), &items)
		if err == nil {
			*dst = items
			return nil
		}
		logger.Get().Warnw("Discarding malformed collection, reseeding",
			"key", key,
			"error", err,
		)
	}

	*dst = seed
	return writeCollection(ctx, kv, key, seed)
}

// Flush writes each collection to its key in a fixed order. The first failed
// write aborts the flush; keys written before it keep their new value.
func (s *Store) Flush(ctx context.Context, snap models.Snapshot) error {
	snap = snap.Clone()
	if err := writeCollection(ctx, s.kv, KeyWallets, snap.Wallets); err != nil {
		return err
	}
	if err := writeCollection(ctx, s.kv, KeyTransactions, snap.Transactions); err != nil {
		return err
	}
	return writeCollection(ctx, s.kv, KeySavingGoals, snap.Goals)
}

func writeCollection[T any](ctx context.Context, kv KV, key string, items []T) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := kv.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
