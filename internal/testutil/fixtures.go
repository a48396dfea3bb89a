package testutil

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"personalfinance/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// FixedTime is the instant returned by FixedClock.
var FixedTime = time.Date(2026, time.March, 15, 9, 30, 0, 0, time.UTC)

// FixedClock always returns FixedTime.
func FixedClock() time.Time {
	return FixedTime
}

// SequentialIDs returns an id generator producing "tx-0001", "tx-0002", ...
func SequentialIDs() func() string {
	var n atomic.Int64
	return func() string {
		return fmt.Sprintf("tx-%04d", n.Add(1))
	}
}

// Dec parses a decimal literal, panicking on malformed input.
func Dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Wallet builds a cash wallet with the given balance.
func Wallet(id, name, balance string) models.Wallet {
	return models.Wallet{ID: id, Name: name, Balance: Dec(balance), Type: models.WalletTypeCash}
}

// Goal builds a saving goal.
func Goal(id, name, target, saved string) models.SavingGoal {
	return models.SavingGoal{ID: id, Name: name, Target: Dec(target), Saved: Dec(saved)}
}

// Tx builds a transaction dated at FixedTime.
func Tx(id string, amount string, category, wallet string, txType models.TransactionType) models.Transaction {
	return models.Transaction{
		ID:       id,
		Amount:   Dec(amount),
		Category: category,
		Wallet:   wallet,
		Type:     txType,
		Note:     fmt.Sprintf("fixture %s", id),
		Date:     FixedTime,
	}
}

// NewSnapshot builds a snapshot with two wallets, no history and one goal.
func NewSnapshot() models.Snapshot {
	return models.Snapshot{
		Wallets: []models.Wallet{
			Wallet("w1", "Cash", "100"),
			Wallet("w2", "Bank", "10"),
		},
		Transactions: []models.Transaction{},
		Goals: []models.SavingGoal{
			Goal("g1", "Laptop", "100", "90"),
		},
	}
}

// ErrInjected is returned by FlakyKV for keys configured to fail.
var ErrInjected = errors.New("injected failure")

// FlakyKV is an in-memory key-value store whose reads and writes can be made
// to fail per key.
type FlakyKV struct {
	mu       sync.Mutex
	data     map[string]string
	failGet  map[string]bool
	failSet  map[string]bool
	SetCalls []string
}

// NewFlakyKV creates an empty FlakyKV.
func NewFlakyKV() *FlakyKV {
	return &FlakyKV{
		data:    make(map[string]string),
		failGet: make(map[string]bool),
		failSet: make(map[string]bool),
	}
}

// FailGet makes reads of key fail.
func (k *FlakyKV) FailGet(key string) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.failGet[key] = true
}

// FailSet makes writes of key fail.
func (k *FlakyKV) FailSet(key string) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.failSet[key] = true
}

// Put stores a raw value, bypassing failure injection.
func (k *FlakyKV) Put(key, value string) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.data[key] = value
}

// Raw returns the raw stored value.
func (k *FlakyKV) Raw(key string) (string, bool) {
	k.mu.Lock()
	defer k.mu.Unlock()
	v, ok := k.data[key]
	return v, ok
}

// Get implements the store's KV contract.
func (k *FlakyKV) Get(_ context.Context, key string) (string, bool, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.failGet[key] {
		return "", false, fmt.Errorf("get %s: %w", key, ErrInjected)
	}
	v, ok := k.data[key]
	return v, ok, nil
}

// Set implements the store's KV contract.
func (k *FlakyKV) Set(_ context.Context, key, value string) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.SetCalls = append(k.SetCalls, key)
	if k.failSet[key] {
		return fmt.Errorf("set %s: %w", key, ErrInjected)
	}
	k.data[key] = value
	return nil
}
