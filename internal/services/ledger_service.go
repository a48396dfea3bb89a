package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	apperrors "personalfinance/internal/errors"
	"personalfinance/internal/ledger"
	"personalfinance/internal/logger"
	"personalfinance/internal/models"
	"personalfinance/internal/pagination"
	"personalfinance/internal/store"
	"personalfinance/internal/summary"
)

// ledgerService serialises writers over a single in-memory snapshot.
type ledgerService struct {
	mu     sync.RWMutex
	snap   models.Snapshot
	store  *store.Store
	engine *ledger.Engine
	audit  AuditServicer
}

// NewLedgerService loads the snapshot from st and returns a LedgerServicer
// bound to it. A backend failure while loading is returned as-is.
func NewLedgerService(ctx context.Context, st *store.Store, engine *ledger.Engine, audit AuditServicer) (LedgerServicer, error) {
	snap, err := st.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}
	return &ledgerService{
		snap:   snap,
		store:  st,
		engine: engine,
		audit:  audit,
	}, nil
}

// current returns a copy of the snapshot that callers may keep.
func (s *ledgerService) current() models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Clone()
}

// GetWallets returns all wallets in their stored order.
func (s *ledgerService) GetWallets() []models.Wallet {
	return s.current().Wallets
}

// GetWalletByID returns a single wallet.
func (s *ledgerService) GetWalletByID(id string) (*models.Wallet, error) {
	snap := s.current()
	idx := snap.WalletIndex(id)
	if idx < 0 {
		return nil, apperrors.ErrWalletNotFound
	}
	return &snap.Wallets[idx], nil
}

// GetTransactions returns a page of the most-recent-first history.
func (s *ledgerService) GetTransactions(page pagination.PageRequest, filter TransactionFilter) *pagination.PageResponse[models.Transaction] {
	txs := s.current().Transactions
	matched := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if filter.Type != nil && tx.Type != *filter.Type {
			continue
		}
		if filter.Category != "" && !strings.EqualFold(tx.Category, filter.Category) {
			continue
		}
		if filter.Wallet != "" && !strings.EqualFold(tx.Wallet, filter.Wallet) {
			continue
		}
		matched = append(matched, tx)
	}
	resp := pagination.Slice(matched, page)
	return &resp
}

// GetGoals returns every goal with its progress.
func (s *ledgerService) GetGoals() []summary.GoalProgress {
	goals := s.current().Goals
	out := make([]summary.GoalProgress, 0, len(goals))
	for _, g := range goals {
		out = append(out, summary.NewGoalProgress(g))
	}
	return out
}

// GetGoalByID returns one goal with its progress.
func (s *ledgerService) GetGoalByID(id string) (*summary.GoalProgress, error) {
	snap := s.current()
	idx := snap.GoalIndex(id)
	if idx < 0 {
		return nil, apperrors.ErrGoalNotFound
	}
	p := summary.NewGoalProgress(snap.Goals[idx])
	return &p, nil
}

// GetDashboard computes the dashboard for the month containing month.
func (s *ledgerService) GetDashboard(month time.Time) summary.DashboardView {
	return summary.Dashboard(s.current(), month)
}

// apply runs op against the current snapshot under the write lock. On
// success the new snapshot becomes current before it is flushed, so a
// failed flush still leaves the session with the applied change.
func (s *ledgerService) apply(ctx context.Context, op func(models.Snapshot) (models.Snapshot, error)) (models.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := op(s.snap)
	if err != nil {
		return models.Snapshot{}, err
	}
	s.snap = next

	if err := s.store.Flush(ctx, next); err != nil {
		logger.Get().Errorw("failed to persist ledger", "error", err)
		return models.Snapshot{}, apperrors.Wrap(apperrors.ErrPersistence, err)
	}
	return next.Clone(), nil
}

// RecordTransaction posts an income or expense.
func (s *ledgerService) RecordTransaction(ctx context.Context, in ledger.RecordInput) (*models.Transaction, error) {
	next, err := s.apply(ctx, func(snap models.Snapshot) (models.Snapshot, error) {
		return s.engine.RecordTransaction(snap, in)
	})
	if err != nil {
		return nil, err
	}

	tx := next.Transactions[0]
	s.audit.Log("record_"+string(tx.Type), "transaction", tx.ID, map[string]interface{}{
		"wallet":   in.WalletID,
		"amount":   tx.Amount.String(),
		"category": tx.Category,
	})
	return &tx, nil
}

// Transfer moves money between wallets and returns the inflow and outflow
// rows in that order.
func (s *ledgerService) Transfer(ctx context.Context, in ledger.TransferInput) ([]models.Transaction, error) {
	next, err := s.apply(ctx, func(snap models.Snapshot) (models.Snapshot, error) {
		return s.engine.Transfer(snap, in)
	})
	if err != nil {
		return nil, err
	}

	pair := next.Transactions[:2:2]
	s.audit.Log("transfer", "transaction", pair[1].ID, map[string]interface{}{
		"source": in.SourceID,
		"target": in.TargetID,
		"amount": in.Amount.String(),
	})
	return pair, nil
}

// Contribute funds a saving goal from a wallet.
func (s *ledgerService) Contribute(ctx context.Context, in ledger.ContributeInput) (*models.Transaction, error) {
	next, err := s.apply(ctx, func(snap models.Snapshot) (models.Snapshot, error) {
		return s.engine.Contribute(snap, in)
	})
	if err != nil {
		return nil, err
	}

	tx := next.Transactions[0]
	s.audit.Log("contribute", "saving_goal", in.GoalID, map[string]interface{}{
		"wallet":         in.WalletID,
		"amount":         in.Amount.String(),
		"transaction_id": tx.ID,
	})
	return &tx, nil
}

// CreateGoal adds a new saving goal.
func (s *ledgerService) CreateGoal(ctx context.Context, in ledger.GoalInput) (*models.SavingGoal, error) {
	var goal models.SavingGoal
	_, err := s.apply(ctx, func(snap models.Snapshot) (models.Snapshot, error) {
		next, created, err := s.engine.CreateGoal(snap, in)
		goal = created
		return next, err
	})
	if err != nil {
		return nil, err
	}

	s.audit.Log("create", "saving_goal", goal.ID, map[string]interface{}{
		"name":   goal.Name,
		"target": goal.Target.String(),
	})
	return &goal, nil
}

// DeleteGoal removes a saving goal. Unknown ids succeed without writing.
func (s *ledgerService) DeleteGoal(ctx context.Context, goalID string) error {
	s.mu.RLock()
	exists := s.snap.GoalIndex(goalID) >= 0
	s.mu.RUnlock()
	if !exists {
		return nil
	}

	_, err := s.apply(ctx, func(snap models.Snapshot) (models.Snapshot, error) {
		return s.engine.DeleteGoal(snap, goalID), nil
	})
	if err != nil {
		return err
	}

	s.audit.Log("delete", "saving_goal", goalID, nil)
	return nil
}
