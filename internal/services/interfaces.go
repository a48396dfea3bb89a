package services

import (
	"context"
	"time"

	"personalfinance/internal/ledger"
	"personalfinance/internal/models"
	"personalfinance/internal/pagination"
	"personalfinance/internal/summary"
)

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	Type     *models.TransactionType
	Category string
	Wallet   string
}

// LedgerServicer defines the contract for the ledger session: it owns the
// current snapshot, applies operations and persists the result.
type LedgerServicer interface {
	GetWallets() []models.Wallet
	GetWalletByID(id string) (*models.Wallet, error)
	GetTransactions(page pagination.PageRequest, filter TransactionFilter) *pagination.PageResponse[models.Transaction]
	GetGoals() []summary.GoalProgress
	GetGoalByID(id string) (*summary.GoalProgress, error)
	GetDashboard(month time.Time) summary.DashboardView

	RecordTransaction(ctx context.Context, in ledger.RecordInput) (*models.Transaction, error)
	Transfer(ctx context.Context, in ledger.TransferInput) ([]models.Transaction, error)
	Contribute(ctx context.Context, in ledger.ContributeInput) (*models.Transaction, error)
	CreateGoal(ctx context.Context, in ledger.GoalInput) (*models.SavingGoal, error)
	DeleteGoal(ctx context.Context, goalID string) error
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(action, resourceType, resourceID string, changes map[string]interface{})
	List(page pagination.PageRequest) (*pagination.PageResponse[models.AuditLog], error)
}
