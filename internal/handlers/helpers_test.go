package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"personalfinance/internal/ledger"
	"personalfinance/internal/middleware"
	"personalfinance/internal/models"
	"personalfinance/internal/pagination"
	"personalfinance/internal/services"
	"personalfinance/internal/summary"
	"personalfinance/internal/validator"
)

// --- mock ledger service ---

type mockLedgerService struct {
	getWalletsFn        func() []models.Wallet
	getWalletByIDFn     func(id string) (*models.Wallet, error)
	getTransactionsFn   func(page pagination.PageRequest, filter services.TransactionFilter) *pagination.PageResponse[models.Transaction]
	getGoalsFn          func() []summary.GoalProgress
	getGoalByIDFn       func(id string) (*summary.GoalProgress, error)
	getDashboardFn      func(month time.Time) summary.DashboardView
	recordTransactionFn func(ctx context.Context, in ledger.RecordInput) (*models.Transaction, error)
	transferFn          func(ctx context.Context, in ledger.TransferInput) ([]models.Transaction, error)
	contributeFn        func(ctx context.Context, in ledger.ContributeInput) (*models.Transaction, error)
	createGoalFn        func(ctx context.Context, in ledger.GoalInput) (*models.SavingGoal, error)
	deleteGoalFn        func(ctx context.Context, goalID string) error
}

func (m *mockLedgerService) GetWallets() []models.Wallet {
	if m.getWalletsFn != nil {
		return m.getWalletsFn()
	}
	return []models.Wallet{}
}

func (m *mockLedgerService) GetWalletByID(id string) (*models.Wallet, error) {
	if m.getWalletByIDFn != nil {
		return m.getWalletByIDFn(id)
	}
	return &models.Wallet{ID: id}, nil
}

func (m *mockLedgerService) GetTransactions(page pagination.PageRequest, filter services.TransactionFilter) *pagination.PageResponse[models.Transaction] {
	if m.getTransactionsFn != nil {
		return m.getTransactionsFn(page, filter)
	}
	resp := pagination.NewPageResponse([]models.Transaction{}, 1, 20, 0)
	return &resp
}

func (m *mockLedgerService) GetGoals() []summary.GoalProgress {
	if m.getGoalsFn != nil {
		return m.getGoalsFn()
	}
	return []summary.GoalProgress{}
}

func (m *mockLedgerService) GetGoalByID(id string) (*summary.GoalProgress, error) {
	if m.getGoalByIDFn != nil {
		return m.getGoalByIDFn(id)
	}
	return &summary.GoalProgress{}, nil
}

func (m *mockLedgerService) GetDashboard(month time.Time) summary.DashboardView {
	if m.getDashboardFn != nil {
		return m.getDashboardFn(month)
	}
	return summary.DashboardView{}
}

func (m *mockLedgerService) RecordTransaction(ctx context.Context, in ledger.RecordInput) (*models.Transaction, error) {
	if m.recordTransactionFn != nil {
		return m.recordTransactionFn(ctx, in)
	}
	return &models.Transaction{}, nil
}

func (m *mockLedgerService) Transfer(ctx context.Context, in ledger.TransferInput) ([]models.Transaction, error) {
	if m.transferFn != nil {
		return m.transferFn(ctx, in)
	}
	return []models.Transaction{{}, {}}, nil
}

func (m *mockLedgerService) Contribute(ctx context.Context, in ledger.ContributeInput) (*models.Transaction, error) {
	if m.contributeFn != nil {
		return m.contributeFn(ctx, in)
	}
	return &models.Transaction{}, nil
}

func (m *mockLedgerService) CreateGoal(ctx context.Context, in ledger.GoalInput) (*models.SavingGoal, error) {
	if m.createGoalFn != nil {
		return m.createGoalFn(ctx, in)
	}
	return &models.SavingGoal{}, nil
}

func (m *mockLedgerService) DeleteGoal(ctx context.Context, goalID string) error {
	if m.deleteGoalFn != nil {
		return m.deleteGoalFn(ctx, goalID)
	}
	return nil
}

var _ services.LedgerServicer = (*mockLedgerService)(nil)

// --- mock audit service ---

type mockAuditService struct {
	listFn func(page pagination.PageRequest) (*pagination.PageResponse[models.AuditLog], error)
}

func (m *mockAuditService) Log(_, _, _ string, _ map[string]interface{}) {}

func (m *mockAuditService) List(page pagination.PageRequest) (*pagination.PageResponse[models.AuditLog], error) {
	if m.listFn != nil {
		return m.listFn(page)
	}
	resp := pagination.NewPageResponse([]models.AuditLog{}, 1, 20, 0)
	return &resp, nil
}

var _ services.AuditServicer = (*mockAuditService)(nil)

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

// newTestRouter returns an engine with the error middleware that renders
// what handlers report.
func newTestRouter() *gin.Engine {
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}
