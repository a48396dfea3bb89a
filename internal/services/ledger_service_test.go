package services

import (
	"context"
	"sync"
	"testing"

	"gorm.io/gorm"

	"personalfinance/internal/ledger"
	"personalfinance/internal/models"
	"personalfinance/internal/pagination"
	"personalfinance/internal/store"
	"personalfinance/internal/summary"
	"personalfinance/internal/testutil"
)

func newTestLedgerService(t *testing.T, kv store.KV, db *gorm.DB) LedgerServicer {
	t.Helper()
	engine := ledger.New(ledger.WithClock(testutil.FixedClock), ledger.WithIDGenerator(testutil.SequentialIDs()))
	svc, err := NewLedgerService(context.Background(), store.New(kv, testutil.FixedClock), engine, NewAuditService(db, "test"))
	testutil.AssertNoError(t, err)
	return svc
}

func TestNewLedgerService(t *testing.T) {
	t.Run("seeds_empty_store", func(t *testing.T) {
		svc := newTestLedgerService(t, testutil.NewFlakyKV(), nil)

		wallets := svc.GetWallets()
		if len(wallets) != 4 {
			t.Fatalf("expected 4 seeded wallets, got %d", len(wallets))
		}
		if got := svc.GetTransactions(pagination.PageRequest{}, TransactionFilter{}); got.TotalItems != 3 {
			t.Errorf("expected 3 seeded transactions, got %d", got.TotalItems)
		}
	})

	t.Run("load_failure", func(t *testing.T) {
		kv := testutil.NewFlakyKV()
		kv.FailGet(store.KeyWallets)
		engine := ledger.New()
		_, err := NewLedgerService(context.Background(), store.New(kv, nil), engine, NewAuditService(nil, "test"))
		if err == nil {
			t.Fatal("expected load error")
		}
	})
}

func TestLedgerServiceReads(t *testing.T) {
	svc := newTestLedgerService(t, testutil.NewFlakyKV(), nil)

	t.Run("wallet_by_id", func(t *testing.T) {
		w, err := svc.GetWalletByID("2")
		testutil.AssertNoError(t, err)
		if w.Name != "Techcombank" {
			t.Errorf("expected Techcombank, got %s", w.Name)
		}
	})

	t.Run("wallet_not_found", func(t *testing.T) {
		_, err := svc.GetWalletByID("99")
		testutil.AssertAppError(t, err, "WALLET_NOT_FOUND")
	})

	t.Run("goal_by_id", func(t *testing.T) {
		g, err := svc.GetGoalByID("1")
		testutil.AssertNoError(t, err)
		testutil.AssertDecimal(t, "percent", g.Percent, "40")
		if g.Status != models.GoalStatusActive {
			t.Errorf("expected active, got %s", g.Status)
		}
	})

	t.Run("goal_not_found", func(t *testing.T) {
		_, err := svc.GetGoalByID("99")
		testutil.AssertAppError(t, err, "GOAL_NOT_FOUND")
	})

	t.Run("goals_with_progress", func(t *testing.T) {
		goals := svc.GetGoals()
		if len(goals) != 3 {
			t.Fatalf("expected 3 goals, got %d", len(goals))
		}
		testutil.AssertDecimal(t, "goal 2 percent", goals[1].Percent, "17.5")
	})

	t.Run("filter_by_type", func(t *testing.T) {
		income := models.TransactionTypeIncome
		got := svc.GetTransactions(pagination.PageRequest{}, TransactionFilter{Type: &income})
		if got.TotalItems != 1 || got.Data[0].Category != "Salary" {
			t.Errorf("expected the salary row, got %+v", got.Data)
		}
	})

	t.Run("filter_by_category_case_insensitive", func(t *testing.T) {
		got := svc.GetTransactions(pagination.PageRequest{}, TransactionFilter{Category: "food"})
		if got.TotalItems != 1 {
			t.Errorf("expected 1 food row, got %d", got.TotalItems)
		}
	})

	t.Run("filter_by_wallet_name", func(t *testing.T) {
		got := svc.GetTransactions(pagination.PageRequest{}, TransactionFilter{Wallet: "MoMo Wallet"})
		if got.TotalItems != 1 || got.Data[0].Category != "Transport" {
			t.Errorf("expected the transport row, got %+v", got.Data)
		}
	})

	t.Run("paginated", func(t *testing.T) {
		got := svc.GetTransactions(pagination.PageRequest{Page: 2, PageSize: 2}, TransactionFilter{})
		if len(got.Data) != 1 || got.TotalPages != 2 {
			t.Errorf("expected last page with 1 row of 2 pages, got %d rows of %d pages", len(got.Data), got.TotalPages)
		}
	})

	t.Run("results_are_copies", func(t *testing.T) {
		wallets := svc.GetWallets()
		wallets[0].Name = "mutated"
		if svc.GetWallets()[0].Name == "mutated" {
			t.Error("callers should not be able to mutate service state")
		}
	})

	t.Run("dashboard", func(t *testing.T) {
		view := svc.GetDashboard(testutil.FixedTime)
		testutil.AssertDecimal(t, "total", view.TotalBalance, "3300")
		if len(view.RecentTransactions) != 3 {
			t.Errorf("expected 3 recent transactions, got %d", len(view.RecentTransactions))
		}
	})
}

func TestLedgerServiceMutations(t *testing.T) {
	ctx := context.Background()

	t.Run("record_persists_and_audits", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		kv := testutil.NewFlakyKV()
		svc := newTestLedgerService(t, kv, db)

		tx, err := svc.RecordTransaction(ctx, ledger.RecordInput{
			WalletID: "1", Amount: testutil.Dec("30"), Category: "Food", Type: models.TransactionTypeExpense,
		})
		testutil.AssertNoError(t, err)
		if tx.Wallet != "Tiền mặt" {
			t.Errorf("expected wallet name snapshot, got %s", tx.Wallet)
		}

		reloaded, err := store.New(kv, nil).Load(ctx)
		testutil.AssertNoError(t, err)
		testutil.AssertDecimal(t, "persisted balance", reloaded.Wallets[0].Balance, "470")
		if reloaded.Transactions[0].ID != tx.ID {
			t.Errorf("expected persisted head %s, got %s", tx.ID, reloaded.Transactions[0].ID)
		}

		var logs []models.AuditLog
		testutil.AssertNoError(t, db.Find(&logs).Error)
		if len(logs) != 1 || logs[0].Action != "record_expense" || logs[0].ResourceID != tx.ID || logs[0].Source != "test" {
			t.Errorf("unexpected audit log %+v", logs)
		}
	})

	t.Run("rejection_leaves_state_and_store_untouched", func(t *testing.T) {
		kv := testutil.NewFlakyKV()
		svc := newTestLedgerService(t, kv, nil)
		writes := len(kv.SetCalls)
		before := svc.GetWallets()

		_, err := svc.Transfer(ctx, ledger.TransferInput{SourceID: "3", TargetID: "1", Amount: testutil.Dec("151")})
		testutil.AssertAppError(t, err, "INSUFFICIENT_BALANCE")
		testutil.AssertSameJSON(t, svc.GetWallets(), before)
		if len(kv.SetCalls) != writes {
			t.Errorf("rejection should not write, got %v", kv.SetCalls[writes:])
		}
	})

	t.Run("transfer_returns_inflow_then_outflow", func(t *testing.T) {
		svc := newTestLedgerService(t, testutil.NewFlakyKV(), nil)

		pair, err := svc.Transfer(ctx, ledger.TransferInput{SourceID: "2", TargetID: "4", Amount: testutil.Dec("100")})
		testutil.AssertNoError(t, err)
		if len(pair) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(pair))
		}
		testutil.AssertDecimal(t, "inflow", pair[0].Amount, "100")
		testutil.AssertDecimal(t, "outflow", pair[1].Amount, "-100")

		momo, _ := svc.GetWalletByID("4")
		testutil.AssertDecimal(t, "momo balance", momo.Balance, "250")
	})

	t.Run("contribute_and_delete_goal", func(t *testing.T) {
		svc := newTestLedgerService(t, testutil.NewFlakyKV(), nil)

		_, err := svc.Contribute(ctx, ledger.ContributeInput{GoalID: "1", WalletID: "2", Amount: testutil.Dec("1000")})
		testutil.AssertNoError(t, err)
		goal, _ := svc.GetGoalByID("1")
		testutil.AssertDecimal(t, "saved", goal.Saved, "1500")
		if goal.Status != models.GoalStatusCompleted {
			t.Errorf("expected completed, got %s", goal.Status)
		}

		testutil.AssertNoError(t, svc.DeleteGoal(ctx, "1"))
		_, err = svc.GetGoalByID("1")
		testutil.AssertAppError(t, err, "GOAL_NOT_FOUND")

		bank, _ := svc.GetWalletByID("2")
		testutil.AssertDecimal(t, "bank balance", bank.Balance, "1500")
	})

	t.Run("delete_unknown_goal_is_noop", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		kv := testutil.NewFlakyKV()
		svc := newTestLedgerService(t, kv, db)
		writes := len(kv.SetCalls)

		testutil.AssertNoError(t, svc.DeleteGoal(ctx, "nope"))
		if len(kv.SetCalls) != writes {
			t.Error("no-op delete should not write")
		}
		var count int64
		db.Model(&models.AuditLog{}).Count(&count)
		if count != 0 {
			t.Errorf("expected no audit entry, got %d", count)
		}
	})

	t.Run("create_goal", func(t *testing.T) {
		svc := newTestLedgerService(t, testutil.NewFlakyKV(), nil)

		goal, err := svc.CreateGoal(ctx, ledger.GoalInput{Name: "Xe máy", Target: testutil.Dec("3000")})
		testutil.AssertNoError(t, err)
		goals := svc.GetGoals()
		if len(goals) != 4 || goals[3].ID != goal.ID {
			t.Errorf("expected new goal appended, got %+v", goals)
		}
	})

	t.Run("flush_failure_keeps_applied_change", func(t *testing.T) {
		kv := testutil.NewFlakyKV()
		svc := newTestLedgerService(t, kv, nil)
		kv.FailSet(store.KeyTransactions)

		_, err := svc.RecordTransaction(ctx, ledger.RecordInput{
			WalletID: "1", Amount: testutil.Dec("10"), Category: "Food", Type: models.TransactionTypeIncome,
		})
		testutil.AssertAppError(t, err, "PERSISTENCE_FAILED")

		w, _ := svc.GetWalletByID("1")
		testutil.AssertDecimal(t, "in-memory balance", w.Balance, "510")
		if got := svc.GetTransactions(pagination.PageRequest{}, TransactionFilter{}); got.TotalItems != 4 {
			t.Errorf("expected the new transaction in memory, got %d rows", got.TotalItems)
		}
	})
}

func TestLedgerServiceConcurrentWriters(t *testing.T) {
	svc := newTestLedgerService(t, store.NewMemoryKV(), nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = svc.Transfer(ctx, ledger.TransferInput{SourceID: "2", TargetID: "3", Amount: testutil.Dec("10")})
		}()
		go func() {
			defer wg.Done()
			_, _ = svc.Transfer(ctx, ledger.TransferInput{SourceID: "3", TargetID: "2", Amount: testutil.Dec("10")})
		}()
	}
	wg.Wait()

	testutil.AssertDecimal(t, "total", summary.TotalBalance(svc.GetWallets()), "3300")
	got := svc.GetTransactions(pagination.PageRequest{PageSize: 100}, TransactionFilter{})
	if (got.TotalItems-3)%2 != 0 {
		t.Errorf("transfers should add rows in pairs, got %d", got.TotalItems)
	}
}

func TestAuditServiceList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	audit := NewAuditService(db, "api")

	for _, id := range []string{"a", "b", "c"} {
		audit.Log("create", "saving_goal", id, map[string]interface{}{"name": id})
	}

	page, err := audit.List(pagination.PageRequest{Page: 1, PageSize: 2})
	testutil.AssertNoError(t, err)
	if page.TotalItems != 3 || len(page.Data) != 2 {
		t.Errorf("expected 2 of 3 entries, got %d of %d", len(page.Data), page.TotalItems)
	}

	t.Run("without_database", func(t *testing.T) {
		page, err := NewAuditService(nil, "cli").List(pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if page.TotalItems != 0 || page.Data == nil {
			t.Errorf("expected empty page, got %+v", page)
		}
	})
}
