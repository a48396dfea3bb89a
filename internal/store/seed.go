package store

import (
	"time"

	"github.com/shopspring/decimal"

	"personalfinance/internal/models"
)

// Seed returns the starter ledger used when nothing has been persisted yet.
// Seeded transactions are dated relative to now.
func Seed(now time.Time) models.Snapshot {
	day := 24 * time.Hour
	return models.Snapshot{
		Wallets: []models.Wallet{
			{ID: "1", Name: "Tiền mặt", Balance: decimal.NewFromInt(500), Type: models.WalletTypeCash},
			{ID: "2", Name: "Techcombank", Balance: decimal.NewFromInt(2500), Type: models.WalletTypeBank},
			{ID: "3", Name: "Vietcombank", Balance: decimal.NewFromInt(150), Type: models.WalletTypeBank},
			{ID: "4", Name: "Momo", Balance: decimal.NewFromInt(150), Type: models.WalletTypeMomo},
		},
		Transactions: []models.Transaction{
			{
				ID: "1", Amount: decimal.NewFromInt(-25), Category: "Food", Wallet: "Cash",
				Type: models.TransactionTypeExpense, Note: "Lunch at restaurant", Date: now,
			},
			{
				ID: "2", Amount: decimal.NewFromInt(-15), Category: "Transport", Wallet: "MoMo Wallet",
				Type: models.TransactionTypeExpense, Note: "Grab ride to office", Date: now.Add(-day),
			},
			{
				ID: "3", Amount: decimal.NewFromInt(1000), Category: "Salary", Wallet: "Bank Account",
				Type: models.TransactionTypeIncome, Note: "Monthly salary", Date: now.Add(-2 * day),
			},
		},
		Goals: []models.SavingGoal{
			{ID: "1", Name: "Mua Laptop", Target: decimal.NewFromInt(1500), Saved: decimal.NewFromInt(600)},
			{ID: "2", Name: "Đi du lịch với eiu", Target: decimal.NewFromInt(2000), Saved: decimal.NewFromInt(350)},
			{ID: "3", Name: "Mua điện thoại", Target: decimal.NewFromInt(5000), Saved: decimal.NewFromInt(1200)},
		},
	}
}
