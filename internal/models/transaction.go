package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome   TransactionType = "income"
	TransactionTypeExpense  TransactionType = "expense"
	TransactionTypeTransfer TransactionType = "transfer"
)

// Fixed categories used for system-generated transactions.
const (
	CategoryTransfer = "Transfer"
	CategorySavings  = "Savings"
)

// Transaction is an immutable record of a balance-affecting event.
// Wallet holds the wallet name at creation time, not a live reference.
type Transaction struct {
	ID       string          `json:"id"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Wallet   string          `json:"wallet"`
	Type     TransactionType `json:"type"`
	Note     string          `json:"note"`
	Date     time.Time       `json:"date"`
}

// Magnitude returns the absolute amount of the transaction.
func (t Transaction) Magnitude() decimal.Decimal {
	return t.Amount.Abs()
}
