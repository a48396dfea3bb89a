package models

import "github.com/shopspring/decimal"

// QuickExpense is a one-tap expense shortcut.
type QuickExpense struct {
	Name     string          `json:"name"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
}

// TransactionTemplate pre-fills the entry form.
type TransactionTemplate struct {
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Note     string          `json:"note"`
}

// Presets is the read-only data offered to entry forms. The ledger does not
// restrict categories to this list.
type Presets struct {
	Categories    []string              `json:"categories"`
	QuickExpenses []QuickExpense        `json:"quick_expenses"`
	Templates     []TransactionTemplate `json:"templates"`
}

// DefaultPresets returns the built-in presets.
func DefaultPresets() Presets {
	return Presets{
		Categories: []string{"Food", "Transport", "Bills", "Entertainment", "Shopping", "Health"},
		QuickExpenses: []QuickExpense{
			{Name: "Coffee", Amount: decimal.NewFromInt(5), Category: "Food"},
			{Name: "Lunch", Amount: decimal.NewFromInt(15), Category: "Food"},
			{Name: "Transport", Amount: decimal.NewFromInt(10), Category: "Transport"},
			{Name: "Rent", Amount: decimal.NewFromInt(800), Category: "Bills"},
		},
		Templates: []TransactionTemplate{
			{Name: "Grab ride", Category: "Transport", Amount: decimal.NewFromInt(12), Note: "Ride to destination"},
			{Name: "Netflix subscription", Category: "Entertainment", Amount: decimal.NewFromInt(15), Note: "Monthly subscription"},
			{Name: "Grocery shopping", Category: "Food", Amount: decimal.NewFromInt(50), Note: "Weekly groceries"},
			{Name: "Coffee break", Category: "Food", Amount: decimal.NewFromInt(6), Note: "Morning coffee"},
		},
	}
}
