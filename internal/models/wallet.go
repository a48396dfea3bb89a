// Package models defines the ledger entities and their persisted JSON shape.
package models

import "github.com/shopspring/decimal"

func init() {
	// Persisted collections store amounts as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// WalletType classifies a wallet. It has no behavioural effect.
type WalletType string

const (
	WalletTypeCash WalletType = "cash"
	WalletTypeBank WalletType = "bank"
	WalletTypeMomo WalletType = "momo"
	WalletTypeCard WalletType = "card"
)

// Wallet is a named money container with a running balance.
type Wallet struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
	Type    WalletType      `json:"type"`
}

// CanCover reports whether the wallet holds at least amount.
func (w Wallet) CanCover(amount decimal.Decimal) bool {
	return w.Balance.GreaterThanOrEqual(amount)
}
