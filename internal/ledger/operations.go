package ledger

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	apperrors "personalfinance/internal/errors"
	"personalfinance/internal/models"
)

// RecordInput describes an income or expense entered against one wallet.
type RecordInput struct {
	WalletID string
	Amount   decimal.Decimal
	Category string
	Type     models.TransactionType
	Note     string
}

// TransferInput describes a movement between two wallets.
type TransferInput struct {
	SourceID string
	TargetID string
	Amount   decimal.Decimal
	Note     string
}

// ContributeInput describes money moved from a wallet into a saving goal.
type ContributeInput struct {
	GoalID   string
	WalletID string
	Amount   decimal.Decimal
	Note     string
}

// GoalInput describes a new saving goal.
type GoalInput struct {
	Name   string
	Target decimal.Decimal
}

// RecordTransaction posts an income or expense to a wallet and prepends the
// resulting transaction. Expenses may not exceed the wallet balance.
func (e *Engine) RecordTransaction(snap models.Snapshot, in RecordInput) (models.Snapshot, error) {
	if !in.Amount.IsPositive() {
		return snap, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		return snap, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}
	if in.WalletID == "" {
		return snap, apperrors.WithMessage(apperrors.ErrInvalidInput, "wallet is required")
	}
	if in.Type != models.TransactionTypeIncome && in.Type != models.TransactionTypeExpense {
		return snap, apperrors.WithMessage(apperrors.ErrInvalidInput, "type must be income or expense")
	}

	idx := snap.WalletIndex(in.WalletID)
	if idx < 0 {
		return snap, apperrors.WithMessage(apperrors.ErrInvalidInput, "wallet not found")
	}
	wallet := snap.Wallets[idx]

	signed := in.Amount
	label := "Income"
	if in.Type == models.TransactionTypeExpense {
		if !wallet.CanCover(in.Amount) {
			return snap, apperrors.ErrInsufficientBalance
		}
		signed = in.Amount.Neg()
		label = "Expense"
	}

	note := in.Note
	if note == "" {
		note = fmt.Sprintf("%s - %s", label, category)
	}

	next := snap.Clone()
	next.Wallets[idx].Balance = wallet.Balance.Add(signed)
	tx := models.Transaction{
		ID:       e.newID(),
		Amount:   signed,
		Category: category,
		Wallet:   wallet.Name,
		Type:     in.Type,
		Note:     note,
		Date:     e.now(),
	}
	next.Transactions = prepend(next.Transactions, tx)
	return next, nil
}

// Transfer moves money between two distinct wallets. It records an outflow
// on the source and an inflow on the target; the inflow is placed first.
func (e *Engine) Transfer(snap models.Snapshot, in TransferInput) (models.Snapshot, error) {
	if !in.Amount.IsPositive() {
		return snap, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if in.SourceID == "" || in.TargetID == "" {
		return snap, apperrors.WithMessage(apperrors.ErrInvalidInput, "source and target wallets are required")
	}
	if in.SourceID == in.TargetID {
		return snap, apperrors.ErrSameWalletTransfer
	}

	srcIdx, dstIdx := snap.WalletIndex(in.SourceID), snap.WalletIndex(in.TargetID)
	if srcIdx < 0 || dstIdx < 0 {
		return snap, apperrors.WithMessage(apperrors.ErrInvalidInput, "wallet not found")
	}
	source, target := snap.Wallets[srcIdx], snap.Wallets[dstIdx]
	if !source.CanCover(in.Amount) {
		return snap, apperrors.ErrInsufficientBalance
	}

	outNote, inNote := in.Note, in.Note
	if in.Note == "" {
		outNote = "Transfer to " + target.Name
		inNote = "Transfer from " + source.Name
	}

	at := e.now()
	outflow := models.Transaction{
		ID:       e.newID(),
		Amount:   in.Amount.Neg(),
		Category: models.CategoryTransfer,
		Wallet:   source.Name,
		Type:     models.TransactionTypeTransfer,
		Note:     outNote,
		Date:     at,
	}
	inflow := models.Transaction{
		ID:       e.newID(),
		Amount:   in.Amount,
		Category: models.CategoryTransfer,
		Wallet:   target.Name,
		Type:     models.TransactionTypeTransfer,
		Note:     inNote,
		Date:     at,
	}

	next := snap.Clone()
	next.Wallets[srcIdx].Balance = source.Balance.Sub(in.Amount)
	next.Wallets[dstIdx].Balance = target.Balance.Add(in.Amount)
	next.Transactions = prepend(next.Transactions, inflow, outflow)
	return next, nil
}

// Contribute debits a wallet and credits a saving goal. The credit is
// clamped at the goal target while the wallet is still debited the full
// amount; the overshoot is not refunded.
func (e *Engine) Contribute(snap models.Snapshot, in ContributeInput) (models.Snapshot, error) {
	if !in.Amount.IsPositive() {
		return snap, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if in.GoalID == "" || in.WalletID == "" {
		return snap, apperrors.WithMessage(apperrors.ErrInvalidInput, "goal and wallet are required")
	}

	goalIdx := snap.GoalIndex(in.GoalID)
	if goalIdx < 0 {
		return snap, apperrors.WithMessage(apperrors.ErrInvalidInput, "saving goal not found")
	}
	walletIdx := snap.WalletIndex(in.WalletID)
	if walletIdx < 0 {
		return snap, apperrors.WithMessage(apperrors.ErrInvalidInput, "wallet not found")
	}
	goal, wallet := snap.Goals[goalIdx], snap.Wallets[walletIdx]
	if !wallet.CanCover(in.Amount) {
		return snap, apperrors.ErrInsufficientBalance
	}

	note := in.Note
	if note == "" {
		note = "Contribution to " + goal.Name
	}

	next := snap.Clone()
	next.Goals[goalIdx].Saved = decimal.Min(goal.Saved.Add(in.Amount), goal.Target)
	next.Wallets[walletIdx].Balance = wallet.Balance.Sub(in.Amount)
	tx := models.Transaction{
		ID:       e.newID(),
		Amount:   in.Amount.Neg(),
		Category: models.CategorySavings,
		Wallet:   wallet.Name,
		Type:     models.TransactionTypeExpense,
		Note:     note,
		Date:     e.now(),
	}
	next.Transactions = prepend(next.Transactions, tx)
	return next, nil
}

// DeleteGoal removes a saving goal. Contributions already made stay in the
// wallets' history; deleting an unknown goal is a no-op.
func (e *Engine) DeleteGoal(snap models.Snapshot, goalID string) models.Snapshot {
	idx := snap.GoalIndex(goalID)
	if idx < 0 {
		return snap
	}
	next := snap.Clone()
	next.Goals = append(next.Goals[:idx], next.Goals[idx+1:]...)
	return next
}

// CreateGoal appends a new, empty saving goal.
func (e *Engine) CreateGoal(snap models.Snapshot, in GoalInput) (models.Snapshot, models.SavingGoal, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return snap, models.SavingGoal{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "goal name is required")
	}
	if !in.Target.IsPositive() {
		return snap, models.SavingGoal{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "target must be greater than zero")
	}

	goal := models.SavingGoal{
		ID:     e.newID(),
		Name:   name,
		Target: in.Target,
		Saved:  decimal.Zero,
	}
	next := snap.Clone()
	next.Goals = append(next.Goals, goal)
	return next, goal, nil
}

// prepend returns head followed by tail in a fresh slice.
func prepend(tail []models.Transaction, head ...models.Transaction) []models.Transaction {
	out := make([]models.Transaction, 0, len(head)+len(tail))
	out = append(out, head...)
	return append(out, tail...)
}
