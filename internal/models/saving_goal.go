package models

import "github.com/shopspring/decimal"

// GoalStatus is the derived state of a saving goal.
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
)

// SavingGoal is a target amount funded by contributions debited from wallets.
// Saved never exceeds Target.
type SavingGoal struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Target decimal.Decimal `json:"target"`
	Saved  decimal.Decimal `json:"saved"`
}

// Status reports whether the goal has reached its target.
func (g SavingGoal) Status() GoalStatus {
	if g.Saved.GreaterThanOrEqual(g.Target) {
		return GoalStatusCompleted
	}
	return GoalStatusActive
}
