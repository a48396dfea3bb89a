// Package summary computes read-only views over a ledger snapshot: totals,
// monthly sums, category breakdowns and goal progress.
package summary

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"personalfinance/internal/models"
)

// RecentLimit is the number of transactions shown on the dashboard.
const RecentLimit = 5

var hundred = decimal.NewFromInt(100)

// TotalBalance sums the balances of all wallets.
func TotalBalance(wallets []models.Wallet) decimal.Decimal {
	total := decimal.Zero
	for _, w := range wallets {
		total = total.Add(w.Balance)
	}
	return total
}

// MonthlyExpenses sums expense magnitudes dated in the same calendar month
// and year as month, evaluated in month's location.
func MonthlyExpenses(transactions []models.Transaction, month time.Time) decimal.Decimal {
	return monthlyTotal(transactions, month, models.TransactionTypeExpense)
}

// MonthlyIncome is MonthlyExpenses for income rows.
func MonthlyIncome(transactions []models.Transaction, month time.Time) decimal.Decimal {
	return monthlyTotal(transactions, month, models.TransactionTypeIncome)
}

func monthlyTotal(transactions []models.Transaction, month time.Time, txType models.TransactionType) decimal.Decimal {
	year, mon, _ := month.Date()
	total := decimal.Zero
	for _, tx := range transactions {
		if tx.Type != txType {
			continue
		}
		y, m, _ := tx.Date.In(month.Location()).Date()
		if y == year && m == mon {
			total = total.Add(tx.Magnitude())
		}
	}
	return total
}

// CategorySpending returns the all-time expense magnitude per category.
func CategorySpending(transactions []models.Transaction) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal)
	for _, tx := range transactions {
		if tx.Type != models.TransactionTypeExpense {
			continue
		}
		out[tx.Category] = out[tx.Category].Add(tx.Magnitude())
	}
	return out
}

// GoalProgressPercent returns 100*saved/target, or 0 for a zero target.
func GoalProgressPercent(goal models.SavingGoal) decimal.Decimal {
	if goal.Target.IsZero() {
		return decimal.Zero
	}
	return goal.Saved.Mul(hundred).Div(goal.Target)
}

// GoalStatus reports whether a goal is still being funded.
func GoalStatus(goal models.SavingGoal) models.GoalStatus {
	return goal.Status()
}

// RecentTransactions returns up to n transactions from the head of the
// most-recent-first history.
func RecentTransactions(transactions []models.Transaction, n int) []models.Transaction {
	if n < 0 {
		n = 0
	}
	if n > len(transactions) {
		n = len(transactions)
	}
	out := make([]models.Transaction, n)
	copy(out, transactions[:n])
	return out
}

// CategoryAmount is one row of a spending breakdown.
type CategoryAmount struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// GoalProgress pairs a goal with its derived progress.
type GoalProgress struct {
	models.SavingGoal
	Percent decimal.Decimal   `json:"percent"`
	Status  models.GoalStatus `json:"status"`
}

// NewGoalProgress derives progress for one goal. Percent is rounded to two
// decimal places.
func NewGoalProgress(goal models.SavingGoal) GoalProgress {
	return GoalProgress{
		SavingGoal: goal,
		Percent:    GoalProgressPercent(goal).Round(2),
		Status:     GoalStatus(goal),
	}
}

// DashboardView bundles every derived view shown on the home screen.
type DashboardView struct {
	Month              string               `json:"month"`
	TotalBalance       decimal.Decimal      `json:"total_balance"`
	MonthlyIncome      decimal.Decimal      `json:"monthly_income"`
	MonthlyExpenses    decimal.Decimal      `json:"monthly_expenses"`
	CategorySpending   []CategoryAmount     `json:"category_spending"`
	RecentTransactions []models.Transaction `json:"recent_transactions"`
	Goals              []GoalProgress       `json:"goals"`
}

// Dashboard computes the dashboard for the calendar month containing month.
func Dashboard(snap models.Snapshot, month time.Time) DashboardView {
	spending := CategorySpending(snap.Transactions)
	breakdown := make([]CategoryAmount, 0, len(spending))
	for category, amount := range spending {
		breakdown = append(breakdown, CategoryAmount{Category: category, Amount: amount})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if c := breakdown[i].Amount.Cmp(breakdown[j].Amount); c != 0 {
			return c > 0
		}
		return breakdown[i].Category < breakdown[j].Category
	})

	goals := make([]GoalProgress, 0, len(snap.Goals))
	for _, g := range snap.Goals {
		goals = append(goals, NewGoalProgress(g))
	}

	return DashboardView{
		Month:              month.Format("2006-01"),
		TotalBalance:       TotalBalance(snap.Wallets),
		MonthlyIncome:      MonthlyIncome(snap.Transactions, month),
		MonthlyExpenses:    MonthlyExpenses(snap.Transactions, month),
		CategorySpending:   breakdown,
		RecentTransactions: RecentTransactions(snap.Transactions, RecentLimit),
		Goals:              goals,
	}
}
