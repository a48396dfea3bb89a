package models

// Snapshot is the full ledger state at a point in time. Transactions are
// ordered most-recent-first.
type Snapshot struct {
	Wallets      []Wallet      `json:"wallets"`
	Transactions []Transaction `json:"transactions"`
	Goals        []SavingGoal  `json:"saving_goals"`
}

// Clone returns a snapshot whose slices do not alias s. Nil collections come
// back empty so they always encode as JSON arrays.
func (s Snapshot) Clone() Snapshot {
	return Snapshot{
		Wallets:      cloneSlice(s.Wallets),
		Transactions: cloneSlice(s.Transactions),
		Goals:        cloneSlice(s.Goals),
	}
}

func cloneSlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}

// WalletIndex returns the position of the wallet with the given id, or -1.
func (s Snapshot) WalletIndex(id string) int {
	for i := range s.Wallets {
		if s.Wallets[i].ID == id {
			return i
		}
	}
	return -1
}

// GoalIndex returns the position of the goal with the given id, or -1.
func (s Snapshot) GoalIndex(id string) int {
	for i := range s.Goals {
		if s.Goals[i].ID == id {
			return i
		}
	}
	return -1
}
