package models

// Participant name reserved for the account owner. Friends are any other
// name in a transaction's split.
const Me = "Me"

// Split types supported by a transaction.
const (
	// SplitEqual divides the amount evenly across SplitAmong.
	SplitEqual = "equal"
	// SplitCustom takes each participant's share from CustomSplits.
	SplitCustom = "custom"
)

// Transaction represents a single expense or income entry.
type Transaction struct {
	// ID is unique within a user's collection and assigned from a
	// per-user monotonic counter by the store.
	ID int64 `json:"id"`

	// Date is the calendar date in ISO 8601 form (YYYY-MM-DD).
	Date string `json:"date"`

	// Desc is a free-text label.
	Desc string `json:"desc"`

	// Amount is signed: negative = expense, positive = income.
	// The magnitude is the total transaction amount.
	Amount float64 `json:"amount"`

	// Category is a free-text tag from the user's suggestion set.
	// Not an enforced enum.
	Category string `json:"category"`

	// PaidBy is the participant who fronted the money ("Me" or a friend name).
	PaidBy string `json:"paidBy"`

	// SplitAmong is the non-empty set of participant names sharing the
	// cost or benefit. Order is irrelevant.
	SplitAmong []string `json:"splitAmong"`

	// SplitType is SplitEqual (default) or SplitCustom.
	SplitType string `json:"splitType,omitempty"`

	// CustomSplits maps participant name to an explicit share amount.
	// Present only when SplitType is SplitCustom; shares should sum to
	// the amount's magnitude (not strictly enforced).
	CustomSplits map[string]float64 `json:"customSplits,omitempty"`

	// CreatedAt is the Unix timestamp when the transaction was recorded.
	CreatedAt int64 `json:"createdAt,omitempty"`
}

// IsExpense reports whether the transaction is an expense (negative amount).
func (t *Transaction) IsExpense() bool { return t.Amount < 0 }

// IsIncome reports whether the transaction is income (positive amount).
func (t *Transaction) IsIncome() bool { return t.Amount > 0 }

// Involves reports whether the named participant is part of the split.
func (t *Transaction) Involves(name string) bool {
	for _, p := range t.SplitAmong {
		if p == name {
			return true
		}
	}
	return false
}
