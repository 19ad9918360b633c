package engine

import (
	"math"

	"github.com/bachex/bachex/internal/models"
)

// NewSettlement synthesizes the transaction recorded when the user confirms
// a real-world payment with a friend. The transaction is split among "Me"
// only, so it never re-enters the general split aggregation:
//
//   - balance >= 0 (friend owed the user): the friend is recorded as the
//     payer of an income-like inflow of the full balance.
//   - balance < 0 (the user owes the friend): an expense paid by the user.
//
// The caller appends the result to the normal transaction collection; there
// is no separate settlement ledger.
func NewSettlement(friend string, balance float64, date string) models.Transaction {
	t := models.Transaction{
		Date:       date,
		Desc:       "Settlement with " + friend,
		Category:   models.SettleCategory,
		SplitAmong: []string{models.Me},
		SplitType:  models.SplitEqual,
	}
	if balance >= 0 {
		t.Amount = balance
		t.PaidBy = friend
	} else {
		t.Amount = -math.Abs(balance)
		t.PaidBy = models.Me
	}
	return t
}
