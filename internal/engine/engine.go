// Package engine derives all display-level aggregates from raw transaction,
// friend and salary records: per-friend balances, spending totals, category
// and timeline breakdowns, and the monthly running-balance ledger.
//
// Every function here is pure and deterministic. Inputs are small enough
// that everything is recomputed from scratch on each call; there is no
// incremental or cached state. The engine assumes valid, already-persisted
// input — validation happens at the write boundary (see Validate).
package engine

import (
	"math"
	"sort"

	"github.com/bachex/bachex/internal/models"
)

// timelineDays caps the timeline aggregate to the most recent distinct dates.
const timelineDays = 30

// Summary holds the per-friend balances and aggregate totals for one user.
type Summary struct {
	// Balances maps friend name to a signed amount.
	// Positive = friend owes the user, negative = the user owes the friend.
	Balances map[string]float64 `json:"balances"`

	// TotalSpentByMe is the user's own share across all expenses they
	// participate in, regardless of who paid.
	TotalSpentByMe float64 `json:"totalSpentByMe"`

	// TotalPaidOut is the cash that actually left the user's wallet:
	// the full amount of every expense the user paid for.
	TotalPaidOut float64 `json:"totalPaidOut"`

	// TotalIncome is the user's share of income transactions.
	TotalIncome float64 `json:"totalIncome"`

	// TotalOwedToMe is the sum of positive balances.
	TotalOwedToMe float64 `json:"totalOwedToMe"`

	// TotalIOwe is the sum of magnitudes of negative balances.
	TotalIOwe float64 `json:"totalIOwe"`

	// NetBalance estimates the user's cash on hand:
	// previousBalance + salary + income - paid out. Outstanding friend
	// debts are excluded until a settlement is explicitly recorded,
	// since that cash has not moved yet.
	NetBalance float64 `json:"netBalance"`
}

// CategoryTotal is one category's accumulated share for the user.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// DatePoint is the user's expense share accumulated on one date.
type DatePoint struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

// Share returns the named participant's portion of the transaction amount.
// Equal splits divide the magnitude evenly across SplitAmong; custom splits
// take the explicit per-participant share (zero when absent).
func Share(t *models.Transaction, participant string) float64 {
	if t.SplitType == models.SplitCustom {
		return t.CustomSplits[participant]
	}
	if len(t.SplitAmong) == 0 {
		return 0
	}
	return math.Abs(t.Amount) / float64(len(t.SplitAmong))
}

// Summarize computes balances and aggregate totals over the full transaction
// list. Friends start at zero so settled-up friends still appear; other
// participants get entries as they accumulate.
func Summarize(transactions []models.Transaction, friends []string, salary *models.Salary) Summary {
	s := Summary{Balances: make(map[string]float64, len(friends))}
	for _, f := range friends {
		s.Balances[f] = 0
	}

	for i := range transactions {
		t := &transactions[i]
		myShare := Share(t, models.Me)

		if t.IsIncome() {
			if t.Involves(models.Me) {
				s.TotalIncome += myShare
			}
			// Income does not move inter-person balances.
			continue
		}
		if !t.IsExpense() {
			continue
		}

		if t.PaidBy == models.Me {
			s.TotalPaidOut += math.Abs(t.Amount)
			// Everyone else in the split owes the user their share.
			for _, p := range t.SplitAmong {
				if p == models.Me {
					continue
				}
				s.Balances[p] += Share(t, p)
			}
		} else if t.Involves(models.Me) {
			// A friend fronted money the user benefited from.
			s.Balances[t.PaidBy] -= myShare
		}

		if t.Involves(models.Me) {
			s.TotalSpentByMe += myShare
		}
	}

	for _, amount := range s.Balances {
		if amount > 0 {
			s.TotalOwedToMe += amount
		} else {
			s.TotalIOwe += -amount
		}
	}

	var prev, monthly float64
	if salary != nil {
		prev, monthly = salary.PreviousBalance, salary.Amount
	}
	s.NetBalance = prev + monthly + s.TotalIncome - s.TotalPaidOut

	return s
}

// CategoryTotals accumulates the user's expense share by category, ordered
// descending by total. Zero totals are excluded.
func CategoryTotals(transactions []models.Transaction) []CategoryTotal {
	totals := make(map[string]float64)
	for i := range transactions {
		t := &transactions[i]
		if t.IsExpense() && t.Involves(models.Me) {
			totals[t.Category] += Share(t, models.Me)
		}
	}

	out := make([]CategoryTotal, 0, len(totals))
	for category, total := range totals {
		if total == 0 {
			continue
		}
		out = append(out, CategoryTotal{Category: category, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// Timeline accumulates the user's expense share per date, restricted to the
// most recent distinct dates present, ordered chronologically ascending.
func Timeline(transactions []models.Transaction) []DatePoint {
	byDate := make(map[string]float64)
	for i := range transactions {
		t := &transactions[i]
		if t.IsExpense() && t.Involves(models.Me) {
			byDate[t.Date] += Share(t, models.Me)
		}
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	if len(dates) > timelineDays {
		dates = dates[len(dates)-timelineDays:]
	}

	out := make([]DatePoint, 0, len(dates))
	for _, date := range dates {
		out = append(out, DatePoint{Date: date, Amount: byDate[date]})
	}
	return out
}
