package engine

import (
	"math"
	"sort"

	"github.com/bachex/bachex/internal/models"
)

// MonthlyStatement is one month's entry in the running-balance ledger.
type MonthlyStatement struct {
	// Month is the calendar month key (YYYY-MM).
	Month string `json:"month"`

	// Income is the user's share of income transactions in the month.
	Income float64 `json:"income"`

	// Expenses is the full amount of every expense the user paid in the
	// month. This is the cash outflow, so it drives the running balance.
	Expenses float64 `json:"expenses"`

	// MyExpenseShare is the user's own share of expenses in the month.
	// Tracked for reporting; it does not affect the running balance.
	MyExpenseShare float64 `json:"myExpenseShare"`

	// StartingBalance carries over from the previous month's ending
	// balance; the first month starts from Salary.PreviousBalance.
	StartingBalance float64 `json:"startingBalance"`

	// EndingBalance = starting + salary + income - expenses.
	EndingBalance float64 `json:"endingBalance"`

	// Savings mirrors EndingBalance.
	Savings float64 `json:"savings"`
}

// MonthlyStatements groups transactions by calendar month and threads a
// running balance through them, months ascending. The salary amount is
// credited once per month.
func MonthlyStatements(transactions []models.Transaction, salary *models.Salary) []MonthlyStatement {
	type bucket struct {
		income         float64
		expenses       float64
		myExpenseShare float64
	}
	buckets := make(map[string]*bucket)

	for i := range transactions {
		t := &transactions[i]
		if len(t.Date) < 7 {
			continue
		}
		month := t.Date[:7]
		b := buckets[month]
		if b == nil {
			b = &bucket{}
			buckets[month] = b
		}

		if t.IsIncome() && t.Involves(models.Me) {
			b.income += Share(t, models.Me)
		}
		if t.IsExpense() {
			if t.PaidBy == models.Me {
				b.expenses += math.Abs(t.Amount)
			}
			if t.Involves(models.Me) {
				b.myExpenseShare += Share(t, models.Me)
			}
		}
	}

	months := make([]string, 0, len(buckets))
	for month := range buckets {
		months = append(months, month)
	}
	sort.Strings(months)

	var prev, monthly float64
	if salary != nil {
		prev, monthly = salary.PreviousBalance, salary.Amount
	}

	out := make([]MonthlyStatement, 0, len(months))
	running := prev
	for _, month := range months {
		b := buckets[month]
		ending := running + monthly + b.income - b.expenses
		out = append(out, MonthlyStatement{
			Month:           month,
			Income:          b.income,
			Expenses:        b.expenses,
			MyExpenseShare:  b.myExpenseShare,
			StartingBalance: running,
			EndingBalance:   ending,
			Savings:         ending,
		})
		running = ending
	}
	return out
}
