package engine

import (
	"fmt"
	"math"
	"testing"

	"github.com/bachex/bachex/internal/models"
)

const tolerance = 0.01

func approx(got, want float64) bool {
	return math.Abs(got-want) <= tolerance
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name         string
		transactions []models.Transaction
		friends      []string
		salary       *models.Salary
		validateFunc func(t *testing.T, s Summary)
	}{
		{
			name: "equal three-way split paid by me",
			transactions: []models.Transaction{
				{Amount: -300, PaidBy: "Me", SplitAmong: []string{"Me", "Alice", "Bob"}},
			},
			friends: []string{"Alice", "Bob"},
			validateFunc: func(t *testing.T, s Summary) {
				if !approx(s.Balances["Alice"], 100) {
					t.Errorf("Alice balance = %v, want 100", s.Balances["Alice"])
				}
				if !approx(s.Balances["Bob"], 100) {
					t.Errorf("Bob balance = %v, want 100", s.Balances["Bob"])
				}
				if !approx(s.TotalPaidOut, 300) {
					t.Errorf("TotalPaidOut = %v, want 300", s.TotalPaidOut)
				}
				if !approx(s.TotalSpentByMe, 100) {
					t.Errorf("TotalSpentByMe = %v, want 100", s.TotalSpentByMe)
				}
				if !approx(s.TotalOwedToMe, 200) {
					t.Errorf("TotalOwedToMe = %v, want 200", s.TotalOwedToMe)
				}
			},
		},
		{
			name: "friend paid, I owe my share",
			transactions: []models.Transaction{
				{Amount: -300, PaidBy: "Alice", SplitAmong: []string{"Me", "Alice"}},
			},
			friends: []string{"Alice"},
			validateFunc: func(t *testing.T, s Summary) {
				if !approx(s.Balances["Alice"], -150) {
					t.Errorf("Alice balance = %v, want -150", s.Balances["Alice"])
				}
				if !approx(s.TotalPaidOut, 0) {
					t.Errorf("TotalPaidOut = %v, want 0", s.TotalPaidOut)
				}
				if !approx(s.TotalSpentByMe, 150) {
					t.Errorf("TotalSpentByMe = %v, want 150", s.TotalSpentByMe)
				}
				if !approx(s.TotalIOwe, 150) {
					t.Errorf("TotalIOwe = %v, want 150", s.TotalIOwe)
				}
			},
		},
		{
			name: "income does not move balances",
			transactions: []models.Transaction{
				{Amount: 5000, PaidBy: "Me", SplitAmong: []string{"Me"}},
			},
			friends: []string{"Alice"},
			validateFunc: func(t *testing.T, s Summary) {
				if !approx(s.TotalIncome, 5000) {
					t.Errorf("TotalIncome = %v, want 5000", s.TotalIncome)
				}
				if !approx(s.Balances["Alice"], 0) {
					t.Errorf("Alice balance = %v, want 0", s.Balances["Alice"])
				}
				if !approx(s.NetBalance, 5000) {
					t.Errorf("NetBalance = %v, want 5000", s.NetBalance)
				}
			},
		},
		{
			name:         "salary only",
			transactions: nil,
			friends:      nil,
			salary:       &models.Salary{Amount: 30000, PreviousBalance: 1000},
			validateFunc: func(t *testing.T, s Summary) {
				if !approx(s.NetBalance, 31000) {
					t.Errorf("NetBalance = %v, want 31000", s.NetBalance)
				}
			},
		},
		{
			name: "custom splits use explicit shares",
			transactions: []models.Transaction{
				{
					Amount:       -100,
					PaidBy:       "Me",
					SplitAmong:   []string{"Me", "Alice"},
					SplitType:    models.SplitCustom,
					CustomSplits: map[string]float64{"Me": 30, "Alice": 70},
				},
			},
			friends: []string{"Alice"},
			validateFunc: func(t *testing.T, s Summary) {
				if !approx(s.Balances["Alice"], 70) {
					t.Errorf("Alice balance = %v, want 70", s.Balances["Alice"])
				}
				if !approx(s.TotalSpentByMe, 30) {
					t.Errorf("TotalSpentByMe = %v, want 30", s.TotalSpentByMe)
				}
				if !approx(s.TotalPaidOut, 100) {
					t.Errorf("TotalPaidOut = %v, want 100", s.TotalPaidOut)
				}
			},
		},
		{
			name: "self paid, self split nets to zero",
			transactions: []models.Transaction{
				{Amount: -80, PaidBy: "Me", SplitAmong: []string{"Me"}},
			},
			friends: []string{"Alice"},
			validateFunc: func(t *testing.T, s Summary) {
				if !approx(s.Balances["Alice"], 0) {
					t.Errorf("Alice balance = %v, want 0", s.Balances["Alice"])
				}
				if !approx(s.TotalSpentByMe, 80) {
					t.Errorf("TotalSpentByMe = %v, want 80", s.TotalSpentByMe)
				}
				if !approx(s.TotalPaidOut, 80) {
					t.Errorf("TotalPaidOut = %v, want 80", s.TotalPaidOut)
				}
			},
		},
		{
			name: "expense not involving me leaves my totals alone",
			transactions: []models.Transaction{
				{Amount: -90, PaidBy: "Me", SplitAmong: []string{"Alice", "Bob", "Charlie"}},
			},
			friends: []string{"Alice", "Bob", "Charlie"},
			validateFunc: func(t *testing.T, s Summary) {
				if !approx(s.TotalSpentByMe, 0) {
					t.Errorf("TotalSpentByMe = %v, want 0", s.TotalSpentByMe)
				}
				if !approx(s.TotalPaidOut, 90) {
					t.Errorf("TotalPaidOut = %v, want 90", s.TotalPaidOut)
				}
				for _, f := range []string{"Alice", "Bob", "Charlie"} {
					if !approx(s.Balances[f], 30) {
						t.Errorf("%s balance = %v, want 30", f, s.Balances[f])
					}
				}
			},
		},
		{
			name:         "no friends, no transactions",
			transactions: nil,
			friends:      nil,
			validateFunc: func(t *testing.T, s Summary) {
				if len(s.Balances) != 0 {
					t.Errorf("expected empty balances, got %v", s.Balances)
				}
				if !approx(s.NetBalance, 0) {
					t.Errorf("NetBalance = %v, want 0", s.NetBalance)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.transactions, tt.friends, tt.salary)
			tt.validateFunc(t, got)
		})
	}
}

func TestSummarizeNetBalanceExcludesDebts(t *testing.T) {
	// Alice owes 100, but no settlement has been recorded: the debt must
	// not leak into the cash-on-hand estimate.
	transactions := []models.Transaction{
		{Amount: -200, PaidBy: "Me", SplitAmong: []string{"Me", "Alice"}},
	}
	s := Summarize(transactions, []string{"Alice"}, &models.Salary{Amount: 1000})

	if !approx(s.Balances["Alice"], 100) {
		t.Errorf("Alice balance = %v, want 100", s.Balances["Alice"])
	}
	if !approx(s.NetBalance, 800) { // 1000 - 200 paid out
		t.Errorf("NetBalance = %v, want 800", s.NetBalance)
	}
}

func TestSummarizeIdempotent(t *testing.T) {
	transactions := []models.Transaction{
		{Amount: -300, PaidBy: "Me", SplitAmong: []string{"Me", "Alice", "Bob"}},
		{Amount: -120, PaidBy: "Alice", SplitAmong: []string{"Me", "Alice"}},
		{Amount: 5000, PaidBy: "Me", SplitAmong: []string{"Me"}},
	}
	friends := []string{"Alice", "Bob"}
	salary := &models.Salary{Amount: 30000, PreviousBalance: 500}

	first := Summarize(transactions, friends, salary)
	second := Summarize(transactions, friends, salary)

	if first.NetBalance != second.NetBalance || first.TotalSpentByMe != second.TotalSpentByMe {
		t.Errorf("recomputation diverged: %+v vs %+v", first, second)
	}
	for name, amount := range first.Balances {
		if second.Balances[name] != amount {
			t.Errorf("balance for %s diverged: %v vs %v", name, amount, second.Balances[name])
		}
	}
}

func TestSummarizePayerParticipantAntisymmetry(t *testing.T) {
	// When the user pays, a friend's accrual must be the exact negative of
	// what the user would accrue if the roles were swapped.
	mine := Summarize([]models.Transaction{
		{Amount: -200, PaidBy: "Me", SplitAmong: []string{"Me", "Alice"}},
	}, []string{"Alice"}, nil)
	theirs := Summarize([]models.Transaction{
		{Amount: -200, PaidBy: "Alice", SplitAmong: []string{"Me", "Alice"}},
	}, []string{"Alice"}, nil)

	if !approx(mine.Balances["Alice"], -theirs.Balances["Alice"]) {
		t.Errorf("expected exact negatives, got %v and %v",
			mine.Balances["Alice"], theirs.Balances["Alice"])
	}
}

func TestCategoryTotals(t *testing.T) {
	transactions := []models.Transaction{
		{Amount: -300, Category: "Rent", PaidBy: "Me", SplitAmong: []string{"Me"}},
		{Amount: -60, Category: "Groceries", PaidBy: "Me", SplitAmong: []string{"Me", "Alice"}},
		{Amount: -40, Category: "Groceries", PaidBy: "Alice", SplitAmong: []string{"Me", "Alice"}},
		// Income and not-my-expense entries are excluded from the breakdown.
		{Amount: 5000, Category: "Salary", PaidBy: "Me", SplitAmong: []string{"Me"}},
		{Amount: -90, Category: "Snacks", PaidBy: "Me", SplitAmong: []string{"Alice"}},
	}

	got := CategoryTotals(transactions)
	want := []CategoryTotal{
		{Category: "Rent", Total: 300},
		{Category: "Groceries", Total: 50},
	}

	if len(got) != len(want) {
		t.Fatalf("got %d categories, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i].Category != want[i].Category || !approx(got[i].Total, want[i].Total) {
			t.Errorf("category %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestTimeline(t *testing.T) {
	t.Run("aggregates by date ascending", func(t *testing.T) {
		transactions := []models.Transaction{
			{Date: "2024-03-02", Amount: -100, PaidBy: "Me", SplitAmong: []string{"Me"}},
			{Date: "2024-03-01", Amount: -40, PaidBy: "Me", SplitAmong: []string{"Me", "Alice"}},
			{Date: "2024-03-02", Amount: -30, PaidBy: "Alice", SplitAmong: []string{"Me", "Alice"}},
		}

		got := Timeline(transactions)
		if len(got) != 2 {
			t.Fatalf("got %d points, want 2: %+v", len(got), got)
		}
		if got[0].Date != "2024-03-01" || !approx(got[0].Amount, 20) {
			t.Errorf("point 0 = %+v, want 2024-03-01 / 20", got[0])
		}
		if got[1].Date != "2024-03-02" || !approx(got[1].Amount, 115) {
			t.Errorf("point 1 = %+v, want 2024-03-02 / 115", got[1])
		}
	})

	t.Run("keeps only the most recent 30 dates", func(t *testing.T) {
		var transactions []models.Transaction
		for day := 1; day <= 40; day++ {
			transactions = append(transactions, models.Transaction{
				Date:       fmt.Sprintf("2024-01-%02d", day%31+1),
				Amount:     -10,
				PaidBy:     "Me",
				SplitAmong: []string{"Me"},
			})
			transactions = append(transactions, models.Transaction{
				Date:       fmt.Sprintf("2024-02-%02d", day%28+1),
				Amount:     -10,
				PaidBy:     "Me",
				SplitAmong: []string{"Me"},
			})
		}

		got := Timeline(transactions)
		if len(got) != 30 {
			t.Fatalf("got %d points, want 30", len(got))
		}
		for i := 1; i < len(got); i++ {
			if got[i-1].Date >= got[i].Date {
				t.Errorf("timeline not ascending at %d: %s >= %s", i, got[i-1].Date, got[i].Date)
			}
		}
		// The oldest dates must have been dropped, not the newest.
		if got[len(got)-1].Date[:7] != "2024-02" {
			t.Errorf("newest point %s should fall in 2024-02", got[len(got)-1].Date)
		}
	})
}

func TestMonthlyStatements(t *testing.T) {
	salary := &models.Salary{Amount: 30000, PreviousBalance: 0}
	transactions := []models.Transaction{
		{Date: "2024-01-10", Amount: -200, PaidBy: "Me", SplitAmong: []string{"Me"}},
		{Date: "2024-02-05", Amount: -1000, PaidBy: "Me", SplitAmong: []string{"Me", "Alice"}},
		{Date: "2024-02-20", Amount: 400, PaidBy: "Me", SplitAmong: []string{"Me"}},
	}

	got := MonthlyStatements(transactions, salary)
	if len(got) != 2 {
		t.Fatalf("got %d statements, want 2: %+v", len(got), got)
	}

	jan := got[0]
	if jan.Month != "2024-01" {
		t.Errorf("month 0 = %s, want 2024-01", jan.Month)
	}
	if !approx(jan.StartingBalance, 0) || !approx(jan.EndingBalance, 29800) {
		t.Errorf("jan balances = %v -> %v, want 0 -> 29800", jan.StartingBalance, jan.EndingBalance)
	}
	if !approx(jan.Savings, jan.EndingBalance) {
		t.Errorf("jan savings = %v, want %v", jan.Savings, jan.EndingBalance)
	}

	feb := got[1]
	if feb.Month != "2024-02" {
		t.Errorf("month 1 = %s, want 2024-02", feb.Month)
	}
	if !approx(feb.StartingBalance, 29800) {
		t.Errorf("feb starting = %v, want 29800 (carried from jan)", feb.StartingBalance)
	}
	// 29800 + 30000 + 400 - 1000
	if !approx(feb.EndingBalance, 59200) {
		t.Errorf("feb ending = %v, want 59200", feb.EndingBalance)
	}
	if !approx(feb.Income, 400) || !approx(feb.Expenses, 1000) {
		t.Errorf("feb income/expenses = %v/%v, want 400/1000", feb.Income, feb.Expenses)
	}
	if !approx(feb.MyExpenseShare, 500) {
		t.Errorf("feb myExpenseShare = %v, want 500", feb.MyExpenseShare)
	}
}

func TestShare(t *testing.T) {
	tests := []struct {
		name        string
		transaction models.Transaction
		participant string
		want        float64
	}{
		{
			name:        "equal split divides magnitude",
			transaction: models.Transaction{Amount: -300, SplitAmong: []string{"Me", "Alice", "Bob"}},
			participant: "Alice",
			want:        100,
		},
		{
			name: "custom split takes explicit share",
			transaction: models.Transaction{
				Amount:       -100,
				SplitAmong:   []string{"Me", "Alice"},
				SplitType:    models.SplitCustom,
				CustomSplits: map[string]float64{"Me": 25, "Alice": 75},
			},
			participant: "Alice",
			want:        75,
		},
		{
			name: "custom split missing participant is zero",
			transaction: models.Transaction{
				Amount:       -100,
				SplitAmong:   []string{"Me", "Alice"},
				SplitType:    models.SplitCustom,
				CustomSplits: map[string]float64{"Alice": 100},
			},
			participant: "Me",
			want:        0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Share(&tt.transaction, tt.participant); !approx(got, tt.want) {
				t.Errorf("Share() = %v, want %v", got, tt.want)
			}
		})
	}
}
