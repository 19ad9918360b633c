// Command seed fills a database with demo data for local development:
// one user (demo@bachex.local / password "demo-pass-123"), a handful of
// friends and a few months of plausible transactions.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"

	"github.com/bachex/bachex/internal/models"
	"github.com/bachex/bachex/internal/storage/sqlite"
	"github.com/bachex/bachex/pkg/logging"
)

const (
	demoEmail    = "demo@bachex.local"
	demoPassword = "demo-pass-123"
)

func main() {
	dbPath := flag.String("db", "data/bachex.db", "path to the SQLite database")
	months := flag.Int("months", 3, "months of history to generate")
	perMonth := flag.Int("per-month", 20, "transactions per month")
	seed := flag.Int64("seed", 0, "random seed (0 = time-based)")
	flag.Parse()

	logging.Setup("info")

	if *seed != 0 {
		gofakeit.Seed(*seed)
	}

	store, err := sqlite.New(*dbPath)
	if err != nil {
		slog.Error("Failed to open storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	ctx := context.Background()
	if err := run(ctx, store, *months, *perMonth); err != nil {
		slog.Error("Seeding failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, store *sqlite.SQLiteStore, months, perMonth int) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}

	user := models.NewUser(demoEmail, "Demo User", string(hash))
	if err := store.CreateUser(ctx, user); err != nil {
		return fmt.Errorf("failed to create demo user: %w", err)
	}
	slog.Info("Demo user created", "email", demoEmail, "password", demoPassword)

	friends := make([]string, 0, 4)
	for len(friends) < 4 {
		name := gofakeit.FirstName()
		if err := store.AddFriend(ctx, user.ID, name); err != nil {
			continue
		}
		friends = append(friends, name)
	}
	slog.Info("Friends added", "friends", friends)

	all, err := store.ListCategories(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("failed to list categories: %w", err)
	}
	// Settlements are only created through the settle endpoint.
	categories := make([]string, 0, len(all))
	for _, c := range all {
		if c != models.SettleCategory {
			categories = append(categories, c)
		}
	}

	now := time.Now()
	count := 0
	for m := 0; m < months; m++ {
		monthStart := now.AddDate(0, -m, 0)
		for i := 0; i < perMonth; i++ {
			t := randomTransaction(monthStart, friends, categories)
			if err := store.CreateTransaction(ctx, user.ID, &t); err != nil {
				return fmt.Errorf("failed to create transaction: %w", err)
			}
			count++
		}
	}
	slog.Info("Transactions created", "count", count)

	salary := &models.Salary{
		Amount:          math.Round(gofakeit.Float64Range(30000, 90000)),
		ReceivedDate:    now.AddDate(0, 0, -now.Day()+1).Format("2006-01-02"),
		PreviousBalance: math.Round(gofakeit.Float64Range(0, 20000)),
	}
	if err := store.SetSalary(ctx, user.ID, salary); err != nil {
		return fmt.Errorf("failed to set salary: %w", err)
	}
	slog.Info("Salary set", "amount", salary.Amount)

	return nil
}

func randomTransaction(monthStart time.Time, friends, categories []string) models.Transaction {
	day := gofakeit.Number(1, 28)
	date := time.Date(monthStart.Year(), monthStart.Month(), day, 0, 0, 0, 0, time.UTC)

	// Roughly one in six entries is income.
	if gofakeit.Number(0, 5) == 0 {
		return models.Transaction{
			Date:       date.Format("2006-01-02"),
			Desc:       gofakeit.Company() + " payout",
			Amount:     math.Round(gofakeit.Float64Range(500, 5000)),
			Category:   "Income",
			PaidBy:     models.Me,
			SplitAmong: []string{models.Me},
			SplitType:  models.SplitEqual,
		}
	}

	split := []string{models.Me}
	if gofakeit.Bool() {
		split = append(split, friends[gofakeit.Number(0, len(friends)-1)])
	}
	paidBy := split[gofakeit.Number(0, len(split)-1)]

	category := "Other"
	if len(categories) > 0 {
		category = categories[gofakeit.Number(0, len(categories)-1)]
	}

	return models.Transaction{
		Date:       date.Format("2006-01-02"),
		Desc:       gofakeit.ProductName(),
		Amount:     -math.Round(gofakeit.Float64Range(50, 2000)),
		Category:   category,
		PaidBy:     paidBy,
		SplitAmong: split,
		SplitType:  models.SplitEqual,
	}
}
