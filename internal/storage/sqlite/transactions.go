package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/bachex/bachex/internal/models"
	"github.com/bachex/bachex/internal/storage"
)

// ListTransactions returns all of a user's transactions, newest first.
func (s *SQLiteStore) ListTransactions(ctx context.Context, userID string) ([]models.Transaction, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, date, description, amount, category, paid_by, split_type, created_at
		 FROM transactions WHERE user_id = ? ORDER BY date DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.Date, &t.Desc, &t.Amount, &t.Category,
			&t.PaidBy, &t.SplitType, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	for i := range transactions {
		if err := s.loadSplits(ctx, userID, &transactions[i]); err != nil {
			return nil, err
		}
	}
	return transactions, nil
}

func (s *SQLiteStore) loadSplits(ctx context.Context, userID string, t *models.Transaction) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT participant, share FROM transaction_splits
		 WHERE user_id = ? AND transaction_id = ? ORDER BY participant`,
		userID, t.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get splits: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var participant string
		var share sql.NullFloat64
		if err := rows.Scan(&participant, &share); err != nil {
			return fmt.Errorf("failed to scan split: %w", err)
		}
		t.SplitAmong = append(t.SplitAmong, participant)
		if share.Valid {
			if t.CustomSplits == nil {
				t.CustomSplits = make(map[string]float64)
			}
			t.CustomSplits[participant] = share.Float64
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate splits: %w", err)
	}
	return nil
}

// CreateTransaction persists a transaction, assigning the next ID from the
// user's monotonic counter. The counter bump, the transaction row and its
// split rows commit atomically.
func (s *SQLiteStore) CreateTransaction(ctx context.Context, userID string, t *models.Transaction) error {
	if t.SplitType == "" {
		t.SplitType = models.SplitEqual
	}
	if t.CreatedAt == 0 {
		t.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx,
		`INSERT INTO transaction_counters (user_id, last_id) VALUES (?, 1)
		 ON CONFLICT(user_id) DO UPDATE SET last_id = last_id + 1
		 RETURNING last_id`,
		userID,
	).Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("failed to bump transaction counter: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO transactions (user_id, id, date, description, amount, category, paid_by, split_type, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		userID, t.ID, t.Date, t.Desc, t.Amount, t.Category, t.PaidBy, t.SplitType, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	for _, participant := range t.SplitAmong {
		var share interface{}
		if t.SplitType == models.SplitCustom {
			if v, ok := t.CustomSplits[participant]; ok {
				share = v
			}
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO transaction_splits (user_id, transaction_id, participant, share) VALUES (?, ?, ?, ?)",
			userID, t.ID, participant, share,
		); err != nil {
			return fmt.Errorf("failed to insert split: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteTransaction removes one transaction and its splits.
func (s *SQLiteStore) DeleteTransaction(ctx context.Context, userID string, id int64) error {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM transactions WHERE user_id = ? AND id = ?",
		userID, id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("transaction %d: %w", id, storage.ErrNotFound)
	}
	return nil
}
