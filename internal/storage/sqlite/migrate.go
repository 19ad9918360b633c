package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bachex/bachex/internal/storage"
)

// CopyUserData copies every collection from one user namespace into another
// in a single SQL transaction. Existing target rows with the same keys are
// replaced (transactions, salary) or left alone (friends); the target's
// transaction counter is raised so future IDs never collide with copied ones.
func (s *SQLiteStore) CopyUserData(ctx context.Context, fromUserID, toUserID string) (*storage.MigrationReport, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	report := &storage.MigrationReport{}

	result, err := tx.ExecContext(ctx,
		`INSERT OR REPLACE INTO transactions
		     (user_id, id, date, description, amount, category, paid_by, split_type, created_at)
		 SELECT ?, id, date, description, amount, category, paid_by, split_type, created_at
		 FROM transactions WHERE user_id = ?`,
		toUserID, fromUserID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to copy transactions: %w", err)
	}
	copied, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to count copied transactions: %w", err)
	}
	report.Transactions = int(copied)

	if _, err := tx.ExecContext(ctx,
		`INSERT OR REPLACE INTO transaction_splits (user_id, transaction_id, participant, share)
		 SELECT ?, transaction_id, participant, share
		 FROM transaction_splits WHERE user_id = ?`,
		toUserID, fromUserID,
	); err != nil {
		return nil, fmt.Errorf("failed to copy splits: %w", err)
	}

	result, err = tx.ExecContext(ctx,
		`INSERT OR IGNORE INTO friends (user_id, name)
		 SELECT ?, name FROM friends WHERE user_id = ?`,
		toUserID, fromUserID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to copy friends: %w", err)
	}
	copied, err = result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to count copied friends: %w", err)
	}
	report.Friends = int(copied)

	var salaryExists int
	err = tx.QueryRowContext(ctx,
		"SELECT 1 FROM salaries WHERE user_id = ?", fromUserID,
	).Scan(&salaryExists)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to check legacy salary: %w", err)
	}
	if err == nil {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO salaries (user_id, amount, received_date, previous_balance)
			 SELECT ?, amount, received_date, previous_balance
			 FROM salaries WHERE user_id = ?`,
			toUserID, fromUserID,
		); err != nil {
			return nil, fmt.Errorf("failed to copy salary: %w", err)
		}
		report.Salary = true
	}

	// Raise the target counter to cover both its own IDs and the copied
	// ones. COALESCE handles a target with no transactions yet.
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO transaction_counters (user_id, last_id)
		 VALUES (?, (SELECT COALESCE(MAX(id), 0) FROM transactions WHERE user_id = ?))
		 ON CONFLICT(user_id) DO UPDATE SET last_id = MAX(last_id, excluded.last_id)`,
		toUserID, toUserID,
	); err != nil {
		return nil, fmt.Errorf("failed to update transaction counter: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return report, nil
}
