package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bachex/bachex/internal/models"
)

// GetSalary returns the user's salary record, or (nil, nil) when unset.
func (s *SQLiteStore) GetSalary(ctx context.Context, userID string) (*models.Salary, error) {
	salary := &models.Salary{}
	err := s.db.QueryRowContext(ctx,
		"SELECT amount, received_date, previous_balance FROM salaries WHERE user_id = ?",
		userID,
	).Scan(&salary.Amount, &salary.ReceivedDate, &salary.PreviousBalance)
	if err == sql.ErrNoRows {
		return nil, nil // Salary not set
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get salary: %w", err)
	}
	return salary, nil
}

// SetSalary creates or overwrites the singleton salary record.
func (s *SQLiteStore) SetSalary(ctx context.Context, userID string, salary *models.Salary) error {
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO salaries (user_id, amount, received_date, previous_balance)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET
		     amount = excluded.amount,
		     received_date = excluded.received_date,
		     previous_balance = excluded.previous_balance`,
		userID, salary.Amount, salary.ReceivedDate, salary.PreviousBalance,
	); err != nil {
		return fmt.Errorf("failed to set salary: %w", err)
	}
	return nil
}

// DeleteSalary clears the salary record.
func (s *SQLiteStore) DeleteSalary(ctx context.Context, userID string) error {
	if _, err := s.db.ExecContext(ctx,
		"DELETE FROM salaries WHERE user_id = ?",
		userID,
	); err != nil {
		return fmt.Errorf("failed to delete salary: %w", err)
	}
	return nil
}
