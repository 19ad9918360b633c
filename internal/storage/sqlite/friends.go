package sqlite

import (
	"context"
	"fmt"

	"github.com/bachex/bachex/internal/storage"
)

// ListFriends returns the user's friend names, sorted.
func (s *SQLiteStore) ListFriends(ctx context.Context, userID string) ([]string, error) {
	return s.listNames(ctx, "SELECT name FROM friends WHERE user_id = ? ORDER BY name", userID)
}

// AddFriend adds a friend name; names are unique per user.
func (s *SQLiteStore) AddFriend(ctx context.Context, userID, name string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO friends (user_id, name) VALUES (?, ?)",
		userID, name,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("friend %s: %w", name, storage.ErrDuplicate)
	}
	if err != nil {
		return fmt.Errorf("failed to add friend: %w", err)
	}
	return nil
}

// RemoveFriend deletes a friend name. Removing an absent name is a no-op,
// matching set-removal semantics.
func (s *SQLiteStore) RemoveFriend(ctx context.Context, userID, name string) error {
	if _, err := s.db.ExecContext(ctx,
		"DELETE FROM friends WHERE user_id = ? AND name = ?",
		userID, name,
	); err != nil {
		return fmt.Errorf("failed to remove friend: %w", err)
	}
	return nil
}

// ListCategories returns the user's category suggestion set, sorted.
func (s *SQLiteStore) ListCategories(ctx context.Context, userID string) ([]string, error) {
	return s.listNames(ctx, "SELECT name FROM categories WHERE user_id = ? ORDER BY name", userID)
}

// AddCategory adds a category name to the user's suggestion set.
func (s *SQLiteStore) AddCategory(ctx context.Context, userID, name string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO categories (user_id, name) VALUES (?, ?)",
		userID, name,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("category %s: %w", name, storage.ErrDuplicate)
	}
	if err != nil {
		return fmt.Errorf("failed to add category: %w", err)
	}
	return nil
}

// RemoveCategory deletes a category name from the user's suggestion set.
func (s *SQLiteStore) RemoveCategory(ctx context.Context, userID, name string) error {
	if _, err := s.db.ExecContext(ctx,
		"DELETE FROM categories WHERE user_id = ? AND name = ?",
		userID, name,
	); err != nil {
		return fmt.Errorf("failed to remove category: %w", err)
	}
	return nil
}

func (s *SQLiteStore) listNames(ctx context.Context, query, userID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate names: %w", err)
	}
	return names, nil
}
