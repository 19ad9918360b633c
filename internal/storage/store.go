// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/bachex/bachex/internal/models"
)

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned on a uniqueness violation, such as adding
	// a friend name or category twice, or registering a taken email.
	ErrDuplicate = errors.New("record already exists")
)

// MigrationReport summarizes what a legacy-namespace migration copied.
type MigrationReport struct {
	Transactions int  `json:"transactions"`
	Friends      int  `json:"friends"`
	Salary       bool `json:"salary"`
}

// Store defines the interface for domain persistence. Every operation is
// scoped to a user ID; implementations must never return one user's records
// for another. The abstraction allows swapping storage backends (SQLite,
// PostgreSQL, etc.) without changing the handler layer.
type Store interface {
	// CreateUser persists a new user. Fails with ErrDuplicate if the
	// email is taken, and seeds the user's default category set.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves a user by lowercased email.
	// Returns (nil, nil) when no such user exists.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves a user by ID. Returns (nil, nil) when missing.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// UpdatePassword replaces the stored password hash for a user.
	UpdatePassword(ctx context.Context, userID, passwordHash string) error

	// ListTransactions returns all of a user's transactions, newest first
	// (date descending, then ID descending).
	ListTransactions(ctx context.Context, userID string) ([]models.Transaction, error)

	// CreateTransaction persists a transaction, assigning the next ID
	// from the user's monotonic counter. The ID and CreatedAt fields are
	// populated on the passed value.
	CreateTransaction(ctx context.Context, userID string, t *models.Transaction) error

	// DeleteTransaction removes one transaction. ErrNotFound if absent.
	DeleteTransaction(ctx context.Context, userID string, id int64) error

	// ListFriends returns the user's friend names, sorted.
	ListFriends(ctx context.Context, userID string) ([]string, error)

	// AddFriend adds a friend name. ErrDuplicate if already present.
	AddFriend(ctx context.Context, userID, name string) error

	// RemoveFriend deletes a friend name; removing an absent name is a no-op.
	RemoveFriend(ctx context.Context, userID, name string) error

	// GetSalary returns the user's salary record, or (nil, nil) when unset.
	GetSalary(ctx context.Context, userID string) (*models.Salary, error)

	// SetSalary creates or overwrites the salary record.
	SetSalary(ctx context.Context, userID string, salary *models.Salary) error

	// DeleteSalary clears the salary record; clearing an unset one is a no-op.
	DeleteSalary(ctx context.Context, userID string) error

	// ListCategories returns the user's category suggestion set, sorted.
	ListCategories(ctx context.Context, userID string) ([]string, error)

	// AddCategory adds a category name. ErrDuplicate if already present.
	AddCategory(ctx context.Context, userID, name string) error

	// RemoveCategory deletes a category name; absent names are a no-op.
	RemoveCategory(ctx context.Context, userID, name string) error

	// CopyUserData copies every collection (transactions, counter,
	// friends, salary) from one user namespace into another. Used for
	// the one-time legacy migration.
	CopyUserData(ctx context.Context, fromUserID, toUserID string) (*MigrationReport, error)

	// Close releases any resources held by the store.
	Close() error
}
