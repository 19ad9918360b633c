package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. All domain records (transactions,
// friends, salary, categories) are keyed by the user's ID.
type User struct {
	// ID is the unique identifier for the user ("user_" + UUID).
	ID string `json:"id"`

	// Email is the user's email address, stored lowercased and unique.
	Email string `json:"email"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Never serialized in API responses.
	PasswordHash string `json:"-"`

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64 `json:"createdAt"`
}

// NewUser creates a User with a generated ID, normalized email and the
// given password hash.
func NewUser(email, name, passwordHash string) *User {
	return &User{
		ID:           "user_" + uuid.New().String(),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		Name:         name,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().Unix(),
	}
}
