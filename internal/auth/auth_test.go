package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bachex/bachex/internal/models"
)

// memoryUserStorage is an in-memory UserStorage for tests.
type memoryUserStorage struct {
	byID    map[string]*models.User
	byEmail map[string]*models.User
}

func newMemoryUserStorage() *memoryUserStorage {
	return &memoryUserStorage{
		byID:    make(map[string]*models.User),
		byEmail: make(map[string]*models.User),
	}
}

func (m *memoryUserStorage) CreateUser(_ context.Context, user *models.User) error {
	m.byID[user.ID] = user
	m.byEmail[user.Email] = user
	return nil
}

func (m *memoryUserStorage) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	return m.byEmail[email], nil
}

func (m *memoryUserStorage) GetUserByID(_ context.Context, id string) (*models.User, error) {
	return m.byID[id], nil
}

func (m *memoryUserStorage) UpdatePassword(_ context.Context, userID, hash string) error {
	user, ok := m.byID[userID]
	if !ok {
		return errors.New("user not found")
	}
	user.PasswordHash = hash
	return nil
}

func TestPasswordAuthenticator(t *testing.T) {
	ctx := context.Background()
	authn := NewPasswordAuthenticator(newMemoryUserStorage())

	t.Run("register and authenticate", func(t *testing.T) {
		user, err := authn.Register(ctx, "Dev@Example.com", "Dev", "hunter2hunter2")
		if err != nil {
			t.Fatalf("Register failed: %v", err)
		}
		if user.Email != "dev@example.com" {
			t.Errorf("email not normalized: %s", user.Email)
		}
		if user.ID == "" || user.CreatedAt == 0 {
			t.Error("expected generated ID and CreatedAt")
		}

		// Email lookup is case-insensitive on login too.
		got, err := authn.Authenticate(ctx, "DEV@example.COM", "hunter2hunter2")
		if err != nil {
			t.Fatalf("Authenticate failed: %v", err)
		}
		if got.ID != user.ID {
			t.Errorf("authenticated wrong user: %s", got.ID)
		}
	})

	t.Run("wrong password rejected", func(t *testing.T) {
		if _, err := authn.Authenticate(ctx, "dev@example.com", "wrong-password"); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Authenticate = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		if _, err := authn.Register(ctx, "dev@example.com", "Dev", "hunter2hunter2"); !errors.Is(err, ErrEmailExists) {
			t.Errorf("Register = %v, want ErrEmailExists", err)
		}
	})

	t.Run("weak password rejected", func(t *testing.T) {
		if _, err := authn.Register(ctx, "other@example.com", "Other", "short"); !errors.Is(err, ErrWeakPassword) {
			t.Errorf("Register = %v, want ErrWeakPassword", err)
		}
	})

	t.Run("reset credential", func(t *testing.T) {
		if err := authn.ResetCredential(ctx, "dev@example.com", "new-password-123"); err != nil {
			t.Fatalf("ResetCredential failed: %v", err)
		}
		if _, err := authn.Authenticate(ctx, "dev@example.com", "hunter2hunter2"); err == nil {
			t.Error("old password still accepted after reset")
		}
		if _, err := authn.Authenticate(ctx, "dev@example.com", "new-password-123"); err != nil {
			t.Errorf("new password rejected: %v", err)
		}
	})

	t.Run("reset for unknown email", func(t *testing.T) {
		if err := authn.ResetCredential(ctx, "ghost@example.com", "whatever-123"); !errors.Is(err, ErrUserNotFound) {
			t.Errorf("ResetCredential = %v, want ErrUserNotFound", err)
		}
	})
}

func TestJWTManager(t *testing.T) {
	manager := NewJWTManager("test-secret-key-32-bytes-long!!!", time.Hour)
	user := &models.User{ID: "user-1", Email: "dev@example.com"}

	t.Run("round trip", func(t *testing.T) {
		token, err := manager.Generate(user)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}

		claims, err := manager.Validate(token)
		if err != nil {
			t.Fatalf("Validate failed: %v", err)
		}
		if claims.UserID != user.ID || claims.Email != user.Email {
			t.Errorf("claims = %+v, want user %s / %s", claims, user.ID, user.Email)
		}
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		if _, err := manager.Validate("not.a.token"); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Validate = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		token, err := manager.Generate(user)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		other := NewJWTManager("a-completely-different-secret!!!", time.Hour)
		if _, err := other.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Validate = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("expired token rejected", func(t *testing.T) {
		short := NewJWTManager("test-secret-key-32-bytes-long!!!", -time.Minute)
		token, err := short.Generate(user)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if _, err := short.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Validate = %v, want ErrInvalidToken", err)
		}
	})
}
