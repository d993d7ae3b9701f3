package userRepo

import (
	"context"
	"errors"

	"medibook/models"
)

// ErrUserNotFound is returned when no account matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines methods for account data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetByIDs retrieves the users matching the given IDs, keyed by ID.
	GetByIDs(ctx context.Context, ids []string) (map[string]models.User, error)
	// Create inserts a new user record.
	Create(ctx context.Context, user *models.User) error
	// SetActive activates or deactivates an account.
	SetActive(ctx context.Context, id string, active bool) error
}
