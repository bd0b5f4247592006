package auth

import (
	"context"
	"time"
)

// UserRepository defines the data-access contract.
// Service depends ONLY on this interface.
type UserRepository interface {
	Save(user *User) error
	ExistsByEmail(email string) (bool, error)
	FindByEmail(email string) (*User, error)
	UpdatePassword(ctx context.Context, userID string, hashed string) error

	// Password-reset tokens
	CreatePasswordReset(ctx context.Context, token string, userID string, expiresAt time.Time) error
	ConsumePasswordReset(ctx context.Context, token string) (userID string, err error)
}
