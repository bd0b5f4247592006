package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type InMemoryUserRepository struct {
	users  map[string]*User
	resets map[string]*PasswordReset
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		users:  make(map[string]*User),
		resets: make(map[string]*PasswordReset),
	}
}

func (r *InMemoryUserRepository) Save(user *User) error {
	// Generate UUID if not already set
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	r.users[user.Email] = user
	return nil
}

func (r *InMemoryUserRepository) ExistsByEmail(email string) (bool, error) {
	_, exists := r.users[email]
	return exists, nil
}

func (r *InMemoryUserRepository) FindByEmail(email string) (*User, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, errors.New("user not found")
	}
	return user, nil
}

func (r *InMemoryUserRepository) UpdatePassword(
	ctx context.Context,
	userID string,
	hashed string,
) error {
	for _, u := range r.users {
		if u.ID == userID {
			u.Password = hashed
			return nil
		}
	}
	return errors.New("user not found")
}

func (r *InMemoryUserRepository) CreatePasswordReset(
	ctx context.Context,
	token string,
	userID string,
	expiresAt time.Time,
) error {
	r.resets[token] = &PasswordReset{
		Token:     token,
		UserID:    userID,
		ExpiresAt: expiresAt,
	}
	return nil
}

func (r *InMemoryUserRepository) ConsumePasswordReset(
	ctx context.Context,
	token string,
) (string, error) {
	reset, ok := r.resets[token]
	if !ok || reset.Used || time.Now().After(reset.ExpiresAt) {
		return "", errors.New("invalid or expired token")
	}
	reset.Used = true
	return reset.UserID, nil
}
