package auth

import "time"

const (
	RoleAdmin = "ADMIN"
	RoleOwner = "OWNER"
)

// User is the domain entity.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     string
}

// PasswordReset is a one-time token sent by email.
type PasswordReset struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
	Used      bool
}
