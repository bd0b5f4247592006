package auth

import (
	"context"
	"errors"
	"testing"
)

type mockMailer struct {
	welcomeTo    string
	tempPassword string
	resetTo      string
	resetToken   string
}

func (m *mockMailer) SendWelcomeEmail(email, tempPassword string) error {
	m.welcomeTo = email
	m.tempPassword = tempPassword
	return nil
}

func (m *mockMailer) SendResetPasswordEmail(email, token string) error {
	m.resetTo = email
	m.resetToken = token
	return nil
}

func TestCreateOwner_PasswordIsHashedAndMailed(t *testing.T) {
	repo := NewInMemoryUserRepository()
	mailer := &mockMailer{}
	service := NewService(repo, mailer)

	user, err := service.CreateOwner("Test Owner", "owner@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if user.Role != RoleOwner {
		t.Errorf("expected role OWNER, got %s", user.Role)
	}

	if mailer.welcomeTo != "owner@example.com" {
		t.Errorf("welcome email not sent")
	}

	if mailer.tempPassword == "" {
		t.Fatal("no temp password generated")
	}

	stored := repo.users["owner@example.com"]
	if stored == nil {
		t.Fatal("user not found")
	}
	if stored.Password == mailer.tempPassword {
		t.Fatal("password was stored in plain text")
	}
}

func TestCreateOwner_DuplicateEmail(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo, &mockMailer{})

	if _, err := service.CreateOwner("A", "dup@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := service.CreateOwner("B", "dup@example.com"); err == nil {
		t.Fatal("expected error for duplicate email")
	}
}

type failingLookupRepository struct {
	*InMemoryUserRepository
}

func (r *failingLookupRepository) ExistsByEmail(email string) (bool, error) {
	return false, errors.New("store unavailable")
}

func TestCreateOwner_LookupFailureAbortsCreation(t *testing.T) {
	repo := &failingLookupRepository{NewInMemoryUserRepository()}
	mailer := &mockMailer{}
	service := NewService(repo, mailer)

	if _, err := service.CreateOwner("A", "a@example.com"); err == nil {
		t.Fatal("expected error when the email lookup fails")
	}
	if len(repo.users) != 0 {
		t.Fatal("no user should be saved when the email lookup fails")
	}
	if mailer.welcomeTo != "" {
		t.Fatal("no email should be sent when the email lookup fails")
	}
}

func TestPasswordReset_Flow(t *testing.T) {
	repo := NewInMemoryUserRepository()
	mailer := &mockMailer{}
	service := NewService(repo, mailer)

	if _, err := service.CreateOwner("Test Owner", "owner@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx := context.Background()

	if err := service.RequestPasswordReset(ctx, "owner@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mailer.resetToken == "" {
		t.Fatal("no reset token mailed")
	}

	if err := service.ConfirmPasswordReset(ctx, mailer.resetToken, "newSecret123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Token is one-shot
	if err := service.ConfirmPasswordReset(ctx, mailer.resetToken, "anotherSecret1"); err == nil {
		t.Fatal("expected error on reused token")
	}
}

func TestPasswordReset_UnknownEmailIsSilent(t *testing.T) {
	repo := NewInMemoryUserRepository()
	mailer := &mockMailer{}
	service := NewService(repo, mailer)

	if err := service.RequestPasswordReset(context.Background(), "nobody@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mailer.resetTo != "" {
		t.Fatal("no email should be sent for unknown accounts")
	}
}
