package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/LennyCopeaux/yallo.fr-sub000/internal/apperr"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Mailer is the transactional-email collaborator.
type Mailer interface {
	SendWelcomeEmail(email, tempPassword string) error
	SendResetPasswordEmail(email, token string) error
}

type Service struct {
	repo   UserRepository
	mailer Mailer
}

func NewService(repo UserRepository, mailer Mailer) *Service {
	return &Service{repo: repo, mailer: mailer}
}

// --------------------------------------------------
// Admin creates an owner account
// --------------------------------------------------
// A temporary password is generated and sent by email;
// it is never returned through the API.
func (s *Service) CreateOwner(name, email string) (*User, error) {
	if name == "" || email == "" {
		return nil, apperr.Validation("missing required fields")
	}

	exists, err := s.repo.ExistsByEmail(email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict("email already exists")
	}

	tempPassword := uuid.New().String()[:12]

	hashedPassword, err := bcrypt.GenerateFromPassword(
		[]byte(tempPassword),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return nil, err
	}

	user := &User{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
		Role:     RoleOwner,
	}

	if err := s.repo.Save(user); err != nil {
		return nil, err
	}

	if err := s.mailer.SendWelcomeEmail(email, tempPassword); err != nil {
		return nil, err
	}

	return user, nil
}

// --------------------------------------------------
// Login
// --------------------------------------------------
func (s *Service) Login(email, password string) (*User, string, error) {
	user, err := s.repo.FindByEmail(email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword(
		[]byte(user.Password),
		[]byte(password),
	)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// --------------------------------------------------
// Password reset (request + confirm)
// --------------------------------------------------
func (s *Service) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.repo.FindByEmail(email)
	if err != nil {
		// Do not reveal whether the email exists
		return nil
	}

	token := uuid.New().String()
	expiresAt := time.Now().Add(1 * time.Hour)

	if err := s.repo.CreatePasswordReset(ctx, token, user.ID, expiresAt); err != nil {
		return err
	}

	return s.mailer.SendResetPasswordEmail(email, token)
}

func (s *Service) ConfirmPasswordReset(
	ctx context.Context,
	token string,
	newPassword string,
) error {
	if len(newPassword) < 8 {
		return apperr.Validation("password must be at least 8 characters")
	}

	userID, err := s.repo.ConsumePasswordReset(ctx, token)
	if err != nil {
		return apperr.Validation("invalid or expired token")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword(
		[]byte(newPassword),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return err
	}

	return s.repo.UpdatePassword(ctx, userID, string(hashedPassword))
}
