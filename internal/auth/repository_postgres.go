package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresUserRepository struct {
	db *pgxpool.Pool
}

func NewPostgresUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Save(user *User) error {
	// Generate UUID if not already set
	if user.ID == "" {
		user.ID = uuid.New().String()
	}

	query := `
		INSERT INTO users (id, name, email, password, role)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(context.Background(), query,
		user.ID, user.Name, user.Email, user.Password, user.Role,
	)
	return err
}

func (r *PostgresUserRepository) ExistsByEmail(email string) (bool, error) {
	query := `SELECT 1 FROM users WHERE email=$1 LIMIT 1`
	row := r.db.QueryRow(context.Background(), query, email)

	var exists int
	if err := row.Scan(&exists); err != nil {
		return false, nil
	}
	return true, nil
}

func (r *PostgresUserRepository) FindByEmail(email string) (*User, error) {
	query := `
		SELECT id, name, email, password, role
		FROM users WHERE email=$1
	`
	row := r.db.QueryRow(context.Background(), query, email)

	user := &User{}
	if err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.Role); err != nil {
		return nil, errors.New("user not found")
	}
	return user, nil
}

func (r *PostgresUserRepository) UpdatePassword(
	ctx context.Context,
	userID string,
	hashed string,
) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET password = $1
		WHERE id = $2
	`, hashed, userID)
	return err
}

// --------------------------------------------------
// Password-reset tokens
// --------------------------------------------------

func (r *PostgresUserRepository) CreatePasswordReset(
	ctx context.Context,
	token string,
	userID string,
	expiresAt time.Time,
) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO password_resets (token, user_id, expires_at)
		VALUES ($1, $2, $3)
	`, token, userID, expiresAt)
	return err
}

// ConsumePasswordReset marks the token used and returns its owner.
// Expired or already-used tokens fail.
func (r *PostgresUserRepository) ConsumePasswordReset(
	ctx context.Context,
	token string,
) (string, error) {

	var userID string
	err := r.db.QueryRow(ctx, `
		UPDATE password_resets
		SET used = TRUE
		WHERE token = $1
		  AND used = FALSE
		  AND expires_at > NOW()
		RETURNING user_id
	`, token).Scan(&userID)

	if err != nil {
		return "", errors.New("invalid or expired token")
	}
	return userID, nil
}
