package restaurant

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/LennyCopeaux/yallo.fr-sub000/internal/apperr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Create a new restaurant
// --------------------------------------------------
func (r *PostgresRepository) Create(ctx context.Context, restaurant *Restaurant) error {
	if restaurant.ID == "" {
		restaurant.ID = uuid.New().String()
	}
	if restaurant.KitchenStatus == "" {
		restaurant.KitchenStatus = KitchenNormal
	}

	query := `
		INSERT INTO restaurants (
			id,
			name,
			owner_id,
			phone_number,
			transfer_phone,
			assistant_id,
			system_prompt,
			kitchen_status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`

	return r.db.QueryRow(
		ctx,
		query,
		restaurant.ID,
		restaurant.Name,
		restaurant.OwnerID,
		restaurant.PhoneNumber,
		restaurant.TransferPhone,
		restaurant.AssistantID,
		restaurant.SystemPrompt,
		restaurant.KitchenStatus,
	).Scan(&restaurant.CreatedAt)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Restaurant, error) {
	query := `
		SELECT
			id, name, owner_id, phone_number, transfer_phone,
			assistant_id, system_prompt, business_hours,
			kitchen_status, created_at
		FROM restaurants
		WHERE id = $1
	`

	var res Restaurant
	var hoursRaw []byte

	err := r.db.QueryRow(ctx, query, id).Scan(
		&res.ID,
		&res.Name,
		&res.OwnerID,
		&res.PhoneNumber,
		&res.TransferPhone,
		&res.AssistantID,
		&res.SystemPrompt,
		&hoursRaw,
		&res.KitchenStatus,
		&res.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("restaurant not found")
	}
	if err != nil {
		return nil, err
	}

	if len(hoursRaw) > 0 {
		var hours BusinessHours
		if err := json.Unmarshal(hoursRaw, &hours); err == nil {
			res.BusinessHours = &hours
		}
	}

	return &res, nil
}

// --------------------------------------------------
// List restaurants owned by a user
// --------------------------------------------------
func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]*Restaurant, error) {
	query := `
		SELECT
			id, name, owner_id, phone_number, transfer_phone,
			assistant_id, system_prompt, kitchen_status, created_at
		FROM restaurants
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`
	return r.list(ctx, query, ownerID)
}

// ListAll is used by the admin back-office.
func (r *PostgresRepository) ListAll(ctx context.Context) ([]*Restaurant, error) {
	query := `
		SELECT
			id, name, owner_id, phone_number, transfer_phone,
			assistant_id, system_prompt, kitchen_status, created_at
		FROM restaurants
		ORDER BY created_at DESC
	`
	return r.list(ctx, query)
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...interface{}) ([]*Restaurant, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []*Restaurant

	for rows.Next() {
		var res Restaurant
		if err := rows.Scan(
			&res.ID,
			&res.Name,
			&res.OwnerID,
			&res.PhoneNumber,
			&res.TransferPhone,
			&res.AssistantID,
			&res.SystemPrompt,
			&res.KitchenStatus,
			&res.CreatedAt,
		); err != nil {
			return nil, err
		}
		restaurants = append(restaurants, &res)
	}

	return restaurants, rows.Err()
}

// --------------------------------------------------
// Ownership check (SECURITY)
// --------------------------------------------------
func (r *PostgresRepository) IsOwner(
	ctx context.Context,
	restaurantID string,
	userID string,
) (bool, error) {

	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1
			FROM restaurants
			WHERE id = $1
			  AND owner_id = $2
		)
	`, restaurantID, userID).Scan(&exists)

	return exists, err
}

// --------------------------------------------------
// Updates
// --------------------------------------------------
func (r *PostgresRepository) UpdateVoiceConfig(
	ctx context.Context,
	restaurantID string,
	cfg *VoiceConfig,
) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE restaurants
		SET assistant_id = $1,
		    system_prompt = $2,
		    phone_number = $3,
		    transfer_phone = $4
		WHERE id = $5
	`, cfg.AssistantID, cfg.SystemPrompt, cfg.PhoneNumber, cfg.TransferPhone, restaurantID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("restaurant not found")
	}
	return nil
}

func (r *PostgresRepository) UpdateBusinessHours(
	ctx context.Context,
	restaurantID string,
	hours *BusinessHours,
) error {
	raw, err := json.Marshal(hours)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE restaurants
		SET business_hours = $1
		WHERE id = $2
	`, raw, restaurantID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("restaurant not found")
	}
	return nil
}

func (r *PostgresRepository) UpdateKitchenStatus(
	ctx context.Context,
	restaurantID string,
	status KitchenStatus,
) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE restaurants
		SET kitchen_status = $1
		WHERE id = $2
	`, status, restaurantID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("restaurant not found")
	}
	return nil
}
