package settings

import (
	"context"
	"encoding/json"
	"errors"

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
// Kitchen settings (singleton row per restaurant)
// --------------------------------------------------
func (r *PostgresRepository) UpsertKitchenSettings(
	ctx context.Context,
	restaurantID string,
	s *KitchenSettings,
) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	// select-then-branch inside the transaction; the row lock
	// keeps concurrent first writes from inserting twice
	var one int
	err = tx.QueryRow(ctx, `
		SELECT 1 FROM kitchen_settings
		WHERE restaurant_id = $1
		FOR UPDATE
	`, restaurantID).Scan(&one)

	switch {
	case errors.Is(err, pgx.ErrNoRows):
		_, err = tx.Exec(ctx, `
			INSERT INTO kitchen_settings (restaurant_id, settings)
			VALUES ($1, $2)
		`, restaurantID, raw)
	case err == nil:
		_, err = tx.Exec(ctx, `
			UPDATE kitchen_settings
			SET settings = $1, updated_at = NOW()
			WHERE restaurant_id = $2
		`, raw, restaurantID)
	}
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PostgresRepository) GetKitchenSettings(
	ctx context.Context,
	restaurantID string,
) (*KitchenSettings, error) {

	var raw []byte
	err := r.db.QueryRow(ctx, `
		SELECT settings
		FROM kitchen_settings
		WHERE restaurant_id = $1
	`, restaurantID).Scan(&raw)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("kitchen settings not found")
	}
	if err != nil {
		return nil, err
	}

	var s KitchenSettings
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// --------------------------------------------------
// Pricing config (singleton row per restaurant)
// --------------------------------------------------
func (r *PostgresRepository) UpsertPricing(ctx context.Context, cfg *PricingConfig) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var one int
	err = tx.QueryRow(ctx, `
		SELECT 1 FROM pricing_configs
		WHERE restaurant_id = $1
		FOR UPDATE
	`, cfg.RestaurantID).Scan(&one)

	switch {
	case errors.Is(err, pgx.ErrNoRows):
		_, err = tx.Exec(ctx, `
			INSERT INTO pricing_configs (
				restaurant_id,
				monthly_price_cents,
				setup_fee_cents,
				included_minutes,
				overflow_per_minute_cents
			)
			VALUES ($1, $2, $3, $4, $5)
		`,
			cfg.RestaurantID,
			cfg.MonthlyPriceCents,
			cfg.SetupFeeCents,
			cfg.IncludedMinutes,
			cfg.OverflowPerMinuteCents,
		)
	case err == nil:
		_, err = tx.Exec(ctx, `
			UPDATE pricing_configs
			SET monthly_price_cents = $1,
			    setup_fee_cents = $2,
			    included_minutes = $3,
			    overflow_per_minute_cents = $4,
			    updated_at = NOW()
			WHERE restaurant_id = $5
		`,
			cfg.MonthlyPriceCents,
			cfg.SetupFeeCents,
			cfg.IncludedMinutes,
			cfg.OverflowPerMinuteCents,
			cfg.RestaurantID,
		)
	}
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PostgresRepository) GetPricing(
	ctx context.Context,
	restaurantID string,
) (*PricingConfig, error) {

	cfg := &PricingConfig{RestaurantID: restaurantID}
	err := r.db.QueryRow(ctx, `
		SELECT monthly_price_cents, setup_fee_cents,
		       included_minutes, overflow_per_minute_cents
		FROM pricing_configs
		WHERE restaurant_id = $1
	`, restaurantID).Scan(
		&cfg.MonthlyPriceCents,
		&cfg.SetupFeeCents,
		&cfg.IncludedMinutes,
		&cfg.OverflowPerMinuteCents,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("pricing config not found")
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
