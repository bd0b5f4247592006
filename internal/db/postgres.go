package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	if err := initSchema(pool); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return pool
}

// initSchema creates or updates the database schema.
// Every statement is idempotent so each boot can run it.
func initSchema(pool *pgxpool.Pool) error {
	ctx := context.Background()

	statements := []string{
		// -------------------------------
		// USERS
		// -------------------------------
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'OWNER',
			created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS password_resets (
			token UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			expires_at TIMESTAMPTZ NOT NULL,
			used BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
		)`,

		// -------------------------------
		// RESTAURANTS (tenant root)
		// -------------------------------
		`CREATE TABLE IF NOT EXISTS restaurants (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			owner_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			phone_number VARCHAR(50) NOT NULL DEFAULT '',
			transfer_phone VARCHAR(50) NOT NULL DEFAULT '',
			assistant_id VARCHAR(255) NOT NULL DEFAULT '',
			system_prompt TEXT NOT NULL DEFAULT '',
			business_hours JSONB,
			kitchen_status VARCHAR(20) NOT NULL DEFAULT 'NORMAL',
			created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
		)`,

		// -------------------------------
		// SETTINGS (one row per restaurant)
		// -------------------------------
		`CREATE TABLE IF NOT EXISTS pricing_configs (
			restaurant_id UUID PRIMARY KEY REFERENCES restaurants(id) ON DELETE CASCADE,
			monthly_price_cents BIGINT NOT NULL,
			setup_fee_cents BIGINT NOT NULL,
			included_minutes INT NOT NULL,
			overflow_per_minute_cents BIGINT NOT NULL,
			updated_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS kitchen_settings (
			restaurant_id UUID PRIMARY KEY REFERENCES restaurants(id) ON DELETE CASCADE,
			settings JSONB NOT NULL,
			updated_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
		)`,

		// -------------------------------
		// INGREDIENT CATALOG
		// -------------------------------
		`CREATE TABLE IF NOT EXISTS ingredient_categories (
			id UUID PRIMARY KEY,
			restaurant_id UUID NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
			name VARCHAR(255) NOT NULL,
			rank INT NOT NULL DEFAULT 0,
			UNIQUE (restaurant_id, name)
		)`,

		`CREATE TABLE IF NOT EXISTS ingredients (
			id UUID PRIMARY KEY,
			restaurant_id UUID NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
			category_id UUID NOT NULL REFERENCES ingredient_categories(id),
			name VARCHAR(255) NOT NULL,
			price_cents BIGINT NOT NULL CHECK (price_cents >= 0),
			is_available BOOLEAN NOT NULL DEFAULT TRUE,
			image_url VARCHAR(500)
		)`,

		// -------------------------------
		// PRODUCT CATALOG
		// -------------------------------
		`CREATE TABLE IF NOT EXISTS categories (
			id UUID PRIMARY KEY,
			restaurant_id UUID NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
			name VARCHAR(255) NOT NULL,
			rank INT NOT NULL DEFAULT 0
		)`,

		`CREATE TABLE IF NOT EXISTS product_variations (
			id UUID PRIMARY KEY,
			restaurant_id UUID NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
			category_id UUID NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
			name VARCHAR(255) NOT NULL,
			price_cents BIGINT NOT NULL CHECK (price_cents >= 0)
		)`,

		// -------------------------------
		// MODIFIER GROUPS / MODIFIERS
		// -------------------------------
		`CREATE TABLE IF NOT EXISTS modifier_groups (
			id UUID PRIMARY KEY,
			restaurant_id UUID NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
			variation_id UUID NOT NULL REFERENCES product_variations(id) ON DELETE CASCADE,
			ingredient_category_id UUID NOT NULL REFERENCES ingredient_categories(id),
			min_select INT NOT NULL CHECK (min_select >= 0),
			max_select INT NOT NULL CHECK (max_select >= min_select),
			UNIQUE (variation_id, ingredient_category_id)
		)`,

		`CREATE TABLE IF NOT EXISTS modifiers (
			id UUID PRIMARY KEY,
			group_id UUID NOT NULL REFERENCES modifier_groups(id) ON DELETE CASCADE,
			ingredient_id UUID NOT NULL REFERENCES ingredients(id),
			price_extra_cents BIGINT NOT NULL DEFAULT 0,
			UNIQUE (group_id, ingredient_id)
		)`,

		// -------------------------------
		// ORDERS
		// -------------------------------
		`CREATE TABLE IF NOT EXISTS orders (
			id UUID PRIMARY KEY,
			restaurant_id UUID NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
			order_number INT NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'NEW',
			total_cents BIGINT NOT NULL,
			customer_name VARCHAR(255) NOT NULL DEFAULT '',
			customer_phone VARCHAR(50) NOT NULL DEFAULT '',
			pickup_time TIMESTAMPTZ,
			notes TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (restaurant_id, order_number)
		)`,

		// product_name and options are point-in-time snapshots,
		// never resynced with later catalog edits.
		`CREATE TABLE IF NOT EXISTS order_items (
			id UUID PRIMARY KEY,
			order_id UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			variation_id UUID REFERENCES product_variations(id) ON DELETE SET NULL,
			product_name VARCHAR(255) NOT NULL,
			quantity INT NOT NULL CHECK (quantity >= 1),
			unit_price_cents BIGINT NOT NULL,
			total_price_cents BIGINT NOT NULL,
			options TEXT NOT NULL DEFAULT ''
		)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
