package order

import (
	"context"
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

func (r *PostgresRepository) Create(ctx context.Context, order *Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	// Lock the restaurant row so two concurrent orders cannot
	// allocate the same number.
	var exists int
	err = tx.QueryRow(ctx, `
		SELECT 1 FROM restaurants WHERE id = $1 FOR UPDATE
	`, order.RestaurantID).Scan(&exists)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound("restaurant not found")
	}
	if err != nil {
		return err
	}

	err = tx.QueryRow(ctx, `
		SELECT COALESCE(MAX(order_number), 0) + 1
		FROM orders
		WHERE restaurant_id = $1
	`, order.RestaurantID).Scan(&order.OrderNumber)
	if err != nil {
		return err
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO orders (
			id, restaurant_id, order_number, status, total_cents,
			customer_name, customer_phone, pickup_time, notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at
	`,
		order.ID,
		order.RestaurantID,
		order.OrderNumber,
		order.Status,
		order.TotalCents,
		order.CustomerName,
		order.CustomerPhone,
		order.PickupTime,
		order.Notes,
	).Scan(&order.CreatedAt)
	if err != nil {
		return err
	}

	for i := range order.Items {
		item := &order.Items[i]
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		item.OrderID = order.ID

		_, err = tx.Exec(ctx, `
			INSERT INTO order_items (
				id, order_id, variation_id, product_name,
				quantity, unit_price_cents, total_price_cents, options
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`,
			item.ID,
			item.OrderID,
			item.VariationID,
			item.ProductName,
			item.Quantity,
			item.UnitPriceCents,
			item.TotalPriceCents,
			item.Options,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *PostgresRepository) Get(ctx context.Context, restaurantID, id string) (*Order, error) {
	var o Order
	err := r.db.QueryRow(ctx, `
		SELECT id, restaurant_id, order_number, status, total_cents,
		       customer_name, customer_phone, pickup_time, notes, created_at
		FROM orders
		WHERE restaurant_id = $1 AND id = $2
	`, restaurantID, id).Scan(
		&o.ID, &o.RestaurantID, &o.OrderNumber, &o.Status, &o.TotalCents,
		&o.CustomerName, &o.CustomerPhone, &o.PickupTime, &o.Notes, &o.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("order not found")
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, order_id, variation_id, product_name,
		       quantity, unit_price_cents, total_price_cents, options
		FROM order_items
		WHERE order_id = $1
	`, o.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item Item
		if err := rows.Scan(
			&item.ID, &item.OrderID, &item.VariationID, &item.ProductName,
			&item.Quantity, &item.UnitPriceCents, &item.TotalPriceCents, &item.Options,
		); err != nil {
			return nil, err
		}
		o.Items = append(o.Items, item)
	}
	return &o, rows.Err()
}

func (r *PostgresRepository) List(ctx context.Context, restaurantID string, status Status) ([]*Order, error) {
	query := `
		SELECT id, restaurant_id, order_number, status, total_cents,
		       customer_name, customer_phone, pickup_time, notes, created_at
		FROM orders
		WHERE restaurant_id = $1
		ORDER BY created_at DESC
	`
	args := []interface{}{restaurantID}
	if status != "" {
		query = `
			SELECT id, restaurant_id, order_number, status, total_cents,
			       customer_name, customer_phone, pickup_time, notes, created_at
			FROM orders
			WHERE restaurant_id = $1 AND status = $2
			ORDER BY created_at DESC
		`
		args = append(args, status)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(
			&o.ID, &o.RestaurantID, &o.OrderNumber, &o.Status, &o.TotalCents,
			&o.CustomerName, &o.CustomerPhone, &o.PickupTime, &o.Notes, &o.CreatedAt,
		); err != nil {
			return nil, err
		}
		orders = append(orders, &o)
	}
	return orders, rows.Err()
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, restaurantID, id string, from, to Status) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE orders
		SET status = $1
		WHERE restaurant_id = $2 AND id = $3 AND status = $4
	`, to, restaurantID, id, from)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		// the order moved under us, or it does not exist
		return apperr.Conflict("order status changed concurrently")
	}
	return nil
}
