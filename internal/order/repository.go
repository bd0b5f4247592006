package order

import "context"

type Repository interface {
	// Create persists the order and its items in one transaction,
	// allocating the restaurant-scoped order number.
	Create(ctx context.Context, order *Order) error
	Get(ctx context.Context, restaurantID, id string) (*Order, error)
	// List returns orders newest first; status filters when non-empty.
	List(ctx context.Context, restaurantID string, status Status) ([]*Order, error)
	// UpdateStatus is a compare-and-set on the current status.
	UpdateStatus(ctx context.Context, restaurantID, id string, from, to Status) error
}
