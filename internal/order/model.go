package order

import "time"

type Status string

const (
	StatusNew       Status = "NEW"
	StatusPreparing Status = "PREPARING"
	StatusReady     Status = "READY"
	StatusDelivered Status = "DELIVERED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusPreparing, StatusReady, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Terminal states accept no further transitions.
func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransition allows any non-terminal order to move to any other
// status except back to NEW. Strict stepwise progression is not
// enforced.
func CanTransition(from, to Status) bool {
	if from.Terminal() {
		return false
	}
	if !to.Valid() || to == StatusNew || to == from {
		return false
	}
	return true
}

type Order struct {
	ID            string     `json:"id"`
	RestaurantID  string     `json:"restaurant_id"`
	OrderNumber   int        `json:"order_number"`
	Status        Status     `json:"status"`
	TotalCents    int64      `json:"total_cents"`
	CustomerName  string     `json:"customer_name"`
	CustomerPhone string     `json:"customer_phone"`
	PickupTime    *time.Time `json:"pickup_time,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	Items         []Item     `json:"items,omitempty"`
}

// Item fields product_name and options are snapshots taken when the
// order was placed; later catalog edits never resync them. The
// variation reference is nullable so catalog deletions can null it
// once the order settles.
type Item struct {
	ID              string  `json:"id"`
	OrderID         string  `json:"order_id"`
	VariationID     *string `json:"variation_id,omitempty"`
	ProductName     string  `json:"product_name"`
	Quantity        int     `json:"quantity"`
	UnitPriceCents  int64   `json:"unit_price_cents"`
	TotalPriceCents int64   `json:"total_price_cents"`
	Options         string  `json:"options,omitempty"`
}
