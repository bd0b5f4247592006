package order

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/LennyCopeaux/yallo.fr-sub000/internal/apperr"
)

type InMemoryRepository struct {
	orders map[string]*Order
	// next order number per restaurant id
	sequence map[string]int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		orders:   make(map[string]*Order),
		sequence: make(map[string]int),
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, order *Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	r.sequence[order.RestaurantID]++
	order.OrderNumber = r.sequence[order.RestaurantID]

	for i := range order.Items {
		item := &order.Items[i]
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		item.OrderID = order.ID
	}

	r.orders[order.ID] = order
	return nil
}

func (r *InMemoryRepository) Get(ctx context.Context, restaurantID, id string) (*Order, error) {
	o, ok := r.orders[id]
	if !ok || o.RestaurantID != restaurantID {
		return nil, apperr.NotFound("order not found")
	}
	return o, nil
}

func (r *InMemoryRepository) List(ctx context.Context, restaurantID string, status Status) ([]*Order, error) {
	var out []*Order
	for _, o := range r.orders {
		if o.RestaurantID != restaurantID {
			continue
		}
		if status != "" && o.Status != status {
			continue
		}
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].OrderNumber > out[j].OrderNumber
	})
	return out, nil
}

func (r *InMemoryRepository) UpdateStatus(ctx context.Context, restaurantID, id string, from, to Status) error {
	o, ok := r.orders[id]
	if !ok || o.RestaurantID != restaurantID || o.Status != from {
		return apperr.Conflict("order status changed concurrently")
	}
	o.Status = to
	return nil
}
