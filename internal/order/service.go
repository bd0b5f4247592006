package order

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/LennyCopeaux/yallo.fr-sub000/internal/apperr"
	"github.com/LennyCopeaux/yallo.fr-sub000/internal/core"
	"github.com/LennyCopeaux/yallo.fr-sub000/internal/menu"
)

// LineComposer prices and validates one order line against the live
// menu. Satisfied by menu.Service.
type LineComposer interface {
	ComposeOrderLine(
		ctx context.Context,
		restaurantID, variationID string,
		selectedModifierIDs []string,
		quantity int,
	) (*menu.ComposedLine, error)
}

// LineInput is one requested line before composition.
type LineInput struct {
	VariationID string
	ModifierIDs []string
	Quantity    int
}

type Service struct {
	repo        Repository
	composer    LineComposer
	restaurants core.RestaurantReader
	log         *zap.Logger
}

func NewService(repo Repository, composer LineComposer, restaurants core.RestaurantReader, log *zap.Logger) *Service {
	return &Service{
		repo:        repo,
		composer:    composer,
		restaurants: restaurants,
		log:         log,
	}
}

// --------------------------------------------------
// Create order
// --------------------------------------------------
func (s *Service) CreateOrder(
	ctx context.Context,
	restaurantID, userID string,
	customerName, customerPhone string,
	pickupTime *time.Time,
	notes string,
	lines []LineInput,
) (*Order, error) {

	if strings.TrimSpace(customerName) == "" {
		return nil, apperr.Validation("customer name must not be empty")
	}
	if len(lines) == 0 {
		return nil, apperr.Validation("order must contain at least one line")
	}
	if err := s.requireOwner(ctx, restaurantID, userID); err != nil {
		return nil, err
	}

	order := &Order{
		RestaurantID:  restaurantID,
		Status:        StatusNew,
		CustomerName:  customerName,
		CustomerPhone: customerPhone,
		PickupTime:    pickupTime,
		Notes:         notes,
	}

	for _, line := range lines {
		composed, err := s.composer.ComposeOrderLine(
			ctx, restaurantID, line.VariationID, line.ModifierIDs, line.Quantity,
		)
		if err != nil {
			return nil, err
		}

		variationID := composed.VariationID
		order.Items = append(order.Items, Item{
			VariationID:     &variationID,
			ProductName:     composed.ProductName,
			Quantity:        composed.Quantity,
			UnitPriceCents:  composed.UnitPriceCents,
			TotalPriceCents: composed.TotalPriceCents,
			Options:         composed.Options,
		})
		order.TotalCents += composed.TotalPriceCents
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, err
	}

	s.log.Info("order created",
		zap.String("restaurant_id", restaurantID),
		zap.Int("order_number", order.OrderNumber),
		zap.Int64("total_cents", order.TotalCents),
	)
	return order, nil
}

// --------------------------------------------------
// Read
// --------------------------------------------------
func (s *Service) GetOrder(ctx context.Context, restaurantID, userID, orderID string) (*Order, error) {
	if err := s.requireOwner(ctx, restaurantID, userID); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, restaurantID, orderID)
}

func (s *Service) ListOrders(ctx context.Context, restaurantID, userID string, status Status) ([]*Order, error) {
	if status != "" && !status.Valid() {
		return nil, apperr.Validation("unknown order status %q", status)
	}
	if err := s.requireOwner(ctx, restaurantID, userID); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, restaurantID, status)
}

// --------------------------------------------------
// Status lifecycle
// --------------------------------------------------
func (s *Service) UpdateStatus(
	ctx context.Context,
	restaurantID, userID, orderID string,
	newStatus Status,
) (*Order, error) {

	if !newStatus.Valid() {
		return nil, apperr.Validation("unknown order status %q", newStatus)
	}
	if err := s.requireOwner(ctx, restaurantID, userID); err != nil {
		return nil, err
	}

	order, err := s.repo.Get(ctx, restaurantID, orderID)
	if err != nil {
		return nil, err
	}

	if !CanTransition(order.Status, newStatus) {
		return nil, apperr.InvalidTransition(
			"cannot move order from %s to %s", order.Status, newStatus,
		)
	}

	if err := s.repo.UpdateStatus(ctx, restaurantID, orderID, order.Status, newStatus); err != nil {
		return nil, err
	}
	order.Status = newStatus

	s.log.Info("order status changed",
		zap.String("restaurant_id", restaurantID),
		zap.String("order_id", orderID),
		zap.String("status", string(newStatus)),
	)
	return order, nil
}

func (s *Service) requireOwner(ctx context.Context, restaurantID, userID string) error {
	isOwner, err := s.restaurants.IsOwner(ctx, restaurantID, userID)
	if err != nil {
		return err
	}
	if !isOwner {
		return apperr.Unauthorized()
	}
	return nil
}
