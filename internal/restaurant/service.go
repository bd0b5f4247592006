package restaurant

import (
	"context"

	"go.uber.org/zap"

	"github.com/LennyCopeaux/yallo.fr-sub000/internal/apperr"
)

type Service struct {
	repo Repository
	log  *zap.Logger
}

func NewService(repo Repository, log *zap.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// --------------------------------------------------
// Create restaurant
// --------------------------------------------------
func (s *Service) CreateRestaurant(
	ctx context.Context,
	name string,
	phoneNumber string,
	ownerID string,
) (*Restaurant, error) {

	if name == "" {
		return nil, apperr.Validation("missing required fields")
	}

	restaurant := &Restaurant{
		Name:          name,
		PhoneNumber:   phoneNumber,
		OwnerID:       ownerID,
		KitchenStatus: KitchenNormal,
	}

	if err := s.repo.Create(ctx, restaurant); err != nil {
		return nil, err
	}

	s.log.Info("restaurant created",
		zap.String("restaurant_id", restaurant.ID),
		zap.String("owner_id", ownerID),
	)

	return restaurant, nil
}

// --------------------------------------------------
// List restaurants owned by user
// --------------------------------------------------
func (s *Service) ListMyRestaurants(ctx context.Context, ownerID string) ([]*Restaurant, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// ListAllRestaurants is admin-only (route gated).
func (s *Service) ListAllRestaurants(ctx context.Context) ([]*Restaurant, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) GetRestaurant(
	ctx context.Context,
	restaurantID string,
	userID string,
) (*Restaurant, error) {
	if err := s.requireOwner(ctx, restaurantID, userID); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, restaurantID)
}

// --------------------------------------------------
// Voice/telephony configuration (ADMIN)
// --------------------------------------------------
// Fields are opaque: stored and returned verbatim.
func (s *Service) UpdateVoiceConfig(
	ctx context.Context,
	restaurantID string,
	cfg *VoiceConfig,
) error {
	return s.repo.UpdateVoiceConfig(ctx, restaurantID, cfg)
}

// --------------------------------------------------
// Business hours (OWNER)
// --------------------------------------------------
func (s *Service) UpdateBusinessHours(
	ctx context.Context,
	restaurantID string,
	userID string,
	hours *BusinessHours,
) error {
	if hours == nil || hours.Timezone == "" {
		return apperr.Validation("timezone is required")
	}
	if err := s.requireOwner(ctx, restaurantID, userID); err != nil {
		return err
	}
	return s.repo.UpdateBusinessHours(ctx, restaurantID, hours)
}

// --------------------------------------------------
// Kitchen status signal (OWNER)
// --------------------------------------------------
func (s *Service) SetKitchenStatus(
	ctx context.Context,
	restaurantID string,
	userID string,
	status KitchenStatus,
) error {
	if !status.Valid() {
		return apperr.Validation("unknown kitchen status %q", status)
	}
	if err := s.requireOwner(ctx, restaurantID, userID); err != nil {
		return err
	}

	if err := s.repo.UpdateKitchenStatus(ctx, restaurantID, status); err != nil {
		return err
	}

	s.log.Info("kitchen status changed",
		zap.String("restaurant_id", restaurantID),
		zap.String("status", string(status)),
	)
	return nil
}

func (s *Service) requireOwner(ctx context.Context, restaurantID, userID string) error {
	isOwner, err := s.repo.IsOwner(ctx, restaurantID, userID)
	if err != nil {
		return err
	}
	if !isOwner {
		return apperr.Unauthorized()
	}
	return nil
}
