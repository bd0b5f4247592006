package settings

import (
	"context"

	"github.com/LennyCopeaux/yallo.fr-sub000/internal/apperr"
	"github.com/LennyCopeaux/yallo.fr-sub000/internal/core"
)

type Service struct {
	repo        Repository
	restaurants core.RestaurantReader
}

func NewService(repo Repository, restaurants core.RestaurantReader) *Service {
	return &Service{repo: repo, restaurants: restaurants}
}

// --------------------------------------------------
// Kitchen delay settings (OWNER)
// --------------------------------------------------
func (s *Service) UpdateKitchenSettings(
	ctx context.Context,
	restaurantID string,
	userID string,
	settings *KitchenSettings,
) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	if err := s.requireOwner(ctx, restaurantID, userID); err != nil {
		return err
	}
	return s.repo.UpsertKitchenSettings(ctx, restaurantID, settings)
}

// GetKitchenSettings falls back to the defaults when the restaurant
// has never saved its own.
func (s *Service) GetKitchenSettings(
	ctx context.Context,
	restaurantID string,
	userID string,
) (*KitchenSettings, error) {
	if err := s.requireOwner(ctx, restaurantID, userID); err != nil {
		return nil, err
	}

	settings, err := s.repo.GetKitchenSettings(ctx, restaurantID)
	if apperr.IsNotFound(err) {
		defaults := DefaultKitchenSettings()
		return &defaults, nil
	}
	if err != nil {
		return nil, err
	}
	return settings, nil
}

// --------------------------------------------------
// Pricing config (ADMIN, route gated)
// --------------------------------------------------
func (s *Service) UpdatePricing(ctx context.Context, cfg *PricingConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	return s.repo.UpsertPricing(ctx, cfg)
}

func (s *Service) GetPricing(ctx context.Context, restaurantID string) (*PricingConfig, error) {
	return s.repo.GetPricing(ctx, restaurantID)
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
