package settings

import "context"

type Repository interface {
	// Upserts run select-then-branch inside one transaction so
	// concurrent first writes cannot create duplicate rows.
	UpsertKitchenSettings(ctx context.Context, restaurantID string, s *KitchenSettings) error
	GetKitchenSettings(ctx context.Context, restaurantID string) (*KitchenSettings, error)

	UpsertPricing(ctx context.Context, cfg *PricingConfig) error
	GetPricing(ctx context.Context, restaurantID string) (*PricingConfig, error)
}
