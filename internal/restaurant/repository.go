package restaurant

import "context"

type Repository interface {
	Create(ctx context.Context, restaurant *Restaurant) error
	GetByID(ctx context.Context, id string) (*Restaurant, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*Restaurant, error)
	ListAll(ctx context.Context) ([]*Restaurant, error)

	// ownership (SECURITY)
	IsOwner(ctx context.Context, restaurantID string, userID string) (bool, error)

	UpdateVoiceConfig(ctx context.Context, restaurantID string, cfg *VoiceConfig) error
	UpdateBusinessHours(ctx context.Context, restaurantID string, hours *BusinessHours) error
	UpdateKitchenStatus(ctx context.Context, restaurantID string, status KitchenStatus) error
}
