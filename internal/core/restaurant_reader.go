package core

import "context"

// RestaurantReader is the slice of the restaurant repository that
// other domains need for tenant checks. Kept here so catalog, menu
// and order packages do not import the restaurant package.
type RestaurantReader interface {
	IsOwner(ctx context.Context, restaurantID string, userID string) (bool, error)
}
