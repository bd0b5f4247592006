package menu

import "context"

// Repository defines all database operations for the product
// catalog and its modifier bindings.
type Repository interface {
	// -------------------------------
	// Product categories
	// -------------------------------
	CreateCategory(ctx context.Context, category *Category) error
	ListCategories(ctx context.Context, restaurantID string) ([]*Category, error)
	DeleteCategory(ctx context.Context, restaurantID, id string) error

	// -------------------------------
	// Variations
	// -------------------------------
	CreateVariation(ctx context.Context, variation *ProductVariation) error
	GetVariation(ctx context.Context, restaurantID, id string) (*ProductVariation, error)
	ListVariations(ctx context.Context, restaurantID, categoryID string) ([]*ProductVariation, error)
	UpdateVariation(ctx context.Context, restaurantID, id string, update *VariationUpdate) (*ProductVariation, error)
	DeleteVariation(ctx context.Context, restaurantID, id string) error

	// Orders still open against the variation (anything not
	// DELIVERED or CANCELLED) block its deletion.
	CountActiveOrdersForVariation(ctx context.Context, variationID string) (int, error)

	// -------------------------------
	// Modifier groups / modifiers
	// -------------------------------
	CreateGroup(ctx context.Context, group *ModifierGroup) error
	GetGroup(ctx context.Context, restaurantID, id string) (*ModifierGroup, error)
	DeleteGroup(ctx context.Context, restaurantID, id string) error

	AddModifier(ctx context.Context, modifier *Modifier) error
	DeleteModifier(ctx context.Context, restaurantID, id string) error

	// -------------------------------
	// Resolution
	// -------------------------------

	// ResolveVariation expands the variation's groups and their
	// modifiers, reading ingredient availability live.
	ResolveVariation(ctx context.Context, restaurantID, variationID string) (*ResolvedVariation, error)
}
