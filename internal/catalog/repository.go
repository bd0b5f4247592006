package catalog

import "context"

// Repository defines all database operations for the ingredient
// catalog. Every query is scoped by restaurant (tenant partition).
type Repository interface {
	// -------------------------------
	// Ingredient categories
	// -------------------------------
	CreateCategory(ctx context.Context, category *IngredientCategory) error
	ListCategories(ctx context.Context, restaurantID string) ([]*IngredientCategory, error)
	GetCategory(ctx context.Context, restaurantID, id string) (*IngredientCategory, error)
	DeleteCategory(ctx context.Context, restaurantID, id string) error
	CountIngredientsInCategory(ctx context.Context, categoryID string) (int, error)

	// -------------------------------
	// Ingredients
	// -------------------------------
	CreateIngredient(ctx context.Context, ingredient *Ingredient) error
	GetIngredient(ctx context.Context, restaurantID, id string) (*Ingredient, error)
	ListIngredients(ctx context.Context, restaurantID string) ([]*Ingredient, error)
	UpdateIngredient(ctx context.Context, restaurantID, id string, update *IngredientUpdate) (*Ingredient, error)
	SetAvailability(ctx context.Context, restaurantID, id string, available bool) (*Ingredient, error)
	DeleteIngredient(ctx context.Context, restaurantID, id string) error
	CountModifiersForIngredient(ctx context.Context, ingredientID string) (int, error)
}
