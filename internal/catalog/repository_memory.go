package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/LennyCopeaux/yallo.fr-sub000/internal/apperr"
)

// InMemoryRepository backs the unit tests, and the menu package's,
// which need a catalog to resolve ingredients against.
type InMemoryRepository struct {
	categories  map[string]*IngredientCategory
	ingredients map[string]*Ingredient

	// modifier references registered by the menu layer,
	// keyed by ingredient id
	ModifierRefs map[string]int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		categories:   make(map[string]*IngredientCategory),
		ingredients:  make(map[string]*Ingredient),
		ModifierRefs: make(map[string]int),
	}
}

func (r *InMemoryRepository) CreateCategory(ctx context.Context, category *IngredientCategory) error {
	for _, c := range r.categories {
		if c.RestaurantID == category.RestaurantID && c.Name == category.Name {
			return apperr.Conflict("an ingredient category named %q already exists", category.Name)
		}
	}
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	r.categories[category.ID] = category
	return nil
}

func (r *InMemoryRepository) ListCategories(ctx context.Context, restaurantID string) ([]*IngredientCategory, error) {
	var out []*IngredientCategory
	for _, c := range r.categories {
		if c.RestaurantID == restaurantID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) GetCategory(ctx context.Context, restaurantID, id string) (*IngredientCategory, error) {
	c, ok := r.categories[id]
	if !ok || c.RestaurantID != restaurantID {
		return nil, apperr.NotFound("ingredient category not found")
	}
	return c, nil
}

func (r *InMemoryRepository) DeleteCategory(ctx context.Context, restaurantID, id string) error {
	c, ok := r.categories[id]
	if !ok || c.RestaurantID != restaurantID {
		return apperr.NotFound("ingredient category not found")
	}
	delete(r.categories, id)
	return nil
}

func (r *InMemoryRepository) CountIngredientsInCategory(ctx context.Context, categoryID string) (int, error) {
	count := 0
	for _, ing := range r.ingredients {
		if ing.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

func (r *InMemoryRepository) CreateIngredient(ctx context.Context, ingredient *Ingredient) error {
	if ingredient.ID == "" {
		ingredient.ID = uuid.New().String()
	}
	r.ingredients[ingredient.ID] = ingredient
	return nil
}

func (r *InMemoryRepository) GetIngredient(ctx context.Context, restaurantID, id string) (*Ingredient, error) {
	ing, ok := r.ingredients[id]
	if !ok || ing.RestaurantID != restaurantID {
		return nil, apperr.NotFound("ingredient not found")
	}
	return ing, nil
}

func (r *InMemoryRepository) ListIngredients(ctx context.Context, restaurantID string) ([]*Ingredient, error) {
	var out []*Ingredient
	for _, ing := range r.ingredients {
		if ing.RestaurantID == restaurantID {
			out = append(out, ing)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) UpdateIngredient(
	ctx context.Context,
	restaurantID, id string,
	update *IngredientUpdate,
) (*Ingredient, error) {
	ing, ok := r.ingredients[id]
	if !ok || ing.RestaurantID != restaurantID {
		return nil, apperr.NotFound("ingredient not found")
	}
	if update.Name != nil {
		ing.Name = *update.Name
	}
	if update.CategoryID != nil {
		ing.CategoryID = *update.CategoryID
	}
	if update.PriceCents != nil {
		ing.PriceCents = *update.PriceCents
	}
	if update.ImageURL != nil {
		ing.ImageURL = *update.ImageURL
	}
	return ing, nil
}

func (r *InMemoryRepository) SetAvailability(
	ctx context.Context,
	restaurantID, id string,
	available bool,
) (*Ingredient, error) {
	ing, ok := r.ingredients[id]
	if !ok || ing.RestaurantID != restaurantID {
		return nil, apperr.NotFound("ingredient not found")
	}
	ing.IsAvailable = available
	return ing, nil
}

func (r *InMemoryRepository) DeleteIngredient(ctx context.Context, restaurantID, id string) error {
	ing, ok := r.ingredients[id]
	if !ok || ing.RestaurantID != restaurantID {
		return apperr.NotFound("ingredient not found")
	}
	delete(r.ingredients, id)
	return nil
}

func (r *InMemoryRepository) CountModifiersForIngredient(ctx context.Context, ingredientID string) (int, error) {
	return r.ModifierRefs[ingredientID], nil
}
