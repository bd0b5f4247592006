package menu

import (
	"context"

	"github.com/google/uuid"

	"github.com/LennyCopeaux/yallo.fr-sub000/internal/apperr"
	"github.com/LennyCopeaux/yallo.fr-sub000/internal/catalog"
)

// InMemoryRepository backs unit tests. It resolves ingredients
// against a catalog.InMemoryRepository so availability reads stay
// live, like the SQL joins do.
type InMemoryRepository struct {
	ingredients *catalog.InMemoryRepository

	categories map[string]*Category
	variations map[string]*ProductVariation
	groups     map[string]*ModifierGroup
	modifiers  map[string]*Modifier

	// open order count per variation id
	ActiveOrders map[string]int
}

func NewInMemoryRepository(ingredients *catalog.InMemoryRepository) *InMemoryRepository {
	return &InMemoryRepository{
		ingredients:  ingredients,
		categories:   make(map[string]*Category),
		variations:   make(map[string]*ProductVariation),
		groups:       make(map[string]*ModifierGroup),
		modifiers:    make(map[string]*Modifier),
		ActiveOrders: make(map[string]int),
	}
}

func (r *InMemoryRepository) CreateCategory(ctx context.Context, category *Category) error {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	r.categories[category.ID] = category
	return nil
}

func (r *InMemoryRepository) ListCategories(ctx context.Context, restaurantID string) ([]*Category, error) {
	var out []*Category
	for _, c := range r.categories {
		if c.RestaurantID == restaurantID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) DeleteCategory(ctx context.Context, restaurantID, id string) error {
	c, ok := r.categories[id]
	if !ok || c.RestaurantID != restaurantID {
		return apperr.NotFound("category not found")
	}
	delete(r.categories, id)
	return nil
}

func (r *InMemoryRepository) CreateVariation(ctx context.Context, variation *ProductVariation) error {
	if variation.ID == "" {
		variation.ID = uuid.New().String()
	}
	r.variations[variation.ID] = variation
	return nil
}

func (r *InMemoryRepository) GetVariation(ctx context.Context, restaurantID, id string) (*ProductVariation, error) {
	v, ok := r.variations[id]
	if !ok || v.RestaurantID != restaurantID {
		return nil, apperr.NotFound("product variation not found")
	}
	return v, nil
}

func (r *InMemoryRepository) ListVariations(ctx context.Context, restaurantID, categoryID string) ([]*ProductVariation, error) {
	var out []*ProductVariation
	for _, v := range r.variations {
		if v.RestaurantID == restaurantID && v.CategoryID == categoryID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) UpdateVariation(
	ctx context.Context,
	restaurantID, id string,
	update *VariationUpdate,
) (*ProductVariation, error) {
	v, ok := r.variations[id]
	if !ok || v.RestaurantID != restaurantID {
		return nil, apperr.NotFound("product variation not found")
	}
	if update.Name != nil {
		v.Name = *update.Name
	}
	if update.PriceCents != nil {
		v.PriceCents = *update.PriceCents
	}
	return v, nil
}

func (r *InMemoryRepository) DeleteVariation(ctx context.Context, restaurantID, id string) error {
	v, ok := r.variations[id]
	if !ok || v.RestaurantID != restaurantID {
		return apperr.NotFound("product variation not found")
	}
	delete(r.variations, id)
	return nil
}

func (r *InMemoryRepository) CountActiveOrdersForVariation(ctx context.Context, variationID string) (int, error) {
	return r.ActiveOrders[variationID], nil
}

func (r *InMemoryRepository) CreateGroup(ctx context.Context, group *ModifierGroup) error {
	for _, g := range r.groups {
		if g.VariationID == group.VariationID &&
			g.IngredientCategoryID == group.IngredientCategoryID {
			return apperr.Conflict("a modifier group already exists for this variation and ingredient category")
		}
	}
	if group.ID == "" {
		group.ID = uuid.New().String()
	}
	r.groups[group.ID] = group
	return nil
}

func (r *InMemoryRepository) GetGroup(ctx context.Context, restaurantID, id string) (*ModifierGroup, error) {
	g, ok := r.groups[id]
	if !ok || g.RestaurantID != restaurantID {
		return nil, apperr.NotFound("modifier group not found")
	}
	return g, nil
}

func (r *InMemoryRepository) DeleteGroup(ctx context.Context, restaurantID, id string) error {
	g, ok := r.groups[id]
	if !ok || g.RestaurantID != restaurantID {
		return apperr.NotFound("modifier group not found")
	}
	// cascade
	for modID, mod := range r.modifiers {
		if mod.GroupID == id {
			r.ingredients.ModifierRefs[mod.IngredientID]--
			delete(r.modifiers, modID)
		}
	}
	delete(r.groups, id)
	return nil
}

func (r *InMemoryRepository) AddModifier(ctx context.Context, modifier *Modifier) error {
	for _, m := range r.modifiers {
		if m.GroupID == modifier.GroupID && m.IngredientID == modifier.IngredientID {
			return apperr.Conflict("a modifier already exists for this ingredient in this group")
		}
	}
	if modifier.ID == "" {
		modifier.ID = uuid.New().String()
	}
	r.modifiers[modifier.ID] = modifier
	r.ingredients.ModifierRefs[modifier.IngredientID]++
	return nil
}

func (r *InMemoryRepository) DeleteModifier(ctx context.Context, restaurantID, id string) error {
	mod, ok := r.modifiers[id]
	if !ok {
		return apperr.NotFound("modifier not found")
	}
	group := r.groups[mod.GroupID]
	if group == nil || group.RestaurantID != restaurantID {
		return apperr.NotFound("modifier not found")
	}
	r.ingredients.ModifierRefs[mod.IngredientID]--
	delete(r.modifiers, id)
	return nil
}

func (r *InMemoryRepository) ResolveVariation(
	ctx context.Context,
	restaurantID, variationID string,
) (*ResolvedVariation, error) {

	variation, err := r.GetVariation(ctx, restaurantID, variationID)
	if err != nil {
		return nil, err
	}

	resolved := &ResolvedVariation{ProductVariation: *variation}

	for _, g := range r.groups {
		if g.VariationID != variationID {
			continue
		}

		rg := ResolvedGroup{ModifierGroup: *g}
		if cat, err := r.ingredients.GetCategory(ctx, restaurantID, g.IngredientCategoryID); err == nil {
			rg.CategoryName = cat.Name
		}

		for _, mod := range r.modifiers {
			if mod.GroupID != g.ID {
				continue
			}
			ing, err := r.ingredients.GetIngredient(ctx, restaurantID, mod.IngredientID)
			if err != nil {
				continue
			}
			rg.Modifiers = append(rg.Modifiers, ResolvedModifier{
				Modifier:       *mod,
				IngredientName: ing.Name,
				IsAvailable:    ing.IsAvailable,
			})
		}

		resolved.Groups = append(resolved.Groups, rg)
	}

	return resolved, nil
}
