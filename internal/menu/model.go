package menu

// Category is a product category ("Tacos", "Boissons").
type Category struct {
	ID           string `json:"id"`
	RestaurantID string `json:"restaurant_id"`
	Name         string `json:"name"`
	Rank         int    `json:"rank"`
}

// ProductVariation is a sellable SKU with a base price in cents.
type ProductVariation struct {
	ID           string `json:"id"`
	RestaurantID string `json:"restaurant_id"`
	CategoryID   string `json:"category_id"`
	Name         string `json:"name"`
	PriceCents   int64  `json:"price_cents"`
}

type VariationUpdate struct {
	Name       *string
	PriceCents *int64
}

// ModifierGroup binds one ingredient category to one variation:
// "choose between MinSelect and MaxSelect ingredients from this
// category". One group per (variation, ingredient category) pair.
type ModifierGroup struct {
	ID                   string `json:"id"`
	RestaurantID         string `json:"restaurant_id"`
	VariationID          string `json:"variation_id"`
	IngredientCategoryID string `json:"ingredient_category_id"`
	MinSelect            int    `json:"min_select"`
	MaxSelect            int    `json:"max_select"`
}

// Modifier binds one ingredient to one group. PriceExtraCents may
// override the ingredient's default surcharge for this binding.
type Modifier struct {
	ID              string `json:"id"`
	GroupID         string `json:"group_id"`
	IngredientID    string `json:"ingredient_id"`
	PriceExtraCents int64  `json:"price_extra_cents"`
}

// --------------------------------------------------
// Resolution (read model)
// --------------------------------------------------

// ResolvedModifier carries the live ingredient state next to the
// binding; availability is read fresh on every resolution.
type ResolvedModifier struct {
	Modifier
	IngredientName string `json:"ingredient_name"`
	IsAvailable    bool   `json:"is_available"`
}

type ResolvedGroup struct {
	ModifierGroup
	CategoryName string             `json:"category_name"`
	Modifiers    []ResolvedModifier `json:"modifiers"`
}

// ResolvedVariation is a variation with its modifier groups fully
// expanded, ready for composition.
type ResolvedVariation struct {
	ProductVariation
	Groups []ResolvedGroup `json:"groups"`
}
