package catalog

// IngredientCategory groups ingredients for display and for binding
// to modifier groups ("Sauces", "Viandes", ...). Name is unique per
// restaurant.
type IngredientCategory struct {
	ID           string `json:"id"`
	RestaurantID string `json:"restaurant_id"`
	Name         string `json:"name"`
	Rank         int    `json:"rank"`
}

// Ingredient prices are integer cents, never floats.
type Ingredient struct {
	ID           string `json:"id"`
	RestaurantID string `json:"restaurant_id"`
	CategoryID   string `json:"category_id"`
	Name         string `json:"name"`
	PriceCents   int64  `json:"price_cents"`
	IsAvailable  bool   `json:"is_available"`
	ImageURL     string `json:"image_url,omitempty"`
}

// IngredientUpdate carries the optional fields of an update;
// nil means "leave unchanged".
type IngredientUpdate struct {
	Name       *string
	CategoryID *string
	PriceCents *int64
	ImageURL   *string
}
