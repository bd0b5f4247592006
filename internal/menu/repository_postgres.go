package menu

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/LennyCopeaux/yallo.fr-sub000/internal/apperr"
)

const uniqueViolation = "23505"

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Product categories
// --------------------------------------------------
func (r *PostgresRepository) CreateCategory(ctx context.Context, category *Category) error {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO categories (id, restaurant_id, name, rank)
		VALUES ($1, $2, $3, $4)
	`, category.ID, category.RestaurantID, category.Name, category.Rank)
	return err
}

func (r *PostgresRepository) ListCategories(ctx context.Context, restaurantID string) ([]*Category, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, restaurant_id, name, rank
		FROM categories
		WHERE restaurant_id = $1
		ORDER BY rank, name
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.RestaurantID, &c.Name, &c.Rank); err != nil {
			return nil, err
		}
		categories = append(categories, &c)
	}
	return categories, rows.Err()
}

func (r *PostgresRepository) DeleteCategory(ctx context.Context, restaurantID, id string) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM categories
		WHERE restaurant_id = $1 AND id = $2
	`, restaurantID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("category not found")
	}
	return nil
}

// --------------------------------------------------
// Variations
// --------------------------------------------------
func (r *PostgresRepository) CreateVariation(ctx context.Context, variation *ProductVariation) error {
	if variation.ID == "" {
		variation.ID = uuid.New().String()
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO product_variations (id, restaurant_id, category_id, name, price_cents)
		VALUES ($1, $2, $3, $4, $5)
	`,
		variation.ID,
		variation.RestaurantID,
		variation.CategoryID,
		variation.Name,
		variation.PriceCents,
	)
	return err
}

func (r *PostgresRepository) GetVariation(ctx context.Context, restaurantID, id string) (*ProductVariation, error) {
	var v ProductVariation
	err := r.db.QueryRow(ctx, `
		SELECT id, restaurant_id, category_id, name, price_cents
		FROM product_variations
		WHERE restaurant_id = $1 AND id = $2
	`, restaurantID, id).Scan(&v.ID, &v.RestaurantID, &v.CategoryID, &v.Name, &v.PriceCents)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("product variation not found")
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *PostgresRepository) ListVariations(ctx context.Context, restaurantID, categoryID string) ([]*ProductVariation, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, restaurant_id, category_id, name, price_cents
		FROM product_variations
		WHERE restaurant_id = $1 AND category_id = $2
		ORDER BY name
	`, restaurantID, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var variations []*ProductVariation
	for rows.Next() {
		var v ProductVariation
		if err := rows.Scan(&v.ID, &v.RestaurantID, &v.CategoryID, &v.Name, &v.PriceCents); err != nil {
			return nil, err
		}
		variations = append(variations, &v)
	}
	return variations, rows.Err()
}

func (r *PostgresRepository) UpdateVariation(
	ctx context.Context,
	restaurantID, id string,
	update *VariationUpdate,
) (*ProductVariation, error) {

	tag, err := r.db.Exec(ctx, `
		UPDATE product_variations
		SET name        = COALESCE($1, name),
		    price_cents = COALESCE($2, price_cents)
		WHERE restaurant_id = $3 AND id = $4
	`, update.Name, update.PriceCents, restaurantID, id)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, apperr.NotFound("product variation not found")
	}

	return r.GetVariation(ctx, restaurantID, id)
}

func (r *PostgresRepository) DeleteVariation(ctx context.Context, restaurantID, id string) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM product_variations
		WHERE restaurant_id = $1 AND id = $2
	`, restaurantID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("product variation not found")
	}
	return nil
}

func (r *PostgresRepository) CountActiveOrdersForVariation(ctx context.Context, variationID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE oi.variation_id = $1
		  AND o.status NOT IN ('DELIVERED', 'CANCELLED')
	`, variationID).Scan(&count)
	return count, err
}

// --------------------------------------------------
// Modifier groups / modifiers
// --------------------------------------------------
func (r *PostgresRepository) CreateGroup(ctx context.Context, group *ModifierGroup) error {
	if group.ID == "" {
		group.ID = uuid.New().String()
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO modifier_groups (
			id, restaurant_id, variation_id,
			ingredient_category_id, min_select, max_select
		)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		group.ID,
		group.RestaurantID,
		group.VariationID,
		group.IngredientCategoryID,
		group.MinSelect,
		group.MaxSelect,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return apperr.Conflict("a modifier group already exists for this variation and ingredient category")
	}
	return err
}

func (r *PostgresRepository) GetGroup(ctx context.Context, restaurantID, id string) (*ModifierGroup, error) {
	var g ModifierGroup
	err := r.db.QueryRow(ctx, `
		SELECT id, restaurant_id, variation_id,
		       ingredient_category_id, min_select, max_select
		FROM modifier_groups
		WHERE restaurant_id = $1 AND id = $2
	`, restaurantID, id).Scan(
		&g.ID, &g.RestaurantID, &g.VariationID,
		&g.IngredientCategoryID, &g.MinSelect, &g.MaxSelect,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("modifier group not found")
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// DeleteGroup removes the group; its modifiers go with it
// (ON DELETE CASCADE).
func (r *PostgresRepository) DeleteGroup(ctx context.Context, restaurantID, id string) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM modifier_groups
		WHERE restaurant_id = $1 AND id = $2
	`, restaurantID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("modifier group not found")
	}
	return nil
}

func (r *PostgresRepository) AddModifier(ctx context.Context, modifier *Modifier) error {
	if modifier.ID == "" {
		modifier.ID = uuid.New().String()
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO modifiers (id, group_id, ingredient_id, price_extra_cents)
		VALUES ($1, $2, $3, $4)
	`, modifier.ID, modifier.GroupID, modifier.IngredientID, modifier.PriceExtraCents)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return apperr.Conflict("a modifier already exists for this ingredient in this group")
	}
	return err
}

func (r *PostgresRepository) DeleteModifier(ctx context.Context, restaurantID, id string) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM modifiers m
		USING modifier_groups g
		WHERE m.id = $1
		  AND g.id = m.group_id
		  AND g.restaurant_id = $2
	`, id, restaurantID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("modifier not found")
	}
	return nil
}

// --------------------------------------------------
// Resolution
// --------------------------------------------------
func (r *PostgresRepository) ResolveVariation(
	ctx context.Context,
	restaurantID, variationID string,
) (*ResolvedVariation, error) {

	variation, err := r.GetVariation(ctx, restaurantID, variationID)
	if err != nil {
		return nil, err
	}

	resolved := &ResolvedVariation{ProductVariation: *variation}

	rows, err := r.db.Query(ctx, `
		SELECT
			g.id, g.restaurant_id, g.variation_id,
			g.ingredient_category_id, g.min_select, g.max_select,
			ic.name,
			m.id, m.group_id, m.ingredient_id, m.price_extra_cents,
			i.name, i.is_available
		FROM modifier_groups g
		JOIN ingredient_categories ic ON ic.id = g.ingredient_category_id
		LEFT JOIN modifiers m ON m.group_id = g.id
		LEFT JOIN ingredients i ON i.id = m.ingredient_id
		WHERE g.variation_id = $1
		ORDER BY ic.rank, ic.name, i.name
	`, variationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byGroup := make(map[string]int)

	for rows.Next() {
		var g ModifierGroup
		var categoryName string
		var modID, modGroupID, modIngredientID *string
		var priceExtra *int64
		var ingredientName *string
		var isAvailable *bool

		if err := rows.Scan(
			&g.ID, &g.RestaurantID, &g.VariationID,
			&g.IngredientCategoryID, &g.MinSelect, &g.MaxSelect,
			&categoryName,
			&modID, &modGroupID, &modIngredientID, &priceExtra,
			&ingredientName, &isAvailable,
		); err != nil {
			return nil, err
		}

		idx, ok := byGroup[g.ID]
		if !ok {
			resolved.Groups = append(resolved.Groups, ResolvedGroup{
				ModifierGroup: g,
				CategoryName:  categoryName,
			})
			idx = len(resolved.Groups) - 1
			byGroup[g.ID] = idx
		}

		if modID != nil {
			resolved.Groups[idx].Modifiers = append(resolved.Groups[idx].Modifiers, ResolvedModifier{
				Modifier: Modifier{
					ID:              *modID,
					GroupID:         *modGroupID,
					IngredientID:    *modIngredientID,
					PriceExtraCents: *priceExtra,
				},
				IngredientName: *ingredientName,
				IsAvailable:    *isAvailable,
			})
		}
	}

	return resolved, rows.Err()
}
