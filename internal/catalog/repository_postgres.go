package catalog

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
// Ingredient categories
// --------------------------------------------------
func (r *PostgresRepository) CreateCategory(ctx context.Context, category *IngredientCategory) error {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO ingredient_categories (id, restaurant_id, name, rank)
		VALUES ($1, $2, $3, $4)
	`, category.ID, category.RestaurantID, category.Name, category.Rank)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return apperr.Conflict("an ingredient category named %q already exists", category.Name)
	}
	return err
}

func (r *PostgresRepository) ListCategories(ctx context.Context, restaurantID string) ([]*IngredientCategory, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, restaurant_id, name, rank
		FROM ingredient_categories
		WHERE restaurant_id = $1
		ORDER BY rank, name
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*IngredientCategory
	for rows.Next() {
		var c IngredientCategory
		if err := rows.Scan(&c.ID, &c.RestaurantID, &c.Name, &c.Rank); err != nil {
			return nil, err
		}
		categories = append(categories, &c)
	}
	return categories, rows.Err()
}

func (r *PostgresRepository) GetCategory(ctx context.Context, restaurantID, id string) (*IngredientCategory, error) {
	var c IngredientCategory
	err := r.db.QueryRow(ctx, `
		SELECT id, restaurant_id, name, rank
		FROM ingredient_categories
		WHERE restaurant_id = $1 AND id = $2
	`, restaurantID, id).Scan(&c.ID, &c.RestaurantID, &c.Name, &c.Rank)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("ingredient category not found")
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PostgresRepository) DeleteCategory(ctx context.Context, restaurantID, id string) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM ingredient_categories
		WHERE restaurant_id = $1 AND id = $2
	`, restaurantID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("ingredient category not found")
	}
	return nil
}

func (r *PostgresRepository) CountIngredientsInCategory(ctx context.Context, categoryID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM ingredients WHERE category_id = $1
	`, categoryID).Scan(&count)
	return count, err
}

// --------------------------------------------------
// Ingredients
// --------------------------------------------------
func (r *PostgresRepository) CreateIngredient(ctx context.Context, ingredient *Ingredient) error {
	if ingredient.ID == "" {
		ingredient.ID = uuid.New().String()
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO ingredients (
			id, restaurant_id, category_id, name,
			price_cents, is_available, image_url
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`,
		ingredient.ID,
		ingredient.RestaurantID,
		ingredient.CategoryID,
		ingredient.Name,
		ingredient.PriceCents,
		ingredient.IsAvailable,
		nullable(ingredient.ImageURL),
	)
	return err
}

func (r *PostgresRepository) GetIngredient(ctx context.Context, restaurantID, id string) (*Ingredient, error) {
	var ing Ingredient
	var imageURL *string

	err := r.db.QueryRow(ctx, `
		SELECT id, restaurant_id, category_id, name,
		       price_cents, is_available, image_url
		FROM ingredients
		WHERE restaurant_id = $1 AND id = $2
	`, restaurantID, id).Scan(
		&ing.ID, &ing.RestaurantID, &ing.CategoryID, &ing.Name,
		&ing.PriceCents, &ing.IsAvailable, &imageURL,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("ingredient not found")
	}
	if err != nil {
		return nil, err
	}
	if imageURL != nil {
		ing.ImageURL = *imageURL
	}
	return &ing, nil
}

func (r *PostgresRepository) ListIngredients(ctx context.Context, restaurantID string) ([]*Ingredient, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, restaurant_id, category_id, name,
		       price_cents, is_available, image_url
		FROM ingredients
		WHERE restaurant_id = $1
		ORDER BY name
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ingredients []*Ingredient
	for rows.Next() {
		var ing Ingredient
		var imageURL *string
		if err := rows.Scan(
			&ing.ID, &ing.RestaurantID, &ing.CategoryID, &ing.Name,
			&ing.PriceCents, &ing.IsAvailable, &imageURL,
		); err != nil {
			return nil, err
		}
		if imageURL != nil {
			ing.ImageURL = *imageURL
		}
		ingredients = append(ingredients, &ing)
	}
	return ingredients, rows.Err()
}

func (r *PostgresRepository) UpdateIngredient(
	ctx context.Context,
	restaurantID, id string,
	update *IngredientUpdate,
) (*Ingredient, error) {

	tag, err := r.db.Exec(ctx, `
		UPDATE ingredients
		SET name        = COALESCE($1, name),
		    category_id = COALESCE($2, category_id),
		    price_cents = COALESCE($3, price_cents),
		    image_url   = COALESCE($4, image_url)
		WHERE restaurant_id = $5 AND id = $6
	`, update.Name, update.CategoryID, update.PriceCents, update.ImageURL, restaurantID, id)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, apperr.NotFound("ingredient not found")
	}

	return r.GetIngredient(ctx, restaurantID, id)
}

func (r *PostgresRepository) SetAvailability(
	ctx context.Context,
	restaurantID, id string,
	available bool,
) (*Ingredient, error) {

	tag, err := r.db.Exec(ctx, `
		UPDATE ingredients
		SET is_available = $1
		WHERE restaurant_id = $2 AND id = $3
	`, available, restaurantID, id)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, apperr.NotFound("ingredient not found")
	}

	return r.GetIngredient(ctx, restaurantID, id)
}

func (r *PostgresRepository) DeleteIngredient(ctx context.Context, restaurantID, id string) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM ingredients
		WHERE restaurant_id = $1 AND id = $2
	`, restaurantID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("ingredient not found")
	}
	return nil
}

func (r *PostgresRepository) CountModifiersForIngredient(ctx context.Context, ingredientID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM modifiers WHERE ingredient_id = $1
	`, ingredientID).Scan(&count)
	return count, err
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
