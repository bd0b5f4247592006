package catalog

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/LennyCopeaux/yallo.fr-sub000/internal/apperr"
	"github.com/LennyCopeaux/yallo.fr-sub000/internal/core"
)

// Storage uploads images and returns their public URL.
type Storage interface {
	Upload(ctx context.Context, key string, file multipart.File) (string, error)
}

type Service struct {
	repo        Repository
	restaurants core.RestaurantReader
	storage     Storage
}

func NewService(repo Repository, restaurants core.RestaurantReader, storage Storage) *Service {
	return &Service{repo: repo, restaurants: restaurants, storage: storage}
}

// --------------------------------------------------
// Ingredient categories
// --------------------------------------------------
func (s *Service) CreateCategory(
	ctx context.Context,
	restaurantID, userID string,
	name string,
	rank int,
) (*IngredientCategory, error) {

	if strings.TrimSpace(name) == "" {
		return nil, apperr.Validation("category name must not be empty")
	}
	if err := s.requireOwner(ctx, restaurantID, userID); err != nil {
		return nil, err
	}

	category := &IngredientCategory{
		RestaurantID: restaurantID,
		Name:         name,
		Rank:         rank,
	}
	if err := s.repo.CreateCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *Service) ListCategories(ctx context.Context, restaurantID, userID string) ([]*IngredientCategory, error) {
	if err := s.requireOwner(ctx, restaurantID, userID); err != nil {
		return nil, err
	}
	return s.repo.ListCategories(ctx, restaurantID)
}

// DeleteCategory refuses while any ingredient still references it.
func (s *Service) DeleteCategory(ctx context.Context, restaurantID, userID, categoryID string) error {
	if err := s.requireOwner(ctx, restaurantID, userID); err != nil {
		return err
	}

	if _, err := s.repo.GetCategory(ctx, restaurantID, categoryID); err != nil {
		return err
	}

	count, err := s.repo.CountIngredientsInCategory(ctx, categoryID)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperr.Conflict("category still holds %d ingredient(s)", count)
	}

	return s.repo.DeleteCategory(ctx, restaurantID, categoryID)
}

// --------------------------------------------------
// Ingredients
// --------------------------------------------------
func (s *Service) CreateIngredient(
	ctx context.Context,
	restaurantID, userID string,
	categoryID, name string,
	priceCents int64,
) (*Ingredient, error) {

	if strings.TrimSpace(name) == "" {
		return nil, apperr.Validation("ingredient name must not be empty")
	}
	if priceCents < 0 {
		return nil, apperr.Validation("price must be >= 0")
	}
	if err := s.requireOwner(ctx, restaurantID, userID); err != nil {
		return nil, err
	}

	// Reject cross-restaurant category references
	if _, err := s.repo.GetCategory(ctx, restaurantID, categoryID); err != nil {
		return nil, err
	}

	ingredient := &Ingredient{
		RestaurantID: restaurantID,
		CategoryID:   categoryID,
		Name:         name,
		PriceCents:   priceCents,
		IsAvailable:  true,
	}
	if err := s.repo.CreateIngredient(ctx, ingredient); err != nil {
		return nil, err
	}
	return ingredient, nil
}

func (s *Service) ListIngredients(ctx context.Context, restaurantID, userID string) ([]*Ingredient, error) {
	if err := s.requireOwner(ctx, restaurantID, userID); err != nil {
		return nil, err
	}
	return s.repo.ListIngredients(ctx, restaurantID)
}

func (s *Service) UpdateIngredient(
	ctx context.Context,
	restaurantID, userID, ingredientID string,
	update *IngredientUpdate,
) (*Ingredient, error) {

	if update.PriceCents != nil && *update.PriceCents < 0 {
		return nil, apperr.Validation("price must be >= 0")
	}
	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		return nil, apperr.Validation("ingredient name must not be empty")
	}
	if err := s.requireOwner(ctx, restaurantID, userID); err != nil {
		return nil, err
	}

	if update.CategoryID != nil {
		if _, err := s.repo.GetCategory(ctx, restaurantID, *update.CategoryID); err != nil {
			return nil, err
		}
	}

	return s.repo.UpdateIngredient(ctx, restaurantID, ingredientID, update)
}

// ToggleAvailability is the 86-board switch; the change is visible
// to any in-flight variation resolution on its next read.
func (s *Service) ToggleAvailability(
	ctx context.Context,
	restaurantID, userID, ingredientID string,
	available bool,
) (*Ingredient, error) {
	if err := s.requireOwner(ctx, restaurantID, userID); err != nil {
		return nil, err
	}
	return s.repo.SetAvailability(ctx, restaurantID, ingredientID, available)
}

// DeleteIngredient refuses while any modifier still references it.
func (s *Service) DeleteIngredient(ctx context.Context, restaurantID, userID, ingredientID string) error {
	if err := s.requireOwner(ctx, restaurantID, userID); err != nil {
		return err
	}

	if _, err := s.repo.GetIngredient(ctx, restaurantID, ingredientID); err != nil {
		return err
	}

	count, err := s.repo.CountModifiersForIngredient(ctx, ingredientID)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperr.Conflict("ingredient is referenced by %d modifier(s)", count)
	}

	return s.repo.DeleteIngredient(ctx, restaurantID, ingredientID)
}

// --------------------------------------------------
// Ingredient image upload
// --------------------------------------------------
func (s *Service) UploadIngredientImage(
	ctx context.Context,
	restaurantID, userID, ingredientID string,
	file multipart.File,
	filename string,
) (*Ingredient, error) {

	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" && ext != ".webp" {
		return nil, apperr.Validation("unsupported image type %q", ext)
	}
	if err := s.requireOwner(ctx, restaurantID, userID); err != nil {
		return nil, err
	}
	if _, err := s.repo.GetIngredient(ctx, restaurantID, ingredientID); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("ingredients/%s/%s%s", restaurantID, uuid.New().String(), ext)

	url, err := s.storage.Upload(ctx, key, file)
	if err != nil {
		return nil, err
	}

	return s.repo.UpdateIngredient(ctx, restaurantID, ingredientID, &IngredientUpdate{ImageURL: &url})
}

func (s *Service) requireOwner(ctx context.Context, restaurantID, userID string) error {
	isOwner, err := s.restaurants.IsOwner(ctx, restaurantID, userID)
	if err != nil {
		return err
	}
	if !isOwner {
		return apperr.Unauthorized()
	}
	return nil
}
