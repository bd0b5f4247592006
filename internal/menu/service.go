package menu

import (
	"context"
	"strings"

	"github.com/LennyCopeaux/yallo.fr-sub000/internal/apperr"
	"github.com/LennyCopeaux/yallo.fr-sub000/internal/catalog"
	"github.com/LennyCopeaux/yallo.fr-sub000/internal/core"
)

// IngredientSource is the slice of the catalog repository the menu
// needs: category existence and ingredient→category membership.
// Satisfied by catalog.PostgresRepository and catalog.InMemoryRepository.
type IngredientSource interface {
	GetCategory(ctx context.Context, restaurantID, id string) (*catalog.IngredientCategory, error)
	GetIngredient(ctx context.Context, restaurantID, id string) (*catalog.Ingredient, error)
}

type Service struct {
	repo        Repository
	ingredients IngredientSource
	restaurants core.RestaurantReader
}

func NewService(repo Repository, ingredients IngredientSource, restaurants core.RestaurantReader) *Service {
	return &Service{
		repo:        repo,
		ingredients: ingredients,
		restaurants: restaurants,
	}
}

// --------------------------------------------------
// Product categories
// --------------------------------------------------
func (s *Service) CreateCategory(
	ctx context.Context,
	restaurantID, userID string,
	name string,
	rank int,
) (*Category, error) {

	if strings.TrimSpace(name) == "" {
		return nil, apperr.Validation("category name must not be empty")
	}
	if err := s.requireOwner(ctx, restaurantID, userID); err != nil {
		return nil, err
	}

	category := &Category{RestaurantID: restaurantID, Name: name, Rank: rank}
	if err := s.repo.CreateCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *Service) ListCategories(ctx context.Context, restaurantID, userID string) ([]*Category, error) {
	if err := s.requireOwner(ctx, restaurantID, userID); err != nil {
		return nil, err
	}
	return s.repo.ListCategories(ctx, restaurantID)
}

// DeleteCategory refuses while variations still reference the
// category, mirroring the ingredient-category guard.
func (s *Service) DeleteCategory(ctx context.Context, restaurantID, userID, categoryID string) error {
	if err := s.requireOwner(ctx, restaurantID, userID); err != nil {
		return err
	}
	variations, err := s.repo.ListVariations(ctx, restaurantID, categoryID)
	if err != nil {
		return err
	}
	if len(variations) > 0 {
		return apperr.Conflict("category still has %d variation(s)", len(variations))
	}
	return s.repo.DeleteCategory(ctx, restaurantID, categoryID)
}

// --------------------------------------------------
// Variations
// --------------------------------------------------
func (s *Service) CreateVariation(
	ctx context.Context,
	restaurantID, userID string,
	categoryID, name string,
	priceCents int64,
) (*ProductVariation, error) {

	if strings.TrimSpace(name) == "" {
		return nil, apperr.Validation("variation name must not be empty")
	}
	if priceCents < 0 {
		return nil, apperr.Validation("price must be >= 0")
	}
	if err := s.requireOwner(ctx, restaurantID, userID); err != nil {
		return nil, err
	}

	variation := &ProductVariation{
		RestaurantID: restaurantID,
		CategoryID:   categoryID,
		Name:         name,
		PriceCents:   priceCents,
	}
	if err := s.repo.CreateVariation(ctx, variation); err != nil {
		return nil, err
	}
	return variation, nil
}

func (s *Service) ListVariations(ctx context.Context, restaurantID, userID, categoryID string) ([]*ProductVariation, error) {
	if err := s.requireOwner(ctx, restaurantID, userID); err != nil {
		return nil, err
	}
	return s.repo.ListVariations(ctx, restaurantID, categoryID)
}

func (s *Service) UpdateVariation(
	ctx context.Context,
	restaurantID, userID, variationID string,
	update *VariationUpdate,
) (*ProductVariation, error) {

	if update.PriceCents != nil && *update.PriceCents < 0 {
		return nil, apperr.Validation("price must be >= 0")
	}
	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		return nil, apperr.Validation("variation name must not be empty")
	}
	if err := s.requireOwner(ctx, restaurantID, userID); err != nil {
		return nil, err
	}

	return s.repo.UpdateVariation(ctx, restaurantID, variationID, update)
}

// DeleteVariation refuses while open orders still reference it.
func (s *Service) DeleteVariation(ctx context.Context, restaurantID, userID, variationID string) error {
	if err := s.requireOwner(ctx, restaurantID, userID); err != nil {
		return err
	}
	if _, err := s.repo.GetVariation(ctx, restaurantID, variationID); err != nil {
		return err
	}

	count, err := s.repo.CountActiveOrdersForVariation(ctx, variationID)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperr.Conflict("variation is referenced by %d active order(s)", count)
	}

	return s.repo.DeleteVariation(ctx, restaurantID, variationID)
}

// --------------------------------------------------
// Modifier groups
// --------------------------------------------------
func (s *Service) CreateGroup(
	ctx context.Context,
	restaurantID, userID string,
	variationID, ingredientCategoryID string,
	minSelect, maxSelect int,
) (*ModifierGroup, error) {

	if minSelect < 0 || minSelect > maxSelect {
		return nil, apperr.Validation("selection bounds require 0 <= min <= max")
	}
	if err := s.requireOwner(ctx, restaurantID, userID); err != nil {
		return nil, err
	}

	// Both sides of the binding must live in this restaurant.
	if _, err := s.repo.GetVariation(ctx, restaurantID, variationID); err != nil {
		return nil, err
	}
	if _, err := s.ingredients.GetCategory(ctx, restaurantID, ingredientCategoryID); err != nil {
		return nil, err
	}

	group := &ModifierGroup{
		RestaurantID:         restaurantID,
		VariationID:          variationID,
		IngredientCategoryID: ingredientCategoryID,
		MinSelect:            minSelect,
		MaxSelect:            maxSelect,
	}
	if err := s.repo.CreateGroup(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

func (s *Service) DeleteGroup(ctx context.Context, restaurantID, userID, groupID string) error {
	if err := s.requireOwner(ctx, restaurantID, userID); err != nil {
		return err
	}
	return s.repo.DeleteGroup(ctx, restaurantID, groupID)
}

// --------------------------------------------------
// Modifiers
// --------------------------------------------------

// AddModifier binds an ingredient to a group. When priceExtra is
// nil the ingredient's own surcharge applies.
func (s *Service) AddModifier(
	ctx context.Context,
	restaurantID, userID string,
	groupID, ingredientID string,
	priceExtraCents *int64,
) (*Modifier, error) {

	if err := s.requireOwner(ctx, restaurantID, userID); err != nil {
		return nil, err
	}

	group, err := s.repo.GetGroup(ctx, restaurantID, groupID)
	if err != nil {
		return nil, err
	}

	ingredient, err := s.ingredients.GetIngredient(ctx, restaurantID, ingredientID)
	if err != nil {
		return nil, err
	}
	if ingredient.CategoryID != group.IngredientCategoryID {
		return nil, apperr.Conflict("ingredient does not belong to the group's ingredient category")
	}

	extra := ingredient.PriceCents
	if priceExtraCents != nil {
		if *priceExtraCents < 0 {
			return nil, apperr.Validation("price extra must be >= 0")
		}
		extra = *priceExtraCents
	}

	modifier := &Modifier{
		GroupID:         groupID,
		IngredientID:    ingredientID,
		PriceExtraCents: extra,
	}
	if err := s.repo.AddModifier(ctx, modifier); err != nil {
		return nil, err
	}
	return modifier, nil
}

func (s *Service) DeleteModifier(ctx context.Context, restaurantID, userID, modifierID string) error {
	if err := s.requireOwner(ctx, restaurantID, userID); err != nil {
		return err
	}
	return s.repo.DeleteModifier(ctx, restaurantID, modifierID)
}

// --------------------------------------------------
// Composition
// --------------------------------------------------

// ResolveVariation expands a variation for rendering or ordering;
// ingredient availability is read live, never cached.
func (s *Service) ResolveVariation(
	ctx context.Context,
	restaurantID, userID, variationID string,
) (*ResolvedVariation, error) {
	if err := s.requireOwner(ctx, restaurantID, userID); err != nil {
		return nil, err
	}
	return s.repo.ResolveVariation(ctx, restaurantID, variationID)
}

// ComposeOrderLine resolves the variation and prices the selection.
func (s *Service) ComposeOrderLine(
	ctx context.Context,
	restaurantID, variationID string,
	selectedModifierIDs []string,
	quantity int,
) (*ComposedLine, error) {

	resolved, err := s.repo.ResolveVariation(ctx, restaurantID, variationID)
	if err != nil {
		return nil, err
	}
	return ComposeLine(resolved, selectedModifierIDs, quantity)
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
