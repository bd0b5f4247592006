package catalog

import (
	"context"
	"testing"

	"github.com/LennyCopeaux/yallo.fr-sub000/internal/apperr"
)

type ownerOnlyReader struct{}

func (ownerOnlyReader) IsOwner(ctx context.Context, restaurantID, userID string) (bool, error) {
	return userID == "owner-1", nil
}

func newTestService() (*Service, *InMemoryRepository) {
	repo := NewInMemoryRepository()
	return NewService(repo, ownerOnlyReader{}, nil), repo
}

func TestCreateCategory_EmptyName(t *testing.T) {
	service, _ := newTestService()

	_, err := service.CreateCategory(context.Background(), "resto-1", "owner-1", "  ", 0)
	if !apperr.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestCreateCategory_DuplicateName(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	if _, err := service.CreateCategory(ctx, "resto-1", "owner-1", "Sauces", 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := service.CreateCategory(ctx, "resto-1", "owner-1", "Sauces", 1)
	if !apperr.IsConflict(err) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
}

func TestDeleteCategory_EmptySucceeds(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	category, _ := service.CreateCategory(ctx, "resto-1", "owner-1", "Sauces", 0)

	if err := service.DeleteCategory(ctx, "resto-1", "owner-1", category.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteCategory_WithIngredientsFails(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	category, _ := service.CreateCategory(ctx, "resto-1", "owner-1", "Viandes", 0)
	if _, err := service.CreateIngredient(ctx, "resto-1", "owner-1", category.ID, "Poulet", 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := service.DeleteCategory(ctx, "resto-1", "owner-1", category.ID)
	if !apperr.IsConflict(err) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
}

func TestCreateIngredient_NegativePrice(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	category, _ := service.CreateCategory(ctx, "resto-1", "owner-1", "Sauces", 0)

	_, err := service.CreateIngredient(ctx, "resto-1", "owner-1", category.ID, "Algérienne", -50)
	if !apperr.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestCreateIngredient_CrossRestaurantCategory(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	// category belongs to another restaurant: must not be reachable
	other := &IngredientCategory{RestaurantID: "resto-2", Name: "Sauces"}
	repo := service.repo.(*InMemoryRepository)
	repo.CreateCategory(ctx, other)

	_, err := service.CreateIngredient(ctx, "resto-1", "owner-1", other.ID, "Ketchup", 0)
	if !apperr.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestToggleAvailability(t *testing.T) {
	service, repo := newTestService()
	ctx := context.Background()

	category, _ := service.CreateCategory(ctx, "resto-1", "owner-1", "Viandes", 0)
	ing, _ := service.CreateIngredient(ctx, "resto-1", "owner-1", category.ID, "Poulet", 0)

	if !ing.IsAvailable {
		t.Fatal("new ingredients start available")
	}

	updated, err := service.ToggleAvailability(ctx, "resto-1", "owner-1", ing.ID, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.IsAvailable {
		t.Error("availability not toggled")
	}
	if repo.ingredients[ing.ID].IsAvailable {
		t.Error("toggle not persisted")
	}
}

func TestDeleteIngredient_ReferencedByModifier(t *testing.T) {
	service, repo := newTestService()
	ctx := context.Background()

	category, _ := service.CreateCategory(ctx, "resto-1", "owner-1", "Viandes", 0)
	ing, _ := service.CreateIngredient(ctx, "resto-1", "owner-1", category.ID, "Poulet", 0)

	repo.ModifierRefs[ing.ID] = 2

	err := service.DeleteIngredient(ctx, "resto-1", "owner-1", ing.ID)
	if !apperr.IsConflict(err) {
		t.Fatalf("expected ConflictError, got %v", err)
	}

	repo.ModifierRefs[ing.ID] = 0
	if err := service.DeleteIngredient(ctx, "resto-1", "owner-1", ing.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdateIngredient_PriceAndName(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	category, _ := service.CreateCategory(ctx, "resto-1", "owner-1", "Sauces", 0)
	ing, _ := service.CreateIngredient(ctx, "resto-1", "owner-1", category.ID, "Samouraï", 50)

	newName := "Samouraï épicée"
	newPrice := int64(100)
	updated, err := service.UpdateIngredient(ctx, "resto-1", "owner-1", ing.ID, &IngredientUpdate{
		Name:       &newName,
		PriceCents: &newPrice,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != newName || updated.PriceCents != 100 {
		t.Errorf("update not applied: %+v", updated)
	}
}

func TestCatalogOps_RequireOwner(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	_, err := service.CreateCategory(ctx, "resto-1", "intruder", "Sauces", 0)
	if !apperr.IsUnauthorized(err) {
		t.Fatalf("expected AuthorizationError, got %v", err)
	}
}
