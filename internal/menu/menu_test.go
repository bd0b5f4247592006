package menu

import (
	"context"
	"testing"

	"github.com/LennyCopeaux/yallo.fr-sub000/internal/apperr"
	"github.com/LennyCopeaux/yallo.fr-sub000/internal/catalog"
)

type ownerOnlyReader struct{}

func (ownerOnlyReader) IsOwner(ctx context.Context, restaurantID, userID string) (bool, error) {
	return userID == "owner-1", nil
}

type fixture struct {
	service     *Service
	repo        *InMemoryRepository
	ingredients *catalog.InMemoryRepository
}

func newFixture() *fixture {
	ingredients := catalog.NewInMemoryRepository()
	repo := NewInMemoryRepository(ingredients)
	return &fixture{
		service:     NewService(repo, ingredients, ownerOnlyReader{}),
		repo:        repo,
		ingredients: ingredients,
	}
}

func (f *fixture) addIngredientCategory(t *testing.T, restaurantID, name string) *catalog.IngredientCategory {
	t.Helper()
	category := &catalog.IngredientCategory{RestaurantID: restaurantID, Name: name}
	if err := f.ingredients.CreateCategory(context.Background(), category); err != nil {
		t.Fatalf("create ingredient category: %v", err)
	}
	return category
}

func (f *fixture) addIngredient(t *testing.T, restaurantID, categoryID, name string, priceCents int64) *catalog.Ingredient {
	t.Helper()
	ingredient := &catalog.Ingredient{
		RestaurantID: restaurantID,
		CategoryID:   categoryID,
		Name:         name,
		PriceCents:   priceCents,
		IsAvailable:  true,
	}
	if err := f.ingredients.CreateIngredient(context.Background(), ingredient); err != nil {
		t.Fatalf("create ingredient: %v", err)
	}
	return ingredient
}

func TestCreateGroup_InvalidBounds(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	variation, err := f.service.CreateVariation(ctx, "rest-1", "owner-1", "cat-1", "Tacos M", 750)
	if err != nil {
		t.Fatalf("create variation: %v", err)
	}
	viandes := f.addIngredientCategory(t, "rest-1", "Viandes")

	_, err = f.service.CreateGroup(ctx, "rest-1", "owner-1", variation.ID, viandes.ID, 2, 1)
	if !apperr.IsValidation(err) {
		t.Fatalf("expected ValidationError for min > max, got %v", err)
	}

	_, err = f.service.CreateGroup(ctx, "rest-1", "owner-1", variation.ID, viandes.ID, -1, 1)
	if !apperr.IsValidation(err) {
		t.Fatalf("expected ValidationError for negative min, got %v", err)
	}
}

func TestCreateGroup_DuplicatePair(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	variation, _ := f.service.CreateVariation(ctx, "rest-1", "owner-1", "cat-1", "Tacos M", 750)
	viandes := f.addIngredientCategory(t, "rest-1", "Viandes")

	if _, err := f.service.CreateGroup(ctx, "rest-1", "owner-1", variation.ID, viandes.ID, 1, 1); err != nil {
		t.Fatalf("first group: %v", err)
	}
	_, err := f.service.CreateGroup(ctx, "rest-1", "owner-1", variation.ID, viandes.ID, 0, 2)
	if !apperr.IsConflict(err) {
		t.Fatalf("expected ConflictError for duplicate (variation, category), got %v", err)
	}
}

func TestCreateGroup_CrossRestaurantCategory(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	variation, _ := f.service.CreateVariation(ctx, "rest-1", "owner-1", "cat-1", "Tacos M", 750)
	other := f.addIngredientCategory(t, "rest-2", "Viandes")

	_, err := f.service.CreateGroup(ctx, "rest-1", "owner-1", variation.ID, other.ID, 1, 1)
	if !apperr.IsNotFound(err) {
		t.Fatalf("expected NotFoundError for foreign ingredient category, got %v", err)
	}
}

func TestAddModifier_IngredientOutsideGroupCategory(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	variation, _ := f.service.CreateVariation(ctx, "rest-1", "owner-1", "cat-1", "Tacos M", 750)
	viandes := f.addIngredientCategory(t, "rest-1", "Viandes")
	sauces := f.addIngredientCategory(t, "rest-1", "Sauces")
	algerienne := f.addIngredient(t, "rest-1", sauces.ID, "Algérienne", 0)

	group, err := f.service.CreateGroup(ctx, "rest-1", "owner-1", variation.ID, viandes.ID, 1, 1)
	if err != nil {
		t.Fatalf("create group: %v", err)
	}

	_, err = f.service.AddModifier(ctx, "rest-1", "owner-1", group.ID, algerienne.ID, nil)
	if !apperr.IsConflict(err) {
		t.Fatalf("expected ConflictError for ingredient outside the group's category, got %v", err)
	}
}

func TestAddModifier_DefaultsToIngredientPrice(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	variation, _ := f.service.CreateVariation(ctx, "rest-1", "owner-1", "cat-1", "Tacos M", 750)
	viandes := f.addIngredientCategory(t, "rest-1", "Viandes")
	boeuf := f.addIngredient(t, "rest-1", viandes.ID, "Bœuf", 50)

	group, _ := f.service.CreateGroup(ctx, "rest-1", "owner-1", variation.ID, viandes.ID, 1, 1)

	modifier, err := f.service.AddModifier(ctx, "rest-1", "owner-1", group.ID, boeuf.ID, nil)
	if err != nil {
		t.Fatalf("add modifier: %v", err)
	}
	if modifier.PriceExtraCents != 50 {
		t.Errorf("expected default price extra 50, got %d", modifier.PriceExtraCents)
	}

	// explicit override wins
	override := int64(120)
	poulet := f.addIngredient(t, "rest-1", viandes.ID, "Poulet", 0)
	modifier, err = f.service.AddModifier(ctx, "rest-1", "owner-1", group.ID, poulet.ID, &override)
	if err != nil {
		t.Fatalf("add modifier with override: %v", err)
	}
	if modifier.PriceExtraCents != 120 {
		t.Errorf("expected override 120, got %d", modifier.PriceExtraCents)
	}
}

func TestAddModifier_DuplicateIngredientInGroup(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	variation, _ := f.service.CreateVariation(ctx, "rest-1", "owner-1", "cat-1", "Tacos M", 750)
	viandes := f.addIngredientCategory(t, "rest-1", "Viandes")
	poulet := f.addIngredient(t, "rest-1", viandes.ID, "Poulet", 0)

	group, _ := f.service.CreateGroup(ctx, "rest-1", "owner-1", variation.ID, viandes.ID, 1, 1)

	if _, err := f.service.AddModifier(ctx, "rest-1", "owner-1", group.ID, poulet.ID, nil); err != nil {
		t.Fatalf("first modifier: %v", err)
	}
	_, err := f.service.AddModifier(ctx, "rest-1", "owner-1", group.ID, poulet.ID, nil)
	if !apperr.IsConflict(err) {
		t.Fatalf("expected ConflictError for duplicate ingredient in group, got %v", err)
	}
}

func TestDeleteGroup_CascadesModifiers(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	variation, _ := f.service.CreateVariation(ctx, "rest-1", "owner-1", "cat-1", "Tacos M", 750)
	viandes := f.addIngredientCategory(t, "rest-1", "Viandes")
	poulet := f.addIngredient(t, "rest-1", viandes.ID, "Poulet", 0)

	group, _ := f.service.CreateGroup(ctx, "rest-1", "owner-1", variation.ID, viandes.ID, 1, 1)
	if _, err := f.service.AddModifier(ctx, "rest-1", "owner-1", group.ID, poulet.ID, nil); err != nil {
		t.Fatalf("add modifier: %v", err)
	}

	if err := f.service.DeleteGroup(ctx, "rest-1", "owner-1", group.ID); err != nil {
		t.Fatalf("delete group: %v", err)
	}

	// the ingredient is no longer referenced, so it can be deleted
	count, _ := f.ingredients.CountModifiersForIngredient(ctx, poulet.ID)
	if count != 0 {
		t.Errorf("expected modifier refs released on cascade, got %d", count)
	}

	resolved, err := f.service.ResolveVariation(ctx, "rest-1", "owner-1", variation.ID)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(resolved.Groups) != 0 {
		t.Errorf("expected no groups after delete, got %d", len(resolved.Groups))
	}
}

func TestDeleteCategory_BlockedByVariations(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	category, err := f.service.CreateCategory(ctx, "rest-1", "owner-1", "Tacos", 1)
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	if _, err := f.service.CreateVariation(ctx, "rest-1", "owner-1", category.ID, "Tacos M", 750); err != nil {
		t.Fatalf("create variation: %v", err)
	}

	err = f.service.DeleteCategory(ctx, "rest-1", "owner-1", category.ID)
	if !apperr.IsConflict(err) {
		t.Fatalf("expected ConflictError while variations exist, got %v", err)
	}

	empty, _ := f.service.CreateCategory(ctx, "rest-1", "owner-1", "Boissons", 2)
	if err := f.service.DeleteCategory(ctx, "rest-1", "owner-1", empty.ID); err != nil {
		t.Fatalf("delete empty category: %v", err)
	}
}

func TestDeleteVariation_BlockedByActiveOrders(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	variation, _ := f.service.CreateVariation(ctx, "rest-1", "owner-1", "cat-1", "Tacos M", 750)
	f.repo.ActiveOrders[variation.ID] = 2

	err := f.service.DeleteVariation(ctx, "rest-1", "owner-1", variation.ID)
	if !apperr.IsConflict(err) {
		t.Fatalf("expected ConflictError while orders reference the variation, got %v", err)
	}

	f.repo.ActiveOrders[variation.ID] = 0
	if err := f.service.DeleteVariation(ctx, "rest-1", "owner-1", variation.ID); err != nil {
		t.Fatalf("delete after orders settle: %v", err)
	}
}

func TestResolveVariation_LiveAvailability(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	variation, _ := f.service.CreateVariation(ctx, "rest-1", "owner-1", "cat-1", "Tacos M", 750)
	viandes := f.addIngredientCategory(t, "rest-1", "Viandes")
	poulet := f.addIngredient(t, "rest-1", viandes.ID, "Poulet", 0)

	group, _ := f.service.CreateGroup(ctx, "rest-1", "owner-1", variation.ID, viandes.ID, 0, 1)
	if _, err := f.service.AddModifier(ctx, "rest-1", "owner-1", group.ID, poulet.ID, nil); err != nil {
		t.Fatalf("add modifier: %v", err)
	}

	if _, err := f.ingredients.SetAvailability(ctx, "rest-1", poulet.ID, false); err != nil {
		t.Fatalf("set availability: %v", err)
	}

	resolved, err := f.service.ResolveVariation(ctx, "rest-1", "owner-1", variation.ID)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(resolved.Groups) != 1 || len(resolved.Groups[0].Modifiers) != 1 {
		t.Fatalf("unexpected resolution shape: %+v", resolved)
	}
	if resolved.Groups[0].Modifiers[0].IsAvailable {
		t.Error("expected availability to be read live, not snapshotted")
	}
}

func TestMenu_OwnershipEnforced(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.service.CreateVariation(ctx, "rest-1", "intruder", "cat-1", "Tacos M", 750)
	if !apperr.IsUnauthorized(err) {
		t.Fatalf("expected UnauthorizedError, got %v", err)
	}
	_, err = f.service.CreateCategory(ctx, "rest-1", "intruder", "Tacos", 1)
	if !apperr.IsUnauthorized(err) {
		t.Fatalf("expected UnauthorizedError, got %v", err)
	}
}

// Resolution exposes names, prices and live availability, so it is
// gated exactly like the write operations.
func TestResolveVariation_OwnershipEnforced(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	variation, err := f.service.CreateVariation(ctx, "rest-1", "owner-1", "cat-1", "Tacos M", 750)
	if err != nil {
		t.Fatalf("create variation: %v", err)
	}

	resolved, err := f.service.ResolveVariation(ctx, "rest-1", "intruder", variation.ID)
	if !apperr.IsUnauthorized(err) {
		t.Fatalf("expected UnauthorizedError, got %v", err)
	}
	if resolved != nil {
		t.Fatal("no tenant data should be returned to a non-owner")
	}

	if _, err := f.service.ResolveVariation(ctx, "rest-1", "owner-1", variation.ID); err != nil {
		t.Fatalf("owner resolve: %v", err)
	}
}

// Full owner path: category, variation, required meat group, one
// modifier, then a priced order line at 5,50 €.
func TestComposeOrderLine_TacosScenario(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	category, err := f.service.CreateCategory(ctx, "rest-1", "owner-1", "Tacos", 1)
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	variation, err := f.service.CreateVariation(ctx, "rest-1", "owner-1", category.ID, "1 Viande", 550)
	if err != nil {
		t.Fatalf("create variation: %v", err)
	}

	viandes := f.addIngredientCategory(t, "rest-1", "Viandes")
	poulet := f.addIngredient(t, "rest-1", viandes.ID, "Poulet", 0)

	group, err := f.service.CreateGroup(ctx, "rest-1", "owner-1", variation.ID, viandes.ID, 1, 1)
	if err != nil {
		t.Fatalf("create group: %v", err)
	}
	zero := int64(0)
	modifier, err := f.service.AddModifier(ctx, "rest-1", "owner-1", group.ID, poulet.ID, &zero)
	if err != nil {
		t.Fatalf("add modifier: %v", err)
	}

	line, err := f.service.ComposeOrderLine(ctx, "rest-1", variation.ID, []string{modifier.ID}, 1)
	if err != nil {
		t.Fatalf("compose order line: %v", err)
	}
	if line.TotalPriceCents != 550 {
		t.Errorf("expected total 550, got %d", line.TotalPriceCents)
	}
	if line.ProductName != "1 Viande" {
		t.Errorf("expected product name snapshot, got %q", line.ProductName)
	}
	if line.Options != "Poulet" {
		t.Errorf("expected options 'Poulet', got %q", line.Options)
	}
}
