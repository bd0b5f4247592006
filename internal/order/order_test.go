package order

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/LennyCopeaux/yallo.fr-sub000/internal/apperr"
	"github.com/LennyCopeaux/yallo.fr-sub000/internal/menu"
)

type ownerOnlyReader struct{}

func (ownerOnlyReader) IsOwner(ctx context.Context, restaurantID, userID string) (bool, error) {
	return userID == "owner-1", nil
}

// stubComposer prices every known variation at a fixed unit price.
type stubComposer struct {
	prices map[string]int64
}

func (s *stubComposer) ComposeOrderLine(
	ctx context.Context,
	restaurantID, variationID string,
	selectedModifierIDs []string,
	quantity int,
) (*menu.ComposedLine, error) {
	price, ok := s.prices[variationID]
	if !ok {
		return nil, apperr.NotFound("product variation not found")
	}
	if quantity < 1 {
		return nil, apperr.Validation("quantity must be >= 1")
	}
	return &menu.ComposedLine{
		VariationID:     variationID,
		ProductName:     "Tacos " + variationID,
		Quantity:        quantity,
		UnitPriceCents:  price,
		TotalPriceCents: price * int64(quantity),
	}, nil
}

func newTestService() *Service {
	composer := &stubComposer{prices: map[string]int64{
		"var-tacos": 550,
		"var-menu":  900,
	}}
	return NewService(NewInMemoryRepository(), composer, ownerOnlyReader{}, zap.NewNop())
}

func TestCreateOrder_TotalsAndSnapshot(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	order, err := s.CreateOrder(ctx, "rest-1", "owner-1", "Alice", "+33600000000", nil, "", []LineInput{
		{VariationID: "var-tacos", Quantity: 2},
		{VariationID: "var-menu", Quantity: 1},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	if order.Status != StatusNew {
		t.Errorf("expected NEW, got %s", order.Status)
	}
	if order.TotalCents != 2*550+900 {
		t.Errorf("expected total 2000, got %d", order.TotalCents)
	}
	if len(order.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(order.Items))
	}
	if order.Items[0].VariationID == nil || *order.Items[0].VariationID != "var-tacos" {
		t.Error("expected variation reference on item")
	}
	if order.Items[0].ProductName == "" {
		t.Error("expected product name snapshot on item")
	}
}

func TestCreateOrder_Validation(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	_, err := s.CreateOrder(ctx, "rest-1", "owner-1", "", "", nil, "", []LineInput{
		{VariationID: "var-tacos", Quantity: 1},
	})
	if !apperr.IsValidation(err) {
		t.Fatalf("expected ValidationError for empty customer name, got %v", err)
	}

	_, err = s.CreateOrder(ctx, "rest-1", "owner-1", "Alice", "", nil, "", nil)
	if !apperr.IsValidation(err) {
		t.Fatalf("expected ValidationError for empty order, got %v", err)
	}

	_, err = s.CreateOrder(ctx, "rest-1", "owner-1", "Alice", "", nil, "", []LineInput{
		{VariationID: "var-unknown", Quantity: 1},
	})
	if !apperr.IsNotFound(err) {
		t.Fatalf("expected NotFoundError for unknown variation, got %v", err)
	}
}

func TestCreateOrder_SequencePerRestaurant(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	lines := []LineInput{{VariationID: "var-tacos", Quantity: 1}}

	first, _ := s.CreateOrder(ctx, "rest-1", "owner-1", "Alice", "", nil, "", lines)
	second, _ := s.CreateOrder(ctx, "rest-1", "owner-1", "Bob", "", nil, "", lines)
	other, _ := s.CreateOrder(ctx, "rest-2", "owner-1", "Carol", "", nil, "", lines)

	if first.OrderNumber != 1 || second.OrderNumber != 2 {
		t.Errorf("expected sequence 1, 2; got %d, %d", first.OrderNumber, second.OrderNumber)
	}
	if other.OrderNumber != 1 {
		t.Errorf("expected independent sequence per restaurant, got %d", other.OrderNumber)
	}
}

func TestUpdateStatus_ForwardPath(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	order, _ := s.CreateOrder(ctx, "rest-1", "owner-1", "Alice", "", nil, "", []LineInput{
		{VariationID: "var-tacos", Quantity: 1},
	})

	for _, next := range []Status{StatusPreparing, StatusReady, StatusDelivered} {
		updated, err := s.UpdateStatus(ctx, "rest-1", "owner-1", order.ID, next)
		if err != nil {
			t.Fatalf("transition to %s: %v", next, err)
		}
		if updated.Status != next {
			t.Errorf("expected %s, got %s", next, updated.Status)
		}
	}
}

func TestUpdateStatus_TerminalStatesAreFinal(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	lines := []LineInput{{VariationID: "var-tacos", Quantity: 1}}

	delivered, _ := s.CreateOrder(ctx, "rest-1", "owner-1", "Alice", "", nil, "", lines)
	if _, err := s.UpdateStatus(ctx, "rest-1", "owner-1", delivered.ID, StatusDelivered); err != nil {
		t.Fatalf("deliver: %v", err)
	}
	cancelled, _ := s.CreateOrder(ctx, "rest-1", "owner-1", "Bob", "", nil, "", lines)
	if _, err := s.UpdateStatus(ctx, "rest-1", "owner-1", cancelled.ID, StatusCancelled); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	for _, terminal := range []*Order{delivered, cancelled} {
		for _, next := range []Status{StatusNew, StatusPreparing, StatusReady, StatusDelivered, StatusCancelled} {
			_, err := s.UpdateStatus(ctx, "rest-1", "owner-1", terminal.ID, next)
			if !apperr.IsInvalidTransition(err) && !apperr.IsValidation(err) {
				t.Errorf("expected transition out of terminal state to fail, %s -> %s gave %v",
					terminal.Status, next, err)
			}
		}
	}
}

func TestUpdateStatus_Rules(t *testing.T) {
	cases := []struct {
		from, to Status
		allowed  bool
	}{
		{StatusNew, StatusPreparing, true},
		{StatusNew, StatusCancelled, true},
		{StatusNew, StatusDelivered, true}, // loose rule, no stepwise enforcement
		{StatusPreparing, StatusReady, true},
		{StatusPreparing, StatusCancelled, true},
		{StatusReady, StatusDelivered, true},
		{StatusReady, StatusCancelled, true},
		{StatusPreparing, StatusNew, false},
		{StatusReady, StatusNew, false},
		{StatusDelivered, StatusCancelled, false},
		{StatusCancelled, StatusPreparing, false},
		{StatusNew, StatusNew, false},
	}

	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.allowed {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.allowed)
		}
	}
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	order, _ := s.CreateOrder(ctx, "rest-1", "owner-1", "Alice", "", nil, "", []LineInput{
		{VariationID: "var-tacos", Quantity: 1},
	})

	_, err := s.UpdateStatus(ctx, "rest-1", "owner-1", order.ID, Status("SHIPPED"))
	if !apperr.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestListOrders_StatusFilter(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	lines := []LineInput{{VariationID: "var-tacos", Quantity: 1}}
	a, _ := s.CreateOrder(ctx, "rest-1", "owner-1", "Alice", "", nil, "", lines)
	s.CreateOrder(ctx, "rest-1", "owner-1", "Bob", "", nil, "", lines)
	s.UpdateStatus(ctx, "rest-1", "owner-1", a.ID, StatusPreparing)

	preparing, err := s.ListOrders(ctx, "rest-1", "owner-1", StatusPreparing)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(preparing) != 1 || preparing[0].ID != a.ID {
		t.Errorf("expected only the preparing order, got %d", len(preparing))
	}

	all, _ := s.ListOrders(ctx, "rest-1", "owner-1", "")
	if len(all) != 2 {
		t.Errorf("expected 2 orders unfiltered, got %d", len(all))
	}

	if _, err := s.ListOrders(ctx, "rest-1", "owner-1", Status("BOGUS")); !apperr.IsValidation(err) {
		t.Errorf("expected ValidationError for unknown filter, got %v", err)
	}
}

func TestOrders_OwnershipEnforced(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	_, err := s.CreateOrder(ctx, "rest-1", "intruder", "Alice", "", nil, "", []LineInput{
		{VariationID: "var-tacos", Quantity: 1},
	})
	if !apperr.IsUnauthorized(err) {
		t.Fatalf("expected UnauthorizedError, got %v", err)
	}
	if _, err := s.ListOrders(ctx, "rest-1", "intruder", ""); !apperr.IsUnauthorized(err) {
		t.Fatalf("expected UnauthorizedError, got %v", err)
	}
}
