package menu

import (
	"strings"

	"github.com/LennyCopeaux/yallo.fr-sub000/internal/apperr"
)

// ComposedLine is the priced result of a selection, ready to be
// snapshotted onto an order item.
type ComposedLine struct {
	VariationID     string
	ProductName     string
	Options         string
	Quantity        int
	UnitPriceCents  int64
	TotalPriceCents int64
}

// ComposeLine validates a modifier selection against the variation's
// groups and prices the line:
//
//	unit  = variation price + Σ selected modifiers' price extra
//	total = unit × quantity
//
// Per group, the count of selected modifiers whose ingredient is
// available must satisfy minSelect <= count <= maxSelect.
func ComposeLine(
	variation *ResolvedVariation,
	selectedModifierIDs []string,
	quantity int,
) (*ComposedLine, error) {

	if quantity < 1 {
		return nil, apperr.Validation("quantity must be >= 1")
	}

	selected := make(map[string]bool, len(selectedModifierIDs))
	for _, id := range selectedModifierIDs {
		selected[id] = true
	}

	unit := variation.PriceCents
	var options []string
	matched := 0

	for _, group := range variation.Groups {
		count := 0
		for _, mod := range group.Modifiers {
			if !selected[mod.ID] {
				continue
			}
			matched++
			if !mod.IsAvailable {
				continue
			}
			count++
			unit += mod.PriceExtraCents
			options = append(options, mod.IngredientName)
		}

		if count < group.MinSelect || count > group.MaxSelect {
			return nil, apperr.Validation(
				"group %q requires between %d and %d selection(s), got %d",
				group.CategoryName, group.MinSelect, group.MaxSelect, count,
			)
		}
	}

	if matched != len(selected) {
		return nil, apperr.Validation("selection contains modifiers not attached to this product")
	}

	return &ComposedLine{
		VariationID:     variation.ID,
		ProductName:     variation.Name,
		Options:         strings.Join(options, ", "),
		Quantity:        quantity,
		UnitPriceCents:  unit,
		TotalPriceCents: unit * int64(quantity),
	}, nil
}
