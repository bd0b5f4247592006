package settings

import (
	"github.com/LennyCopeaux/yallo.fr-sub000/internal/apperr"
)

// DelayKind tags the two shapes a kitchen delay can take. Consumers
// switch on Kind instead of sniffing which fields are set.
type DelayKind string

const (
	DelayFixed DelayKind = "fixed"
	DelayRange DelayKind = "range"
)

// Delay is the announced preparation delay for one kitchen load
// level: either a fixed number of minutes or a min/max window.
type Delay struct {
	Kind  DelayKind `json:"kind"`
	Value int       `json:"value,omitempty"`
	Min   int       `json:"min,omitempty"`
	Max   int       `json:"max,omitempty"`
}

func (d Delay) Validate(label string) error {
	switch d.Kind {
	case DelayFixed:
		if d.Value < 0 {
			return apperr.Validation("%s: fixed delay must be >= 0", label)
		}
	case DelayRange:
		if d.Min < 0 || d.Min > d.Max {
			return apperr.Validation("%s: range requires 0 <= min <= max", label)
		}
	default:
		return apperr.Validation("%s: unknown delay kind %q", label, d.Kind)
	}
	return nil
}

type StopSettings struct {
	Message string `json:"message"`
}

// KitchenSettings maps each kitchen status to what the voice
// assistant announces: a delay for the load levels, a message
// when ordering is stopped.
type KitchenSettings struct {
	Calm   Delay        `json:"CALM"`
	Normal Delay        `json:"NORMAL"`
	Rush   Delay        `json:"RUSH"`
	Stop   StopSettings `json:"STOP"`
}

func (s *KitchenSettings) Validate() error {
	if err := s.Calm.Validate("CALM"); err != nil {
		return err
	}
	if err := s.Normal.Validate("NORMAL"); err != nil {
		return err
	}
	if err := s.Rush.Validate("RUSH"); err != nil {
		return err
	}
	if s.Stop.Message == "" {
		return apperr.Validation("STOP: message is required")
	}
	return nil
}

// DefaultKitchenSettings returns a fresh value each call so no
// shared default can be mutated in place.
func DefaultKitchenSettings() KitchenSettings {
	return KitchenSettings{
		Calm:   Delay{Kind: DelayFixed, Value: 15},
		Normal: Delay{Kind: DelayFixed, Value: 25},
		Rush:   Delay{Kind: DelayRange, Min: 35, Max: 50},
		Stop: StopSettings{
			Message: "Nous ne prenons plus de commandes pour le moment.",
		},
	}
}

// PricingConfig is the per-restaurant subscription pricing row.
// All amounts are integer cents; IncludedMinutes is a count.
type PricingConfig struct {
	RestaurantID           string `json:"restaurant_id"`
	MonthlyPriceCents      int64  `json:"monthly_price_cents"`
	SetupFeeCents          int64  `json:"setup_fee_cents"`
	IncludedMinutes        int    `json:"included_minutes"`
	OverflowPerMinuteCents int64  `json:"overflow_price_per_minute_cents"`
}

func (p *PricingConfig) Validate() error {
	if p.MonthlyPriceCents < 0 || p.SetupFeeCents < 0 || p.OverflowPerMinuteCents < 0 {
		return apperr.Validation("pricing amounts must be >= 0")
	}
	if p.IncludedMinutes < 0 {
		return apperr.Validation("included minutes must be >= 0")
	}
	return nil
}
