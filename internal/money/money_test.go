package money

import "testing"

func TestToCents(t *testing.T) {
	cases := []struct {
		euros float64
		cents int64
	}{
		{0, 0},
		{12.50, 1250},
		{5.5, 550},
		{8.50, 850},
		{0.01, 1},
		{19.99, 1999},
		{100, 10000},
	}

	for _, tc := range cases {
		if got := ToCents(tc.euros); got != tc.cents {
			t.Errorf("ToCents(%v) = %d, want %d", tc.euros, got, tc.cents)
		}
	}
}

func TestRoundHalfAwayFromZero(t *testing.T) {
	// three-decimal inputs must not truncate
	if got := ToCents(12.505); got != 1251 {
		t.Errorf("ToCents(12.505) = %d, want 1251", got)
	}
}

func TestRoundTripExactForTwoDecimals(t *testing.T) {
	for cents := int64(0); cents <= 5000; cents++ {
		if got := ToCents(ToEuros(cents)); got != cents {
			t.Fatalf("round trip broke at %d cents (got %d)", cents, got)
		}
	}
}
