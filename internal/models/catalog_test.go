package models

import (
	"testing"
	"time"
)

func TestPromoActiveAt(t *testing.T) {
	validFrom := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	validUntil := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	promo := Promo{Name: "June Sale", DiscountValue: 10, ValidFrom: validFrom, ValidUntil: validUntil}

	cases := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"before window", time.Date(2025, 5, 31, 12, 0, 0, 0, time.UTC), false},
		{"inside window", time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC), true},
		{"on expiry date still active", time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC), true},
		{"day after expiry", time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := promo.ActiveAt(tc.now); got != tc.want {
				t.Errorf("ActiveAt(%v) = %v, want %v", tc.now, got, tc.want)
			}
		})
	}
}

func TestPromoApplyDiscount(t *testing.T) {
	cases := []struct {
		name     string
		discount float64
		total    float64
		want     float64
	}{
		{"ten percent", 10, 5000, 4500},
		{"rounds to nearest peso", 15, 999, 849}, // 849.15 rounds down
		{"rounds half up", 25, 1002, 752},        // 751.5 rounds up
		{"full discount", 100, 5000, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			promo := Promo{DiscountValue: tc.discount}
			if got := promo.ApplyDiscount(tc.total); got != tc.want {
				t.Errorf("ApplyDiscount(%v) with %v%% = %v, want %v", tc.total, tc.discount, got, tc.want)
			}
		})
	}
}
