package bookings

import (
	"math"
	"strings"
	"testing"

	"retreatly/internal/pricemods"
)

func mod(modType pricemods.ModType, value float64) pricemods.PriceModWithSource {
	return pricemods.PriceModWithSource{
		PriceMod: pricemods.PriceMod{Type: modType, Value: value},
	}
}

func TestComputeTotalPrice(t *testing.T) {
	tests := []struct {
		name   string
		mods   []pricemods.PriceModWithSource
		guests int
		want   float64
	}{
		{
			name:   "base price only",
			mods:   []pricemods.PriceModWithSource{mod(pricemods.TypeBasePrice, 100)},
			guests: 2,
			want:   200,
		},
		{
			name: "flat modifiers apply once",
			mods: []pricemods.PriceModWithSource{
				mod(pricemods.TypeBasePrice, 100),
				mod(pricemods.TypeFee, 30),
				mod(pricemods.TypeAddon, 20),
			},
			guests: 2,
			want:   250,
		},
		{
			name: "tax applies to subtotal",
			mods: []pricemods.PriceModWithSource{
				mod(pricemods.TypeBasePrice, 100),
				mod(pricemods.TypeTax, 10),
			},
			guests: 1,
			want:   110,
		},
		{
			name: "full stack",
			mods: []pricemods.PriceModWithSource{
				mod(pricemods.TypeBasePrice, 100),
				mod(pricemods.TypeBaseMod, -20),
				mod(pricemods.TypeFee, 15),
				mod(pricemods.TypeTax, 10),
			},
			guests: 2,
			want:   (200 - 20 + 15) * 1.10,
		},
		{
			name: "legacy types still count",
			mods: []pricemods.PriceModWithSource{
				mod(pricemods.TypeBasePrice, 50),
				mod(pricemods.TypeFixed, 10),
				mod(pricemods.TypePercent, 20),
			},
			guests: 1,
			want:   72,
		},
		{
			name:   "no mods yields zero",
			mods:   nil,
			guests: 3,
			want:   0,
		},
		{
			name: "negative total clamps to zero",
			mods: []pricemods.PriceModWithSource{
				mod(pricemods.TypeBasePrice, 10),
				mod(pricemods.TypeBaseMod, -100),
			},
			guests: 1,
			want:   0,
		},
		{
			name:   "zero guests treated as one",
			mods:   []pricemods.PriceModWithSource{mod(pricemods.TypeBasePrice, 80)},
			guests: 0,
			want:   80,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotalPrice(tt.mods, tt.guests)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ComputeTotalPrice() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBookingStatusTransitions(t *testing.T) {
	tests := []struct {
		from Status
		to   Status
		want bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCancelled, StatusPending, false},
	}

	for _, tt := range tests {
		b := Booking{Status: tt.from}
		if got := b.CanTransitionTo(tt.to); got != tt.want {
			t.Errorf("%s -> %s = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestGenerateBookingRef(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		ref := generateBookingRef()
		if !strings.HasPrefix(ref, "RTL-") || len(ref) != 12 {
			t.Fatalf("unexpected ref format: %q", ref)
		}
		for _, ch := range ref[4:] {
			if !strings.ContainsRune(refAlphabet, ch) {
				t.Fatalf("ref %q contains %q outside the alphabet", ref, ch)
			}
		}
		if seen[ref] {
			t.Fatalf("duplicate ref generated: %q", ref)
		}
		seen[ref] = true
	}
}
