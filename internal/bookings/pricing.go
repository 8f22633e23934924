package bookings

import (
	"crypto/rand"
	"fmt"

	"retreatly/internal/pricemods"
)

// ComputeTotalPrice folds a resolved price mod list into one amount:
// BASE_PRICE values are per guest, flat modifiers (BASE_MOD, ADDON, FEE,
// legacy FIXED) apply once per booking, and percentage modifiers (TAX, legacy
// PERCENT) apply to the resulting subtotal. A negative result clamps to zero.
func ComputeTotalPrice(mods []pricemods.PriceModWithSource, guests int) float64 {
	if guests < 1 {
		guests = 1
	}

	var base, flat, percent float64
	for _, mod := range mods {
		switch mod.Type {
		case pricemods.TypeBasePrice:
			base += mod.Value
		case pricemods.TypeBaseMod, pricemods.TypeAddon, pricemods.TypeFee, pricemods.TypeFixed:
			flat += mod.Value
		case pricemods.TypeTax, pricemods.TypePercent:
			percent += mod.Value
		}
	}

	subtotal := base*float64(guests) + flat
	total := subtotal + subtotal*percent/100
	if total < 0 {
		return 0
	}
	return total
}

const refAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// generateBookingRef produces a short human-readable reference like
// RTL-7KQ2M9XA. The alphabet drops lookalike characters.
func generateBookingRef() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing is effectively unreachable; fall back to a
		// deterministic marker rather than panicking in a request path.
		return "RTL-ERRRRRRR"
	}
	for i, b := range buf {
		buf[i] = refAlphabet[int(b)%len(refAlphabet)]
	}
	return fmt.Sprintf("RTL-%s", buf)
}
