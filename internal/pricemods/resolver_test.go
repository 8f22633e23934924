package pricemods

import (
	"reflect"
	"testing"

	"github.com/google/uuid"
)

func uptr() *uuid.UUID {
	id := uuid.New()
	return &id
}

func tagged(source Source, modType ModType, value float64) PriceModWithSource {
	return PriceModWithSource{
		PriceMod: PriceMod{ID: uuid.New(), Type: modType, Value: value},
		Source:   source,
	}
}

func TestDeriveSource(t *testing.T) {
	tests := []struct {
		name string
		mod  PriceMod
		want Source
	}{
		{"retreat instance wins", PriceMod{RetreatInstanceID: uptr(), RetreatID: uptr(), PropertyID: uptr()}, SourceInstance},
		{"program instance wins", PriceMod{ProgramInstanceID: uptr(), ProgramID: uptr()}, SourceInstance},
		{"retreat over property", PriceMod{RetreatID: uptr(), PropertyID: uptr()}, SourceRetreat},
		{"program over property", PriceMod{ProgramID: uptr(), PropertyID: uptr()}, SourceProgram},
		{"property fallback", PriceMod{PropertyID: uptr()}, SourceProperty},
		{"host-only row falls back to property", PriceMod{HostID: uptr()}, SourceProperty},
		{"nothing set falls back to property", PriceMod{}, SourceProperty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveSource(&tt.mod); got != tt.want {
				t.Errorf("DeriveSource() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTagSourcesExactlyOneSource(t *testing.T) {
	mods := []PriceMod{
		{RetreatInstanceID: uptr()},
		{RetreatID: uptr()},
		{ProgramID: uptr()},
		{PropertyID: uptr()},
		{},
	}

	valid := map[Source]bool{
		SourceInstance: true,
		SourceRetreat:  true,
		SourceProgram:  true,
		SourceProperty: true,
	}

	for i, tagged := range TagSources(mods) {
		if !valid[tagged.Source] {
			t.Errorf("row %d: unexpected source %q", i, tagged.Source)
		}
	}
}

func TestSortPriceModsScenario(t *testing.T) {
	// property/TAX/5, instance/BASE_PRICE/100, retreat/FEE/20
	// must sort to instance, retreat, property.
	mods := []PriceModWithSource{
		tagged(SourceProperty, TypeTax, 5),
		tagged(SourceInstance, TypeBasePrice, 100),
		tagged(SourceRetreat, TypeFee, 20),
	}

	sorted := SortPriceMods(mods)

	wantSources := []Source{SourceInstance, SourceRetreat, SourceProperty}
	for i, want := range wantSources {
		if sorted[i].Source != want {
			t.Fatalf("position %d: got source %q, want %q", i, sorted[i].Source, want)
		}
	}
}

func TestSortPriceModsTypeRankWithinSource(t *testing.T) {
	mods := []PriceModWithSource{
		tagged(SourceProperty, TypeTax, 1),
		tagged(SourceProperty, TypeFixed, 1), // legacy type ranks last
		tagged(SourceProperty, TypeBasePrice, 1),
		tagged(SourceProperty, TypeFee, 1),
		tagged(SourceProperty, TypeAddon, 1),
		tagged(SourceProperty, TypeBaseMod, 1),
	}

	sorted := SortPriceMods(mods)

	wantTypes := []ModType{TypeBasePrice, TypeBaseMod, TypeAddon, TypeFee, TypeTax, TypeFixed}
	for i, want := range wantTypes {
		if sorted[i].Type != want {
			t.Errorf("position %d: got type %q, want %q", i, sorted[i].Type, want)
		}
	}
}

func TestSortPriceModsValueDescendingOnTies(t *testing.T) {
	mods := []PriceModWithSource{
		tagged(SourceRetreat, TypeFee, 10),
		tagged(SourceRetreat, TypeFee, 50),
		tagged(SourceRetreat, TypeFee, 30),
	}

	sorted := SortPriceMods(mods)

	wantValues := []float64{50, 30, 10}
	for i, want := range wantValues {
		if sorted[i].Value != want {
			t.Errorf("position %d: got value %v, want %v", i, sorted[i].Value, want)
		}
	}
}

func TestSortPriceModsRetreatAndProgramShareRank(t *testing.T) {
	program := tagged(SourceProgram, TypeFee, 10)
	retreat := tagged(SourceRetreat, TypeFee, 10)

	sorted := SortPriceMods([]PriceModWithSource{program, retreat})

	// Same rank, same type, same value: stable sort keeps fetch order.
	if sorted[0].ID != program.ID || sorted[1].ID != retreat.ID {
		t.Error("equal-rank rows did not keep their original order")
	}
}

func TestSortPriceModsStableOnExactTies(t *testing.T) {
	first := tagged(SourceProperty, TypeTax, 7)
	second := tagged(SourceProperty, TypeTax, 7)
	third := tagged(SourceProperty, TypeTax, 7)

	sorted := SortPriceMods([]PriceModWithSource{first, second, third})

	wantIDs := []uuid.UUID{first.ID, second.ID, third.ID}
	for i, want := range wantIDs {
		if sorted[i].ID != want {
			t.Fatalf("position %d: exact ties must keep fetch order", i)
		}
	}
}

func TestSortPriceModsIdempotent(t *testing.T) {
	mods := []PriceModWithSource{
		tagged(SourceProperty, TypeTax, 5),
		tagged(SourceInstance, TypeBasePrice, 100),
		tagged(SourceInstance, TypeAddon, 15),
		tagged(SourceRetreat, TypeFee, 20),
		tagged(SourceRetreat, TypeFee, 20),
	}

	once := SortPriceMods(mods)
	snapshot := make([]PriceModWithSource, len(once))
	copy(snapshot, once)

	twice := SortPriceMods(once)

	if !reflect.DeepEqual(snapshot, twice) {
		t.Error("sorting an already-sorted list changed it")
	}
}

func TestSortPriceModsPrecedenceHoldsForAdjacentPairs(t *testing.T) {
	mods := []PriceModWithSource{
		tagged(SourceProperty, TypeBasePrice, 80),
		tagged(SourceInstance, TypeTax, 9),
		tagged(SourceProgram, TypeAddon, 25),
		tagged(SourceInstance, TypeBasePrice, 120),
		tagged(SourceProperty, TypeFee, 12),
		tagged(SourceRetreat, TypeBaseMod, -10),
	}

	sorted := SortPriceMods(mods)

	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]
		if rankOfSource(prev.Source) > rankOfSource(cur.Source) {
			t.Fatalf("position %d: source rank regressed", i)
		}
		if rankOfSource(prev.Source) == rankOfSource(cur.Source) {
			if rankOfType(prev.Type) > rankOfType(cur.Type) {
				t.Fatalf("position %d: type rank regressed within source", i)
			}
			if rankOfType(prev.Type) == rankOfType(cur.Type) && prev.Value < cur.Value {
				t.Fatalf("position %d: value not descending within tie", i)
			}
		}
	}
}

func TestRelatedIDsIsEmpty(t *testing.T) {
	if !(RelatedIDs{}).IsEmpty() {
		t.Error("zero RelatedIDs must be empty")
	}
	if (RelatedIDs{PropertyID: uptr()}).IsEmpty() {
		t.Error("RelatedIDs with a property filter must not be empty")
	}
}
