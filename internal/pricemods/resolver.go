package pricemods

import "sort"

// sourceRank and typeRank are the precedence policies for display/application
// ordering. Additions to either enumeration change exactly one table here.
var sourceRank = map[Source]int{
	SourceInstance: 0,
	SourceRetreat:  1,
	SourceProgram:  1,
	SourceProperty: 2,
}

var typeRank = map[ModType]int{
	TypeBasePrice: 0,
	TypeBaseMod:   1,
	TypeAddon:     2,
	TypeFee:       3,
	TypeTax:       4,
}

const unknownTypeRank = 99

func rankOfSource(s Source) int {
	return sourceRank[s]
}

func rankOfType(t ModType) int {
	if rank, ok := typeRank[t]; ok {
		return rank
	}
	return unknownTypeRank
}

// DeriveSource computes the attachment level of a price mod from its
// association columns: instance beats retreat/program beats property. Exactly
// one source comes out for any row.
func DeriveSource(pm *PriceMod) Source {
	switch {
	case pm.RetreatInstanceID != nil || pm.ProgramInstanceID != nil:
		return SourceInstance
	case pm.RetreatID != nil:
		return SourceRetreat
	case pm.ProgramID != nil:
		return SourceProgram
	default:
		return SourceProperty
	}
}

// TagSources annotates each row with its derived source
func TagSources(mods []PriceMod) []PriceModWithSource {
	tagged := make([]PriceModWithSource, len(mods))
	for i := range mods {
		tagged[i] = PriceModWithSource{
			PriceMod: mods[i],
			Source:   DeriveSource(&mods[i]),
		}
	}
	return tagged
}

// SortPriceMods orders a tagged list by source rank, then type rank, then
// value descending. The sort is stable: rows that tie on all three keys keep
// their fetch order. Sorting is in place and the same slice is returned.
func SortPriceMods(mods []PriceModWithSource) []PriceModWithSource {
	sort.SliceStable(mods, func(i, j int) bool {
		si, sj := rankOfSource(mods[i].Source), rankOfSource(mods[j].Source)
		if si != sj {
			return si < sj
		}
		ti, tj := rankOfType(mods[i].Type), rankOfType(mods[j].Type)
		if ti != tj {
			return ti < tj
		}
		return mods[i].Value > mods[j].Value
	})
	return mods
}
