package search

import (
	"sort"
	"strings"

	"retreatly/internal/shared/geo"
)

// GroupByProperty ranks items by distance from the query point and buckets
// them per property. Items whose property lacks coordinates are dropped, then
// anything beyond radiusMiles. Groups appear in the order their nearest item
// does, so the concatenation of all groups' items is non-decreasing in
// distance within each group and group heads ascend.
func GroupByProperty(items []Item, latitude, longitude, radiusMiles float64) []PropertyGroup {
	ranked := make([]RankedItem, 0, len(items))
	for _, item := range items {
		if item.Property.Lat == nil || item.Property.Lng == nil {
			continue
		}
		distance := geo.Haversine(latitude, longitude, item.Property.Lat, item.Property.Lng)
		if distance > radiusMiles {
			continue
		}
		ranked = append(ranked, RankedItem{Item: item, DistanceMiles: distance})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceMiles < ranked[j].DistanceMiles
	})

	groups := make([]PropertyGroup, 0)
	index := make(map[string]int)
	for _, item := range ranked {
		propertyID := item.Property.ID
		if i, seen := index[propertyID]; seen {
			groups[i].Items = append(groups[i].Items, item)
			continue
		}
		index[propertyID] = len(groups)
		groups = append(groups, PropertyGroup{
			PropertyID:       propertyID,
			PropertyName:     item.Property.Name,
			PropertyLocation: formatLocation(item.Property.City, item.Property.Country),
			DistanceMiles:    item.DistanceMiles,
			Items:            []RankedItem{item},
		})
	}

	return groups
}

// GroupByCountry keeps items whose country maps to the requested continent
// (case-insensitive) and buckets them by raw country code. Groups are ordered
// by descending item count; equal counts keep first-appearance order.
func GroupByCountry(items []Item, continent string) []CountryGroup {
	want := strings.ToLower(strings.TrimSpace(continent))

	groups := make([]CountryGroup, 0)
	index := make(map[string]int)
	for _, item := range items {
		mapped := geo.ShortNameToContinent(item.Property.Country)
		if mapped == "" || strings.ToLower(mapped) != want {
			continue
		}
		country := item.Property.Country
		if i, seen := index[country]; seen {
			groups[i].Items = append(groups[i].Items, item)
			groups[i].Count++
			continue
		}
		index[country] = len(groups)
		groups = append(groups, CountryGroup{
			Country: country,
			Count:   1,
			Items:   []Item{item},
		})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Count > groups[j].Count
	})

	return groups
}

// PaginateItems slices out one page. Out-of-range pages come back empty.
func PaginateItems(items []Item, page, pageSize int) []Item {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		return []Item{}
	}

	start := (page - 1) * pageSize
	if start >= len(items) {
		return []Item{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// formatLocation builds "City, Country" dropping whichever part is empty
func formatLocation(city, country string) string {
	parts := make([]string, 0, 2)
	if city != "" {
		parts = append(parts, city)
	}
	if country != "" {
		parts = append(parts, country)
	}
	return strings.Join(parts, ", ")
}
