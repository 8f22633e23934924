package search

import (
	"testing"
)

func fptr(v float64) *float64 { return &v }

func geoItem(id, propertyID, city, country string, lat, lng *float64) Item {
	return Item{
		ID:   id,
		Kind: "retreat",
		Name: "item " + id,
		Property: ItemProperty{
			ID:      propertyID,
			Name:    "property " + propertyID,
			City:    city,
			Country: country,
			Lat:     lat,
			Lng:     lng,
		},
	}
}

func TestGroupByPropertyFiltersAndSorts(t *testing.T) {
	// Query point: Manhattan. Brooklyn ~5 mi, Newark ~9 mi, Boston ~190 mi.
	items := []Item{
		geoItem("boston", "p3", "Boston", "US", fptr(42.3601), fptr(-71.0589)),
		geoItem("brooklyn-1", "p1", "Brooklyn", "US", fptr(40.6782), fptr(-73.9442)),
		geoItem("no-coords", "p4", "Nowhere", "US", nil, nil),
		geoItem("newark", "p2", "Newark", "US", fptr(40.7357), fptr(-74.1724)),
		geoItem("brooklyn-2", "p1", "Brooklyn", "US", fptr(40.6782), fptr(-73.9442)),
	}

	groups := GroupByProperty(items, 40.7128, -74.0060, 50)

	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2 (boston beyond radius, no-coords dropped)", len(groups))
	}
	if groups[0].PropertyID != "p1" || groups[1].PropertyID != "p2" {
		t.Errorf("groups not ordered by nearest first: %s, %s", groups[0].PropertyID, groups[1].PropertyID)
	}
	if len(groups[0].Items) != 2 {
		t.Errorf("p1 group has %d items, want 2", len(groups[0].Items))
	}

	for _, g := range groups {
		prev := -1.0
		for _, item := range g.Items {
			if item.DistanceMiles > 50 {
				t.Errorf("item %s at %.1f mi exceeds radius", item.ID, item.DistanceMiles)
			}
			if item.DistanceMiles < prev {
				t.Errorf("item %s breaks non-decreasing distance order", item.ID)
			}
			prev = item.DistanceMiles
		}
	}
}

func TestGroupByPropertyNeverReturnsNilCoordinates(t *testing.T) {
	items := []Item{
		geoItem("a", "p1", "", "US", nil, fptr(-74.0)),
		geoItem("b", "p2", "", "US", fptr(40.7), nil),
		geoItem("c", "p3", "", "US", nil, nil),
	}

	// A nil coordinate means +Inf distance; no finite radius can include it.
	if groups := GroupByProperty(items, 40.7128, -74.0060, 1e9); len(groups) != 0 {
		t.Errorf("got %d groups, want 0", len(groups))
	}
}

func TestGroupByPropertyLocationLabel(t *testing.T) {
	tests := []struct {
		name    string
		city    string
		country string
		want    string
	}{
		{"both parts", "Kyoto", "JP", "Kyoto, JP"},
		{"city only", "Kyoto", "", "Kyoto"},
		{"country only", "", "JP", "JP"},
		{"neither", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := []Item{geoItem("x", "p1", tt.city, tt.country, fptr(40.7128), fptr(-74.0060))}
			groups := GroupByProperty(items, 40.7128, -74.0060, 10)
			if len(groups) != 1 {
				t.Fatalf("got %d groups, want 1", len(groups))
			}
			if groups[0].PropertyLocation != tt.want {
				t.Errorf("location = %q, want %q", groups[0].PropertyLocation, tt.want)
			}
		})
	}
}

func TestGroupByCountryScenario(t *testing.T) {
	// Three JP items and one TH item, continent asia: JP group first.
	items := []Item{
		geoItem("jp1", "p1", "Kyoto", "JP", nil, nil),
		geoItem("th1", "p2", "Phuket", "TH", nil, nil),
		geoItem("jp2", "p1", "Kyoto", "JP", nil, nil),
		geoItem("jp3", "p3", "Osaka", "JP", nil, nil),
		geoItem("us1", "p4", "Austin", "US", nil, nil),
	}

	groups := GroupByCountry(items, "asia")

	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if groups[0].Country != "JP" || groups[0].Count != 3 {
		t.Errorf("first group = %s/%d, want JP/3", groups[0].Country, groups[0].Count)
	}
	if groups[1].Country != "TH" || groups[1].Count != 1 {
		t.Errorf("second group = %s/%d, want TH/1", groups[1].Country, groups[1].Count)
	}
}

func TestGroupByCountryCaseInsensitive(t *testing.T) {
	items := []Item{geoItem("jp1", "p1", "Kyoto", "JP", nil, nil)}

	for _, continent := range []string{"Asia", "ASIA", "asia", " asia "} {
		if groups := GroupByCountry(items, continent); len(groups) != 1 {
			t.Errorf("continent %q: got %d groups, want 1", continent, len(groups))
		}
	}
}

func TestGroupByCountryUnknownCountryExcluded(t *testing.T) {
	items := []Item{
		geoItem("x1", "p1", "", "XX", nil, nil),
		geoItem("x2", "p2", "", "", nil, nil),
	}

	if groups := GroupByCountry(items, "asia"); len(groups) != 0 {
		t.Errorf("unmapped countries must not group, got %d groups", len(groups))
	}
}

func TestGroupByCountryStableOnEqualCounts(t *testing.T) {
	items := []Item{
		geoItem("th1", "p1", "", "TH", nil, nil),
		geoItem("jp1", "p2", "", "JP", nil, nil),
	}

	groups := GroupByCountry(items, "asia")
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if groups[0].Country != "TH" || groups[1].Country != "JP" {
		t.Errorf("equal counts must keep first-appearance order, got %s then %s", groups[0].Country, groups[1].Country)
	}
}

func TestPaginateItems(t *testing.T) {
	items := make([]Item, 25)
	for i := range items {
		items[i] = Item{ID: string(rune('a' + i))}
	}

	tests := []struct {
		name     string
		page     int
		pageSize int
		wantLen  int
		wantHead string
	}{
		{"first page", 1, 10, 10, items[0].ID},
		{"middle page", 2, 10, 10, items[10].ID},
		{"last partial page", 3, 10, 5, items[20].ID},
		{"past the end", 4, 10, 0, ""},
		{"zero page clamps to one", 0, 10, 10, items[0].ID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PaginateItems(items, tt.page, tt.pageSize)
			if len(got) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(got), tt.wantLen)
			}
			if tt.wantLen > 0 && got[0].ID != tt.wantHead {
				t.Errorf("head = %q, want %q", got[0].ID, tt.wantHead)
			}
		})
	}
}
