package search

// Item is the flat search unit: one retreat or program carrying the geo
// fields of its property. Payload holds the full API response object so
// grouping never re-fetches.
type Item struct {
	ID       string       `json:"id"`
	Kind     string       `json:"kind"` // "retreat" or "program"
	Name     string       `json:"name"`
	Category string       `json:"category"`
	Property ItemProperty `json:"property"`
	Payload  interface{}  `json:"payload,omitempty"`
}

// ItemProperty is the geo slice of an item's property. Lat/Lng stay nullable:
// an item without coordinates is excluded from radius search but still counts
// for country grouping when Country is set.
type ItemProperty struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	City    string   `json:"city"`
	Country string   `json:"country"`
	Lat     *float64 `json:"lat"`
	Lng     *float64 `json:"lng"`
}

// RankedItem is an item annotated with its distance from the query point
type RankedItem struct {
	Item
	DistanceMiles float64 `json:"distance_miles"`
}

// PropertyGroup collects the in-radius items of one property, nearest
// property first.
type PropertyGroup struct {
	PropertyID       string       `json:"property_id"`
	PropertyName     string       `json:"property_name"`
	PropertyLocation string       `json:"property_location"`
	DistanceMiles    float64      `json:"distance_miles"`
	Items            []RankedItem `json:"items"`
}

// CountryGroup collects the items of one country within a continent, largest
// group first.
type CountryGroup struct {
	Country string `json:"country"`
	Count   int    `json:"count"`
	Items   []Item `json:"items"`
}

// Options steers a search. Precedence: Continent, then Latitude/Longitude,
// then plain pagination.
type Options struct {
	Continent   string   `form:"continent" binding:"omitempty,continent"`
	Latitude    *float64 `form:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude   *float64 `form:"longitude" binding:"omitempty,min=-180,max=180"`
	RadiusMiles *float64 `form:"radius_miles" binding:"omitempty,gt=0"`
	Page        int      `form:"page" binding:"omitempty,min=1"`
	PageSize    int      `form:"page_size" binding:"omitempty,min=1,max=100"`
	Category    string   `form:"category"`
}

// Result is the terminal outcome of a search. Type names the shape of Data:
// "location" ([]PropertyGroup), "continent" ([]CountryGroup), "all" ([]Item),
// "na" on failure. Errors never escape as Go errors past ExecuteSearch.
type Result struct {
	OK    bool        `json:"ok"`
	Type  string      `json:"type"`
	Data  interface{} `json:"data"`
	Error string      `json:"error,omitempty"`
}
