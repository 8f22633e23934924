package geo

import "strings"

// Continent names as used by the destination browse experience.
const (
	ContinentAfrica       = "Africa"
	ContinentAsia         = "Asia"
	ContinentEurope       = "Europe"
	ContinentNorthAmerica = "North America"
	ContinentSouthAmerica = "South America"
	ContinentOceania      = "Oceania"
)

// countryToContinent maps ISO 3166-1 alpha-2 country codes to continent names.
// Only countries with listed properties need to appear here; unknown codes
// resolve to an empty string and are excluded from continent grouping.
var countryToContinent = map[string]string{
	// Africa
	"EG": ContinentAfrica,
	"KE": ContinentAfrica,
	"MA": ContinentAfrica,
	"MU": ContinentAfrica,
	"NA": ContinentAfrica,
	"NG": ContinentAfrica,
	"RW": ContinentAfrica,
	"SC": ContinentAfrica,
	"TZ": ContinentAfrica,
	"ZA": ContinentAfrica,

	// Asia
	"AE": ContinentAsia,
	"BT": ContinentAsia,
	"CN": ContinentAsia,
	"ID": ContinentAsia,
	"IL": ContinentAsia,
	"IN": ContinentAsia,
	"JO": ContinentAsia,
	"JP": ContinentAsia,
	"KH": ContinentAsia,
	"KR": ContinentAsia,
	"LA": ContinentAsia,
	"LK": ContinentAsia,
	"MM": ContinentAsia,
	"MV": ContinentAsia,
	"MY": ContinentAsia,
	"NP": ContinentAsia,
	"PH": ContinentAsia,
	"SG": ContinentAsia,
	"TH": ContinentAsia,
	"TR": ContinentAsia,
	"TW": ContinentAsia,
	"VN": ContinentAsia,

	// Europe
	"AT": ContinentEurope,
	"CH": ContinentEurope,
	"CZ": ContinentEurope,
	"DE": ContinentEurope,
	"DK": ContinentEurope,
	"ES": ContinentEurope,
	"FI": ContinentEurope,
	"FR": ContinentEurope,
	"GB": ContinentEurope,
	"GR": ContinentEurope,
	"HR": ContinentEurope,
	"HU": ContinentEurope,
	"IE": ContinentEurope,
	"IS": ContinentEurope,
	"IT": ContinentEurope,
	"ME": ContinentEurope,
	"NL": ContinentEurope,
	"NO": ContinentEurope,
	"PL": ContinentEurope,
	"PT": ContinentEurope,
	"RO": ContinentEurope,
	"SE": ContinentEurope,
	"SI": ContinentEurope,

	// North America
	"BS": ContinentNorthAmerica,
	"BZ": ContinentNorthAmerica,
	"CA": ContinentNorthAmerica,
	"CR": ContinentNorthAmerica,
	"CU": ContinentNorthAmerica,
	"DO": ContinentNorthAmerica,
	"GT": ContinentNorthAmerica,
	"JM": ContinentNorthAmerica,
	"MX": ContinentNorthAmerica,
	"NI": ContinentNorthAmerica,
	"PA": ContinentNorthAmerica,
	"US": ContinentNorthAmerica,

	// South America
	"AR": ContinentSouthAmerica,
	"BO": ContinentSouthAmerica,
	"BR": ContinentSouthAmerica,
	"CL": ContinentSouthAmerica,
	"CO": ContinentSouthAmerica,
	"EC": ContinentSouthAmerica,
	"PE": ContinentSouthAmerica,
	"UY": ContinentSouthAmerica,

	// Oceania
	"AU": ContinentOceania,
	"FJ": ContinentOceania,
	"NZ": ContinentOceania,
	"PF": ContinentOceania,
	"WS": ContinentOceania,
}

// ShortNameToContinent resolves an ISO country code to its continent name.
// Returns an empty string for unknown or empty codes.
func ShortNameToContinent(countryCode string) string {
	return countryToContinent[strings.ToUpper(strings.TrimSpace(countryCode))]
}

// IsValidContinent reports whether name matches a known continent,
// case-insensitively.
func IsValidContinent(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "africa", "asia", "europe", "north america", "south america", "oceania":
		return true
	default:
		return false
	}
}
