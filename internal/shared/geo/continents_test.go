package geo

import "testing"

func TestShortNameToContinent(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"JP", "Asia"},
		{"TH", "Asia"},
		{"US", "North America"},
		{"BR", "South America"},
		{"FR", "Europe"},
		{"AU", "Oceania"},
		{"ZA", "Africa"},
		{"jp", "Asia"},     // case-insensitive
		{" mx ", "North America"}, // whitespace tolerated
		{"XX", ""},         // unknown code
		{"", ""},           // empty code
	}

	for _, tt := range tests {
		if got := ShortNameToContinent(tt.code); got != tt.want {
			t.Errorf("ShortNameToContinent(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestIsValidContinent(t *testing.T) {
	valid := []string{"Asia", "asia", "ASIA", "North America", "north america", " Europe "}
	for _, name := range valid {
		if !IsValidContinent(name) {
			t.Errorf("IsValidContinent(%q) = false, want true", name)
		}
	}

	invalid := []string{"", "Antarctica", "Atlantis", "as ia"}
	for _, name := range invalid {
		if IsValidContinent(name) {
			t.Errorf("IsValidContinent(%q) = true, want false", name)
		}
	}
}
