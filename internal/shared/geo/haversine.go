package geo

import "math"

// earthRadiusMiles is the mean Earth radius used for great-circle distances.
const earthRadiusMiles = 3959

// Haversine returns the great-circle distance in miles between a query point
// and a target point. A target with a missing coordinate is treated as
// infinitely far away, which excludes it from any finite-radius filter
// without being an error.
func Haversine(lat1, lng1 float64, lat2, lng2 *float64) float64 {
	if lat2 == nil || lng2 == nil {
		return math.Inf(1)
	}

	dLat := (*lat2 - lat1) * math.Pi / 180
	dLng := (*lng2 - lng1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(*lat2*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMiles * c
}
