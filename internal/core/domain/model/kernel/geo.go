package kernel

import "math"

// EarthRadiusKm is the mean Earth radius used by DistanceKm.
const EarthRadiusKm = 6371.0

// Delivery-time tiers shared by tariff quotes and route legs.
const (
	localDeliveryMaxKm  = 5.0
	nearbyDeliveryMaxKm = 15.0
	mediumDeliveryMaxKm = 30.0

	localDeliveryMinutes  = 30
	nearbyDeliveryMinutes = 60
	mediumDeliveryMinutes = 120
	farDeliveryMinutes    = 240
)

// ToRadians converts degrees to radians.
func ToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// ToDegrees converts radians to degrees.
func ToDegrees(radians float64) float64 {
	return radians * 180 / math.Pi
}

// DistanceKm returns the haversine great-circle distance between two points on a
// sphere of radius EarthRadiusKm. It is symmetric and zero for identical points.
// Inputs are expected to be in range; callers validate through NewLocation.
// The result is finite for every valid pair, antipodes included.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := ToRadians(lat2 - lat1)
	dLon := ToRadians(lon2 - lon1)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	a := sinLat*sinLat + math.Cos(ToRadians(lat1))*math.Cos(ToRadians(lat2))*sinLon*sinLon
	// Rounding can leave a slightly outside [0, 1] near antipodes.
	a = math.Max(0, math.Min(1, a))
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// ContainsPoint reports whether (lat, lon) lies inside the ring described by boundary,
// using ray casting with longitude as x and latitude as y. The ring is closed
// implicitly from the last vertex back to the first; repeating the first vertex at
// the end is allowed and changes nothing. Rings with fewer than 3 vertices contain
// no points.
//
// Membership of a point lying exactly on an edge or vertex is implementation
// defined: depending on the edge orientation it may be reported inside or outside.
// Rings crossing the antimeridian or enclosing a pole are not supported.
func ContainsPoint(lat, lon float64, boundary []Location) bool {
	n := len(boundary)
	if n < MinPolygonVertices {
		return false
	}

	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		yi, xi := boundary[i].latitude, boundary[i].longitude
		yj, xj := boundary[j].latitude, boundary[j].longitude

		if (yi > lat) != (yj > lat) {
			crossX := (xj-xi)*(lat-yi)/(yj-yi) + xi
			if lon < crossX {
				inside = !inside
			}
		}
	}

	return inside
}

// EstimatedMinutes maps a distance onto the delivery-time tiers:
// 30 min up to 5 km, 60 up to 15 km, 120 up to 30 km and 240 beyond.
func EstimatedMinutes(distanceKm float64) int {
	switch {
	case distanceKm <= localDeliveryMaxKm:
		return localDeliveryMinutes
	case distanceKm <= nearbyDeliveryMaxKm:
		return nearbyDeliveryMinutes
	case distanceKm <= mediumDeliveryMaxKm:
		return mediumDeliveryMinutes
	default:
		return farDeliveryMinutes
	}
}
