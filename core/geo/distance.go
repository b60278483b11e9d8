package geo

import (
	"math"

	"github.com/villnoweric/package-delivery-tycoon/core/model"
)

const (
	earthRadiusMiles = 3959
	earthRadiusKM    = 6371
)

// DistanceMiles returns the great-circle distance in miles between two
// points using the haversine formula. All simulation mileage uses this
// variant.
func DistanceMiles(a, b model.Coord) float64 {
	return haversine(a, b, earthRadiusMiles)
}

// DistanceKM is the kilometer variant, used only when selecting the
// service area at game start.
func DistanceKM(a, b model.Coord) float64 {
	return haversine(a, b, earthRadiusKM)
}

func haversine(a, b model.Coord, radius float64) float64 {
	dLat := toRad(b.Lat - a.Lat)
	dLon := toRad(b.Lon - a.Lon)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(a.Lat))*math.Cos(toRad(b.Lat))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return radius * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func toRad(deg float64) float64 { return deg * math.Pi / 180 }
