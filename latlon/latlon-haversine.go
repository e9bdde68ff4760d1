package latlon

import "math"

// LatLonHaversine is a great circle model that stays well conditioned for
// short distances, where the law of cosines loses precision.
type LatLonHaversine struct{}

func (LatLonHaversine) initialBearingTo(from, to LatLon) float64 {
	φ1 := toRadians(from.Lat)
	φ2 := toRadians(to.Lat)

	Δλ := toRadians(DeltaLong(from.Lon, to.Lon))
	x := math.Cos(φ1)*math.Sin(φ2) - math.Sin(φ1)*math.Cos(φ2)*math.Cos(Δλ)
	y := math.Sin(Δλ) * math.Cos(φ2)
	θ := math.Atan2(y, x)

	b := toDegrees(θ)

	return wrap360(b)
}

func (LatLonHaversine) DistanceTo(from, to LatLon) float64 {
	φ1 := toRadians(from.Lat)
	φ2 := toRadians(to.Lat)
	Δφ := φ2 - φ1

	Δλ := toRadians(DeltaLong(from.Lon, to.Lon))

	a := math.Sin(Δφ/2)*math.Sin(Δφ/2) + math.Cos(φ1)*math.Cos(φ2)*math.Sin(Δλ/2)*math.Sin(Δλ/2)
	δ := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return toNm(δ)
}

func (hav LatLonHaversine) BearingTo(from, to LatLon) float64 {
	return hav.initialBearingTo(from, to)
}

func (hav LatLonHaversine) DistanceAndBearingTo(from, to LatLon) (float64, float64) {
	return hav.DistanceTo(from, to), hav.initialBearingTo(from, to)
}

func (LatLonHaversine) Destination(from LatLon, bearing float64, distance float64) LatLon {
	return LatLonOrthodrome{}.Destination(from, bearing, distance)
}
