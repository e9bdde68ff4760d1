package latlon

import (
	"fmt"
	"math"
)

// Orthodrome holds the great circle parameters between two positions.
type Orthodrome struct {
	Distance float64 `json:"distance"`
	Course   float64 `json:"course"`
	Vertex   LatLon  `json:"vertex"`
}

// LatLonOrthodrome sails great circles, working on co-latitudes ψ = π/2 - φ.
type LatLonOrthodrome struct{}

// departure returns the great circle arc δ and the unsigned departure
// course w in [0,π] (measured towards the side of travel).
func departure(φ0, φ1, Δλ float64) (δ, w float64) {
	ψ0 := π/2 - φ0
	ψ1 := π/2 - φ1

	δ = acos(math.Cos(ψ0)*math.Cos(ψ1) + math.Sin(ψ0)*math.Sin(ψ1)*math.Cos(math.Abs(Δλ)))
	if δ < ε {
		return δ, 0
	}

	// from a pole every route leaves along a meridian
	if atPole(φ0) {
		if φ0 > 0 {
			return δ, π
		}
		return δ, 0
	}

	// on a meridian, acos loses the exact north or south course
	if math.Abs(Δλ) < ε {
		if φ1 >= φ0 {
			return δ, 0
		}
		return δ, π
	}

	if p := overPole(φ0, φ1, Δλ); p > 0 {
		return δ, 0
	} else if p < 0 {
		return δ, π
	}

	w = acos((math.Cos(ψ1) - math.Cos(ψ0)*math.Cos(δ)) / (math.Sin(ψ0) * math.Sin(δ)))
	return δ, w
}

// overPole is 1 or -1 when the great circle between positions half a turn
// apart in longitude goes over the north or the south pole, 0 otherwise.
func overPole(φ0, φ1, Δλ float64) float64 {
	if math.Abs(math.Abs(Δλ)-π) >= ε {
		return 0
	}
	return sign(φ0 + φ1)
}

func atPole(φ float64) bool {
	return math.Abs(math.Cos(φ)) < ε
}

// Solve returns distance (nm), departure course (degrees) and vertex of the
// great circle from p0 to p1.
func (LatLonOrthodrome) Solve(from, to LatLon) Orthodrome {
	φ0 := toRadians(from.Lat)
	φ1 := toRadians(to.Lat)
	Δλ := toRadians(DeltaLong(from.Lon, to.Lon))

	δ, w := departure(φ0, φ1, Δλ)
	if δ < ε {
		return Orthodrome{Vertex: from}
	}

	c := toDegrees(w)
	if Δλ < 0 {
		c = 360 - c
	}

	return Orthodrome{
		Distance: toNm(δ),
		Course:   wrap360(c),
		Vertex:   vertex(from, φ0, w, Δλ),
	}
}

func vertex(from LatLon, φ0, w, Δλ float64) LatLon {
	// sailing due east or west, or leaving a pole, the start is the vertex
	if math.Abs(math.Cos(w)) < 1e-12 || atPole(φ0) {
		return from
	}

	φv := sign(math.Cos(w)) * acos(math.Abs(math.Sin(w))*math.Cos(φ0))
	if math.Abs(φv) < ε {
		return from
	}
	if atPole(φv) {
		return LatLon{Lat: 90 * sign(φv), Lon: from.Lon}
	}

	λv := sign(Δλ) * acos(math.Tan(φ0)/math.Tan(φv))

	return LatLon{
		Lat: toDegrees(φv),
		Lon: Fold(from.Lon + toDegrees(λv)),
	}
}

// MidpointLatitude returns the latitude of the great circle from p0 to p1
// where it crosses the meridian lon. lon is expected between p0 and p1.
func (LatLonOrthodrome) MidpointLatitude(from, to LatLon, lon float64) float64 {
	φ0 := toRadians(from.Lat)
	_, w := departure(φ0, toRadians(to.Lat), toRadians(DeltaLong(from.Lon, to.Lon)))

	return midpointLatitude(from, w, lon)
}

func midpointLatitude(from LatLon, w, lon float64) float64 {
	Δλ := DeltaLong(from.Lon, lon)
	if Δλ == 0 {
		return from.Lat
	}

	φ0 := toRadians(from.Lat)
	Δλm := math.Abs(toRadians(Δλ))

	napier := func(φ0, w float64) float64 {
		return math.Atan(math.Sin(Δλm)/(math.Tan(w)*math.Cos(φ0)) + math.Tan(φ0)*math.Cos(Δλm))
	}

	if φ0 < 0 {
		return -toDegrees(napier(-φ0, π-w))
	}
	return toDegrees(napier(φ0, w))
}

// Path samples the great circle from p0 to p1 on a longitude grid of step
// degrees. The first and last points are p0 and p1. Routes along meridians
// have no latitude to sample: they are the ends, and the pole when it is
// crossed.
func (LatLonOrthodrome) Path(from, to LatLon, step float64) ([]LatLon, error) {
	if !(step > 0) || math.IsInf(step, 1) {
		return nil, fmt.Errorf("%w: longitude step %v", ErrInvalidInput, step)
	}

	φ0 := toRadians(from.Lat)
	φ1 := toRadians(to.Lat)
	Δλ := toRadians(DeltaLong(from.Lon, to.Lon))

	if atPole(φ0) || atPole(φ1) {
		return []LatLon{from, to}, nil
	}
	if p := overPole(φ0, φ1, Δλ); p != 0 {
		return []LatLon{from, {Lat: 90 * p, Lon: from.Lon}, to}, nil
	}

	_, w := departure(φ0, φ1, Δλ)

	las := PathPointsLong(from.Lon, to.Lon, step)

	pts := make([]LatLon, len(las))
	for i, la := range las {
		pts[i] = LatLon{Lat: midpointLatitude(from, w, la), Lon: la}
	}
	pts[0] = from
	pts[len(pts)-1] = to

	return pts, nil
}

func (o LatLonOrthodrome) DistanceTo(from, to LatLon) float64 {
	return o.Solve(from, to).Distance
}

func (o LatLonOrthodrome) BearingTo(from, to LatLon) float64 {
	return o.Solve(from, to).Course
}

func (o LatLonOrthodrome) DistanceAndBearingTo(from, to LatLon) (float64, float64) {
	s := o.Solve(from, to)
	return s.Distance, s.Course
}

// Destination sails distance nm from p0 along the great circle leaving on bearing.
func (LatLonOrthodrome) Destination(from LatLon, bearing float64, distance float64) LatLon {
	φ1 := toRadians(from.Lat)
	λ1 := toRadians(from.Lon)
	θ := toRadians(bearing)

	δ := fromNm(distance)

	φ2 := math.Asin(math.Sin(φ1)*math.Cos(δ) + math.Cos(φ1)*math.Sin(δ)*math.Cos(θ))
	λ2 := λ1 + math.Atan2(math.Sin(θ)*math.Sin(δ)*math.Cos(φ1), math.Cos(δ)-math.Sin(φ1)*math.Sin(φ2))

	return LatLon{Lat: toDegrees(φ2), Lon: Fold(toDegrees(λ2))}
}
