package latlon

import "math"

// Loxodrome is the first rhumb line problem solution.
type Loxodrome struct {
	Distance float64 `json:"distance"`
	Course   float64 `json:"course"`
}

// LatLonLoxodrome sails constant courses (Mercator sailing).
type LatLonLoxodrome struct{}

// Solve returns the rhumb line distance (nm) and course (degrees) from p0 to p1.
func (LatLonLoxodrome) Solve(from, to LatLon) Loxodrome {
	φ0 := toRadians(from.Lat)
	φ1 := toRadians(to.Lat)

	Δφ := φ1 - φ0
	Δλ := toRadians(DeltaLong(from.Lon, to.Lon))

	if math.Abs(Δφ) < ε && math.Abs(Δλ) < ε {
		return Loxodrome{}
	}

	// ft is the angle whose cosine is Δφ over the isometric latitude difference
	var ft float64
	if math.Abs(Δφ) >= ε {
		cft := Δφ / (isometric(φ1) - isometric(φ0))
		ft = acos(cft)
		if cft < 0 {
			ft = π - ft
		}
	}

	// w is always in the first quadrant
	w := π / 2
	if math.Abs(Δφ) >= ε {
		w = math.Atan(math.Cos(ft) * math.Abs(Δλ/Δφ))
	}

	var d float64
	switch {
	case math.Abs(Δφ) < ε:
		d = math.Abs(Δλ) * math.Cos(φ0)
	case math.Abs(Δλ) < ε:
		d = math.Abs(Δφ)
	case math.Abs(w) < π/20 || math.Abs(w-π) < π/20:
		// sin(w) vanishes near the meridian
		d = math.Abs(Δφ) / math.Cos(w)
	default:
		d = math.Cos(ft) * math.Abs(Δλ) / math.Sin(w)
	}

	return Loxodrome{
		Distance: toNm(d),
		Course:   wrap360(toDegrees(NavAngle(w, Δφ, Δλ))),
	}
}

func (lox LatLonLoxodrome) DistanceTo(from, to LatLon) float64 {
	return lox.Solve(from, to).Distance
}

func (lox LatLonLoxodrome) BearingTo(from, to LatLon) float64 {
	return lox.Solve(from, to).Course
}

func (lox LatLonLoxodrome) DistanceAndBearingTo(from, to LatLon) (float64, float64) {
	s := lox.Solve(from, to)
	return s.Distance, s.Course
}

// Destination solves the second rhumb line problem: the position reached
// from p0 after distance nm on a constant course (degrees).
func (LatLonLoxodrome) Destination(from LatLon, bearing float64, distance float64) LatLon {
	φ0 := toRadians(from.Lat)
	λ0 := toRadians(from.Lon)
	θ := toRadians(wrap360(bearing))
	δ := fromNm(distance)

	onMeridian := math.Abs(math.Sin(θ)) < ε
	onParallel := math.Abs(math.Cos(θ)) < ε

	Δφ := δ * math.Cos(θ)
	if onParallel {
		Δφ = 0
	}
	φ1 := φ0 + Δφ

	var Δλ float64
	switch {
	case onMeridian:
		Δλ = 0
	case onParallel:
		Δλ = δ * math.Sin(θ) / math.Cos(φ0)
	default:
		q := math.Cos(φ0)
		if Δψ := isometric(φ1) - isometric(φ0); math.Abs(Δψ) > 1e-12 {
			q = Δφ / Δψ
		}
		Δλ = δ * math.Sin(θ) / q
	}

	return LatLon{
		Lat: toDegrees(φ1),
		Lon: Fold(toDegrees(λ0 + Δλ)),
	}
}
