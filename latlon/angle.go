package latlon

import "math"

// DeltaLong returns the signed longitude difference going from lon0 to lon1,
// in (-180,180]. Both longitudes are taken in the eastward [0,360) frame
// before subtracting, so half a turn is always reported as +180.
func DeltaLong(lon0, lon1 float64) float64 {
	Δλ := eastward(lon1) - eastward(lon0)

	if Δλ <= -180 {
		Δλ += 360
	} else if Δλ > 180 {
		Δλ -= 360
	}

	return Δλ
}

// MathAngle converts a course (radians, clockwise from north) to a
// mathematical angle (radians, counter-clockwise from east) in [-π,π).
func MathAngle(c float64) float64 {
	switch {
	case c >= 0 && c <= π/2:
		return π/2 - c
	case c > π/2 && c <= 3*π/2:
		return π/2 - c
	default:
		return 2*π - c + π/2
	}
}

// NavAngle turns a first quadrant angle w measured from the meridian into a
// true course in [0,2π), using the signs of the latitude and longitude
// differences to pick the quadrant.
func NavAngle(w, Δφ, Δλ float64) float64 {
	switch {
	case math.Abs(Δφ) < ε:
		// along a parallel
		if Δλ > 0 {
			return π / 2
		}
		return 3 * π / 2
	case math.Abs(Δλ) < ε:
		// along a meridian
		if Δφ > 0 {
			return 0
		}
		return π
	case Δφ > 0 && Δλ > 0:
		return w
	case Δφ < 0 && Δλ > 0:
		return π - w
	case Δφ < 0 && Δλ < 0:
		return π + w
	default:
		return 2*π - w
	}
}
