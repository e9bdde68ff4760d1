package latlon

import (
	"errors"
	"math"
)

const π = math.Pi

// NmPerDegree is the number of nautical miles in one degree of great circle arc.
const NmPerDegree = 60.0

const ε = 1e-8

var (
	// ErrInvalidInput is returned when an input has the wrong shape: a DMS
	// tuple of the wrong length, a point list shorter than two, a non positive step.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidOrientation is returned for a hemisphere letter outside N, S, E, W.
	ErrInvalidOrientation = errors.New("invalid orientation")
)

// LatLonInterface is satisfied by every sailing model. Distances are in
// nautical miles, bearings in degrees clockwise from true north.
type LatLonInterface interface {
	DistanceTo(from, to LatLon) float64
	BearingTo(from, to LatLon) float64
	DistanceAndBearingTo(from, to LatLon) (float64, float64)
	Destination(from LatLon, bearing float64, distance float64) LatLon
}

type LatLon struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lon float64 `json:"lon" yaml:"lon"`
}

func toRadians(a float64) float64 {
	return a * π / 180.0
}

func toDegrees(a float64) float64 {
	return a * 180.0 / π
}

func toNm(rad float64) float64 {
	return toDegrees(rad) * NmPerDegree
}

func fromNm(nm float64) float64 {
	return toRadians(nm / NmPerDegree)
}

func wrap360(d float64) float64 {
	if 0.0 <= d && d < 360.0 {
		return d
	}
	d = math.Mod(d, 360.0)
	if d < 0 {
		d += 360.0
	}
	// -1e-20 + 360 rounds to 360
	if d >= 360.0 {
		d -= 360.0
	}
	return d
}

// eastward moves a longitude in the [0,360) frame.
func eastward(lon float64) float64 {
	return wrap360(lon)
}

// Fold brings a longitude back into (-180,180].
func Fold(lon float64) float64 {
	lon = wrap360(lon)
	if lon > 180.0 {
		lon -= 360.0
	}
	return lon
}

// sign is 0 for 0, as the vertex formulas expect.
func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// acos with its argument clamped to [-1,1] to absorb rounding.
func acos(x float64) float64 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}
	return math.Acos(x)
}

// isometric latitude of φ, in radians.
func isometric(φ float64) float64 {
	return math.Log(math.Tan(π/4 + φ/2))
}
