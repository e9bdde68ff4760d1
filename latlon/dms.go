package latlon

import (
	"fmt"
	"math"
	"strings"
)

// DMS is an angle in degrees, minutes and seconds. The sign is carried by
// Deg, a negative zero included.
type DMS struct {
	Deg float64 `json:"deg"`
	Min float64 `json:"min"`
	Sec float64 `json:"sec"`
}

// NavCoordinate is the nautical notation of a coordinate: 47°30.5'N.
type NavCoordinate struct {
	Deg        float64 `json:"deg"`
	Min        float64 `json:"min"`
	Hemisphere string  `json:"hemisphere"`
}

type NavPosition struct {
	Lat NavCoordinate `json:"lat"`
	Lon NavCoordinate `json:"lon"`
}

// DMSToDecimal converts (deg, min) or (deg, min, sec) into decimal degrees.
func DMSToDecimal(parts ...float64) (float64, error) {
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("%w: %d angle parts, want 2 or 3", ErrInvalidInput, len(parts))
	}

	d := math.Abs(parts[0]) + math.Abs(parts[1])/60.0
	if len(parts) == 3 {
		d += math.Abs(parts[2]) / 3600.0
	}

	if math.Signbit(parts[0]) {
		d = -d
	}
	return d, nil
}

// DecimalToDMS splits decimal degrees. Without seconds the minutes keep the
// decimal part.
func DecimalToDMS(x float64, seconds bool) DMS {
	neg := math.Signbit(x)
	x = math.Abs(x)

	dd := math.Floor(x)
	var mm, ss float64
	if seconds {
		mm = math.Floor((x - dd) * 60)
		ss = (x - dd - mm/60) * 3600
	} else {
		mm = (x - dd) * 60
	}

	if neg {
		dd = math.Copysign(dd, -1)
	}
	return DMS{Deg: dd, Min: mm, Sec: ss}
}

// NavToDecimal converts a nautical coordinate, south and west being negative.
func NavToDecimal(c NavCoordinate) (float64, error) {
	d := math.Abs(c.Deg)

	switch strings.ToUpper(strings.TrimSpace(c.Hemisphere)) {
	case "S", "W":
		d = -d
	case "N", "E":
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidOrientation, c.Hemisphere)
	}

	return DMSToDecimal(d, c.Min)
}

// Position converts a nautical position, checking that the latitude is
// given N or S and the longitude E or W.
func (p NavPosition) Position() (LatLon, error) {
	if h := strings.ToUpper(strings.TrimSpace(p.Lat.Hemisphere)); h != "N" && h != "S" {
		return LatLon{}, fmt.Errorf("%w: latitude hemisphere %q", ErrInvalidOrientation, p.Lat.Hemisphere)
	}
	if h := strings.ToUpper(strings.TrimSpace(p.Lon.Hemisphere)); h != "E" && h != "W" {
		return LatLon{}, fmt.Errorf("%w: longitude hemisphere %q", ErrInvalidOrientation, p.Lon.Hemisphere)
	}

	lat, err := NavToDecimal(p.Lat)
	if err != nil {
		return LatLon{}, err
	}
	lon, err := NavToDecimal(p.Lon)
	if err != nil {
		return LatLon{}, err
	}
	return LatLon{Lat: lat, Lon: lon}, nil
}

// Positions converts [lat, lon] pairs. A route needs at least two of them.
func Positions(points [][]float64) ([]LatLon, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: %d points, want at least 2", ErrInvalidInput, len(points))
	}

	pts := make([]LatLon, len(points))
	for i, p := range points {
		if len(p) != 2 {
			return nil, fmt.Errorf("%w: point %d has %d values", ErrInvalidInput, i, len(p))
		}
		pts[i] = LatLon{Lat: p[0], Lon: p[1]}
	}
	return pts, nil
}
