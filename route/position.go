package route

import (
	"github.com/a-bouts/nav-tools/latlon"
)

// Mask tells whether a position is on land.
type Mask interface {
	IsLand(lat, lon float64) bool
}

type PathPosition struct {
	Latlon latlon.LatLon `json:"latlon"`
	Land   bool          `json:"land,omitempty"`
}

func positions(pts []latlon.LatLon, mask Mask) ([]PathPosition, bool) {
	landfall := false

	path := make([]PathPosition, len(pts))
	for i, p := range pts {
		path[i].Latlon = p
		if mask != nil && mask.IsLand(p.Lat, p.Lon) {
			path[i].Land = true
			landfall = true
		}
	}
	return path, landfall
}
