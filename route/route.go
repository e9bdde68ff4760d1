package route

import (
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/nav-tools/latlon"
)

// Leg is a rhumb line between two consecutive path positions.
type Leg struct {
	From     latlon.LatLon `json:"from"`
	To       latlon.LatLon `json:"to"`
	Distance float64       `json:"distance"`
	Course   float64       `json:"course"`
}

// Sumup compares sailing the great circle with sailing a single rhumb line.
// Distances are in nautical miles.
type Sumup struct {
	Orthodrome   float64 `json:"orthodrome"`
	Loxodrome    float64 `json:"loxodrome"`
	Saving       float64 `json:"saving"`
	LegsDistance float64 `json:"legsDistance"`
	Landfall     bool    `json:"landfall"`
}

type Nav struct {
	From       latlon.LatLon     `json:"from"`
	To         latlon.LatLon     `json:"to"`
	Orthodrome latlon.Orthodrome `json:"orthodrome"`
	Loxodrome  latlon.Loxodrome  `json:"loxodrome"`
	Center     latlon.LatLon     `json:"center"`
	Sumup      Sumup             `json:"sumup"`
	Path       []PathPosition    `json:"path"`
	Legs       []Leg             `json:"legs"`
}

type Navs struct {
	Sumup Sumup `json:"sumup"`
	Navs  []Nav `json:"navs"`
}

// CentralPoint returns the mean latitude and the longitude half way from p0
// to p1 along the shorter way round.
func CentralPoint(from, to latlon.LatLon) latlon.LatLon {
	return latlon.LatLon{
		Lat: (from.Lat + to.Lat) / 2,
		Lon: latlon.Fold(from.Lon + latlon.DeltaLong(from.Lon, to.Lon)/2),
	}
}

// ConvertToLegs joins consecutive points with rhumb lines.
func ConvertToLegs(pts []latlon.LatLon) []Leg {
	if len(pts) < 2 {
		return nil
	}

	lox := latlon.LatLonLoxodrome{}

	legs := make([]Leg, 0, len(pts)-1)
	for i := 1; i < len(pts); i++ {
		s := lox.Solve(pts[i-1], pts[i])
		legs = append(legs, Leg{
			From:     pts[i-1],
			To:       pts[i],
			Distance: s.Distance,
			Course:   s.Course,
		})
	}
	return legs
}

// Plan solves both sailings from p0 to p1 and samples the great circle every
// step degrees of longitude. mask may be nil.
func Plan(from, to latlon.LatLon, step float64, mask Mask) (Nav, error) {
	pts, err := latlon.LatLonOrthodrome{}.Path(from, to, step)
	if err != nil {
		return Nav{}, fmt.Errorf("plan from %v to %v: %w", from, to, err)
	}

	nav := Nav{
		From:       from,
		To:         to,
		Orthodrome: latlon.LatLonOrthodrome{}.Solve(from, to),
		Loxodrome:  latlon.LatLonLoxodrome{}.Solve(from, to),
		Center:     CentralPoint(from, to),
		Legs:       ConvertToLegs(pts),
	}

	nav.Path, nav.Sumup.Landfall = positions(pts, mask)

	nav.Sumup.Orthodrome = nav.Orthodrome.Distance
	nav.Sumup.Loxodrome = nav.Loxodrome.Distance
	nav.Sumup.Saving = nav.Loxodrome.Distance - nav.Orthodrome.Distance
	for _, l := range nav.Legs {
		nav.Sumup.LegsDistance += l.Distance
	}

	log.Debugf("Plan %v -> %v : %d points, orthodrome %.2fnm, loxodrome %.2fnm", from, to, len(nav.Path), nav.Sumup.Orthodrome, nav.Sumup.Loxodrome)

	return nav, nil
}

// PlanVoyage plans every consecutive pair of waypoints.
func PlanVoyage(waypoints []latlon.LatLon, step float64, mask Mask) (Navs, error) {
	if len(waypoints) < 2 {
		return Navs{}, fmt.Errorf("%w: %d waypoints, want at least 2", latlon.ErrInvalidInput, len(waypoints))
	}

	navs := Navs{Navs: make([]Nav, 0, len(waypoints)-1)}
	for i := 1; i < len(waypoints); i++ {
		nav, err := Plan(waypoints[i-1], waypoints[i], step, mask)
		if err != nil {
			return Navs{}, fmt.Errorf("leg %d: %w", i, err)
		}

		navs.Navs = append(navs.Navs, nav)
		navs.Sumup.Orthodrome += nav.Sumup.Orthodrome
		navs.Sumup.Loxodrome += nav.Sumup.Loxodrome
		navs.Sumup.LegsDistance += nav.Sumup.LegsDistance
		navs.Sumup.Landfall = navs.Sumup.Landfall || nav.Sumup.Landfall
	}
	navs.Sumup.Saving = navs.Sumup.Loxodrome - navs.Sumup.Orthodrome

	return navs, nil
}

// Path concatenates the paths of every nav, a joint point appearing once.
func (navs Navs) Path() []PathPosition {
	var path []PathPosition
	for i, nav := range navs.Navs {
		p := nav.Path
		if i > 0 && len(p) > 0 {
			p = p[1:]
		}
		path = append(path, p...)
	}
	return path
}

// Legs concatenates the legs of every nav.
func (navs Navs) Legs() []Leg {
	var legs []Leg
	for _, nav := range navs.Navs {
		legs = append(legs, nav.Legs...)
	}
	return legs
}

func round(x float64, d int) float64 {
	p := math.Pow10(d)
	return math.Round(x*p) / p
}
