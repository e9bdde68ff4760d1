package model

import (
	"github.com/a-bouts/nav-tools/latlon"
)

type Pair struct {
	From latlon.LatLon `json:"from"`
	To   latlon.LatLon `json:"to"`
}

type Destination struct {
	From     latlon.LatLon `json:"from"`
	Distance float64       `json:"distance"`
	Course   float64       `json:"course"`
}

type Path struct {
	From latlon.LatLon `json:"from"`
	To   latlon.LatLon `json:"to"`
	Step float64       `json:"step"`
}

// Route takes its waypoints either as positions or as [lat, lon] points.
type Route struct {
	Waypoints []latlon.LatLon `json:"waypoints"`
	Points    [][]float64     `json:"points,omitempty"`
	Step      float64         `json:"step"`
}

type Distance struct {
	Method   string  `json:"method"`
	Distance float64 `json:"distance"`
	Course   float64 `json:"course"`
}

type Error struct {
	Error string `json:"error"`
}
