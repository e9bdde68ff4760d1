package voyage

import (
	"errors"
	"fmt"
	"os"
	"sort"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/a-bouts/nav-tools/latlon"
	"github.com/a-bouts/nav-tools/route"
)

// DefaultStep is the longitude step used when a voyage does not give one.
const DefaultStep = 1.0

// ErrNotFound is returned for an unknown voyage name.
var ErrNotFound = errors.New("voyage not found")

type Voyage struct {
	Name      string          `json:"name" yaml:"name"`
	Step      float64         `json:"step,omitempty" yaml:"step"`
	Waypoints []latlon.LatLon `json:"waypoints" yaml:"waypoints"`
}

type Voyages struct {
	voyages map[string]Voyage
}

// Parse reads a YAML list of voyages.
func Parse(content []byte) (Voyages, error) {
	var vs []Voyage
	if err := yaml.Unmarshal(content, &vs); err != nil {
		return Voyages{}, fmt.Errorf("parse voyages: %w", err)
	}

	voyages := Voyages{voyages: make(map[string]Voyage, len(vs))}
	for i, v := range vs {
		if v.Name == "" {
			return Voyages{}, fmt.Errorf("voyage %d: %w: missing name", i, latlon.ErrInvalidInput)
		}
		if _, ok := voyages.voyages[v.Name]; ok {
			return Voyages{}, fmt.Errorf("voyage %s: %w: duplicated name", v.Name, latlon.ErrInvalidInput)
		}
		if len(v.Waypoints) < 2 {
			return Voyages{}, fmt.Errorf("voyage %s: %w: %d waypoints, want at least 2", v.Name, latlon.ErrInvalidInput, len(v.Waypoints))
		}
		if v.Step < 0 {
			return Voyages{}, fmt.Errorf("voyage %s: %w: step %v", v.Name, latlon.ErrInvalidInput, v.Step)
		}
		voyages.voyages[v.Name] = v
	}
	return voyages, nil
}

// Load reads the voyages file. An empty file name loads no voyage.
func Load(file string) (Voyages, error) {
	if file == "" {
		return Voyages{voyages: map[string]Voyage{}}, nil
	}

	content, err := os.ReadFile(file)
	if err != nil {
		return Voyages{}, fmt.Errorf("load voyages: %w", err)
	}

	voyages, err := Parse(content)
	if err != nil {
		return Voyages{}, fmt.Errorf("load voyages %s: %w", file, err)
	}

	log.WithFields(log.Fields{"file": file, "count": len(voyages.voyages)}).Info("Voyages loaded")

	return voyages, nil
}

// Names returns the voyage names, sorted.
func (vs Voyages) Names() []string {
	names := make([]string, 0, len(vs.voyages))
	for n := range vs.voyages {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (vs Voyages) Get(name string) (Voyage, error) {
	v, ok := vs.voyages[name]
	if !ok {
		return Voyage{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return v, nil
}

// Plan plans the voyage through all its waypoints.
func (v Voyage) Plan(mask route.Mask) (route.Navs, error) {
	step := v.Step
	if step == 0 {
		step = DefaultStep
	}

	navs, err := route.PlanVoyage(v.Waypoints, step, mask)
	if err != nil {
		return route.Navs{}, fmt.Errorf("voyage %s: %w", v.Name, err)
	}
	return navs, nil
}
