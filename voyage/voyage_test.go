package voyage

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/a-bouts/nav-tools/latlon"
)

const voyagesYaml = `
- name: transat
  step: 2
  waypoints:
    - {lat: 48.4, lon: -4.5}
    - {lat: 40.5, lon: -73.9}
- name: pacific
  waypoints:
    - lat: 37.8
      lon: -122.4
    - lat: 21.3
      lon: -157.9
    - lat: 35.7
      lon: 139.7
`

func TestParse(t *testing.T) {
	vs, err := Parse([]byte(voyagesYaml))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if names := vs.Names(); !reflect.DeepEqual(names, []string{"pacific", "transat"}) {
		t.Errorf("Names() = %v; want [pacific transat]", names)
	}

	v, err := vs.Get("transat")
	if err != nil {
		t.Fatalf("Get(transat) failed: %v", err)
	}
	want := Voyage{
		Name:      "transat",
		Step:      2,
		Waypoints: []latlon.LatLon{{Lat: 48.4, Lon: -4.5}, {Lat: 40.5, Lon: -73.9}},
	}
	if !reflect.DeepEqual(v, want) {
		t.Errorf("Get(transat) = %+v; want %+v", v, want)
	}

	if _, err := vs.Get("unknown"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(unknown) returned %v; want ErrNotFound", err)
	}
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"one waypoint": `
- name: short
  waypoints:
    - {lat: 1, lon: 1}
`,
		"no name": `
- waypoints:
    - {lat: 1, lon: 1}
    - {lat: 2, lon: 2}
`,
		"duplicated": `
- name: a
  waypoints: [{lat: 1, lon: 1}, {lat: 2, lon: 2}]
- name: a
  waypoints: [{lat: 1, lon: 1}, {lat: 2, lon: 2}]
`,
		"negative step": `
- name: a
  step: -1
  waypoints: [{lat: 1, lon: 1}, {lat: 2, lon: 2}]
`,
	}
	for name, content := range cases {
		if _, err := Parse([]byte(content)); !errors.Is(err, latlon.ErrInvalidInput) {
			t.Errorf("%s: Parse returned %v; want ErrInvalidInput", name, err)
		}
	}

	if _, err := Parse([]byte("name: [")); err == nil {
		t.Errorf("Parse of invalid yaml succeeded")
	}
}

func TestLoad(t *testing.T) {
	file := filepath.Join(t.TempDir(), "voyages.yaml")
	if err := os.WriteFile(file, []byte(voyagesYaml), 0o644); err != nil {
		t.Fatal(err)
	}

	vs, err := Load(file)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", file, err)
	}
	if len(vs.Names()) != 2 {
		t.Errorf("Load(%s) found %d voyages; want 2", file, len(vs.Names()))
	}

	vs, err = Load("")
	if err != nil || len(vs.Names()) != 0 {
		t.Errorf("Load(\"\") = %v, %v; want no voyage", vs.Names(), err)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load of a missing file returned %v; want os.ErrNotExist", err)
	}
}

func TestPlan(t *testing.T) {
	vs, err := Parse([]byte(voyagesYaml))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	v, _ := vs.Get("pacific")
	navs, err := v.Plan(nil)
	if err != nil {
		t.Fatalf("Plan(pacific) failed: %v", err)
	}
	if len(navs.Navs) != 2 {
		t.Errorf("Plan(pacific) has %d navs; want 2", len(navs.Navs))
	}

	path := navs.Path()
	if path[0].Latlon != v.Waypoints[0] || path[len(path)-1].Latlon != v.Waypoints[2] {
		t.Errorf("Plan(pacific) path goes from %v to %v", path[0].Latlon, path[len(path)-1].Latlon)
	}
	for i := 1; i < len(path); i++ {
		if d := latlon.DeltaLong(path[i-1].Latlon.Lon, path[i].Latlon.Lon); d > 1.5 || d < -1.5 {
			t.Errorf("Plan(pacific) jumps %v degrees between %v and %v", d, path[i-1].Latlon, path[i].Latlon)
		}
	}
}
