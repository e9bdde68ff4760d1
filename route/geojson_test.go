package route

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/paulmach/orb"

	"github.com/a-bouts/nav-tools/latlon"
)

func TestSplitAntimeridian(t *testing.T) {
	cases := []struct {
		name string
		path []latlon.LatLon
		want orb.MultiLineString
	}{
		{
			"no crossing",
			[]latlon.LatLon{{Lat: 0, Lon: 0}, {Lat: 1, Lon: 1}},
			orb.MultiLineString{{{0, 0}, {1, 1}}},
		},
		{
			"eastward through a grid point",
			[]latlon.LatLon{{Lat: 0, Lon: 170}, {Lat: 0, Lon: 175}, {Lat: 0, Lon: 180}, {Lat: 0, Lon: -175}, {Lat: 0, Lon: -170}},
			orb.MultiLineString{{{170, 0}, {175, 0}, {180, 0}}, {{-180, 0}, {-175, 0}, {-170, 0}}},
		},
		{
			"eastward",
			[]latlon.LatLon{{Lat: 10, Lon: 175}, {Lat: 20, Lon: -175}},
			orb.MultiLineString{{{175, 10}, {180, 15}}, {{-180, 15}, {-175, 20}}},
		},
		{
			"westward",
			[]latlon.LatLon{{Lat: 20, Lon: -175}, {Lat: 10, Lon: 175}},
			orb.MultiLineString{{{-175, 20}, {-180, 15}}, {{180, 15}, {175, 10}}},
		},
	}
	for _, c := range cases {
		got := SplitAntimeridian(c.path)
		if !got.Equal(c.want) {
			t.Errorf("%s: SplitAntimeridian(%v) = %v; want %v", c.name, c.path, got, c.want)
		}
	}
}

func TestFeatureCollection(t *testing.T) {
	mask := maskFunc(func(lat, lon float64) bool {
		return lon >= 2 && lon <= 4
	})

	navs, err := PlanVoyage([]latlon.LatLon{{Lat: 0, Lon: 0}, {Lat: 0, Lon: 10}}, 1, mask)
	if err != nil {
		t.Fatalf("PlanVoyage failed: %v", err)
	}

	fc := FeatureCollection(navs)

	kinds := map[string]int{}
	for _, f := range fc.Features {
		kinds[f.Properties.MustString("kind")]++
	}
	want := map[string]int{"orthodrome": 1, "start": 1, "vertex": 1, "end": 1, "land": 3}
	for k, n := range want {
		if kinds[k] != n {
			t.Errorf("feature collection has %d %q features; want %d", kinds[k], k, n)
		}
	}

	if _, ok := fc.Features[0].Geometry.(orb.MultiLineString); !ok {
		t.Errorf("path geometry is %T; want orb.MultiLineString", fc.Features[0].Geometry)
	}

	b, err := json.Marshal(fc)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(b), `"MultiLineString"`) || !strings.Contains(string(b), `"FeatureCollection"`) {
		t.Errorf("unexpected geojson: %s", b)
	}
}
