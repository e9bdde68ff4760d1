package route

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/a-bouts/nav-tools/latlon"
)

func point(p latlon.LatLon) orb.Point {
	return orb.Point{p.Lon, p.Lat}
}

func appendPoint(ls orb.LineString, p orb.Point) orb.LineString {
	if n := len(ls); n > 0 && ls[n-1].Equal(p) {
		return ls
	}
	return append(ls, p)
}

// SplitAntimeridian cuts a path into line strings that never jump across the
// ±180 meridian. The crossing latitude is interpolated linearly.
func SplitAntimeridian(path []latlon.LatLon) orb.MultiLineString {
	if len(path) == 0 {
		return nil
	}

	var mls orb.MultiLineString
	var ls orb.LineString
	for i, p := range path {
		if i > 0 {
			prev := path[i-1]
			if math.Abs(p.Lon-prev.Lon) > 180 {
				Δλ := latlon.DeltaLong(prev.Lon, p.Lon)
				edge := 180.0
				if Δλ < 0 {
					edge = -180.0
				}
				f := (edge - prev.Lon) / Δλ
				lat := prev.Lat + f*(p.Lat-prev.Lat)

				ls = appendPoint(ls, orb.Point{edge, lat})
				if len(ls) > 1 {
					mls = append(mls, ls)
				}
				ls = orb.LineString{{-edge, lat}}
			}
		}
		ls = appendPoint(ls, point(p))
	}
	if len(ls) > 1 || len(mls) == 0 {
		mls = append(mls, ls)
	}
	return mls
}

// FeatureCollection exports the planned voyage: the great circle path, the
// departure and arrival, each leg vertex and the positions found on land.
func FeatureCollection(navs Navs) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	path := navs.Path()
	pts := make([]latlon.LatLon, len(path))
	for i, p := range path {
		pts[i] = p.Latlon
	}

	line := geojson.NewFeature(SplitAntimeridian(pts))
	line.Properties["kind"] = "orthodrome"
	line.Properties["orthodrome"] = round(navs.Sumup.Orthodrome, 2)
	line.Properties["loxodrome"] = round(navs.Sumup.Loxodrome, 2)
	line.Properties["saving"] = round(navs.Sumup.Saving, 2)
	line.Properties["landfall"] = navs.Sumup.Landfall
	fc.Append(line)

	if len(navs.Navs) == 0 {
		return fc
	}

	start := geojson.NewFeature(point(navs.Navs[0].From))
	start.Properties["kind"] = "start"
	fc.Append(start)

	for i, nav := range navs.Navs {
		v := geojson.NewFeature(point(nav.Orthodrome.Vertex))
		v.Properties["kind"] = "vertex"
		v.Properties["leg"] = i
		v.Properties["course"] = round(nav.Orthodrome.Course, 1)
		fc.Append(v)
	}

	end := geojson.NewFeature(point(navs.Navs[len(navs.Navs)-1].To))
	end.Properties["kind"] = "end"
	fc.Append(end)

	for _, p := range path {
		if p.Land {
			l := geojson.NewFeature(point(p.Latlon))
			l.Properties["kind"] = "land"
			fc.Append(l)
		}
	}

	return fc
}
