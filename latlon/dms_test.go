package latlon

import (
	"errors"
	"math"
	"testing"
)

func TestDMSToDecimal(t *testing.T) {
	cases := []struct {
		parts []float64
		want  float64
	}{
		{[]float64{45, 30}, 45.5},
		{[]float64{-45, 30}, -45.5},
		{[]float64{12, 30, 36}, 12.51},
		{[]float64{-12, 30, 36}, -12.51},
		{[]float64{math.Copysign(0, -1), 30}, -0.5},
		{[]float64{0, 30}, 0.5},
	}
	for _, c := range cases {
		got, err := DMSToDecimal(c.parts...)
		if err != nil {
			t.Fatal(err)
		}
		if !almost(got, c.want, 1e-12) {
			t.Errorf("DMSToDecimal(%v) = %f; want %f", c.parts, got, c.want)
		}
	}
}

func TestDMSToDecimalSize(t *testing.T) {
	for _, parts := range [][]float64{nil, {1}, {1, 2, 3, 4}} {
		if _, err := DMSToDecimal(parts...); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("DMSToDecimal(%v) error = %v; want ErrInvalidInput", parts, err)
		}
	}
}

func TestDecimalToDMS(t *testing.T) {
	d := DecimalToDMS(12.51, true)
	if d.Deg != 12 || d.Min != 30 || !almost(d.Sec, 36, 1e-9) {
		t.Errorf("DecimalToDMS(12.51, true) = %+v; want {12 30 36}", d)
	}

	d = DecimalToDMS(-45.5, false)
	if d.Deg != -45 || !almost(d.Min, 30, 1e-9) || d.Sec != 0 {
		t.Errorf("DecimalToDMS(-45.5, false) = %+v; want {-45 30 0}", d)
	}

	d = DecimalToDMS(-0.5, false)
	back, _ := DMSToDecimal(d.Deg, d.Min)
	if back != -0.5 {
		t.Errorf("DecimalToDMS(-0.5) = %+v lost its sign: %f", d, back)
	}
}

func TestNavToDecimal(t *testing.T) {
	cases := []struct {
		c    NavCoordinate
		want float64
	}{
		{NavCoordinate{Deg: 47, Min: 30, Hemisphere: "N"}, 47.5},
		{NavCoordinate{Deg: 47, Min: 30, Hemisphere: "S"}, -47.5},
		{NavCoordinate{Deg: 122, Min: 15, Hemisphere: "W"}, -122.25},
		{NavCoordinate{Deg: 122, Min: 15, Hemisphere: "e"}, 122.25},
		{NavCoordinate{Deg: 0, Min: 45, Hemisphere: "W"}, -0.75},
	}
	for _, c := range cases {
		got, err := NavToDecimal(c.c)
		if err != nil {
			t.Fatal(err)
		}
		if !almost(got, c.want, 1e-12) {
			t.Errorf("NavToDecimal(%+v) = %f; want %f", c.c, got, c.want)
		}
	}

	if _, err := NavToDecimal(NavCoordinate{Deg: 1, Hemisphere: "X"}); !errors.Is(err, ErrInvalidOrientation) {
		t.Errorf("NavToDecimal(X) error = %v; want ErrInvalidOrientation", err)
	}
}

func TestNavPosition(t *testing.T) {
	p, err := NavPosition{
		Lat: NavCoordinate{Deg: 48, Min: 24, Hemisphere: "N"},
		Lon: NavCoordinate{Deg: 4, Min: 30, Hemisphere: "W"},
	}.Position()
	if err != nil {
		t.Fatal(err)
	}
	if !almost(p.Lat, 48.4, 1e-12) || !almost(p.Lon, -4.5, 1e-12) {
		t.Errorf("Position() = %v; want {48.4 -4.5}", p)
	}

	_, err = NavPosition{
		Lat: NavCoordinate{Deg: 48, Hemisphere: "E"},
		Lon: NavCoordinate{Deg: 4, Hemisphere: "W"},
	}.Position()
	if !errors.Is(err, ErrInvalidOrientation) {
		t.Errorf("Position() with latitude E error = %v; want ErrInvalidOrientation", err)
	}
}

func TestPositions(t *testing.T) {
	pts, err := Positions([][]float64{{10, 20}, {-5, 170}})
	if err != nil {
		t.Fatal(err)
	}
	if len(pts) != 2 || pts[1] != (LatLon{Lat: -5, Lon: 170}) {
		t.Errorf("Positions() = %v", pts)
	}

	for _, in := range [][][]float64{nil, {{1, 2}}, {{1, 2}, {3}}} {
		if _, err := Positions(in); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Positions(%v) error = %v; want ErrInvalidInput", in, err)
		}
	}
}
