package latlon

import (
	"math"
	"testing"
)

func almost(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestWrap360(t *testing.T) {
	a := wrap360(-1.0)
	if a != 359.0 {
		t.Errorf("wrap360(-1) = %f; want 359.0", a)
	}
	b := wrap360(361.0)
	if b != 1.0 {
		t.Errorf("wrap360(361.0) = %f; want 1.0", b)
	}
	c := wrap360(-721.0)
	if c != 359.0 {
		t.Errorf("wrap360(-721.0) = %f; want 359.0", c)
	}
	if d := wrap360(-1e-20); d != 0 {
		t.Errorf("wrap360(-1e-20) = %g; want 0", d)
	}
}

func TestFold(t *testing.T) {
	cases := []struct {
		lon  float64
		want float64
	}{
		{0, 0},
		{180, 180},
		{-180, 180},
		{190, -170},
		{-190, 170},
		{359, -1},
		{540, 180},
		{-10, -10},
	}
	for _, c := range cases {
		if got := Fold(c.lon); got != c.want {
			t.Errorf("Fold(%f) = %f; want %f", c.lon, got, c.want)
		}
	}
}

func TestDeltaLong(t *testing.T) {
	cases := []struct {
		lon0, lon1 float64
		want       float64
	}{
		{0, 10, 10},
		{10, 0, -10},
		{170, -170, 20},
		{-170, 170, -20},
		{-10, 10, 20},
		{179, -179, 2},
		{0, 180, 180},
		{180, 0, 180},
		{-90, 90, 180},
		{90, -90, 180},
		{45, 45, 0},
		{-5, -175, -170},
	}
	for _, c := range cases {
		if got := DeltaLong(c.lon0, c.lon1); got != c.want {
			t.Errorf("DeltaLong(%f, %f) = %f; want %f", c.lon0, c.lon1, got, c.want)
		}
	}
}

func TestDeltaLongAntisymmetric(t *testing.T) {
	for a := -180.0; a <= 180.0; a += 7.5 {
		for b := -180.0; b <= 180.0; b += 12.5 {
			ab := DeltaLong(a, b)
			ba := DeltaLong(b, a)
			if math.Abs(ab) == 180 {
				if ab != 180 || ba != 180 {
					t.Errorf("DeltaLong(%f, %f) = %f, reverse %f; want both 180", a, b, ab, ba)
				}
				continue
			}
			if ab != -ba {
				t.Errorf("DeltaLong(%f, %f) = %f; reverse = %f", a, b, ab, ba)
			}
			if ab <= -180 || ab > 180 {
				t.Errorf("DeltaLong(%f, %f) = %f out of (-180,180]", a, b, ab)
			}
		}
	}
}

func TestDeltaLongShiftInvariant(t *testing.T) {
	for a := -180.0; a <= 180.0; a += 15 {
		for b := -180.0; b <= 180.0; b += 20 {
			want := DeltaLong(a, b)
			for _, s := range []float64{-720, -360, 360, 720} {
				if got := DeltaLong(a+s, b); !almost(got, want, 1e-9) {
					t.Errorf("DeltaLong(%f, %f) = %f; want %f", a+s, b, got, want)
				}
				if got := DeltaLong(a, b+s); !almost(got, want, 1e-9) {
					t.Errorf("DeltaLong(%f, %f) = %f; want %f", a, b+s, got, want)
				}
			}
		}
	}
}

func TestMathAngle(t *testing.T) {
	cases := []struct {
		course float64
		want   float64
	}{
		{0, 90},
		{45, 45},
		{90, 0},
		{135, -45},
		{180, -90},
		{270, -180},
		{315, 135},
	}
	for _, c := range cases {
		got := toDegrees(MathAngle(toRadians(c.course)))
		if !almost(got, c.want, 1e-9) {
			t.Errorf("MathAngle(%f) = %f; want %f", c.course, got, c.want)
		}
	}
}

func TestNavAngle(t *testing.T) {
	w := toRadians(30)
	cases := []struct {
		name   string
		Δφ, Δλ float64
		want   float64
	}{
		{"I", 1, 1, 30},
		{"II", -1, 1, 150},
		{"III", -1, -1, 210},
		{"IV", 1, -1, 330},
		{"east", 1e-9, 1, 90},
		{"west", -1e-9, -1, 270},
		{"north", 1, 1e-9, 0},
		{"south", -1, -1e-9, 180},
	}
	for _, c := range cases {
		got := toDegrees(NavAngle(w, c.Δφ, c.Δλ))
		if !almost(got, c.want, 1e-9) {
			t.Errorf("NavAngle(30, %g, %g) [%s] = %f; want %f", c.Δφ, c.Δλ, c.name, got, c.want)
		}
	}
}
