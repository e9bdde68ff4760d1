package latlon

import "math"

// StartLambda returns the first longitude on the step grid past lon0 in the
// direction given by the sign of Δλ. A grid line closer than half a step to
// lon0 is skipped. The result is in the eastward frame and may leave [0,360).
func StartLambda(lon0, Δλ, step float64) float64 {
	λ0 := eastward(lon0)

	if Δλ >= 0 {
		λs := math.Floor(λ0/step)*step + step
		if λs-λ0 < step/2 {
			λs += step
		}
		return λs
	}

	λs := math.Ceil(λ0/step)*step - step
	if λ0-λs < step/2 {
		λs -= step
	}
	return λs
}

// Midpoints returns the grid longitudes strictly between lon0 and lon1, in
// travel order and folded into (-180,180]. Neither lon0 nor lon1 is included.
func Midpoints(lon0, lon1, step float64) []float64 {
	Δλ := DeltaLong(lon0, lon1)
	if Δλ == 0 || step <= 0 {
		return nil
	}

	dir := sign(Δλ)
	λ0 := eastward(lon0)
	λ1 := λ0 + Δλ
	λs := StartLambda(lon0, Δλ, step)

	n := int(math.Floor(math.Abs(Δλ) / step))
	if n > 0 && dir*(λs+float64(n-1)*dir*step-λ1) >= 0 {
		n--
	}
	if n <= 0 {
		return nil
	}

	mps := make([]float64, 0, n)
	for k := 0; k < n; k++ {
		mps = append(mps, Fold(λs+float64(k)*dir*step))
	}
	return mps
}

// PathPointsLong returns lon0, the grid midpoints and lon1.
func PathPointsLong(lon0, lon1, step float64) []float64 {
	mps := Midpoints(lon0, lon1, step)

	las := make([]float64, 0, len(mps)+2)
	las = append(las, lon0)
	las = append(las, mps...)
	las = append(las, lon1)
	return las
}
