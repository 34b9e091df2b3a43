package bet

import "fmt"

// InterpolateClamped evaluates a piecewise-linear table at x. Outside
// the table's domain the nearest boundary value is returned; there is
// no extrapolation. The clamped return reports whether clamping
// happened.
//
// The table is malformed when it is empty, the slices differ in
// length, or the x samples are not strictly increasing; this returns
// an error and callers decide how to degrade.
func InterpolateClamped(x float64, xs, ys []float64) (value float64, clamped bool, err error) {
	if len(xs) == 0 {
		return 0, false, fmt.Errorf("interpolation table is empty")
	}
	if len(xs) != len(ys) {
		return 0, false, fmt.Errorf("interpolation table has %d x samples but %d y values", len(xs), len(ys))
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return 0, false, fmt.Errorf("interpolation x samples not strictly increasing at index %d", i)
		}
	}

	if x <= xs[0] {
		return ys[0], x < xs[0], nil
	}
	last := len(xs) - 1
	if x >= xs[last] {
		return ys[last], x > xs[last], nil
	}

	// Find the bracketing interval
	i := 0
	for xs[i+1] < x {
		i++
	}
	t := (x - xs[i]) / (xs[i+1] - xs[i])
	return ys[i] + t*(ys[i+1]-ys[i]), false, nil
}
