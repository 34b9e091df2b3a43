// Package sweep evaluates a fixed propeller geometry across many
// operating points. Solver calls are pure and share no state, so the
// sweep fans them out over a bounded worker pool and collects results
// back in input order.
package sweep

import (
	"runtime"
	"sync"

	"github.com/UWO-Aero-Design/strategy/internal/bet"
	"github.com/UWO-Aero-Design/strategy/internal/prop"
)

// OperatingPoint is one (rpm, free-stream velocity) combination.
type OperatingPoint struct {
	RPM      float64
	Velocity float64 // m/s
}

// Result pairs an operating point with its solve result.
type Result struct {
	Point  OperatingPoint
	Result *bet.SolveResult
}

// Points returns n values evenly spaced from start to end inclusive.
// With n == 1 the single value is start.
func Points(start, end float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (end - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	if n > 0 {
		out[n-1] = end
	}
	return out
}

// Run solves every operating point against the same geometry and
// returns results in the order the points were given. Points are
// validated up front so a bad point fails the whole sweep before any
// work starts.
func Run(s *bet.Solver, p *prop.Propeller, points []OperatingPoint) ([]Result, error) {
	for _, pt := range points {
		if pt.RPM < 0 {
			// Surface the solver's own error for consistency.
			if _, err := s.ComputeThrustAndTorque(p, pt.RPM, pt.Velocity); err != nil {
				return nil, err
			}
		}
	}

	results := make([]Result, len(points))

	workers := runtime.NumCPU()
	if workers > len(points) {
		workers = len(points)
	}
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				pt := points[i]
				// Points were validated above; a pure solve over a
				// read-only geometry cannot fail past that.
				res, _ := s.ComputeThrustAndTorque(p, pt.RPM, pt.Velocity)
				results[i] = Result{Point: pt, Result: res}
			}
		}()
	}

	for i := range points {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results, nil
}

// RPMSweep solves the geometry across a list of RPM values at a fixed
// free-stream velocity.
func RPMSweep(s *bet.Solver, p *prop.Propeller, rpms []float64, velocity float64) ([]Result, error) {
	points := make([]OperatingPoint, len(rpms))
	for i, r := range rpms {
		points[i] = OperatingPoint{RPM: r, Velocity: velocity}
	}
	return Run(s, p, points)
}
