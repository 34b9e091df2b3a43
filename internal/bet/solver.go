package bet

import (
	"fmt"
	"math"

	"github.com/UWO-Aero-Design/strategy/internal/atmosphere"
	"github.com/UWO-Aero-Design/strategy/internal/prop"
)

// SectionResult holds the aerodynamic state of one blade section at a
// given operating point. Forces are per blade; totals on SolveResult
// already include the blade count.
type SectionResult struct {
	Radius     float64 // radial position (m)
	RadiusFrac float64 // r/R, normalized radial position
	AlphaDeg   float64 // effective angle of attack (deg)
	PhiDeg     float64 // inflow angle (deg)
	Chord      float64 // local chord (m)
	Twist      float64 // geometric twist (deg)
	Cl         float64 // lift coefficient
	Cd         float64 // drag coefficient
	Lift       float64 // incremental lift force dL (N)
	Drag       float64 // incremental drag force dD (N)
	Velocity   float64 // resultant local velocity (m/s)
	Thrust     float64 // incremental thrust dT (N)
	Torque     float64 // incremental torque dQ (N-m)
}

// SolveResult is the aggregate output of one solver call: totals for
// the whole propeller, the per-section breakdown in input order, and
// the operating point echoed back for display.
type SolveResult struct {
	Thrust float64 // total thrust (N)
	Torque float64 // total torque (N-m)

	Sections []SectionResult

	// Operating point, kept for traceability
	RPM      float64
	Velocity float64 // free-stream velocity (m/s)

	// Warnings collects per-section coefficient lookup diagnostics
	// (angle of attack outside the table, malformed tables). A warning
	// never aborts the computation.
	Warnings []string
}

// InvalidOperatingPointError reports an operating condition outside
// the supported physical bounds.
type InvalidOperatingPointError struct {
	msg string
}

func (e *InvalidOperatingPointError) Error() string {
	return "invalid operating point: " + e.msg
}

// Solver computes thrust and torque via direct blade element
// summation: each section is evaluated once from the local velocity
// triangle, with no induced-flow iteration, compressibility or
// tip-loss corrections.
type Solver struct {
	// AirDensity in kg/m³. NewSolver sets the ISA sea-level value;
	// override for other atmospheric conditions.
	AirDensity float64
}

// NewSolver returns a solver at sea-level air density.
func NewSolver() *Solver {
	return &Solver{AirDensity: atmosphere.SeaLevelDensity}
}

// ComputeThrustAndTorque evaluates the propeller at the given
// rotational speed (RPM) and free-stream velocity (m/s) with
// sea-level air density.
func ComputeThrustAndTorque(p *prop.Propeller, rpm, freeStreamVelocity float64) (*SolveResult, error) {
	return NewSolver().ComputeThrustAndTorque(p, rpm, freeStreamVelocity)
}

// ComputeThrustAndTorque evaluates the propeller at the given
// rotational speed (RPM) and free-stream velocity (m/s).
//
// The call is a pure function of its inputs: identical arguments give
// identical results, the propeller is never mutated, and concurrent
// calls against the same geometry are safe. Negative RPM is rejected;
// rpm == 0 and zero velocity are valid and produce zero forces.
func (s *Solver) ComputeThrustAndTorque(p *prop.Propeller, rpm, freeStreamVelocity float64) (*SolveResult, error) {
	if rpm < 0 {
		return nil, &InvalidOperatingPointError{fmt.Sprintf("rpm must be non-negative, got %.4g", rpm)}
	}

	result := &SolveResult{
		Sections: make([]SectionResult, 0, len(p.Sections)),
		RPM:      rpm,
		Velocity: freeStreamVelocity,
	}

	// One uniform width from tip radius and section count. Only exact
	// for uniformly spaced stations; kept for compatibility with the
	// reference behavior even when sections are custom-spaced.
	sectionWidth := p.TipRadius() / float64(len(p.Sections))
	omega := rpm * 2 * math.Pi / 60

	tip := p.TipRadius()
	for i, blade := range p.Sections {
		tangential := omega * blade.Radius

		// Velocity triangle. atan2 keeps phi well defined when the
		// tangential velocity goes to zero.
		resultant := math.Sqrt(tangential*tangential + freeStreamVelocity*freeStreamVelocity)
		phi := math.Atan2(freeStreamVelocity, tangential)

		// Effective angle of attack
		alpha := blade.Twist*math.Pi/180 - phi
		alphaDeg := alpha * 180 / math.Pi

		cl := s.lookup(result, i, "lift", alphaDeg, blade.Lift)
		cd := s.lookup(result, i, "drag", alphaDeg, blade.Drag)

		// Sectional forces
		q := 0.5 * s.AirDensity * resultant * resultant
		dL := cl * q * blade.Chord * sectionWidth
		dD := cd * q * blade.Chord * sectionWidth

		// Resolve into thrust and torque components
		dT := dL*math.Cos(phi) - dD*math.Sin(phi)
		dQ := (dL*math.Sin(phi) + dD*math.Cos(phi)) * blade.Radius

		result.Sections = append(result.Sections, SectionResult{
			Radius:     blade.Radius,
			RadiusFrac: blade.Radius / tip,
			AlphaDeg:   alphaDeg,
			PhiDeg:     phi * 180 / math.Pi,
			Chord:      blade.Chord,
			Twist:      blade.Twist,
			Cl:         cl,
			Cd:         cd,
			Lift:       dL,
			Drag:       dD,
			Velocity:   resultant,
			Thrust:     dT,
			Torque:     dQ,
		})

		result.Thrust += dT
		result.Torque += dQ
	}

	result.Thrust *= float64(p.NumBlades)
	result.Torque *= float64(p.NumBlades)

	return result, nil
}

// lookup interpolates one coefficient table. A malformed table
// degrades to a zero coefficient for that section only; an angle of
// attack outside the table clamps to the boundary value. Both cases
// are recorded as warnings and never abort the solve.
func (s *Solver) lookup(result *SolveResult, section int, name string, alphaDeg float64, c prop.Curve) float64 {
	v, clamped, err := InterpolateClamped(alphaDeg, c.Alpha, c.Value)
	if err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("section %d: %s table unusable (%v), coefficient set to 0", section+1, name, err))
		return 0
	}
	if clamped {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("section %d: alpha %.1f° outside %s table [%.1f°, %.1f°], clamped", section+1, alphaDeg, name, c.Alpha[0], c.Alpha[len(c.Alpha)-1]))
	}
	return v
}
