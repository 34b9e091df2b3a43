package prop

import "fmt"

// Curve is a tabulated aerodynamic coefficient curve: coefficient
// values sampled at angles of attack. Alpha samples are in degrees and
// must be strictly increasing for interpolation to be well defined.
type Curve struct {
	Alpha []float64 `json:"alpha"` // angle of attack samples (deg)
	Value []float64 `json:"value"` // coefficient at each sample
}

// BladeSection is a single radial slice of a blade.
//
// Sections are built once, at geometry-construction time, and never
// mutated afterwards. A section belongs to exactly one Propeller.
type BladeSection struct {
	Radius float64 `json:"radius"` // radial position from hub center (m)
	Chord  float64 `json:"chord"`  // local chord length (m)
	Twist  float64 `json:"twist"`  // geometric twist (deg)

	// Airfoil coefficient curves vs angle of attack
	Lift Curve `json:"lift"`
	Drag Curve `json:"drag"`
}

// Propeller is a complete blade geometry.
//
// The solver treats a Propeller as read only, so a single instance can
// be shared across concurrent solver calls (e.g. a parameter sweep)
// without locking.
type Propeller struct {
	Name      string  `json:"name,omitempty"`
	NumBlades int     `json:"num_blades"` // total blade count
	Diameter  float64 `json:"diameter"`   // overall diameter (m)
	HubRadius float64 `json:"hub_radius"` // hub radius, no sections inside (m)

	// Sections ordered by increasing radius. The order is semantically
	// meaningful: the solver derives section width from the section
	// count and walks the slice in radial order.
	Sections []BladeSection `json:"sections"`
}

// TipRadius returns the blade tip radius (m).
func (p *Propeller) TipRadius() float64 {
	return p.Diameter / 2
}

// Validate checks the propeller definition against its geometric
// invariants. It is called by NewPropeller and LoadFromFile; callers
// constructing a Propeller literal by hand should call it themselves.
func (p *Propeller) Validate() error {
	if p.NumBlades < 1 {
		return &InvalidGeometryError{"number of blades must be positive"}
	}
	if p.Diameter <= 2*p.HubRadius {
		return &InvalidGeometryError{fmt.Sprintf("diameter %.4g m must exceed twice the hub radius %.4g m", p.Diameter, p.HubRadius)}
	}
	if p.HubRadius < 0 {
		return &InvalidGeometryError{"hub radius must be non-negative"}
	}
	if len(p.Sections) == 0 {
		return &InvalidGeometryError{"propeller must have at least one blade section"}
	}

	tip := p.TipRadius()
	prev := p.HubRadius
	for i, s := range p.Sections {
		if s.Radius < p.HubRadius || s.Radius > tip {
			return &InvalidGeometryError{fmt.Sprintf("section %d radius %.4g m outside [%.4g, %.4g]", i+1, s.Radius, p.HubRadius, tip)}
		}
		if i > 0 && s.Radius < prev {
			return &InvalidGeometryError{fmt.Sprintf("section %d radius %.4g m breaks increasing-radius order", i+1, s.Radius)}
		}
		if s.Chord <= 0 {
			return &InvalidGeometryError{fmt.Sprintf("section %d must have positive chord", i+1)}
		}
		prev = s.Radius
	}
	return nil
}

// Coefficient curves are deliberately not validated here: a malformed
// table degrades the affected section at solve time (coefficient
// treated as zero) rather than rejecting the whole geometry.

// InvalidGeometryError reports a structurally impossible propeller
// definition. Construction never returns a partially built Propeller
// alongside this error.
type InvalidGeometryError struct {
	msg string
}

func (e *InvalidGeometryError) Error() string {
	return "invalid geometry: " + e.msg
}
