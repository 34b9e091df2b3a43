package prop

import (
	"encoding/json"
	"fmt"
	"os"
)

// Airfoil pairs the lift and drag coefficient curves of one airfoil
// shape.
type Airfoil struct {
	Name string `json:"name,omitempty"`
	Lift Curve  `json:"lift"`
	Drag Curve  `json:"drag"`
}

// LoadFromFile loads a full propeller definition from a JSON file.
// This is the path for custom geometries that are not built through
// NewPropeller, including non-uniformly spaced sections. The loaded
// propeller is validated before being returned.
func LoadFromFile(path string) (*Propeller, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var p Propeller
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing propeller file: %w", err)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

// LoadAirfoilFromFile loads a lift/drag curve pair from a JSON file.
func LoadAirfoilFromFile(path string) (*Airfoil, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var a Airfoil
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("parsing airfoil file: %w", err)
	}

	if len(a.Lift.Alpha) == 0 || len(a.Drag.Alpha) == 0 {
		return nil, fmt.Errorf("airfoil file %s has an empty lift or drag curve", path)
	}

	return &a, nil
}

// DefaultAirfoil returns a generic low-Reynolds airfoil table: a thin
// airfoil lift slope of about 0.1/deg up to stall near 12 deg, and a
// parabolic drag polar. Used by the CLI when no airfoil file is given.
func DefaultAirfoil() Airfoil {
	return Airfoil{
		Name: "generic",
		Lift: Curve{
			Alpha: []float64{-10, -8, -6, -4, -2, 0, 2, 4, 6, 8, 10, 12, 14, 16},
			Value: []float64{-0.80, -0.65, -0.48, -0.30, -0.10, 0.10, 0.30, 0.50, 0.70, 0.88, 1.02, 1.10, 1.02, 0.85},
		},
		Drag: Curve{
			Alpha: []float64{-10, -8, -6, -4, -2, 0, 2, 4, 6, 8, 10, 12, 14, 16},
			Value: []float64{0.055, 0.040, 0.028, 0.018, 0.012, 0.010, 0.012, 0.016, 0.024, 0.036, 0.052, 0.075, 0.110, 0.160},
		},
	}
}
