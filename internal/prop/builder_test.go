package prop

import (
	"errors"
	"math"
	"testing"
)

func testCurves() (Curve, Curve) {
	lift := Curve{Alpha: []float64{-10, 10}, Value: []float64{-0.5, 0.9}}
	drag := Curve{Alpha: []float64{-10, 10}, Value: []float64{0.04, 0.05}}
	return lift, drag
}

func TestNewPropeller_LinearDistributions(t *testing.T) {
	lift, drag := testCurves()
	p, err := NewPropeller(2, 0.5, 0.05, 3, 0.05, 0.03, 20, 5, lift, drag)
	if err != nil {
		t.Fatalf("NewPropeller: %v", err)
	}

	if len(p.Sections) != 3 {
		t.Fatalf("got %d sections, want 3", len(p.Sections))
	}

	// Endpoints are exact, interior stations are linear.
	if p.Sections[0].Radius != 0.05 {
		t.Errorf("first station radius = %v, want hub radius 0.05", p.Sections[0].Radius)
	}
	if p.Sections[2].Radius != 0.25 {
		t.Errorf("last station radius = %v, want tip radius 0.25", p.Sections[2].Radius)
	}
	if p.Sections[0].Chord != 0.05 || p.Sections[2].Chord != 0.03 {
		t.Errorf("chord endpoints = %v, %v, want 0.05, 0.03", p.Sections[0].Chord, p.Sections[2].Chord)
	}
	if p.Sections[0].Twist != 20 || p.Sections[2].Twist != 5 {
		t.Errorf("twist endpoints = %v, %v, want 20, 5", p.Sections[0].Twist, p.Sections[2].Twist)
	}
	if math.Abs(p.Sections[1].Chord-0.04) > 1e-12 {
		t.Errorf("mid chord = %v, want 0.04", p.Sections[1].Chord)
	}
	if math.Abs(p.Sections[1].Twist-12.5) > 1e-12 {
		t.Errorf("mid twist = %v, want 12.5", p.Sections[1].Twist)
	}
}

func TestNewPropeller_SingleSectionAtHub(t *testing.T) {
	lift, drag := testCurves()
	p, err := NewPropeller(2, 0.5, 0.05, 1, 0.05, 0.03, 20, 5, lift, drag)
	if err != nil {
		t.Fatalf("NewPropeller: %v", err)
	}
	if len(p.Sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(p.Sections))
	}
	if p.Sections[0].Radius != 0.05 {
		t.Errorf("single station radius = %v, want hub radius 0.05", p.Sections[0].Radius)
	}
	if p.Sections[0].Chord != 0.05 || p.Sections[0].Twist != 20 {
		t.Errorf("single station chord/twist = %v/%v, want root values 0.05/20", p.Sections[0].Chord, p.Sections[0].Twist)
	}
}

func TestNewPropeller_SharedAirfoil(t *testing.T) {
	lift, drag := testCurves()
	p, err := NewPropeller(2, 0.5, 0.05, 4, 0.05, 0.03, 20, 5, lift, drag)
	if err != nil {
		t.Fatalf("NewPropeller: %v", err)
	}
	for i, s := range p.Sections {
		if len(s.Lift.Alpha) != len(lift.Alpha) || s.Lift.Value[1] != 0.9 {
			t.Errorf("section %d does not carry the shared lift curve", i)
		}
		if len(s.Drag.Alpha) != len(drag.Alpha) || s.Drag.Value[0] != 0.04 {
			t.Errorf("section %d does not carry the shared drag curve", i)
		}
	}
}

func TestNewPropeller_InvalidInputs(t *testing.T) {
	lift, drag := testCurves()

	tests := []struct {
		name                string
		blades, sections    int
		diameter, hub       float64
		chordRoot, chordTip float64
	}{
		{"zero sections", 2, 0, 0.5, 0.05, 0.05, 0.03},
		{"negative sections", 2, -3, 0.5, 0.05, 0.05, 0.03},
		{"hub too large", 2, 5, 0.5, 0.3, 0.05, 0.03},
		{"diameter equals twice hub", 2, 5, 0.5, 0.25, 0.05, 0.03},
		{"non-positive tip chord", 2, 5, 0.5, 0.05, 0.05, -0.01},
		{"zero root chord", 2, 5, 0.5, 0.05, 0, 0.03},
		{"zero blades", 0, 5, 0.5, 0.05, 0.05, 0.03},
	}

	for _, tt := range tests {
		p, err := NewPropeller(tt.blades, tt.diameter, tt.hub, tt.sections,
			tt.chordRoot, tt.chordTip, 20, 5, lift, drag)
		if err == nil {
			t.Errorf("%s: expected error, got propeller %+v", tt.name, p)
			continue
		}
		var geomErr *InvalidGeometryError
		if !errors.As(err, &geomErr) {
			t.Errorf("%s: error type = %T, want *InvalidGeometryError", tt.name, err)
		}
		if p != nil {
			t.Errorf("%s: returned a partially constructed propeller", tt.name)
		}
	}
}

func TestValidate_SectionInvariants(t *testing.T) {
	lift, drag := testCurves()

	base := func() *Propeller {
		return &Propeller{
			NumBlades: 2,
			Diameter:  0.5,
			HubRadius: 0.05,
			Sections: []BladeSection{
				{Radius: 0.05, Chord: 0.05, Twist: 20, Lift: lift, Drag: drag},
				{Radius: 0.15, Chord: 0.04, Twist: 12, Lift: lift, Drag: drag},
				{Radius: 0.25, Chord: 0.03, Twist: 5, Lift: lift, Drag: drag},
			},
		}
	}

	if err := base().Validate(); err != nil {
		t.Fatalf("valid propeller rejected: %v", err)
	}

	p := base()
	p.Sections[1].Radius = 0.30 // beyond the tip
	if err := p.Validate(); err == nil {
		t.Error("section beyond the tip radius accepted")
	}

	p = base()
	p.Sections[1].Radius = 0.01 // inside the hub
	if err := p.Validate(); err == nil {
		t.Error("section inside the hub accepted")
	}

	p = base()
	p.Sections[1], p.Sections[2] = p.Sections[2], p.Sections[1]
	if err := p.Validate(); err == nil {
		t.Error("out-of-order sections accepted")
	}

	p = base()
	p.Sections = nil
	if err := p.Validate(); err == nil {
		t.Error("propeller without sections accepted")
	}
}
