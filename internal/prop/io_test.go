package prop

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromFile_RoundTrip(t *testing.T) {
	lift, drag := testCurves()
	orig, err := NewPropeller(2, 0.5, 0.05, 5, 0.05, 0.03, 20, 5, lift, drag)
	if err != nil {
		t.Fatalf("NewPropeller: %v", err)
	}
	orig.Name = "test prop"

	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	path := filepath.Join(t.TempDir(), "prop.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}

	if loaded.Name != "test prop" || loaded.NumBlades != 2 || loaded.Diameter != 0.5 {
		t.Errorf("loaded propeller header mismatch: %+v", loaded)
	}
	if len(loaded.Sections) != 5 {
		t.Fatalf("got %d sections, want 5", len(loaded.Sections))
	}
	for i := range loaded.Sections {
		if loaded.Sections[i].Radius != orig.Sections[i].Radius {
			t.Errorf("section %d radius changed across round trip", i)
		}
	}
}

func TestLoadFromFile_RejectsInvalidGeometry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	// Hub radius exceeds half the diameter.
	body := `{"num_blades": 2, "diameter": 0.5, "hub_radius": 0.4,
	          "sections": [{"radius": 0.45, "chord": 0.05, "twist": 10,
	                        "lift": {"alpha": [0], "value": [0.5]},
	                        "drag": {"alpha": [0], "value": [0.02]}}]}`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := LoadFromFile(path); err == nil {
		t.Error("invalid geometry file accepted")
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("missing file accepted")
	}
}

func TestLoadAirfoilFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "airfoil.json")
	body := `{"name": "clark-y",
	          "lift": {"alpha": [-10, 0, 10], "value": [-0.5, 0.4, 1.1]},
	          "drag": {"alpha": [-10, 0, 10], "value": [0.04, 0.012, 0.06]}}`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	a, err := LoadAirfoilFromFile(path)
	if err != nil {
		t.Fatalf("LoadAirfoilFromFile: %v", err)
	}
	if a.Name != "clark-y" || len(a.Lift.Alpha) != 3 || a.Drag.Value[1] != 0.012 {
		t.Errorf("loaded airfoil mismatch: %+v", a)
	}
}

func TestLoadAirfoilFromFile_EmptyCurves(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	if err := os.WriteFile(path, []byte(`{"name": "empty"}`), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := LoadAirfoilFromFile(path); err == nil {
		t.Error("airfoil with empty curves accepted")
	}
}

func TestDefaultAirfoil_WellFormed(t *testing.T) {
	a := DefaultAirfoil()
	if len(a.Lift.Alpha) != len(a.Lift.Value) || len(a.Drag.Alpha) != len(a.Drag.Value) {
		t.Fatal("default airfoil curves have mismatched lengths")
	}
	for i := 1; i < len(a.Lift.Alpha); i++ {
		if a.Lift.Alpha[i] <= a.Lift.Alpha[i-1] {
			t.Fatalf("default lift curve alpha not strictly increasing at index %d", i)
		}
	}
}
