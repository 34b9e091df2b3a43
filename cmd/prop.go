package cmd

import (
	"fmt"

	"github.com/UWO-Aero-Design/strategy/internal/prop"
	"github.com/spf13/cobra"
)

var (
	// Geometry source: JSON file or parametric flags
	propFile    string
	propAirfoil string

	propBlades    int
	propDiameter  float64
	propHubRadius float64
	propSections  int
	propChordRoot float64
	propChordTip  float64
	propTwistRoot float64
	propTwistTip  float64
)

var propCmd = &cobra.Command{
	Use:   "prop",
	Short: "Propeller analysis using Blade Element Theory",
	Long: `Analyze propeller geometries using Blade Element Theory.

The geometry comes either from parametric flags (linear chord and
twist distributions between root and tip, a single airfoil for the
whole blade) or from a JSON file describing each blade section.

Subcommands:
  solve     - Thrust and torque at one operating point
  sweep     - Thrust and torque across an RPM range
  geometry  - Print and export the blade geometry

Example propeller JSON file structure:
{
  "name": "cruise prop",
  "num_blades": 2,
  "diameter": 0.5,
  "hub_radius": 0.05,
  "sections": [
    {
      "radius": 0.05, "chord": 0.05, "twist": 20,
      "lift": {"alpha": [-10, 0, 10], "value": [-0.5, 0.2, 0.9]},
      "drag": {"alpha": [-10, 0, 10], "value": [0.04, 0.01, 0.05]}
    }
  ]
}

Example airfoil JSON file structure:
{
  "name": "clark-y",
  "lift": {"alpha": [-10, 0, 10], "value": [-0.5, 0.4, 1.1]},
  "drag": {"alpha": [-10, 0, 10], "value": [0.04, 0.012, 0.06]}
}`,
}

func init() {
	rootCmd.AddCommand(propCmd)

	propCmd.PersistentFlags().StringVarP(&propFile, "file", "f", "", "Path to propeller JSON file (overrides parametric flags)")
	propCmd.PersistentFlags().StringVar(&propAirfoil, "airfoil", "", "Path to airfoil JSON file (default: built-in generic airfoil)")

	propCmd.PersistentFlags().IntVarP(&propBlades, "blades", "b", 2, "Number of blades")
	propCmd.PersistentFlags().Float64VarP(&propDiameter, "diameter", "d", 0.5, "Propeller diameter (m)")
	propCmd.PersistentFlags().Float64Var(&propHubRadius, "hub", 0.05, "Hub radius (m)")
	propCmd.PersistentFlags().IntVarP(&propSections, "sections", "n", 10, "Number of blade sections")
	propCmd.PersistentFlags().Float64Var(&propChordRoot, "chord-root", 0.05, "Chord at the root station (m)")
	propCmd.PersistentFlags().Float64Var(&propChordTip, "chord-tip", 0.03, "Chord at the tip station (m)")
	propCmd.PersistentFlags().Float64Var(&propTwistRoot, "twist-root", 20, "Twist at the root station (deg)")
	propCmd.PersistentFlags().Float64Var(&propTwistTip, "twist-tip", 5, "Twist at the tip station (deg)")
}

// loadPropeller resolves the propeller geometry from the shared prop
// flags: a JSON file when --file is set, otherwise parametric
// construction with the selected airfoil.
func loadPropeller() (*prop.Propeller, error) {
	if propFile != "" {
		return prop.LoadFromFile(propFile)
	}

	airfoil := prop.DefaultAirfoil()
	if propAirfoil != "" {
		a, err := prop.LoadAirfoilFromFile(propAirfoil)
		if err != nil {
			return nil, fmt.Errorf("loading airfoil: %w", err)
		}
		airfoil = *a
	}

	return prop.NewPropeller(propBlades, propDiameter, propHubRadius, propSections,
		propChordRoot, propChordTip, propTwistRoot, propTwistTip,
		airfoil.Lift, airfoil.Drag)
}
