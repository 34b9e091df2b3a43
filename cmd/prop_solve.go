package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/UWO-Aero-Design/strategy/internal/atmosphere"
	"github.com/UWO-Aero-Design/strategy/internal/bet"
	"github.com/spf13/cobra"
)

var (
	solveRPM      float64
	solveVelocity float64
	solveAltitude float64
)

var propSolveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Compute thrust and torque at one operating point",
	Long: `Compute total thrust and torque for a propeller at a given
rotational speed and free-stream velocity, with a per-section
breakdown of the blade element calculation.

Examples:
  # Parametric 2-blade, 0.5 m propeller at 3000 RPM and 10 m/s
  strategy prop solve --rpm 3000 --velocity 10

  # Custom geometry from a JSON file, solved at 2000 m altitude
  strategy prop solve -f myprop.json --rpm 4500 --velocity 15 --altitude 2000`,
	Run: runPropSolve,
}

func init() {
	propCmd.AddCommand(propSolveCmd)

	propSolveCmd.Flags().Float64VarP(&solveRPM, "rpm", "r", 0, "Rotational speed (RPM) [required]")
	propSolveCmd.Flags().Float64VarP(&solveVelocity, "velocity", "v", 0, "Free-stream velocity (m/s)")
	propSolveCmd.Flags().Float64Var(&solveAltitude, "altitude", 0, "Altitude above sea level for air density (m)")

	propSolveCmd.MarkFlagRequired("rpm")
}

func runPropSolve(cmd *cobra.Command, args []string) {
	p, err := loadPropeller()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	solver := bet.NewSolver()
	solver.AirDensity = atmosphere.DensityAt(solveAltitude)

	result, err := solver.ComputeThrustAndTorque(p, solveRPM, solveVelocity)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     BLADE ELEMENT THEORY ANALYSIS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if p.Name != "" {
		fmt.Printf("  Propeller: %s\n", p.Name)
		fmt.Println()
	}

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Blades:\t%d\n", p.NumBlades)
	fmt.Fprintf(w, "  Diameter:\t%.3f m\n", p.Diameter)
	fmt.Fprintf(w, "  Hub Radius:\t%.3f m\n", p.HubRadius)
	fmt.Fprintf(w, "  Sections:\t%d\n", len(p.Sections))
	fmt.Fprintf(w, "  RPM:\t%.0f\n", result.RPM)
	fmt.Fprintf(w, "  Free-stream Velocity:\t%.2f m/s\n", result.Velocity)
	fmt.Fprintf(w, "  Air Density:\t%.4f kg/m³\n", solver.AirDensity)
	w.Flush()
	fmt.Println()

	fmt.Println("PER-SECTION RESULTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "  r (m)\tr/R\tα (°)\tφ (°)\tchord (m)\ttwist (°)\tCl\tCd\tV (m/s)\tdT (N)\tdQ (N-m)\t")
	for _, s := range result.Sections {
		fmt.Fprintf(w, "  %.4f\t%.3f\t%.2f\t%.2f\t%.4f\t%.2f\t%.3f\t%.4f\t%.2f\t%.4f\t%.5f\t\n",
			s.Radius, s.RadiusFrac, s.AlphaDeg, s.PhiDeg, s.Chord, s.Twist, s.Cl, s.Cd, s.Velocity, s.Thrust, s.Torque)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("TOTALS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Total Thrust:\t%.4f N\n", result.Thrust)
	fmt.Fprintf(w, "  Total Torque:\t%.5f N-m\n", result.Torque)
	w.Flush()
	fmt.Println()

	printWarnings(result)
}

// printWarnings reports per-section coefficient lookup diagnostics.
func printWarnings(result *bet.SolveResult) {
	if len(result.Warnings) == 0 {
		return
	}
	fmt.Println("WARNINGS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	for _, warn := range result.Warnings {
		fmt.Printf("  ⚠ %s\n", warn)
	}
	fmt.Println()
}
