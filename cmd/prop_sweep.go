package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/UWO-Aero-Design/strategy/internal/atmosphere"
	"github.com/UWO-Aero-Design/strategy/internal/bet"
	"github.com/UWO-Aero-Design/strategy/internal/diagram"
	"github.com/UWO-Aero-Design/strategy/internal/sweep"
	"github.com/spf13/cobra"
)

var (
	sweepRPMStart float64
	sweepRPMEnd   float64
	sweepSteps    int
	sweepVelocity float64
	sweepAltitude float64
	sweepChart    bool
	sweepOutput   string
)

var propSweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Sweep RPM and chart thrust and torque",
	Long: `Evaluate the propeller across an RPM range at a fixed
free-stream velocity and report thrust and torque at each point.

Examples:
  strategy prop sweep --from 1000 --to 6000 --steps 21 --velocity 10
  strategy prop sweep -f myprop.json --from 2000 --to 8000 --chart -o sweep.png`,
	Run: runPropSweep,
}

func init() {
	propCmd.AddCommand(propSweepCmd)

	propSweepCmd.Flags().Float64Var(&sweepRPMStart, "from", 1000, "Sweep start RPM")
	propSweepCmd.Flags().Float64Var(&sweepRPMEnd, "to", 6000, "Sweep end RPM")
	propSweepCmd.Flags().IntVar(&sweepSteps, "steps", 11, "Number of sweep points")
	propSweepCmd.Flags().Float64VarP(&sweepVelocity, "velocity", "v", 0, "Free-stream velocity (m/s)")
	propSweepCmd.Flags().Float64Var(&sweepAltitude, "altitude", 0, "Altitude above sea level for air density (m)")
	propSweepCmd.Flags().BoolVar(&sweepChart, "chart", false, "Show ASCII thrust/torque charts")
	propSweepCmd.Flags().StringVarP(&sweepOutput, "output", "o", "", "Export sweep curves to file (png, svg, pdf)")
}

func runPropSweep(cmd *cobra.Command, args []string) {
	p, err := loadPropeller()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	if sweepSteps < 1 {
		fmt.Println("Error: --steps must be at least 1")
		return
	}

	solver := bet.NewSolver()
	solver.AirDensity = atmosphere.DensityAt(sweepAltitude)

	rpms := sweep.Points(sweepRPMStart, sweepRPMEnd, sweepSteps)
	results, err := sweep.RPMSweep(solver, p, rpms, sweepVelocity)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     RPM PERFORMANCE SWEEP")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("SWEEP RESULTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "  RPM\tV (m/s)\tThrust (N)\tTorque (N-m)\t")

	chartData := diagram.SweepChartData{Velocity: sweepVelocity}
	warned := false
	for _, r := range results {
		fmt.Fprintf(w, "  %.0f\t%.2f\t%.4f\t%.5f\t\n", r.Point.RPM, r.Point.Velocity, r.Result.Thrust, r.Result.Torque)
		chartData.RPM = append(chartData.RPM, r.Point.RPM)
		chartData.Thrust = append(chartData.Thrust, r.Result.Thrust)
		chartData.Torque = append(chartData.Torque, r.Result.Torque)
		if len(r.Result.Warnings) > 0 {
			warned = true
		}
	}
	w.Flush()
	fmt.Println()

	if warned {
		fmt.Println("  ⚠ some points had out-of-range or degraded coefficient lookups;")
		fmt.Println("    run 'prop solve' at the point of interest for details")
		fmt.Println()
	}

	if sweepChart {
		fmt.Println(diagram.DrawASCIISweepChart(chartData))
	}

	if sweepOutput != "" {
		if err := diagram.ExportSweepCurves(chartData, sweepOutput); err != nil {
			fmt.Printf("Error exporting chart: %v\n", err)
			return
		}
		fmt.Printf("Sweep curves exported to: %s\n", sweepOutput)
		fmt.Println()
	}
}
