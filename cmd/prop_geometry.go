package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/UWO-Aero-Design/strategy/internal/diagram"
	"github.com/spf13/cobra"
)

var (
	geometryDiagram bool
	geometryOutput  string
)

var propGeometryCmd = &cobra.Command{
	Use:   "geometry",
	Short: "Print and export the blade geometry",
	Long: `Print the blade station table (radius, chord, twist) for a
propeller and optionally draw the planform or export the chord and
twist distributions to an image.

Examples:
  strategy prop geometry --sections 15 --chord-root 0.06 --chord-tip 0.02
  strategy prop geometry -f myprop.json --diagram -o blade.png`,
	Run: runPropGeometry,
}

func init() {
	propCmd.AddCommand(propGeometryCmd)

	propGeometryCmd.Flags().BoolVar(&geometryDiagram, "diagram", false, "Show ASCII blade planform")
	propGeometryCmd.Flags().StringVarP(&geometryOutput, "output", "o", "", "Export geometry plot to file (png, svg, pdf)")
}

func runPropGeometry(cmd *cobra.Command, args []string) {
	p, err := loadPropeller()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     BLADE GEOMETRY")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if p.Name != "" {
		fmt.Printf("  Propeller: %s\n", p.Name)
		fmt.Println()
	}

	fmt.Println("PROPELLER:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Blades:\t%d\n", p.NumBlades)
	fmt.Fprintf(w, "  Diameter:\t%.3f m\n", p.Diameter)
	fmt.Fprintf(w, "  Hub Radius:\t%.3f m\n", p.HubRadius)
	fmt.Fprintf(w, "  Tip Radius:\t%.3f m\n", p.TipRadius())
	fmt.Fprintf(w, "  Sections:\t%d\n", len(p.Sections))
	w.Flush()
	fmt.Println()

	fmt.Println("STATIONS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "  #\tr (m)\tr/R\tchord (m)\ttwist (°)\t")

	data := diagram.PlanformData{Tip: p.TipRadius()}
	for i, s := range p.Sections {
		fmt.Fprintf(w, "  %d\t%.4f\t%.3f\t%.4f\t%.2f\t\n", i+1, s.Radius, s.Radius/p.TipRadius(), s.Chord, s.Twist)
		data.Radius = append(data.Radius, s.Radius)
		data.Chord = append(data.Chord, s.Chord)
		data.Twist = append(data.Twist, s.Twist)
	}
	w.Flush()
	fmt.Println()

	if geometryDiagram {
		fmt.Println(diagram.DrawASCIIPlanform(data))
	}

	if geometryOutput != "" {
		if err := diagram.ExportBladeGeometry(data, geometryOutput); err != nil {
			fmt.Printf("Error exporting geometry plot: %v\n", err)
			return
		}
		fmt.Printf("Geometry plot exported to: %s\n", geometryOutput)
		fmt.Println()
	}
}
