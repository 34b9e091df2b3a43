package cmd

import (
	"fmt"
	"os"

	"github.com/UWO-Aero-Design/strategy/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "strategy",
	Short: "Propeller design and analysis tools",
	Long: `strategy - Propeller Design Toolkit

A CLI tool for exploring propeller geometries using
Blade Element Theory (BET).

This tool helps a designer:
  - Estimate thrust and torque for a propeller at an operating point
  - Sweep RPM to chart performance curves
  - Inspect and export blade geometry (chord/twist distributions)

The solver is a direct blade-element calculation: no induced-flow
iteration, compressibility or tip-loss corrections.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   strategy v%-46s║\n", version.Version)
		fmt.Println("  ║   Propeller Design Toolkit                                ║")
		fmt.Println("  ║   Blade Element Theory analysis                           ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for exploring propeller geometries using")
		fmt.Println("  Blade Element Theory.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Thrust and torque estimation with a per-section breakdown")
		fmt.Println("    • RPM performance sweeps with terminal and image charts")
		fmt.Println("    • Parametric blade geometry generation")
		fmt.Println("    • Custom geometry and airfoil tables from JSON files")
		fmt.Println()
		fmt.Println("  Use 'strategy --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
