package cmd

import (
	"fmt"

	"github.com/UWO-Aero-Design/strategy/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of strategy",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("strategy v%s\n", version.Version)
		fmt.Println("Propeller Design Toolkit")
		fmt.Println("Blade Element Theory analysis")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
