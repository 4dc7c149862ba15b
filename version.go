package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	appVersion string
	buildTime  string
)

// SetVersion records build metadata and enables cobra's --version flag.
func SetVersion(v, bt string) {
	appVersion = v
	buildTime = bt
	rootCmd.Version = v
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "sftimeline %s (built %s)\n", appVersion, buildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
