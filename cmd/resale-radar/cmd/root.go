// Package cmd implements the server CLI commands for resale-radar.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "resale-radar",
	Short: "Estimate and track the resale value of collected items",
	Long:  "An API-first service that estimates what collected items (video games, consoles, accessories) would sell for on eBay, tracks their value over time, and projects profit margins after marketplace fees.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
