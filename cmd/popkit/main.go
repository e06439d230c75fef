// Package main provides the popkit operator CLI: configuration
// management, route inspection, session listing, and lesson reporting.
// The hook protocol itself lives in the popkit-hooks binary.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "popkit",
	Short:         "popkit operator CLI",
	Long:          "Inspect and manage popkit: hook configuration, prompt routing, sessions, and lesson reports.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "explicit config file path")

	rootCmd.AddCommand(
		newInitCmd(),
		newRouteCmd(),
		newSessionsCmd(),
		newLessonCmd(),
		newVersionCmd(),
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "popkit: %v\n", err)
		os.Exit(1)
	}
}
