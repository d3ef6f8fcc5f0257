// Package cmd provides the command-line interface for vbench.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use: "vbench",
	Short: "vbench drives compiled hardware models with a clock and checks " +
		"them against golden references.",
	Long: `vbench instantiates a compiled hardware model, toggles its clock ` +
		`for a configured number of cycles, and evaluates the model on each ` +
		`edge. It can record waveforms, serve a live monitor, and verify ` +
		`filter models against their golden DSP references.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		atexit.Exit(1)
	}
}
