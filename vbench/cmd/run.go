package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/vbench/bench"
	"github.com/sarchlab/vbench/sim"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a model for a number of clock cycles.",
	Long: `run instantiates the selected model and toggles its clock for the ` +
		`configured number of cycles, evaluating the model on each edge. ` +
		`Configuration comes from defaults, an optional YAML file, .env ` +
		`overrides, and flags, in that order.`,
	Run: func(cmd *cobra.Command, _ []string) {
		cfg := loadRunConfig(cmd)

		if cfg.ParallelIDs {
			sim.UseParallelIDGenerator()
		}

		b, err := cfg.Bench()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			atexit.Exit(1)
		}

		err = b.Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			atexit.Exit(1)
		}

		b.Terminate()
	},
}

func loadRunConfig(cmd *cobra.Command) bench.Config {
	cfg := bench.DefaultConfig()

	configPath, _ := cmd.Flags().GetString("config")
	if configPath != "" {
		var err error
		cfg, err = bench.LoadConfig(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			atexit.Exit(1)
		}
	}

	err := cfg.ApplyEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		atexit.Exit(1)
	}

	applyRunFlags(cmd, &cfg)

	return cfg
}

func applyRunFlags(cmd *cobra.Command, cfg *bench.Config) {
	flags := cmd.Flags()

	if flags.Changed("model") {
		cfg.Model, _ = flags.GetString("model")
	}
	if flags.Changed("cycles") {
		cfg.Cycles, _ = flags.GetUint64("cycles")
	}
	if flags.Changed("freq") {
		cfg.ClockHz, _ = flags.GetFloat64("freq")
	}
	if flags.Changed("output") {
		cfg.Output, _ = flags.GetString("output")
	}
	if flags.Changed("csv") {
		cfg.CSV, _ = flags.GetString("csv")
	}
	if flags.Changed("monitor") {
		cfg.Monitor, _ = flags.GetBool("monitor")
	}
	if flags.Changed("monitor-port") {
		cfg.MonitorPort, _ = flags.GetInt("monitor-port")
		cfg.Monitor = true
	}
	if flags.Changed("browser") {
		cfg.Browser, _ = flags.GetBool("browser")
		cfg.Monitor = true
	}
	if flags.Changed("log-events") {
		cfg.LogEvents, _ = flags.GetBool("log-events")
	}
	if flags.Changed("parallel-ids") {
		cfg.ParallelIDs, _ = flags.GetBool("parallel-ids")
	}
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("config", "", "bench configuration YAML file")
	runCmd.Flags().String("model", "fir", "model kind to instantiate")
	runCmd.Flags().Uint64("cycles", 10, "number of clock cycles to run")
	runCmd.Flags().Float64("freq", 500, "clock frequency in Hz")
	runCmd.Flags().String("output", "", "data recorder output file name")
	runCmd.Flags().String("csv", "", "also write waveforms to this CSV file")
	runCmd.Flags().Bool("monitor", false, "serve the live monitor")
	runCmd.Flags().Int("monitor-port", 0, "port for the monitoring server")
	runCmd.Flags().Bool("browser", false,
		"open the monitor dashboard in the default browser")
	runCmd.Flags().Bool("log-events", false,
		"print every engine event to stderr")
	runCmd.Flags().Bool("parallel-ids", false,
		"use the non-deterministic parallel ID generator")
}
