package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/vbench/datarecording"
	"github.com/sarchlab/vbench/verify"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check the FIR model against its golden reference.",
	Long: `verify drives the FIR filter model with the two-tone demo signal ` +
		`and compares its output with the floating-point golden filter. The ` +
		`command exits non-zero if the RMS error exceeds the tolerance.`,
	Run: func(cmd *cobra.Command, _ []string) {
		p := verify.DefaultParams()

		flags := cmd.Flags()
		if flags.Changed("cycles") {
			p.Cycles, _ = flags.GetUint64("cycles")
		}
		if flags.Changed("tolerance") {
			p.Tolerance, _ = flags.GetFloat64("tolerance")
		}

		report, err := verify.FIR(p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			atexit.Exit(1)
		}

		fmt.Println(report.String())

		recordPath, _ := flags.GetString("record")
		if recordPath != "" {
			recorder := datarecording.New(recordPath)
			report.WriteTo(recorder)
			recorder.Close()
		}

		if !report.Passed {
			atexit.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().Uint64("cycles", 500, "number of clock cycles to run")
	verifyCmd.Flags().Float64("tolerance", 32,
		"allowed RMS error in raw sample counts")
	verifyCmd.Flags().String("record", "",
		"store the report in this SQLite file")
}
