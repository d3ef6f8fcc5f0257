package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sarchlab/vbench/model"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the registered model kinds.",
	Run: func(_ *cobra.Command, _ []string) {
		for _, kind := range model.List() {
			fmt.Println(kind)
		}
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}
