package main

import (
	"github.com/sarchlab/vbench/vbench/cmd"

	// Bundled models register themselves with the model registry.
	_ "github.com/sarchlab/vbench/model/counter"
	_ "github.com/sarchlab/vbench/model/fir"
)

func main() {
	cmd.Execute()
}
