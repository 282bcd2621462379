// Idiomatic entrypoint for the Cobra CLI that delegates to the root command
// in cmd/root.go.

package main

import (
	"github.com/modfleet/dispatch-sim/cmd"
)

func main() {
	cmd.Execute()
}
