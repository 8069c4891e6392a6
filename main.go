// Package main is the entry point for the neurosym CLI application.
// It provides a terminal client for the remote neuro-symbolic solver.
package main

import (
	"github.com/rodionpotapov/neuro-symbolic-reasoner/cmd"
)

// main initializes and executes the command-line interface.
func main() {
	cmd.Execute()
}
