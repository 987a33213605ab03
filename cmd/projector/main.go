// Package main provides the projector CLI.
//
// projector moves sample values between YAML and CSV according to a column
// layout:
//   - export projects each value through its column's binding and writes CSV
//   - import reads CSV back through the inverse bindings and writes YAML
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
