// main is the entry point for the trueskill CLI.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/trueskill/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
