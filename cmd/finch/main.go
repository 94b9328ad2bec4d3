// Package main is the finch CLI: asynchronous fuzzy file-path search over
// fd or ripgrep.
package main

import (
	"fmt"
	"os"

	"github.com/Cyclone1070/finch/cmd/finch/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
