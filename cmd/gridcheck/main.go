// Package main provides gridcheck, a demonstration harness that runs a fixed
// sequence of Grid operations and prints a Pass/Fail line per checked condition.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
