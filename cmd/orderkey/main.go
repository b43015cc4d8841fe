// Command orderkey generates and checks fractional order keys.
//
// Usage: orderkey <command> [options]
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
