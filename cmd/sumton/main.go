// Command sumton prints the sum of the integers 1..n computed by each of
// the summation implementations.
//
//	sumton          # demo: n = 5 and n = 10
//	sumton 3 100    # one block per argument
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
