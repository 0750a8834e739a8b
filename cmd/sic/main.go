// SPDX-License-Identifier: MIT

// Command sic runs coherence analyses and drives the nested controller
// from the command line.
//
//	sic analyze --contexts set.yaml --epsilon 0.1 --theta 0.5
//	sic sweep --steps 50
//	sic learn 100 -50 200 -150
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
