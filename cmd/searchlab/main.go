// SPDX-License-Identifier: MIT

// Command searchlab runs the search visualiser engine headless: it
// generates a random graph, runs BFS, DFS, UCS or A* over it and prints
// each step as it is recorded.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
