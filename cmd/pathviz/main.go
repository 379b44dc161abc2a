// Command pathviz runs step-by-step shortest-path searches over scenario
// files, generated mazes and the built-in hospital network.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
