// Command lottorank is a thin console front end over the combinatorial
// engine: it ranks and decodes grids, scores tickets against a draw,
// and samples batches spread across the space.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Error("command failed", "err", err)
		os.Exit(1)
	}
}
