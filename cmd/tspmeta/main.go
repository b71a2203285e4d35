// SPDX-License-Identifier: MIT
// Command tspmeta solves TSP instances with a genetic algorithm or an ant
// colony optimizer.
//
//	tspmeta ga  [--config run.yaml] [--instance cities.yaml | --random 15] [--seed 42]
//	tspmeta aco [--workers 4] [--metrics]
//	tspmeta gen --n 15 --min 1 --max 20 --seed 42
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
