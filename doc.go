// Package tspmeta solves the Travelling Salesman Problem with two
// metaheuristics over a distance matrix.
//
// 🚀 What is inside?
//
//	• matrix/  — dense distance matrices, validators, seeded random instances
//	• tsp/     — Genetic (GA) and AntColony (ACO) engines, 2-opt polish,
//	             tour/path utilities and the SolveWithMatrix dispatcher
//	• cmd/tspmeta — `ga`, `aco` and `gen` commands
//
// ✨ Guarantees
//
//   - Deterministic – every random draw comes from Options.Seed; the colony
//     gives the same answer for any number of workers
//   - Strict – sentinel errors for malformed matrices and options, no panics
//     on user input
//   - Observable – per-generation and per-iteration hooks instead of logging
//     inside the solvers
//
// Quick example:
//
//	dist, _ := matrix.NewDenseFromRows([][]float64{
//		{0, 2, 3, 5, 7},
//		{2, 0, 4, 6, 3},
//		{3, 4, 0, 7, 5},
//		{5, 6, 7, 0, 4},
//		{7, 3, 5, 4, 0},
//	})
//	res, _ := tsp.SolveWithMatrix(dist, tsp.DefaultOptions())
//	fmt.Println(res.Tour, res.Cost) // a tour of length 19
//
//	go install github.com/katalvlaran/tspmeta/cmd/tspmeta@latest
package tspmeta
