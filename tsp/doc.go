// Package tsp provides metaheuristic Travelling Salesman Problem solvers.
//
// It includes two independent engines on a distance matrix (matrix.Matrix):
//
//   - TSPGenetic — a generational genetic algorithm over fixed-origin tours:
//     tournament selection, order crossover (OX) with the origin pinned,
//     swap mutation and elitism. Complexity: O(G·P·n) for G generations
//     of P tours over n cities. Accepts asymmetric matrices.
//
//   - TSPAntColony — ant colony optimization: pheromone-weighted random walks,
//     evaporation by a decay factor and Q/cost reinforcement after every
//     iteration. Ants of one iteration run in parallel. Complexity:
//     O(I·A·n²) for I iterations of A ants. Requires a symmetric matrix.
//
// SolveWithMatrix dispatches on Options.Algo and can polish the result with
// 2-opt (EnableLocalSearch). OneTreeBound gives a Held–Karp lower bound for
// judging how far a heuristic tour is from optimal.
//
// Every random draw comes from Options.Seed, so runs are reproducible;
// progress is exposed through the OnGeneration and OnIteration hooks,
// never through logging.
//
// All engines require n ≥ 2 cities, a zero diagonal and finite,
// non-negative distances; violations are reported with the sentinels in
// types.go.
package tsp
