package tsp_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/tspmeta/matrix"
	"github.com/katalvlaran/tspmeta/tsp"
)

// ExampleSolveWithMatrix runs the genetic engine on a 5-city instance.
func ExampleSolveWithMatrix() {
	dist, _ := matrix.NewDenseFromRows([][]float64{
		{0, 2, 3, 5, 7},
		{2, 0, 4, 6, 3},
		{3, 4, 0, 7, 5},
		{5, 6, 7, 0, 4},
		{7, 3, 5, 4, 0},
	})

	opts := tsp.DefaultOptions()
	opts.Algo = tsp.Genetic
	res, err := tsp.SolveWithMatrix(dist, opts)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(len(res.Tour), res.Tour[0], res.Cost)
	// Output: 6 0 19
}

// ExampleTraverseGraph sends one ant around a 2-city colony.
func ExampleTraverseGraph() {
	dist, _ := matrix.NewDenseFromRows([][]float64{{0, 5}, {5, 0}})
	g, _ := tsp.NewColonyGraph(dist)

	path, _ := tsp.TraverseGraph(g, 0, 1, 3, rand.New(rand.NewSource(1)))
	fmt.Println(path, g.PathCost(path))
	// Output: [{0 1} {1 0}] 10
}

// ExampleColonyGraph_UpdatePheromones shows evaporation without deposits.
func ExampleColonyGraph_UpdatePheromones() {
	dist, _ := matrix.NewDenseFromRows([][]float64{{0, 1}, {1, 0}})
	g, _ := tsp.NewColonyGraph(dist)

	_ = g.UpdatePheromones(nil, 0.5, 100)
	fmt.Println(g.Intensity(0, 1), g.Intensity(1, 1))
	// Output: 0.5 0.5
}
