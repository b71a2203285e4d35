// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tspmeta/internal/config"
	"github.com/katalvlaran/tspmeta/matrix"
	"github.com/katalvlaran/tspmeta/tsp"
)

func newGenCmd(stdout io.Writer) *cobra.Command {
	var (
		n        int
		min, max float64
		seed     int64
		asYAML   bool
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a random symmetric distance matrix",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			m, err := matrix.NewRandomSymmetric(n, min, max, rand.New(rand.NewSource(seed)))
			if err != nil {
				return err
			}
			if !asYAML {
				_, err = fmt.Fprint(stdout, m.String())
				return err
			}

			out, err := yaml.Marshal(config.Instance{
				Name:      fmt.Sprintf("random-%d-seed-%d", n, seed),
				Distances: m.ToRows(),
			})
			if err != nil {
				return err
			}
			_, err = stdout.Write(out)

			return err
		},
	}

	fl := cmd.Flags()
	fl.IntVar(&n, "n", 15, "number of cities")
	fl.Float64Var(&min, "min", 1, "smallest distance")
	fl.Float64Var(&max, "max", 20, "largest distance")
	fl.Int64Var(&seed, "seed", tsp.DefaultSeed, "random seed")
	fl.BoolVar(&asYAML, "yaml", false, "emit an instance file instead of the matrix rows")

	return cmd
}
