// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tspmeta/matrix"
)

// ErrInvalidInstance is returned for malformed instance files.
var ErrInvalidInstance = errors.New("config: invalid instance")

// Instance is a named distance matrix, optionally with city labels.
//
//	name: five-cities
//	cities: [depot, a, b, c, d]
//	distances:
//	  - [0, 2, 3, 5, 7]
//	  - ...
type Instance struct {
	Name      string      `yaml:"name"`
	Cities    []string    `yaml:"cities,omitempty" validate:"omitempty,dive,required"`
	Distances [][]float64 `yaml:"distances" validate:"required,min=1,dive,min=1"`
}

// DefaultInstance is the 5-city reference instance.
func DefaultInstance() Instance {
	return Instance{
		Name: "five-cities",
		Distances: [][]float64{
			{0, 2, 3, 5, 7},
			{2, 0, 4, 6, 3},
			{3, 4, 0, 7, 5},
			{5, 6, 7, 0, 4},
			{7, 3, 5, 4, 0},
		},
	}
}

// LoadInstance reads and validates a YAML instance file.
func LoadInstance(path string) (Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Instance{}, fmt.Errorf("load instance: %w", err)
	}

	var in Instance
	if err = yaml.Unmarshal(data, &in); err != nil {
		return Instance{}, fmt.Errorf("parse instance %s: %w", path, err)
	}
	if err = in.Validate(); err != nil {
		return Instance{}, err
	}
	if in.Name == "" {
		in.Name = path
	}

	return in, nil
}

// Validate checks struct tags and that labels, when given, cover every row.
// Matrix-level rules (square, zero diagonal, ...) are left to the solvers.
func (in Instance) Validate() error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInstance, err)
	}
	if len(in.Cities) > 0 && len(in.Cities) != len(in.Distances) {
		return fmt.Errorf("%w: %d labels for %d rows", ErrInvalidInstance, len(in.Cities), len(in.Distances))
	}

	return nil
}

// Matrix builds the dense distance matrix.
func (in Instance) Matrix() (*matrix.Dense, error) {
	return matrix.NewDenseFromRows(in.Distances)
}

// Label returns the display name of city i, falling back to its index.
func (in Instance) Label(i int) string {
	if i >= 0 && i < len(in.Cities) {
		return in.Cities[i]
	}

	return strconv.Itoa(i)
}

// ResolveInstance picks the instance described by c: a file when Path is
// set, a random symmetric matrix of c.Random cities drawn from seed when
// Random > 0, and DefaultInstance otherwise.
func ResolveInstance(c InstanceConfig, seed int64) (Instance, error) {
	switch {
	case c.Path != "":
		return LoadInstance(c.Path)

	case c.Random > 0:
		m, err := matrix.NewRandomSymmetric(c.Random, c.Min, c.Max, rand.New(rand.NewSource(seed)))
		if err != nil {
			return Instance{}, fmt.Errorf("random instance: %w", err)
		}

		return Instance{
			Name:      fmt.Sprintf("random-%d-seed-%d", c.Random, seed),
			Distances: m.ToRows(),
		}, nil

	default:
		return DefaultInstance(), nil
	}
}
