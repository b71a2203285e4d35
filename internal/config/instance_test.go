package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultInstance(t *testing.T) {
	in := DefaultInstance()
	require.NoError(t, in.Validate())
	m, err := in.Matrix()
	require.NoError(t, err)
	require.Equal(t, 5, m.Rows())
	require.Equal(t, "3", in.Label(3))
}

func TestLoadInstance(t *testing.T) {
	path := writeFile(t, "tri.yaml", `
name: triangle
cities: [depot, north, east]
distances:
  - [0, 1, 2]
  - [1, 0, 3]
  - [2, 3, 0]
`)
	in, err := LoadInstance(path)
	require.NoError(t, err)
	require.Equal(t, "triangle", in.Name)
	require.Equal(t, "north", in.Label(1))
	require.Equal(t, "7", in.Label(7))

	m, err := in.Matrix()
	require.NoError(t, err)
	v, err := m.At(2, 1)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)
}

func TestLoadInstance_Errors(t *testing.T) {
	_, err := LoadInstance(writeFile(t, "empty.yaml", "name: nothing\n"))
	require.ErrorIs(t, err, ErrInvalidInstance)

	_, err = LoadInstance(writeFile(t, "labels.yaml", "cities: [a]\ndistances: [[0, 1], [1, 0]]\n"))
	require.ErrorIs(t, err, ErrInvalidInstance)

	_, err = LoadInstance(writeFile(t, "blank.yaml", "cities: [a, '']\ndistances: [[0, 1], [1, 0]]\n"))
	require.ErrorIs(t, err, ErrInvalidInstance)
}

func TestResolveInstance(t *testing.T) {
	in, err := ResolveInstance(InstanceConfig{}, 42)
	require.NoError(t, err)
	require.Equal(t, DefaultInstance(), in)

	c := InstanceConfig{Random: 6, Min: 1, Max: 20}
	a, err := ResolveInstance(c, 42)
	require.NoError(t, err)
	b, err := ResolveInstance(c, 42)
	require.NoError(t, err)
	require.Equal(t, a, b, "same seed, same matrix")
	require.Len(t, a.Distances, 6)
	for i := range a.Distances {
		require.Equal(t, 0.0, a.Distances[i][i])
		for j := range a.Distances {
			require.Equal(t, a.Distances[i][j], a.Distances[j][i])
		}
	}

	_, err = ResolveInstance(InstanceConfig{Random: 3, Min: 5, Max: 1}, 1)
	require.Error(t, err)

	path := writeFile(t, "two.yaml", "distances: [[0, 4], [4, 0]]\n")
	in, err = ResolveInstance(InstanceConfig{Path: path, Random: 9}, 1)
	require.NoError(t, err)
	require.Len(t, in.Distances, 2)
	require.Equal(t, path, in.Name)
}
