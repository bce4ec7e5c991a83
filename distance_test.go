package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDistanceFieldSingleSource(t *testing.T) {
	g := NewGrid(5, 5)
	g.Set(2, 2, CellTransit)

	f := BuildDistanceFields(g)[CellTransit]
	require.Equal(t, 0.0, f.At(2, 2), "a cell bearing the feature is at distance 0")
	require.Equal(t, 4.0, f.At(0, 0), "Manhattan distance on a 4-connected grid")
	require.Equal(t, 1.0, f.At(2, 3))
	require.Equal(t, 2.0, f.At(0, 2))
	require.Equal(t, 4.0, f.At(4, 4))
}

func TestDistanceFieldMultiSource(t *testing.T) {
	g := NewGrid(1, 6)
	g.Set(0, 0, CellRoad)
	g.Set(0, 5, CellRoad)

	f := BuildDistanceFields(g)[CellRoad]
	// Each cell reaches the nearest of the two sources.
	want := []float64{0, 1, 2, 2, 1, 0}
	for c, w := range want {
		require.Equal(t, w, f.At(0, c), "col %d", c)
	}
}

func TestDistanceFieldAbsentLabel(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(0, 0, CellTransit)

	fields := BuildDistanceFields(g)
	landscape := fields[CellLandscape]
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			require.Equal(t, Unreachable, landscape.At(r, c),
				"absent feature yields an all-unreachable field, not an error")
		}
	}
}

func TestDistanceFieldOnePerFeature(t *testing.T) {
	g := NewGrid(2, 2)
	fields := BuildDistanceFields(g)
	require.Len(t, fields, len(FeatureLabels))
	for _, l := range FeatureLabels {
		require.Contains(t, fields, l)
	}
}

func TestDistanceFieldIgnoresAgents(t *testing.T) {
	// Agent and empty cells are traversable like any other; only feature
	// cells seed the search.
	g := NewGrid(1, 3)
	g.Set(0, 0, CellPublic)
	g.Set(0, 1, CellResidential)

	f := BuildDistanceFields(g)[CellPublic]
	require.Equal(t, 2.0, f.At(0, 2))
}
