package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGridCloneIsIndependent(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(1, 1, CellTransit)
	g.Set(0, 2, CellResidential)

	c := g.Clone()
	require.True(t, g.Equal(c))

	c.Set(1, 1, CellOffice)
	require.Equal(t, CellTransit, g.At(1, 1), "mutating the clone must not touch the original")
	require.False(t, g.Equal(c))
}

func TestGridCopyFrom(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(0, 0, CellCafe)
	o := NewGrid(2, 2)
	o.CopyFrom(g)
	require.True(t, g.Equal(o))
}

func TestGridEqualDimensionMismatch(t *testing.T) {
	require.False(t, NewGrid(2, 3).Equal(NewGrid(3, 2)))
}

func TestGridAgentCells(t *testing.T) {
	g := NewGrid(2, 3)
	g.Set(0, 0, CellRoad)
	g.Set(0, 1, CellResidential)
	g.Set(1, 2, CellCafe)

	cells := g.AgentCells()
	require.Equal(t, []Pos{{0, 1}, {1, 2}}, cells, "row-major order, agents only")
}

func TestGridCountLabels(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(0, 0, CellShop)
	g.Set(0, 1, CellShop)
	g.Set(1, 0, CellPublic)

	counts := g.CountLabels()
	require.Equal(t, 2, counts[CellShop])
	require.Equal(t, 1, counts[CellPublic])
	require.Equal(t, 1, counts[CellEmpty])
}

func TestLabelPartitions(t *testing.T) {
	for _, l := range AgentLabels {
		require.True(t, l.IsAgent())
		require.False(t, l.IsFeature())
	}
	for _, l := range FeatureLabels {
		require.True(t, l.IsFeature())
		require.False(t, l.IsAgent())
	}
	require.False(t, CellEmpty.IsAgent())
	require.False(t, CellEmpty.IsFeature())
}

func TestGlyphRoundTrip(t *testing.T) {
	for l := CellLabel(0); l < numCellLabels; l++ {
		got, ok := parseGlyph(l.Glyph())
		require.True(t, ok)
		require.Equal(t, l, got)
	}
	_, ok := parseGlyph('?')
	require.False(t, ok)
}
