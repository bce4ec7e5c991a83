package main

import "math"

// Unreachable is the sentinel distance for cells with no path to any cell of
// a feature label (the label is absent from the grid). Scoring skips these.
var Unreachable = math.Inf(1)

// DistanceField holds, for one feature label, the minimum number of
// 4-connected steps from every cell to the nearest cell bearing that label.
type DistanceField struct {
	Rows, Cols int
	cells      []float64
}

// At returns the distance at (r, c).
func (f *DistanceField) At(r, c int) float64 {
	return f.cells[r*f.Cols+c]
}

// neighborOffsets are the 4-connected step directions: N, E, S, W.
var neighborOffsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// BuildDistanceFields computes one DistanceField per fixed-feature label via
// multi-source BFS: every cell bearing the label seeds the frontier at
// distance 0, and the first visit to a cell is its shortest distance (all
// steps cost 1). A label absent from the grid yields an all-Unreachable
// field, never an error.
//
// Fields depend only on fixed-feature placement, which the optimizer never
// touches, so one build per grid configuration suffices.
// O(rows·cols) per label.
func BuildDistanceFields(g *Grid) map[CellLabel]*DistanceField {
	fields := make(map[CellLabel]*DistanceField, len(FeatureLabels))
	for _, label := range FeatureLabels {
		fields[label] = buildField(g, label)
	}
	return fields
}

func buildField(g *Grid, label CellLabel) *DistanceField {
	f := &DistanceField{
		Rows:  g.Rows,
		Cols:  g.Cols,
		cells: make([]float64, g.Rows*g.Cols),
	}
	for i := range f.cells {
		f.cells[i] = Unreachable
	}

	queue := make([]Pos, 0, g.Rows*g.Cols)
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if g.At(r, c) == label {
				f.cells[r*f.Cols+c] = 0
				queue = append(queue, Pos{r, c})
			}
		}
	}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		next := f.At(p.Row, p.Col) + 1
		for _, d := range neighborOffsets {
			nr, nc := p.Row+d[0], p.Col+d[1]
			if nr < 0 || nr >= g.Rows || nc < 0 || nc >= g.Cols {
				continue
			}
			if f.cells[nr*f.Cols+nc] > next {
				f.cells[nr*f.Cols+nc] = next
				queue = append(queue, Pos{nr, nc})
			}
		}
	}
	return f
}
