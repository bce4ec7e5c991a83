package main

// Grid is a fixed-size row-major board of cell labels. Dimensions are set at
// construction and never change; bounds checking is the caller's job.
type Grid struct {
	Rows, Cols int
	cells      []CellLabel
}

// NewGrid returns a rows×cols grid with every cell empty.
func NewGrid(rows, cols int) *Grid {
	return &Grid{
		Rows:  rows,
		Cols:  cols,
		cells: make([]CellLabel, rows*cols),
	}
}

// At returns the label at (r, c).
func (g *Grid) At(r, c int) CellLabel {
	return g.cells[r*g.Cols+c]
}

// Set writes the label at (r, c). Legality of the write (e.g. not clobbering
// a fixed-feature cell mid-run) is the caller's responsibility.
func (g *Grid) Set(r, c int, l CellLabel) {
	g.cells[r*g.Cols+c] = l
}

// Clone returns a deep, independent copy. Best-seen snapshots rely on this:
// later mutations of the working grid must never reach the snapshot.
func (g *Grid) Clone() *Grid {
	c := &Grid{
		Rows:  g.Rows,
		Cols:  g.Cols,
		cells: make([]CellLabel, len(g.cells)),
	}
	copy(c.cells, g.cells)
	return c
}

// CopyFrom overwrites g's cells with o's. Grids must have equal dimensions.
func (g *Grid) CopyFrom(o *Grid) {
	copy(g.cells, o.cells)
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g.Rows != o.Rows || g.Cols != o.Cols {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// AgentCells returns the positions of all agent-label cells in row-major
// order. Swaps only permute labels among these positions, so the set is
// stable for the whole optimization run.
func (g *Grid) AgentCells() []Pos {
	var out []Pos
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if g.At(r, c).IsAgent() {
				out = append(out, Pos{r, c})
			}
		}
	}
	return out
}

// CountLabels tallies how many cells hold each label.
func (g *Grid) CountLabels() map[CellLabel]int {
	counts := make(map[CellLabel]int, numCellLabels)
	for _, l := range g.cells {
		counts[l]++
	}
	return counts
}
