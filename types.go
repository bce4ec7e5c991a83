package main

import (
	"errors"
	"fmt"
)

// CellLabel identifies what occupies a single grid cell.
type CellLabel int

const (
	CellEmpty CellLabel = iota
	// Agent labels: relocatable during optimization.
	CellResidential
	CellOffice
	CellShop
	CellCafe
	// Fixed-feature labels: infrastructure, never moved.
	CellTransit
	CellPublic
	CellLandscape
	CellRoad

	numCellLabels
)

// FeatureLabels is the shared ordering of fixed-feature labels.
// Every preference row is aligned to this ordering.
var FeatureLabels = []CellLabel{CellTransit, CellPublic, CellLandscape, CellRoad}

// AgentLabels are the categories the optimizer is free to relocate.
var AgentLabels = []CellLabel{CellResidential, CellOffice, CellShop, CellCafe}

// IsAgent reports whether c is a relocatable agent label.
func (c CellLabel) IsAgent() bool {
	return c >= CellResidential && c <= CellCafe
}

// IsFeature reports whether c is a fixed infrastructure label.
func (c CellLabel) IsFeature() bool {
	return c >= CellTransit && c <= CellRoad
}

// glyphs is the total label→glyph mapping used for rendering and layout input.
// Indexed by CellLabel; keep in sync with the label constants above.
var glyphs = [numCellLabels]byte{
	CellEmpty:       '.',
	CellResidential: 'R',
	CellOffice:      'O',
	CellShop:        'S',
	CellCafe:        'C',
	CellTransit:     'T',
	CellPublic:      'P',
	CellLandscape:   'L',
	CellRoad:        'D',
}

// Glyph returns the single-character console representation of c.
func (c CellLabel) Glyph() byte {
	return glyphs[c]
}

// parseGlyph maps a layout character back to its label.
func parseGlyph(b byte) (CellLabel, bool) {
	for l := CellLabel(0); l < numCellLabels; l++ {
		if glyphs[l] == b {
			return l, true
		}
	}
	return CellEmpty, false
}

// labelNames is the total label→name mapping used in scenario JSON.
var labelNames = [numCellLabels]string{
	CellEmpty:       "empty",
	CellResidential: "residential",
	CellOffice:      "office",
	CellShop:        "shop",
	CellCafe:        "cafe",
	CellTransit:     "transit",
	CellPublic:      "public",
	CellLandscape:   "landscape",
	CellRoad:        "road",
}

// Name returns the scenario-file name of c.
func (c CellLabel) Name() string {
	return labelNames[c]
}

func parseAgentName(s string) (CellLabel, bool) {
	for _, l := range AgentLabels {
		if labelNames[l] == s {
			return l, true
		}
	}
	return CellEmpty, false
}

func parseFeatureName(s string) (CellLabel, bool) {
	for _, l := range FeatureLabels {
		if labelNames[l] == s {
			return l, true
		}
	}
	return CellEmpty, false
}

// Pos addresses one grid cell.
type Pos struct {
	Row, Col int
}

// PreferenceTable maps each agent label to its preference weights, one weight
// per entry of FeatureLabels, in that order. Weights may be negative
// (aversion). Immutable after configuration.
type PreferenceTable map[CellLabel][]float64

var (
	// ErrInsufficientAgents means the grid holds fewer than two agent cells,
	// leaving the annealer nothing to swap.
	ErrInsufficientAgents = errors.New("insufficient agent cells for optimization")
	// ErrMissingPreference means an agent label present on the grid has no
	// preference row.
	ErrMissingPreference = errors.New("agent label missing from preference table")
	// ErrPreferenceLength means a preference row length does not match the
	// number of fixed-feature labels.
	ErrPreferenceLength = errors.New("preference row length does not match feature count")
	// ErrBadSchedule means the annealing parameters violate
	// 0 < Tmin < T0, 0 < rate < 1.
	ErrBadSchedule = errors.New("annealing schedule parameters out of range")
)

// Validate checks that every agent label appearing on the grid has a
// preference row of the right length. Called at configuration time so a bad
// table fails fast instead of mid-run.
func (p PreferenceTable) Validate(g *Grid) error {
	var seen [numCellLabels]bool
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			seen[g.At(r, c)] = true
		}
	}
	for _, l := range AgentLabels {
		if !seen[l] {
			continue
		}
		row, ok := p[l]
		if !ok {
			return fmt.Errorf("%w: %s", ErrMissingPreference, l.Name())
		}
		if len(row) != len(FeatureLabels) {
			return fmt.Errorf("%w: %s has %d weights, want %d",
				ErrPreferenceLength, l.Name(), len(row), len(FeatureLabels))
		}
	}
	return nil
}
