package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/tidwall/gjson"
)

// RunResult holds the outcome of one scenario optimization run.
type RunResult struct {
	Name         string   `json:"name"`
	Rows         int      `json:"rows"`
	Cols         int      `json:"cols"`
	InitialScore float64  `json:"initialScore"`
	BestScore    float64  `json:"bestScore"`
	Iterations   int      `json:"iterations"`
	TimeMs       int64    `json:"timeMs"`
	Grid         []string `json:"grid"`
}

// gridRows renders the grid as compact glyph strings, one per row, in the
// same format the scenario layout accepts.
func gridRows(g *Grid) []string {
	rows := make([]string, g.Rows)
	for r := 0; r < g.Rows; r++ {
		row := make([]byte, g.Cols)
		for c := 0; c < g.Cols; c++ {
			row[c] = g.At(r, c).Glyph()
		}
		rows[r] = string(row)
	}
	return rows
}

// runScenario computes the distance fields for the seeded grid and runs the
// annealer to completion. The annealer is constructed before any scoring so
// its precondition checks reject a bad scenario with a sentinel error instead
// of letting the scorer hit a missing preference row.
func runScenario(scen *Scenario, grid *Grid) (RunResult, *Grid, error) {
	fields := BuildDistanceFields(grid)
	ann, err := NewAnnealer(grid, fields, scen.Prefs, scen.Cfg)
	if err != nil {
		return RunResult{}, nil, err
	}
	initial := TotalScore(grid, fields, scen.Prefs)
	if Verbose {
		fmt.Fprintln(os.Stderr, progressTableHeader())
		ann.OnProgress = func(p Progress) {
			fmt.Fprintln(os.Stderr, formatProgressRow(p))
		}
	}

	best, bestGrid, elapsed := ann.Optimize()

	return RunResult{
		Name:         scen.Name,
		Rows:         grid.Rows,
		Cols:         grid.Cols,
		InitialScore: initial,
		BestScore:    best,
		Iterations:   ann.Iterations(),
		TimeMs:       elapsed.Milliseconds(),
		Grid:         gridRows(bestGrid),
	}, bestGrid, nil
}

// Scenario is a parsed planning problem: where the infrastructure sits (or
// how to place it), what agent mix to fill in, how agents value proximity to
// each feature, and the annealing schedule.
type Scenario struct {
	Name         string
	Rows, Cols   int
	Layout       *Grid // nil when features are to be placed randomly
	FeatureShare float64
	Mix          map[CellLabel]float64
	Prefs        PreferenceTable
	Cfg          Config
}

// BuildGrid assembles the initial grid: the fixed layout (or randomly placed
// features) plus agents filled into every empty cell per the mix.
func (s *Scenario) BuildGrid(rng *rand.Rand) *Grid {
	var g *Grid
	if s.Layout != nil {
		g = s.Layout.Clone()
	} else {
		g = NewGrid(s.Rows, s.Cols)
		PlaceRandomFeatures(g, s.FeatureShare, rng)
	}
	FillAgents(g, s.Mix, rng)
	return g
}

// LoadScenario reads and parses a scenario JSON file.
func LoadScenario(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return parseScenario(string(raw))
}

func parseScenario(doc string) (*Scenario, error) {
	if !gjson.Valid(doc) {
		return nil, fmt.Errorf("scenario: invalid JSON")
	}
	root := gjson.Parse(doc)

	s := &Scenario{
		Name: "scenario",
		Mix:  make(map[CellLabel]float64),
		Cfg:  DefaultConfig(),
	}
	if v := root.Get("name"); v.Exists() {
		s.Name = v.String()
	}
	s.Rows = int(root.Get("rows").Int())
	s.Cols = int(root.Get("cols").Int())
	s.FeatureShare = root.Get("featureShare").Float()
	if s.FeatureShare < 0 || s.FeatureShare > 1 {
		return nil, fmt.Errorf("scenario: featureShare %v out of range [0, 1]", s.FeatureShare)
	}

	if layout := root.Get("layout"); layout.Exists() {
		g, err := parseLayout(layout)
		if err != nil {
			return nil, err
		}
		if (s.Rows != 0 && s.Rows != g.Rows) || (s.Cols != 0 && s.Cols != g.Cols) {
			return nil, fmt.Errorf("scenario: layout is %dx%d but rows/cols say %dx%d",
				g.Rows, g.Cols, s.Rows, s.Cols)
		}
		s.Layout = g
		s.Rows, s.Cols = g.Rows, g.Cols
	} else if s.Rows <= 0 || s.Cols <= 0 {
		return nil, fmt.Errorf("scenario: rows and cols are required without a layout")
	}

	var err error
	root.Get("mix").ForEach(func(k, v gjson.Result) bool {
		label, ok := parseAgentName(k.String())
		if !ok {
			err = fmt.Errorf("scenario: unknown agent %q in mix", k.String())
			return false
		}
		s.Mix[label] = v.Float()
		return true
	})
	if err != nil {
		return nil, err
	}

	prefs := root.Get("preferences")
	if !prefs.Exists() {
		return nil, fmt.Errorf("scenario: preferences are required")
	}
	s.Prefs, err = parsePreferences(prefs)
	if err != nil {
		return nil, err
	}

	if ann := root.Get("annealing"); ann.Exists() {
		if v := ann.Get("initialTemp"); v.Exists() {
			s.Cfg.InitialTemp = v.Float()
		}
		if v := ann.Get("minTemp"); v.Exists() {
			s.Cfg.MinTemp = v.Float()
		}
		if v := ann.Get("coolingRate"); v.Exists() {
			s.Cfg.CoolingRate = v.Float()
		}
	}
	s.Cfg.Seed = root.Get("seed").Int()
	if v := root.Get("logEvery"); v.Exists() {
		s.Cfg.LogEvery = int(v.Int())
	}

	return s, nil
}

// parseLayout turns an array of glyph rows into a grid. Spaces are cosmetic
// and stripped; every remaining character must be a known glyph. Rows must
// all have the same width.
func parseLayout(layout gjson.Result) (*Grid, error) {
	var rows []string
	layout.ForEach(func(_, v gjson.Result) bool {
		rows = append(rows, strings.ReplaceAll(v.String(), " ", ""))
		return true
	})
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("scenario: layout must have at least one row and one column")
	}
	width := len(rows[0])
	g := NewGrid(len(rows), width)
	for r, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("scenario: layout row %d has %d cells, want %d", r, len(row), width)
		}
		for c := 0; c < width; c++ {
			label, ok := parseGlyph(row[c])
			if !ok {
				return nil, fmt.Errorf("scenario: unknown glyph %q at layout row %d col %d", row[c], r, c)
			}
			g.Set(r, c, label)
		}
	}
	return g, nil
}

// parsePreferences builds the weight rows, aligned to FeatureLabels order.
// Unknown agent or feature names are load errors; a feature omitted from an
// agent's block gets weight 0.
func parsePreferences(prefs gjson.Result) (PreferenceTable, error) {
	table := make(PreferenceTable)
	var err error
	prefs.ForEach(func(k, v gjson.Result) bool {
		agent, ok := parseAgentName(k.String())
		if !ok {
			err = fmt.Errorf("scenario: unknown agent %q in preferences", k.String())
			return false
		}
		row := make([]float64, len(FeatureLabels))
		v.ForEach(func(fk, fv gjson.Result) bool {
			feature, fok := parseFeatureName(fk.String())
			if !fok {
				err = fmt.Errorf("scenario: unknown feature %q in preferences of %q", fk.String(), k.String())
				return false
			}
			for i, l := range FeatureLabels {
				if l == feature {
					row[i] = fv.Float()
					break
				}
			}
			return true
		})
		if err != nil {
			return false
		}
		table[agent] = row
		return true
	})
	if err != nil {
		return nil, err
	}
	if len(table) == 0 {
		return nil, fmt.Errorf("scenario: preferences are empty")
	}
	return table, nil
}
