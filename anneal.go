package main

import (
	"math"
	"math/rand"
	"time"
)

// ── Annealer ────────────────────────────────────────────────────────

// Annealer searches for a high-scoring agent arrangement by simulated
// annealing: propose a swap of two agent cells, accept by the Metropolis
// criterion, cool, repeat until the temperature floor. Single-threaded; the
// working grid is owned exclusively by the Annealer for the whole run.
type Annealer struct {
	grid   *Grid
	fields map[CellLabel]*DistanceField
	prefs  PreferenceTable
	cfg    Config
	rng    *rand.Rand

	// agentCells is the static set of swappable positions. Swaps permute
	// labels among these positions and fixed cells never move, so it is
	// computed once at construction.
	agentCells []Pos

	current  float64
	best     float64
	bestGrid *Grid
	iter     int

	// OnProgress, if non-nil, receives a telemetry snapshot every
	// cfg.LogEvery iterations. Purely observational.
	OnProgress func(Progress)
}

// Progress is the periodic optimizer state handed to the progress hook.
type Progress struct {
	Iteration   int
	Temperature float64
	Current     float64
	Best        float64
	Elapsed     time.Duration
}

// defaultRNGSeed replaces Config.Seed == 0 so unseeded runs stay
// deterministic. Arbitrary but stable.
const defaultRNGSeed int64 = 1

func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// NewAnnealer validates the configuration and preconditions and takes
// ownership of grid. The distance fields and preference table are read-only
// shared inputs. Fails fast on a degenerate swap pool (< 2 agent cells, which
// would otherwise loop forever) and on missing or short preference rows.
func NewAnnealer(grid *Grid, fields map[CellLabel]*DistanceField, prefs PreferenceTable, cfg Config) (*Annealer, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if err := prefs.Validate(grid); err != nil {
		return nil, err
	}
	agents := grid.AgentCells()
	if len(agents) < 2 {
		return nil, ErrInsufficientAgents
	}
	return &Annealer{
		grid:       grid,
		fields:     fields,
		prefs:      prefs,
		cfg:        cfg,
		rng:        rngFromSeed(cfg.Seed),
		agentCells: agents,
	}, nil
}

// ── Move proposal ───────────────────────────────────────────────────

// pickPair draws two distinct agent positions uniformly. Self-swaps are a
// wasted iteration (delta is always 0), so the second index is drawn from the
// remaining n−1 positions.
func (a *Annealer) pickPair() (Pos, Pos) {
	n := len(a.agentCells)
	i := a.rng.Intn(n)
	j := a.rng.Intn(n - 1)
	if j >= i {
		j++
	}
	return a.agentCells[i], a.agentCells[j]
}

// swapDelta returns the score change from swapping the labels at p1 and p2.
// Distance fields never change under agent moves, so only the four affected
// (position, label) local scores matter.
func (a *Annealer) swapDelta(p1, p2 Pos) float64 {
	l1 := a.grid.At(p1.Row, p1.Col)
	l2 := a.grid.At(p2.Row, p2.Col)
	if l1 == l2 {
		return 0
	}
	return cellScore(l2, p1.Row, p1.Col, a.fields, a.prefs) +
		cellScore(l1, p2.Row, p2.Col, a.fields, a.prefs) -
		cellScore(l1, p1.Row, p1.Col, a.fields, a.prefs) -
		cellScore(l2, p2.Row, p2.Col, a.fields, a.prefs)
}

func (a *Annealer) swap(p1, p2 Pos) {
	l1 := a.grid.At(p1.Row, p1.Col)
	a.grid.Set(p1.Row, p1.Col, a.grid.At(p2.Row, p2.Col))
	a.grid.Set(p2.Row, p2.Col, l1)
}

// ── Main loop ───────────────────────────────────────────────────────

// Optimize runs the cooling schedule to completion and returns the best score
// found, the best grid (a snapshot, also copied back into the working grid),
// and the elapsed wall time. The iteration count is fully determined by the
// schedule: ≈ ln(MinTemp/InitialTemp) / ln(1−CoolingRate).
func (a *Annealer) Optimize() (float64, *Grid, time.Duration) {
	start := time.Now()

	a.current = TotalScore(a.grid, a.fields, a.prefs)
	a.best = a.current
	a.bestGrid = a.grid.Clone()
	a.iter = 0

	temp := a.cfg.InitialTemp
	for temp > a.cfg.MinTemp {
		p1, p2 := a.pickPair()
		delta := a.swapDelta(p1, p2)

		// Metropolis criterion: always take improvements; take a worsening
		// move with probability exp(delta/T), which decays toward greedy
		// hill-climbing as T falls.
		if delta > 0 || a.rng.Float64() < math.Exp(delta/temp) {
			a.swap(p1, p2)
			a.current += delta
			if a.current > a.best {
				a.best = a.current
				a.bestGrid.CopyFrom(a.grid)
			}
		}

		if a.OnProgress != nil && a.cfg.LogEvery > 0 && a.iter%a.cfg.LogEvery == 0 {
			a.OnProgress(Progress{
				Iteration:   a.iter,
				Temperature: temp,
				Current:     a.current,
				Best:        a.best,
				Elapsed:     time.Since(start),
			})
		}

		a.iter++
		temp *= 1 - a.cfg.CoolingRate
	}

	// The final-temperature grid may be worse than the best seen; leave the
	// working grid holding the best configuration.
	a.grid.CopyFrom(a.bestGrid)
	return a.best, a.bestGrid.Clone(), time.Since(start)
}

// Iterations returns how many proposals the last Optimize run evaluated.
func (a *Annealer) Iterations() int {
	return a.iter
}
