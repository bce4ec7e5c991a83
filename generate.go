package main

import "math/rand"

// Grid seeding. Two strategies, matching the two front ends: a caller-supplied
// fixed layout (infrastructure already placed) or random feature placement.
// Both finish by filling the remaining empty cells with agents drawn from the
// mix percentages.

// defaultFeatureShare is the fraction of cells given to infrastructure when
// placing features randomly, split evenly across FeatureLabels.
const defaultFeatureShare = 0.2

// PlaceRandomFeatures scatters fixed-feature cells over empty positions.
// share is the target fraction of the whole grid; each feature label gets an
// equal cut. Cells already occupied are never overwritten, and placement stops
// once the grid runs out of empty cells, so an oversized share cannot make the
// rejection loop spin forever.
func PlaceRandomFeatures(g *Grid, share float64, rng *rand.Rand) {
	if share <= 0 {
		share = defaultFeatureShare
	}
	empty := g.CountLabels()[CellEmpty]
	perLabel := int(float64(g.Rows*g.Cols) * share / float64(len(FeatureLabels)))
	for _, label := range FeatureLabels {
		placed := 0
		for placed < perLabel && empty > 0 {
			r := rng.Intn(g.Rows)
			c := rng.Intn(g.Cols)
			if g.At(r, c) != CellEmpty {
				continue
			}
			g.Set(r, c, label)
			placed++
			empty--
		}
	}
}

// FillAgents populates every empty cell with an agent label. Each agent gets
// int(pct × available) cells; rounding remainders are topped up with agents
// drawn uniformly. The pool is shuffled and assigned to empty cells in
// row-major order. Percentage sums are taken as-is, not validated.
func FillAgents(g *Grid, mix map[CellLabel]float64, rng *rand.Rand) {
	var empty []Pos
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if g.At(r, c) == CellEmpty {
				empty = append(empty, Pos{r, c})
			}
		}
	}

	available := len(empty)
	pool := make([]CellLabel, 0, available)
	for _, label := range AgentLabels {
		count := int(mix[label] * float64(available))
		for i := 0; i < count && len(pool) < available; i++ {
			pool = append(pool, label)
		}
	}
	for len(pool) < available {
		pool = append(pool, AgentLabels[rng.Intn(len(AgentLabels))])
	}

	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	for i, p := range empty {
		g.Set(p.Row, p.Col, pool[i])
	}
}
