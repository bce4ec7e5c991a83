package main

// Scoring: each agent cell earns the sum over feature labels of
// weight / distance. Inverse distance models diminishing influence; negative
// weights encode aversion. Terms with distance 0 (co-located) or Unreachable
// (feature absent) are excluded rather than blowing up to ±Inf.

// cellScore returns the local score a given agent label would earn at (r, c).
// Non-agent labels score 0. Pure function of its inputs.
func cellScore(label CellLabel, r, c int, fields map[CellLabel]*DistanceField, prefs PreferenceTable) float64 {
	if !label.IsAgent() {
		return 0
	}
	weights := prefs[label]
	score := 0.0
	for k, feature := range FeatureLabels {
		d := fields[feature].At(r, c)
		if d > 0 && d != Unreachable {
			score += weights[k] / d
		}
	}
	return score
}

// TotalScore sums the local scores of all agent cells on the grid. Empty and
// fixed-feature cells contribute nothing. O(rows·cols·features).
func TotalScore(g *Grid, fields map[CellLabel]*DistanceField, prefs PreferenceTable) float64 {
	total := 0.0
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			total += cellScore(g.At(r, c), r, c, fields, prefs)
		}
	}
	return total
}
