package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// ── Grid rendering ──────────────────────────────────────────────────

// ansiColors maps every label to a foreground color for terminal output.
// Indexed by CellLabel, like glyphs.
var ansiColors = [numCellLabels]string{
	CellEmpty:       "90", // gray
	CellResidential: "32", // green
	CellOffice:      "34", // blue
	CellShop:        "33", // yellow
	CellCafe:        "35", // magenta
	CellTransit:     "36", // cyan
	CellPublic:      "97", // bright white
	CellLandscape:   "92", // bright green
	CellRoad:        "37", // light gray
}

// FormatGrid renders the grid one glyph per cell, space separated, one line
// per row. With color enabled each glyph is wrapped in its label's ANSI code.
func FormatGrid(g *Grid, color bool) string {
	var b strings.Builder
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			label := g.At(r, c)
			if color {
				fmt.Fprintf(&b, "\x1b[%sm%c\x1b[0m", ansiColors[label], label.Glyph())
			} else {
				b.WriteByte(label.Glyph())
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// ── Progress table ──────────────────────────────────────────────────

// Progress rows render as a markdown table so a captured run log pastes
// straight into a report.

func progressTableHeader() string {
	return "| Iteration | Temperature | Current Score | Best Score | Time (ms) |\n" +
		"|-----------|-------------|---------------|------------|-----------|"
}

func formatProgressRow(p Progress) string {
	return fmt.Sprintf("| %9d | %11.2f | %13.2f | %10.2f | %9d |",
		p.Iteration, p.Temperature, p.Current, p.Best, p.Elapsed.Milliseconds())
}

// ── Run summary ─────────────────────────────────────────────────────

// FormatSummary renders the final scores, the proposal count, and wall time.
func FormatSummary(name string, initial, best float64, iterations int, elapsed time.Duration) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %.2f -> %.2f", name, initial, best)
	fmt.Fprintf(&b, " (%s iterations, %s)\n",
		humanize.Comma(int64(iterations)), elapsed.Round(time.Millisecond))
	return b.String()
}

// FormatCensus lists how many cells hold each label, agents first.
func FormatCensus(g *Grid) string {
	counts := g.CountLabels()
	var parts []string
	for _, l := range AgentLabels {
		parts = append(parts, fmt.Sprintf("%s=%d", l.Name(), counts[l]))
	}
	for _, l := range FeatureLabels {
		parts = append(parts, fmt.Sprintf("%s=%d", l.Name(), counts[l]))
	}
	if n := counts[CellEmpty]; n > 0 {
		parts = append(parts, fmt.Sprintf("empty=%d", n))
	}
	return strings.Join(parts, " ")
}
