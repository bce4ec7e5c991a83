//go:build !lambda

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
)

const usage = `Usage: landuse-optimizer [flags] <scenario.json>

Positional arguments:
  scenario.json   Planning scenario: layout (or random placement), agent mix,
                  preference weights, and the annealing schedule

Flags:
`

func main() {
	jsonOut := flag.Bool("json", false, "Output the result as JSON")
	verbose := flag.Bool("verbose", false, "Print the progress table to stderr")
	seed := flag.Int64("seed", 0, "Override the scenario's random seed")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	Verbose = *verbose

	scen, err := LoadScenario(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if *seed != 0 {
		scen.Cfg.Seed = *seed
	}

	color := !*jsonOut && isatty.IsTerminal(os.Stdout.Fd())

	grid := scen.BuildGrid(rngFromSeed(scen.Cfg.Seed))
	if !*jsonOut {
		fmt.Printf("Initial grid (%s):\n", FormatCensus(grid))
		fmt.Print(FormatGrid(grid, color))
	}

	result, bestGrid, err := runScenario(scen, grid)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(result)
		return
	}

	fmt.Println("\nOptimized grid:")
	fmt.Print(FormatGrid(bestGrid, color))
	fmt.Print(FormatSummary(result.Name, result.InitialScore, result.BestScore,
		result.Iterations, time.Duration(result.TimeMs)*time.Millisecond))
}
