package main

// Config holds the annealing schedule and run parameters.
type Config struct {
	// InitialTemp is T0, the starting temperature. Must be > 0.
	InitialTemp float64
	// MinTemp is the stop threshold; the run ends once T ≤ MinTemp.
	// Must satisfy 0 < MinTemp < InitialTemp.
	MinTemp float64
	// CoolingRate r is applied multiplicatively each iteration: T ← T(1−r).
	// Must satisfy 0 < r < 1.
	CoolingRate float64
	// Seed feeds the run's random source. 0 selects a fixed default seed so
	// unseeded runs are still reproducible.
	Seed int64
	// LogEvery is the progress-hook interval in iterations; 0 disables
	// progress reporting.
	LogEvery int
}

// DefaultConfig returns a schedule that works well for planning-sized grids.
func DefaultConfig() Config {
	return Config{
		InitialTemp: 1000,
		MinTemp:     1,
		CoolingRate: 0.003,
		LogEvery:    100,
	}
}

func (c Config) validate() error {
	if c.InitialTemp <= 0 || c.MinTemp <= 0 || c.MinTemp >= c.InitialTemp {
		return ErrBadSchedule
	}
	if c.CoolingRate <= 0 || c.CoolingRate >= 1 {
		return ErrBadSchedule
	}
	return nil
}

// Verbose controls whether detailed search progress is printed to stderr.
var Verbose bool
