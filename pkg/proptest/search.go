package proptest

import (
	"fmt"
	"runtime"
	"time"
)

// Config controls a fuzz run.
type Config struct {
	Trials     int64 // trials per property (split across workers)
	MaxDigits  int   // maximum digit count of generated operands
	NumWorkers int   // defaults to runtime.NumCPU()
	Verbose    bool
}

// Run checks the full property Catalog under cfg and returns the
// violation table.
func Run(cfg Config) *Table {
	if cfg.NumWorkers <= 0 {
		cfg.NumWorkers = runtime.NumCPU()
	}
	if cfg.MaxDigits <= 0 {
		cfg.MaxDigits = 4
	}
	if cfg.Trials <= 0 {
		cfg.Trials = 10000
	}

	pool := NewWorkerPool(cfg.NumWorkers)
	start := time.Now()

	if cfg.Verbose {
		fmt.Printf("=== Fuzzing %d properties, %d trials each ===\n", len(Catalog), cfg.Trials)
	}
	pool.Run(Catalog, cfg.Trials, cfg.MaxDigits, cfg.Verbose)

	if cfg.Verbose {
		checked, failed := pool.Stats()
		fmt.Printf("Checked %d trials, found %d violations, elapsed %s\n",
			checked, failed, time.Since(start).Round(time.Millisecond))
	}
	return pool.Results
}
