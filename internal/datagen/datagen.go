// Package datagen implements the bounded-concurrency dataset driver (C7): for
// each seed in a range it generates a board, runs the solver, verifies the
// result, and appends one JSONL record to the output file. Concurrency is
// bounded by a semaphore the way the teacher's level validator bounds its
// solvability checks, but writes go through a single channel-fed writer so
// the output file is bit-identical regardless of worker scheduling.
package datagen

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/eng618/fifteentrace/internal/common"
	"github.com/eng618/fifteentrace/internal/generate"
	"github.com/eng618/fifteentrace/internal/solver"
	"github.com/eng618/fifteentrace/internal/trace"
	"github.com/eng618/fifteentrace/internal/ui"
	"github.com/eng618/fifteentrace/internal/verify"
)

// Config controls one dataset generation run.
type Config struct {
	StartSeed    int64
	Count        int
	ReverseRate  float64
	ReverseSteps int
	Workers      int
	OutputPath   string
	Overwrite    bool
	ShowProgress bool
}

// result pairs a seed with its rendered JSONL line, so the writer can emit
// lines back in seed order even though workers finish out of order.
type result struct {
	seed int64
	line string
	err  error
}

// Run generates Config.Count records starting at Config.StartSeed, verifying
// each one before it is written. A record that fails verification aborts the
// whole run via common.Fatal — the solver's 17-step plan is total over
// solvable boards (spec.md §7), so a verification failure means the plan
// itself is broken, not that this particular seed is unusual.
func Run(cfg Config) error {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	flags := os.O_CREATE | os.O_WRONLY
	if cfg.Overwrite {
		flags |= os.O_TRUNC
	} else {
		flags |= os.O_APPEND
	}
	f, err := os.OpenFile(cfg.OutputPath, flags, 0o644)
	if err != nil {
		return fmt.Errorf("datagen: open output: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	defer w.Flush()

	var sp *ui.Spinner
	if cfg.ShowProgress {
		sp = ui.NewSpinner(fmt.Sprintf("generating %d puzzles", cfg.Count))
		sp.Start()
		defer sp.Stop()
	}

	seeds := make([]int64, cfg.Count)
	for i := range seeds {
		seeds[i] = cfg.StartSeed + int64(i)
	}

	resultsCh := make(chan result, cfg.Count)
	sem := make(chan struct{}, cfg.Workers)
	var inFlight sync.WaitGroup

	for _, seed := range seeds {
		seed := seed
		inFlight.Add(1)
		go func() {
			defer inFlight.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			resultsCh <- generateOne(seed, cfg)
		}()
	}

	go func() {
		inFlight.Wait()
		close(resultsCh)
	}()

	done := 0
	collected := make(map[int64]result, cfg.Count)
	for r := range resultsCh {
		if r.err != nil {
			common.Fatal("datagen: seed %d failed: %v", r.seed, r.err)
		}
		collected[r.seed] = r
		done++
		if sp != nil {
			sp.UpdateProgress(done, cfg.Count)
		}
	}

	// Writes happen in a fixed pass over seeds, not the order workers
	// finished in, so the output file doesn't depend on goroutine scheduling.
	orderedSeeds := make([]int64, 0, len(collected))
	for s := range collected {
		orderedSeeds = append(orderedSeeds, s)
	}
	sort.Slice(orderedSeeds, func(i, j int) bool { return orderedSeeds[i] < orderedSeeds[j] })

	for _, s := range orderedSeeds {
		if _, err := w.WriteString(collected[s].line + "\n"); err != nil {
			return fmt.Errorf("datagen: write: %w", err)
		}
	}

	return nil
}

func generateOne(seed int64, cfg Config) result {
	b := generate.Generate(seed, cfg.ReverseRate, cfg.ReverseSteps)
	initial := b.Clone()

	// Echo each solve's trace to the console only in verbose, single-worker
	// runs: concurrent goroutines sharing stdout would interleave their
	// output, and the dataset file itself must stay bit-identical regardless
	// of worker count either way (spec.md §4.7), so echoing never touches
	// what gets written.
	echo := common.VerboseEnabled && cfg.Workers <= 1
	logger := trace.NewLogger(echo)
	moves, err := solver.Solve(b, logger)
	if err != nil {
		return result{seed: seed, err: fmt.Errorf("solve: %w", err)}
	}

	if !verify.IsSolutionDirections(initial, moves) {
		return result{seed: seed, err: fmt.Errorf("verification failed for seed %d", seed)}
	}

	line, err := logger.JSONLine()
	if err != nil {
		return result{seed: seed, err: fmt.Errorf("encode: %w", err)}
	}

	return result{seed: seed, line: line}
}
