package qreg

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/theapemachine/errnie"
	"golang.org/x/exp/rand"
)

/*
Circuit prepares and measures a fresh register. RunShots calls it once per
shot with a new State.
*/
type Circuit func(s *State) ([]Measurement, error)

// Histogram counts outcomes by bitstring, qubit 0 first.
type Histogram map[string]int

func (h Histogram) Total() int {
	total := 0
	for _, n := range h {
		total += n
	}
	return total
}

// Probability returns the observed frequency of key.
func (h Histogram) Probability(key string) float64 {
	total := h.Total()
	if total == 0 {
		return 0
	}
	return float64(h[key]) / float64(total)
}

// Keys returns the observed bitstrings in lexical order.
func (h Histogram) Keys() []string {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

type shotResult struct {
	shot     int
	outcomes []Measurement
	err      error
}

/*
RunShots runs circuit shots times, each on its own State, spread over the
configured number of workers. Shot i measures with a source seeded from
Seed+i, so a given seed gives the same histogram whatever the worker count.
Config.Source is ignored; a rand.Source is not safe to share between workers.
The first failing shot cancels the run and its error is returned.
*/
func RunShots(ctx context.Context, shots int, circuit Circuit, options ...Option) (Histogram, error) {
	if shots < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidShots, shots)
	}

	config := buildConfig(options)
	if config.Metrics == nil {
		config.Metrics = NewMetrics()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	workers := config.Workers
	if workers > shots {
		workers = shots
	}

	errnie.Info("RunShots - shots %d, workers %d, seed %d", shots, workers, config.Seed)
	startTime := time.Now()

	jobs := make(chan int, workers)
	results := make(chan shotResult, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for shot := range jobs {
				outcomes, err := runShot(circuit, config, shot)
				select {
				case results <- shotResult{shot: shot, outcomes: outcomes, err: err}:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for shot := 0; shot < shots; shot++ {
			select {
			case jobs <- shot:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	histogram := make(Histogram)
	received := 0
	var firstErr error

	for result := range results {
		if result.err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("shot %d: %w", result.shot, result.err)
				cancel()
			}
			continue
		}
		if firstErr == nil {
			histogram[Bitstring(result.outcomes)]++
			received++
		}
	}

	if firstErr != nil {
		return nil, firstErr
	}
	if received < shots {
		return nil, fmt.Errorf("shots interrupted after %d of %d: %w", received, shots, ctx.Err())
	}

	errnie.Info("RunShots - completed %d shots in %v", shots, time.Since(startTime))
	return histogram, nil
}

func runShot(circuit Circuit, config *Config, shot int) ([]Measurement, error) {
	state := NewState(
		WithSource(rand.NewSource(config.Seed+uint64(shot))),
		WithInitialValue(config.InitialValue),
		WithNormTolerance(config.NormTolerance),
		WithMetrics(config.Metrics),
	)
	return circuit(state)
}
