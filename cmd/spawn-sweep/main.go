package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"
	"time"

	"civgen/internal/app"
	"civgen/internal/world"
	"civgen/internal/worldgen"
)

type paramSet struct {
	seaLevel    float64
	minDistance int
	numStates   int
}

func (p paramSet) String() string {
	return fmt.Sprintf("sea_level=%.2f min_spawn_distance=%d num_states=%d", p.seaLevel, p.minDistance, p.numStates)
}

type scenarioResult struct {
	params    paramSet
	runs      int
	successes int
	attempts  int
	landRatio float64
	failures  []int64
}

func (r scenarioResult) successRate() float64 {
	if r.runs == 0 {
		return 0
	}
	return float64(r.successes) / float64(r.runs)
}

func (r scenarioResult) meanAttempts() float64 {
	if r.runs == 0 {
		return 0
	}
	return float64(r.attempts) / float64(r.runs)
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	seeds := flag.Int("seeds", 16, "session seeds to try per parameter set")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	base, err := cfg.WorldConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	seaLevels := []float64{-0.1, 0, 0.1, 0.25}
	distances := []int{base.Params.MinSpawnDistance / 2, base.Params.MinSpawnDistance, base.Params.MinSpawnDistance * 2}
	stateCounts := []int{base.Params.NumStates, base.Params.NumStates * 2}

	var sets []paramSet
	for _, sea := range seaLevels {
		for _, dist := range distances {
			for _, n := range stateCounts {
				sets = append(sets, paramSet{seaLevel: sea, minDistance: dist, numStates: n})
			}
		}
	}

	fmt.Printf("Sweeping %d parameter sets x %d seeds on %dx%d (%d workers)\n",
		len(sets), *seeds, base.Width, base.Height, *workers)

	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runScenario(base, params, *seeds)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		all = append(all, res)
		if len(res.failures) > 0 {
			fmt.Printf("%s: %d/%d seeds exhausted (first %d)\n", res.params, len(res.failures), res.runs, res.failures[0])
		}
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].successRate() != all[j].successRate() {
			return all[i].successRate() > all[j].successRate()
		}
		return all[i].meanAttempts() < all[j].meanAttempts()
	})

	fmt.Printf("\nResults (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	for _, res := range all {
		fmt.Printf("  success=%5.1f%% attempts=%5.2f land=%4.1f%% %s\n",
			100*res.successRate(), res.meanAttempts(), 100*res.landRatio, res.params)
	}
}

func runScenario(base worldgen.Config, params paramSet, seeds int) scenarioResult {
	cfg := base
	cfg.Params.SeaLevel = params.seaLevel
	cfg.Params.MinSpawnDistance = params.minDistance
	cfg.Params.NumStates = params.numStates

	res := scenarioResult{params: params}
	var land int
	for i := 0; i < seeds; i++ {
		cfg.Seed = base.Seed + int64(i)
		w := world.New(cfg.Width, cfg.Height, nil)
		rep, err := worldgen.New(cfg).Generate(w)
		res.runs++
		res.attempts += rep.Attempts
		land += rep.LandTiles
		switch {
		case err == nil:
			res.successes++
		case errors.Is(err, worldgen.ErrGenerationExhausted):
			res.failures = append(res.failures, cfg.Seed)
		default:
			log.Fatalf("%s seed %d: %v", params, cfg.Seed, err)
		}
	}
	if cells := cfg.Width * cfg.Height * res.runs; cells > 0 {
		res.landRatio = float64(land) / float64(cells)
	}
	return res
}
