package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/kass/go-school-locator/pkg/directory"
	"github.com/spf13/cobra"
)

// bounds for random query points, roughly the continental USA
type bounds struct {
	minLat, maxLat, minLon, maxLon float64
}

type benchResult struct {
	TotalQueries  int
	Failed        int64
	TotalDuration time.Duration
	AvgDuration   time.Duration
	QueriesPerSec float64
	MinDuration   time.Duration
	MaxDuration   time.Duration
	TotalResults  int64
}

var (
	benchQueries int
	benchWorkers int
	benchBounds  = bounds{minLat: 25.0, maxLat: 49.0, minLon: -125.0, maxLon: -66.0}
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure listing latency against the configured store",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkBenchFlags(benchQueries, benchWorkers); err != nil {
			return err
		}

		ctx := cmd.Context()
		e, err := setup(ctx)
		if err != nil {
			return err
		}
		defer e.store.Close()

		svc := directory.NewService(e.store, e.logger)
		e.logger.Info("running benchmark", "queries", benchQueries, "workers", benchWorkers)

		result := runBenchmark(ctx, svc, benchQueries, benchWorkers, benchBounds)
		printBenchResult(cmd.OutOrStdout(), result, benchWorkers)
		return nil
	},
}

func init() {
	benchCmd.Flags().IntVarP(&benchQueries, "queries", "q", 1000, "Number of listing queries to run")
	benchCmd.Flags().IntVarP(&benchWorkers, "workers", "w", runtime.NumCPU(), "Number of concurrent workers")
	benchCmd.Flags().Float64Var(&benchBounds.minLat, "min-lat", benchBounds.minLat, "Minimum latitude for random queries")
	benchCmd.Flags().Float64Var(&benchBounds.maxLat, "max-lat", benchBounds.maxLat, "Maximum latitude for random queries")
	benchCmd.Flags().Float64Var(&benchBounds.minLon, "min-lon", benchBounds.minLon, "Minimum longitude for random queries")
	benchCmd.Flags().Float64Var(&benchBounds.maxLon, "max-lon", benchBounds.maxLon, "Maximum longitude for random queries")
}

func checkBenchFlags(queries, workers int) error {
	if queries < 0 {
		return fmt.Errorf("--queries must not be negative, got %d", queries)
	}
	if workers < 1 {
		return fmt.Errorf("--workers must be at least 1, got %d", workers)
	}
	return nil
}

// runBenchmark fans numQueries random listings out to a pool of workers
func runBenchmark(ctx context.Context, svc *directory.Service, numQueries, workers int, b bounds) benchResult {
	if workers < 1 {
		workers = 1
	}

	var (
		totalResults atomic.Int64
		failed       atomic.Int64
		minDuration  = time.Duration(1<<63 - 1)
		maxDuration  time.Duration
		sumDuration  time.Duration
		completed    int
		mu           sync.Mutex
	)

	start := time.Now()

	queryCh := make(chan int, numQueries)
	var wg sync.WaitGroup

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			r := rand.New(rand.NewSource(rand.Int63()))

			for range queryCh {
				lat := b.minLat + r.Float64()*(b.maxLat-b.minLat)
				lon := b.minLon + r.Float64()*(b.maxLon-b.minLon)

				queryStart := time.Now()
				listing, err := svc.List(ctx, lat, lon)
				d := time.Since(queryStart)

				if err != nil {
					failed.Add(1)
					continue
				}
				totalResults.Add(int64(listing.Count))

				mu.Lock()
				completed++
				sumDuration += d
				minDuration = min(minDuration, d)
				maxDuration = max(maxDuration, d)
				mu.Unlock()
			}
		}()
	}

	for i := 0; i < numQueries; i++ {
		queryCh <- i
	}
	close(queryCh)

	wg.Wait()
	total := time.Since(start)

	result := benchResult{
		TotalQueries:  numQueries,
		Failed:        failed.Load(),
		TotalDuration: total,
		MaxDuration:   maxDuration,
		TotalResults:  totalResults.Load(),
	}
	if completed > 0 {
		result.AvgDuration = sumDuration / time.Duration(completed)
		result.MinDuration = minDuration
	}
	if total > 0 {
		result.QueriesPerSec = float64(completed) / total.Seconds()
	}
	return result
}

func printBenchResult(w io.Writer, r benchResult, workers int) {
	fmt.Fprintln(w, titleStyle.Render("Benchmark results"))
	rows := []struct {
		label string
		value string
	}{
		{"Total queries", fmt.Sprintf("%d", r.TotalQueries)},
		{"Failed", fmt.Sprintf("%d", r.Failed)},
		{"Total duration", r.TotalDuration.String()},
		{"Average duration", r.AvgDuration.String()},
		{"Min duration", r.MinDuration.String()},
		{"Max duration", r.MaxDuration.String()},
		{"Queries/second", fmt.Sprintf("%.2f", r.QueriesPerSec)},
		{"Schools ranked", fmt.Sprintf("%d", r.TotalResults)},
		{"Workers", fmt.Sprintf("%d", workers)},
	}
	for _, row := range rows {
		fmt.Fprintf(w, "%s %s\n", dimStyle.Render(fmt.Sprintf("%-17s", row.label+":")), statStyle.Render(row.value))
	}
}
