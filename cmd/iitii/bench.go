package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/biodatageeks/iitii"
	"github.com/biodatageeks/iitii/internal/bed"
	"github.com/biodatageeks/iitii/internal/bench"
	"github.com/biodatageeks/iitii/internal/benchstore"
)

type benchOptions struct {
	items     int
	queries   int
	domains   int
	workers   int
	space     int64
	maxLen    int64
	clustered bool
	seed      int64
	verify    bool
	storePath string
	label     string
}

func newBenchCmd() *cobra.Command {
	var opts benchOptions

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark the plain and interpolated indexes on synthetic data",
		Long: `Generate a synthetic interval set, run the same query load through the
plain implicit interval tree and the interpolated index, and report the
mean per-query cost (tree nodes visited, plus weighted climb steps for
the interpolated index).`,
		Example: `  iitii bench --items 1000000 --queries 10000
  iitii bench --clustered --domains 16 --verify
  iitii bench --store runs.duckdb --label nightly`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(opts)
		},
	}

	cmd.Flags().IntVar(&opts.items, "items", 100000, "Number of intervals to index")
	cmd.Flags().IntVar(&opts.queries, "queries", 1000, "Number of queries to run")
	cmd.Flags().IntVar(&opts.domains, "domains", viper.GetInt("bench.domains"), "Interpolation model domains")
	cmd.Flags().IntVar(&opts.workers, "workers", viper.GetInt("bench.workers"), "Query workers (0 = NumCPU)")
	cmd.Flags().Int64Var(&opts.space, "space", 100000000, "Coordinate space upper bound")
	cmd.Flags().Int64Var(&opts.maxLen, "max-len", 10000, "Maximum interval length")
	cmd.Flags().BoolVar(&opts.clustered, "clustered", false, "Generate a clustered dataset instead of uniform")
	cmd.Flags().Int64Var(&opts.seed, "seed", 1, "Random seed")
	cmd.Flags().BoolVar(&opts.verify, "verify", false, "Check every query against a linear scan (slow)")
	cmd.Flags().StringVar(&opts.storePath, "store", "", "DuckDB file to append results to")
	cmd.Flags().StringVar(&opts.label, "label", "", "Label recorded with stored results")

	return cmd
}

func runBench(opts benchOptions) error {
	rng := rand.New(rand.NewSource(opts.seed))

	var ivs []bed.Interval
	if opts.clustered {
		ivs = bench.Clustered(rng, opts.items, opts.space/1000+1, 10, opts.space)
	} else {
		ivs = bench.Uniform(rng, opts.items, opts.space, opts.maxLen)
	}
	queries := bench.Queries(rng, opts.queries, opts.space, opts.maxLen)

	logger.Info("dataset generated",
		zap.Int("items", len(ivs)),
		zap.Int("queries", len(queries)),
		zap.Bool("clustered", opts.clustered))

	begFn := func(iv bed.Interval) int64 { return iv.Start }
	endFn := func(iv bed.Interval) int64 { return iv.End }

	start := time.Now()
	tb := iitii.NewBuilder[int64](begFn, endFn)
	for _, iv := range ivs {
		tb.Add(iv)
	}
	tree := tb.Build()
	treeBuild := time.Since(start)

	start = time.Now()
	ib := iitii.NewBuilder[int64](begFn, endFn)
	ib.SetLogger(logger)
	for _, iv := range ivs {
		ib.Add(iv)
	}
	ix := ib.BuildInterpolated(opts.domains)
	ixBuild := time.Since(start)

	logger.Info("indexes built",
		zap.Duration("iitBuild", treeBuild),
		zap.Duration("iitiiBuild", ixBuild))

	var verify func(bench.QueryResult) error
	if opts.verify {
		verify = func(r bench.QueryResult) error {
			want := bench.Naive(ivs, r.Beg, r.End)
			got := bench.Canon(r.Hits)
			if len(want) != len(got) {
				return fmt.Errorf("expected %d hits, got %d", len(want), len(got))
			}
			for i := range want {
				if want[i] != got[i] {
					return fmt.Errorf("hit %d: expected %v, got %v", i, want[i], got[i])
				}
			}
			return nil
		}
	}

	treeSum, err := bench.Run(tree, queries, opts.workers, verify, logger)
	if err != nil {
		return fmt.Errorf("iit query load: %w", err)
	}
	ixSum, err := bench.Run(ix, queries, opts.workers, verify, logger)
	if err != nil {
		return fmt.Errorf("iitii query load: %w", err)
	}

	fmt.Printf("items=%d queries=%d domains=%d seed=%d\n",
		len(ivs), len(queries), opts.domains, opts.seed)
	fmt.Printf("%-8s %12s %12s %14s\n", "index", "mean cost", "hits", "elapsed")
	fmt.Printf("%-8s %12.2f %12d %14s\n", "iit", treeSum.MeanCost(), treeSum.TotalHits, treeSum.Elapsed)
	fmt.Printf("%-8s %12.2f %12d %14s\n", "iitii", ixSum.MeanCost(), ixSum.TotalHits, ixSum.Elapsed)
	fmt.Printf("iitii climb: predicted=%d totalClimb=%d\n", ix.Queries(), ix.TotalClimbCost())

	if opts.storePath == "" {
		return nil
	}

	store, err := benchstore.Open(opts.storePath)
	if err != nil {
		return fmt.Errorf("open bench store: %w", err)
	}
	defer store.Close()

	now := time.Now()
	for _, r := range []benchstore.Run{
		{
			RunAt: now, Label: opts.label, IndexType: "iit",
			Items: int64(len(ivs)), Queries: int64(treeSum.Queries),
			MeanCost:  treeSum.MeanCost(),
			ElapsedMS: float64(treeSum.Elapsed.Microseconds()) / 1000,
		},
		{
			RunAt: now, Label: opts.label, IndexType: "iitii",
			Items: int64(len(ivs)), Queries: int64(ixSum.Queries),
			Domains: opts.domains, MeanCost: ixSum.MeanCost(),
			TotalClimb: int64(ix.TotalClimbCost()),
			ElapsedMS:  float64(ixSum.Elapsed.Microseconds()) / 1000,
		},
	} {
		if err := store.Append(r); err != nil {
			return fmt.Errorf("store bench run: %w", err)
		}
	}
	logger.Info("results stored", zap.String("path", opts.storePath), zap.String("label", opts.label))

	return nil
}
