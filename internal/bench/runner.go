package bench

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Summary aggregates a query load's outcome on one index.
type Summary struct {
	Queries   int
	TotalHits int64
	TotalCost int64
	Elapsed   time.Duration
}

// MeanCost is the average per-query cost metric.
func (s Summary) MeanCost() float64 {
	if s.Queries == 0 {
		return 0
	}
	return float64(s.TotalCost) / float64(s.Queries)
}

// Run executes the query load against the index with the given worker
// count and returns aggregate statistics. When verify is non-nil it is
// called with each query's results, in query order.
func Run(ix Overlapper, queries [][2]int64, workers int, verify func(QueryResult) error, logger *zap.Logger) (Summary, error) {
	jobs := make(chan QueryJob, len(queries))
	for i, q := range queries {
		jobs <- QueryJob{Seq: i, Beg: q[0], End: q[1]}
	}
	close(jobs)

	// The query count is fixed up front, so no streaming reorder is
	// needed: each result lands in its sequence-numbered slot and the
	// walk below visits the slots in query order.
	start := time.Now()
	ordered := make([]QueryResult, len(queries))
	for r := range ParallelOverlap(ix, jobs, workers) {
		ordered[r.Seq] = r
	}
	elapsed := time.Since(start)

	var s Summary
	for _, r := range ordered {
		s.Queries++
		s.TotalHits += int64(len(r.Hits))
		s.TotalCost += int64(r.Cost)
		if verify != nil {
			if err := verify(r); err != nil {
				return s, fmt.Errorf("query %d [%d,%d): %w", r.Seq, r.Beg, r.End, err)
			}
		}
	}
	s.Elapsed = elapsed

	logger.Debug("query load complete",
		zap.Int("queries", s.Queries),
		zap.Int64("hits", s.TotalHits),
		zap.Float64("meanCost", s.MeanCost()),
		zap.Duration("elapsed", s.Elapsed))

	return s, nil
}
