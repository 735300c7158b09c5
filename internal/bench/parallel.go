package bench

import (
	"runtime"
	"sync"

	"github.com/biodatageeks/iitii/internal/bed"
)

// Overlapper is the query surface shared by both index types.
type Overlapper interface {
	Overlap(qbeg, qend int64, ans *[]*bed.Interval) int
}

// QueryJob holds one query ready for execution.
type QueryJob struct {
	Seq      int
	Beg, End int64
}

// QueryResult holds the outcome of a single query.
type QueryResult struct {
	Seq      int
	Beg, End int64
	Hits     []*bed.Interval
	Cost     int
}

// ParallelOverlap runs jobs against the index using a pool of workers.
// Results arrive on the returned channel in completion order, tagged
// with their job's sequence number. If workers is 0, runtime.NumCPU()
// is used. The index is shared by all workers, which is safe: queries
// are pure reads.
func ParallelOverlap(ix Overlapper, jobs <-chan QueryJob, workers int) <-chan QueryResult {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make(chan QueryResult, 2*workers)

	var wg sync.WaitGroup
	wg.Add(workers)

	for range workers {
		go func() {
			defer wg.Done()
			var ans []*bed.Interval
			for job := range jobs {
				cost := ix.Overlap(job.Beg, job.End, &ans)
				hits := make([]*bed.Interval, len(ans))
				copy(hits, ans)
				results <- QueryResult{
					Seq:  job.Seq,
					Beg:  job.Beg,
					End:  job.End,
					Hits: hits,
					Cost: cost,
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}
