// Package bench provides synthetic interval datasets, a linear-scan
// reference, and a parallel query harness for exercising the index.
package bench

import (
	"fmt"
	"math/rand"

	"github.com/biodatageeks/iitii/internal/bed"
)

// Uniform generates n intervals with begins uniform over [0, space) and
// widths uniform over [0, maxLen).
func Uniform(rng *rand.Rand, n int, space, maxLen int64) []bed.Interval {
	ivs := make([]bed.Interval, n)
	for i := range ivs {
		beg := rng.Int63n(space)
		ivs[i] = bed.Interval{
			Chrom: "synthetic",
			Start: beg,
			End:   beg + rng.Int63n(maxLen),
			Name:  fmt.Sprintf("iv%d", i),
		}
	}
	return ivs
}

// Clustered generates n intervals packed into [0, clusterSpace) plus a
// handful of outliers far up the coordinate space. The begin range in
// between is empty, so an interpolation model partitioned into several
// domains keeps no-prediction sentinels for the middle domains.
func Clustered(rng *rand.Rand, n int, clusterSpace int64, outliers int, farOffset int64) []bed.Interval {
	ivs := make([]bed.Interval, 0, n+outliers)
	for i := 0; i < n; i++ {
		beg := rng.Int63n(clusterSpace)
		ivs = append(ivs, bed.Interval{
			Chrom: "synthetic",
			Start: beg,
			End:   beg + rng.Int63n(clusterSpace/4+1),
			Name:  fmt.Sprintf("iv%d", i),
		})
	}
	for i := 0; i < outliers; i++ {
		beg := farOffset + int64(i)
		ivs = append(ivs, bed.Interval{
			Chrom: "synthetic",
			Start: beg,
			End:   beg + 1,
			Name:  fmt.Sprintf("far%d", i),
		})
	}
	return ivs
}

// Queries generates m random query intervals over [0, space).
func Queries(rng *rand.Rand, m int, space, maxLen int64) [][2]int64 {
	qs := make([][2]int64, m)
	for i := range qs {
		beg := rng.Int63n(space)
		qs[i] = [2]int64{beg, beg + rng.Int63n(maxLen)}
	}
	return qs
}
