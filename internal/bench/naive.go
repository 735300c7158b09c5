package bench

import (
	"sort"

	"github.com/biodatageeks/iitii/internal/bed"
)

// Naive answers an overlap query by linear scan, in canonical
// (Start, End, Name) order. It is the correctness oracle for the index.
func Naive(ivs []bed.Interval, qbeg, qend int64) []bed.Interval {
	var hits []bed.Interval
	if qbeg >= qend {
		return hits
	}
	for _, iv := range ivs {
		if iv.Overlaps(qbeg, qend) {
			hits = append(hits, iv)
		}
	}
	sortIntervals(hits)
	return hits
}

// Canon copies borrowed query results into canonical order so they can
// be compared against Naive.
func Canon(hits []*bed.Interval) []bed.Interval {
	var out []bed.Interval
	for _, h := range hits {
		out = append(out, *h)
	}
	sortIntervals(out)
	return out
}

func sortIntervals(ivs []bed.Interval) {
	sort.Slice(ivs, func(i, j int) bool {
		if ivs[i].Start != ivs[j].Start {
			return ivs[i].Start < ivs[j].Start
		}
		if ivs[i].End != ivs[j].End {
			return ivs[i].End < ivs[j].End
		}
		return ivs[i].Name < ivs[j].Name
	})
}
