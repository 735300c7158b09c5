// Package bed provides BED interval file parsing functionality.
package bed

import "fmt"

// Interval is one BED record. Coordinates follow the BED convention:
// 0-based, half-open [Start, End).
type Interval struct {
	Chrom string
	Start int64
	End   int64
	Name  string // optional fourth column
}

// Beg returns the interval's begin position.
func (iv Interval) Beg() int64 { return iv.Start }

// Len returns the interval's width.
func (iv Interval) Len() int64 { return iv.End - iv.Start }

// Overlaps reports whether the interval overlaps [qbeg, qend).
func (iv Interval) Overlaps(qbeg, qend int64) bool {
	return iv.Start < qend && iv.End > qbeg
}

// String renders the interval in chrom:start-end form.
func (iv Interval) String() string {
	return fmt.Sprintf("%s:%d-%d", iv.Chrom, iv.Start, iv.End)
}
