package iitii

import (
	"iter"
	"sort"

	"go.uber.org/zap"
)

// Builder accumulates items ahead of index construction. Items may be
// added one at a time or in bulk; Build sorts them by (begin, end) and
// hands the node array to the index, after which the builder must not be
// reused.
type Builder[P Position, T any] struct {
	beg, end func(T) P
	nodes    []node[P, T]
	sortFn   func(sort.Interface)
	logger   *zap.Logger
}

// NewBuilder returns a builder whose interval bounds are extracted from
// items by the beg and end accessors. Intervals are half-open
// [beg, end); every item must satisfy beg(item) <= end(item).
func NewBuilder[P Position, T any](beg, end func(T) P) *Builder[P, T] {
	return &Builder[P, T]{
		beg:    beg,
		end:    end,
		sortFn: sort.Sort,
		logger: zap.NewNop(),
	}
}

// SetSort replaces the sort algorithm used by Build. The comparator is
// fixed (begin ascending, ties by end ascending); only the algorithm is
// pluggable.
func (b *Builder[P, T]) SetSort(fn func(sort.Interface)) {
	b.sortFn = fn
}

// SetLogger sets the logger used for model-training diagnostics.
func (b *Builder[P, T]) SetLogger(l *zap.Logger) {
	b.logger = l
}

// Add appends a single item.
func (b *Builder[P, T]) Add(item T) {
	b.nodes = append(b.nodes, node[P, T]{item: item, insideMaxEnd: b.end(item)})
}

// AddSeq appends every item produced by seq.
func (b *Builder[P, T]) AddSeq(seq iter.Seq[T]) {
	for item := range seq {
		b.Add(item)
	}
}

// Build sorts the accumulated items and constructs the plain tree.
func (b *Builder[P, T]) Build() *Tree[P, T] {
	b.sortFn(byBegEnd[P, T]{nodes: b.nodes, beg: b.beg, end: b.end})
	return newTree(b.beg, b.end, b.nodes)
}

// BuildInterpolated sorts the accumulated items and constructs the
// interpolated tree, partitioning the begin range into the given number
// of model domains (clamped to at least 1).
func (b *Builder[P, T]) BuildInterpolated(domains int) *Interpolated[P, T] {
	b.sortFn(byBegEnd[P, T]{nodes: b.nodes, beg: b.beg, end: b.end})
	return newInterpolated(b.beg, b.end, b.nodes, domains, b.logger)
}

// byBegEnd adapts the node slice for package sort.
type byBegEnd[P Position, T any] struct {
	nodes    []node[P, T]
	beg, end func(T) P
}

func (s byBegEnd[P, T]) Len() int { return len(s.nodes) }

func (s byBegEnd[P, T]) Swap(i, j int) {
	s.nodes[i], s.nodes[j] = s.nodes[j], s.nodes[i]
}

func (s byBegEnd[P, T]) Less(i, j int) bool {
	bi, bj := s.beg(s.nodes[i].item), s.beg(s.nodes[j].item)
	if bi == bj {
		return s.end(s.nodes[i].item) < s.end(s.nodes[j].item)
	}
	return bi < bj
}
