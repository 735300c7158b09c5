package iitii

import (
	"slices"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_AddSeq(t *testing.T) {
	spans := []span{{5, 9}, {1, 3}, {2, 8}}

	b := NewBuilder[int](spanBeg, spanEnd)
	b.AddSeq(slices.Values(spans))
	tree := b.Build()

	require.Equal(t, 3, tree.Len())
	assert.Len(t, tree.OverlapAll(0, 10), 3)
}

func TestBuilder_SortsByBegThenEnd(t *testing.T) {
	b := NewBuilder[int](spanBeg, spanEnd)
	b.Add(span{3, 9})
	b.Add(span{3, 4})
	b.Add(span{1, 2})
	b.Add(span{3, 7})
	tree := b.Build()

	got := make([]span, tree.Len())
	for i := range tree.nodes {
		got[i] = tree.nodes[i].item
	}
	assert.Equal(t, []span{{1, 2}, {3, 4}, {3, 7}, {3, 9}}, got)
}

func TestBuilder_CustomSort(t *testing.T) {
	mk := func() *Builder[int, span] {
		b := NewBuilder[int](spanBeg, spanEnd)
		b.Add(span{10, 20})
		b.Add(span{0, 5})
		b.Add(span{4, 12})
		b.Add(span{15, 30})
		return b
	}

	def := mk().Build()

	b := mk()
	b.SetSort(sort.Stable)
	stable := b.Build()

	for _, q := range [][2]int{{0, 3}, {4, 11}, {12, 16}, {25, 40}} {
		assert.Equal(t,
			counts(def.OverlapAll(q[0], q[1])),
			counts(stable.OverlapAll(q[0], q[1])),
			"query %v", q)
	}
}
