package iitii

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevel(t *testing.T) {
	cases := map[int]int{
		0:  0,
		1:  1,
		2:  0,
		3:  2,
		4:  0,
		5:  1,
		6:  0,
		7:  3,
		11: 2,
		15: 4,
		21: 1,
		23: 3,
	}
	for rank, want := range cases {
		assert.Equal(t, want, level(rank), "level(%d)", rank)
	}
}

func TestParentChildRoundTrip(t *testing.T) {
	// Full tree of 31 nodes, root at rank 15.
	const root = 15
	for r := 0; r < 31; r++ {
		if r == root {
			continue
		}
		p := parent2(r)
		pk := level(p)
		assert.Equal(t, pk, level(r)+1, "parent of %d is one level up", r)
		if r < p {
			assert.Equal(t, r, left(p, pk), "rank %d is the left child of %d", r, p)
		} else {
			assert.Equal(t, r, right(p, pk), "rank %d is the right child of %d", r, p)
		}
	}
}

func TestLeafBounds(t *testing.T) {
	assert.Equal(t, 0, leftmostLeaf(15, 4))
	assert.Equal(t, 30, rightmostLeaf(15, 4))
	assert.Equal(t, 0, leftmostLeaf(3, 2))
	assert.Equal(t, 6, rightmostLeaf(3, 2))
	assert.Equal(t, 4, leftmostLeaf(5, 1))
	assert.Equal(t, 6, rightmostLeaf(5, 1))
	assert.Equal(t, 8, leftmostLeaf2(8), "a leaf is its own leftmost leaf")
	assert.Equal(t, 8, leftmostLeaf2(11))
}

func TestLevelRankRoundTrip(t *testing.T) {
	for r := 0; r < 127; r++ {
		k := level(r)
		assert.Equal(t, r, rankOfLevelRank(k, levelRankOfRank(r)), "rank %d", r)
	}
}

func TestRankOfLevelRank(t *testing.T) {
	// The i-th node on level k has rank (2i+1)*2^k - 1.
	assert.Equal(t, 0, rankOfLevelRank(0, 0))
	assert.Equal(t, 2, rankOfLevelRank(0, 1))
	assert.Equal(t, 1, rankOfLevelRank(1, 0))
	assert.Equal(t, 5, rankOfLevelRank(1, 1))
	assert.Equal(t, 3, rankOfLevelRank(2, 0))
	assert.Equal(t, 11, rankOfLevelRank(2, 1))
	assert.Equal(t, 7, rankOfLevelRank(3, 0))
}
