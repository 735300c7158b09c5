package iitii

import (
	"math"
	"sync/atomic"

	"go.uber.org/zap"
)

// Interpolated is an implicit interval tree with an interpolation index.
//
// The begin range [minBeg, maxBeg] is partitioned into equal-width
// domains; each domain carries a linear regression of level-rank on
// begin position plus a chosen tree level to jump into. A query starts
// at the predicted interior node and climbs toward the root until two
// augment values prove that everything overlapping the query lies in
// the current subtree, which is then scanned top-down.
//
// Training runs in double precision; the stored parameters are single
// precision and interpolation is computed in single precision, which
// bounds the magnitude of precisely addressable ranks. Degraded
// precision shows up as elevated query cost, never as wrong results:
// the climb predicate is the ground truth.
type Interpolated[P Position, T any] struct {
	*Tree[P, T]

	// outsideMaxEnd[r] is the max end over nodes outside r's subtree
	// whose begin is strictly less than r's; minPos when none exist.
	outsideMaxEnd []P

	domains    int
	minBeg     P
	domainSize P // 1 + (maxBeg-minBeg)/domains; the +1 keeps the width positive when maxBeg == minBeg

	// Three parameters per domain, row-major: w0, w1, and the jump
	// level stored as a float. A negative level means the domain made
	// no prediction and queries fall back to a root-start scan.
	params []float32

	queries        atomic.Uint64
	totalClimbCost atomic.Uint64

	logger *zap.Logger
}

// Tree levels at which to evaluate interpolation model fit.
var trainLevels = []int{0, 1, 2, 4, 7, 12, 20, 33, 54}

// trainPoint is one <beg, rank> observation for model training.
type trainPoint[P Position] struct {
	x    P
	rank int
}

func newInterpolated[P Position, T any](beg, end func(T) P, nodes []node[P, T], domains int, logger *zap.Logger) *Interpolated[P, T] {
	ix := &Interpolated[P, T]{
		Tree:       newTree(beg, end, nodes),
		domains:    max(1, domains),
		minBeg:     maxPos[P](),
		domainSize: maxPos[P](),
		logger:     logger,
	}
	ix.params = make([]float32, 3*ix.domains)
	for i := range ix.params {
		ix.params[i] = -1
	}

	n := len(ix.nodes)
	if n == 0 {
		return ix
	}

	ix.minBeg = ix.beg(ix.nodes[0].item)
	ix.domainSize = 1 + (ix.beg(ix.nodes[n-1].item)-ix.minBeg)/P(ix.domains)

	// Running max end along the sorted array, consulted while filling
	// outsideMaxEnd below.
	running := make([]P, n)
	running[0] = ix.end(ix.nodes[0].item)
	for r := 1; r < n; r++ {
		running[r] = max(running[r-1], ix.end(ix.nodes[r].item))
	}

	negInf := minPos[P]()
	ix.outsideMaxEnd = make([]P, n)
	for r := 0; r < n; r++ {
		ix.outsideMaxEnd[r] = negInf
		l := leftmostLeaf2(r)
		if l == 0 {
			continue
		}
		// outsideMaxEnd is the running max end at the highest rank
		// below r's leftmost leaf whose begin is strictly below r's;
		// equal-begin ties do not count.
		b := ix.beg(ix.nodes[r].item)
		leq := l - 1
		for leq > 0 && ix.beg(ix.nodes[leq].item) == b {
			leq--
		}
		if ix.beg(ix.nodes[leq].item) < b {
			ix.outsideMaxEnd[r] = running[leq]
		}
	}

	ix.train()
	return ix
}

// whichDomain maps a begin position to its model domain. The clamp runs
// in P space so that off-scale-high positions never overflow the int
// conversion.
func (ix *Interpolated[P, T]) whichDomain(beg P) int {
	if beg < ix.minBeg {
		return 0
	}
	d := (beg - ix.minBeg) / ix.domainSize
	if d >= P(ix.domains) {
		return ix.domains - 1
	}
	return int(d)
}

// interpolate applies a domain's model and materializes the predicted
// level-rank on level k. Off-scale-high predictions snap to the
// rightmost real leaf.
func (ix *Interpolated[P, T]) interpolate(k int, w0, w1 float32, qbeg P) int {
	n := len(ix.nodes)
	ofs := float64(w0 + w1*float32(qbeg))
	r := n
	if ofs < float64(n) {
		lr := 0
		if ofs > 0 {
			lr = int(math.Round(ofs))
		}
		r = rankOfLevelRank(k, lr)
	}
	if r >= n {
		r = n - (2 - n%2)
	}
	return r
}

// train fits each domain's regression at every candidate level and keeps
// the level whose estimated query cost beats both the root-start scan
// and every previously evaluated level.
func (ix *Interpolated[P, T]) train() {
	// Partition <beg, rank> observations by domain.
	points := make([][]trainPoint[P], ix.domains)
	for r := range ix.nodes {
		b := ix.beg(ix.nodes[r].item)
		d := ix.whichDomain(b)
		points[d] = append(points[d], trainPoint[P]{x: b, rank: r})
	}

	for d := range points {
		// Bucket the domain's observations by tree level, converting
		// ranks to level-ranks.
		byLevel := make([][]regressPoint, ix.rootLevel+1)
		for _, p := range points[d] {
			k := level(p.rank)
			byLevel[k] = append(byLevel[k], regressPoint{
				x: float64(p.x),
				y: float64(levelRankOfRank(p.rank)),
			})
		}

		lowest := math.MaxFloat64
		for _, k := range trainLevels {
			if k >= ix.rootLevel || len(byLevel[k]) <= 1 {
				break
			}
			w0, w1 := regress(byLevel[k])
			if w1 == 0 {
				continue
			}

			// Estimated search cost, averaged over the whole domain.
			// A prediction that misses by e level-k units needs a
			// climb long enough to cover the miss; a prediction whose
			// node has nontrivial outside overlap forces additional
			// climbing. Either can dominate, so take the max.
			var cost uint64
			for _, p := range points[d] {
				fx := ix.interpolate(k, float32(w0), float32(w1), p.x)
				errv := fx - p.rank
				if errv < 0 {
					errv = -errv
				}
				errv >>= uint(k)
				errPenalty := 0
				if errv > 0 {
					errPenalty = 2 * (1 + log2int(errv))
				}
				overlapPenalty := 0
				if ix.outsideMaxEnd[fx] > p.x {
					overlapPenalty = 1 + (ix.rootLevel-k)/2
				}
				cost += uint64(k + max(errPenalty, overlapPenalty))
			}
			avg := float64(cost) / float64(len(points[d]))

			if avg < float64(ix.rootLevel) && avg < lowest {
				lowest = avg
				pp := ix.params[3*d:]
				pp[0] = float32(w0)
				pp[1] = float32(w1)
				pp[2] = float32(k)
			}
		}
		points[d] = nil

		ix.logger.Debug("trained domain",
			zap.Int("domain", d),
			zap.Float32("level", ix.params[3*d+2]),
			zap.Float64("estCost", lowest))
	}
}

// predict returns the model's start rank for qbeg, or -1 when the
// query's domain recorded no usable model.
func (ix *Interpolated[P, T]) predict(qbeg P) int {
	pp := ix.params[3*ix.whichDomain(qbeg):]
	if pp[2] < 0 {
		return -1
	}
	return ix.interpolate(int(pp[2]), pp[0], pp[1], qbeg)
}

// outsideMinBeg is the least begin among nodes outside the subtree whose
// begin is at least the subtree root's, computed in O(1) from the sorted
// array: the begin of the node ranked one past the subtree's rightmost
// leaf. Returns maxPos when no such node exists.
func (ix *Interpolated[P, T]) outsideMinBeg(subtree, k int) P {
	b := ix.beg(ix.nodes[subtree].item)
	if l := leftmostLeaf(subtree, k); l > 0 && ix.beg(ix.nodes[l-1].item) == b {
		// Nodes left of the subtree in sorted order can share the
		// root's begin, and those qualify: the definition admits any
		// begin >= the root's.
		return b
	}
	if r := rightmostLeaf(subtree, k); r+1 < len(ix.nodes) {
		return ix.beg(ix.nodes[r+1].item)
	}
	return maxPos[P]()
}

// Overlap finds every item whose interval overlaps [qbeg, qend),
// starting from the model's predicted node and climbing until the
// stopping predicate proves the remaining subtree contains all results.
// The cost is the subtree scan's visited-node count plus three per
// climbed level, reflecting the climb's extra cache misses. Falls back
// to a root-start scan when the query's domain has no model.
func (ix *Interpolated[P, T]) Overlap(qbeg, qend P, ans *[]*T) int {
	if qbeg >= qend { // the query interval is empty
		*ans = (*ans)[:0]
		return 0
	}
	prediction := ix.predict(qbeg)
	if prediction < 0 {
		return ix.Tree.Overlap(qbeg, qend, ans)
	}

	// Climb while the node is imaginary, some outside node with a
	// smaller begin may still overlap, or some outside node with a
	// larger begin may still overlap. When all three fail, every
	// overlap candidate is inside the current subtree.
	n := len(ix.nodes)
	subtree := prediction
	k := level(subtree)
	k0 := k
	for subtree != ix.root &&
		(subtree >= n ||
			qbeg < ix.outsideMaxEnd[subtree] ||
			ix.outsideMinBeg(subtree, k) < qend) {
		subtree = parent(subtree, k)
		k++
	}
	climb := k - k0

	ix.queries.Add(1)
	ix.totalClimbCost.Add(uint64(climb))

	*ans = (*ans)[:0]
	return ix.scan(subtree, k, qbeg, qend, ans) + 3*climb
}

// OverlapAll is Overlap with a freshly allocated result slice.
func (ix *Interpolated[P, T]) OverlapAll(qbeg, qend P) []*T {
	var ans []*T
	ix.Overlap(qbeg, qend, &ans)
	return ans
}

// Queries reports how many interpolated overlap queries have run.
// Queries that fell back to the root-start scan are not counted.
func (ix *Interpolated[P, T]) Queries() uint64 {
	return ix.queries.Load()
}

// TotalClimbCost reports the accumulated number of climbed levels
// across all interpolated queries.
func (ix *Interpolated[P, T]) TotalClimbCost() uint64 {
	return ix.totalClimbCost.Load()
}
