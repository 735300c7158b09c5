package iitii

import "math/bits"

// regressPoint is one (x, y) observation for the level-rank regression.
type regressPoint struct {
	x, y float64
}

// regress fits y ~ w0 + w1*x by least squares, in double precision.
// Returns (0, 0) when the fit is degenerate (fewer than two points, or
// zero variance in x).
func regress(points []regressPoint) (w0, w1 float64) {
	if len(points) <= 1 {
		return 0, 0
	}
	var sumX, sumY float64
	for _, p := range points {
		sumX += p.x
		sumY += p.y
	}
	meanX := sumX / float64(len(points))
	meanY := sumY / float64(len(points))

	var cov, varX float64
	for _, p := range points {
		dx := p.x - meanX
		cov += dx * (p.y - meanY)
		varX += dx * dx
	}
	if varX == 0 {
		return 0, 0
	}
	w1 = cov / varX
	return meanY - w1*meanX, w1
}

// log2int is floor(log2(x)) for positive x.
func log2int(x int) int {
	return bits.Len(uint(x)) - 1
}
