package iitii

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegress_PerfectLine(t *testing.T) {
	var points []regressPoint
	for x := 0; x < 10; x++ {
		points = append(points, regressPoint{x: float64(x), y: 2*float64(x) + 1})
	}
	w0, w1 := regress(points)
	assert.InDelta(t, 1.0, w0, 1e-9)
	assert.InDelta(t, 2.0, w1, 1e-9)
}

func TestRegress_Noisy(t *testing.T) {
	points := []regressPoint{
		{0, 0.1}, {1, 0.9}, {2, 2.2}, {3, 2.8}, {4, 4.1},
	}
	w0, w1 := regress(points)
	assert.InDelta(t, 1.0, w1, 0.1)
	assert.InDelta(t, 0.0, w0, 0.3)
}

func TestRegress_Degenerate(t *testing.T) {
	w0, w1 := regress(nil)
	assert.Zero(t, w0)
	assert.Zero(t, w1)

	w0, w1 = regress([]regressPoint{{1, 1}})
	assert.Zero(t, w0)
	assert.Zero(t, w1)

	// Zero variance in x.
	w0, w1 = regress([]regressPoint{{5, 1}, {5, 2}, {5, 3}})
	assert.Zero(t, w0)
	assert.Zero(t, w1)
}

func TestLog2Int(t *testing.T) {
	assert.Equal(t, 0, log2int(1))
	assert.Equal(t, 1, log2int(2))
	assert.Equal(t, 1, log2int(3))
	assert.Equal(t, 2, log2int(4))
	assert.Equal(t, 9, log2int(1023))
	assert.Equal(t, 10, log2int(1024))
}
