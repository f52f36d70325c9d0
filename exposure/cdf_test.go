package exposure

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-exposure/exposure/tensor"
)

func TestCumulativeDistributionScenario(t *testing.T) {
	img := tensor.FromSlice([]uint8{0, 0, 1, 1, 2, 2, 3, 3})
	cdf, err := CumulativeDistribution(img)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.25, 0.5, 0.75, 1.0}, cdf.Values)
	assert.Equal(t, []float64{0, 1, 2, 3}, cdf.BinCenters)
}

func TestCumulativeDistributionConstant(t *testing.T) {
	img := tensor.FromSlice([]int16{5, 5, 5, 5})
	cdf, err := CumulativeDistribution(img)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.0}, cdf.Values)
	assert.Equal(t, []float64{5}, cdf.BinCenters)
}

func TestCumulativeDistributionMonotoneEndsAtOne(t *testing.T) {
	vals := make([]float64, 500)
	for i := range vals {
		vals[i] = float64(i*73%389) / 389
	}
	cdf, err := CumulativeDistribution(tensor.FromSlice(vals), WithBins(32))
	require.NoError(t, err)

	for i := 1; i < len(cdf.Values); i++ {
		assert.GreaterOrEqual(t, cdf.Values[i], cdf.Values[i-1])
	}
	assert.InDelta(t, 1.0, cdf.Values[len(cdf.Values)-1], 1e-9)
	assert.GreaterOrEqual(t, cdf.Values[0], 0.0)
}

func TestCDFAt(t *testing.T) {
	img := tensor.FromSlice([]uint8{0, 0, 1, 1, 2, 2, 3, 3})
	cdf, err := CumulativeDistribution(img)
	require.NoError(t, err)

	assert.Equal(t, 0.25, cdf.At(0))
	assert.Equal(t, 1.0, cdf.At(3))
	assert.InDelta(t, 0.625, cdf.At(1.5), 1e-12)
	// Outside the sampled domain clamps.
	assert.Equal(t, 0.25, cdf.At(-5))
	assert.Equal(t, 1.0, cdf.At(100))
}

func TestCDFAtReusesTable(t *testing.T) {
	cdf, err := CumulativeDistribution(tensor.FromSlice([]uint8{0, 1, 2, 3}))
	require.NoError(t, err)
	require.NotNil(t, cdf.table)

	// Repeated evaluations share the table built at construction.
	first := cdf.table
	_ = cdf.At(1.5)
	_ = cdf.At(2.5)
	assert.Same(t, first, cdf.table)
}

func TestCDFAtHandAssembled(t *testing.T) {
	// A literal without a table gets one lazily.
	cdf := &CDF{Values: []float64{0.5, 1.0}, BinCenters: []float64{10, 20}}
	assert.InDelta(t, 0.75, cdf.At(15), 1e-12)
	assert.NotNil(t, cdf.table)

	// Broken invariants (non-increasing centers) yield NaN.
	bad := &CDF{Values: []float64{0.5, 1.0}, BinCenters: []float64{20, 10}}
	assert.True(t, math.IsNaN(bad.At(15)))
}

func TestCumulativeDistributionEmpty(t *testing.T) {
	_, err := CumulativeDistribution(tensor.FromSlice([]uint8{}))
	require.Error(t, err)
}
