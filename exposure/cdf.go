// Copyright 2025 go-exposure Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package exposure

import (
	"math"

	"github.com/ajroetker/go-exposure/exposure/interp"
	"github.com/ajroetker/go-exposure/exposure/tensor"
)

// CDF is the unit-normalized cumulative distribution of a histogram.
// Values is non-decreasing, within [0, 1], and ends at exactly 1.
// BinCenters is shared with the histogram the CDF was derived from.
type CDF struct {
	Values     []float64
	BinCenters []float64

	// table is built once at construction and reused by At and the
	// equalizer. Nil for hand-assembled CDFs.
	table *interp.Table
}

// CumulativeDistribution computes the cumulative distribution function of
// the elements of img. The underlying histogram uses the array's own
// extrema (SourceRangeImage) and raw frequencies; WithBins applies on the
// floating-point bucket path.
func CumulativeDistribution[T tensor.Scalars](img *tensor.Dense[T], opts ...Option) (*CDF, error) {
	o := newOptions(opts)
	return buildCDF(img, &o)
}

func buildCDF[T tensor.Scalars](img *tensor.Dense[T], o *options) (*CDF, error) {
	co := *o
	co.sourceRange = SourceRangeImage
	co.normalize = false
	h, err := buildHistogram(img, &co)
	if err != nil {
		return nil, err
	}
	return cumulate(h)
}

// cumulate converts counts into a running prefix sum divided by the total.
// The final entry is total/total, exactly one.
func cumulate(h *Hist) (*CDF, error) {
	values := make([]float64, len(h.Counts))
	sum := 0.0
	for i, c := range h.Counts {
		sum += c
		values[i] = sum
	}
	if sum == 0 {
		return nil, divisionByZerof("cannot normalize a cumulative distribution with zero total count")
	}
	for i := range values {
		values[i] /= sum
	}
	tbl, err := interp.NewTable(h.BinCenters, values)
	if err != nil {
		return nil, err
	}
	return &CDF{Values: values, BinCenters: h.BinCenters, table: tbl}, nil
}

// lookupTable returns the interpolation table over the bin centers,
// building one on first use for CDFs assembled by hand.
func (c *CDF) lookupTable() (*interp.Table, error) {
	if c.table == nil {
		tbl, err := interp.NewTable(c.BinCenters, c.Values)
		if err != nil {
			return nil, err
		}
		c.table = tbl
	}
	return c.table, nil
}

// At evaluates the distribution at an arbitrary value by piecewise-linear
// interpolation over the bin centers, clamping outside the sampled domain.
// A CDF whose invariants have been broken by hand yields NaN.
func (c *CDF) At(x float64) float64 {
	t, err := c.lookupTable()
	if err != nil {
		return math.NaN()
	}
	return t.At(x)
}
