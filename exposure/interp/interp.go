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

// Package interp provides monotone piecewise-linear lookup tables.
//
// A Table maps an input value to an output value by locating the bracketing
// pair of sample points with binary search and blending linearly between
// them. Inputs outside the sampled domain clamp to the first or last output
// value. This is the numerically sensitive core of histogram equalization
// and is kept standalone so any remapping can reuse it.
package interp

import (
	"sort"

	"github.com/cockroachdb/errors"
)

// Table is an immutable piecewise-linear mapping defined by sample points
// (xs[i], ys[i]). The xs must be strictly increasing.
type Table struct {
	xs []float64
	ys []float64
}

// NewTable builds a Table over the given sample points. The slices are
// retained, not copied; callers must not modify them afterwards.
//
// A single-point table is valid: it maps every input to ys[0].
func NewTable(xs, ys []float64) (*Table, error) {
	if len(xs) == 0 {
		return nil, errors.New("interp: need at least one sample point")
	}
	if len(xs) != len(ys) {
		return nil, errors.Newf("interp: %d x values but %d y values", len(xs), len(ys))
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return nil, errors.Newf("interp: x values not strictly increasing at index %d (%v <= %v)",
				i, xs[i], xs[i-1])
		}
	}
	return &Table{xs: xs, ys: ys}, nil
}

// Len returns the number of sample points.
func (t *Table) Len() int {
	return len(t.xs)
}

// At evaluates the mapping at x. Values below the first sample clamp to the
// first output, values above the last clamp to the last output.
func (t *Table) At(x float64) float64 {
	xs, ys := t.xs, t.ys
	last := len(xs) - 1
	if x <= xs[0] {
		return ys[0]
	}
	if x >= xs[last] {
		return ys[last]
	}
	// First index with xs[j] >= x; j is in [1, last] here.
	j := sort.SearchFloat64s(xs, x)
	if xs[j] == x {
		return ys[j]
	}
	i := j - 1
	frac := (x - xs[i]) / (xs[j] - xs[i])
	return ys[i] + frac*(ys[j]-ys[i])
}

// Map evaluates the mapping for every element of src, writing results into
// dst. The number of elements processed is min(len(dst), len(src)).
func (t *Table) Map(dst []float64, src []float64) {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] = t.At(src[i])
	}
}
