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
	"github.com/ajroetker/go-exposure/exposure/tensor"
)

// EqualizeHist remaps every element of img through the array's own
// cumulative distribution, flattening the output distribution. The result
// has the same shape as img with float64 elements in [0, 1]; img is never
// mutated.
//
// With WithMask, only the selected elements feed the distribution, but
// every element of the original array is still remapped. A constant-valued
// population yields a degenerate single-point distribution and the output
// is 1.0 everywhere; that is not an error.
func EqualizeHist[T tensor.Scalars](img *tensor.Dense[T], opts ...Option) (*tensor.Dense[float64], error) {
	o := newOptions(opts)
	if img == nil || img.Len() == 0 {
		return nil, invalidArgf("equalize of an empty array")
	}

	var (
		cdf *CDF
		err error
	)
	if o.mask != nil {
		imgShape := img.Shape()
		maskShape := o.mask.Shape()
		if !imgShape.Equal(maskShape) {
			return nil, shapeMismatchf("mask shape %s does not match array shape %s",
				maskShape, imgShape)
		}
		selected, cerr := tensor.Compress(img, o.mask)
		if cerr != nil {
			return nil, shapeMismatchf("%v", cerr)
		}
		cdf, err = buildCDF(selected, &o)
	} else {
		cdf, err = buildCDF(img, &o)
	}
	if err != nil {
		return nil, err
	}

	// The (bin center, CDF) pairs form a monotone piecewise-linear mapping
	// into [0, 1]. A single-point table maps everything to 1.
	tbl, err := cdf.lookupTable()
	if err != nil {
		return nil, err
	}

	data := img.Flat()
	out := make([]float64, len(data))
	remap := func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = tbl.At(float64(data[i]))
		}
	}
	if o.pool != nil && len(data) >= minParallelElems {
		o.pool.ParallelFor(len(data), remap)
	} else {
		remap(0, len(data))
	}

	return tensor.New(img.Shape(), out)
}
