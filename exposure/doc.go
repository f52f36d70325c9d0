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

// Package exposure computes intensity histograms, cumulative
// distributions, and histogram equalization over in-memory N-dimensional
// numeric arrays.
//
// Integer-typed arrays are counted exactly, one bin per integer value in
// the source range; floating-point arrays are counted into equal-width
// buckets. The cumulative distribution is the unit-normalized prefix sum
// over the histogram, and EqualizeHist remaps every element through that
// distribution via piecewise-linear interpolation, flattening the output
// value distribution.
//
// Basic usage:
//
//	img := tensor.FromSlice([]uint8{0, 0, 1, 1, 2, 2, 3, 3})
//
//	hist, err := exposure.Histogram(img)
//	// hist.Counts = [2 2 2 2], hist.BinCenters = [0 1 2 3]
//
//	cdf, err := exposure.CumulativeDistribution(img)
//	// cdf.Values = [0.25 0.5 0.75 1]
//
//	out, err := exposure.EqualizeHist(img)
//	// out has img's shape with float64 values in [0, 1]
//
// All three operations are pure functions of their inputs: no shared
// state, no I/O, fresh outputs per call. Optional parallelism over a
// workerpool.Pool (WithPool) does not change results.
package exposure
