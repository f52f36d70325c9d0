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

	"go.uber.org/zap"

	"github.com/ajroetker/go-exposure/exposure/tensor"
)

// Hist pairs per-bin counts with the representative value of each bin.
// Counts and BinCenters always have equal length and BinCenters is strictly
// increasing. Counts hold whole frequencies unless the histogram was
// normalized, in which case they sum to one.
type Hist struct {
	Counts     []float64
	BinCenters []float64
}

// Total returns the sum of all counts.
func (h *Hist) Total() float64 {
	total := 0.0
	for _, c := range h.Counts {
		total += c
	}
	return total
}

// Normalize returns a histogram whose counts sum to one. The receiver is
// unchanged; the bin centers are shared.
func (h *Hist) Normalize() (*Hist, error) {
	total := h.Total()
	if total == 0 {
		return nil, divisionByZerof("cannot normalize a histogram with zero total count")
	}
	counts := make([]float64, len(h.Counts))
	for i, c := range h.Counts {
		counts[i] = c / total
	}
	return &Hist{Counts: counts, BinCenters: h.BinCenters}, nil
}

// Histogram computes the intensity histogram of img.
//
// Integer element types get exact per-value binning: one bin for every
// integer in the source range, with the original values as bin centers.
// Floating-point element types are counted into equal-width buckets
// (WithBins, default 256); bin centers are the bucket midpoints. The
// source range defaults to the array's own extrema (SourceRangeImage).
//
// A 3-D array whose last extent is 1 to 3 triggers an advisory warning that
// all elements are treated as one flattened population; the result is
// unaffected.
func Histogram[T tensor.Scalars](img *tensor.Dense[T], opts ...Option) (*Hist, error) {
	o := newOptions(opts)
	return buildHistogram(img, &o)
}

func buildHistogram[T tensor.Scalars](img *tensor.Dense[T], o *options) (*Hist, error) {
	switch o.sourceRange {
	case SourceRangeImage, SourceRangeDType:
	default:
		return nil, invalidArgf("source range %q is neither %q nor %q",
			string(o.sourceRange), string(SourceRangeImage), string(SourceRangeDType))
	}
	if o.maxBins <= 0 {
		return nil, invalidArgf("max bin count %d must be positive", o.maxBins)
	}
	if img == nil || img.Len() == 0 {
		return nil, invalidArgf("histogram of an empty array")
	}
	warnColorShape(img.Shape(), o.warnLogger())

	var (
		h   *Hist
		err error
	)
	if tensor.CategoryOf[T]() == tensor.Float {
		h, err = bucketHistogram(img, o)
	} else {
		h, err = bincountHistogram(img, o)
	}
	if err != nil {
		return nil, err
	}
	if o.normalize {
		return h.Normalize()
	}
	return h, nil
}

// zeroOffset re-expresses v relative to lo as a non-negative bin index.
// Both operands are widened to uint64 before subtracting; for signed types
// the conversion sign-extends, so the difference is exact for any v >= lo
// regardless of the element width. Subtracting in the element's own width
// could wrap.
func zeroOffset[T tensor.Scalars](v, lo T) uint64 {
	return uint64(v) - uint64(lo)
}

// bincountHistogram counts integer elements directly: one bin per integer
// value in [lo, hi], O(n) time and O(hi-lo) space.
func bincountHistogram[T tensor.Scalars](img *tensor.Dense[T], o *options) (*Hist, error) {
	var lo, hi T
	if o.sourceRange == SourceRangeDType {
		loF, hiF := tensor.Limits[T]()
		if hiF-loF > float64(o.maxBins-1) {
			return nil, invalidArgf("full %s type range needs %.0f bins, more than the %d allowed",
				tensor.CategoryOf[T](), hiF-loF+1, o.maxBins)
		}
		lo, hi = T(loF), T(hiF)
	} else {
		lo, hi = img.MinMax()
	}

	span := zeroOffset(hi, lo)
	if span > uint64(o.maxBins-1) {
		return nil, invalidArgf("value range [%v, %v] needs more than the %d bins allowed",
			lo, hi, o.maxBins)
	}
	bins := int(span) + 1

	data := img.Flat()
	count := func(local []float64, start, end int) {
		for _, v := range data[start:end] {
			local[zeroOffset(v, lo)]++
		}
	}

	var counts []float64
	if o.pool != nil && len(data) >= minParallelElems {
		counts = parallelCount(o.pool, len(data), bins, count)
	} else {
		counts = make([]float64, bins)
		count(counts, 0, len(data))
	}

	base := float64(lo)
	centers := make([]float64, bins)
	for i := range centers {
		centers[i] = base + float64(i)
	}
	return &Hist{Counts: counts, BinCenters: centers}, nil
}

// bucketHistogram counts floating-point elements into nbins equal-width
// intervals, half-open except for the last, which is closed on both ends.
func bucketHistogram[T tensor.Scalars](img *tensor.Dense[T], o *options) (*Hist, error) {
	nbins := o.bins
	if nbins <= 0 {
		return nil, invalidArgf("bin count %d must be positive", nbins)
	}
	if nbins > o.maxBins {
		return nil, invalidArgf("bin count %d exceeds the %d allowed", nbins, o.maxBins)
	}

	data := img.Flat()
	var lo, hi float64
	if o.sourceRange == SourceRangeDType {
		lo, hi = tensor.Limits[T]()
	} else {
		lo, hi = math.Inf(1), math.Inf(-1)
		for _, v := range data {
			x := float64(v)
			if math.IsNaN(x) || math.IsInf(x, 0) {
				continue
			}
			if x < lo {
				lo = x
			}
			if x > hi {
				hi = x
			}
		}
		if lo > hi {
			return nil, invalidArgf("no finite elements to derive a bucket range from")
		}
	}
	if lo == hi {
		lo, hi = widenDegenerate(lo)
	}
	width := (hi - lo) / float64(nbins)

	count := func(local []float64, start, end int) {
		for _, v := range data[start:end] {
			x := float64(v)
			// Out-of-range elements (possible with SourceRangeDType) do
			// not feed the distribution. NaN fails both comparisons and
			// is never counted.
			if !(x >= lo && x <= hi) {
				continue
			}
			idx := int((x - lo) / width)
			if idx >= nbins {
				idx = nbins - 1
			}
			local[idx]++
		}
	}

	var counts []float64
	if o.pool != nil && len(data) >= minParallelElems {
		counts = parallelCount(o.pool, len(data), nbins, count)
	} else {
		counts = make([]float64, nbins)
		count(counts, 0, len(data))
	}

	centers := make([]float64, nbins)
	for i := range centers {
		centers[i] = lo + width*(float64(i)+0.5)
	}
	return &Hist{Counts: counts, BinCenters: centers}, nil
}

// widenDegenerate expands a zero-extent bucket range so the single observed
// value lands in an interior bucket. Half a unit each way covers small
// magnitudes; where 0.5 is absorbed by the float spacing (|v| >= 2^53) the
// adjacent representable values are used instead, clamped to the finite
// domain at the extremes.
func widenDegenerate(v float64) (lo, hi float64) {
	lo, hi = v-0.5, v+0.5
	if lo == v {
		lo = math.Nextafter(v, math.Inf(-1))
	}
	if hi == v {
		hi = math.Nextafter(v, math.Inf(1))
	}
	if math.IsInf(lo, -1) {
		lo = v
	}
	if math.IsInf(hi, 1) {
		hi = v
	}
	return lo, hi
}

// warnColorShape emits the advisory color-image diagnostic. The trigger is
// a shape heuristic (a 3-D grayscale volume with a small last extent looks
// the same); it never changes the result and never signals failure.
func warnColorShape(s tensor.Shape, log *zap.Logger) {
	if len(s) == 3 && s[2] >= 1 && s[2] <= 3 {
		log.Warn("array looks like a color image; the histogram is computed over all channels together",
			zap.String("shape", s.String()))
	}
}
