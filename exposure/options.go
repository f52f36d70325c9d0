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
	"go.uber.org/zap"

	"github.com/ajroetker/go-exposure/exposure/tensor"
	"github.com/ajroetker/go-exposure/exposure/workerpool"
)

// SourceRange selects the value domain used to build bins.
type SourceRange string

const (
	// SourceRangeImage derives the bin range from the array's own extrema.
	SourceRangeImage SourceRange = "image"
	// SourceRangeDType derives the bin range from the full value domain of
	// the element type, as reported by tensor.Limits.
	SourceRangeDType SourceRange = "dtype"
)

const (
	// DefaultBins is the bucket count used for floating-point arrays when
	// WithBins is not given. Integer arrays always get one bin per value.
	DefaultBins = 256

	// DefaultMaxBins bounds the number of bins any call may allocate.
	// An integer array whose value range spans more (for example a 32-bit
	// array with SourceRangeDType) is rejected rather than allocated.
	DefaultMaxBins = 1 << 22
)

type options struct {
	bins        int
	sourceRange SourceRange
	normalize   bool
	mask        *tensor.Mask
	logger      *zap.Logger
	pool        *workerpool.Pool
	maxBins     int
}

func newOptions(opts []Option) options {
	o := options{
		bins:        DefaultBins,
		sourceRange: SourceRangeImage,
		maxBins:     DefaultMaxBins,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// warnLogger returns the sink for advisory diagnostics. Failures never use
// this channel.
func (o *options) warnLogger() *zap.Logger {
	if o.logger != nil {
		return o.logger
	}
	return zap.L()
}

// Option configures Histogram, CumulativeDistribution, and EqualizeHist.
type Option func(*options)

// WithBins sets the bucket count for floating-point arrays. Ignored for
// integer arrays, which always get one bin per representable value in
// range.
func WithBins(n int) Option {
	return func(o *options) { o.bins = n }
}

// WithSourceRange selects between the array's own extrema
// (SourceRangeImage, the default) and the element type's full value domain
// (SourceRangeDType).
func WithSourceRange(sr SourceRange) Option {
	return func(o *options) { o.sourceRange = sr }
}

// WithNormalize divides the counts by their total, yielding a probability
// mass function instead of raw frequencies.
func WithNormalize() Option {
	return func(o *options) { o.normalize = true }
}

// WithMask restricts the elements that feed the distribution in
// EqualizeHist. The mask shape must match the array shape. Equalization is
// still applied to every element. Histogram and CumulativeDistribution do
// not consult the mask.
func WithMask(m *tensor.Mask) Option {
	return func(o *options) { o.mask = m }
}

// WithLogger routes advisory warnings to l instead of the process-global
// zap logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithPool enables parallel counting and remapping on the given pool.
// Results are identical to the sequential default; inputs below an internal
// size threshold run sequentially regardless.
func WithPool(p *workerpool.Pool) Option {
	return func(o *options) { o.pool = p }
}

// WithMaxBins overrides DefaultMaxBins for callers that really do want a
// wider integer range or more buckets.
func WithMaxBins(n int) Option {
	return func(o *options) { o.maxBins = n }
}
