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

package tensor

import (
	"math"
	"unsafe"
)

// Category is the element-type family an algorithm dispatches on.
type Category int

const (
	// SignedInt covers int8 through int64.
	SignedInt Category = iota
	// UnsignedInt covers uint8 through uint64.
	UnsignedInt
	// Float covers float32 and float64.
	Float
)

// String returns a human-readable name for the category.
func (c Category) String() string {
	switch c {
	case SignedInt:
		return "signed integer"
	case UnsignedInt:
		return "unsigned integer"
	case Float:
		return "float"
	default:
		return "unknown"
	}
}

// CategoryOf resolves the element-type category of T once, so algorithms can
// branch between exact integer binning and bucket binning at entry rather
// than inspecting values in inner loops.
//
// Only arithmetic valid for every Scalars member is used here, which keeps
// the detection correct for named types (~int8 and friends).
func CategoryOf[T Scalars]() Category {
	if T(1)/T(2) != 0 {
		// Integer division truncates to zero; only floats keep the half.
		return Float
	}
	if T(0)-T(1) < T(0) {
		return SignedInt
	}
	return UnsignedInt
}

// IntRange returns the smallest and largest representable value of the
// integer element type T.
func IntRange[T Integers]() (lo, hi T) {
	bits := unsafe.Sizeof(lo) * 8
	if T(0)-T(1) < T(0) {
		lo = ^T(0) << (bits - 1)
		hi = ^lo
		return lo, hi
	}
	return 0, ^T(0)
}

// Limits is the type-range oracle: it returns the value domain associated
// with the element type T, as float64 bounds.
//
// Integer types report their full representable range. Floating-point types
// report (-1, +1), the normalized-intensity convention: equal-width buckets
// over the representable extremes of IEEE-754 would be meaningless.
func Limits[T Scalars]() (lo, hi float64) {
	var zero T
	bits := int(unsafe.Sizeof(zero)) * 8
	switch CategoryOf[T]() {
	case Float:
		return -1, 1
	case SignedInt:
		return -math.Ldexp(1, bits-1), math.Ldexp(1, bits-1) - 1
	default:
		return 0, math.Ldexp(1, bits) - 1
	}
}
