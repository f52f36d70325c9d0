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

// Package tensor provides the in-memory array type consumed by the exposure
// package: a homogeneous, N-dimensional, row-major numeric buffer with shape
// and element-type introspection, plus a boolean Mask for element selection.
//
// The engine only ever reads these buffers; operations that produce arrays
// allocate fresh ones.
package tensor

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Floats is a constraint for floating-point element types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer element types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer element types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer element types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Scalars is a constraint for all supported element types.
type Scalars interface {
	Floats | Integers
}

// Shape is the ordered sequence of per-dimension extents of an array.
type Shape []int

// Size returns the number of elements an array of this shape holds.
func (s Shape) Size() int {
	n := 1
	for _, d := range s {
		n *= d
	}
	return n
}

// Equal reports whether two shapes have identical extents.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for i, d := range s {
		if d != o[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the shape.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	copy(out, s)
	return out
}

// String renders the shape as "2x3x4".
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, d := range s {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, "x")
}

func (s Shape) validate() error {
	if len(s) == 0 {
		return errors.New("tensor: shape must have at least one dimension")
	}
	for i, d := range s {
		if d < 0 {
			return errors.Newf("tensor: negative extent %d in dimension %d", d, i)
		}
	}
	return nil
}

// Dense is an N-dimensional, row-major array of a single element type.
// The zero value is not usable; use New, FromSlice, Zeros, or Full.
type Dense[T Scalars] struct {
	shape Shape
	data  []T
}

// New wraps data in a Dense of the given shape. The backing slice is used
// directly, not copied; its length must equal shape.Size().
func New[T Scalars](shape Shape, data []T) (*Dense[T], error) {
	if err := shape.validate(); err != nil {
		return nil, err
	}
	if shape.Size() != len(data) {
		return nil, errors.Newf("tensor: shape %s requires %d elements, got %d",
			shape, shape.Size(), len(data))
	}
	return &Dense[T]{shape: shape.Clone(), data: data}, nil
}

// FromSlice wraps data as a 1-D array.
func FromSlice[T Scalars](data []T) *Dense[T] {
	return &Dense[T]{shape: Shape{len(data)}, data: data}
}

// Zeros allocates a zero-filled array of the given shape.
func Zeros[T Scalars](shape Shape) (*Dense[T], error) {
	if err := shape.validate(); err != nil {
		return nil, err
	}
	return &Dense[T]{shape: shape.Clone(), data: make([]T, shape.Size())}, nil
}

// Full allocates an array of the given shape with every element set to v.
func Full[T Scalars](shape Shape, v T) (*Dense[T], error) {
	d, err := Zeros[T](shape)
	if err != nil {
		return nil, err
	}
	for i := range d.data {
		d.data[i] = v
	}
	return d, nil
}

// Shape returns a copy of the array's shape.
func (d *Dense[T]) Shape() Shape {
	return d.shape.Clone()
}

// Len returns the total number of elements.
func (d *Dense[T]) Len() int {
	return len(d.data)
}

// Flat returns the elements in row-major order. The slice is a view of the
// array's backing storage, not a copy.
func (d *Dense[T]) Flat() []T {
	return d.data
}

// Reshape returns a view of the same elements under a new shape.
// The element count must be unchanged.
func (d *Dense[T]) Reshape(shape Shape) (*Dense[T], error) {
	if err := shape.validate(); err != nil {
		return nil, err
	}
	if shape.Size() != len(d.data) {
		return nil, errors.Newf("tensor: cannot reshape %s (%d elements) to %s (%d elements)",
			d.shape, len(d.data), shape, shape.Size())
	}
	return &Dense[T]{shape: shape.Clone(), data: d.data}, nil
}

// MinMax returns the smallest and largest element. For an empty array both
// results are the zero value; callers validate emptiness first.
func (d *Dense[T]) MinMax() (lo, hi T) {
	if len(d.data) == 0 {
		return lo, hi
	}
	lo, hi = d.data[0], d.data[0]
	for _, v := range d.data[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// Mask is a boolean array used to select elements of a same-shaped Dense.
type Mask struct {
	shape Shape
	data  []bool
}

// NewMask wraps data in a Mask of the given shape.
func NewMask(shape Shape, data []bool) (*Mask, error) {
	if err := shape.validate(); err != nil {
		return nil, err
	}
	if shape.Size() != len(data) {
		return nil, errors.Newf("tensor: shape %s requires %d elements, got %d",
			shape, shape.Size(), len(data))
	}
	return &Mask{shape: shape.Clone(), data: data}, nil
}

// Shape returns a copy of the mask's shape.
func (m *Mask) Shape() Shape {
	return m.shape.Clone()
}

// Flat returns the mask values in row-major order.
func (m *Mask) Flat() []bool {
	return m.data
}

// Count returns the number of selected (true) elements.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.data {
		if b {
			n++
		}
	}
	return n
}

// Compress returns the elements of d selected by m, in row-major order, as a
// 1-D array. The mask shape must match the array shape.
func Compress[T Scalars](d *Dense[T], m *Mask) (*Dense[T], error) {
	if !d.shape.Equal(m.shape) {
		return nil, errors.Newf("tensor: mask shape %s does not match array shape %s",
			m.shape, d.shape)
	}
	out := make([]T, 0, m.Count())
	for i, keep := range m.data {
		if keep {
			out = append(out, d.data[i])
		}
	}
	return FromSlice(out), nil
}
