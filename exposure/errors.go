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

import "github.com/cockroachdb/errors"

// Error kinds. Every error returned by this package is marked with exactly
// one of these sentinels; callers classify with errors.Is. All failures are
// deterministic input-validation failures detected before any output is
// produced.
var (
	// ErrInvalidArgument marks a bad source range, an empty array, a
	// non-positive bin count on the bucket path, or a bin count that would
	// exceed the configured allocation bound.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrShapeMismatch marks a mask whose shape differs from the array.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrDivisionByZero marks an attempt to normalize an all-zero
	// histogram.
	ErrDivisionByZero = errors.New("division by zero")
)

func invalidArgf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrInvalidArgument)
}

func shapeMismatchf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrShapeMismatch)
}

func divisionByZerof(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrDivisionByZero)
}
