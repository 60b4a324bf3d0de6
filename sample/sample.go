// Copyright 2026 go-pixcore Authors
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

// Package sample defines the numeric sample types a pixel buffer can hold and
// the conversions used when a wide floating-point intermediate is stored back
// into one of them.
//
// Every sample type is treated on the same nominal 0..255 scale: a float32
// buffer holding RGB carries values like 128.0, not 0.5. This keeps the
// colorspace coefficients identical across sample types.
package sample

import (
	"math"
	"unsafe"
)

// Floats is a constraint for floating-point sample types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer sample types.
type SignedInts interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer sample types.
type UnsignedInts interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integers is a constraint for all integer sample types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Type is the constraint for every arithmetic sample type.
type Type interface {
	Floats | Integers
}

// IsFloat reports whether T is a floating-point type.
func IsFloat[T Type]() bool {
	half := 0.5
	return T(half) != 0
}

// isSigned reports whether T can hold negative values.
func isSigned[T Type]() bool {
	var z T
	z--
	return z < 0
}

// intRange returns the representable range of integer type T as float64
// values that convert back into T without overflow.
func intRange[T Type]() (lo, hi float64) {
	var z T
	bits := int(unsafe.Sizeof(z)) * 8
	if isSigned[T]() {
		lo = -math.Ldexp(1, bits-1)
		hi = math.Ldexp(1, bits-1) - 1
	} else {
		hi = math.Ldexp(1, bits) - 1
	}
	if bits == 64 {
		// 2^63-1 and 2^64-1 round up to a power of two in float64.
		hi = math.Nextafter(hi, 0)
	}
	return lo, hi
}

// FromFloat stores v into T. Floating-point types take v as is; integer
// types round half away from zero. The value is not clamped: results
// outside T's range wrap as Go integer conversions do.
func FromFloat[T Type](v float64) T {
	if IsFloat[T]() {
		return T(v)
	}
	r := math.Round(v)
	if r < 0 {
		return T(int64(r))
	}
	return T(uint64(r))
}

// Saturate is FromFloat with the rounded value first clamped to T's range.
// For example, Saturate[uint8](-3.2) is 0 and Saturate[uint8](300) is 255.
// NaN saturates to zero. Floating-point types are not clamped.
func Saturate[T Type](v float64) T {
	if IsFloat[T]() {
		return T(v)
	}
	if math.IsNaN(v) {
		return 0
	}
	lo, hi := intRange[T]()
	r := math.Round(v)
	if r < lo {
		r = lo
	} else if r > hi {
		r = hi
	}
	return FromFloat[T](r)
}

// Clamp returns x limited to [lo, hi].
func Clamp[T Type](x, lo, hi T) T {
	return min(max(x, lo), hi)
}

// Abs returns the absolute value of x. Unsigned values are returned as is.
func Abs[T Type](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
