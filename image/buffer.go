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

package image

import (
	"errors"
	"fmt"
	stdimage "image"
	"math"
	"math/bits"

	"github.com/ajroetker/go-pixcore/internal/assert"
	"github.com/ajroetker/go-pixcore/sample"
)

// Common errors for buffer operations.
var (
	// ErrOutOfBounds is returned by the checked accessors when a coordinate
	// or linear index falls outside the buffer.
	ErrOutOfBounds = errors.New("image: coordinates out of bounds")

	// ErrChannels is returned when an operation does not support the
	// buffer's channel count.
	ErrChannels = errors.New("image: unsupported channel count")

	// ErrEmpty is returned when an operation needs at least one sample.
	ErrEmpty = errors.New("image: empty image")
)

// noCopy makes go vet report value copies of the struct embedding it.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Buffer is a row-major, interleaved-channel pixel buffer.
//
// The zero value is an empty 0x0x0 buffer with no storage.
//
// Thread safety: concurrent reads are safe once the buffer is filled.
// Mutation (including Swap and Release) requires external synchronization.
type Buffer[T sample.Type] struct {
	_ noCopy

	data     []T
	width    int
	height   int
	channels int
	alloc    Allocator[T]
}

// New creates a buffer of width*height*channels samples using the heap.
// Negative dimensions are a contract violation. Sample values are
// unspecified until written.
func New[T sample.Type](width, height, channels int) *Buffer[T] {
	return NewWithAllocator[T](width, height, channels, nil)
}

// NewWithAllocator is New with storage obtained from alloc. A nil alloc
// means the heap. Storage goes back to alloc exactly once, on Release.
func NewWithAllocator[T sample.Type](width, height, channels int, alloc Allocator[T]) *Buffer[T] {
	assert.That(width >= 0 && height >= 0 && channels >= 0,
		"image: invalid dimensions %dx%dx%d", width, height, channels)

	n, ok := sampleCount(width, height, channels)
	assert.That(ok, "image: dimensions %dx%dx%d overflow int", width, height, channels)

	b := &Buffer[T]{
		width:    width,
		height:   height,
		channels: channels,
		alloc:    alloc,
	}
	if n > 0 {
		b.data = b.allocator().Alloc(n)
		assert.That(len(b.data) == n, "image: allocator returned %d samples, want %d", len(b.data), n)
	}
	return b
}

// sampleCount returns width*height*channels, or false if it does not fit
// in an int. Dimensions must be non-negative.
func sampleCount(width, height, channels int) (int, bool) {
	hi, n := bits.Mul(uint(width), uint(height))
	if hi != 0 {
		return 0, false
	}
	hi, n = bits.Mul(n, uint(channels))
	if hi != 0 || n > math.MaxInt {
		return 0, false
	}
	return int(n), true
}

// NewEmpty returns an empty 0x0x0 buffer.
func NewEmpty[T sample.Type]() *Buffer[T] {
	return &Buffer[T]{}
}

func (b *Buffer[T]) allocator() Allocator[T] {
	if b.alloc == nil {
		return HeapAllocator[T]{}
	}
	return b.alloc
}

// Clone returns a deep copy of b. The copy uses b's allocator and shares no
// storage with b.
func (b *Buffer[T]) Clone() *Buffer[T] {
	c := NewWithAllocator[T](b.width, b.height, b.channels, b.alloc)
	copy(c.data, b.data)
	return c
}

// Release hands the storage back to the allocator and leaves b as an empty
// 0x0x0 buffer. Releasing an empty buffer is a no-op.
func (b *Buffer[T]) Release() {
	if b.data != nil {
		b.allocator().Free(b.data)
	}
	b.data = nil
	b.width, b.height, b.channels = 0, 0, 0
}

// Swap exchanges dimensions, storage and allocator of b and other in O(1).
// No sample data is copied.
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.data, other.data = other.data, b.data
	b.width, other.width = other.width, b.width
	b.height, other.height = other.height, b.height
	b.channels, other.channels = other.channels, b.channels
	b.alloc, other.alloc = other.alloc, b.alloc
}

// Width returns the width in pixels.
func (b *Buffer[T]) Width() int {
	return b.width
}

// Height returns the height in pixels.
func (b *Buffer[T]) Height() int {
	return b.height
}

// Channels returns the number of samples per pixel.
func (b *Buffer[T]) Channels() int {
	return b.channels
}

// Len returns the number of samples, width*height*channels.
func (b *Buffer[T]) Len() int {
	return len(b.data)
}

// Data returns the backing storage. Writes through it modify the buffer.
func (b *Buffer[T]) Data() []T {
	return b.data
}

// Bounds returns the pixel rectangle (0,0)-(width,height).
func (b *Buffer[T]) Bounds() stdimage.Rectangle {
	return stdimage.Rect(0, 0, b.width, b.height)
}

func (b *Buffer[T]) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height && b.channels > 0
}

// Offset returns the linear index of channel 0 of pixel (x, y).
func (b *Buffer[T]) Offset(x, y int) int {
	assert.That(b.inBounds(x, y), "image: pixel (%d,%d) out of bounds %dx%dx%d",
		x, y, b.width, b.height, b.channels)
	return (y*b.width + x) * b.channels
}

// At returns a pointer to channel 0 of pixel (x, y). The remaining channels
// follow it in Data; Pixel returns them as a slice.
func (b *Buffer[T]) At(x, y int) *T {
	return &b.data[b.Offset(x, y)]
}

// Index returns a pointer to sample i of the backing storage.
func (b *Buffer[T]) Index(i int) *T {
	assert.That(i >= 0 && i < len(b.data), "image: index %d out of bounds [0,%d)", i, len(b.data))
	return &b.data[i]
}

// Pixel returns the channels of pixel (x, y). The slice capacity is capped
// at the channel count, so appending never overwrites the next pixel.
func (b *Buffer[T]) Pixel(x, y int) []T {
	o := b.Offset(x, y)
	end := o + b.channels
	return b.data[o:end:end]
}

// Row returns the samples of row y, width*channels long.
func (b *Buffer[T]) Row(y int) []T {
	assert.That(y >= 0 && y < b.height, "image: row %d out of bounds [0,%d)", y, b.height)
	n := b.width * b.channels
	start := y * n
	return b.data[start : start+n : start+n]
}

// Lookup is the checked form of At.
func (b *Buffer[T]) Lookup(x, y int) (*T, error) {
	if !b.inBounds(x, y) {
		return nil, fmt.Errorf("%w: pixel (%d,%d) in %dx%dx%d",
			ErrOutOfBounds, x, y, b.width, b.height, b.channels)
	}
	return &b.data[(y*b.width+x)*b.channels], nil
}

// LookupIndex is the checked form of Index.
func (b *Buffer[T]) LookupIndex(i int) (*T, error) {
	if i < 0 || i >= len(b.data) {
		return nil, fmt.Errorf("%w: index %d in [0,%d)", ErrOutOfBounds, i, len(b.data))
	}
	return &b.data[i], nil
}

// Fill sets every sample to v.
func (b *Buffer[T]) Fill(v T) {
	for i := range b.data {
		b.data[i] = v
	}
}

// Clear sets every sample to zero.
func (b *Buffer[T]) Clear() {
	clear(b.data)
}

// SameShape reports whether a and b have equal width, height and channels.
func SameShape[T, U sample.Type](a *Buffer[T], b *Buffer[U]) bool {
	return a.width == b.width && a.height == b.height && a.channels == b.channels
}
