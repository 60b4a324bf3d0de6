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

import "github.com/ajroetker/go-pixcore/internal/assert"

// EdgeMode selects how out-of-range coordinates map back into a buffer.
type EdgeMode int

const (
	// EdgeClamp repeats the edge pixels.
	EdgeClamp EdgeMode = iota

	// EdgeMirror reflects at the boundaries (edge pixel repeated once).
	EdgeMirror

	// EdgeWrap tiles the buffer.
	EdgeWrap
)

// String returns a human-readable name for the edge mode.
func (m EdgeMode) String() string {
	switch m {
	case EdgeClamp:
		return "clamp"
	case EdgeMirror:
		return "mirror"
	case EdgeWrap:
		return "wrap"
	default:
		return "unknown"
	}
}

// Map returns index mapped into [0, size) according to m.
func (m EdgeMode) Map(index, size int) int {
	switch m {
	case EdgeMirror:
		return Mirror(index, size)
	case EdgeWrap:
		return Wrap(index, size)
	default:
		return Clamp(index, size)
	}
}

// PixelEdge returns the channels of pixel (x, y) with out-of-range
// coordinates mapped through mode. Used by filters that read past the
// border, such as chroma upsampling. The buffer must not be empty.
func (b *Buffer[T]) PixelEdge(x, y int, mode EdgeMode) []T {
	assert.That(b.width > 0 && b.height > 0 && b.channels > 0,
		"image: edge access on empty buffer %dx%dx%d", b.width, b.height, b.channels)
	return b.Pixel(mode.Map(x, b.width), mode.Map(y, b.height))
}

// Mirror returns the mirrored index for out-of-bounds coordinates.
// Given bounds [0, size), -1 maps to 0 and size maps to size-1.
func Mirror(index, size int) int {
	if size <= 0 {
		return 0
	}
	if index < 0 {
		index = -index - 1
	}
	if index >= size {
		period := 2 * size
		index %= period
		if index >= size {
			index = period - index - 1
		}
	}
	return index
}

// Clamp returns index clamped to [0, size-1].
func Clamp(index, size int) int {
	if size <= 0 || index < 0 {
		return 0
	}
	if index >= size {
		return size - 1
	}
	return index
}

// Wrap returns index wrapped to [0, size) using modulo.
func Wrap(index, size int) int {
	if size <= 0 {
		return 0
	}
	index %= size
	if index < 0 {
		index += size
	}
	return index
}
