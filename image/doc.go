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

// Package image provides Buffer, a dense interleaved pixel buffer generic
// over the sample type.
//
// A Buffer of width W, height H and C channels owns exactly W*H*C samples.
// Pixel (x, y) occupies the C consecutive samples starting at (y*W+x)*C;
// rows are stored top to bottom with no padding between them.
//
// Buffers are not meant to be copied by value: ownership moves only through
// Clone (a deep copy) or Swap (an O(1) exchange of two buffers' contents).
// go vet's copylocks check reports accidental value copies.
//
// Example usage:
//
//	buf := image.New[uint8](640, 480, 3)
//	for y := range buf.Height() {
//	    for x := range buf.Width() {
//	        px := buf.Pixel(x, y)
//	        px[0], px[1], px[2] = 255, 0, 0
//	    }
//	}
//
// # Bounds checking
//
// At, Index, Pixel, Row and Offset treat out-of-range coordinates as
// contract violations and panic. Lookup and LookupIndex are the checked
// variants and report ErrOutOfBounds instead.
package image
