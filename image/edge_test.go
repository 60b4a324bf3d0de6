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

import "testing"

func TestMirror(t *testing.T) {
	size := 5
	tests := []struct{ in, want int }{
		{0, 0}, {4, 4}, {-1, 0}, {-2, 1}, {5, 4}, {6, 3}, {10, 0}, {-6, 4},
	}
	for _, tt := range tests {
		if got := Mirror(tt.in, size); got != tt.want {
			t.Errorf("Mirror(%d, %d) = %d, want %d", tt.in, size, got, tt.want)
		}
	}
	if got := Mirror(3, 0); got != 0 {
		t.Errorf("Mirror(3, 0) = %d, want 0", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct{ in, want int }{
		{-3, 0}, {0, 0}, {2, 2}, {4, 4}, {9, 4},
	}
	for _, tt := range tests {
		if got := Clamp(tt.in, 5); got != tt.want {
			t.Errorf("Clamp(%d, 5) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestWrap(t *testing.T) {
	tests := []struct{ in, want int }{
		{-1, 4}, {0, 0}, {5, 0}, {7, 2}, {-6, 4},
	}
	for _, tt := range tests {
		if got := Wrap(tt.in, 5); got != tt.want {
			t.Errorf("Wrap(%d, 5) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestPixelEdge(t *testing.T) {
	b := New[uint8](3, 2, 1)
	copy(b.Data(), []uint8{
		1, 2, 3,
		4, 5, 6,
	})

	tests := []struct {
		mode EdgeMode
		x, y int
		want uint8
	}{
		{EdgeClamp, -1, 0, 1},
		{EdgeClamp, 3, 1, 6},
		{EdgeMirror, -2, 0, 2},
		{EdgeMirror, 1, 2, 5},
		{EdgeWrap, 3, 0, 1},
		{EdgeWrap, -1, -1, 6},
		{EdgeWrap, 1, 1, 5},
	}
	for _, tt := range tests {
		if got := b.PixelEdge(tt.x, tt.y, tt.mode)[0]; got != tt.want {
			t.Errorf("PixelEdge(%d, %d, %v) = %d, want %d", tt.x, tt.y, tt.mode, got, tt.want)
		}
	}

	mustViolate(t, "PixelEdge on empty", func() {
		NewEmpty[uint8]().PixelEdge(0, 0, EdgeClamp)
	})
}

func TestEdgeModeString(t *testing.T) {
	for mode, want := range map[EdgeMode]string{
		EdgeClamp:   "clamp",
		EdgeMirror:  "mirror",
		EdgeWrap:    "wrap",
		EdgeMode(9): "unknown",
	} {
		if got := mode.String(); got != want {
			t.Errorf("EdgeMode(%d).String() = %q, want %q", int(mode), got, want)
		}
	}
}
