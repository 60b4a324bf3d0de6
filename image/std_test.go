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
	stdimage "image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testNRGBA(w, h int) *stdimage.NRGBA {
	img := stdimage.NewNRGBA(stdimage.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 30),
				G: uint8(y * 40),
				B: uint8((x + y) * 10),
				A: uint8(200 + x),
			})
		}
	}
	return img
}

func TestFromImage_RGBA(t *testing.T) {
	src := testNRGBA(5, 3)
	b, err := FromImage[uint8](src, 4)
	if err != nil {
		t.Fatalf("FromImage: %v", err)
	}
	if b.Width() != 5 || b.Height() != 3 || b.Channels() != 4 {
		t.Fatalf("dims: %dx%dx%d", b.Width(), b.Height(), b.Channels())
	}
	if diff := cmp.Diff(src.Pix, b.Data()); diff != "" {
		t.Errorf("samples (-want +got):\n%s", diff)
	}
}

func TestFromImage_RGBFloat(t *testing.T) {
	src := testNRGBA(4, 4)
	b, err := FromImage[float32](src, 3)
	if err != nil {
		t.Fatalf("FromImage: %v", err)
	}
	px := b.Pixel(3, 2)
	want := []float32{90, 80, 50}
	if diff := cmp.Diff(want, px); diff != "" {
		t.Errorf("Pixel(3,2) (-want +got):\n%s", diff)
	}
}

func TestFromImage_Gray(t *testing.T) {
	src := stdimage.NewGray(stdimage.Rect(0, 0, 3, 2))
	copy(src.Pix, []uint8{0, 50, 100, 150, 200, 250})
	b, err := FromImage[int16](src, 1)
	if err != nil {
		t.Fatalf("FromImage: %v", err)
	}
	if diff := cmp.Diff([]int16{0, 50, 100, 150, 200, 250}, b.Data()); diff != "" {
		t.Errorf("samples (-want +got):\n%s", diff)
	}
}

func TestFromImage_OffsetBounds(t *testing.T) {
	full := testNRGBA(6, 6)
	sub := full.SubImage(stdimage.Rect(2, 3, 5, 6))
	b, err := FromImage[uint8](sub, 4)
	if err != nil {
		t.Fatalf("FromImage: %v", err)
	}
	if b.Width() != 3 || b.Height() != 3 {
		t.Fatalf("dims: %dx%d", b.Width(), b.Height())
	}
	want := full.NRGBAAt(2, 3)
	px := b.Pixel(0, 0)
	if px[0] != want.R || px[1] != want.G || px[2] != want.B || px[3] != want.A {
		t.Errorf("Pixel(0,0) = %v, want %v", px, want)
	}
}

func TestFromImage_Errors(t *testing.T) {
	src := testNRGBA(2, 2)
	if _, err := FromImage[uint8](src, 2); !errors.Is(err, ErrChannels) {
		t.Errorf("channels=2: got %v, want ErrChannels", err)
	}
	if _, err := FromImage[uint8](nil, 3); !errors.Is(err, ErrEmpty) {
		t.Errorf("nil src: got %v, want ErrEmpty", err)
	}
	empty := stdimage.NewNRGBA(stdimage.Rect(0, 0, 0, 0))
	if _, err := FromImage[uint8](empty, 3); !errors.Is(err, ErrEmpty) {
		t.Errorf("empty src: got %v, want ErrEmpty", err)
	}
}

func TestFromImageScaled(t *testing.T) {
	src := stdimage.NewNRGBA(stdimage.Rect(0, 0, 8, 8))
	for i := range src.Pix {
		src.Pix[i] = 128
		if i%4 == 3 {
			src.Pix[i] = 255
		}
	}
	b, err := FromImageScaled[uint8](src, 3, 5, 3)
	if err != nil {
		t.Fatalf("FromImageScaled: %v", err)
	}
	if b.Width() != 3 || b.Height() != 5 || b.Channels() != 3 {
		t.Fatalf("dims: %dx%dx%d", b.Width(), b.Height(), b.Channels())
	}
	// A flat source stays flat under resampling.
	for i, v := range b.Data() {
		if v < 127 || v > 129 {
			t.Fatalf("sample %d = %d, want ~128", i, v)
		}
	}
	if _, err := FromImageScaled[uint8](src, 0, 5, 3); !errors.Is(err, ErrEmpty) {
		t.Errorf("zero width: got %v, want ErrEmpty", err)
	}
}

func TestToImage_RoundTrip(t *testing.T) {
	src := testNRGBA(4, 3)
	for _, channels := range []int{1, 3, 4} {
		b, err := FromImage[uint8](src, channels)
		if err != nil {
			t.Fatalf("FromImage(%d): %v", channels, err)
		}
		img, err := b.ToImage()
		if err != nil {
			t.Fatalf("ToImage(%d): %v", channels, err)
		}
		back, err := FromImage[uint8](img, channels)
		if err != nil {
			t.Fatalf("FromImage again(%d): %v", channels, err)
		}
		if diff := cmp.Diff(b.Data(), back.Data()); diff != "" {
			t.Errorf("channels=%d round trip (-want +got):\n%s", channels, diff)
		}
	}
}

func TestToImage_Saturates(t *testing.T) {
	b := New[float32](2, 1, 3)
	copy(b.Data(), []float32{-20, 128.4, 300, 0, 255, 254.6})
	img, err := b.ToImage()
	if err != nil {
		t.Fatalf("ToImage: %v", err)
	}
	n := img.(*stdimage.NRGBA)
	want := []uint8{0, 128, 255, 255, 0, 255, 255, 255}
	if diff := cmp.Diff(want, n.Pix); diff != "" {
		t.Errorf("Pix (-want +got):\n%s", diff)
	}
}

func TestToImage_Errors(t *testing.T) {
	if _, err := NewEmpty[uint8]().ToImage(); !errors.Is(err, ErrEmpty) {
		t.Errorf("empty: got %v, want ErrEmpty", err)
	}
	if _, err := New[uint8](2, 2, 2).ToImage(); !errors.Is(err, ErrChannels) {
		t.Errorf("2 channels: got %v, want ErrChannels", err)
	}
}
