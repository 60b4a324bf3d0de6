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
	"fmt"
	stdimage "image"

	xdraw "golang.org/x/image/draw"

	"github.com/ajroetker/go-pixcore/sample"
)

// FromImage copies src into a new buffer with 1 (gray), 3 (RGB) or 4
// (non-premultiplied RGBA) channels. Samples land on the 0..255 scale for
// every T. Sources in other color models are converted on the way.
func FromImage[T sample.Type](src stdimage.Image, channels int) (*Buffer[T], error) {
	if src == nil {
		return nil, ErrEmpty
	}
	r := src.Bounds()
	return fromImage[T](src, r.Dx(), r.Dy(), channels, false)
}

// FromImageScaled is FromImage with src resampled to width x height using
// Catmull-Rom interpolation.
func FromImageScaled[T sample.Type](src stdimage.Image, width, height, channels int) (*Buffer[T], error) {
	if src == nil {
		return nil, ErrEmpty
	}
	return fromImage[T](src, width, height, channels, true)
}

func fromImage[T sample.Type](src stdimage.Image, width, height, channels int, scale bool) (*Buffer[T], error) {
	if channels != 1 && channels != 3 && channels != 4 {
		return nil, fmt.Errorf("%w: %d (want 1, 3 or 4)", ErrChannels, channels)
	}
	if width <= 0 || height <= 0 || src.Bounds().Empty() {
		return nil, ErrEmpty
	}

	dr := stdimage.Rect(0, 0, width, height)
	var (
		dst    xdraw.Image
		pix    []uint8
		stride int
		step   int
	)
	if channels == 1 {
		g := stdimage.NewGray(dr)
		dst, pix, stride, step = g, g.Pix, g.Stride, 1
	} else {
		n := stdimage.NewNRGBA(dr)
		dst, pix, stride, step = n, n.Pix, n.Stride, 4
	}

	if scale {
		xdraw.CatmullRom.Scale(dst, dr, src, src.Bounds(), xdraw.Src, nil)
	} else {
		xdraw.Copy(dst, stdimage.Point{}, src, src.Bounds(), xdraw.Src, nil)
	}

	b := New[T](width, height, channels)
	for y := 0; y < height; y++ {
		in := pix[y*stride:]
		out := b.Row(y)
		for x := 0; x < width; x++ {
			for c := 0; c < channels; c++ {
				out[x*channels+c] = T(in[x*step+c])
			}
		}
	}
	return b, nil
}

// ToImage copies b into an *image.Gray (1 channel) or *image.NRGBA
// (3 or 4 channels; alpha is opaque for 3). Samples are saturated to uint8.
func (b *Buffer[T]) ToImage() (stdimage.Image, error) {
	if len(b.data) == 0 {
		return nil, ErrEmpty
	}

	r := b.Bounds()
	switch b.channels {
	case 1:
		g := stdimage.NewGray(r)
		for y := 0; y < b.height; y++ {
			row := b.Row(y)
			out := g.Pix[y*g.Stride:]
			for x, v := range row {
				out[x] = sample.Saturate[uint8](float64(v))
			}
		}
		return g, nil
	case 3, 4:
		n := stdimage.NewNRGBA(r)
		for y := 0; y < b.height; y++ {
			row := b.Row(y)
			out := n.Pix[y*n.Stride:]
			for x := 0; x < b.width; x++ {
				px := row[x*b.channels:]
				o := out[x*4:]
				o[0] = sample.Saturate[uint8](float64(px[0]))
				o[1] = sample.Saturate[uint8](float64(px[1]))
				o[2] = sample.Saturate[uint8](float64(px[2]))
				o[3] = 255
				if b.channels == 4 {
					o[3] = sample.Saturate[uint8](float64(px[3]))
				}
			}
		}
		return n, nil
	default:
		return nil, fmt.Errorf("%w: %d (want 1, 3 or 4)", ErrChannels, b.channels)
	}
}
