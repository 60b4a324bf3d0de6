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

package colorspace

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ajroetker/go-pixcore/sample"
)

// ErrUnsupported is returned when no conversion exists between two spaces.
var ErrUnsupported = errors.New("colorspace: unsupported conversion")

// Space names a three-channel color encoding.
type Space int

const (
	// RGB is red, green, blue on the 0..255 scale.
	RGB Space = iota

	// YCbCr is BT.601 video-range luma and chroma.
	YCbCr

	// YUV is full-range luma with signed chroma.
	YUV
)

// String returns the lower-case name of the space.
func (s Space) String() string {
	switch s {
	case RGB:
		return "rgb"
	case YCbCr:
		return "ycbcr"
	case YUV:
		return "yuv"
	default:
		return "unknown"
	}
}

// ParseSpace parses a space name, ignoring case.
func ParseSpace(name string) (Space, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "rgb":
		return RGB, nil
	case "ycbcr", "ycc":
		return YCbCr, nil
	case "yuv":
		return YUV, nil
	default:
		return 0, fmt.Errorf("%w: unknown color space %q", ErrUnsupported, name)
	}
}

// Lookup returns the transform from one space to another. Converting a
// space to itself copies the triplet. YCbCr and YUV convert through RGB,
// with the intermediate stored in T.
func Lookup[T sample.Type](from, to Space) (Func[T], error) {
	toRGB, ok := toRGBFuncs[T]()[from]
	if !ok {
		return nil, fmt.Errorf("%w: %v to %v", ErrUnsupported, from, to)
	}
	fromRGB, ok := fromRGBFuncs[T]()[to]
	if !ok {
		return nil, fmt.Errorf("%w: %v to %v", ErrUnsupported, from, to)
	}

	switch {
	case from == to:
		return copyTriplet[T], nil
	case from == RGB:
		return fromRGB, nil
	case to == RGB:
		return toRGB, nil
	default:
		return func(dst, src []T) {
			var tmp [3]T
			toRGB(tmp[:], src)
			fromRGB(dst, tmp[:])
		}, nil
	}
}

func toRGBFuncs[T sample.Type]() map[Space]Func[T] {
	return map[Space]Func[T]{
		RGB:   copyTriplet[T],
		YCbCr: YCbCrToRGB[T],
		YUV:   YUVToRGB[T],
	}
}

func fromRGBFuncs[T sample.Type]() map[Space]Func[T] {
	return map[Space]Func[T]{
		RGB:   copyTriplet[T],
		YCbCr: RGBToYCbCr[T],
		YUV:   RGBToYUV[T],
	}
}

func copyTriplet[T sample.Type](dst, src []T) {
	checkTriplet(len(dst), len(src))
	copy(dst[:3], src[:3])
}
