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

// Package colorspace converts pixel samples between RGB and luma/chroma
// encodings.
//
// Every transform takes a destination and a source triplet, in that order,
// reads src[0:3] and writes dst[0:3]. dst and src may be the same slice.
// The math runs in float64 and each result is stored through
// sample.FromFloat: integer sample types are rounded, and nothing is
// clamped. Keeping results inside the range of T (for example [0,255] for
// uint8) is the caller's job; see sample.Saturate.
//
// # Transforms
//
//	RGBToYCbCr / YCbCrToRGB  BT.601 video range (Y in [16,235], Cb/Cr in [16,240])
//	RGBToYUV   / YUVToRGB    full-range luma, signed U/V
//	ForwardRCT / InverseRCT  JPEG 2000 reversible transform (signed integers)
//	ForwardICT / InverseICT  JPEG 2000 irreversible transform (floats)
//
// # Whole buffers
//
// Convert applies a transform to the first three channels of every pixel
// of an image.Buffer; ConvertParallel does the same with rows split across
// a parallel.Pool.
//
//	rgb := image.New[uint8](1920, 1080, 3)
//	ycc := image.New[uint8](1920, 1080, 3)
//	if err := colorspace.Convert(ycc, rgb, colorspace.RGBToYCbCr[uint8]); err != nil {
//	    return err
//	}
package colorspace
