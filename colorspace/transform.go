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
	"github.com/ajroetker/go-pixcore/internal/assert"
	"github.com/ajroetker/go-pixcore/sample"
)

// Func converts one src triplet into dst. dst and src may alias.
type Func[T sample.Type] func(dst, src []T)

func checkTriplet(dst, src int) {
	assert.That(dst >= 3 && src >= 3, "colorspace: triplet too short (dst %d, src %d)", dst, src)
}

// RGBToYCbCr converts RGB to video-range YCbCr:
//
//	Y  =  0.257*R + 0.504*G + 0.098*B + 16
//	Cb = -0.148*R - 0.291*G + 0.439*B + 128
//	Cr =  0.439*R - 0.368*G - 0.071*B + 128
func RGBToYCbCr[T sample.Type](ycbcr, rgb []T) {
	checkTriplet(len(ycbcr), len(rgb))
	r, g, b := float64(rgb[0]), float64(rgb[1]), float64(rgb[2])

	y := YCC_RtoY*r + YCC_GtoY*g + YCC_BtoY*b + YCC_LumaOffset
	cb := YCC_RtoCb*r + YCC_GtoCb*g + YCC_BtoCb*b + YCC_ChromaOffset
	cr := YCC_RtoCr*r + YCC_GtoCr*g + YCC_BtoCr*b + YCC_ChromaOffset

	ycbcr[0] = sample.FromFloat[T](y)
	ycbcr[1] = sample.FromFloat[T](cb)
	ycbcr[2] = sample.FromFloat[T](cr)
}

// YCbCrToRGB converts video-range YCbCr back to RGB with the BT.601 inverse:
//
//	Y' = 1.164*(Y-16), or 0 when Y <= 16
//	R  = Y' + 1.596*(Cr-128)
//	G  = Y' - 0.391*(Cb-128) - 0.813*(Cr-128)
//	B  = Y' + 2.018*(Cb-128)
//
// Luma below the video black level contributes nothing rather than a
// negative offset.
func YCbCrToRGB[T sample.Type](rgb, ycbcr []T) {
	checkTriplet(len(rgb), len(ycbcr))
	y := float64(ycbcr[0])
	cb := float64(ycbcr[1]) - YCC_ChromaOffset
	cr := float64(ycbcr[2]) - YCC_ChromaOffset

	var luma float64
	if y > YCC_LumaOffset {
		luma = YCC_LumaScale * (y - YCC_LumaOffset)
	}

	rgb[0] = sample.FromFloat[T](luma + YCC_CrtoR*cr)
	rgb[1] = sample.FromFloat[T](luma + YCC_CbtoG*cb + YCC_CrtoG*cr)
	rgb[2] = sample.FromFloat[T](luma + YCC_CbtoB*cb)
}

// RGBToYUV converts RGB to full-range YUV. U and V are signed and centered
// on zero, so unsigned sample types cannot hold them.
//
//	Y =  0.299*R + 0.587*G + 0.114*B
//	U = -0.169*R - 0.331*G + 0.500*B
//	V =  0.500*R - 0.419*G - 0.081*B
func RGBToYUV[T sample.Type](yuv, rgb []T) {
	checkTriplet(len(yuv), len(rgb))
	r, g, b := float64(rgb[0]), float64(rgb[1]), float64(rgb[2])

	y := YUV_RtoY*r + YUV_GtoY*g + YUV_BtoY*b
	u := YUV_RtoU*r + YUV_GtoU*g + YUV_BtoU*b
	v := YUV_RtoV*r + YUV_GtoV*g + YUV_BtoV*b

	yuv[0] = sample.FromFloat[T](y)
	yuv[1] = sample.FromFloat[T](u)
	yuv[2] = sample.FromFloat[T](v)
}

// YUVToRGB converts full-range YUV back to RGB:
//
//	R = Y + 1.402*V
//	G = Y - 0.344*U - 0.714*V
//	B = Y + 1.772*U
func YUVToRGB[T sample.Type](rgb, yuv []T) {
	checkTriplet(len(rgb), len(yuv))
	y, u, v := float64(yuv[0]), float64(yuv[1]), float64(yuv[2])

	rgb[0] = sample.FromFloat[T](y + YUV_VtoR*v)
	rgb[1] = sample.FromFloat[T](y + YUV_UtoG*u + YUV_VtoG*v)
	rgb[2] = sample.FromFloat[T](y + YUV_UtoB*u)
}

// ForwardRCT applies the JPEG 2000 Reversible Color Transform:
//
//	Y  = (R + 2*G + B) >> 2
//	Cb = B - G
//	Cr = R - G
//
// The transform is lossless: InverseRCT recovers the input exactly as long
// as the results fit in T.
func ForwardRCT[T sample.SignedInts](ycbcr, rgb []T) {
	checkTriplet(len(ycbcr), len(rgb))
	r, g, b := int64(rgb[0]), int64(rgb[1]), int64(rgb[2])

	ycbcr[0] = T((r + 2*g + b) >> 2)
	ycbcr[1] = T(b - g)
	ycbcr[2] = T(r - g)
}

// InverseRCT undoes ForwardRCT:
//
//	G = Y - ((Cb + Cr) >> 2)
//	R = Cr + G
//	B = Cb + G
func InverseRCT[T sample.SignedInts](rgb, ycbcr []T) {
	checkTriplet(len(rgb), len(ycbcr))
	y, cb, cr := int64(ycbcr[0]), int64(ycbcr[1]), int64(ycbcr[2])

	g := y - ((cb + cr) >> 2)
	rgb[0] = T(cr + g)
	rgb[1] = T(g)
	rgb[2] = T(cb + g)
}

// ForwardICT applies the JPEG 2000 Irreversible Color Transform
// (ITU-T T.800 Table G.2). Chroma is centered on zero.
func ForwardICT[T sample.Floats](ycbcr, rgb []T) {
	checkTriplet(len(ycbcr), len(rgb))
	r, g, b := float64(rgb[0]), float64(rgb[1]), float64(rgb[2])

	y := ICT_RtoY*r + ICT_GtoY*g + ICT_BtoY*b
	cb := ICT_RtoCb*r + ICT_GtoCb*g + ICT_BtoCb*b
	cr := ICT_RtoCr*r + ICT_GtoCr*g + ICT_BtoCr*b

	ycbcr[0] = T(y)
	ycbcr[1] = T(cb)
	ycbcr[2] = T(cr)
}

// InverseICT undoes ForwardICT.
func InverseICT[T sample.Floats](rgb, ycbcr []T) {
	checkTriplet(len(rgb), len(ycbcr))
	y, cb, cr := float64(ycbcr[0]), float64(ycbcr[1]), float64(ycbcr[2])

	rgb[0] = T(y + ICT_CrtoR*cr)
	rgb[1] = T(y + ICT_CbtoG*cb + ICT_CrtoG*cr)
	rgb[2] = T(y + ICT_CbtoB*cb)
}
