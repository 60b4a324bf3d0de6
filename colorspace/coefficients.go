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

// YCbCr (ITU-R BT.601, video range) coefficients.

// Forward YCbCr coefficients: RGB → YCbCr
const (
	// Y = RtoY*R + GtoY*G + BtoY*B + LumaOffset
	YCC_RtoY = 0.257
	YCC_GtoY = 0.504
	YCC_BtoY = 0.098

	// Cb = RtoCb*R + GtoCb*G + BtoCb*B + ChromaOffset
	YCC_RtoCb = -0.148
	YCC_GtoCb = -0.291
	YCC_BtoCb = 0.439

	// Cr = RtoCr*R + GtoCr*G + BtoCr*B + ChromaOffset
	YCC_RtoCr = 0.439
	YCC_GtoCr = -0.368
	YCC_BtoCr = -0.071

	YCC_LumaOffset   = 16
	YCC_ChromaOffset = 128
)

// Inverse YCbCr coefficients: YCbCr → RGB, with Y' = LumaScale*(Y-16)
// floored at zero and Cb', Cr' centered on 128.
const (
	YCC_LumaScale = 1.164

	// R = Y' + CrtoR*Cr'
	YCC_CrtoR = 1.596

	// G = Y' + CbtoG*Cb' + CrtoG*Cr'
	YCC_CbtoG = -0.391
	YCC_CrtoG = -0.813

	// B = Y' + CbtoB*Cb'
	YCC_CbtoB = 2.018
)

// Forward YUV coefficients: RGB → YUV
const (
	YUV_RtoY = 0.299
	YUV_GtoY = 0.587
	YUV_BtoY = 0.114

	YUV_RtoU = -0.169
	YUV_GtoU = -0.331
	YUV_BtoU = 0.500

	YUV_RtoV = 0.500
	YUV_GtoV = -0.419
	YUV_BtoV = -0.081
)

// Inverse YUV coefficients: YUV → RGB
const (
	// R = Y + VtoR*V
	YUV_VtoR = 1.402

	// G = Y + UtoG*U + VtoG*V
	YUV_UtoG = -0.344
	YUV_VtoG = -0.714

	// B = Y + UtoB*U
	YUV_UtoB = 1.772
)

// ICT (Irreversible Color Transform) coefficients from ITU-T T.800 Table G.2.
const (
	ICT_RtoY = 0.299
	ICT_GtoY = 0.587
	ICT_BtoY = 0.114

	ICT_RtoCb = -0.16875
	ICT_GtoCb = -0.33126
	ICT_BtoCb = 0.5

	ICT_RtoCr = 0.5
	ICT_GtoCr = -0.41869
	ICT_BtoCr = -0.08131

	ICT_CrtoR = 1.402
	ICT_CbtoG = -0.344136
	ICT_CrtoG = -0.714136
	ICT_CbtoB = 1.772
)
