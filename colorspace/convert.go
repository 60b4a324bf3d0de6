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

	pixcore "github.com/ajroetker/go-pixcore"
	"github.com/ajroetker/go-pixcore/image"
	"github.com/ajroetker/go-pixcore/parallel"
	"github.com/ajroetker/go-pixcore/sample"
)

// ErrShape is returned when source and destination buffers differ in
// width, height or channel count.
var ErrShape = errors.New("colorspace: buffer shapes differ")

// Convert applies fn to the first three channels of every pixel of src and
// stores the results in dst. Channels past the third (alpha, for example)
// are copied unchanged. dst and src may be the same buffer.
func Convert[T sample.Type](dst, src *image.Buffer[T], fn Func[T]) error {
	if err := checkBuffers(dst, src); err != nil {
		return err
	}
	convertRows(dst, src, fn, 0, src.Height())
	return nil
}

// ConvertParallel is Convert with rows claimed in batches by the workers of
// pool. It produces the same output as Convert. A nil pool, or
// PIXCORE_NO_PARALLEL set, runs on the calling goroutine.
func ConvertParallel[T sample.Type](pool *parallel.Pool, dst, src *image.Buffer[T], fn Func[T]) error {
	if err := checkBuffers(dst, src); err != nil {
		return err
	}
	if pool == nil || parallel.Disabled() {
		pixcore.Logger().Debug("colorspace: sequential conversion", "rows", src.Height(), "pool", pool != nil)
		convertRows(dst, src, fn, 0, src.Height())
		return nil
	}
	batch := rowBatch(src.Height(), pool.NumWorkers())
	pixcore.Logger().Debug("colorspace: parallel conversion",
		"rows", src.Height(), "workers", pool.NumWorkers(), "batch", batch)
	pool.ParallelForBatched(src.Height(), batch, func(start, end int) {
		convertRows(dst, src, fn, start, end)
	})
	return nil
}

// rowBatch gives each worker about four batches of rows to claim.
func rowBatch(rows, workers int) int {
	return max(1, rows/(4*max(1, workers)))
}

func checkBuffers[T sample.Type](dst, src *image.Buffer[T]) error {
	if !image.SameShape(dst, src) {
		return fmt.Errorf("%w: dst %dx%dx%d, src %dx%dx%d", ErrShape,
			dst.Width(), dst.Height(), dst.Channels(),
			src.Width(), src.Height(), src.Channels())
	}
	if src.Len() > 0 && src.Channels() < 3 {
		return fmt.Errorf("%w: %d (want at least 3)", image.ErrChannels, src.Channels())
	}
	return nil
}

func convertRows[T sample.Type](dst, src *image.Buffer[T], fn Func[T], y0, y1 int) {
	c := src.Channels()
	for y := y0; y < y1; y++ {
		in := src.Row(y)
		out := dst.Row(y)
		for i := 0; i < len(in); i += c {
			fn(out[i:i+3], in[i:i+3])
			if c > 3 {
				copy(out[i+3:i+c], in[i+3:i+c])
			}
		}
	}
}
