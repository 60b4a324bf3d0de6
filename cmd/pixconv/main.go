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

// Command pixconv converts pixels between color spaces.
//
// Usage:
//
//	pixconv -from rgb -to ycbcr -rgb 255,0,0                 # single triplet
//	pixconv -from rgb -to yuv -in frame.rgb -out frame.yuv -w 640 -h 480
//	pixconv -v -from yuv -to rgb -in frame.yuv -out back.rgb -w 640 -h 480   # debug logging
//
// Raw files are headerless interleaved 8-bit samples. Conversion runs in
// float32 and results are saturated to 0..255 on write. Channels past the
// third are copied unchanged. YUV files store U and V offset by 128 so
// negative chroma survives the 8-bit encoding; the offset is removed on read.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	pixcore "github.com/ajroetker/go-pixcore"
	"github.com/ajroetker/go-pixcore/colorspace"
	"github.com/ajroetker/go-pixcore/fileio"
	"github.com/ajroetker/go-pixcore/image"
	"github.com/ajroetker/go-pixcore/parallel"
)

var (
	fromSpace = flag.String("from", "rgb", "Source color space (rgb, ycbcr, yuv)")
	toSpace   = flag.String("to", "ycbcr", "Destination color space (rgb, ycbcr, yuv)")
	triplet   = flag.String("rgb", "", "Convert a single comma-separated triplet instead of a file")
	inFile    = flag.String("in", "", "Input raw file")
	outFile   = flag.String("out", "", "Output raw file")
	width     = flag.Int("w", 0, "Image width in pixels")
	height    = flag.Int("h", 0, "Image height in pixels")
	channels  = flag.Int("c", 3, "Interleaved channels per pixel (>= 3)")
	workers   = flag.Int("workers", 0, "Worker goroutines for file conversion (0: PIXCORE_WORKERS or GOMAXPROCS)")
	verbose   = flag.Bool("v", false, "Log debug diagnostics to stderr")
)

func main() {
	flag.Parse()

	if *verbose {
		pixcore.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	from, err := colorspace.ParseSpace(*fromSpace)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	to, err := colorspace.ParseSpace(*toSpace)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *triplet != "" {
		out, err := convertTriplet(*triplet, from, to)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(formatTriplet(out))
		return
	}

	if *inFile == "" || *outFile == "" {
		fmt.Fprintf(os.Stderr, "Error: -in and -out are required unless -rgb is given\n\n")
		flag.Usage()
		os.Exit(1)
	}
	if err := convertFile(*inFile, *outFile, *width, *height, *channels, *workers, from, to); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Converted %s (%dx%dx%d) from %v to %v into %s\n",
		*inFile, *width, *height, *channels, from, to, *outFile)
}

// parseTriplet parses "a,b,c" into three float64 samples.
func parseTriplet(s string) ([3]float64, error) {
	var t [3]float64
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return t, fmt.Errorf("triplet %q: want 3 comma-separated values, got %d", s, len(parts))
	}
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return t, fmt.Errorf("triplet %q: %w", s, err)
		}
		t[i] = v
	}
	return t, nil
}

func formatTriplet(t [3]float64) string {
	parts := make([]string, len(t))
	for i, v := range t {
		parts[i] = strconv.FormatFloat(v, 'f', 3, 64)
	}
	return strings.Join(parts, ",")
}

func convertTriplet(s string, from, to colorspace.Space) ([3]float64, error) {
	src, err := parseTriplet(s)
	if err != nil {
		return src, err
	}
	fn, err := colorspace.Lookup[float64](from, to)
	if err != nil {
		return src, err
	}
	var dst [3]float64
	fn(dst[:], src[:])
	return dst, nil
}

func convertFile(in, out string, w, h, c, numWorkers int, from, to colorspace.Space) error {
	fn, err := colorspace.Lookup[float32](from, to)
	if err != nil {
		return err
	}
	src, err := fileio.ReadRaw[float32](in, w, h, c)
	if err != nil {
		return err
	}
	defer src.Release()
	if from == colorspace.YUV {
		shiftChroma(src, -yuvChromaOffset)
	}

	dst := image.New[float32](w, h, c)
	defer dst.Release()

	pool := parallel.New(numWorkers)
	defer pool.Close()
	if err := colorspace.ConvertParallel(pool, dst, src, fn); err != nil {
		return err
	}
	if to == colorspace.YUV {
		shiftChroma(dst, yuvChromaOffset)
	}
	return fileio.WriteRaw(out, dst)
}

// yuvChromaOffset centers signed U and V in an 8-bit file sample.
const yuvChromaOffset = 128

// shiftChroma adds delta to channels 1 and 2 of every pixel of b.
func shiftChroma(b *image.Buffer[float32], delta float32) {
	data, c := b.Data(), b.Channels()
	for i := 0; i+2 < len(data); i += c {
		data[i+1] += delta
		data[i+2] += delta
	}
}
