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

// Package fileio holds the small file helpers codecs built on this module
// need: open/close, size, seek/tell, and raw sample dumps.
package fileio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	pixcore "github.com/ajroetker/go-pixcore"
	"github.com/ajroetker/go-pixcore/image"
	"github.com/ajroetker/go-pixcore/sample"
)

// ErrSize is returned when a raw file's length does not match the
// requested dimensions.
var ErrSize = errors.New("fileio: size mismatch")

// Open opens path for reading.
func Open(path string) (*os.File, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("fileio: open: %w", err)
	}
	return f, nil
}

// Create creates or truncates path for writing.
func Create(path string) (*os.File, error) {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("fileio: create: %w", err)
	}
	return f, nil
}

// Close closes *f and sets it to nil. A nil handle is a no-op, so Close is
// safe to defer and to call again on the same handle.
func Close(f **os.File) error {
	if f == nil || *f == nil {
		return nil
	}
	err := (*f).Close()
	*f = nil
	return err
}

// Seek sets the offset for the next read or write, as io.Seeker.
func Seek(f *os.File, offset int64, whence int) (int64, error) {
	return f.Seek(offset, whence)
}

// Tell returns the current offset.
func Tell(f *os.File) (int64, error) {
	return f.Seek(0, io.SeekCurrent)
}

// ReadRaw reads a headerless file of width*height*channels 8-bit samples,
// interleaved and row-major, into a new buffer.
func ReadRaw[T sample.Type](path string, width, height, channels int) (*image.Buffer[T], error) {
	if width < 0 || height < 0 || channels < 0 {
		return nil, fmt.Errorf("%w: negative dimensions %dx%dx%d", ErrSize, width, height, channels)
	}

	f, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := Close(&f); err != nil {
			pixcore.Logger().Warn("fileio: close after read", "path", path, "err", err)
		}
	}()

	size, err := Size(f)
	if err != nil {
		return nil, err
	}
	want := int64(width) * int64(height) * int64(channels)
	if size != want {
		return nil, fmt.Errorf("%w: %s is %d bytes, want %d for %dx%dx%d",
			ErrSize, path, size, want, width, height, channels)
	}

	raw := make([]byte, want)
	if _, err := io.ReadFull(f, raw); err != nil {
		return nil, fmt.Errorf("fileio: read %s: %w", path, err)
	}

	b := image.New[T](width, height, channels)
	data := b.Data()
	for i, v := range raw {
		data[i] = T(v)
	}
	return b, nil
}

// WriteRaw writes b's samples to path as headerless 8-bit values,
// saturated to [0,255].
func WriteRaw[T sample.Type](path string, b *image.Buffer[T]) error {
	raw := make([]byte, b.Len())
	for i, v := range b.Data() {
		raw[i] = sample.Saturate[uint8](float64(v))
	}

	f, err := Create(path)
	if err != nil {
		return err
	}
	if _, err := f.Write(raw); err != nil {
		if cerr := Close(&f); cerr != nil {
			pixcore.Logger().Warn("fileio: close after failed write", "path", path, "err", cerr)
		}
		return fmt.Errorf("fileio: write %s: %w", path, err)
	}
	return Close(&f)
}
