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
	"sync"

	pixcore "github.com/ajroetker/go-pixcore"
	"github.com/ajroetker/go-pixcore/sample"
)

// Allocator supplies and reclaims the backing storage of a Buffer.
//
// Alloc must return a slice of exactly n samples whose contents may be
// arbitrary. Free receives each slice returned by Alloc at most once.
type Allocator[T sample.Type] interface {
	Alloc(n int) []T
	Free(s []T)
}

// HeapAllocator allocates with make and leaves reclamation to the GC.
type HeapAllocator[T sample.Type] struct{}

// Alloc returns a new zeroed slice of n samples.
func (HeapAllocator[T]) Alloc(n int) []T {
	return make([]T, n)
}

// Free is a no-op.
func (HeapAllocator[T]) Free([]T) {}

// PoolAllocator reuses storage between buffers of the same sample count.
//
// Freed slices are grouped by length and handed out again by Alloc, which
// reduces GC pressure for codecs that repeatedly decode same-sized frames.
// Reused storage is not cleared.
//
// Thread safety: all methods are safe for concurrent use.
type PoolAllocator[T sample.Type] struct {
	mu      sync.Mutex
	buckets map[int][][]T
	maxSize int // max slices per bucket
}

// NewPoolAllocator creates a pool that retains at most maxPerBucket slices
// of each length. A maxPerBucket of 0 means unlimited.
func NewPoolAllocator[T sample.Type](maxPerBucket int) *PoolAllocator[T] {
	return &PoolAllocator[T]{
		buckets: make(map[int][][]T),
		maxSize: maxPerBucket,
	}
}

// Alloc pops a retained slice of length n, or makes a new one.
func (p *PoolAllocator[T]) Alloc(n int) []T {
	p.mu.Lock()
	bucket := p.buckets[n]
	if len(bucket) > 0 {
		s := bucket[len(bucket)-1]
		bucket[len(bucket)-1] = nil
		p.buckets[n] = bucket[:len(bucket)-1]
		p.mu.Unlock()
		return s
	}
	p.mu.Unlock()

	return make([]T, n)
}

// Free retains s for reuse unless its bucket is full.
func (p *PoolAllocator[T]) Free(s []T) {
	if len(s) == 0 {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[len(s)]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		pixcore.Logger().Debug("image: pool bucket full, dropping storage", "len", len(s))
		return
	}
	p.buckets[len(s)] = append(bucket, s)
}

// Retained returns the number of slices currently held for reuse.
func (p *PoolAllocator[T]) Retained() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	total := 0
	for _, bucket := range p.buckets {
		total += len(bucket)
	}
	return total
}
