// Copyright 2026 The go-pixcore Authors. SPDX-License-Identifier: Apache-2.0

// Package parallel provides a persistent worker pool for splitting pixel
// loops across goroutines. A Pool is created once and reused for many
// conversions, so each call pays neither goroutine spawn nor channel
// allocation.
//
// Usage:
//
//	pool := parallel.New(0) // DefaultWorkers()
//	defer pool.Close()
//
//	pool.ParallelFor(img.Height(), func(start, end int) {
//	    for y := start; y < end; y++ {
//	        processRow(img.Row(y))
//	    }
//	})
package parallel

import (
	"os"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once at creation
// and serve every ParallelFor call until Close.
type Pool struct {
	numWorkers int
	workC      chan task

	// mu guards closed and the send side of workC: dispatchers hold the
	// read lock while sending, Close takes the write lock.
	mu     sync.RWMutex
	closed bool
}

type task struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with numWorkers goroutines.
// If numWorkers <= 0, uses DefaultWorkers.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = DefaultWorkers()
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan task, numWorkers*2),
	}
	for i := 0; i < numWorkers; i++ {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for t := range p.workC {
		t.fn()
		t.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the workers once pending work completes.
// Calling Close multiple times, or concurrently with ParallelFor, is safe.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.closed = true
		close(p.workC)
	}
}

// ParallelFor calls fn over [0, n) split into one contiguous range per
// worker and blocks until all ranges are done. A closed pool runs fn(0, n)
// on the caller's goroutine.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	workers := min(p.numWorkers, n)
	if workers == 1 {
		fn(0, n)
		return
	}
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		start := i * chunk
		if start >= n {
			break
		}
		end := min(start+chunk, n)
		wg.Add(1)
		p.workC <- task{
			fn:      func() { fn(start, end) },
			barrier: &wg,
		}
	}
	p.mu.RUnlock()
	wg.Wait()
}

// ParallelForBatched calls fn over [0, n) in batches of batchSize claimed
// with an atomic counter, which balances uneven per-item cost.
// batchSize <= 0 means 1.
func (p *Pool) ParallelForBatched(n, batchSize int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if batchSize <= 0 {
		batchSize = 1
	}

	numBatches := (n + batchSize - 1) / batchSize
	workers := min(p.numWorkers, numBatches)
	if workers == 1 {
		fn(0, n)
		return
	}
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		fn(0, n)
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		p.workC <- task{
			fn: func() {
				for {
					start := int(next.Add(int64(batchSize))) - batchSize
					if start >= n {
						return
					}
					fn(start, min(start+batchSize, n))
				}
			},
			barrier: &wg,
		}
	}
	p.mu.RUnlock()
	wg.Wait()
}

// Disabled reports whether PIXCORE_NO_PARALLEL asks for sequential loops.
// Any non-empty value counts, unless it parses as a false boolean.
func Disabled() bool {
	val := os.Getenv("PIXCORE_NO_PARALLEL")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// DefaultWorkers returns PIXCORE_WORKERS when it holds a positive integer,
// and GOMAXPROCS otherwise.
func DefaultWorkers() int {
	if n, err := strconv.Atoi(os.Getenv("PIXCORE_WORKERS")); err == nil && n > 0 {
		return n
	}
	return runtime.GOMAXPROCS(0)
}
