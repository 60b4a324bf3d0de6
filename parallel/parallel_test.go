// Copyright 2026 The go-pixcore Authors. SPDX-License-Identifier: Apache-2.0

package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	t.Setenv("PIXCORE_WORKERS", "")
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestDefaultWorkersEnv(t *testing.T) {
	t.Setenv("PIXCORE_WORKERS", "3")
	if got := DefaultWorkers(); got != 3 {
		t.Errorf("DefaultWorkers() = %d, want 3", got)
	}
	t.Setenv("PIXCORE_WORKERS", "-2")
	if got := DefaultWorkers(); got != runtime.GOMAXPROCS(0) {
		t.Errorf("DefaultWorkers() with -2 = %d, want GOMAXPROCS", got)
	}
	t.Setenv("PIXCORE_WORKERS", "many")
	if got := DefaultWorkers(); got != runtime.GOMAXPROCS(0) {
		t.Errorf("DefaultWorkers() with junk = %d, want GOMAXPROCS", got)
	}
}

func TestDisabled(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"0", false},
		{"false", false},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Setenv("PIXCORE_NO_PARALLEL", tt.val)
		if got := Disabled(); got != tt.want {
			t.Errorf("Disabled() with %q = %v, want %v", tt.val, got, tt.want)
		}
	}
}

func TestParallelFor(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, n := range []int{1, 3, 4, 5, 100, 1081} {
		results := make([]int, n)
		pool.ParallelFor(n, func(start, end int) {
			for i := start; i < end; i++ {
				results[i] += i * 2
			}
		})
		for i := 0; i < n; i++ {
			if results[i] != i*2 {
				t.Fatalf("n=%d: results[%d] = %d, want %d", n, i, results[i], i*2)
			}
		}
	}
}

func TestParallelForZero(t *testing.T) {
	pool := New(2)
	defer pool.Close()

	called := false
	pool.ParallelFor(0, func(start, end int) { called = true })
	pool.ParallelForBatched(-1, 4, func(start, end int) { called = true })
	if called {
		t.Error("fn called for empty range")
	}
}

func TestParallelForBatched(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, batch := range []int{0, 1, 7, 64, 1000} {
		n := 333
		var count atomic.Int64
		seen := make([]atomic.Int32, n)
		pool.ParallelForBatched(n, batch, func(start, end int) {
			for i := start; i < end; i++ {
				seen[i].Add(1)
				count.Add(1)
			}
		})
		if count.Load() != int64(n) {
			t.Errorf("batch=%d: processed %d items, want %d", batch, count.Load(), n)
		}
		for i := range seen {
			if seen[i].Load() != 1 {
				t.Fatalf("batch=%d: item %d visited %d times", batch, i, seen[i].Load())
			}
		}
	}
}

func TestClosedPoolRunsSequentially(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close()

	var calls int
	pool.ParallelFor(50, func(start, end int) {
		calls++
		if start != 0 || end != 50 {
			t.Errorf("closed pool range = [%d,%d), want [0,50)", start, end)
		}
	})
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestCloseDuringParallelFor(t *testing.T) {
	for iter := 0; iter < 20; iter++ {
		pool := New(4)
		var wg sync.WaitGroup
		for g := 0; g < 8; g++ {
			g := g
			wg.Add(1)
			go func() {
				defer wg.Done()
				const n = 64
				var covered atomic.Int64
				if g%2 == 0 {
					pool.ParallelFor(n, func(start, end int) { covered.Add(int64(end - start)) })
				} else {
					pool.ParallelForBatched(n, 5, func(start, end int) { covered.Add(int64(end - start)) })
				}
				if got := covered.Load(); got != n {
					t.Errorf("goroutine %d covered %d items, want %d", g, got, n)
				}
			}()
		}
		pool.Close()
		wg.Wait()
	}
}
