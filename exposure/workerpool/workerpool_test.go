// Copyright 2025 The go-exposure Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"runtime"
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
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestParallelFor(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)

	pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})

	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestParallelForChunksCoversOnce(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 103
	var visits [103]atomic.Int32

	pool.ParallelForChunks(n, func(chunk, start, end int) {
		if chunk < 0 || chunk >= pool.NumWorkers() {
			t.Errorf("chunk index %d out of range", chunk)
		}
		for i := start; i < end; i++ {
			visits[i].Add(1)
		}
	})

	for i := range visits {
		if got := visits[i].Load(); got != 1 {
			t.Errorf("index %d visited %d times, want 1", i, got)
		}
	}
}

func TestParallelForChunksLocalMerge(t *testing.T) {
	pool := New(3)
	defer pool.Close()

	n := 1000
	locals := make([]int, pool.NumWorkers())

	pool.ParallelForChunks(n, func(chunk, start, end int) {
		locals[chunk] = end - start
	})

	total := 0
	for _, c := range locals {
		total += c
	}
	if total != n {
		t.Errorf("chunk sizes sum to %d, want %d", total, n)
	}
}

func TestParallelForZero(t *testing.T) {
	pool := New(2)
	defer pool.Close()

	called := false
	pool.ParallelFor(0, func(start, end int) {
		called = true
	})
	if called {
		t.Error("ParallelFor(0) invoked fn")
	}
}

func TestParallelForAfterClose(t *testing.T) {
	pool := New(2)
	pool.Close()

	n := 10
	var count atomic.Int32
	pool.ParallelFor(n, func(start, end int) {
		count.Add(int32(end - start))
	})

	if count.Load() != int32(n) {
		t.Errorf("sequential fallback covered %d items, want %d", count.Load(), n)
	}
}

func TestPoolReuse(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for round := 0; round < 50; round++ {
		var sum atomic.Int64
		pool.ParallelFor(100, func(start, end int) {
			for i := start; i < end; i++ {
				sum.Add(int64(i))
			}
		})
		if sum.Load() != 4950 {
			t.Fatalf("round %d: sum = %d, want 4950", round, sum.Load())
		}
	}
}
