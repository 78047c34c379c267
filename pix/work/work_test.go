// Copyright 2025 go-pixfmt Authors. SPDX-License-Identifier: Apache-2.0

package work

import (
	"sync/atomic"
	"testing"
)

func TestParallelRowsCoversAll(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, rows := range []int{1, 3, 4, 7, 100, 1081} {
		covered := make([]atomic.Int32, rows)
		pool.ParallelRows(rows, func(y0, y1 int) {
			if y0 < 0 || y1 > rows || y0 >= y1 {
				t.Errorf("rows=%d: bad band [%d, %d)", rows, y0, y1)
				return
			}
			for y := y0; y < y1; y++ {
				covered[y].Add(1)
			}
		})
		for y := range covered {
			if got := covered[y].Load(); got != 1 {
				t.Errorf("rows=%d: row %d visited %d times", rows, y, got)
			}
		}
	}
}

func TestParallelRowsZero(t *testing.T) {
	pool := New(2)
	defer pool.Close()

	called := false
	pool.ParallelRows(0, func(y0, y1 int) { called = true })
	if called {
		t.Error("fn called for zero rows")
	}
}

func TestParallelRowsAfterClose(t *testing.T) {
	pool := New(2)
	pool.Close()
	pool.Close() // safe to repeat

	var total atomic.Int32
	pool.ParallelRows(10, func(y0, y1 int) {
		total.Add(int32(y1 - y0))
	})
	if total.Load() != 10 {
		t.Errorf("closed pool covered %d rows, want 10", total.Load())
	}
}

func TestNumWorkers(t *testing.T) {
	pool := New(3)
	defer pool.Close()
	if pool.NumWorkers() != 3 {
		t.Errorf("NumWorkers = %d, want 3", pool.NumWorkers())
	}

	def := New(0)
	defer def.Close()
	if def.NumWorkers() < 1 {
		t.Errorf("default NumWorkers = %d, want >= 1", def.NumWorkers())
	}
}

func TestPoolReuse(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	// Many conversions through the same pool.
	for range 50 {
		var sum atomic.Int64
		pool.ParallelRows(480, func(y0, y1 int) {
			for y := y0; y < y1; y++ {
				sum.Add(int64(y))
			}
		})
		if want := int64(480 * 479 / 2); sum.Load() != want {
			t.Fatalf("sum = %d, want %d", sum.Load(), want)
		}
	}
}
