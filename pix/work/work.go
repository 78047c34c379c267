// Copyright 2025 go-pixfmt Authors. SPDX-License-Identifier: Apache-2.0

// Package work provides a persistent worker pool for row-parallel
// frame conversion. A Pool is created once and reused across frames,
// so converting a video stream does not spawn goroutines per frame.
//
// Usage:
//
//	pool := work.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	for frame := range frames {
//	    pool.ParallelRows(height, func(y0, y1 int) {
//	        convertRows(frame, y0, y1)
//	    })
//	}
package work

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once at
// creation and reused until Close.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with the given number of workers, or GOMAXPROCS
// workers when numWorkers <= 0.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}

	for range numWorkers {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the pool. Pending work still completes, and later
// ParallelRows calls fall back to running on the caller's goroutine.
// Close may be called more than once.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelRows splits the row range [0, rows) into contiguous bands,
// one per worker, and runs fn(y0, y1) for each band. It blocks until
// every band is done. Bands never overlap, so fn may write its output
// rows without locking.
func (p *Pool) ParallelRows(rows int, fn func(y0, y1 int)) {
	if rows <= 0 {
		return
	}

	if p.closed.Load() {
		fn(0, rows)
		return
	}

	workers := min(p.numWorkers, rows)
	if workers == 1 {
		fn(0, rows)
		return
	}

	band := (rows + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)

	for i := range workers {
		y0 := i * band
		y1 := min(y0+band, rows)
		if y0 >= rows {
			wg.Done()
			continue
		}

		p.workC <- workItem{
			fn:      func() { fn(y0, y1) },
			barrier: &wg,
		}
	}

	wg.Wait()
}
