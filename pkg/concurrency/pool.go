// Package concurrency provides the fan-out worker pool the simulation
// loop uses to update every boid in a generation in parallel.
package concurrency

import (
	"context"
	"runtime"
	"sync"

	"github.com/klauspost/cpuid/v2"
)

// Pool is a fixed-size goroutine pool used to fan the per-iteration
// boid update step out across workers and block until every job in a
// batch has completed. Unlike a long-lived per-entity worker, a Pool's
// goroutines are anonymous and stateless: RunBatch ships closures to
// whichever worker is free and returns once every closure submitted in
// that call has run.
type Pool struct {
	jobs chan func()
	wg   sync.WaitGroup

	ctx    context.Context
	cancel context.CancelFunc
}

// DefaultPoolSize returns runtime.NumCPU(), doubled when the host
// advertises AVX2 since the per-boid brain evaluation is small,
// branchy, floating-point work that benefits from oversubscribing such
// cores.
func DefaultPoolSize() int {
	n := runtime.NumCPU()
	if cpuid.CPU.Supports(cpuid.AVX2) {
		n *= 2
	}
	return n
}

// NewPool starts n worker goroutines. A non-positive n falls back to
// DefaultPoolSize().
func NewPool(n int) *Pool {
	if n <= 0 {
		n = DefaultPoolSize()
	}

	ctx, cancel := context.WithCancel(context.Background())
	p := &Pool{
		jobs:   make(chan func()),
		ctx:    ctx,
		cancel: cancel,
	}

	for i := 0; i < n; i++ {
		go p.loop()
	}
	return p
}

func (p *Pool) loop() {
	for {
		select {
		case <-p.ctx.Done():
			return
		case job, ok := <-p.jobs:
			if !ok {
				return
			}
			job()
			p.wg.Done()
		}
	}
}

// RunBatch dispatches every job in jobs across the pool's workers and
// blocks until all of them have completed. Safe to call repeatedly
// with different batch sizes; a Pool has no notion of "session" beyond
// a single RunBatch call.
func (p *Pool) RunBatch(jobs []func()) {
	if len(jobs) == 0 {
		return
	}
	p.wg.Add(len(jobs))
	for _, job := range jobs {
		p.jobs <- job
	}
	p.wg.Wait()
}

// Close stops every worker goroutine. The pool must not be used
// afterwards.
func (p *Pool) Close() {
	p.cancel()
}
