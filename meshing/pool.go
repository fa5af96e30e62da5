// SPDX-License-Identifier: GPL-2.0-or-later

// Package meshing runs chunk meshing on a pool of workers. Workers only
// generate geometry, all GPU upload stays on the main thread which drains
// the finished chunks once per frame.
package meshing

import (
	"log"
	"runtime"
	"sync"

	"github.com/google/uuid"

	"govoxel/world"
)

// workerCount applies the core heuristic of the renderer: use every core up
// to four, above that leave one for the main thread. A configured maximum
// above zero caps the result.
func workerCount(parallelism, configured int) int {
	if parallelism < 1 {
		parallelism = 1
	}
	n := parallelism
	if parallelism > 4 {
		n = parallelism - 1
	}
	if configured > 0 && configured < n {
		n = configured
	}
	return n
}

// WorkerCount returns the number of meshing workers for this machine.
func WorkerCount(configured int) int {
	parallelism := runtime.GOMAXPROCS(0)
	log.Printf("Detected %d cores", parallelism)
	return workerCount(parallelism, configured)
}

// Pool is a meshing worker pool. Submit never blocks on busy workers, the
// backlog is unbounded like the original queue was.
type Pool struct {
	in      chan *world.Chunk
	jobs    chan *world.Chunk
	results chan *world.Chunk
	quit    chan struct{}
	wg      sync.WaitGroup
	once    sync.Once
}

// NewPool starts n workers plus the dispatcher.
func NewPool(n int) *Pool {
	p := &Pool{
		in:      make(chan *world.Chunk),
		jobs:    make(chan *world.Chunk),
		results: make(chan *world.Chunk, 1024),
		quit:    make(chan struct{}),
	}
	log.Printf("Starting %d meshing workers", n)
	p.wg.Add(1)
	go p.dispatch()
	for i := 0; i < n; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	return p
}

// Submit queues a chunk for meshing. Not safe to call after Stop.
func (p *Pool) Submit(c *world.Chunk) {
	select {
	case p.in <- c:
	case <-p.quit:
	}
}

// dispatch decouples Submit from the workers so the main thread never waits
// on a busy pool.
func (p *Pool) dispatch() {
	defer p.wg.Done()
	var backlog []*world.Chunk
	for {
		var out chan *world.Chunk
		var next *world.Chunk
		if len(backlog) > 0 {
			out = p.jobs
			next = backlog[0]
		}
		select {
		case c := <-p.in:
			backlog = append(backlog, c)
		case out <- next:
			backlog = backlog[1:]
		case <-p.quit:
			return
		}
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case c := <-p.jobs:
			c.Mesh(&c.Geometry)
			c.MeshRev = uuid.New()
			select {
			case p.results <- c:
			case <-p.quit:
				return
			}
		case <-p.quit:
			return
		}
	}
}

// TryDrain hands every finished chunk currently available to f and returns
// how many there were. It never blocks.
func (p *Pool) TryDrain(f func(*world.Chunk)) int {
	n := 0
	for {
		select {
		case c := <-p.results:
			f(c)
			n++
		default:
			return n
		}
	}
}

// Stop shuts the pool down and waits for the workers. Queued and undelivered
// chunks are discarded, the world re-requests whatever it still needs on the
// next run.
func (p *Pool) Stop() {
	p.once.Do(func() {
		close(p.quit)
		p.wg.Wait()
	})
}
