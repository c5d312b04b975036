// Package workerpool runs a fixed number of independent, never-shared
// workers concurrently. It is adapted from the teacher's TCP connection
// worker pool (internal/worker.go in the original exchange server): the
// same fixed-size-pool-plus-tomb shape, repurposed here to run independent
// order book fuzz workers instead of independent TCP connections. Each
// worker owns its own task end to end — nothing about a task is ever
// touched by more than one goroutine, which is what lets an unsynchronized
// book.Book live safely inside a worker.
package workerpool

import (
	"github.com/rs/zerolog"
	tomb "gopkg.in/tomb.v2"
)

// Task is a unit of work. It receives the job index so a worker can, for
// example, derive a deterministic per-job random seed.
type Task func(jobIndex int) error

// Pool runs n workers pulling jobs from a shared channel until the jobs are
// exhausted or the tomb is killed.
type Pool struct {
	n    int
	log  zerolog.Logger
	jobs chan int
	work Task
}

// New constructs a pool of n workers that together invoke work once per
// job index in [0, numJobs), where numJobs is the argument given to Run.
func New(n int, log zerolog.Logger, work Task) *Pool {
	return &Pool{n: n, log: log, work: work}
}

// Run executes numJobs invocations of the pool's Task across n workers and
// blocks until every job has completed or the tomb dies. It returns the
// first error any worker reported, if any.
func (p *Pool) Run(t *tomb.Tomb, numJobs int) error {
	p.jobs = make(chan int, numJobs)
	for i := 0; i < numJobs; i++ {
		p.jobs <- i
	}
	close(p.jobs)

	errs := make(chan error, p.n)
	for w := 0; w < p.n; w++ {
		worker := w
		t.Go(func() error {
			errs <- p.runWorker(t, worker)
			return nil
		})
	}

	var firstErr error
	for w := 0; w < p.n; w++ {
		if err := <-errs; err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (p *Pool) runWorker(t *tomb.Tomb, id int) error {
	p.log.Debug().Int("worker", id).Msg("worker starting")
	for {
		select {
		case <-t.Dying():
			return nil
		case job, ok := <-p.jobs:
			if !ok {
				return nil
			}
			if err := p.work(job); err != nil {
				p.log.Error().Int("worker", id).Int("job", job).Err(err).Msg("job failed")
				return err
			}
		}
	}
}
