package workerpool

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
)

// Task is one unit of work submitted to the pool.
type Task func(ctx context.Context)

// Pool is a process-wide bounded executor for backend fetches. All page
// sessions share it, so a burst of page loads cannot open an unbounded
// number of outbound requests.
type Pool struct {
	pool *ants.Pool
}

func New(size int) (*Pool, error) {
	if size < 1 {
		size = 1
	}
	p, err := ants.NewPool(size)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	return &Pool{pool: p}, nil
}

// Run submits every task and blocks until all of them returned. A task that
// cannot be submitted runs inline on the caller goroutine.
func (p *Pool) Run(ctx context.Context, tasks ...Task) {
	var workers sync.WaitGroup
	for _, task := range tasks {
		if task == nil {
			continue
		}
		task := task
		workers.Add(1)
		if err := p.pool.Submit(func() {
			defer workers.Done()
			task(ctx)
		}); err != nil {
			task(ctx)
			workers.Done()
		}
	}
	workers.Wait()
}

func (p *Pool) Release() {
	p.pool.Release()
}
