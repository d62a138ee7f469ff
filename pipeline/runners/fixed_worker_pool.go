package runners

import (
	"context"
	"sync"

	"github.com/Ahmed-Sermani/go-pagerank/pipeline"
)

type fixedWorkerPool struct {
	runners []pipeline.StageRunner
}

// FixedWorkerPool returns a StageRunner that reads up to numWorkers corpus
// documents concurrently. Each worker is a FIFO runner over the shared stage
// channels, so documents may leave the stage in any order.
func FixedWorkerPool(proc pipeline.Processor, numWorkers int) pipeline.StageRunner {
	if numWorkers <= 0 {
		panic("FixedWorkerPool: numWorkers must be greater than 0")
	}
	runners := make([]pipeline.StageRunner, numWorkers)
	for i := range runners {
		runners[i] = FIFO(proc)
	}

	return &fixedWorkerPool{runners: runners}
}

// Run blocks until every worker has drained the input or the context is
// cancelled.
func (p *fixedWorkerPool) Run(ctx context.Context, params pipeline.StageParams) {
	var wg sync.WaitGroup
	wg.Add(len(p.runners))
	for i := range p.runners {
		go func(runnerIndex int) {
			defer wg.Done()
			p.runners[runnerIndex].Run(ctx, params)
		}(i)
	}
	wg.Wait()
}
