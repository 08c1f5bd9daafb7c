package game

import (
	"math/rand"
	"sync"

	"github.com/pthm-cable/blobs/systems"
)

// workChunk represents a range of active blobs for a worker to process.
type workChunk struct {
	start, end int
}

// parallelState holds the persistent worker pool for the agent pass.
type parallelState struct {
	rngs       []*rand.Rand // one per worker, never shared
	numWorkers int

	// Worker pool channels
	workChan chan workChunk // sends work to workers
	doneChan chan struct{}  // workers signal completion
	stopChan chan struct{}  // signals workers to exit
	wg       sync.WaitGroup // tracks active workers
	running  bool           // true if workers are running
}

// newParallelState creates the pool state. Worker RNGs are seeded from the
// game RNG so a seeded run draws the same worker seeds every time.
func newParallelState(numWorkers int, seeds *rand.Rand) *parallelState {
	rngs := make([]*rand.Rand, numWorkers)
	for i := range rngs {
		rngs[i] = systems.NewRand(seeds.Int63())
	}
	return &parallelState{
		rngs:       rngs,
		numWorkers: numWorkers,
	}
}

// startWorkers launches persistent worker goroutines.
func (p *parallelState) startWorkers(g *Game) {
	if p.running {
		return
	}

	p.workChan = make(chan workChunk, p.numWorkers)
	p.doneChan = make(chan struct{}, p.numWorkers)
	p.stopChan = make(chan struct{})
	p.running = true

	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker(g, i)
	}
}

// stopWorkers signals all workers to exit and waits for them.
func (p *parallelState) stopWorkers() {
	if !p.running {
		return
	}

	close(p.stopChan)
	p.wg.Wait()
	close(p.workChan)
	close(p.doneChan)
	p.running = false
}

// worker runs in a goroutine, processing chunks until stopped.
func (p *parallelState) worker(g *Game, workerID int) {
	defer p.wg.Done()
	rng := p.rngs[workerID]

	for {
		select {
		case <-p.stopChan:
			return
		case chunk, ok := <-p.workChan:
			if !ok {
				return
			}
			g.stepChunk(chunk.start, chunk.end, rng)
			p.doneChan <- struct{}{}
		}
	}
}

// stepParallel dispatches the agent pass to the worker pool and waits for
// every chunk. Blobs only write their own component; food is shared through
// the pool's atomic claims.
func (g *Game) stepParallel(n int) {
	if !g.parallel.running {
		g.parallel.startWorkers(g)
	}

	numWorkers := g.parallel.numWorkers
	chunkSize := (n + numWorkers - 1) / numWorkers

	// Dispatch chunks to workers
	chunksDispatched := 0
	for w := 0; w < numWorkers; w++ {
		start := w * chunkSize
		end := min(start+chunkSize, n)
		if start >= end {
			continue
		}

		g.parallel.workChan <- workChunk{start: start, end: end}
		chunksDispatched++
	}

	// Wait for all chunks to complete
	for i := 0; i < chunksDispatched; i++ {
		<-g.parallel.doneChan
	}
}

// stepChunk runs one tick for active blobs [i0, i1).
func (g *Game) stepChunk(i0, i1 int, rng systems.Rand) {
	for i := i0; i < i1; i++ {
		systems.StepBlob(g.active[i], &g.env, rng)
	}
}

// stopParallelWorkers should be called when shutting down the game.
func (g *Game) stopParallelWorkers() {
	if g.parallel != nil {
		g.parallel.stopWorkers()
	}
}
