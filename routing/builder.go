package routing

import (
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/rmatrix/core"
	"github.com/katalvlaran/rmatrix/dijkstra"
)

// Options configures Build.
type Options struct {
	Workers  int               // per-source runs in flight; 1 = sequential
	Strategy dijkstra.Strategy // engine frontier strategy
}

// Option represents a functional option for Build.
type Option func(*Options)

// WithWorkers runs up to n per-source computations concurrently on a
// goroutine pool. n == 1 keeps the sequential single-State path.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithStrategy forwards the engine frontier strategy.
func WithStrategy(s dijkstra.Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// DefaultOptions returns sequential, scan-strategy options.
func DefaultOptions() Options {
	return Options{Workers: 1, Strategy: dijkstra.StrategyScan}
}

// Build computes the routing table of g: one engine run per source node,
// then one cell per destination.
//
// Errors:
//   - ErrNilGraph, ErrBadWorkers on invalid input.
//   - dijkstra errors (e.g. ErrNegativeWeight) from the engine.
//   - ErrPredecessorCycle if any first-hop walk fails.
//
// No table is returned alongside an error.
func Build(g *core.Graph, opts ...Option) (*Table, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if cfg.Workers < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadWorkers, cfg.Workers)
	}

	e, err := dijkstra.NewEngine(g, dijkstra.WithStrategy(cfg.Strategy))
	if err != nil {
		return nil, err
	}

	n := e.Len()
	t := &Table{
		nodes: e.Nodes(),
		index: make(map[string]int, n),
		cells: make([][]Cell, n),
	}
	for i, name := range t.nodes {
		t.index[name] = i
	}
	log.Debugf("routing: building %dx%d table, workers=%d, strategy=%s", n, n, cfg.Workers, cfg.Strategy)

	if cfg.Workers == 1 || n < 2 {
		err = buildSequential(e, t)
	} else {
		err = buildParallel(e, t, cfg.Workers)
	}
	if err != nil {
		return nil, err
	}

	return t, nil
}

// buildSequential reuses one State for every source; Run resets it.
func buildSequential(e *dijkstra.Engine, t *Table) error {
	s := e.NewState()
	for src := 0; src < e.Len(); src++ {
		row, err := computeRow(e, s, src)
		if err != nil {
			return err
		}
		t.cells[src] = row
	}

	return nil
}

// buildParallel submits one task per source to an ants pool. Each task owns
// its State; the Engine is shared read-only. Rows are written to distinct
// slots, so only the first error needs a lock.
func buildParallel(e *dijkstra.Engine, t *Table, workers int) error {
	pool, err := ants.NewPool(workers)
	if err != nil {
		log.Warnf("routing: failed to create worker pool: %v, falling back to sequential build", err)
		return buildSequential(e, t)
	}
	defer pool.Release()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	setErr := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}

	for src := 0; src < e.Len(); src++ {
		wg.Add(1)
		srcIdx := src
		if err := pool.Submit(func() {
			defer wg.Done()
			row, err := computeRow(e, e.NewState(), srcIdx)
			if err != nil {
				setErr(err)
				return
			}
			t.cells[srcIdx] = row
		}); err != nil {
			wg.Done()
			setErr(fmt.Errorf("routing: submit source %q: %w", e.Name(srcIdx), err))
		}
	}
	wg.Wait()

	return firstErr
}

// computeRow runs the engine from src and derives every destination cell.
func computeRow(e *dijkstra.Engine, s *dijkstra.State, src int) ([]Cell, error) {
	if err := e.RunIndex(s, src); err != nil {
		return nil, err
	}
	row := make([]Cell, e.Len())
	for dst := range row {
		c, err := deriveCell(e, s, dst)
		if err != nil {
			return nil, err
		}
		row[dst] = c
	}

	return row, nil
}

// deriveCell turns the state of one destination into a table cell.
func deriveCell(e *dijkstra.Engine, s *dijkstra.State, dst int) (Cell, error) {
	if dst == s.SourceIndex() {
		return Cell{Kind: CellSelf}, nil
	}
	d := s.DistanceAt(dst)
	if d == dijkstra.Infinity {
		return Cell{Kind: CellUnreachable}, nil
	}
	hop, err := FirstHop(s, dst)
	if err != nil {
		return Cell{}, fmt.Errorf("%s -> %s: %w", e.Name(s.SourceIndex()), e.Name(dst), err)
	}

	return Cell{Kind: CellHop, FirstHop: e.Name(hop), Distance: d}, nil
}
