// Package dijkstra implements a single-pair shortest-path Engine on a
// weighted, directed graph with non-negative costs.
//
// Complexity:
//
//   - Time:  O((V + E) log V) per run, usually less thanks to the early exit.
//   - Space: O(V + E): distance/predecessor tables plus up to E heap entries.
//
// Notes on implementation choices:
//
//   - Negative and NaN costs are rejected at insertion, so runs never see them.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - We stop as soon as the target is popped with a non-stale entry; its distance is final.
//   - Relaxation uses a strict “<” without tolerance; only queue ordering is epsilon-tolerant.
package dijkstra

import (
	"container/heap"
	"math"
	"sync"

	"github.com/sirupsen/logrus"
)

// Engine owns a Graph and the tables of its most recent run.
//
// Every exported method takes the engine lock for its whole duration, so
// one Engine may be shared between goroutines; runs are serialised.
type Engine struct {
	mu   sync.Mutex
	g    *Graph
	opts Options

	// Tables of the last run; overwritten by every Dijkstra call.
	dist    []float64
	prev    []int
	hasPrev []bool
}

// New creates an Engine over n nodes and no edges.
//
// Preconditions and validation (in order):
//  1. n must be ≥ 0 (ErrNegativeNodeCount).
//  2. WithCompare must not receive nil (ErrNilCompare).
//  3. Epsilon ≥ 0, MaxDistance ≥ 0, InfEdgeThreshold > 0.
func New(n int, opts ...Option) (*Engine, error) {
	g, err := NewGraph(n)
	if err != nil {
		return nil, err
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err = cfg.validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		g:       g,
		opts:    cfg,
		dist:    make([]float64, n),
		prev:    make([]int, n),
		hasPrev: make([]bool, n),
	}
	for i := range e.dist {
		e.dist[i] = math.Inf(1)
	}

	return e, nil
}

// Graph returns the underlying graph for inspection. Callers must not read
// it while AddEdge is running on another goroutine.
func (e *Engine) Graph() *Graph { return e.g }

// AddEdge appends the directed edge from → to with the given cost.
// See Graph.AddEdge for validation rules.
func (e *Engine) AddEdge(from, to int, cost float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.g.AddEdge(from, to, cost)
}

// Dijkstra returns the shortest distance from source to target, or +Inf
// when target is unreachable. It overwrites the engine's distance and
// predecessor tables.
func (e *Engine) Dijkstra(source, target int) (float64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.checkPair(source, target); err != nil {
		return 0, err
	}

	return e.run(source, target), nil
}

// ReconstructPath runs Dijkstra from source and returns the node indices of
// a shortest path source → … → target, both ends included. The result is
// empty (never nil) when target is unreachable.
func (e *Engine) ReconstructPath(source, target int) ([]int, error) {
	_, path, err := e.ShortestPath(source, target)

	return path, err
}

// ShortestPath returns the distance and the path of a single run, so both
// come from the same tables even when the Engine is shared.
func (e *Engine) ShortestPath(source, target int) (float64, []int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.checkPair(source, target); err != nil {
		return 0, nil, err
	}

	d := e.run(source, target)
	if math.IsInf(d, 1) {
		return d, []int{}, nil
	}

	return d, e.walk(target), nil
}

// walk follows predecessor links back from target and reverses them.
func (e *Engine) walk(target int) []int {
	var path []int
	for v := target; ; v = e.prev[v] {
		path = append(path, v)
		if !e.hasPrev[v] {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Distance returns v's distance recorded by the last run: final for nodes
// settled before the run stopped, tentative or +Inf otherwise.
func (e *Engine) Distance(v int) (float64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.g.checkNode(v); err != nil {
		return 0, err
	}

	return e.dist[v], nil
}

// Predecessor returns v's predecessor recorded by the last run.
// ok is false for the source and for nodes never reached.
func (e *Engine) Predecessor(v int) (p int, ok bool, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err = e.g.checkNode(v); err != nil {
		return 0, false, err
	}

	return e.prev[v], e.hasPrev[v], nil
}

func (e *Engine) checkPair(source, target int) error {
	if err := e.g.checkNode(source); err != nil {
		return err
	}

	return e.g.checkNode(target)
}

// run executes one search and logs its outcome. Caller holds e.mu.
func (e *Engine) run(source, target int) float64 {
	r := &runner{
		g:       e.g,
		options: e.opts,
		dist:    e.dist,
		prev:    e.prev,
		hasPrev: e.hasPrev,
		visited: make([]bool, e.g.Order()),
		pq:      &itemPQ{items: make([]Item, 0, 2*e.g.Order()), cmp: e.opts.Compare},
	}
	r.init(source)
	d := r.process(target)

	if e.opts.Logger != nil {
		outcome := "completed"
		if math.IsInf(d, 1) {
			outcome = "exhausted"
		}
		e.opts.Logger.WithFields(logrus.Fields{
			"source":   source,
			"target":   target,
			"distance": d,
			"pops":     r.pops,
			"pushes":   r.pushes,
			"stale":    r.stale,
			"outcome":  outcome,
		}).Debug("dijkstra run")
	}

	return d
}

// runner holds the mutable state for a single execution.
type runner struct {
	g       *Graph    // read-only within a run
	options Options   // validated configuration
	dist    []float64 // node → current best distance from source
	prev    []int     // node → predecessor, valid only where hasPrev
	hasPrev []bool    // explicit "no predecessor" marker
	visited []bool    // node has been popped
	pq      *itemPQ   // lazy priority queue

	pops, pushes, stale int
}

// init resets the tables and seeds the heap with (source, 0).
func (r *runner) init(source int) {
	for v := range r.dist {
		r.dist[v] = math.Inf(1)
		r.prev[v] = 0
		r.hasPrev[v] = false
	}
	r.dist[source] = 0

	heap.Init(r.pq)
	r.push(Item{Node: source, Dist: 0})
}

// process is the extract/relax loop. It returns target's final distance as
// soon as target is popped, or +Inf once the heap runs dry.
func (r *runner) process(target int) float64 {
	for r.pq.Len() > 0 {
		item := heap.Pop(r.pq).(Item)
		r.pops++

		// Nothing past the cap is explored.
		if item.Dist > r.options.MaxDistance {
			break
		}

		u := item.Node
		r.visited[u] = true

		// A better entry for u was already handled.
		if item.Dist > r.dist[u] {
			r.stale++
			continue
		}

		r.relax(u)

		if u == target {
			return r.dist[target]
		}
	}

	return math.Inf(1)
}

// relax tries to improve every unvisited neighbour of u.
func (r *runner) relax(u int) {
	for _, edge := range r.g.adj[u] {
		v := edge.To
		if r.visited[v] {
			continue
		}
		if edge.Cost >= r.options.InfEdgeThreshold {
			continue
		}

		newDist := r.dist[u] + edge.Cost
		if newDist > r.options.MaxDistance {
			continue
		}
		if newDist < r.dist[v] {
			r.dist[v] = newDist
			r.prev[v] = u
			r.hasPrev[v] = true
			r.push(Item{Node: v, Dist: newDist})
		}
	}
}

func (r *runner) push(it Item) {
	heap.Push(r.pq, it)
	r.pushes++
}
