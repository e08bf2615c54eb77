// Package dijkstra_test contains unit tests for the Engine. These tests
// validate input checks, the regression fixture, optimality against brute
// force, path reconstruction, options and edge cases such as single-node
// and self-loop graphs.
package dijkstra_test

import (
	"errors"
	"math"
	"math/rand"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvroute/dijkstra"
)

// cityEdges is the eight-city road network used as a regression fixture.
var cityEdges = []dijkstra.Edge{
	{From: 0, To: 1, Cost: 111},
	{From: 0, To: 3, Cost: 203},
	{From: 1, To: 2, Cost: 323},
	{From: 2, To: 7, Cost: 299},
	{From: 3, To: 4, Cost: 368},
	{From: 3, To: 5, Cost: 239},
	{From: 4, To: 5, Cost: 299},
	{From: 5, To: 2, Cost: 322},
	{From: 5, To: 6, Cost: 350},
	{From: 6, To: 7, Cost: 352},
}

func build(t *testing.T, n int, edges []dijkstra.Edge, opts ...dijkstra.Option) *dijkstra.Engine {
	t.Helper()
	eng, err := dijkstra.New(n, opts...)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, eng.AddEdge(e.From, e.To, e.Cost))
	}

	return eng
}

// ------------------------------------------------------------------------
// 1. Validation: every rejection wraps ErrInvalidArgument.
// ------------------------------------------------------------------------

type ValidationSuite struct {
	suite.Suite
	eng *dijkstra.Engine
}

func (s *ValidationSuite) SetupTest() {
	eng, err := dijkstra.New(3)
	s.Require().NoError(err)
	s.eng = eng
}

func (s *ValidationSuite) TestNegativeNodeCount() {
	_, err := dijkstra.New(-1)
	s.Require().ErrorIs(err, dijkstra.ErrNegativeNodeCount)
	s.Require().ErrorIs(err, dijkstra.ErrInvalidArgument)

	_, err = dijkstra.NewGraph(-5)
	s.Require().ErrorIs(err, dijkstra.ErrNegativeNodeCount)
}

func (s *ValidationSuite) TestAddEdgeRejectsWithoutAppending() {
	require := s.Require()
	require.ErrorIs(s.eng.AddEdge(-1, 0, 1), dijkstra.ErrNodeOutOfRange)
	require.ErrorIs(s.eng.AddEdge(0, 3, 1), dijkstra.ErrNodeOutOfRange)
	require.ErrorIs(s.eng.AddEdge(0, 1, -0.5), dijkstra.ErrNegativeWeight)
	require.ErrorIs(s.eng.AddEdge(0, 1, math.NaN()), dijkstra.ErrBadWeight)
	require.ErrorIs(s.eng.AddEdge(0, 1, -1), dijkstra.ErrInvalidArgument)

	require.Zero(s.eng.Graph().EdgeCount(), "rejected edges must not be stored")
	edges, err := s.eng.Graph().Edges(0)
	require.NoError(err)
	require.Empty(edges)
}

func (s *ValidationSuite) TestQueriesOutOfRange() {
	require := s.Require()
	_, err := s.eng.Dijkstra(3, 0)
	require.ErrorIs(err, dijkstra.ErrNodeOutOfRange)
	_, err = s.eng.Dijkstra(0, -1)
	require.ErrorIs(err, dijkstra.ErrNodeOutOfRange)
	_, err = s.eng.ReconstructPath(0, 7)
	require.ErrorIs(err, dijkstra.ErrNodeOutOfRange)
	_, err = s.eng.ReconstructPath(-2, 0)
	require.ErrorIs(err, dijkstra.ErrInvalidArgument)
	_, err = s.eng.Distance(3)
	require.ErrorIs(err, dijkstra.ErrNodeOutOfRange)
	_, _, err = s.eng.Predecessor(-1)
	require.ErrorIs(err, dijkstra.ErrNodeOutOfRange)
}

func (s *ValidationSuite) TestBadOptions() {
	cases := []struct {
		name string
		opt  dijkstra.Option
		want error
	}{
		{"nil compare", dijkstra.WithCompare(nil), dijkstra.ErrNilCompare},
		{"negative epsilon", dijkstra.WithEpsilon(-1e-3), dijkstra.ErrBadEpsilon},
		{"nan epsilon", dijkstra.WithEpsilon(math.NaN()), dijkstra.ErrBadEpsilon},
		{"negative max distance", dijkstra.WithMaxDistance(-1), dijkstra.ErrBadMaxDistance},
		{"zero threshold", dijkstra.WithInfEdgeThreshold(0), dijkstra.ErrBadInfThreshold},
	}
	for _, tc := range cases {
		_, err := dijkstra.New(2, tc.opt)
		s.Require().ErrorIs(err, tc.want, tc.name)
		s.Require().ErrorIs(err, dijkstra.ErrInvalidArgument, tc.name)
	}
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationSuite))
}

// ------------------------------------------------------------------------
// 2. Regression fixture and edge cases.
// ------------------------------------------------------------------------

func TestDijkstra_CityFixture(t *testing.T) {
	eng := build(t, 8, cityEdges)

	d, err := eng.Dijkstra(3, 7)
	require.NoError(t, err)
	require.Equal(t, 860.0, d, "3→5→2→7 = 239+322+299")

	path, err := eng.ReconstructPath(3, 7)
	require.NoError(t, err)
	require.Equal(t, []int{3, 5, 2, 7}, path)

	// From Santander the cheapest way to Barcelona goes through Bilbao.
	d, err = eng.Dijkstra(0, 7)
	require.NoError(t, err)
	require.Equal(t, 733.0, d)
}

func TestDijkstra_SingleNode(t *testing.T) {
	eng := build(t, 1, nil)

	d, err := eng.Dijkstra(0, 0)
	require.NoError(t, err)
	require.Zero(t, d)

	path, err := eng.ReconstructPath(0, 0)
	require.NoError(t, err)
	require.Equal(t, []int{0}, path)

	_, ok, err := eng.Predecessor(0)
	require.NoError(t, err)
	require.False(t, ok, "source has no predecessor")
}

func TestDijkstra_EmptyGraph(t *testing.T) {
	eng := build(t, 0, nil)
	_, err := eng.Dijkstra(0, 0)
	require.ErrorIs(t, err, dijkstra.ErrNodeOutOfRange)
}

func TestDijkstra_Unreachable(t *testing.T) {
	// 0→1, 2 is isolated; 1→0 does not exist.
	eng := build(t, 3, []dijkstra.Edge{{From: 0, To: 1, Cost: 4}})

	d, err := eng.Dijkstra(0, 2)
	require.NoError(t, err)
	require.True(t, math.IsInf(d, 1))

	path, err := eng.ReconstructPath(0, 2)
	require.NoError(t, err)
	require.NotNil(t, path)
	require.Empty(t, path)

	// Directed: the reverse direction is unreachable too.
	d, err = eng.Dijkstra(1, 0)
	require.NoError(t, err)
	require.True(t, math.IsInf(d, 1))
}

func TestDijkstra_SelfLoopAndParallelEdges(t *testing.T) {
	eng := build(t, 2, []dijkstra.Edge{
		{From: 0, To: 0, Cost: 0},
		{From: 0, To: 0, Cost: 7},
		{From: 0, To: 1, Cost: 9},
		{From: 0, To: 1, Cost: 2},
		{From: 0, To: 1, Cost: 5},
	})

	d, err := eng.Dijkstra(0, 0)
	require.NoError(t, err)
	require.Zero(t, d)

	d, err = eng.Dijkstra(0, 1)
	require.NoError(t, err)
	require.Equal(t, 2.0, d, "cheapest parallel edge wins")

	path, err := eng.ReconstructPath(0, 1)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, path)
}

func TestDijkstra_ZeroWeightCycle(t *testing.T) {
	eng := build(t, 3, []dijkstra.Edge{
		{From: 0, To: 1, Cost: 0},
		{From: 1, To: 0, Cost: 0},
		{From: 1, To: 2, Cost: 1},
	})

	path, err := eng.ReconstructPath(0, 2)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, path)
}

func TestDijkstra_Idempotent(t *testing.T) {
	eng := build(t, 8, cityEdges)

	first, err := eng.Dijkstra(0, 6)
	require.NoError(t, err)
	second, err := eng.Dijkstra(0, 6)
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, 792.0, first, "0→3→5→6 = 203+239+350")
}

func TestDijkstra_TablesFollowLastRun(t *testing.T) {
	eng := build(t, 8, cityEdges)

	_, err := eng.Dijkstra(3, 7)
	require.NoError(t, err)
	p, ok, err := eng.Predecessor(7)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 2, p)
	d, err := eng.Distance(5)
	require.NoError(t, err)
	require.Equal(t, 239.0, d)

	// A run from another source replaces the tables; 3 is now unreachable.
	_, err = eng.Dijkstra(5, 7)
	require.NoError(t, err)
	d, err = eng.Distance(3)
	require.NoError(t, err)
	require.True(t, math.IsInf(d, 1))
	_, ok, err = eng.Predecessor(5)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestShortestPath_SingleRun(t *testing.T) {
	eng := build(t, 8, cityEdges)

	d, path, err := eng.ShortestPath(0, 6)
	require.NoError(t, err)
	require.Equal(t, 792.0, d)
	require.Equal(t, []int{0, 3, 5, 6}, path)

	d, path, err = eng.ShortestPath(7, 0)
	require.NoError(t, err)
	require.True(t, math.IsInf(d, 1))
	require.Equal(t, []int{}, path)

	_, _, err = eng.ShortestPath(0, 8)
	require.ErrorIs(t, err, dijkstra.ErrNodeOutOfRange)
}

func TestDijkstra_ReconstructPathIgnoresStaleRun(t *testing.T) {
	eng := build(t, 8, cityEdges)

	_, err := eng.Dijkstra(0, 7)
	require.NoError(t, err)

	// Different source than the previous run.
	path, err := eng.ReconstructPath(3, 7)
	require.NoError(t, err)
	require.Equal(t, []int{3, 5, 2, 7}, path)
}

// ------------------------------------------------------------------------
// 3. Options: thresholds, custom ordering, logging.
// ------------------------------------------------------------------------

func TestDijkstra_MaxDistance(t *testing.T) {
	chain := []dijkstra.Edge{{From: 0, To: 1, Cost: 1}, {From: 1, To: 2, Cost: 1}}
	eng := build(t, 3, chain, dijkstra.WithMaxDistance(1))

	d, err := eng.Dijkstra(0, 1)
	require.NoError(t, err)
	require.Equal(t, 1.0, d)

	d, err = eng.Dijkstra(0, 2)
	require.NoError(t, err)
	require.True(t, math.IsInf(d, 1), "beyond the cap is unreachable")

	path, err := eng.ReconstructPath(0, 2)
	require.NoError(t, err)
	require.Empty(t, path)
}

func TestDijkstra_InfEdgeThreshold(t *testing.T) {
	// A→C(10) is a wall at threshold 5, so A→B→C(6) is taken.
	edges := []dijkstra.Edge{
		{From: 0, To: 1, Cost: 2},
		{From: 1, To: 2, Cost: 4},
		{From: 0, To: 2, Cost: 10},
		{From: 0, To: 3, Cost: 5},
	}
	eng := build(t, 4, edges, dijkstra.WithInfEdgeThreshold(5))

	d, err := eng.Dijkstra(0, 2)
	require.NoError(t, err)
	require.Equal(t, 6.0, d)

	d, err = eng.Dijkstra(0, 3)
	require.NoError(t, err)
	require.True(t, math.IsInf(d, 1), "an edge at the threshold is impassable")
}

func TestDijkstra_InfiniteCostEdge(t *testing.T) {
	eng := build(t, 2, []dijkstra.Edge{{From: 0, To: 1, Cost: math.Inf(1)}})

	d, err := eng.Dijkstra(0, 1)
	require.NoError(t, err)
	require.True(t, math.IsInf(d, 1))
}

func TestDijkstra_CustomCompare(t *testing.T) {
	var calls int
	strict := func(a, b dijkstra.Item) int {
		calls++
		switch {
		case a.Dist < b.Dist:
			return -1
		case a.Dist > b.Dist:
			return 1
		}

		return b.Node - a.Node
	}
	eng := build(t, 8, cityEdges, dijkstra.WithCompare(strict))

	d, err := eng.Dijkstra(3, 7)
	require.NoError(t, err)
	require.Equal(t, 860.0, d)
	require.Positive(t, calls, "injected strategy must order the queue")
}

func TestEpsilonCompare(t *testing.T) {
	cmp := dijkstra.EpsilonCompare(dijkstra.DefaultEpsilon)
	a := dijkstra.Item{Node: 0, Dist: 1.0}
	require.Zero(t, cmp(a, dijkstra.Item{Node: 1, Dist: 1.0 + 1e-9}))
	require.Negative(t, cmp(a, dijkstra.Item{Node: 1, Dist: 1.1}))
	require.Positive(t, cmp(dijkstra.Item{Node: 1, Dist: 1.1}, a))
}

func TestDijkstra_Logger(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	eng := build(t, 8, cityEdges, dijkstra.WithLogger(logger))

	_, err := eng.Dijkstra(3, 7)
	require.NoError(t, err)
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	require.Equal(t, "dijkstra run", entry.Message)
	require.Equal(t, "completed", entry.Data["outcome"])
	require.Equal(t, 3, entry.Data["source"])

	_, err = eng.Dijkstra(7, 3)
	require.NoError(t, err)
	require.Equal(t, "exhausted", hook.LastEntry().Data["outcome"])
	require.Len(t, hook.AllEntries(), 2)
}

// ------------------------------------------------------------------------
// 4. Properties on random graphs, checked against brute force.
// ------------------------------------------------------------------------

// bruteForce returns the cheapest simple path cost from s to t, or +Inf.
func bruteForce(adj [][]dijkstra.Edge, s, t int) float64 {
	best := math.Inf(1)
	onPath := make([]bool, len(adj))
	var walk func(u int, cost float64)
	walk = func(u int, cost float64) {
		if u == t {
			best = math.Min(best, cost)
			return
		}
		onPath[u] = true
		for _, e := range adj[u] {
			if !onPath[e.To] {
				walk(e.To, cost+e.Cost)
			}
		}
		onPath[u] = false
	}
	walk(s, 0)

	return best
}

// pathCost sums the cheapest edge between consecutive path nodes.
func pathCost(t *testing.T, adj [][]dijkstra.Edge, path []int) float64 {
	t.Helper()
	var total float64
	for i := 0; i+1 < len(path); i++ {
		step := math.Inf(1)
		for _, e := range adj[path[i]] {
			if e.To == path[i+1] {
				step = math.Min(step, e.Cost)
			}
		}
		require.False(t, math.IsInf(step, 1), "no edge %d→%d", path[i], path[i+1])
		total += step
	}

	return total
}

func randomEngine(t *testing.T, rng *rand.Rand, n, m int) *dijkstra.Engine {
	t.Helper()
	eng, err := dijkstra.New(n)
	require.NoError(t, err)
	for i := 0; i < m; i++ {
		require.NoError(t, eng.AddEdge(rng.Intn(n), rng.Intn(n), float64(rng.Intn(20))))
	}

	return eng
}

func TestDijkstra_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 25; round++ {
		n := 1 + rng.Intn(7)
		eng := randomEngine(t, rng, n, rng.Intn(3*n+1))
		adj := eng.Graph().Adjacency()

		for s := 0; s < n; s++ {
			for tgt := 0; tgt < n; tgt++ {
				d, err := eng.Dijkstra(s, tgt)
				require.NoError(t, err)
				require.Equal(t, bruteForce(adj, s, tgt), d, "round %d: %d→%d", round, s, tgt)

				path, err := eng.ReconstructPath(s, tgt)
				require.NoError(t, err)
				if math.IsInf(d, 1) {
					require.Empty(t, path)
					continue
				}
				require.Equal(t, s, path[0])
				require.Equal(t, tgt, path[len(path)-1])
				require.Equal(t, d, pathCost(t, adj, path))
			}
		}
	}
}

func TestDijkstra_TriangleProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 10; round++ {
		n := 2 + rng.Intn(6)
		eng := randomEngine(t, rng, n, 3*n)
		adj := eng.Graph().Adjacency()

		for s := 0; s < n; s++ {
			dist := make([]float64, n)
			for v := 0; v < n; v++ {
				d, err := eng.Dijkstra(s, v)
				require.NoError(t, err)
				dist[v] = d
			}
			require.Zero(t, dist[s])
			for _, list := range adj {
				for _, e := range list {
					if math.IsInf(dist[e.From], 1) || math.IsInf(dist[e.To], 1) {
						continue
					}
					require.LessOrEqual(t, dist[e.To], dist[e.From]+e.Cost)
				}
			}
		}
	}
}

// ------------------------------------------------------------------------
// 5. Concurrency: a shared Engine serialises runs.
// ------------------------------------------------------------------------

func TestDijkstra_SharedEngine(t *testing.T) {
	eng := build(t, 8, cityEdges)

	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			src, want, wantPath := 3, 860.0, []int{3, 5, 2, 7}
			if i%2 == 1 {
				src, want, wantPath = 0, 733.0, []int{0, 1, 2, 7}
			}
			d, err := eng.Dijkstra(src, 7)
			if err != nil || d != want {
				errs <- errors.New("unexpected distance under contention")
				return
			}
			path, err := eng.ReconstructPath(src, 7)
			if err != nil || len(path) != len(wantPath) || path[0] != src {
				errs <- errors.New("unexpected path under contention")
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
