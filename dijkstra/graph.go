package dijkstra

import (
	"fmt"
	"math"
)

// Edge is a directed, weighted connection From → To.
type Edge struct {
	// From is the source node index; it always equals the adjacency slot
	// the edge is stored under.
	From int

	// To is the destination node index.
	To int

	// Cost is the non-negative traversal cost.
	Cost float64
}

// Graph is a fixed-size, append-only adjacency list over nodes [0, n).
//
// Graph is not synchronized. Once fully built it is safe for any number of
// concurrent readers; Engine serialises its own access.
type Graph struct {
	adj   [][]Edge
	edges int
}

// NewGraph allocates storage for n nodes with no edges.
// Complexity: O(n)
func NewGraph(n int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrNegativeNodeCount, n)
	}

	return &Graph{adj: make([][]Edge, n)}, nil
}

// Order returns the number of nodes.
func (g *Graph) Order() int { return len(g.adj) }

// EdgeCount returns the number of edges added so far.
func (g *Graph) EdgeCount() int { return g.edges }

// AddEdge appends the directed edge from → to with the given cost.
// Nothing is stored when validation fails.
// Complexity: O(1) amortized
func (g *Graph) AddEdge(from, to int, cost float64) error {
	if err := g.checkNode(from); err != nil {
		return err
	}
	if err := g.checkNode(to); err != nil {
		return err
	}
	if math.IsNaN(cost) {
		return fmt.Errorf("%w: edge %d→%d", ErrBadWeight, from, to)
	}
	if cost < 0 {
		return fmt.Errorf("%w: edge %d→%d cost=%v", ErrNegativeWeight, from, to, cost)
	}

	g.adj[from] = append(g.adj[from], Edge{From: from, To: to, Cost: cost})
	g.edges++

	return nil
}

// Edges returns a copy of the outgoing edges of u in insertion order.
func (g *Graph) Edges(u int) ([]Edge, error) {
	if err := g.checkNode(u); err != nil {
		return nil, err
	}
	out := make([]Edge, len(g.adj[u]))
	copy(out, g.adj[u])

	return out, nil
}

// Adjacency returns a deep copy of the whole adjacency structure,
// indexed by source node.
// Complexity: O(n + E)
func (g *Graph) Adjacency() [][]Edge {
	out := make([][]Edge, len(g.adj))
	for u, list := range g.adj {
		out[u] = append([]Edge(nil), list...)
	}

	return out
}

// checkNode reports ErrNodeOutOfRange for indices outside [0, n).
func (g *Graph) checkNode(v int) error {
	if v < 0 || v >= len(g.adj) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrNodeOutOfRange, v, len(g.adj))
	}

	return nil
}
