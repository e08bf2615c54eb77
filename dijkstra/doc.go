// Package dijkstra provides a single-pair shortest-path Engine on weighted,
// directed graphs with non-negative edge costs.
//
// Overview:
//
//   - Nodes are integer indices in [0, n); n is fixed when the Engine is built.
//   - Edges are directed and append-only; parallel edges and self-loops are allowed.
//   - Dijkstra(source, target) returns the minimal total cost, or +Inf if target
//     cannot be reached. The run stops as soon as target is settled.
//   - ReconstructPath(source, target) re-runs the search from source and walks
//     the predecessor table back from target.
//
// Key features:
//
//   - Injectable ordering strategy (WithCompare) over queued (node, distance) pairs.
//     The default, EpsilonCompare(1e-6), treats near-equal distances as ties.
//   - Lazy-deletion binary heap: no decrease-key, stale entries are skipped on pop.
//   - MaxDistance and InfEdgeThreshold caps for bounded searches and closed roads.
//   - Explicit "no predecessor" markers, so node 0 is never ambiguous.
//
// Error handling (sentinel errors, all wrapping ErrInvalidArgument):
//
//   - ErrNegativeNodeCount, ErrNodeOutOfRange: bad sizes or indices.
//   - ErrNegativeWeight, ErrBadWeight: rejected edge costs; the graph is left untouched.
//   - ErrNilCompare, ErrBadEpsilon, ErrBadMaxDistance, ErrBadInfThreshold: bad options.
//
// Unreachability is not an error: Dijkstra returns +Inf and ReconstructPath
// returns an empty slice.
//
// API reference:
//
//	eng, err := dijkstra.New(8)
//	_ = eng.AddEdge(3, 5, 239)
//	d, err := eng.Dijkstra(3, 7)          // float64, +Inf if unreachable
//	path, err := eng.ReconstructPath(3, 7) // []int{3, ..., 7} or []int{}
//
// Thread safety:
//
//   - Engine methods serialise on an internal mutex; one Engine may be shared.
//   - Graph is unsynchronised; it is safe for concurrent readers once built.
package dijkstra
