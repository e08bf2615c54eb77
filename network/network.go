// Package network attaches human-readable labels to the nodes of a
// dijkstra.Engine and answers route queries by label.
//
// A Network is built once from a list of unique labels (index order is
// preserved), connected with directed, weighted roads and then queried with
// Route. Descriptions can be decoded from YAML or HCL; see decode.go.
//
// Errors:
//
//	ErrEmptyLabel        - a label is the empty string.
//	ErrDuplicateLabel    - the same label appears twice.
//	ErrUnknownLabel      - a road or query references a label not in the network.
//	ErrUnsupportedFormat - LoadFile got an extension it cannot decode.
package network

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvroute/dijkstra"
)

// Sentinel errors for network construction and queries.
var (
	// ErrEmptyLabel indicates a node label is the empty string.
	ErrEmptyLabel = errors.New("network: label is empty")

	// ErrDuplicateLabel indicates two nodes share one label.
	ErrDuplicateLabel = errors.New("network: duplicate label")

	// ErrUnknownLabel indicates a label that is not part of the network.
	ErrUnknownLabel = errors.New("network: unknown label")

	// ErrUnsupportedFormat indicates a description file of unknown type.
	ErrUnsupportedFormat = errors.New("network: unsupported description format")
)

// Route is the answer to a labelled shortest-path query.
type Route struct {
	From      string
	To        string
	Distance  float64  // +Inf when !Reachable
	Stops     []string // From … To inclusive; empty when !Reachable
	Reachable bool
}

// Network is a labelled view over a dijkstra.Engine.
// Its methods are safe for concurrent use once construction is finished.
type Network struct {
	labels []string
	index  map[string]int
	eng    *dijkstra.Engine
}

// New creates a Network with one node per label, in order.
// opts are forwarded to dijkstra.New.
func New(labels []string, opts ...dijkstra.Option) (*Network, error) {
	index := make(map[string]int, len(labels))
	for i, l := range labels {
		if l == "" {
			return nil, fmt.Errorf("%w: node %d", ErrEmptyLabel, i)
		}
		if _, dup := index[l]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLabel, l)
		}
		index[l] = i
	}

	eng, err := dijkstra.New(len(labels), opts...)
	if err != nil {
		return nil, err
	}

	return &Network{
		labels: append([]string(nil), labels...),
		index:  index,
		eng:    eng,
	}, nil
}

// Connect adds a one-way road from → to with the given cost.
func (n *Network) Connect(from, to string, cost float64) error {
	u, err := n.Index(from)
	if err != nil {
		return err
	}
	v, err := n.Index(to)
	if err != nil {
		return err
	}
	if err = n.eng.AddEdge(u, v, cost); err != nil {
		return fmt.Errorf("network: road %s→%s: %w", from, to, err)
	}

	return nil
}

// Route finds the cheapest way from → to.
// An unreachable destination is not an error: Reachable is false.
func (n *Network) Route(from, to string) (Route, error) {
	u, err := n.Index(from)
	if err != nil {
		return Route{}, err
	}
	v, err := n.Index(to)
	if err != nil {
		return Route{}, err
	}

	d, path, err := n.eng.ShortestPath(u, v)
	if err != nil {
		return Route{}, err
	}

	r := Route{From: from, To: to, Distance: d, Stops: make([]string, 0, len(path))}
	if math.IsInf(d, 1) {
		return r, nil
	}
	for _, i := range path {
		r.Stops = append(r.Stops, n.labels[i])
	}
	r.Reachable = true

	return r, nil
}

// Index returns the node index of label.
func (n *Network) Index(label string) (int, error) {
	i, ok := n.index[label]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLabel, label)
	}

	return i, nil
}

// Label returns the label of node i.
func (n *Network) Label(i int) (string, error) {
	if i < 0 || i >= len(n.labels) {
		return "", fmt.Errorf("%w: %d", dijkstra.ErrNodeOutOfRange, i)
	}

	return n.labels[i], nil
}

// Labels returns all labels in index order.
func (n *Network) Labels() []string {
	return append([]string(nil), n.labels...)
}

// Engine exposes the underlying engine.
func (n *Network) Engine() *dijkstra.Engine { return n.eng }
