// Package dijkstra defines core types and configuration options
// for the single-pair shortest-path Engine.
//
// Nodes are dense integer indices in [0, n). Every edge is directed and
// carries a non-negative float64 cost. The Engine keeps the distance and
// predecessor tables of its last run so callers may inspect them.
//
// Options:
//
//	– WithCompare:         ordering strategy for queued (node, distance) pairs.
//	– WithEpsilon:         tolerance of the default ordering (default 1e-6).
//	– WithMaxDistance:     optional cap on distances to explore.
//	– WithInfEdgeThreshold: edges with cost >= this threshold are impassable.
//	– WithLogger:          optional logrus.FieldLogger for per-run debug entries.
//
// Errors (sentinel), every one of them wraps ErrInvalidArgument:
//
//	– ErrNegativeNodeCount if n < 0.
//	– ErrNodeOutOfRange    if a node index lies outside [0, n).
//	– ErrNegativeWeight    if an edge cost is negative.
//	– ErrBadWeight         if an edge cost is NaN.
//	– ErrNilCompare        if WithCompare received nil.
//	– ErrBadEpsilon        if the epsilon is negative or NaN.
//	– ErrBadMaxDistance    if MaxDistance < 0.
//	– ErrBadInfThreshold   if InfEdgeThreshold <= 0.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// DefaultEpsilon is the tolerance under which two queued distances are
// ordered as equal by the default strategy.
const DefaultEpsilon = 1e-6

// ErrInvalidArgument is the root of every error reported by this package.
var ErrInvalidArgument = errors.New("dijkstra: invalid argument")

// Sentinel errors returned by the Graph and Engine.
var (
	// ErrNegativeNodeCount indicates a graph was requested with n < 0.
	ErrNegativeNodeCount = fmt.Errorf("%w: negative node count", ErrInvalidArgument)

	// ErrNodeOutOfRange indicates a node index outside [0, n).
	ErrNodeOutOfRange = fmt.Errorf("%w: node index out of range", ErrInvalidArgument)

	// ErrNegativeWeight indicates an edge with negative cost.
	ErrNegativeWeight = fmt.Errorf("%w: negative edge weight", ErrInvalidArgument)

	// ErrBadWeight indicates an edge cost that is not a number.
	ErrBadWeight = fmt.Errorf("%w: edge weight is NaN", ErrInvalidArgument)

	// ErrNilCompare indicates WithCompare was given a nil strategy.
	ErrNilCompare = fmt.Errorf("%w: compare strategy is nil", ErrInvalidArgument)

	// ErrBadEpsilon indicates a negative or NaN ordering tolerance.
	ErrBadEpsilon = fmt.Errorf("%w: epsilon must be non-negative", ErrInvalidArgument)

	// ErrBadMaxDistance indicates MaxDistance was set to a negative value.
	ErrBadMaxDistance = fmt.Errorf("%w: MaxDistance must be non-negative", ErrInvalidArgument)

	// ErrBadInfThreshold indicates InfEdgeThreshold was set to zero or a negative value.
	ErrBadInfThreshold = fmt.Errorf("%w: InfEdgeThreshold must be positive", ErrInvalidArgument)
)

// Item is a queued (node, tentative distance) pair.
type Item struct {
	Node int
	Dist float64
}

// CompareFunc orders two queued items. It returns a negative number when a
// must be extracted before b, a positive number when b goes first and zero
// when the two are interchangeable.
type CompareFunc func(a, b Item) int

// EpsilonCompare returns the default ordering: ascending by distance, with
// distances closer than eps treated as equal.
func EpsilonCompare(eps float64) CompareFunc {
	return func(a, b Item) int {
		if math.Abs(a.Dist-b.Dist) < eps {
			return 0
		}
		if a.Dist > b.Dist {
			return 1
		}

		return -1
	}
}

// Options configures an Engine.
//
// Compare          – ordering strategy; nil means EpsilonCompare(Epsilon).
// Epsilon          – tolerance of the default ordering. Must be ≥ 0.
// MaxDistance      – vertices farther than this are not explored. Must be ≥ 0.
// InfEdgeThreshold – edges with cost ≥ this value are skipped. Must be > 0.
// Logger           – receives one debug entry per run; nil disables logging.
type Options struct {
	Compare          CompareFunc
	Epsilon          float64
	MaxDistance      float64
	InfEdgeThreshold float64
	Logger           logrus.FieldLogger

	compareSet bool // WithCompare was applied, even with nil
}

// Option represents a functional option for configuring an Engine.
type Option func(*Options)

// WithCompare injects a custom ordering strategy for the priority queue.
// Passing nil makes New fail with ErrNilCompare.
func WithCompare(fn CompareFunc) Option {
	return func(o *Options) {
		o.Compare = fn
		o.compareSet = true
	}
}

// WithEpsilon sets the tolerance used by the default ordering strategy.
// It has no effect when WithCompare is also given.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		o.Epsilon = eps
	}
}

// WithMaxDistance caps exploration: nodes whose distance would exceed max
// are treated as unreachable.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold marks every edge with cost ≥ threshold as impassable.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// WithLogger attaches a logger receiving a debug entry after each run.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - Compare:          nil (EpsilonCompare(Epsilon) is used).
//   - Epsilon:          DefaultEpsilon.
//   - MaxDistance:      +Inf (no cap).
//   - InfEdgeThreshold: +Inf (no impassable edges).
//   - Logger:           nil.
func DefaultOptions() Options {
	return Options{
		Epsilon:          DefaultEpsilon,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// validate checks option values and resolves the effective ordering.
func (o *Options) validate() error {
	if o.compareSet && o.Compare == nil {
		return ErrNilCompare
	}
	if math.IsNaN(o.Epsilon) || o.Epsilon < 0 {
		return fmt.Errorf("%w: got %v", ErrBadEpsilon, o.Epsilon)
	}
	if math.IsNaN(o.MaxDistance) || o.MaxDistance < 0 {
		return fmt.Errorf("%w: got %v", ErrBadMaxDistance, o.MaxDistance)
	}
	if math.IsNaN(o.InfEdgeThreshold) || o.InfEdgeThreshold <= 0 {
		return fmt.Errorf("%w: got %v", ErrBadInfThreshold, o.InfEdgeThreshold)
	}
	if o.Compare == nil {
		o.Compare = EpsilonCompare(o.Epsilon)
	}

	return nil
}
