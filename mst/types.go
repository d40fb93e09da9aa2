// Configuration options, result types and sentinel errors for
// spanning-forest computation.

package mst

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/tddschn/Easy-Graph/core"
)

// ErrNilGraph indicates that a nil graph was passed in.
var ErrNilGraph = errors.New("mst: graph is nil")

// ErrEmptyWeightKey indicates that Options.WeightKey is empty.
var ErrEmptyWeightKey = errors.New("mst: empty weight key")

// ErrUnknownMethod indicates that Options.Method is neither MethodPrim nor MethodKruskal.
var ErrUnknownMethod = errors.New("mst: unknown method")

// ErrUndefinedWeight indicates that an edge weight resolved to NaN while
// Options.SkipUndefinedWeights was false. The concrete error returned is an
// *UndefinedWeightError; test for it with errors.Is or errors.As.
var ErrUndefinedWeight = errors.New("mst: NaN found as an edge weight")

// UndefinedWeightError reports the edge whose weight resolved to NaN.
// It aborts the whole computation; no partial forest is returned.
type UndefinedWeightError struct {
	// From and To are the endpoint labels, in the direction the edge was met.
	From, To string

	// Attrs is a copy of the offending edge's full attribute payload.
	Attrs core.Attrs
}

// Error implements error.
func (e *UndefinedWeightError) Error() string {
	return fmt.Sprintf("%s. Edge (%s %s %v)", ErrUndefinedWeight.Error(), e.From, e.To, e.Attrs)
}

// Is makes errors.Is(err, ErrUndefinedWeight) hold.
func (e *UndefinedWeightError) Is(target error) bool { return target == ErrUndefinedWeight }

// MethodPrim selects the Prim-style multi-component frontier expansion.
const MethodPrim = "prim"

// MethodKruskal selects the Kruskal-style global sort + disjoint-set construction.
const MethodKruskal = "kruskal"

// DefaultWeightKey is the attribute key read for edge weights unless overridden.
const DefaultWeightKey = "weight"

// DefaultWeight is the weight magnitude assumed for an edge whose payload
// lacks the weight key. It is a modelling default, not a measured weight:
// such an edge scores +1 when minimizing and −1 when maximizing.
const DefaultWeight = 1.0

// Graph is the read-only view Prim and Kruskal consume. *core.Graph satisfies it.
//
// Adjacency must be symmetric: an undirected edge u–v appears once under u
// (To == v) and once under v (To == u). Label is consulted only when edges
// are emitted, never for algorithmic decisions.
type Graph interface {
	NodeIDs() []core.NodeID
	Adjacency(id core.NodeID) []core.Adjacent
	Label(id core.NodeID) string
}

// Edge is one selected forest edge.
type Edge struct {
	// From and To are endpoint labels, From being the side already in the tree.
	From, To string

	// Weight is the resolved, unsigned weight (DefaultWeight when the key is absent).
	Weight float64

	// Attrs is a copy of the full attribute payload, or nil when
	// Options.IncludeAttributes is false.
	Attrs core.Attrs
}

// Options configures a spanning-forest computation.
//
// Fields:
//
//	Minimize             - true: minimum spanning forest; false: maximum.
//	WeightKey            - attribute key holding the numeric weight.
//	IncludeAttributes    - emit each edge's attribute payload.
//	SkipUndefinedWeights - true: drop NaN-weighted edges; false: fail with *UndefinedWeightError.
//	Method               - MethodPrim or MethodKruskal (Compute only).
//	Logger               - optional debug sink; nil discards.
//	Recorder             - optional run instrumentation; nil is a no-op.
//
// Use DefaultOptions() as the starting point; the zero value has an empty
// WeightKey and is rejected.
type Options struct {
	Minimize             bool
	WeightKey            string
	IncludeAttributes    bool
	SkipUndefinedWeights bool
	Method               string

	Logger   *log.Logger
	Recorder Recorder
}

// Option configures Options.
type Option func(*Options)

// WithMinimum selects a minimum spanning forest.
func WithMinimum() Option {
	return func(o *Options) { o.Minimize = true }
}

// WithMaximum selects a maximum spanning forest.
func WithMaximum() Option {
	return func(o *Options) { o.Minimize = false }
}

// WithWeightKey sets the attribute key read for edge weights.
func WithWeightKey(key string) Option {
	return func(o *Options) { o.WeightKey = key }
}

// WithAttributes controls whether emitted edges carry their attribute payload.
func WithAttributes(include bool) Option {
	return func(o *Options) { o.IncludeAttributes = include }
}

// WithSkipUndefinedWeights controls the NaN policy: true drops such edges,
// false aborts the computation on the first one.
func WithSkipUndefinedWeights(skip bool) Option {
	return func(o *Options) { o.SkipUndefinedWeights = skip }
}

// WithMethod sets the construction method: MethodPrim or MethodKruskal.
func WithMethod(m string) Option {
	return func(o *Options) { o.Method = m }
}

// WithLogger sets a debug logger.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithRecorder sets a run recorder, e.g. a *metrics.Prometheus.
func WithRecorder(r Recorder) Option {
	return func(o *Options) { o.Recorder = r }
}

// DefaultOptions returns Options initialized to:
//
//	– Minimize             = true
//	– WeightKey            = DefaultWeightKey
//	– IncludeAttributes    = true
//	– SkipUndefinedWeights = false
//	– Method               = MethodPrim
//
// Complexity: O(1).
func DefaultOptions() Options {
	return Options{
		Minimize:             true,
		WeightKey:            DefaultWeightKey,
		IncludeAttributes:    true,
		SkipUndefinedWeights: false,
		Method:               MethodPrim,
	}
}

// validate checks the graph and the fields every method needs.
func (o Options) validate(g Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	if cg, ok := g.(*core.Graph); ok && cg == nil {
		return ErrNilGraph
	}
	if o.WeightKey == "" {
		return ErrEmptyWeightKey
	}

	return nil
}
