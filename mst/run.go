package mst

import (
	"io"
	"maps"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tddschn/Easy-Graph/core"
)

// Stats summarizes one computation. It is handed to the Recorder when the
// call returns, whether it succeeded or not.
type Stats struct {
	Method           string
	Minimize         bool
	Nodes            int           // nodes in the input graph
	Edges            int           // edges selected (0 on failure)
	Components       int           // trees in the forest (0 on failure)
	Candidates       int           // frontier pushes (Prim) or sorted edges (Kruskal)
	SkippedUndefined int           // NaN-weighted edges dropped by policy
	Duration         time.Duration // wall time of the call
}

// Recorder receives one Stats per computation. Implementations must be safe
// for concurrent use when the same Recorder is shared between calls.
type Recorder interface {
	RecordRun(stats Stats, err error)
}

type nopRecorder struct{}

func (nopRecorder) RecordRun(Stats, error) {}

var discardLogger = log.New(io.Discard)

// run carries the per-call state shared by Prim and Kruskal: the resolved
// configuration, the weight sign and the running statistics. It is created
// fresh for every call and never shared.
type run struct {
	g     Graph
	opts  Options
	sign  float64
	log   *log.Logger
	rec   Recorder
	start time.Time
	stats Stats
}

func newRun(g Graph, opts Options, method string) *run {
	r := &run{
		g:     g,
		opts:  opts,
		sign:  1,
		log:   opts.Logger,
		rec:   opts.Recorder,
		start: time.Now(),
		stats: Stats{Method: method, Minimize: opts.Minimize},
	}
	if !opts.Minimize {
		r.sign = -1
	}
	if r.log == nil {
		r.log = discardLogger
	}
	if r.rec == nil {
		r.rec = nopRecorder{}
	}

	return r
}

// resolve returns the signed weight of edge u–v and its unsigned weight.
// ok is false when the edge must be dropped under the NaN policy; err is a
// *UndefinedWeightError when the policy forbids dropping it.
func (r *run) resolve(u, v core.NodeID, attrs core.Attrs) (signed, weight float64, ok bool, err error) {
	weight = weightOf(attrs, r.opts.WeightKey)
	if math.IsNaN(weight) {
		if !r.opts.SkipUndefinedWeights {
			return 0, 0, false, &UndefinedWeightError{
				From:  r.g.Label(u),
				To:    r.g.Label(v),
				Attrs: maps.Clone(attrs),
			}
		}
		r.stats.SkippedUndefined++
		r.log.Debug("skipped undefined weight", "from", r.g.Label(u), "to", r.g.Label(v))

		return 0, 0, false, nil
	}

	return weight * r.sign, weight, true, nil
}

// emit translates an accepted candidate into the caller-visible Edge.
func (r *run) emit(c candidate) Edge {
	e := Edge{From: r.g.Label(c.from), To: r.g.Label(c.to), Weight: c.weight}
	if r.opts.IncludeAttributes {
		e.Attrs = maps.Clone(c.attrs)
		if e.Attrs == nil {
			e.Attrs = core.Attrs{}
		}
	}

	return e
}

// finish records the outcome and logs a summary.
func (r *run) finish(edges []Edge, err error) {
	r.stats.Duration = time.Since(r.start)
	if err != nil {
		r.stats.Edges, r.stats.Components = 0, 0
		r.log.Debug("spanning forest failed", "method", r.stats.Method, "err", err)
	} else {
		r.stats.Edges = len(edges)
		r.log.Debug("spanning forest built",
			"method", r.stats.Method,
			"nodes", r.stats.Nodes,
			"edges", r.stats.Edges,
			"components", r.stats.Components,
			"skipped", r.stats.SkippedUndefined,
			"duration", r.stats.Duration)
	}
	r.rec.RecordRun(r.stats, err)
}

// weightOf reads key from attrs as a float64.
//
//   - key absent          → DefaultWeight
//   - numeric kinds       → converted value (NaN stays NaN)
//   - Float64() providers → their value, NaN on error (covers json.Number)
//   - anything else       → NaN
func weightOf(attrs core.Attrs, key string) float64 {
	v, ok := attrs[key]
	if !ok {
		return DefaultWeight
	}

	switch x := v.(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int8:
		return float64(x)
	case int16:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case uint:
		return float64(x)
	case uint8:
		return float64(x)
	case uint16:
		return float64(x)
	case uint32:
		return float64(x)
	case uint64:
		return float64(x)
	case interface{ Float64() (float64, error) }:
		f, err := x.Float64()
		if err != nil {
			return math.NaN()
		}

		return f
	default:
		return math.NaN()
	}
}
