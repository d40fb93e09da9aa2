package mst_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/tddschn/Easy-Graph/mst"
)

// TestLoggerReceivesDebugEvents routes debug output into a buffer.
func TestLoggerReceivesDebugEvents(t *testing.T) {
	g := buildGraph(t, []string{"Z"}, []wedge{
		{"A", "B", 3.0}, {"B", "C", 1.0}, {"A", "C", math.NaN()},
	})

	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	_, err := mst.SpanningEdges(g, mst.WithLogger(logger), mst.WithSkipUndefinedWeights(true))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "spanning forest start")
	assert.Contains(t, out, "component grown")
	assert.Contains(t, out, "skipped undefined weight")
	assert.Contains(t, out, "spanning forest built")
}

// TestLoggerQuietAboveDebug: the default info level suppresses every event.
func TestLoggerQuietAboveDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	_, err := mst.SpanningEdges(buildTriangle(t), mst.WithLogger(logger))
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

// TestRecorderStats checks the Stats handed to the Recorder per method.
func TestRecorderStats(t *testing.T) {
	g := buildGraph(t, []string{"Z"}, []wedge{
		{"A", "B", 3.0}, {"B", "C", 1.0}, {"A", "C", 2.0},
	})

	for _, m := range methods {
		rec := &captureRecorder{}
		_, err := mst.SpanningEdges(g, mst.WithMethod(m), mst.WithMaximum(), mst.WithRecorder(rec))
		require.NoError(t, err)

		require.Len(t, rec.stats, 1)
		s := rec.stats[0]
		assert.NoError(t, rec.errs[0])
		assert.Equal(t, m, s.Method)
		assert.False(t, s.Minimize)
		assert.Equal(t, 4, s.Nodes)
		assert.Equal(t, 2, s.Edges)
		assert.Equal(t, 2, s.Components, "triangle plus isolated Z")
		assert.Positive(t, s.Candidates)
		assert.Zero(t, s.SkippedUndefined)
	}
}

// TestConcurrentReaders runs many computations over one shared graph.
func TestConcurrentReaders(t *testing.T) {
	g := buildMediumGraph(t, 200, 800)

	want, err := mst.SpanningEdges(g, mst.WithMethod(mst.MethodKruskal))
	require.NoError(t, err)

	const workers = 16
	totals := make([]float64, workers)
	var eg errgroup.Group
	for i := 0; i < workers; i++ {
		eg.Go(func() error {
			edges, err := mst.SpanningEdges(g, mst.WithMethod(methods[i%len(methods)]))
			if err != nil {
				return err
			}
			totals[i] = mst.TotalWeight(edges)

			return nil
		})
	}
	require.NoError(t, eg.Wait())

	for i, got := range totals {
		assert.InDelta(t, mst.TotalWeight(want), got, 1e-9, "worker %d", i)
	}
}
