// SPDX-License-Identifier: MIT
// Package: Easy-Graph/builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is(err, ErrX); constructors attach context with
// %w, e.g. "Cycle: n=2 < min=3: builder: parameter too small".

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter (n, rows, cols) below the
// constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG
// (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a programmer error in composition, such as a
// nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
