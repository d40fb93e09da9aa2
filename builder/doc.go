// Package builder generates deterministic weighted fixtures on *core.Graph:
// paths, cycles, stars, complete graphs, grids and sparse random graphs,
// each an undirected graph whose edges carry a numeric weight attribute.
//
// The package offers:
//
//   - BuildGraph(gopts, bopts, cons...): one orchestrator that creates the
//     graph, resolves options and applies constructors in order.
//   - Constructors: Path, Cycle, Star, Complete, Grid, RandomSparse, and the
//     Scoped combinator that prefixes every label so several constructors
//     can lay down disjoint components in one graph.
//   - Vertex-ID schemes (IDFn): DefaultIDFn ("0","1",…), SymbolIDFn
//     ("A".."Z"), ExcelColumnIDFn ("A","Z","AA",…), SymbolNumberIDFn(prefix).
//   - Edge-weight distributions (WeightFn): DefaultWeightFn, ConstantWeightFn,
//     UniformWeightFn, IntegerWeightFn, and UndefinedWeightFn, which turns a
//     share of weights into NaN for exercising the NaN policy of package mst.
//
// Guarantees:
//
//   - Same options, seed and constructor order give identical graphs.
//   - Constructors never panic; they return errors wrapping ErrTooFewVertices,
//     ErrInvalidProbability or ErrNeedRandSource. Option constructors panic on
//     meaningless input (nil functions, negative bounds).
//   - Every edge payload is core.Attrs{weightKey: w}; the key defaults to
//     "weight" and is changed with WithWeightKey.
package builder
