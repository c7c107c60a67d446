// Package aggregate folds the unordered result stream into one of three
// output shapes: a per-file tree, a merged NDJSON stream, or a CSV matrix.
//
// The merged and tabular modes restore input determinism by re-walking the
// truncated record list in original order and consulting an index built from
// the results, so the output is invariant under any arrival order of results
// from the worker pool.
package aggregate
