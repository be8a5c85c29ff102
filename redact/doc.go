// Package redact produces copies of nested values with sensitive keys replaced.
//
// A target is walked recursively. Maps with string keys are treated as plain
// objects and copied key by key; slices and arrays are copied element by
// element; scalars are returned unchanged. Whenever an object key matches one
// of the configured keywords, its value is replaced (by a fixed [Literal] or a
// computed [Func]) and the walk does not descend any further below that key.
//
// Matching is controlled by [Config]:
//   - Partial (default true): keyword may appear anywhere in the key
//   - Strict (default true): case-sensitive comparison
//   - IgnoreUnknown (default false): pass structs, pointers, funcs and other
//     unsupported values through instead of failing with [ErrUnsupportedType]
//
// The input is never modified. Every map and slice in the result is freshly
// allocated, so the copy can be logged, stored, or mutated independently.
//
// Self-referencing maps or slices are not detected and recurse until the
// goroutine stack is exhausted.
package redact
