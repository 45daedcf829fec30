// Package plan resolves a validated model into the two decisions the
// emitters execute: how the key is assembled and which codec the type
// serializes with.
//
// Resolution pipeline:
//  1. Validate the model (aggregated diagnostics; errors block everything)
//  2. Pick exactly one key strategy (item closure > field closure > single
//     field > composite fields; unions resolve each variant independently)
//  3. Build the assembly plan: contributing fields in declaration order,
//     effective separator and prefix
//  4. Select the serialization mode (native unless serde_compat)
//
// Composite key order is always field declaration order. That ordering is
// what keeps keys stable across versions, so it is never derived from
// attribute order or sorted.
package plan
