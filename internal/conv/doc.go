// Package conv provides overflow-checked integer arithmetic for size computations.
//
// Use cases:
//   - Turning element counts into byte counts before allocating
//   - Rounding byte counts up to an alignment boundary
//
// For arithmetic that is provably safe by construction (loop indices, offsets
// inside an existing allocation), use plain operators instead to avoid overhead.
package conv
