// Package conv provides safe numeric type conversion utilities.
//
// The integer helpers perform bounds checking to prevent overflow/underflow
// when converting between signed/unsigned and different bit-width integer types.
//
// Use cases:
//   - Validating untrusted data from encoded vectors (lengths, counts)
//   - Converting between Go's int (platform-dependent) and fixed-width types
//   - Checking that a scalar of one numeric kind fits another without loss (Exact)
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices, bounded counters), use direct type casts instead to avoid overhead.
package conv
