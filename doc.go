// Package mvector provides Vector, a generic growable array with explicit
// value semantics, bounds-checked access, and type-constrained arithmetic.
//
// # Quick Start
//
//	v := mvector.Of(1, 2, 3)
//	mvector.AddAssignScalar(v, 1)          // v is [2 3 4]
//	w, _ := mvector.Mul(v, mvector.Of(2, 2, 2))
//	fmt.Println(w)                         // [4 6 8]
//
// # Value Semantics
//
// A Vector exclusively owns its buffer. Copies are explicit and deep:
//
//	c, _ := v.Clone()     // new buffer, same elements
//	_ = dst.CopyFrom(v)   // reuses dst's buffer when it is large enough
//
// Moves transfer the buffer in O(1) and leave the source empty:
//
//	m := mvector.Move(v)  // v.Len() == 0, v.Cap() == 0
//
// # Arithmetic
//
// Operators are free functions constrained to numeric element types; the
// modulo family additionally requires an integer type, so Mod on a float
// vector is a compile error rather than a runtime one:
//
//	mvector.Add(a, b)        // a + b
//	mvector.DivScalar(a, 2)  // a / 2
//	mvector.ScalarSub(10, a) // 10 - a
//	mvector.ModAssign(a, b)  // a %= b
//
// Integer division by zero returns ErrDivisionByZero before any element is
// written. Floating point division follows IEEE 754.
//
// # Memory Budget
//
// Vectors can share a memory budget. Allocations beyond it fail with an
// error matching ErrAllocation and resource.ErrMemoryLimitExceeded, and the
// vector is left unchanged:
//
//	budget := resource.NewController(resource.Config{MemoryLimitBytes: 1 << 20})
//	v, err := mvector.New[float64](1024, mvector.WithMemoryBudget(budget))
//
// # Encoding
//
// Vectors marshal to JSON and CBOR as plain sequences, and Encode/Decode
// provide a compact binary format with optional LZ4 or Zstandard compression.
package mvector
