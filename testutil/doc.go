// Package testutil provides testing utilities for mvector.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG with generic fill helpers for
// every numeric element kind.
//
//	rng := testutil.NewRNG(seed)
//	xs := make([]int16, 64)
//	rng.FillInts(xs, -100, 100)     // uniform in [-100, 100)
//	ys := make([]float64, 64)
//	rng.FillUniform(ys)             // uniform in [0, 1)
package testutil
