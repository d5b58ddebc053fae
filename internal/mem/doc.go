// Package mem provides checked buffer allocation.
//
// # Checked Allocation
//
// Alloc converts size overflow and runtime allocation panics into errors so
// callers can keep their previous state when a buffer cannot be obtained.
//
// # Aligned Allocation
//
// AllocAligned places pointer-free numeric buffers on 64-byte boundaries
// (AVX-512 friendly).
package mem
