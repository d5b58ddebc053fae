package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/mvector/internal/kernels"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), //nolint:gosec // deterministic test data
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// FillUniform fills dst with random values in [0, 1).
// Locks only once per call (preferred over calling Float64 in a loop).
func FillUniform[T kernels.Float](r *RNG, dst []T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = T(r.rand.Float64())
	}
}

// FillRange fills dst with random values in [minVal, maxVal).
func FillRange[T kernels.Float](r *RNG, dst []T, minVal, maxVal T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	for i := range dst {
		dst[i] = minVal + T(r.rand.Float64())*span
	}
}

// FillInts fills dst with random integers in [minVal, maxVal).
// maxVal must be greater than minVal.
func FillInts[T kernels.Integer](r *RNG, dst []T, minVal, maxVal int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	for i := range dst {
		dst[i] = T(minVal + r.rand.Int63n(span))
	}
}

// NonZeroInts fills dst with random integers in [1, maxVal].
// Useful as divisors.
func NonZeroInts[T kernels.Integer](r *RNG, dst []T, maxVal int64) {
	FillInts(r, dst, 1, maxVal+1)
}

// Ints returns n random integers in [minVal, maxVal).
func Ints[T kernels.Integer](r *RNG, n int, minVal, maxVal int64) []T {
	out := make([]T, n)
	FillInts(r, out, minVal, maxVal)
	return out
}

// Floats returns n random values in [minVal, maxVal).
func Floats[T kernels.Float](r *RNG, n int, minVal, maxVal T) []T {
	out := make([]T, n)
	FillRange(r, out, minVal, maxVal)
	return out
}
