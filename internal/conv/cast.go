package conv

import (
	"fmt"
	"math"
	"reflect"

	"github.com/hupe1980/mvector/internal/kernels"
)

// IntToUint32 converts int to uint32 safely.
func IntToUint32(v int) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint32 (negative)", v)
	}
	// On 64-bit systems, int can exceed uint32 max; on 32-bit, this is always false
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint32 (too large)", v)
	}
	return uint32(v), nil
}

// IntToUint64 converts int to uint64 safely.
func IntToUint64(v int) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint64 (negative)", v)
	}
	return uint64(v), nil
}

// Uint64ToInt converts uint64 to int safely.
func Uint64ToInt(v uint64) (int, error) {
	if v > uint64(math.MaxInt) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int (too large)", v)
	}
	return int(v), nil
}

// Uint32ToInt converts uint32 to int safely.
func Uint32ToInt(v uint32) (int, error) {
	if uint64(v) > uint64(math.MaxInt) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int (too large)", v)
	}
	return int(v), nil
}

// Exact converts v to U and reports whether the value survived unchanged.
//
// A conversion is exact when converting back yields v and the sign is kept.
// NaN only converts exactly into another floating point kind. Floats outside
// the range of an integer U are rejected before converting, since such
// conversions are implementation-defined.
func Exact[U, V kernels.Number](v V) (U, bool) {
	if !kernels.IsIntegral[V]() && kernels.IsIntegral[U]() {
		lo, hi := integerRange[U]()
		if f := float64(v); !(f >= lo && f < hi) {
			var zero U
			return zero, false
		}
	}
	u := U(v)
	if math.IsNaN(float64(v)) {
		return u, math.IsNaN(float64(u))
	}
	if V(u) != v {
		return u, false
	}
	if (v < 0) != (u < 0) {
		return u, false
	}
	return u, true
}

// integerRange returns the half-open interval [lo, hi) of values an integer
// type U can hold. Both bounds are powers of two and exact in float64.
func integerRange[U kernels.Number]() (lo, hi float64) {
	t := reflect.TypeFor[U]()
	bits := t.Bits()
	switch t.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return 0, math.Ldexp(1, bits)
	default:
		return -math.Ldexp(1, bits-1), math.Ldexp(1, bits-1)
	}
}
