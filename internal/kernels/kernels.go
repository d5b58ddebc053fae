// Package kernels provides the element-wise loops behind vector arithmetic.
// This is an internal package - external users should use the mvector functions.
//
// Every kernel writes into dst, which must be at least as long as the inputs.
// dst may alias an input; the loops read index i before writing it.
package kernels

import "reflect"

// Signed is the set of signed integer kinds.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of unsigned integer kinds.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is the set of integer kinds.
type Integer interface {
	Signed | Unsigned
}

// Float is the set of floating point kinds.
type Float interface {
	~float32 | ~float64
}

// Number is the set of kinds the arithmetic kernels accept.
type Number interface {
	Integer | Float
}

// IsIntegral reports whether T is an integer kind.
func IsIntegral[T Number]() bool {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Float32, reflect.Float64:
		return false
	default:
		return true
	}
}

// IndexOfZero returns the index of the first zero element of a, or -1.
func IndexOfZero[T Number](a []T) int {
	for i, x := range a {
		if x == 0 {
			return i
		}
	}
	return -1
}

// Add computes dst[i] = a[i] + b[i].
func Add[T Number](dst, a, b []T) {
	for i := range a {
		dst[i] = a[i] + b[i]
	}
}

// Sub computes dst[i] = a[i] - b[i].
func Sub[T Number](dst, a, b []T) {
	for i := range a {
		dst[i] = a[i] - b[i]
	}
}

// Mul computes dst[i] = a[i] * b[i].
func Mul[T Number](dst, a, b []T) {
	for i := range a {
		dst[i] = a[i] * b[i]
	}
}

// Div computes dst[i] = a[i] / b[i].
// Integer callers must rule out zero divisors first.
func Div[T Number](dst, a, b []T) {
	for i := range a {
		dst[i] = a[i] / b[i]
	}
}

// Mod computes dst[i] = a[i] % b[i].
func Mod[T Integer](dst, a, b []T) {
	for i := range a {
		dst[i] = a[i] % b[i]
	}
}

// AddScalar computes dst[i] = a[i] + s.
func AddScalar[T Number](dst, a []T, s T) {
	for i := range a {
		dst[i] = a[i] + s
	}
}

// SubScalar computes dst[i] = a[i] - s.
func SubScalar[T Number](dst, a []T, s T) {
	for i := range a {
		dst[i] = a[i] - s
	}
}

// ScalarSub computes dst[i] = s - a[i].
func ScalarSub[T Number](dst []T, s T, a []T) {
	for i := range a {
		dst[i] = s - a[i]
	}
}

// MulScalar computes dst[i] = a[i] * s.
func MulScalar[T Number](dst, a []T, s T) {
	for i := range a {
		dst[i] = a[i] * s
	}
}

// DivScalar computes dst[i] = a[i] / s.
func DivScalar[T Number](dst, a []T, s T) {
	for i := range a {
		dst[i] = a[i] / s
	}
}

// ScalarDiv computes dst[i] = s / a[i].
func ScalarDiv[T Number](dst []T, s T, a []T) {
	for i := range a {
		dst[i] = s / a[i]
	}
}

// ModScalar computes dst[i] = a[i] % s.
func ModScalar[T Integer](dst, a []T, s T) {
	for i := range a {
		dst[i] = a[i] % s
	}
}

// ScalarMod computes dst[i] = s % a[i].
func ScalarMod[T Integer](dst []T, s T, a []T) {
	for i := range a {
		dst[i] = s % a[i]
	}
}

// Neg computes dst[i] = -a[i]. Unsigned kinds wrap.
func Neg[T Number](dst, a []T) {
	for i := range a {
		dst[i] = -a[i]
	}
}
