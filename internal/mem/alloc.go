package mem

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"unsafe"
)

// Alignment is the byte alignment required for AVX-512 (64 bytes).
const Alignment = 64

// MaxBytes is the largest single buffer Alloc will attempt.
const MaxBytes = 1 << 47

var (
	// ErrTooLarge is returned when n elements do not fit in MaxBytes.
	ErrTooLarge = errors.New("mem: allocation too large")
	// ErrNegativeSize is returned for a negative element count.
	ErrNegativeSize = errors.New("mem: negative size")
	// ErrOutOfMemory is returned when the runtime refuses the allocation.
	ErrOutOfMemory = errors.New("mem: out of memory")
)

// SizeOf returns the size in bytes of one T.
func SizeOf[T any]() int64 {
	var zero T
	return int64(unsafe.Sizeof(zero))
}

// Bytes returns the number of bytes needed for n elements of T.
func Bytes[T any](n int) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeSize, n)
	}
	size := SizeOf[T]()
	if size == 0 || n == 0 {
		return 0, nil
	}
	if int64(n) > math.MaxInt64/size || int64(n)*size > MaxBytes {
		return 0, fmt.Errorf("%w: %d elements of %d bytes", ErrTooLarge, n, size)
	}
	return int64(n) * size, nil
}

// Alloc allocates a zeroed slice with len == cap == n.
// Returns nil for n == 0.
func Alloc[T any](n int) (buf []T, err error) {
	if _, err := Bytes[T](n); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}

	defer func() {
		if r := recover(); r != nil {
			buf = nil
			err = fmt.Errorf("%w: %v", ErrOutOfMemory, r)
		}
	}()

	return make([]T, n), nil
}

// AllocAligned allocates a zeroed slice of n elements whose first element sits
// on a 64-byte boundary. Element types that may hold pointers cannot live in a
// byte buffer, so for them AllocAligned falls back to Alloc.
func AllocAligned[T any](n int) ([]T, error) {
	if !pointerFree[T]() {
		return Alloc[T](n)
	}

	size, err := Bytes[T](n)
	if err != nil {
		return nil, err
	}
	if size == 0 {
		return Alloc[T](n)
	}

	byteSlice, err := allocAlignedBytes(int(size))
	if err != nil {
		return nil, err
	}

	ptr := unsafe.Pointer(&byteSlice[0]) //nolint:gosec // unsafe is required for memory alignment
	return unsafe.Slice((*T)(ptr), n), nil //nolint:gosec // unsafe is required for memory alignment
}

// allocAlignedBytes allocates size bytes starting on a 64-byte boundary. It
// over-allocates by Alignment; the returned slice keeps the array alive.
func allocAlignedBytes(size int) ([]byte, error) {
	// Allocate size + alignment to ensure we can find an aligned offset
	buf, err := Alloc[byte](size + Alignment)
	if err != nil {
		return nil, err
	}

	ptr := unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for memory alignment
	addr := uintptr(ptr)
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	return buf[offset : offset+uintptr(size) : offset+uintptr(size)], nil
}

func pointerFree[T any]() bool {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	default:
		return false
	}
}
