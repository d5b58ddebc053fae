package mvector

import (
	"context"
	"math"
)

// Reserve grows the capacity to exactly n if n exceeds Cap(); otherwise it
// does nothing. Elements are preserved. On error v is unchanged.
func (v *Vector[T]) Reserve(n int) error {
	if n <= len(v.buf) {
		return nil
	}
	return v.reallocate(context.Background(), n, false)
}

// ReserveContext is Reserve, but when the vector has a memory budget it waits
// for memory to become available instead of failing at once.
func (v *Vector[T]) ReserveContext(ctx context.Context, n int) error {
	if n <= len(v.buf) {
		return nil
	}
	return v.reallocate(ctx, n, true)
}

// Resize sets the length to n. Growing beyond Cap() reallocates through the
// growth policy; new elements are zero values. Shrinking keeps the capacity.
func (v *Vector[T]) Resize(n int) error {
	var zero T
	return v.resize(n, zero)
}

// ResizeFill is Resize with new elements set to value.
func (v *Vector[T]) ResizeFill(n int, value T) error {
	return v.resize(n, value)
}

func (v *Vector[T]) resize(n int, value T) error {
	if n < 0 {
		return invalidLength(n)
	}
	if err := v.grow(n); err != nil {
		return err
	}
	old := v.length
	if n > old {
		fill(v.buf[old:n], value)
	} else {
		clear(v.buf[n:old])
	}
	v.length = n
	return nil
}

// Append adds values to the end, growing through the growth policy.
func (v *Vector[T]) Append(values ...T) error {
	if len(values) > math.MaxInt-v.length {
		return invalidLength(v.length)
	}
	n := v.length + len(values)
	if err := v.grow(n); err != nil {
		return err
	}
	copy(v.buf[v.length:n], values)
	v.length = n
	return nil
}

// ShrinkToFit reallocates so that Cap() == Len(). An empty vector releases
// its buffer.
func (v *Vector[T]) ShrinkToFit() error {
	if len(v.buf) == v.length {
		return nil
	}
	if v.length == 0 {
		v.releaseBuffer()
		return nil
	}
	return v.reallocate(context.Background(), v.length, false)
}

// Erase releases the buffer and sets length and capacity to zero.
func (v *Vector[T]) Erase() {
	v.releaseBuffer()
}

// grow ensures capacity for required elements.
func (v *Vector[T]) grow(required int) error {
	capacity := len(v.buf)
	if required <= capacity {
		return nil
	}
	next := v.options().growth(capacity, required)
	if next < required {
		next = required
	}
	return v.reallocate(context.Background(), next, false)
}
