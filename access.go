package mvector

import (
	"iter"
	"slices"
)

// At returns the element at index i. It fails with an *IndexError matching
// ErrOutOfRange unless 0 <= i < Len().
func (v *Vector[T]) At(i int) (T, error) {
	if err := v.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}
	return v.buf[i], nil
}

// Ref returns a pointer to the element at index i, for in-place mutation.
// The pointer is invalidated by any operation that reallocates.
func (v *Vector[T]) Ref(i int) (*T, error) {
	if err := v.checkIndex(i); err != nil {
		return nil, err
	}
	return &v.buf[i], nil
}

// Set stores value at index i, with the bounds contract of At.
func (v *Vector[T]) Set(i int, value T) error {
	if err := v.checkIndex(i); err != nil {
		return err
	}
	v.buf[i] = value
	return nil
}

// Data returns the live elements as a slice sharing the vector's storage.
// Writes through it are visible in v. It is invalidated by any operation that
// reallocates; appending to it never writes into v.
func (v *Vector[T]) Data() []T {
	if v == nil {
		return nil
	}
	return v.buf[:v.length:v.length]
}

// CData returns a read-only view of the live elements.
func (v *Vector[T]) CData() View[T] {
	return View[T]{s: v.Data()}
}

// All returns an iterator over index/element pairs.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return v.CData().All()
}

func (v *Vector[T]) checkIndex(i int) error {
	if i < 0 || i >= v.Len() {
		return &IndexError{Index: i, Length: v.Len()}
	}
	return nil
}

// View is a read-only window onto a vector's elements. It cannot modify the
// vector, and like Data it is invalidated when the vector reallocates.
type View[T any] struct {
	s []T
}

// Len returns the number of elements in the view.
func (w View[T]) Len() int { return len(w.s) }

// At returns the element at index i with the bounds contract of Vector.At.
func (w View[T]) At(i int) (T, error) {
	if i < 0 || i >= len(w.s) {
		var zero T
		return zero, &IndexError{Index: i, Length: len(w.s)}
	}
	return w.s[i], nil
}

// All returns an iterator over index/element pairs.
func (w View[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range w.s {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Slice returns a copy of the viewed elements.
func (w View[T]) Slice() []T {
	return slices.Clone(w.s)
}
