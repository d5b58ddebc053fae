package mvector

import (
	"context"
	"slices"

	"github.com/hupe1980/mvector/internal/mem"
)

// Vector is a growable array that exclusively owns its buffer.
//
// Slots [0, Len()) hold the elements; slots [Len(), Cap()) are allocated but
// not part of the sequence. Copies are explicit (Clone, CopyFrom) and always
// deep; moves (Move, MoveFrom) transfer the buffer and leave the source empty.
//
// The zero value is an empty vector ready to use. A Vector is not safe for
// concurrent use.
type Vector[T any] struct {
	buf    []T   // len(buf) is the capacity
	length int   // number of live elements
	bytes  int64 // bytes charged to the budget for buf
	opts   *options
}

// New returns a vector of n zero-valued elements with capacity n.
func New[T any](n int, opts ...Option) (*Vector[T], error) {
	return newWithOptions[T](n, applyOptions(opts))
}

// NewFilled returns a vector of n elements set to value.
func NewFilled[T any](n int, value T, opts ...Option) (*Vector[T], error) {
	v, err := newWithOptions[T](n, applyOptions(opts))
	if err != nil {
		return nil, err
	}
	fill(v.buf[:n], value)
	return v, nil
}

// FromSlice returns a vector holding a copy of values, with length and
// capacity len(values).
func FromSlice[T any](values []T, opts ...Option) (*Vector[T], error) {
	v, err := newWithOptions[T](len(values), applyOptions(opts))
	if err != nil {
		return nil, err
	}
	copy(v.buf, values)
	return v, nil
}

// Of returns a vector of the given elements, in order.
//
// Of uses the default options and panics if the buffer cannot be allocated,
// like make. Use FromSlice to handle the error instead.
func Of[T any](values ...T) *Vector[T] {
	v, err := FromSlice(values)
	if err != nil {
		panic(err)
	}
	return v
}

// FromBuffer copies n elements of buf starting at offset.
//
// The window must lie inside buf; otherwise a *BufferBoundsError matching
// ErrOutOfRange is returned.
func FromBuffer[T any](buf []T, n, offset int, opts ...Option) (*Vector[T], error) {
	if n < 0 || offset < 0 || offset > len(buf) || n > len(buf)-offset {
		return nil, &BufferBoundsError{Offset: offset, Count: n, BufferLen: len(buf)}
	}
	return FromSlice(buf[offset:offset+n], opts...)
}

// Move returns a new vector that takes over src's buffer and options in O(1).
// src is left empty. A nil src yields an empty vector.
func Move[T any](src *Vector[T]) *Vector[T] {
	v := &Vector[T]{}
	v.MoveFrom(src)
	return v
}

func newWithOptions[T any](n int, o *options) (*Vector[T], error) {
	if n < 0 {
		return nil, invalidLength(n)
	}
	v := &Vector[T]{opts: o}
	if n == 0 {
		return v, nil
	}
	buf, size, err := v.allocate(context.Background(), n, false)
	if err != nil {
		return nil, err
	}
	v.buf, v.bytes, v.length = buf, size, n
	return v, nil
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int {
	if v == nil {
		return 0
	}
	return v.length
}

// Cap returns the number of allocated element slots.
func (v *Vector[T]) Cap() int {
	if v == nil {
		return 0
	}
	return len(v.buf)
}

// Clone returns a deep copy with capacity Len(). The copy shares the options
// of v but no storage. Cloning a nil vector yields an empty one.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	c, err := newWithOptions[T](v.Len(), v.options())
	if err != nil {
		return nil, err
	}
	copy(c.buf, v.Data())
	return c, nil
}

// CopyFrom replaces the contents of v with a deep copy of src.
//
// The existing buffer is reused when it is large enough. Otherwise a new one
// is allocated before the old one is released, so on error v is unchanged.
// Copying a vector into itself is a no-op.
func (v *Vector[T]) CopyFrom(src *Vector[T]) error {
	if v == src {
		return nil
	}
	return v.assign(src.Data())
}

// MoveFrom releases the buffer of v and takes over the buffer, length,
// capacity, and options of src in O(1). src is left empty but usable.
// Moving a vector into itself is a no-op.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src || src == nil {
		return
	}
	v.releaseBuffer()
	v.buf, v.length, v.bytes, v.opts = src.buf, src.length, src.bytes, src.opts
	src.buf, src.length, src.bytes = nil, 0, 0
}

// Release gives the buffer back and leaves v empty. It is safe to call more
// than once and on a nil vector.
func (v *Vector[T]) Release() {
	if v == nil {
		return
	}
	v.Erase()
}

// Equal reports whether a and b hold the same elements in the same order.
// Capacities are ignored.
func Equal[T comparable](a, b *Vector[T]) bool {
	return slices.Equal(a.Data(), b.Data())
}

func (v *Vector[T]) options() *options {
	if v == nil || v.opts == nil {
		return defaultOptions
	}
	return v.opts
}

// allocate obtains a zeroed buffer of n slots and charges it to the budget.
// With wait set, the budget blocks until memory is available or ctx is done.
func (v *Vector[T]) allocate(ctx context.Context, n int, wait bool) ([]T, int64, error) {
	o := v.options()

	size, err := mem.Bytes[T](n)
	if err != nil {
		return nil, 0, v.allocFailed(ctx, n, size, err)
	}

	if wait {
		err = o.budget.AcquireMemory(ctx, size)
	} else {
		err = o.budget.TryAcquireMemory(size)
	}
	if err != nil {
		return nil, 0, v.allocFailed(ctx, n, size, err)
	}

	var buf []T
	if o.aligned {
		buf, err = mem.AllocAligned[T](n)
	} else {
		buf, err = mem.Alloc[T](n)
	}
	if err != nil {
		o.budget.ReleaseMemory(size)
		return nil, 0, v.allocFailed(ctx, n, size, err)
	}

	o.metrics.RecordAlloc(size, nil)
	return buf, size, nil
}

func (v *Vector[T]) allocFailed(ctx context.Context, n int, size int64, cause error) error {
	o := v.options()
	err := &AllocationError{Elements: n, Bytes: size, cause: cause}
	o.metrics.RecordAlloc(size, err)
	o.logger.LogAllocFailure(ctx, n, size, err)
	return err
}

// reallocate moves the live elements into a new buffer of capacity n >= length.
func (v *Vector[T]) reallocate(ctx context.Context, n int, wait bool) error {
	buf, size, err := v.allocate(ctx, n, wait)
	if err != nil {
		return err
	}
	copy(buf, v.buf[:v.length])

	o := v.options()
	oldCap, length := len(v.buf), v.length
	v.releaseBuffer()
	v.buf, v.bytes, v.length = buf, size, length

	if oldCap > 0 {
		o.metrics.RecordRealloc(oldCap, n)
	}
	if n > oldCap {
		o.logger.LogGrow(ctx, oldCap, n, length)
	} else {
		o.logger.LogShrink(ctx, oldCap, n)
	}
	return nil
}

// releaseBuffer drops the buffer and its budget charge. The length is reset.
func (v *Vector[T]) releaseBuffer() {
	if v.buf == nil && v.bytes == 0 {
		v.length = 0
		return
	}
	o := v.options()
	o.budget.ReleaseMemory(v.bytes)
	o.metrics.RecordRelease(v.bytes)
	v.buf, v.bytes, v.length = nil, 0, 0
}

// assign replaces the elements with a copy of data, reusing the buffer when
// it is large enough. On error v is unchanged.
func (v *Vector[T]) assign(data []T) error {
	n := len(data)
	if n <= len(v.buf) {
		copy(v.buf, data)
		if n < v.length {
			clear(v.buf[n:v.length])
		}
		v.length = n
		return nil
	}

	buf, size, err := v.allocate(context.Background(), n, false)
	if err != nil {
		return err
	}
	copy(buf, data)
	v.releaseBuffer()
	v.buf, v.bytes, v.length = buf, size, n
	return nil
}

func fill[T any](dst []T, value T) {
	for i := range dst {
		dst[i] = value
	}
}
