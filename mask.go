package mvector

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/mvector/internal/conv"
)

// Where returns the indices of the elements for which keep reports true.
// Indices are 32-bit; longer vectors fail with ErrOutOfRange.
func Where[T any](v *Vector[T], keep func(T) bool) (*roaring.Bitmap, error) {
	bm := roaring.New()
	for i, x := range v.Data() {
		if !keep(x) {
			continue
		}
		idx, err := conv.IntToUint32(i)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrOutOfRange, err)
		}
		bm.Add(idx)
	}
	return bm, nil
}

// NonZero returns the indices of the non-zero elements. NaN counts as non-zero.
func NonZero[T Number](v *Vector[T]) (*roaring.Bitmap, error) {
	return Where(v, func(x T) bool { return x != 0 })
}

// Gather returns a new vector holding the elements at the given indices, in
// ascending index order. Every index must be below Len(). The result inherits
// the options of v.
func Gather[T any](v *Vector[T], indices *roaring.Bitmap) (*Vector[T], error) {
	if indices == nil || indices.IsEmpty() {
		return newWithOptions[T](0, v.options())
	}

	last, err := conv.Uint32ToInt(indices.Maximum())
	if err != nil {
		return nil, err
	}
	if last >= v.Len() {
		return nil, &IndexError{Index: last, Length: v.Len()}
	}

	n, err := conv.Uint64ToInt(indices.GetCardinality())
	if err != nil {
		return nil, err
	}
	out, err := newWithOptions[T](n, v.options())
	if err != nil {
		return nil, err
	}

	it := indices.Iterator()
	for j := 0; it.HasNext(); j++ {
		out.buf[j] = v.buf[it.Next()]
	}
	return out, nil
}
