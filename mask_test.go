package mvector

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNonZero(t *testing.T) {
	bm, err := NonZero(Of(0, 3, 0, 0, -1, 2))
	require.NoError(t, err)
	assert.Equal(t, []uint32{1, 4, 5}, bm.ToArray())

	bm, err = NonZero(&Vector[float64]{})
	require.NoError(t, err)
	assert.True(t, bm.IsEmpty())
}

func TestWhere(t *testing.T) {
	v := Of("apple", "kiwi", "banana", "fig")

	bm, err := Where(v, func(s string) bool { return len(s) > 3 })
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 1, 2}, bm.ToArray())
}

func TestGather(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	v, err := FromSlice([]int{10, 20, 30, 40, 50}, WithMetricsCollector(metrics))
	require.NoError(t, err)

	t.Run("Ascending", func(t *testing.T) {
		out, err := Gather(v, roaring.BitmapOf(4, 0, 2))
		require.NoError(t, err)
		assert.Equal(t, []int{10, 30, 50}, out.Data())
		assert.Equal(t, int64(2), metrics.GetStats().AllocCount, "result inherits options")
	})

	t.Run("Empty", func(t *testing.T) {
		out, err := Gather(v, roaring.New())
		require.NoError(t, err)
		assert.Equal(t, 0, out.Len())

		out, err = Gather(v, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, out.Len())
	})

	t.Run("OutOfRange", func(t *testing.T) {
		_, err := Gather(v, roaring.BitmapOf(1, 5))
		assert.ErrorIs(t, err, ErrOutOfRange)

		var ie *IndexError
		require.ErrorAs(t, err, &ie)
		assert.Equal(t, 5, ie.Index)
	})

	t.Run("NonZeroRoundTrip", func(t *testing.T) {
		sparse := Of[int8](0, 0, 4, 0, -2)
		idx, err := NonZero(sparse)
		require.NoError(t, err)

		packed, err := Gather(sparse, idx)
		require.NoError(t, err)
		assert.Equal(t, []int8{4, -2}, packed.Data())
	})
}
