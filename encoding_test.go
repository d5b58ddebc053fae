package mvector

import (
	"bytes"
	"context"
	"encoding/binary"
	"math"
	"reflect"
	"runtime"
	"testing"

	"github.com/fxamacker/cbor/v2"
	gojson "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/mvector/codec"
	"github.com/hupe1980/mvector/resource"
	"github.com/hupe1980/mvector/testutil"
)

func TestJSON(t *testing.T) {
	v := Of(1, -2, 3)

	data, err := gojson.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `[1,-2,3]`, string(data))

	var out Vector[int]
	require.NoError(t, gojson.Unmarshal(data, &out))
	assert.True(t, Equal(v, &out))

	t.Run("Empty", func(t *testing.T) {
		data, err := (&Vector[float64]{}).MarshalJSON()
		require.NoError(t, err)
		assert.Equal(t, "[]", string(data))
	})

	t.Run("Field", func(t *testing.T) {
		type doc struct {
			Values *Vector[float32] `json:"values"`
		}
		in := doc{Values: Of[float32](0.5, 1.5)}

		data, err := gojson.Marshal(in)
		require.NoError(t, err)
		assert.JSONEq(t, `{"values":[0.5,1.5]}`, string(data))

		var got doc
		require.NoError(t, gojson.Unmarshal(data, &got))
		assert.Equal(t, []float32{0.5, 1.5}, got.Values.Data())
	})

	t.Run("InvalidLeavesVectorUnchanged", func(t *testing.T) {
		w := Of(7, 8)
		assert.Error(t, w.UnmarshalJSON([]byte(`["x"]`)))
		assert.Equal(t, []int{7, 8}, w.Data())
	})
}

func TestCBOR(t *testing.T) {
	v := Of(math.Inf(1), -0.25, 3)

	data, err := cbor.Marshal(v)
	require.NoError(t, err)

	var out Vector[float64]
	require.NoError(t, cbor.Unmarshal(data, &out))
	assert.True(t, Equal(v, &out))
}

func TestCodecs(t *testing.T) {
	for _, c := range []codec.Codec{codec.JSON{}, codec.GoJSON{}, codec.CBOR{}, nil} {
		name := "default"
		if c != nil {
			name = c.Name()
		}
		t.Run(name, func(t *testing.T) {
			v := Of[uint64](0, 1, math.MaxUint32+1)

			data, err := v.Marshal(c)
			require.NoError(t, err)

			out := Of[uint64](9, 9, 9, 9, 9)
			require.NoError(t, out.Unmarshal(c, data))
			assert.Equal(t, v.Data(), out.Data())
			assert.Equal(t, 5, out.Cap(), "buffer reused")
		})
	}
}

func TestEncodeDecode(t *testing.T) {
	ctx := context.Background()
	rng := testutil.NewRNG(4711)

	for _, comp := range []Compression{CompressionNone, CompressionLZ4, CompressionZSTD} {
		t.Run(comp.String(), func(t *testing.T) {
			t.Run("int8", func(t *testing.T) {
				testRoundTrip(t, ctx, Of[int8](-128, -1, 0, 1, 127), comp)
			})
			t.Run("int16", func(t *testing.T) {
				testRoundTrip(t, ctx, mustFromSlice(t, testutil.Ints[int16](rng, 300, -30000, 30000)), comp)
			})
			t.Run("int", func(t *testing.T) {
				testRoundTrip(t, ctx, Of(math.MinInt, -1, math.MaxInt), comp)
			})
			t.Run("uint32", func(t *testing.T) {
				testRoundTrip(t, ctx, Of[uint32](0, 1, math.MaxUint32), comp)
			})
			t.Run("uintptr", func(t *testing.T) {
				testRoundTrip(t, ctx, Of[uintptr](0, 42), comp)
			})
			t.Run("float32", func(t *testing.T) {
				testRoundTrip(t, ctx, mustFromSlice(t, testutil.Floats[float32](rng, 257, -10, 10)), comp)
			})
			t.Run("float64", func(t *testing.T) {
				testRoundTrip(t, ctx, Of(math.Inf(-1), math.SmallestNonzeroFloat64, math.MaxFloat64), comp)
			})
			t.Run("empty", func(t *testing.T) {
				testRoundTrip(t, ctx, &Vector[uint8]{}, comp)
			})
		})
	}
}

func testRoundTrip[T Number](t *testing.T, ctx context.Context, v *Vector[T], comp Compression) {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, Encode(ctx, &buf, v, WithCompression(comp)))

	out, err := Decode[T](&buf)
	require.NoError(t, err)
	assert.Equal(t, v.Len(), out.Len())
	assert.True(t, Equal(v, out))
	assert.Zero(t, buf.Len())
}

func mustFromSlice[T any](t *testing.T, values []T) *Vector[T] {
	t.Helper()
	v, err := FromSlice(values)
	require.NoError(t, err)
	return v
}

func TestEncodeCompresses(t *testing.T) {
	v, err := New[float64](4096)
	require.NoError(t, err)

	var raw, packed bytes.Buffer
	require.NoError(t, Encode(context.Background(), &raw, v))
	require.NoError(t, Encode(context.Background(), &packed, v, WithCompression(CompressionLZ4)))
	assert.Less(t, packed.Len(), raw.Len()/4)
}

func TestDecodeErrors(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(context.Background(), &buf, Of[int32](1, 2, 3)))
	encoded := buf.Bytes()

	corrupt := func(mutate func(b []byte) []byte) []byte {
		b := bytes.Clone(encoded)
		return mutate(b)
	}

	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{"Empty", nil, ErrCorrupt},
		{"ShortHeader", encoded[:10], ErrCorrupt},
		{"BadMagic", corrupt(func(b []byte) []byte { b[0] = 'X'; return b }), ErrCorrupt},
		{"BadVersion", corrupt(func(b []byte) []byte { b[4] = 9; return b }), ErrCorrupt},
		{"BadWidth", corrupt(func(b []byte) []byte { b[6] = 2; return b }), ErrCorrupt},
		{"BadCompression", corrupt(func(b []byte) []byte { b[7] = 7; return b }), ErrCorrupt},
		{"CountTooLarge", corrupt(func(b []byte) []byte {
			binary.LittleEndian.PutUint64(b[8:], math.MaxUint64)
			return b
		}), ErrCorrupt},
		{"CountMismatch", corrupt(func(b []byte) []byte {
			binary.LittleEndian.PutUint64(b[8:], 2)
			return b
		}), ErrCorrupt},
		{"Truncated", encoded[:len(encoded)-1], ErrCorrupt},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode[int32](bytes.NewReader(tc.data))
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}

	t.Run("KindMismatch", func(t *testing.T) {
		_, err := Decode[uint32](bytes.NewReader(encoded))
		assert.ErrorIs(t, err, ErrKindMismatch)

		_, err = Decode[float32](bytes.NewReader(encoded))
		assert.ErrorIs(t, err, ErrKindMismatch)
	})
}

func TestDecodeOptions(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(context.Background(), &buf, Of[int64](1, 2, 3, 4)))

	budget := resource.NewController(resource.Config{MemoryLimitBytes: 16})
	_, err := Decode[int64](&buf, WithMemoryBudget(budget))
	assert.ErrorIs(t, err, ErrAllocation)
	assert.Zero(t, budget.MemoryUsage())

	t.Run("PayloadAndResultFit", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Encode(context.Background(), &buf, Of[int64](1, 2, 3, 4)))

		budget := resource.NewController(resource.Config{MemoryLimitBytes: 64})
		v, err := Decode[int64](&buf, WithMemoryBudget(budget))
		require.NoError(t, err)
		assert.Equal(t, []int64{1, 2, 3, 4}, v.Data())
		assert.Equal(t, int64(32), budget.MemoryUsage(), "payload charge released")
	})
}

// oversizedHeader claims 2^30 int8 elements in an uncompressed block but
// carries no payload.
func oversizedHeader() []byte {
	const claimed = 1 << 30

	data := make([]byte, headerSize+8)
	copy(data, encodingMagic)
	data[4] = encodingVersion
	data[5] = byte(reflect.Int8)
	data[6] = 1
	data[7] = byte(CompressionNone)
	binary.LittleEndian.PutUint64(data[8:], claimed)
	binary.LittleEndian.PutUint32(data[headerSize:], claimed)
	return data
}

func TestDecodeOversizedHeader(t *testing.T) {
	t.Run("Truncated", func(t *testing.T) {
		var before, after runtime.MemStats
		runtime.ReadMemStats(&before)

		_, err := Decode[int8](bytes.NewReader(oversizedHeader()))

		runtime.ReadMemStats(&after)
		assert.ErrorIs(t, err, ErrCorrupt)
		assert.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(1<<20))
	})

	t.Run("Budget", func(t *testing.T) {
		budget := resource.NewController(resource.Config{MemoryLimitBytes: 1 << 10})

		_, err := Decode[int8](bytes.NewReader(oversizedHeader()), WithMemoryBudget(budget))
		assert.ErrorIs(t, err, ErrAllocation)
		assert.ErrorIs(t, err, resource.ErrMemoryLimitExceeded)
		assert.Zero(t, budget.MemoryUsage())
	})
}

func TestEncodeWriteLimit(t *testing.T) {
	limiter := resource.NewController(resource.Config{IOLimitBytesPerSec: 1 << 20})
	v := Of[int16](1, 2, 3)

	var buf bytes.Buffer
	require.NoError(t, Encode(context.Background(), &buf, v, WithWriteLimit(limiter)))

	out, err := Decode[int16](&buf)
	require.NoError(t, err)
	assert.True(t, Equal(v, out))

	t.Run("Canceled", func(t *testing.T) {
		slow := resource.NewController(resource.Config{IOLimitBytesPerSec: 1})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var sink bytes.Buffer
		assert.ErrorIs(t, Encode(ctx, &sink, v, WithWriteLimit(slow)), context.Canceled)
	})

	t.Run("UnknownCompression", func(t *testing.T) {
		var sink bytes.Buffer
		assert.Error(t, Encode(context.Background(), &sink, v, WithCompression(Compression(42))))
		assert.Zero(t, sink.Len())
	})
}
