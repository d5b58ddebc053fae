package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFillUniform(t *testing.T) {
	rng := NewRNG(4711)

	v := make([]float32, 64)
	FillUniform(rng, v)

	for _, x := range v {
		assert.GreaterOrEqual(t, x, float32(0))
		assert.Less(t, x, float32(1))
	}
}

func TestFloats(t *testing.T) {
	rng := NewRNG(4711)

	v := Floats(rng, 32, -1.0, 1.0)

	assert.Len(t, v, 32)
	for _, x := range v {
		assert.GreaterOrEqual(t, x, -1.0)
		assert.Less(t, x, 1.0)
	}
}

func TestInts(t *testing.T) {
	rng := NewRNG(4711)

	v := Ints[int8](rng, 128, -5, 5)

	assert.Len(t, v, 128)
	for _, x := range v {
		assert.GreaterOrEqual(t, x, int8(-5))
		assert.Less(t, x, int8(5))
	}
}

func TestNonZeroInts(t *testing.T) {
	rng := NewRNG(4711)

	v := make([]uint16, 256)
	NonZeroInts(rng, v, 3)

	for _, x := range v {
		assert.NotZero(t, x)
		assert.LessOrEqual(t, x, uint16(3))
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(42)
	first := Ints[int](rng, 16, 0, 1000)

	rng.Reset()
	second := Ints[int](rng, 16, 0, 1000)

	assert.Equal(t, first, second)
	assert.Equal(t, int64(42), rng.Seed())
}
