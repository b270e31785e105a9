package num_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"deedles.dev/solid/num"
)

func TestFromIntegerTruncates(t *testing.T) {
	t.Parallel()

	require.Equal(t, num.Int32(3), num.From[num.Int32](math.Pi))
	require.Equal(t, num.Int64(-3), num.From[num.Int64](-math.Pi))
	require.Equal(t, num.Uint64(3), num.From[num.Uint64](math.Pi))
	require.Equal(t, num.Uint(1), num.From[num.Uint](4.0/3.0))
	require.Equal(t, num.Int(0), num.From[num.Int](0.999))
}

func TestFromIntegerSaturates(t *testing.T) {
	t.Parallel()

	t.Run("signed", func(t *testing.T) {
		t.Parallel()

		require.Equal(t, num.Int32(math.MaxInt32), num.From[num.Int32](1e20))
		require.Equal(t, num.Int32(math.MinInt32), num.From[num.Int32](-1e20))
		require.Equal(t, num.Int64(math.MaxInt64), num.From[num.Int64](math.Inf(1)))
		require.Equal(t, num.Int64(math.MinInt64), num.From[num.Int64](math.Inf(-1)))
		require.Equal(t, num.Int(math.MaxInt), num.From[num.Int](math.MaxFloat64))
	})

	t.Run("unsigned", func(t *testing.T) {
		t.Parallel()

		require.Equal(t, num.Uint32(0), num.From[num.Uint32](-5))
		require.Equal(t, num.Uint32(math.MaxUint32), num.From[num.Uint32](1e20))
		require.Equal(t, num.Uint64(0), num.From[num.Uint64](math.Inf(-1)))
		require.Equal(t, num.Uint64(math.MaxUint64), num.From[num.Uint64](math.Inf(1)))
		require.Equal(t, num.Uint(math.MaxUint), num.From[num.Uint](1e30))
	})

	t.Run("nan", func(t *testing.T) {
		t.Parallel()

		require.Zero(t, num.From[num.Int32](math.NaN()))
		require.Zero(t, num.From[num.Int64](math.NaN()))
		require.Zero(t, num.From[num.Uint64](math.NaN()))
	})
}

func TestFromFloat(t *testing.T) {
	t.Parallel()

	require.Equal(t, num.Float64(math.Pi), num.From[num.Float64](math.Pi))
	require.Equal(t, num.Float32(float32(math.Pi)), num.From[num.Float32](math.Pi))
	require.True(t, math.IsInf(float64(num.From[num.Float32](1e300)), 1))
	require.True(t, math.IsNaN(float64(num.From[num.Float64](math.NaN()))))
}

func TestFloat(t *testing.T) {
	t.Parallel()

	require.Equal(t, 42.0, num.Int32(42).Float())
	require.Equal(t, -7.0, num.Int64(-7).Float())
	require.Equal(t, 9.0, num.Uint(9).Float())
	require.Equal(t, 0.5, num.Float32(0.5).Float())
	require.Equal(t, 1.25, num.Float64(1.25).Float())
}

func TestConv(t *testing.T) {
	t.Parallel()

	require.Equal(t, num.Int32(2), num.Conv[num.Int32](num.Float64(2.9)))
	require.Equal(t, num.Uint64(0), num.Conv[num.Uint64](num.Int64(-4)))
	require.Equal(t, num.Float64(7), num.Conv[num.Float64](num.Uint32(7)))
}
