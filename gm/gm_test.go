package gm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVec_Rotated(t *testing.T) {
	t.Run("rotate 90°", func(t *testing.T) {
		r := VecOf(1, 0).Rotated(math.Pi / 2)
		require.InDelta(t, 0, r.X, 1e-9)
		require.InDelta(t, 1, r.Y, 1e-9)
	})

	t.Run("rotate 180°", func(t *testing.T) {
		r := VecOf(1, 1).Rotated(math.Pi)
		require.InDelta(t, -1, r.X, 1e-9)
		require.InDelta(t, -1, r.Y, 1e-9)
	})
}

func TestVec_Arithmetic(t *testing.T) {
	v := VecOf(4, 6)
	require.Equal(t, VecOf(5, 8), v.Add(VecOf(1, 2)))
	require.Equal(t, VecOf(3, 4), v.Sub(VecOf(1, 2)))
	require.Equal(t, VecOf(2, 3), v.Mul(0.5))
	require.Equal(t, VecOf(8, 18), v.MulEach(VecOf(2, 3)))
	require.Equal(t, VecOf(2, 2), v.DivEach(VecOf(2, 3)))
	require.True(t, VecZero.IsZero())
	require.False(t, VecSplat(1).IsZero())
}

func TestRect(t *testing.T) {
	r := RectWithCenterAndSize(VecOf(10, 10), VecOf(4, 2))
	require.Equal(t, VecOf(8, 9), r.Min)
	require.Equal(t, VecOf(12, 11), r.Max)

	t.Run("enclosing", func(t *testing.T) {
		bounds := RectEnclosing(VecOf(3, -1), VecOf(-2, 4), VecOf(0, 0))
		require.Equal(t, VecOf(-2, -1), bounds.Min)
		require.Equal(t, VecOf(3, 4), bounds.Max)

		require.Equal(t, Rect{}, RectEnclosing())
	})

	t.Run("intersects", func(t *testing.T) {
		require.True(t, r.Intersects(RectEnclosing(VecOf(11, 10), VecOf(20, 20))))

		// touching edges
		require.True(t, r.Intersects(RectEnclosing(VecOf(12, 11), VecOf(13, 13))))

		require.False(t, r.Intersects(RectEnclosing(VecOf(12.5, 0), VecOf(20, 20))))
		require.False(t, r.Intersects(RectEnclosing(VecOf(0, 11.5), VecOf(20, 20))))
	})
}
