package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGrowSlice(t *testing.T) {
	t.Run("extends nil slice to requested length", func(t *testing.T) {
		var s []int
		s = GrowSlice(s, 10)

		require.Equal(t, 10, len(s))
		require.GreaterOrEqual(t, cap(s), 10)
	})

	t.Run("starts from the seed capacity", func(t *testing.T) {
		var s []byte
		s = GrowSlice(s, 1)
		require.Equal(t, GrowSeed, cap(s))
	})

	t.Run("doubles capacity on reallocation", func(t *testing.T) {
		var s []byte
		s = GrowSlice(s, 1)

		prevCap := cap(s)
		s = GrowSlice(s, prevCap+1)
		require.Equal(t, 2*prevCap, cap(s))
	})

	t.Run("amortized element-at-a-time growth", func(t *testing.T) {
		var s []int
		reallocs := 0
		prevCap := cap(s)
		for i := 0; i < 100_000; i++ {
			s = GrowSlice(s, i+1)
			if cap(s) != prevCap {
				reallocs++
				prevCap = cap(s)
			}
		}

		require.Equal(t, 100_000, len(s))
		require.Less(t, reallocs, 20, "geometric growth keeps reallocation count logarithmic")
	})

	t.Run("reuses backing array when capacity already sufficient", func(t *testing.T) {
		s := make([]int, 0, 100)
		s = GrowSlice(s, 50)
		ptr1 := &s[:cap(s)][0]

		s = GrowSlice(s, 80)
		ptr2 := &s[:cap(s)][0]

		require.Equal(t, ptr1, ptr2, "should not reallocate while capacity suffices")
	})

	t.Run("jumps straight to want when doubling is not enough", func(t *testing.T) {
		var s []int
		s = GrowSlice(s, 10_000)
		require.Equal(t, 10_000, len(s))
		require.Equal(t, 10_000, cap(s))
	})

	t.Run("preserves existing elements across growth", func(t *testing.T) {
		s := []string{"a", "b", "c"}
		s = GrowSlice(s, 200)

		require.Equal(t, "a", s[0])
		require.Equal(t, "b", s[1])
		require.Equal(t, "c", s[2])
		require.Equal(t, 200, len(s))
	})

	t.Run("shrinking request just re-slices", func(t *testing.T) {
		s := make([]int, 10)
		s = GrowSlice(s, 3)
		require.Equal(t, 3, len(s))
	})
}
