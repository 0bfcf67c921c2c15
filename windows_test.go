package kompost_test

import (
	"testing"

	"kompost"
	"kompost/internal/iterx"

	"github.com/stretchr/testify/require"
)

func TestPeriodicWindows(t *testing.T) {
	windows := kompost.PeriodicWindows(3, []int{1, 2, 3, 4})

	require.Equal(t, [][]int{
		{1, 2, 3},
		{2, 3, 4},
		{3, 4, 1},
		{4, 1, 2},
	}, kompost.CollectNested(windows))
}

func TestPeriodicWindows_CountAndContents(t *testing.T) {
	src := []int{10, 20, 30, 40, 50}

	for size := 1; size <= len(src); size++ {
		windows := kompost.CollectNested(kompost.PeriodicWindows(size, src))

		require.Len(t, windows, len(src))
		for i, w := range windows {
			require.Len(t, w, size)
			for k, v := range w {
				require.Equal(t, src[(i+k)%len(src)], v)
			}
		}
	}
}

func TestPeriodicWindows_SizeLargerThanSource(t *testing.T) {
	windows := kompost.PeriodicWindows(5, []int{1, 2})

	require.Equal(t, [][]int{
		{1, 2, 1, 2, 1},
		{2, 1, 2, 1, 2},
	}, kompost.CollectNested(windows))
}

func TestPeriodicWindows_ZeroSize(t *testing.T) {
	windows := kompost.PeriodicWindows(0, []int{1, 2, 3})

	require.Equal(t, [][]int{{}, {}, {}}, kompost.CollectNested(windows))
}

func TestPeriodicWindows_EmptySource(t *testing.T) {
	require.Empty(t, kompost.CollectNested(kompost.PeriodicWindows(3, []int{})))
	require.Empty(t, kompost.CollectNested(kompost.PeriodicWindows[int](3, nil)))
	require.Empty(t, kompost.CollectNested(kompost.PeriodicWindows(0, []int{})))
}

func TestPeriodicWindows_NegativeSizePanics(t *testing.T) {
	require.Panics(t, func() {
		kompost.PeriodicWindows(-1, []int{1})
	})
	require.Panics(t, func() {
		kompost.PeriodicWindowsOf(-1, kompost.Of(1))
	})
}

func TestPeriodicWindows_WindowsAreIndependent(t *testing.T) {
	windows := kompost.PeriodicWindows(2, []int{1, 2, 3}).Collect()

	// Out of order and partial consumption do not affect other windows.
	require.Equal(t, []int{3, 1}, windows[2].Collect())
	require.Equal(t, []int{1}, kompost.Take(windows[0], 1).Collect())
	require.Equal(t, []int{2, 3}, windows[1].Collect())
	require.Equal(t, []int{1, 2}, windows[0].Collect())
}

func TestPeriodicWindows_Reiterable(t *testing.T) {
	windows := kompost.PeriodicWindows(2, []int{1, 2})

	require.Equal(t, kompost.CollectNested(windows), kompost.CollectNested(windows))
}

func TestPeriodicWindowsOf(t *testing.T) {
	windows := kompost.PeriodicWindowsOf(2, kompost.From(seqOf(1, 2, 3)))

	require.Equal(t, [][]int{{1, 2}, {2, 3}, {3, 1}}, kompost.CollectNested(windows))
}

func TestPeriodicWindowsOf_DrawsSourceOnIteration(t *testing.T) {
	var drawn int
	windows := kompost.PeriodicWindowsOf(2, kompost.From(iterx.Counting(seqOf(1, 2, 3), &drawn)))
	require.Equal(t, 0, drawn)

	first := kompost.Take(windows, 1).Collect()
	require.Len(t, first, 1)
	require.Equal(t, 3, drawn)
}

func TestPeriodicWindows_Flattened(t *testing.T) {
	out := kompost.Flatten(kompost.Compose([]int{1, 2, 3, 4}, kompost.WindowsStage[int](3))).Collect()

	require.Equal(t, []int{1, 2, 3, 2, 3, 4, 3, 4, 1, 4, 1, 2}, out)
}

func TestRing(t *testing.T) {
	r := kompost.NewRing([]string{"a", "b", "c"})

	require.Equal(t, 3, r.Len())
	require.Equal(t, "a", r.At(3))
	require.Equal(t, "c", r.At(-1))
	require.Equal(t, []string{"c", "a", "b", "c"}, r.Window(2, 4).Collect())
	require.Equal(t, []string{"b", "c"}, r.Window(-2, 2).Collect())
}

func TestRing_Empty(t *testing.T) {
	r := kompost.NewRing[int](nil)

	require.Equal(t, 0, r.Len())
	require.Empty(t, r.Window(0, 3).Collect())
	require.Empty(t, kompost.CollectNested(r.Windows(3)))
}
