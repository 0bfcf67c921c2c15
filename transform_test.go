package kompost_test

import (
	"iter"
	"strings"
	"testing"

	"kompost"
	"kompost/internal/iterx"

	"github.com/stretchr/testify/require"
)

func TestMap_TransformsValues(t *testing.T) {
	src := kompost.From(seqOf(1, 2, 3))

	p := kompost.Map(src, func(v int) int {
		return v * 2
	})

	require.Equal(t, []int{2, 4, 6}, p.Collect())
}

func TestMap_AcceptsPlainFunctions(t *testing.T) {
	src := kompost.Of(" a", "b ")

	require.Equal(t, []string{"a", "b"}, kompost.Map(src, strings.TrimSpace).Collect())
}

func TestFilter_FiltersCorrectly(t *testing.T) {
	src := kompost.From(seqOf(1, 2, 3, 4, 5))

	p := kompost.Filter(src, func(v int) bool {
		return v%2 == 0
	})

	require.Equal(t, []int{2, 4}, p.Collect())
}

func TestChunk_PanicInvalidChunkSize(t *testing.T) {
	src := kompost.From(seqOf(1, 2, 3))

	require.Panics(t, func() {
		kompost.Chunk(src, -1)
	})

	require.Panics(t, func() {
		kompost.Chunk(src, 0)
	})

}

func TestChunk_GroupsCorrectly(t *testing.T) {
	src := kompost.From(seqOf(1, 2, 3, 4, 5))

	p := kompost.Chunk(src, 2)

	require.Equal(t, [][]int{
		{1, 2},
		{3, 4},
		{5},
	}, p.Collect())
}

func TestChunk_ChunksDoNotAlias(t *testing.T) {
	chunks := kompost.Chunk(kompost.Of(1, 2, 3, 4), 2).Collect()

	chunks[0][0] = 100

	require.Equal(t, []int{3, 4}, chunks[1])
}

func TestFlatMap_FlattensInOrder(t *testing.T) {
	src := kompost.From(seqOf(1, 2, 3))

	p := kompost.FlatMap(src, func(v int) kompost.Pipe[int] {
		return kompost.Of(v, v*10)
	})

	require.Equal(t, []int{
		1, 10,
		2, 20,
		3, 30,
	}, p.Collect())
}

func TestFlattenSlices(t *testing.T) {
	// tests that FlattenSlices behaves identically to Flatten(Map(FromSlice))

	p1 := kompost.Of("A,B,C", "D,E,F")
	v1 := kompost.FlattenSlices(kompost.Map(p1, func(in string) []string {
		return strings.Split(in, ",")
	}))

	p2 := kompost.Of("A,B,C", "D,E,F")
	v2 := kompost.Flatten(kompost.Map(p2, func(in string) kompost.Pipe[string] {
		return kompost.FromSlice(strings.Split(in, ","))
	}))

	require.Equal(t, v1.Collect(), v2.Collect())
}

func TestFlatten_IsLazy(t *testing.T) {
	var drawn int
	inner := kompost.From(iterx.Counting(seqOf(1, 2, 3), &drawn))

	p := kompost.Flatten(kompost.Of(inner, inner))

	require.Equal(t, []int{1, 2}, kompost.Take(p, 2).Collect())
	require.Equal(t, 2, drawn)
}

func TestTake(t *testing.T) {
	src := kompost.Of(1, 2, 3)

	require.Equal(t, []int{1, 2}, kompost.Take(src, 2).Collect())
	require.Equal(t, []int{1, 2, 3}, kompost.Take(src, 5).Collect())
	require.Empty(t, kompost.Take(src, 0).Collect())
	require.Empty(t, kompost.Take(src, -1).Collect())
}

func TestTake_DrawsNoMoreThanN(t *testing.T) {
	var drawn int
	src := kompost.From(iterx.Counting(naturals(), &drawn))

	require.Equal(t, []int{0, 1, 2}, kompost.Take(src, 3).Collect())
	require.Equal(t, 3, drawn)
}

func TestEnumerate(t *testing.T) {
	var idx []int
	var vals []string
	for i, v := range kompost.Enumerate(kompost.Of("a", "b")) {
		idx = append(idx, i)
		vals = append(vals, v)
	}

	require.Equal(t, []int{0, 1}, idx)
	require.Equal(t, []string{"a", "b"}, vals)
}

func seqOf[T any](values ...T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range values {
			if !yield(v) {
				return
			}
		}
	}
}

// naturals is an unbounded sequence 0, 1, 2, ...
func naturals() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; ; i++ {
			if !yield(i) {
				return
			}
		}
	}
}
