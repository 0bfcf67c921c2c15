package kompost

import (
	"kompost/internal/iterx"
)

// Block is one sizeM × sizeN window of a grid, anchored at grid row Row and
// grid column Col.
type Block[T any] struct {
	Row, Col int

	rows Pipe[Pipe[T]]
}

// Rows yields the sizeM rows of the block, each holding sizeN elements.
func (b Block[T]) Rows() Pipe[Pipe[T]] {
	return b.rows
}

// Values yields the elements of the block in row-major order.
func (b Block[T]) Values() Pipe[T] {
	return Flatten(b.rows)
}

// Collect materializes the block.
func (b Block[T]) Collect() [][]T {
	return CollectNested(b.rows)
}

// BlockRow holds every block anchored at grid row Row, one per grid column.
type BlockRow[T any] struct {
	Row int

	blocks Pipe[Block[T]]
}

// Blocks yields the blocks of the row from left to right.
func (r BlockRow[T]) Blocks() Pipe[Block[T]] {
	return r.blocks
}

// Windows2D is the lazily computed set of periodic 2D windows of a grid,
// indexed as (row anchor, column anchor, row within block, element within
// row).
type Windows2D[T any] struct {
	rows Pipe[BlockRow[T]]
}

// Rows yields one BlockRow per grid row.
func (w Windows2D[T]) Rows() Pipe[BlockRow[T]] {
	return w.rows
}

// Blocks yields every block, row anchor by row anchor.
func (w Windows2D[T]) Blocks() Pipe[Block[T]] {
	return FlatMap(w.rows, BlockRow[T].Blocks)
}

// Collect materializes every block.
func (w Windows2D[T]) Collect() [][][][]T {
	out := make([][][][]T, 0)
	for row := range w.rows.Values() {
		blocks := make([][][]T, 0)
		for block := range row.blocks.Values() {
			blocks = append(blocks, block.Collect())
		}
		out = append(out, blocks)
	}
	return out
}

// PeriodicWindows2D returns the sizeM × sizeN windows of a grid, one for
// every cell, wrapping around in both dimensions.
//
// The rows are cut into periodic windows of sizeM rows. Within each group,
// every row is cut into periodic windows of sizeN elements and the per-row
// windows are transposed, so that the k-th window of every row in the group
// forms the block anchored at column k.
//
// rows and each of its rows must be finite; they are drained into buffers
// when the result is first iterated. For an m×n grid the result has m block
// rows of n blocks each. A sizeM of 0 yields block rows without blocks, a
// sizeN of 0 yields blocks of empty rows.
//
// PeriodicWindows2D panics if sizeM or sizeN is negative.
func PeriodicWindows2D[T any](rows Pipe[Pipe[T]], sizeM, sizeN int) Windows2D[T] {
	checkBlockSize(sizeM, sizeN)
	return Windows2D[T]{
		rows: Pipe[BlockRow[T]]{
			seq: func(yield func(BlockRow[T]) bool) {
				rings := make([]Ring[T], 0)
				for row := range rows.Values() {
					rings = append(rings, NewRing(row.Collect()))
				}
				windows2D(rings, sizeM, sizeN).rows.Values()(yield)
			},
		},
	}
}

// PeriodicWindows2DFromSlices is PeriodicWindows2D over in-memory rows, such
// as those returned by Chunks. The blocks hold pointers into rows.
func PeriodicWindows2DFromSlices[T any](rows [][]T, sizeM, sizeN int) Windows2D[*T] {
	checkBlockSize(sizeM, sizeN)
	rings := make([]Ring[*T], 0, len(rows))
	for _, row := range rows {
		rings = append(rings, refsOf(row))
	}
	return windows2D(rings, sizeM, sizeN)
}

func checkBlockSize(sizeM, sizeN int) {
	if sizeM < 0 || sizeN < 0 {
		panic("kompost.PeriodicWindows2D: block size must not be negative")
	}
}

func windows2D[T any](rows []Ring[T], sizeM, sizeN int) Windows2D[T] {
	groups := PeriodicWindows(sizeM, rows)
	return Windows2D[T]{
		rows: Pipe[BlockRow[T]]{
			seq: func(yield func(BlockRow[T]) bool) {
				for i, group := range Enumerate(groups) {
					if !yield(blockRow(i, group, sizeN)) {
						return
					}
				}
			},
		},
	}
}

// blockRow turns a group of sizeM consecutive rows into the blocks anchored
// at grid row i.
func blockRow[T any](i int, group Pipe[Ring[T]], sizeN int) BlockRow[T] {
	perRow := Map(group, func(row Ring[T]) Pipe[Pipe[T]] {
		return row.Windows(sizeN)
	})
	columns := Transpose(perRow)
	return BlockRow[T]{
		Row: i,
		blocks: Pipe[Block[T]]{
			seq: func(yield func(Block[T]) bool) {
				for j, column := range Enumerate(columns) {
					if !yield(Block[T]{Row: i, Col: j, rows: column}) {
						return
					}
				}
			},
		},
	}
}

// refsOf returns a Ring of pointers into row.
func refsOf[T any](row []T) Ring[*T] {
	refs := make([]*T, 0, len(row))
	for ref := range iterx.RefsOf(row) {
		refs = append(refs, ref)
	}
	return NewRing(refs)
}
