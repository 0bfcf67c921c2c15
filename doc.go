/*
Package kompost provides composable, lazily-evaluated transformations over
one- and two-dimensional data: slices, row-major grids and nested iter.Seqs.

This package is built around Pipes, a Pipe[T] represents a lazily-evaluated
stream of values of type T. Nothing is computed until a Pipe is iterated, and
no intermediate collection is built between stages.

Two adapters let new stages be written without a dedicated type each:

  - NewAnonymous turns a context, built once from a source by an init
    function, and a step function producing one value per pull from that
    context, into a lazy sequence.
  - Compose applies a whole-sequence Stage, so that stages chain from left
    to right. Then and Pipe.Through chain several stages at once.

On top of them the package provides periodic (circular) windows in one
and two dimensions, and transposition of nested sequences with ragged rows:

	grid := kompost.Chunks([]int{1, 2, 3, 4, 5, 6, 7, 8, 9}, 3)

	// Columns of the grid: [1 4 7] [2 5 8] [3 6 9]
	cols := kompost.TransposeSlices(grid)

	// Every 2×2 block of the grid, wrapping around at the edges.
	blocks := kompost.Compose(grid, kompost.Windows2DStage[int](2, 2))

	for block := range blocks.Blocks().Values() {
		fmt.Println(block.Row, block.Col, kompost.Deref(block.Values()).Collect())
	}

There is no error channel: a sequence ends when its producer has no next
value. Invalid sizes are programming errors and panic.

The package is single threaded. Pipes, adapters and cursors must not be
shared between goroutines while they are iterated.
*/
package kompost
