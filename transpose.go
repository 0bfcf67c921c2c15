package kompost

// rowCursors is the context behind Transpose: one live cursor per row that
// has not been exhausted yet, in original row order.
type rowCursors[T any] []*Cursor[T]

func pullRows[T any](rows Pipe[Pipe[T]]) rowCursors[T] {
	cursors := make(rowCursors[T], 0)
	for row := range rows.Values() {
		cursors = append(cursors, Pull(row))
	}
	return cursors
}

func (c rowCursors[T]) Stop() {
	for _, cursor := range c {
		cursor.Stop()
	}
}

func nextColumn[T any](c *rowCursors[T]) (Pipe[T], bool) {
	column := make([]T, 0, len(*c))
	live := (*c)[:0]
	for _, cursor := range *c {
		v, ok := cursor.Next()
		if !ok {
			// Cursor stops itself on exhaustion.
			continue
		}
		column = append(column, v)
		live = append(live, cursor)
	}
	clear((*c)[len(live):])
	*c = live

	if len(column) == 0 {
		return Pipe[T]{}, false
	}
	return FromSlice(column), true
}

// Transpose swaps the outer and inner index of a sequence of rows: column j
// of the result holds the j-th element of every row, in row order.
//
// Rows may have different lengths. A row shorter than j+1 simply does not
// contribute to column j and later, so the result has as many columns as
// the longest row has elements. The transpose ends the first time no row
// contributes an element.
//
// The outer sequence is collected when the result is iterated, but the rows
// are only advanced one element per emitted column. rows must be finite; an
// unbounded row makes the transpose unbounded too.
func Transpose[T any](rows Pipe[Pipe[T]]) Pipe[Pipe[T]] {
	return Pipe[Pipe[T]]{
		seq: func(yield func(Pipe[T]) bool) {
			NewAnonymous(rows, pullRows[T], nextColumn[T]).Values()(yield)
		},
	}
}

// sliceRows is the context behind the slice transposes: the unread rest of
// every row that still has elements.
type sliceRows[T any] [][]T

func nextSliceColumn[T any](rows *sliceRows[T]) ([]*T, bool) {
	column := make([]*T, 0, len(*rows))
	live := (*rows)[:0]
	for _, row := range *rows {
		if len(row) == 0 {
			continue
		}
		column = append(column, &row[0])
		if len(row) > 1 {
			live = append(live, row[1:])
		}
	}
	clear((*rows)[len(live):])
	*rows = live

	if len(column) == 0 {
		return nil, false
	}
	return column, true
}

func sliceColumns[T any](rows [][]T) *Anonymous[sliceRows[T], []*T] {
	return NewAnonymous(rows, func(rows [][]T) sliceRows[T] {
		// Own copy of the row headers; the rows themselves are borrowed.
		return append(sliceRows[T](nil), rows...)
	}, nextSliceColumn[T])
}

// TransposeRefs is Transpose over in-memory rows, yielding pointers into
// rows instead of copies of their elements.
func TransposeRefs[T any](rows [][]T) Pipe[Pipe[*T]] {
	return Pipe[Pipe[*T]]{
		seq: func(yield func(Pipe[*T]) bool) {
			for column := range sliceColumns(rows).Values() {
				if !yield(FromSlice(column)) {
					return
				}
			}
		},
	}
}

// TransposeSlices is Transpose over in-memory rows.
func TransposeSlices[T any](rows [][]T) Pipe[Pipe[T]] {
	return Map(TransposeRefs(rows), Deref[T])
}

// TransposeFlat transposes rows and flattens the result into a single
// stream, column after column. Together with Chunks it transposes a
// row-major array:
//
//	kompost.TransposeFlat(kompost.Chunks([]int{1, 2, 3, 4}, 2)) // 1, 3, 2, 4
func TransposeFlat[T any](rows [][]T) Pipe[T] {
	return Deref(Flatten(TransposeRefs(rows)))
}

// Chunks splits a row-major array into rows of width elements. The last row
// is shorter when len(flat) is not a multiple of width. Rows share flat's
// backing array.
//
// Chunks panics if width is not positive.
func Chunks[T any](flat []T, width int) [][]T {
	if width <= 0 {
		panic("kompost.Chunks: width must be positive")
	}
	rows := make([][]T, 0, (len(flat)+width-1)/width)
	for len(flat) > 0 {
		n := min(width, len(flat))
		rows = append(rows, flat[:n:n])
		flat = flat[n:]
	}
	return rows
}
