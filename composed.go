package kompost

// Stage is a whole-sequence transformation: it maps one sequence (or any
// other value) to another. Stages are plain functions, so any function with
// the right shape, including the algorithms of this package, is a Stage.
type Stage[In, Out any] func(in In) Out

// Compose applies f to src and returns its result unchanged.
//
// Compose adds no laziness, state or buffering of its own; it exists so that
// multi-stage transformations read left to right instead of inside out:
//
//	cols := kompost.Compose(rows, kompost.Transpose[int])
func Compose[In, Out any](src In, f Stage[In, Out]) Out {
	return f(src)
}

// Apply calls s with in.
func (s Stage[In, Out]) Apply(in In) Out {
	return s(in)
}

// Then returns the stage applying f and then g.
func Then[A, B, C any](f Stage[A, B], g Stage[B, C]) Stage[A, C] {
	return func(in A) C {
		return g(f(in))
	}
}

// WindowsStage binds size to PeriodicWindows.
func WindowsStage[T any](size int) Stage[[]T, Pipe[Pipe[T]]] {
	return func(src []T) Pipe[Pipe[T]] {
		return PeriodicWindows(size, src)
	}
}

// Windows2DStage binds the block size to PeriodicWindows2DFromSlices.
func Windows2DStage[T any](sizeM, sizeN int) Stage[[][]T, Windows2D[*T]] {
	return func(rows [][]T) Windows2D[*T] {
		return PeriodicWindows2DFromSlices(rows, sizeM, sizeN)
	}
}

// TransposeStage returns Transpose as a Stage.
func TransposeStage[T any]() Stage[Pipe[Pipe[T]], Pipe[Pipe[T]]] {
	return Transpose[T]
}

// ChunkStage binds chunkSize to Chunk.
func ChunkStage[T any](chunkSize int) Stage[Pipe[T], Pipe[[]T]] {
	return func(p Pipe[T]) Pipe[[]T] {
		return Chunk(p, chunkSize)
	}
}

// TakeStage binds n to Take.
func TakeStage[T any](n int) Stage[Pipe[T], Pipe[T]] {
	return func(p Pipe[T]) Pipe[T] {
		return Take(p, n)
	}
}
