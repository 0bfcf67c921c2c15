package kompost

import (
	"iter"
)

type (

	// MapFunc is a pure mapping function used by Map that transforms a value
	// of type In into a value of type Out.
	MapFunc[In, Out any] func(in In) Out

	// Predicate represents a filtering function that returns true when the
	// provided value should be included in the output stream.
	Predicate[T any] func(item T) bool
)

// Map transforms each input value using fn and returns a new Pipe producing
// the mapped values.
func Map[In, Out any](p Pipe[In], fn MapFunc[In, Out]) Pipe[Out] {
	return Pipe[Out]{
		seq: func(yield func(Out) bool) {
			for in := range p.Values() {
				if !yield(fn(in)) {
					return
				}
			}
		},
	}
}

// FlatMap transforms each input value into a Pipe using fn and returns a
// Pipe producing the flattened output values.
//
// FlatMap is equivalent to calling Flatten(Map(p, fn)).
func FlatMap[In, Out any](p Pipe[In], fn MapFunc[In, Pipe[Out]]) Pipe[Out] {
	return Flatten(Map(p, fn))
}

// Filter returns a Pipe that yields only the values for which predicate
// returns true.
func Filter[T any](p Pipe[T], predicate Predicate[T]) Pipe[T] {
	return Pipe[T]{
		seq: func(yield func(T) bool) {
			for in := range p.Values() {
				if predicate(in) {
					if !yield(in) {
						return
					}
				}
			}
		},
	}
}

// Flatten converts a Pipe of Pipes into a Pipe of their elements,
// emitting the items of each inner Pipe in order.
//
// Inner pipes are only iterated once the previous one is exhausted.
func Flatten[T any](p Pipe[Pipe[T]]) Pipe[T] {
	out := Pipe[T]{
		seq: func(yield func(T) bool) {
			for inner := range p.Values() {
				for item := range inner.Values() {
					if !yield(item) {
						return
					}
				}
			}
		},
	}
	return out
}

// FlattenSlices converts a Pipe of slices into a Pipe of their elements.
func FlattenSlices[T any](p Pipe[[]T]) Pipe[T] {
	return Flatten(Map(p, FromSlice[T]))
}

// Chunk groups incoming values into slices of the given size and returns a Pipe producing those slices.
//
// The final chunk may be smaller than chunkSize. Every chunk has its own
// backing array, so retaining a chunk is always safe.
//
// Chunk panics if chunkSize is not positive.
func Chunk[T any](p Pipe[T], chunkSize int) Pipe[[]T] {
	if chunkSize <= 0 {
		panic("kompost.Chunk: chunkSize must be positive")
	}

	return Pipe[[]T]{
		seq: func(yield func([]T) bool) {
			accum := make([]T, 0, chunkSize)
			for i := range p.Values() {
				if len(accum) >= chunkSize {
					if !yield(accum) {
						return
					}
					accum = make([]T, 0, chunkSize)
				}

				accum = append(accum, i)
			}

			if len(accum) > 0 {
				yield(accum)
			}
		},
	}
}

// Take returns a Pipe that yields at most the first n values of p.
//
// Take never draws more than n values from p.
func Take[T any](p Pipe[T], n int) Pipe[T] {
	return Pipe[T]{
		seq: func(yield func(T) bool) {
			if n <= 0 {
				return
			}
			i := 0
			for v := range p.Values() {
				if !yield(v) {
					return
				}
				i++
				if i >= n {
					return
				}
			}
		},
	}
}

// Enumerate pairs every value of p with its zero-based position.
func Enumerate[T any](p Pipe[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for v := range p.Values() {
			if !yield(i, v) {
				return
			}
			i++
		}
	}
}
