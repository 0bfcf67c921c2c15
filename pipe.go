package kompost

import (
	"iter"

	"kompost/internal/iterx"
)

// Pipe is a lazily-evaluated stream of values of type T.
//
// A Pipe does nothing until it is iterated. Whether it can be iterated more
// than once depends on its source: pipes built from slices can, pipes built
// from an Anonymous adapter or a Cursor cannot.
type Pipe[T any] struct {
	seq iter.Seq[T]
}

// From wraps seq into a Pipe.
func From[T any](seq iter.Seq[T]) Pipe[T] {
	if seq == nil {
		return Empty[T]()
	}
	return Pipe[T]{seq: seq}
}

// FromSlice returns a Pipe yielding the elements of s in order. The slice is
// read at iteration time, not copied.
func FromSlice[T any](s []T) Pipe[T] {
	return Pipe[T]{seq: iterx.FromSlice(s)}
}

// Of returns a Pipe yielding values.
func Of[T any](values ...T) Pipe[T] {
	return FromSlice(values)
}

// Empty returns a Pipe that yields nothing.
func Empty[T any]() Pipe[T] {
	return Pipe[T]{seq: func(func(T) bool) {}}
}

// Values returns the underlying iter.Seq.
func (p Pipe[T]) Values() iter.Seq[T] {
	if p.seq == nil {
		return Empty[T]().seq
	}
	return p.seq
}

// Collect drains the pipe into a slice. It never returns nil.
func (p Pipe[T]) Collect() []T {
	out := make([]T, 0)
	for v := range p.Values() {
		out = append(out, v)
	}
	return out
}

// Tap returns a Pipe that calls fn with every value before passing it on.
//
// Tap panics if fn is nil.
func (p Pipe[T]) Tap(fn func(T)) Pipe[T] {
	if fn == nil {
		panic("kompost.Tap: fn must not be nil")
	}
	return Pipe[T]{
		seq: func(yield func(T) bool) {
			for v := range p.Values() {
				fn(v)
				if !yield(v) {
					return
				}
			}
		},
	}
}

// Through applies stages to p from left to right and returns the last result.
func (p Pipe[T]) Through(stages ...Stage[Pipe[T], Pipe[T]]) Pipe[T] {
	for _, stage := range stages {
		p = Compose(p, stage)
	}
	return p
}

// CollectNested drains a pipe of pipes into a slice of slices.
func CollectNested[T any](p Pipe[Pipe[T]]) [][]T {
	out := make([][]T, 0)
	for inner := range p.Values() {
		out = append(out, inner.Collect())
	}
	return out
}

// Deref turns a pipe of pointers into a pipe of the values they point to.
func Deref[T any](p Pipe[*T]) Pipe[T] {
	return Map(p, func(v *T) T { return *v })
}
