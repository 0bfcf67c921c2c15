package iterx

import (
	"iter"
)

func FromSlice[T any](in []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range in {
			if !yield(item) {
				break
			}
		}
	}
}

// RefsOf yields a pointer to every element of in, in order.
func RefsOf[T any](in []T) iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := range in {
			if !yield(&in[i]) {
				break
			}
		}
	}
}

// Counting wraps seq and increments *n every time an element is drawn from it.
func Counting[T any](seq iter.Seq[T], n *int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range seq {
			*n++
			if !yield(item) {
				break
			}
		}
	}
}
