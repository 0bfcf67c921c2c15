package kompost

// Ring is a finite buffer read cyclically: index i refers to element
// i modulo Len. The buffer is borrowed, not copied.
type Ring[T any] struct {
	buf []T
}

// NewRing returns a Ring over buf.
func NewRing[T any](buf []T) Ring[T] {
	return Ring[T]{buf: buf}
}

// Len is the length of one cycle.
func (r Ring[T]) Len() int {
	return len(r.buf)
}

// At returns the element at index i, wrapping around. At panics on an empty
// ring.
func (r Ring[T]) At(i int) T {
	return r.buf[r.wrap(i)]
}

// Window returns a lazy read of size consecutive elements starting at start,
// wrapping around as often as needed. Every iteration re-reads the buffer,
// so windows are independent of each other and can be consumed in any order.
// A window over an empty ring is empty.
func (r Ring[T]) Window(start, size int) Pipe[T] {
	return Pipe[T]{
		seq: func(yield func(T) bool) {
			if len(r.buf) == 0 {
				return
			}
			pos := r.wrap(start)
			for range size {
				if !yield(r.buf[pos]) {
					return
				}
				pos++
				if pos == len(r.buf) {
					pos = 0
				}
			}
		},
	}
}

func (r Ring[T]) wrap(i int) int {
	i %= len(r.buf)
	if i < 0 {
		i += len(r.buf)
	}
	return i
}

// Windows returns the periodic windows of the given size over one cycle of
// the ring. See PeriodicWindows.
func (r Ring[T]) Windows(size int) Pipe[Pipe[T]] {
	return PeriodicWindows(size, r.buf)
}
