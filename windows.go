package kompost

// periodicState is the context behind PeriodicWindows.
type periodicState[T any] struct {
	counter int
	size    int
	ring    Ring[T]
}

func nextWindow[T any](s *periodicState[T]) (Pipe[T], bool) {
	start := s.counter
	s.counter++
	if s.counter > s.ring.Len() {
		return Pipe[T]{}, false
	}
	return s.ring.Window(start, s.size), true
}

// PeriodicWindows returns one window of the given size for every element of
// src. Window i holds the size elements of src starting at index i, wrapping
// around to the start of src when it runs past the end.
//
// For example, windows of size 3 over [1, 2, 3, 4] are
//
//	[1, 2, 3], [2, 3, 4], [3, 4, 1], [4, 1, 2]
//
// A size larger than len(src) makes elements repeat within a window, a size
// of 0 yields len(src) empty windows and an empty src yields no windows.
// Windows are lazy reads of src, which is borrowed rather than copied.
//
// PeriodicWindows panics if size is negative.
func PeriodicWindows[T any](size int, src []T) Pipe[Pipe[T]] {
	if size < 0 {
		panic("kompost.PeriodicWindows: size must not be negative")
	}
	return Pipe[Pipe[T]]{
		seq: func(yield func(Pipe[T]) bool) {
			a := NewAnonymous(src, func(src []T) periodicState[T] {
				return periodicState[T]{size: size, ring: NewRing(src)}
			}, nextWindow[T])
			a.Values()(yield)
		},
	}
}

// PeriodicWindowsOf is PeriodicWindows over a finite Pipe. The pipe is
// drained into a buffer when the result is first iterated, since the number
// of windows depends on its length.
func PeriodicWindowsOf[T any](size int, src Pipe[T]) Pipe[Pipe[T]] {
	if size < 0 {
		panic("kompost.PeriodicWindowsOf: size must not be negative")
	}
	return Pipe[Pipe[T]]{
		seq: func(yield func(Pipe[T]) bool) {
			PeriodicWindows(size, src.Collect()).Values()(yield)
		},
	}
}
