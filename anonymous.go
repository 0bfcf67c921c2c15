package kompost

import (
	"iter"
)

type (
	// InitFunc consumes a source exactly once and returns the private
	// context of an Anonymous adapter.
	InitFunc[Src, Ctx any] func(src Src) Ctx

	// StepFunc produces the next value from a context, mutating it in place.
	// Returning false signals exhaustion.
	StepFunc[Ctx, Out any] func(ctx *Ctx) (Out, bool)
)

// Stepper is anything that can produce its next value on demand.
type Stepper[T any] interface {
	Next() (T, bool)
}

// Stopper is implemented by contexts and cursors holding resources that
// must be released once they are no longer pulled from.
type Stopper interface {
	Stop()
}

// Anonymous is a lazy sequence defined by a context and a step function,
// without a dedicated named type per use.
//
// The context is built once by an InitFunc when the adapter is created and
// is never exposed to the caller. Each call to Next calls the step function
// exactly once, until it first reports exhaustion. From then on the adapter
// stays exhausted and the step function is not called again.
//
// An Anonymous is single-use and must not be shared between goroutines.
type Anonymous[Ctx, Out any] struct {
	ctx  Ctx
	step StepFunc[Ctx, Out]
	done bool
}

// NewAnonymous builds the context from src with init, and returns an
// adapter producing values by calling step on that context.
//
// The identity adapter, reproducing a pipe element for element:
//
//	a := kompost.NewAnonymous(p, kompost.Pull[int], func(c **kompost.Cursor[int]) (int, bool) {
//		return (*c).Next()
//	})
//
// NewAnonymous panics if init or step is nil.
func NewAnonymous[Src, Ctx, Out any](src Src, init InitFunc[Src, Ctx], step StepFunc[Ctx, Out]) *Anonymous[Ctx, Out] {
	if init == nil || step == nil {
		panic("kompost.NewAnonymous: init and step must not be nil")
	}
	return &Anonymous[Ctx, Out]{
		ctx:  init(src),
		step: step,
	}
}

// Next returns the next value, or false once the adapter is exhausted.
func (a *Anonymous[Ctx, Out]) Next() (Out, bool) {
	var zero Out
	if a.done {
		return zero, false
	}
	out, ok := a.step(&a.ctx)
	if !ok {
		a.Close()
		return zero, false
	}
	return out, true
}

// Close releases the context if it implements Stopper and marks the adapter
// exhausted. Calling Close more than once is a no-op.
func (a *Anonymous[Ctx, Out]) Close() {
	if a.done {
		return
	}
	a.done = true
	if s, ok := any(a.ctx).(Stopper); ok {
		s.Stop()
	}
}

// Values returns a single-use iter.Seq driving the adapter. Breaking out of
// the loop closes the adapter.
func (a *Anonymous[Ctx, Out]) Values() iter.Seq[Out] {
	return FromStepper[Out](a).Values()
}

// Pipe returns the adapter as a single-use Pipe.
func (a *Anonymous[Ctx, Out]) Pipe() Pipe[Out] {
	return FromStepper[Out](a)
}

// FromStepper returns a Pipe yielding the values of s until it is exhausted.
// If s also implements Stopper, it is stopped when the iteration ends,
// including when the consumer stops early.
func FromStepper[T any](s Stepper[T]) Pipe[T] {
	return Pipe[T]{
		seq: func(yield func(T) bool) {
			if stopper, ok := s.(Stopper); ok {
				defer stopper.Stop()
			} else if closer, ok := s.(interface{ Close() }); ok {
				defer closer.Close()
			}
			for {
				v, ok := s.Next()
				if !ok {
					return
				}
				if !yield(v) {
					return
				}
			}
		},
	}
}

// Cursor is a pull-based view of a Pipe.
type Cursor[T any] struct {
	next func() (T, bool)
	stop func()
	done bool
}

// Pull returns a Cursor over p. The cursor must be stopped once it is no
// longer needed, unless it was drained to exhaustion.
func Pull[T any](p Pipe[T]) *Cursor[T] {
	next, stop := iter.Pull(p.Values())
	return &Cursor[T]{next: next, stop: stop}
}

// Next returns the next value of the underlying pipe.
func (c *Cursor[T]) Next() (T, bool) {
	if c.done {
		var zero T
		return zero, false
	}
	v, ok := c.next()
	if !ok {
		c.Stop()
	}
	return v, ok
}

// Stop releases the cursor. Further calls to Next report exhaustion.
func (c *Cursor[T]) Stop() {
	if c.done {
		return
	}
	c.done = true
	c.stop()
}
