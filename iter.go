package rawvec

import "iter"

// Iterator produces values for Extend. Next returns the next item, or
// ok == false once the producer is exhausted.
type Iterator[T any] interface {
	Next() (T, bool)
}

// SizeHinter is optionally implemented by iterators that can report a
// lower bound on the number of items remaining. The bound may be
// conservative (an under-count, including zero) but must never exceed
// the true count.
type SizeHinter interface {
	SizeHint() int
}

// sizeHint returns the iterator's reported lower bound, or 0 when the
// iterator reports nothing useful.
func sizeHint[T any](it Iterator[T]) int {
	if h, ok := it.(SizeHinter); ok {
		if n := h.SizeHint(); n > 0 {
			return n
		}
	}
	return 0
}

// Extend appends every item the iterator produces, in order.
//
// When the iterator reports a lower bound, that many slots are
// reserved up front (at most one reallocation) and filled through the
// unchecked path. Items beyond the reported bound are appended one at
// a time, each individually amortized O(1), since a lower bound says
// nothing about how many more items follow.
func (v *Vector[T]) Extend(it Iterator[T]) {
	n := sizeHint(it)
	v.ensureSpare(n)
	for i := 0; i < n; i++ {
		x, ok := it.Next()
		if !ok {
			return
		}
		v.PushUnchecked(x)
	}
	v.extendNaive(it)
}

// extendNaive appends one item at a time, growing as needed. Used for
// the portion of an iterator beyond its reported lower bound.
func (v *Vector[T]) extendNaive(it Iterator[T]) {
	for {
		x, ok := it.Next()
		if !ok {
			return
		}
		v.Push(x)
	}
}

// ExtendSlice appends the given values with a single reservation.
func (v *Vector[T]) ExtendSlice(xs ...T) {
	v.ensureSpare(len(xs))
	for _, x := range xs {
		v.PushUnchecked(x)
	}
}

// ExtendSeq appends every value the sequence yields, in order. A
// sequence carries no size information, so each value is appended
// individually.
func (v *Vector[T]) ExtendSeq(seq iter.Seq[T]) {
	for x := range seq {
		v.Push(x)
	}
}

// FromSlice returns an iterator over xs that reports an exact size
// hint.
func FromSlice[T any](xs []T) Iterator[T] {
	return &sliceIterator[T]{xs: xs}
}

type sliceIterator[T any] struct {
	xs []T
}

func (s *sliceIterator[T]) Next() (T, bool) {
	if len(s.xs) == 0 {
		var zero T
		return zero, false
	}
	x := s.xs[0]
	s.xs = s.xs[1:]
	return x, true
}

func (s *sliceIterator[T]) SizeHint() int {
	return len(s.xs)
}

// FromSeq adapts a range-over-func sequence to an Iterator. The
// adapter reports no size hint.
func FromSeq[T any](seq iter.Seq[T]) Iterator[T] {
	next, stop := iter.Pull(seq)
	return &seqIterator[T]{next: next, stop: stop}
}

type seqIterator[T any] struct {
	next func() (T, bool)
	stop func()
}

func (s *seqIterator[T]) Next() (T, bool) {
	x, ok := s.next()
	if !ok {
		s.stop()
	}
	return x, ok
}
