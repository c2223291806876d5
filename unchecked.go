package rawvec

// The unchecked tier. These methods perform no bounds or liveness
// checks; each documents the precondition that is the caller's sole
// responsibility. Violating a precondition is undefined behavior and
// is not reachable from the safe tier.

// GetUnchecked returns a pointer to slot i without any check.
//
// Preconditions: 0 <= i < Cap(), and for reads the slot must be live
// (i < Len(), or written before being read).
func (v *Vector[T]) GetUnchecked(i int) *T {
	return v.block.Slot(i)
}

// LastUnchecked returns a pointer to the last element without any
// check.
//
// Precondition: Len() > 0.
func (v *Vector[T]) LastUnchecked() *T {
	return v.block.Slot(v.len - 1)
}

// PushUnchecked appends x without consulting the growth policy.
//
// Precondition: SpareCap() > 0.
func (v *Vector[T]) PushUnchecked(x T) {
	*v.block.Slot(v.len) = x
	v.len++
}

// ExtendUnchecked appends every item the iterator produces without
// consulting the growth policy.
//
// Precondition: SpareCap() >= the number of items the iterator will
// yield; the caller must not underestimate that count.
func (v *Vector[T]) ExtendUnchecked(it Iterator[T]) {
	for {
		x, ok := it.Next()
		if !ok {
			return
		}
		v.PushUnchecked(x)
	}
}
