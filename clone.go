package rawvec

import "github.com/hupe1980/rawvec/internal/typeutil"

// Clone duplicates the vector by copying its whole block verbatim,
// uninitialized suffix included. That is cheaper than an element-aware
// copy but only correct for trivially copyable element types, so
// pointer-bearing element types get ErrNotTriviallyCopyable instead.
//
// The clone keeps the original's length, capacity and storage backend.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	if !typeutil.PointerFreeOf[T]() {
		return nil, ErrNotTriviallyCopyable
	}
	return &Vector[T]{
		block:   v.block.CloneRaw(),
		len:     v.len,
		offHeap: v.offHeap,
	}, nil
}
