package rawvec

import (
	"fmt"
	"math/bits"

	"github.com/hupe1980/rawvec/internal/block"
	"github.com/hupe1980/rawvec/internal/typeutil"
)

// Vector is a growable array of T on one contiguous block of slots.
//
// Slots with index < Len() hold live values; slots in [Len(), Cap())
// are spare capacity holding unspecified bytes, and no safe method ever
// exposes them. Every mutating method keeps Len() <= Cap().
//
// A Vector is owned by a single goroutine at a time; see the package
// documentation for the concurrency and invalidation rules.
type Vector[T any] struct {
	block   *block.Block[T]
	len     int
	offHeap bool
}

// New returns an empty, heap-backed vector. No storage is allocated
// until the first element arrives.
func New[T any]() *Vector[T] {
	return &Vector[T]{block: block.Alloc[T](0, false)}
}

// NewOffHeap returns an empty vector whose blocks live outside the Go
// heap in anonymous mappings. Only pointer-free element types are
// supported; anything else returns ErrPointerElem.
//
// Callers should Close an off-heap vector when done with it to release
// the mapping eagerly.
func NewOffHeap[T any]() (*Vector[T], error) {
	if !typeutil.PointerFreeOf[T]() {
		return nil, fmt.Errorf("%w: %T", ErrPointerElem, *new(T))
	}
	return &Vector[T]{block: block.Alloc[T](0, true), offHeap: true}, nil
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.len
}

// Cap returns the number of slots the vector can hold without
// reallocating.
func (v *Vector[T]) Cap() int {
	return v.block.Cap()
}

// SpareCap returns the number of elements that can be appended without
// reallocating.
func (v *Vector[T]) SpareCap() int {
	return v.block.Cap() - v.len
}

// IsEmpty reports whether the vector holds no elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.len == 0
}

// nextPowerOfTwo returns the smallest power of two >= n, and 1 for
// n <= 1 so a capacity of zero never rounds to zero.
func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// reallocTo is the only place a reallocation happens. It allocates a
// new block of newCap slots, moves the live prefix into it in index
// order and releases the old block.
//
// Shrinking below the live length is a programming error; callers that
// want to drop elements must lower the length first.
func (v *Vector[T]) reallocTo(newCap int) {
	if newCap < v.len {
		panic(fmt.Sprintf("rawvec: reallocation to %d slots below live length %d", newCap, v.len))
	}
	next := block.Alloc[T](newCap, v.offHeap)
	copy(next.Prefix(v.len), v.block.Prefix(v.len))
	_ = v.block.Free()
	v.block = next
}

// ensureSpare grows the vector so at least n more elements fit without
// another reallocation. n <= 0 is a no-op.
func (v *Vector[T]) ensureSpare(n int) {
	if n <= 0 || v.SpareCap() >= n {
		return
	}
	v.reallocTo(nextPowerOfTwo(v.len + n))
}

// growByOne reallocates to the next power of two above the current
// capacity, making room for at least one more element.
func (v *Vector[T]) growByOne() {
	v.reallocTo(nextPowerOfTwo(v.block.Cap() + 1))
}

// Reserve ensures at least n more elements can be appended without
// reallocating. At most one reallocation is performed.
func (v *Vector[T]) Reserve(n int) {
	v.ensureSpare(n)
}

// Push appends x. Amortized O(1); the occasional reallocating call is
// O(Len()).
func (v *Vector[T]) Push(x T) {
	if v.len == v.block.Cap() {
		v.growByOne()
	}
	*v.block.Slot(v.len) = x
	v.len++
}

// Pop removes the last element and returns a pointer to it, or
// (nil, false) when the vector is empty.
//
// The pointer refers to the value that was just removed. It stays
// readable only until the next mutating call; a later Push will reuse
// the slot.
func (v *Vector[T]) Pop() (*T, bool) {
	if v.len == 0 {
		return nil, false
	}
	v.len--
	return v.block.Slot(v.len), true
}

// Get returns a pointer to element i, or (nil, false) when i is out of
// range. The pointer allows mutation; keep at most one writer at a
// time.
func (v *Vector[T]) Get(i int) (*T, bool) {
	if i < 0 || i >= v.len {
		return nil, false
	}
	return v.block.Slot(i), true
}

// Set overwrites element i with x and reports whether i was in range.
func (v *Vector[T]) Set(i int, x T) bool {
	if i < 0 || i >= v.len {
		return false
	}
	*v.block.Slot(i) = x
	return true
}

// Last returns a pointer to the last element, or (nil, false) when the
// vector is empty.
func (v *Vector[T]) Last() (*T, bool) {
	return v.Get(v.len - 1)
}

// Slice returns the live prefix as a slice sharing the vector's
// storage. It is invalidated by any reallocating or length-changing
// call.
func (v *Vector[T]) Slice() []T {
	return v.block.Prefix(v.len)
}

// ToSlice returns a copy of the live prefix in a slice of exactly
// Len() elements.
func (v *Vector[T]) ToSlice() []T {
	out := make([]T, v.len)
	copy(out, v.block.Prefix(v.len))
	return out
}

// ShrinkToFit reallocates so the capacity equals the length exactly.
// No-op when already tight; the capacity may become zero.
func (v *Vector[T]) ShrinkToFit() {
	if v.block.Cap() == v.len {
		return
	}
	v.reallocTo(v.len)
}

// Close releases the backing storage and empties the vector. It is
// idempotent. Heap-backed vectors do not strictly need it, but
// off-heap vectors should be closed to unmap their block eagerly.
func (v *Vector[T]) Close() error {
	v.len = 0
	return v.block.Free()
}

// String formats the live prefix with the current length and capacity.
func (v *Vector[T]) String() string {
	return fmt.Sprintf("%v, Length: %d, Capacity: %d", v.Slice(), v.len, v.block.Cap())
}
