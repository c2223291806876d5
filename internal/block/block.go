// Package block implements the contiguous storage block backing a vector.
//
// A Block owns exactly one allocation of capacity slots for its element
// type. The block itself has no notion of which slots hold live values;
// that bookkeeping belongs to the caller. Slot and Prefix are the only
// places in the module where raw memory is reinterpreted as typed
// values, so the unsafe surface is audited here once and reused
// everywhere.
//
// Two backends exist behind the same type:
//
//   - heap: a plain make([]T, capacity); the slice pins the allocation
//     and the garbage collector scans it, so any element type is legal.
//   - off-heap: an anonymous mapping from the mmap package. The
//     collector never scans mapped memory, so off-heap blocks are only
//     legal for pointer-free element types. Enforcing that is the
//     caller's job (see typeutil.PointerFree).
package block

import (
	"fmt"
	"unsafe"

	"github.com/hupe1980/rawvec/internal/mmap"
)

// Block is one contiguous allocation of capacity slots for T.
// Slots hold unspecified bytes until the caller writes them; a Block
// never assumes (nor guarantees) zero-initialized storage.
type Block[T any] struct {
	base unsafe.Pointer
	cap  int

	// Exactly one of the two is set for a non-empty block.
	heap    []T           // pins a heap-backed allocation
	mapping *mmap.Mapping // owns an off-heap allocation
}

// Alloc returns a new block of exactly capacity slots, none logically
// live. A capacity <= 0 yields an empty block with no storage.
//
// Allocation failure is fatal: there is no way to continue a program
// whose backing store cannot grow, so a failed mapping panics rather
// than returning an error.
func Alloc[T any](capacity int, offHeap bool) *Block[T] {
	if capacity <= 0 {
		return &Block[T]{}
	}

	elemSize := unsafe.Sizeof(*new(T))
	size := capacity * int(elemSize)
	if elemSize > 0 && size/int(elemSize) != capacity {
		panic(fmt.Sprintf("block: allocation size overflow: %d slots of %d bytes", capacity, elemSize))
	}

	// Zero-sized element types occupy no bytes; the heap path hands out
	// a shared base for them, so off-heap degenerates to heap.
	if !offHeap || size == 0 {
		buf := make([]T, capacity)
		return &Block[T]{
			base: unsafe.Pointer(unsafe.SliceData(buf)),
			cap:  capacity,
			heap: buf,
		}
	}

	m, err := mmap.MapAnon(size)
	if err != nil {
		panic(fmt.Sprintf("block: anonymous mapping of %d bytes failed: %v", size, err))
	}
	return &Block[T]{
		base:    unsafe.Pointer(unsafe.SliceData(m.Bytes())),
		cap:     capacity,
		mapping: m,
	}
}

// Cap returns the number of slots in the block.
func (b *Block[T]) Cap() int {
	return b.cap
}

// OffHeap reports whether the block lives outside the Go heap.
func (b *Block[T]) OffHeap() bool {
	return b.mapping != nil
}

// Slot returns a pointer to slot i without any bounds check.
//
// Preconditions: 0 <= i < Cap(), and for reads the slot must currently
// hold a live value. Violating either is undefined behavior.
func (b *Block[T]) Slot(i int) *T {
	return (*T)(unsafe.Add(b.base, uintptr(i)*unsafe.Sizeof(*new(T))))
}

// Prefix returns the first n slots as a slice without any bounds check.
//
// Preconditions: 0 <= n <= Cap(), and for reads all n slots must
// currently hold live values.
func (b *Block[T]) Prefix(n int) []T {
	return unsafe.Slice((*T)(b.base), n)
}

// CloneRaw duplicates all Cap() slots verbatim, including any slots the
// caller considers uninitialized, into a new block with the same
// backend. This is intentionally a byte copy, cheaper than an
// element-aware clone.
//
// Precondition: T must be pointer-free (a verbatim byte copy of a
// pointer-bearing value would alias its pointees).
func (b *Block[T]) CloneRaw() *Block[T] {
	dst := Alloc[T](b.cap, b.OffHeap())
	if b.cap == 0 {
		return dst
	}
	size := b.cap * int(unsafe.Sizeof(*new(T)))
	if size > 0 {
		copy(unsafe.Slice((*byte)(dst.base), size), unsafe.Slice((*byte)(b.base), size))
	}
	return dst
}

// Free releases the block's storage. For off-heap blocks the mapping is
// unmapped; for heap blocks the allocation is handed back to the
// garbage collector. Free is idempotent, and every slot pointer and
// prefix slice obtained from the block is invalid afterwards.
func (b *Block[T]) Free() error {
	b.base = nil
	b.cap = 0
	b.heap = nil
	if b.mapping != nil {
		m := b.mapping
		b.mapping = nil
		return m.Close()
	}
	return nil
}
