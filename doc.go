// Package rawvec provides a growable array built directly on raw,
// partially-initialized memory.
//
// A Vector keeps one contiguous block of slots, logically split into an
// initialized prefix holding the live elements and an uninitialized
// suffix of spare capacity. Capacity grows by power-of-two doubling, so
// appending is amortized O(1).
//
// # Quick Start
//
//	v := rawvec.New[int]()
//	v.Push(1)
//	v.Push(2)
//	v.Push(3)
//
//	fmt.Println(v.Slice()) // [1 2 3]
//
//	last, ok := v.Pop() // *last == 3, ok == true
//
// # Safe and Unchecked Tiers
//
// Every accessor exists in two tiers. The safe tier bounds-checks and
// reports out-of-range access as an absent result:
//
//	if x, ok := v.Get(i); ok { ... }
//
// The unchecked tier skips all checks for callers that have proven the
// precondition externally, for example after reserving capacity once
// for a batch of appends:
//
//	v.Reserve(n)
//	for i := 0; i < n; i++ {
//		v.PushUnchecked(items[i])
//	}
//
// Violating an unchecked method's documented precondition is undefined
// behavior; nothing in the safe tier can trigger it.
//
// # Off-Heap Storage
//
// For pointer-free element types the backing block can live outside the
// Go heap in an anonymous mapping, keeping large vectors invisible to
// the garbage collector:
//
//	v, err := rawvec.NewOffHeap[float32]()
//	if err != nil { ... }
//	defer v.Close()
//
// # Invalidation
//
// Pointers and slices obtained from a Vector point into its current
// block. Any call that may reallocate (Push, Extend, Reserve,
// ShrinkToFit) or change the length invalidates them; do not retain
// them across such calls.
//
// Vectors are not safe for concurrent use. A single owner mutates a
// vector at a time; callers that share one must serialize access
// themselves.
package rawvec
