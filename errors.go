package rawvec

import "errors"

var (
	// ErrPointerElem is returned by NewOffHeap when the element type
	// contains pointers. The garbage collector never scans off-heap
	// memory, so storing pointers there would hide them from it.
	ErrPointerElem = errors.New("rawvec: element type contains pointers")

	// ErrNotTriviallyCopyable is returned by Clone when the element
	// type cannot be duplicated by a verbatim byte copy.
	ErrNotTriviallyCopyable = errors.New("rawvec: element type is not trivially copyable")
)
