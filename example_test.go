package rawvec_test

import (
	"fmt"
	"log"

	"github.com/hupe1980/rawvec"
)

// Example demonstrates basic push, pop and slice access.
func Example() {
	v := rawvec.New[int]()
	for _, x := range []int{1, 2, 3, 4, 5} {
		v.Push(x)
	}

	fmt.Println(v.Slice())

	last, _ := v.Pop()
	fmt.Println(*last, v.Len())
	// Output:
	// [1 2 3 4 5]
	// 5 4
}

// Example_extend demonstrates appending from an iterator with a size
// hint and from a slice.
func Example_extend() {
	v := rawvec.New[string]()
	v.Extend(rawvec.FromSlice([]string{"a", "b"}))
	v.ExtendSlice("c", "d")

	fmt.Println(v.Slice())
	// Output: [a b c d]
}

// Example_unchecked demonstrates the unchecked tier after a single
// up-front reservation.
func Example_unchecked() {
	v := rawvec.New[int]()

	// One reservation, then append without per-call capacity checks.
	v.Reserve(3)
	for i := 0; i < 3; i++ {
		v.PushUnchecked(i * i)
	}

	fmt.Println(v.Slice(), v.Cap())
	// Output: [0 1 4] 4
}

// Example_offHeap demonstrates a vector backed by an anonymous mapping
// outside the Go heap.
func Example_offHeap() {
	v, err := rawvec.NewOffHeap[float64]()
	if err != nil {
		log.Fatal(err)
	}
	defer v.Close()

	v.Push(3.14)
	v.Push(2.71)

	fmt.Println(v.Slice())
	// Output: [3.14 2.71]
}
