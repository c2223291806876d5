package rawvec

import (
	"iter"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hintedIterator yields the given items but reports an arbitrary lower
// bound, so tests can exercise exact, conservative and zero hints.
type hintedIterator struct {
	items []int
	hint  int
}

func (h *hintedIterator) Next() (int, bool) {
	if len(h.items) == 0 {
		return 0, false
	}
	x := h.items[0]
	h.items = h.items[1:]
	if h.hint > 0 {
		h.hint--
	}
	return x, true
}

func (h *hintedIterator) SizeHint() int {
	return h.hint
}

func TestVector_Extend(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	t.Run("exact hint", func(t *testing.T) {
		v := New[int]()
		v.Extend(&hintedIterator{items: items, hint: len(items)})
		assert.Equal(t, items, v.Slice())
	})

	t.Run("conservative hint", func(t *testing.T) {
		v := New[int]()
		v.Extend(&hintedIterator{items: items, hint: 2})
		assert.Equal(t, items, v.Slice())
	})

	t.Run("zero hint", func(t *testing.T) {
		v := New[int]()
		v.Extend(&hintedIterator{items: []int{10, 20, 30}, hint: 0})
		assert.Equal(t, []int{10, 20, 30}, v.Slice())
	})

	t.Run("empty iterator", func(t *testing.T) {
		v := New[int]()
		v.Extend(&hintedIterator{})
		assert.True(t, v.IsEmpty())
		assert.Equal(t, 0, v.Cap())
	})

	t.Run("onto existing elements", func(t *testing.T) {
		v := New[int]()
		v.Push(0)
		v.Extend(FromSlice(items))
		assert.Equal(t, append([]int{0}, items...), v.Slice())
	})

	t.Run("exact hint reallocates at most once", func(t *testing.T) {
		v := New[int]()
		many := make([]int, 500)
		for i := range many {
			many[i] = i
		}

		capBefore := v.Cap()
		reallocs := 0
		v.Reserve(len(many))
		if v.Cap() != capBefore {
			reallocs++
		}
		capBefore = v.Cap()

		v.Extend(FromSlice(many))
		if v.Cap() != capBefore {
			reallocs++
		}

		assert.Equal(t, many, v.Slice())
		assert.LessOrEqual(t, reallocs, 1)
	})
}

func TestVector_ExtendSlice(t *testing.T) {
	v := New[string]()
	v.ExtendSlice("a", "b")
	v.ExtendSlice("c")
	v.ExtendSlice()

	assert.Equal(t, []string{"a", "b", "c"}, v.Slice())
	assert.Equal(t, 1, bits.OnesCount(uint(v.Cap())))
}

func TestVector_ExtendSeq(t *testing.T) {
	seq := func(yield func(int) bool) {
		for i := 1; i <= 4; i++ {
			if !yield(i * 11) {
				return
			}
		}
	}

	v := New[int]()
	v.ExtendSeq(iter.Seq[int](seq))
	assert.Equal(t, []int{11, 22, 33, 44}, v.Slice())
}

func TestFromSlice(t *testing.T) {
	it := FromSlice([]int{1, 2})

	h, ok := it.(SizeHinter)
	require.True(t, ok)
	assert.Equal(t, 2, h.SizeHint())

	x, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, 1, x)
	assert.Equal(t, 1, h.SizeHint())

	x, ok = it.Next()
	require.True(t, ok)
	assert.Equal(t, 2, x)

	_, ok = it.Next()
	assert.False(t, ok)
	assert.Equal(t, 0, h.SizeHint())
}

func TestFromSeq(t *testing.T) {
	seq := func(yield func(string) bool) {
		yield("x")
		yield("y")
	}

	it := FromSeq(iter.Seq[string](seq))
	_, isHinted := it.(SizeHinter)
	assert.False(t, isHinted)

	v := New[string]()
	v.Extend(it)
	assert.Equal(t, []string{"x", "y"}, v.Slice())
}
