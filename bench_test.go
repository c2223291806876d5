package rawvec

import (
	"fmt"
	"testing"
)

func BenchmarkPush(b *testing.B) {
	sizes := []int{16, 1024, 65536}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("n=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				v := New[int]()
				for j := 0; j < size; j++ {
					v.Push(j)
				}
			}
		})
	}
}

func BenchmarkPushUnchecked(b *testing.B) {
	const size = 65536
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v := New[int]()
		v.Reserve(size)
		for j := 0; j < size; j++ {
			v.PushUnchecked(j)
		}
	}
}

func BenchmarkExtend(b *testing.B) {
	items := make([]int, 4096)
	for i := range items {
		items[i] = i
	}

	b.Run("hinted", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			v := New[int]()
			v.Extend(FromSlice(items))
		}
	})

	b.Run("unhinted", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			v := New[int]()
			v.Extend(&unhintedIterator{items: items})
		}
	})
}

// unhintedIterator hides its length, forcing the one-at-a-time path.
type unhintedIterator struct {
	items []int
}

func (u *unhintedIterator) Next() (int, bool) {
	if len(u.items) == 0 {
		return 0, false
	}
	x := u.items[0]
	u.items = u.items[1:]
	return x, true
}

func BenchmarkGet(b *testing.B) {
	v := New[int]()
	for i := 0; i < 1024; i++ {
		v.Push(i)
	}

	b.Run("checked", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			x, _ := v.Get(i & 1023)
			_ = x
		}
	})

	b.Run("unchecked", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = v.GetUnchecked(i & 1023)
		}
	})
}
