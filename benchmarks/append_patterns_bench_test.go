package vec_test

import (
	"fmt"
	"testing"

	"github.com/pavanmanishd/vec"
)

// BenchmarkAppend compares repeated appends against the builtin append,
// across container sizes that cross several growth steps.
func BenchmarkAppend(b *testing.B) {
	sizes := []int{16, 256, 4096}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("Vector_%d", size), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				var v vec.Vector[int]
				for j := 0; j < size; j++ {
					v.PushBack(j)
				}
			}
		})

		b.Run(fmt.Sprintf("Builtin_%d", size), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				var s []int
				for j := 0; j < size; j++ {
					s = append(s, j)
				}
			}
		})
	}
}

// BenchmarkAppendPreallocated measures appends when the final size is
// known up front, so no growth happens inside the loop.
func BenchmarkAppendPreallocated(b *testing.B) {
	const size = 4096

	b.Run("Vector_Reserve", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			var v vec.Vector[int]
			v.Reserve(size)
			for j := 0; j < size; j++ {
				v.PushBack(j)
			}
		}
	})

	b.Run("Builtin_MakeCap", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			s := make([]int, 0, size)
			for j := 0; j < size; j++ {
				s = append(s, j)
			}
		}
	})
}

// BenchmarkClearReuse measures the fill-then-clear pattern where the
// storage is kept across rounds.
func BenchmarkClearReuse(b *testing.B) {
	const size = 1024

	b.Run("Vector", func(b *testing.B) {
		var v vec.Vector[int]
		v.Reserve(size)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			for j := 0; j < size; j++ {
				v.PushBack(j)
			}
			v.Clear()
		}
	})

	b.Run("Builtin", func(b *testing.B) {
		s := make([]int, 0, size)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			for j := 0; j < size; j++ {
				s = append(s, j)
			}
			s = s[:0]
		}
	})
}

// BenchmarkInsertFront measures the worst-case shifting insert.
func BenchmarkInsertFront(b *testing.B) {
	const size = 512

	b.Run("Vector", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			var v vec.Vector[int]
			for j := 0; j < size; j++ {
				v.Insert(0, j)
			}
		}
	})

	b.Run("Builtin", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			var s []int
			for j := 0; j < size; j++ {
				s = append(s, 0)
				copy(s[1:], s)
				s[0] = j
			}
		}
	})
}

// BenchmarkErase measures middle-of-sequence erasure.
func BenchmarkErase(b *testing.B) {
	const size = 512

	b.Run("Vector", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			b.StopTimer()
			var v vec.Vector[int]
			for j := 0; j < size; j++ {
				v.PushBack(j)
			}
			b.StartTimer()
			for v.Len() > 0 {
				v.Erase(v.Len() / 2)
			}
		}
	})
}
