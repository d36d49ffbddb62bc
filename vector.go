package vec

import "iter"

// Vector is a growable contiguous container over T. It composes one
// RawBuffer with a count of live elements: slots [0, Len()) hold live
// elements, slots [Len(), Cap()) are spare. The zero value is an empty
// vector ready for use.
//
// A Vector must not be copied as a value: duplicate with Clone, transfer
// with Move or Swap. It is not safe for concurrent use.
type Vector[T any] struct {
	buf   RawBuffer[T]
	n     int
	grows int // reallocations performed over the vector's lifetime
}

// New returns a new empty vector owning no storage.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewWithLen returns a vector holding n zero-valued live elements with
// capacity exactly n.
func NewWithLen[T any](n int) (*Vector[T], error) {
	buf, err := NewRawBuffer[T](n)
	if err != nil {
		return nil, err
	}
	return &Vector[T]{buf: buf, n: n}, nil
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.n
}

// Cap returns the number of slots the vector owns.
func (v *Vector[T]) Cap() int {
	return v.buf.Cap()
}

// At returns the address of element i. i must be in [0, Len()); the
// address stays valid only until the next reallocating operation.
func (v *Vector[T]) At(i int) *T {
	if i >= v.n {
		panic("vec: index out of range")
	}
	return v.buf.Slot(i)
}

// Set stores val into element i. i must be in [0, Len()).
func (v *Vector[T]) Set(i int, val T) {
	*v.At(i) = val
}

// live returns the live elements as a slice view.
func (v *Vector[T]) live() []T {
	return v.buf.slots[:v.n]
}

// Clone returns an independent deep copy with capacity equal to the
// source length. A failed element copy destroys the partial copy and
// returns the error; no partially built vector is ever visible.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	buf, err := NewRawBuffer[T](v.n)
	if err != nil {
		return nil, err
	}
	if err := relocate(buf.slots, v.live(), cloneFn[T]()); err != nil {
		buf.Release()
		return nil, err
	}
	return &Vector[T]{buf: buf, n: v.n}, nil
}

// Move transfers the receiver's storage and length to a new vector in
// O(1), leaving the receiver empty with no storage. No element is
// copied. Never fails.
func (v *Vector[T]) Move() *Vector[T] {
	out := &Vector[T]{}
	out.Swap(v)
	return out
}

// Swap exchanges storage and length with other in O(1). Never fails.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.buf.Swap(&other.buf)
	v.n, other.n = other.n, v.n
	v.grows, other.grows = other.grows, v.grows
}

// Assign replaces the receiver's contents with a deep copy of rhs.
//
// When rhs does not fit in the current capacity the copy is built aside
// and swapped in, so a failure leaves the receiver unchanged. When it
// fits, storage is reused: the overlapping prefix is assigned over and
// the tail is destroyed or copied as needed; a failure on this path
// leaves a valid but unspecified mix of old and new elements.
func (v *Vector[T]) Assign(rhs *Vector[T]) error {
	if v == rhs {
		return nil
	}
	if rhs.n > v.Cap() {
		dup, err := rhs.Clone()
		if err != nil {
			return err
		}
		v.Swap(dup)
		return nil
	}
	if clone := cloneFn[T](); clone == nil {
		copy(v.buf.slots[:rhs.n], rhs.live())
	} else {
		for i, src := range rhs.live() {
			c, err := clone(src)
			if err != nil {
				if i > v.n {
					clear(v.buf.slots[v.n:i])
				}
				return err
			}
			v.buf.slots[i] = c
		}
	}
	if rhs.n < v.n {
		clear(v.buf.slots[rhs.n:v.n])
	}
	v.n = rhs.n
	return nil
}

// Clear destroys all live elements and keeps the capacity for reuse.
func (v *Vector[T]) Clear() {
	clear(v.live())
	v.n = 0
}

// Release destroys all live elements and frees the storage. The vector
// remains usable and grows again from capacity 0.
func (v *Vector[T]) Release() {
	v.n = 0
	v.buf.Release()
}

// Items returns the live elements as a mutable contiguous view. The
// view is invalidated by any reallocating operation; an in-place Insert
// or Erase shifts the elements at and after the mutation point.
func (v *Vector[T]) Items() []T {
	return v.live()
}

// All iterates over index/address pairs of the live elements. The
// vector must not be mutated during iteration.
func (v *Vector[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < v.n; i++ {
			if !yield(i, v.buf.Slot(i)) {
				return
			}
		}
	}
}
