package vec

import (
	"errors"
	"fmt"
	"math"
	"unsafe"
)

// Errors returned by storage allocation.
var (
	// ErrNegativeCount is returned when a negative element count is requested.
	ErrNegativeCount = errors.New("vec: negative element count")
	// ErrCapacityOverflow is returned when a capacity's byte size does not fit in int.
	ErrCapacityOverflow = errors.New("vec: capacity overflows byte size")
)

// RawBuffer owns storage for exactly Cap() elements of type T. It never
// constructs or destroys elements itself: which slots hold live elements
// is the business of the Vector layered on top, and spare slots hold the
// zero value of T.
//
// Ownership is exclusive. A RawBuffer must not be copied as a value;
// the only way storage moves between buffers is Swap.
type RawBuffer[T any] struct {
	slots []T // len == cap == capacity; zeroed on allocation
}

// NewRawBuffer reserves storage for capacity elements without placing
// any live element in it. Capacity 0 succeeds and owns no storage. The
// byte size is checked before allocating: a capacity whose byte size
// does not fit in int fails with ErrCapacityOverflow instead of
// corrupting the request.
func NewRawBuffer[T any](capacity int) (RawBuffer[T], error) {
	if capacity < 0 {
		return RawBuffer[T]{}, fmt.Errorf("%w: %d", ErrNegativeCount, capacity)
	}
	if capacity == 0 {
		return RawBuffer[T]{}, nil
	}
	if size := elemSize[T](); size > 0 && capacity > math.MaxInt/size {
		return RawBuffer[T]{}, fmt.Errorf("%w: %d elements of %d bytes", ErrCapacityOverflow, capacity, size)
	}
	return RawBuffer[T]{slots: make([]T, capacity)}, nil
}

// Cap returns the number of element slots the buffer owns.
func (b *RawBuffer[T]) Cap() int {
	return len(b.slots)
}

// Slot returns the address of slot k, either to read a live element or
// as the target of an in-place construction. k must be in [0, Cap());
// violating that panics.
func (b *RawBuffer[T]) Slot(k int) *T {
	return &b.slots[k]
}

// Swap exchanges storage and capacity with other in O(1).
func (b *RawBuffer[T]) Swap(other *RawBuffer[T]) {
	b.slots, other.slots = other.slots, b.slots
}

// Release drops the storage, leaving the buffer with capacity 0. The
// caller must have destroyed any live elements it placed in the buffer.
// Never fails.
func (b *RawBuffer[T]) Release() {
	b.slots = nil
}

// elemSize returns the size of one T in bytes.
func elemSize[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}
