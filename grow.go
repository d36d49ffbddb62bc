package vec

import "fmt"

// growCapacity doubles the capacity with a floor of one slot, so
// repeated appends from empty follow 0, 1, 2, 4, 8, 16, ...
func growCapacity(oldCap int) int {
	if oldCap == 0 {
		return 1
	}
	return oldCap * 2
}

// Reserve grows the capacity to exactly newCap, relocating the live
// elements into the new storage. A no-op when newCap <= Cap(). If
// allocation or relocation fails, the vector is left exactly as it was.
func (v *Vector[T]) Reserve(newCap int) error {
	if newCap <= v.Cap() {
		return nil
	}
	buf, err := NewRawBuffer[T](newCap)
	if err != nil {
		return err
	}
	return v.adopt(&buf)
}

// Resize changes the number of live elements to n. Shrinking destroys
// the trailing elements and keeps the capacity. Growing reserves storage
// first and only then makes the zero-valued tail live, so a failed
// reservation changes nothing.
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}
	if n < v.n {
		clear(v.buf.slots[n:v.n])
		v.n = n
		return nil
	}
	if err := v.Reserve(n); err != nil {
		return err
	}
	// Spare slots already hold the zero value; the new tail elements
	// become live by extending the count.
	v.n = n
	return nil
}

// adopt relocates the live elements into buf, destroys the originals
// and takes ownership of buf. On failure buf is released and the
// vector is untouched.
func (v *Vector[T]) adopt(buf *RawBuffer[T]) error {
	if err := relocate(buf.slots[:v.n], v.live(), cloneFn[T]()); err != nil {
		buf.Release()
		return err
	}
	v.replaceBuffer(buf)
	return nil
}

// replaceBuffer destroys the old live elements and swaps buf in; buf is
// left owning the old region and releases it.
func (v *Vector[T]) replaceBuffer(buf *RawBuffer[T]) {
	clear(v.live())
	v.buf.Swap(buf)
	buf.Release()
	v.grows++
}
