package vec

// PushBack appends a copy of val and returns the address of the stored
// element. Element types implementing Cloner are stored as a deep copy.
// Amortized O(1); if growth or the element copy fails, the vector is
// unchanged.
func (v *Vector[T]) PushBack(val T) (*T, error) {
	return v.EmplaceBack(func() (T, error) { return copyValue(val) })
}

// EmplaceBack constructs a new element in place at the end and returns
// its address.
//
// On growth the new element is built at its final slot in the new
// storage before any existing element is relocated, so a failure at any
// point — construction or relocation — leaves the vector exactly as it
// was. Without growth, a failed construction changes nothing.
func (v *Vector[T]) EmplaceBack(construct func() (T, error)) (*T, error) {
	if v.n == v.Cap() {
		buf, err := NewRawBuffer[T](growCapacity(v.Cap()))
		if err != nil {
			return nil, err
		}
		elem, err := construct()
		if err != nil {
			buf.Release()
			return nil, err
		}
		buf.slots[v.n] = elem
		if err := relocate(buf.slots[:v.n], v.live(), cloneFn[T]()); err != nil {
			buf.Release()
			return nil, err
		}
		v.replaceBuffer(&buf)
	} else {
		elem, err := construct()
		if err != nil {
			return nil, err
		}
		*v.buf.Slot(v.n) = elem
	}
	v.n++
	return v.buf.Slot(v.n - 1), nil
}

// PopBack destroys the last element. Popping an empty vector is a
// no-op, not an error. Never fails.
func (v *Vector[T]) PopBack() {
	if v.n == 0 {
		return
	}
	v.n--
	var zero T
	*v.buf.Slot(v.n) = zero
}

// Insert inserts a copy of val before position pos and returns the
// index of the inserted element. See Emplace for the position contract
// and guarantees.
func (v *Vector[T]) Insert(pos int, val T) (int, error) {
	return v.Emplace(pos, func() (T, error) { return copyValue(val) })
}

// Emplace constructs a new element before position pos and returns its
// index.
//
// pos outside [0, Len()] is deliberately a silent no-op that returns the
// end index Len(), kept for compatibility with the container this one
// replaces rather than reported as an error.
//
// On growth the new element is built at its final slot in the new
// storage before anything is relocated, and any failure leaves the
// original contents untouched. Without growth, the trailing elements
// shift one slot toward the end and the contract promises only a valid
// (not necessarily prior) state on failure.
func (v *Vector[T]) Emplace(pos int, construct func() (T, error)) (int, error) {
	if pos < 0 || pos > v.n {
		return v.n, nil
	}
	if v.n == v.Cap() {
		buf, err := NewRawBuffer[T](growCapacity(v.Cap()))
		if err != nil {
			return v.n, err
		}
		elem, err := construct()
		if err != nil {
			buf.Release()
			return v.n, err
		}
		buf.slots[pos] = elem
		clone := cloneFn[T]()
		if err := relocate(buf.slots[:pos], v.live()[:pos], clone); err != nil {
			buf.Release()
			return v.n, err
		}
		if err := relocate(buf.slots[pos+1:v.n+1], v.live()[pos:], clone); err != nil {
			buf.Release()
			return v.n, err
		}
		v.replaceBuffer(&buf)
	} else {
		elem, err := construct()
		if err != nil {
			return v.n, err
		}
		copy(v.buf.slots[pos+1:v.n+1], v.buf.slots[pos:v.n])
		*v.buf.Slot(pos) = elem
	}
	v.n++
	return pos, nil
}

// Erase destroys the element at pos, shifts the trailing elements one
// slot toward the front and returns pos, now the index of the element
// that followed the erased one. pos outside [0, Len()) is a silent
// no-op returning Len(), matching Insert. Never fails.
func (v *Vector[T]) Erase(pos int) int {
	if pos < 0 || pos >= v.n {
		return v.n
	}
	copy(v.buf.slots[pos:v.n-1], v.buf.slots[pos+1:v.n])
	v.n--
	var zero T
	*v.buf.Slot(v.n) = zero
	return pos
}
