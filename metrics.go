package vec

// Stats is a snapshot of a vector's storage accounting.
type Stats struct {
	Len         int     // live elements
	Cap         int     // owned slots
	ElemSize    int     // size of one element in bytes
	BytesLive   int     // bytes occupied by live elements
	BytesCap    int     // bytes owned by the storage block
	Utilization float64 // ratio of live to owned slots (0.0-1.0)
	Grows       int     // reallocations performed so far
}

// Stats returns a snapshot of the vector's storage accounting.
func (v *Vector[T]) Stats() Stats {
	size := elemSize[T]()
	s := Stats{
		Len:       v.n,
		Cap:       v.Cap(),
		ElemSize:  size,
		BytesLive: v.n * size,
		BytesCap:  v.Cap() * size,
		Grows:     v.grows,
	}
	if s.Cap > 0 {
		s.Utilization = float64(s.Len) / float64(s.Cap)
	}
	return s
}
