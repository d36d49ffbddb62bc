package vec

// Cloner is implemented by element types whose deep copy can fail.
// Vector consults the capability once per operation, not per element: a
// type that implements Cloner is duplicated through Clone wherever the
// container needs a copy (Clone, Assign, PushBack, copy relocation), and
// a failed Clone surfaces as the error of the operation that needed it.
// Types that do not implement Cloner are duplicated and relocated by
// plain assignment, which cannot fail.
//
// Implement Cloner with a value receiver; the capability is detected on
// T itself, not on *T.
type Cloner[T any] interface {
	Clone() (T, error)
}

// cloneFn returns the deep-copy function for T, or nil when plain
// assignment is the correct (and infallible) copy. The result is decided
// once per relocation batch, never per element.
func cloneFn[T any]() func(T) (T, error) {
	var zero T
	if _, ok := any(zero).(Cloner[T]); ok {
		return func(v T) (T, error) { return any(v).(Cloner[T]).Clone() }
	}
	return nil
}

// copyValue duplicates a single value according to T's capability.
func copyValue[T any](v T) (T, error) {
	if clone := cloneFn[T](); clone != nil {
		return clone(v)
	}
	return v, nil
}

// cloneRange copies src into dst element by element through clone. On
// failure it destroys the elements it already placed in dst and returns
// the error; src is never modified.
func cloneRange[T any](dst, src []T, clone func(T) (T, error)) error {
	for i, v := range src {
		c, err := clone(v)
		if err != nil {
			clear(dst[:i])
			return err
		}
		dst[i] = c
	}
	return nil
}

// relocate fills dst from src according to T's capability: one plain
// copy when T is not a Cloner (relocation by move, cannot fail), Clone
// per element otherwise so src stays intact if a copy fails partway.
func relocate[T any](dst, src []T, clone func(T) (T, error)) error {
	if clone == nil {
		copy(dst, src)
		return nil
	}
	return cloneRange(dst, src, clone)
}
