// Package vec implements a growable contiguous container generic over an
// element type, split into two layers: a raw storage block (RawBuffer)
// and a logical array on top of it (Vector) that tracks how many of the
// owned slots hold live elements.
//
// # Overview
//
// The split separates "reserve room for n elements" from "make an
// element live in a slot", which the built-in append/slice machinery
// does not expose. This is useful for:
//
//   - Containers that must control exactly when storage reallocates
//   - Deep-copy value semantics over element types that own resources
//   - Bounding the damage of a failed element copy mid-operation
//   - Predictable doubling growth with exact Reserve control
//
// # Basic Usage
//
//	var v vec.Vector[int]    // the zero value is an empty vector
//	v.PushBack(1)
//	v.PushBack(2)
//	p, _ := v.PushBack(3)    // p points at the stored element
//	fmt.Println(v.Len(), *p) // 3 3
//
//	dup, err := v.Clone()    // independent deep copy
//	other := v.Move()        // O(1) transfer, v left empty
//
// # Element Lifecycle
//
// Slots [0, Len()) hold live elements; slots [Len(), Cap()) are spare
// and hold the zero value of T. Destroying an element writes the zero
// value back into its slot so the garbage collector can reclaim anything
// the element referenced.
//
// Element types whose deep copy can fail implement Cloner. The container
// checks the capability once per operation and picks the relocation
// strategy for the whole batch: plain assignment (never fails) when the
// type is not a Cloner, per-element Clone with error propagation when it
// is.
//
// # Failure Guarantees
//
// Failures come from two sources: the byte-size overflow check on
// allocation, and element Clone calls. Each mutating operation documents
// the guarantee it upholds on failure. Most reallocating paths leave the
// vector exactly as it was (strong guarantee); the storage-reuse path of
// Assign and the in-place path of Insert promise only a valid state.
// Index-contract violations panic; they are bugs in the caller, not
// runtime conditions.
//
// # Thread Safety
//
// Neither type performs internal synchronization. Concurrent access to
// the same vector must be serialized by the caller.
//
// # Storage Accounting
//
// Stats returns a snapshot of the vector's storage accounting:
//
//	s := v.Stats()
//	fmt.Printf("Utilization: %.2f%%\n", s.Utilization*100)
//	fmt.Printf("Bytes owned: %d\n", s.BytesCap)
//	fmt.Printf("Reallocations: %d\n", s.Grows)
package vec
