package vec

import "unsafe"

// rawBuffer owns a single untyped block sized for exactly cap elements of T.
// It never constructs or destroys elements; positions are raw storage and
// element lifetime is entirely the owner's responsibility. Exactly one
// Vector owns a rawBuffer at a time; ownership transfers via moveFrom or
// swap and is never duplicated (the type is never copied across owners).
type rawBuffer[T any] struct {
	mem []byte // backing block, aligned for T; nil when cap == 0
	cap int    // capacity in elements
}

// newRawBuffer reserves storage for capacity elements. Capacity 0 performs
// no allocation. On failure no partial state is retained.
func newRawBuffer[T any](capacity int) (rawBuffer[T], error) {
	if capacity < 0 {
		panic("vec: negative capacity")
	}
	if capacity == 0 {
		return rawBuffer[T]{}, nil
	}
	n, err := blockBytes[T](capacity)
	if err != nil {
		return rawBuffer[T]{}, err
	}
	return rawBuffer[T]{mem: allocBlock[T](n), cap: capacity}, nil
}

// at returns the raw storage address of element i. The index is checked
// against capacity only; whether the slot holds a live element is the
// caller's concern.
func (b *rawBuffer[T]) at(i int) *T {
	if i < 0 || i >= b.cap {
		panic("vec: raw index out of capacity range")
	}
	return (*T)(unsafe.Pointer(&b.mem[i*sizeOf[T]()]))
}

// release drops the block unconditionally. Safe on an empty buffer. Any
// live elements inside must have been destroyed by the owner first.
func (b *rawBuffer[T]) release() {
	b.mem = nil
	b.cap = 0
}

// moveFrom takes ownership of other's block, leaving other empty. The
// receiver's previous block is dropped without touching element lifetimes.
func (b *rawBuffer[T]) moveFrom(other *rawBuffer[T]) {
	if b == other {
		return
	}
	b.mem, b.cap = other.mem, other.cap
	other.mem, other.cap = nil, 0
}

// swap exchanges ownership of the two blocks. Never fails.
func (b *rawBuffer[T]) swap(other *rawBuffer[T]) {
	b.mem, other.mem = other.mem, b.mem
	b.cap, other.cap = other.cap, b.cap
}
