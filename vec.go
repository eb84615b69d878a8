package vec

import (
	"fmt"
	"iter"
)

// Vector is a growable sequence of T stored contiguously in a single owned
// block. The live elements occupy positions [0, Len()); positions up to
// Cap() are raw storage. Not goroutine-safe: a Vector has a single logical
// owner and concurrent mutation is undefined.
//
// The zero value is not ready for use; construct with New, NewTyped,
// NewLen, or NewLenTyped.
type Vector[T any] struct {
	typ  Type[T]
	data rawBuffer[T]
	size int
}

// New creates an empty vector of a plain-data element type (zero-value
// construction, bitwise copy and move, no destructor).
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewTyped creates an empty vector whose elements follow the given
// lifetime descriptor.
func NewTyped[T any](typ Type[T]) *Vector[T] {
	return &Vector[T]{typ: typ}
}

// NewLen creates a vector of n default-constructed plain-data elements.
func NewLen[T any](n int) (*Vector[T], error) {
	return NewLenTyped(n, Type[T]{})
}

// NewLenTyped creates a vector of n default-constructed elements under the
// given descriptor. If construction fails partway, the elements built so
// far are destroyed and the block is released before the error returns.
func NewLenTyped[T any](n int, typ Type[T]) (*Vector[T], error) {
	v := NewTyped(typ)
	if err := v.Resize(n); err != nil {
		return nil, err
	}
	return v, nil
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of elements the current block can hold.
func (v *Vector[T]) Cap() int {
	return v.data.cap
}

// At returns a pointer to the element at index i. The pointer is
// invalidated by any operation that reallocates, inserts, or erases.
// Panics if i is outside [0, Len()).
func (v *Vector[T]) At(i int) *T {
	if i < 0 || i >= v.size {
		panic("vec: index out of range")
	}
	return v.data.at(i)
}

// PushBack appends val, growing the block by the doubling rule when full.
// The argument's ownership passes to the vector. Strong guarantee: on
// error the vector is unchanged.
func (v *Vector[T]) PushBack(val T) error {
	_, err := v.EmplaceBack(func() (T, error) { return val, nil })
	return err
}

// Insert places val at index i, shifting elements [i, Len()) right by one.
// i may equal Len(), which appends. Panics if i is outside [0, Len()].
// Guarantee tiers are those of Emplace.
func (v *Vector[T]) Insert(i int, val T) error {
	_, err := v.Emplace(i, func() (T, error) { return val, nil })
	return err
}

// EmplaceBack constructs a new trailing element with ctor and returns its
// address. Strong guarantee.
func (v *Vector[T]) EmplaceBack(ctor func() (T, error)) (*T, error) {
	return v.Emplace(v.size, ctor)
}

// Emplace constructs a new element at index i with ctor, shifting any
// elements at [i, Len()) right by one. It returns the new element's
// address. Panics if i is outside [0, Len()].
//
// Guarantees: strong when appending or when growth is required (the old
// block is never modified before the new one is fully built, provided the
// migration policy copies or the declared move cannot fail). The in-place
// middle insertion shifts live elements with move-assignment and assumes
// that move cannot fail; a fallible move downgrades that path to the basic
// guarantee, leaving a valid but partially shifted sequence.
func (v *Vector[T]) Emplace(i int, ctor func() (T, error)) (*T, error) {
	if i < 0 || i > v.size {
		panic("vec: insert position out of range")
	}
	var err error
	if v.size == v.data.cap {
		err = v.reallocEmplace(i, ctor)
	} else {
		err = v.embed(i, ctor)
	}
	if err != nil {
		return nil, err
	}
	v.size++
	return v.data.at(i), nil
}

// PopBack destroys the last element. Panics on an empty vector.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		panic("vec: pop from empty vector")
	}
	v.size--
	v.typ.destroy(v.data.at(v.size))
}

// Erase removes the element at index i by move-assigning each element
// after it one slot left, then destroying the trailing duplicate. Does not
// reallocate. Panics if i is outside [0, Len()).
//
// Basic guarantee only: Erase assumes move-assignment cannot fail. If a
// declared fallible move errors mid-shift, the vector stays valid but
// partially shifted and the error is returned.
func (v *Vector[T]) Erase(i int) error {
	if i < 0 || i >= v.size {
		panic("vec: erase index out of range")
	}
	for j := i; j < v.size-1; j++ {
		if err := v.typ.moveAssign(v.data.at(j), v.data.at(j+1)); err != nil {
			return fmt.Errorf("vec: erase shift at %d: %w", j, err)
		}
	}
	v.size--
	v.typ.destroy(v.data.at(v.size))
	return nil
}

// Clear destroys all live elements but keeps the block for reuse.
func (v *Vector[T]) Clear() {
	destroyRange(&v.typ, &v.data, 0, v.size)
	v.size = 0
}

// Release destroys all live elements and frees the block. The vector
// returns to the empty state and remains usable. Element types with a
// Destroy hook rely on an explicit Clear or Release call; the garbage
// collector reclaims the block itself but never runs element destructors.
func (v *Vector[T]) Release() {
	v.Clear()
	v.data.release()
}

// Swap exchanges the two vectors' blocks, sizes, and descriptors. Never
// fails and never touches element lifetimes.
func (v *Vector[T]) Swap(other *Vector[T]) {
	if v == other {
		return
	}
	v.data.swap(&other.data)
	v.size, other.size = other.size, v.size
	v.typ, other.typ = other.typ, v.typ
}

// MoveFrom destroys the receiver's contents and adopts other's block,
// size, and descriptor; other becomes empty. No element is constructed or
// destroyed in the transferred block, so MoveFrom cannot fail. Self-move
// is a no-op.
func (v *Vector[T]) MoveFrom(other *Vector[T]) {
	if v == other {
		return
	}
	destroyRange(&v.typ, &v.data, 0, v.size)
	v.data.release()
	v.typ = other.typ
	v.size = other.size
	other.size = 0
	v.data.moveFrom(&other.data)
}

// Clone returns an independent copy with capacity equal to Len(). If
// copying an element fails partway, the elements duplicated so far are
// destroyed and the new block is released; the source is untouched.
// Panics for move-only element types.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	out := NewTyped(v.typ)
	if v.size == 0 {
		return out, nil
	}
	nb, err := newRawBuffer[T](v.size)
	if err != nil {
		return nil, err
	}
	for i := 0; i < v.size; i++ {
		val, err := v.typ.copyValue(v.data.at(i))
		if err != nil {
			destroyRange(&v.typ, &nb, 0, i)
			nb.release()
			return nil, fmt.Errorf("vec: clone element %d: %w", i, err)
		}
		*nb.at(i) = val
	}
	out.data = nb
	out.size = v.size
	return out, nil
}

// Assign replaces the receiver's contents with a copy of other's. Both
// vectors must use the same lifetime descriptor. When the receiver's
// capacity cannot hold other's elements the copy is built whole and
// swapped in (strong guarantee); otherwise elements are copy-assigned in
// place, surplus trailing elements destroyed or missing ones
// copy-constructed (basic guarantee on element failure). Self-assignment
// is a no-op.
func (v *Vector[T]) Assign(other *Vector[T]) error {
	if v == other {
		return nil
	}
	if v.data.cap < other.size {
		tmp, err := other.Clone()
		if err != nil {
			return err
		}
		v.Swap(tmp)
		tmp.Release()
		return nil
	}
	n := min(v.size, other.size)
	for i := 0; i < n; i++ {
		if err := v.typ.copyAssign(v.data.at(i), other.data.at(i)); err != nil {
			return fmt.Errorf("vec: assign element %d: %w", i, err)
		}
	}
	if v.size > other.size {
		destroyRange(&v.typ, &v.data, other.size, v.size)
	} else {
		for i := v.size; i < other.size; i++ {
			val, err := v.typ.copyValue(other.data.at(i))
			if err != nil {
				destroyRange(&v.typ, &v.data, v.size, i)
				return fmt.Errorf("vec: assign element %d: %w", i, err)
			}
			*v.data.at(i) = val
		}
	}
	v.size = other.size
	return nil
}

// All iterates index/address pairs over the live range. Addresses allow
// in-place mutation. The iteration is invalidated by any reallocating,
// inserting, or erasing operation.
func (v *Vector[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.data.at(i)) {
				return
			}
		}
	}
}

// Values iterates copies of the live elements in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(*v.data.at(i)) {
				return
			}
		}
	}
}

// destroyRange ends the lifetime of elements [from, to) in b.
func destroyRange[T any](t *Type[T], b *rawBuffer[T], from, to int) {
	for i := from; i < to; i++ {
		t.destroy(b.at(i))
	}
}
