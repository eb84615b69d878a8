package vec

// Type describes the lifetime operations of an element type. The zero
// value declares a plain-data type: zero-value construction, bitwise copy
// and move, no destructor, and none of it can fail.
//
// A Vector inspects the descriptor once, at construction, to pick its
// migration strategy for growth (see Reserve). Hooks left nil get the
// bitwise behavior described per field.
type Type[T any] struct {
	// New default-constructs an element. Nil means the zero value of T,
	// which never fails.
	New func() (T, error)

	// Copy duplicates *src into a new element. Nil means the type is
	// bitwise-copyable when it holds no resources (Move and Destroy both
	// nil), and not copyable otherwise.
	Copy func(src *T) (T, error)

	// Move transfers *src into a new element, leaving *src in a valid,
	// destructible state. Nil means a bitwise transfer that zeroes the
	// source; a bitwise transfer never fails.
	Move func(src *T) (T, error)

	// NoFailMove declares that a non-nil Move never returns an error.
	// Growth then migrates by moving instead of copying.
	NoFailMove bool

	// Destroy releases resources held by the element. Nil means trivial.
	// Destroy must accept the zero value: sources of bitwise moves are
	// left zeroed before being destroyed.
	Destroy func(*T)
}

// copyable reports whether elements can be duplicated: either an explicit
// Copy hook, or a resource-free type where a bitwise copy is sound.
func (t *Type[T]) copyable() bool {
	return t.Copy != nil || (t.Move == nil && t.Destroy == nil)
}

// moveMigration reports whether growth migrates elements by moving.
// Moving is chosen when it cannot fail, or when copying is not available
// at all; otherwise copying preserves the old storage intact until every
// element has been duplicated (strong guarantee).
func (t *Type[T]) moveMigration() bool {
	return t.Move == nil || t.NoFailMove || !t.copyable()
}

// constructDefault default-constructs an element into raw storage.
func (t *Type[T]) constructDefault(dst *T) error {
	if t.New == nil {
		var zero T
		*dst = zero
		return nil
	}
	x, err := t.New()
	if err != nil {
		return err
	}
	*dst = x
	return nil
}

// copyValue duplicates *src. Panics for move-only types; callers gate on
// copyable first.
func (t *Type[T]) copyValue(src *T) (T, error) {
	if t.Copy != nil {
		return t.Copy(src)
	}
	if !t.copyable() {
		panic("vec: element type is not copyable")
	}
	return *src, nil
}

// moveValue transfers *src out, leaving it valid and destructible. The
// bitwise path zeroes the source so a later Destroy is a no-op on it.
func (t *Type[T]) moveValue(src *T) (T, error) {
	if t.Move != nil {
		return t.Move(src)
	}
	val := *src
	var zero T
	*src = zero
	return val, nil
}

// destroy ends the element's lifetime. The slot becomes raw storage again.
func (t *Type[T]) destroy(p *T) {
	if t.Destroy != nil {
		t.Destroy(p)
	}
}

// moveAssign replaces the live element at dst with the one moved out of
// src. The old dst element is destroyed only after the move succeeded, so
// a move failure leaves both elements alive.
func (t *Type[T]) moveAssign(dst, src *T) error {
	val, err := t.moveValue(src)
	if err != nil {
		return err
	}
	t.destroy(dst)
	*dst = val
	return nil
}

// copyAssign replaces the live element at dst with a duplicate of src.
func (t *Type[T]) copyAssign(dst, src *T) error {
	val, err := t.copyValue(src)
	if err != nil {
		return err
	}
	t.destroy(dst)
	*dst = val
	return nil
}
