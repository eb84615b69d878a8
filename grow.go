package vec

import "fmt"

// growCapacity is the doubling rule for insertion-driven growth.
func growCapacity(current int) int {
	if current == 0 {
		return 1
	}
	return current * 2
}

// Reserve grows the block to hold at least capacity elements, migrating
// live elements into the new storage. A request at or below the current
// capacity is a no-op.
//
// Strong guarantee: migration copies elements whenever the type is
// copyable and its move may fail, so a mid-migration failure leaves the
// old block and every live element untouched; the partially built new
// block is destroyed and released before the error returns.
func (v *Vector[T]) Reserve(capacity int) error {
	if capacity <= v.data.cap {
		return nil
	}
	nb, err := newRawBuffer[T](capacity)
	if err != nil {
		return err
	}
	if err := v.migrateRange(&nb, 0, 0, v.size); err != nil {
		nb.release()
		return err
	}
	v.replaceStorage(&nb)
	return nil
}

// Resize sets the element count to newSize. Shrinking destroys trailing
// elements in place. Growing within capacity default-constructs the new
// tail, rolling back the constructed subset on failure. Growing past
// capacity reallocates to exactly newSize (not the doubling rule),
// migrates the live elements, then default-constructs the tail in the new
// block; any failure discards the new block.
func (v *Vector[T]) Resize(newSize int) error {
	if newSize < 0 {
		panic("vec: negative size")
	}
	if newSize <= v.data.cap {
		if newSize < v.size {
			destroyRange(&v.typ, &v.data, newSize, v.size)
		} else if err := v.constructRange(&v.data, v.size, newSize); err != nil {
			return err
		}
		v.size = newSize
		return nil
	}
	nb, err := newRawBuffer[T](newSize)
	if err != nil {
		return err
	}
	if err := v.migrateRange(&nb, 0, 0, v.size); err != nil {
		nb.release()
		return err
	}
	if err := v.constructRange(&nb, v.size, newSize); err != nil {
		destroyRange(&v.typ, &nb, 0, v.size)
		nb.release()
		return err
	}
	v.replaceStorage(&nb)
	v.size = newSize
	return nil
}

// embed inserts in place when a free slot exists. Appending constructs
// directly into the first free slot, so a constructor failure changes
// nothing. A middle insertion builds the element off to the side first,
// extends the live range by moving the last element into the free slot,
// shifts [i, size-1) right with move-assignment, and finally move-assigns
// the temporary into position i.
func (v *Vector[T]) embed(i int, ctor func() (T, error)) error {
	if i == v.size {
		x, err := ctor()
		if err != nil {
			return fmt.Errorf("vec: construct element: %w", err)
		}
		*v.data.at(v.size) = x
		return nil
	}
	tmp, err := ctor()
	if err != nil {
		return fmt.Errorf("vec: construct element: %w", err)
	}
	last, err := v.typ.moveValue(v.data.at(v.size - 1))
	if err != nil {
		v.typ.destroy(&tmp)
		return fmt.Errorf("vec: insert shift: %w", err)
	}
	*v.data.at(v.size) = last
	for j := v.size - 1; j > i; j-- {
		if err := v.typ.moveAssign(v.data.at(j), v.data.at(j-1)); err != nil {
			// Partially shifted, but every slot in [0, size] stays live:
			// destroy the extended trailing element so nothing leaks.
			v.typ.destroy(v.data.at(v.size))
			v.typ.destroy(&tmp)
			return fmt.Errorf("vec: insert shift: %w", err)
		}
	}
	if err := v.typ.moveAssign(v.data.at(i), &tmp); err != nil {
		v.typ.destroy(v.data.at(v.size))
		v.typ.destroy(&tmp)
		return fmt.Errorf("vec: insert shift: %w", err)
	}
	v.typ.destroy(&tmp)
	return nil
}

// reallocEmplace inserts when the block is full. The new element is
// constructed directly at its target offset in the new block before any
// live element is touched, so a constructor failure discards only the new
// block. Existing elements then migrate around it per the Reserve policy.
func (v *Vector[T]) reallocEmplace(i int, ctor func() (T, error)) error {
	nb, err := newRawBuffer[T](growCapacity(v.data.cap))
	if err != nil {
		return err
	}
	x, err := ctor()
	if err != nil {
		nb.release()
		return fmt.Errorf("vec: construct element: %w", err)
	}
	*nb.at(i) = x
	if err := v.migrateRange(&nb, 0, 0, i); err != nil {
		v.typ.destroy(nb.at(i))
		nb.release()
		return err
	}
	if err := v.migrateRange(&nb, i+1, i, v.size-i); err != nil {
		destroyRange(&v.typ, &nb, 0, i+1)
		nb.release()
		return err
	}
	v.replaceStorage(&nb)
	return nil
}

// migrateRange places n live elements from old storage starting at srcOff
// into nb starting at dstOff, moving or copying per the descriptor's
// migration policy. On failure the elements already placed in nb are
// destroyed; with copy migration the sources are untouched. Plain-data
// types migrate with a single byte copy.
func (v *Vector[T]) migrateRange(nb *rawBuffer[T], dstOff, srcOff, n int) error {
	if n == 0 {
		return nil
	}
	if v.typ.Copy == nil && v.typ.Move == nil && v.typ.Destroy == nil {
		es := sizeOf[T]()
		copy(nb.mem[dstOff*es:(dstOff+n)*es], v.data.mem[srcOff*es:(srcOff+n)*es])
		return nil
	}
	byMove := v.typ.moveMigration()
	for k := 0; k < n; k++ {
		var val T
		var err error
		if byMove {
			val, err = v.typ.moveValue(v.data.at(srcOff + k))
		} else {
			val, err = v.typ.copyValue(v.data.at(srcOff + k))
		}
		if err != nil {
			destroyRange(&v.typ, nb, dstOff, dstOff+k)
			return fmt.Errorf("vec: migrate element %d: %w", srcOff+k, err)
		}
		*nb.at(dstOff + k) = val
	}
	return nil
}

// replaceStorage destroys the live elements left in the old block (for
// moved elements these are spent husks), releases it, and adopts nb.
// The adoption itself is a pointer swap and cannot fail.
func (v *Vector[T]) replaceStorage(nb *rawBuffer[T]) {
	destroyRange(&v.typ, &v.data, 0, v.size)
	v.data.release()
	v.data.moveFrom(nb)
}

// constructRange default-constructs elements [from, to) in b. On failure
// the subset constructed so far is destroyed before the error returns.
func (v *Vector[T]) constructRange(b *rawBuffer[T], from, to int) error {
	for i := from; i < to; i++ {
		if err := v.typ.constructDefault(b.at(i)); err != nil {
			destroyRange(&v.typ, b, from, i)
			return fmt.Errorf("vec: construct element %d: %w", i, err)
		}
	}
	return nil
}
