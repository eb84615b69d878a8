// Package vec implements a growable contiguous sequence container that
// manages its own raw storage and controls element lifetime explicitly.
//
// # Overview
//
// A Vector owns a single untyped memory block sized for its capacity.
// Elements are constructed in place when they enter the sequence and
// destroyed individually when they leave it; slots beyond the live range
// are raw storage that no operation ever exposes. This makes the container
// useful when element types own resources and need deterministic cleanup,
// and when mutation failures must not corrupt or leak the sequence:
//
//   - Growth never leaves a torn state: a failed reallocation discards the
//     new block and keeps the old one fully intact.
//   - Element constructors, copies, and moves may fail; each operation
//     documents whether it offers the strong guarantee (state exactly as
//     before the call) or the basic guarantee (valid, leak-free, but
//     possibly changed).
//   - Migration during growth moves elements only when the move is
//     declared non-failing or the type cannot be copied; otherwise it
//     copies, so the old elements survive any mid-migration failure.
//
// # Basic Usage
//
//	v := vec.New[int]()
//	defer v.Release()
//
//	for i := 0; i < 4; i++ {
//		if err := v.PushBack(i * 10); err != nil {
//			return err
//		}
//	}
//	v.Insert(1, 99)  // [0 99 10 20 30]
//	v.Erase(0)       // [99 10 20 30]
//	first := *v.At(0)
//
// Element types that own resources describe their lifetime with a Type
// descriptor:
//
//	typ := vec.Type[*os.File]{
//		Destroy: func(f **os.File) {
//			if *f != nil {
//				(*f).Close()
//			}
//		},
//	}
//	files := vec.NewTyped(typ)
//	defer files.Release()
//
// # Guarantee Contract
//
// Strong guarantee (failure leaves the vector exactly as before the call):
// Reserve, Resize, Clone, PushBack, EmplaceBack, Emplace and Insert at the
// end or when growth is required, and Assign when it rebuilds via a
// temporary.
//
// Basic guarantee (failure leaves the vector valid and leak-free, but
// possibly changed): Erase, in-place middle Insert/Emplace, and in-place
// Assign. These shift or overwrite live elements with move- or
// copy-assignment and assume the element's move cannot fail. That
// assumption is a caller-facing requirement, not something the container
// checks: declare NoFailMove (or leave Move nil) for types used with
// mid-sequence insertion and erasure.
//
// Precondition violations, such as indexing at or past Len, popping an
// empty vector, or an out-of-range insert position, are programmer errors
// and panic rather than returning an error.
//
// # Ownership and Safety
//
// A Vector has a single logical owner. No operation synchronizes;
// concurrent mutation, or reading during mutation, is undefined. MoveFrom
// and Swap transfer block ownership wholesale and never fail, and there is
// never a moment where two vectors own the same block.
//
// # Important Notes
//
//   - Pointers obtained from At or All are invalidated by any operation
//     that reallocates, inserts, or erases.
//   - Elements live in a raw block the garbage collector does not scan.
//     Values stored in a vector must not be the sole reference keeping
//     other Go-managed memory alive.
//   - Element destructors only run through Vector operations: call Clear
//     or Release when discarding a vector whose descriptor has a Destroy
//     hook. For plain-data types the collector reclaims the block and no
//     explicit call is needed.
//   - Insertion growth doubles capacity (1, 2, 4, ...); Resize allocates
//     the exact requested capacity.
package vec
