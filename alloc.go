package vec

import (
	"errors"
	"fmt"
	"math"
	"unsafe"
)

// ErrTooLarge is returned when a capacity request cannot be satisfied,
// either because the byte size overflows or exceeds maxBlockBytes.
var ErrTooLarge = errors.New("vec: allocation too large")

// maxBlockBytes caps a single backing block. Half the address space keeps
// all offset arithmetic comfortably inside int.
const maxBlockBytes = math.MaxInt >> 1

func sizeOf[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

func alignOf[T any]() int {
	var zero T
	return int(unsafe.Alignof(zero))
}

// mulOverflowSafe multiplies a and b, returning ok = false when the result
// would overflow int. Operands are element counts or sizes, never negative.
func mulOverflowSafe(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// blockBytes computes the byte size of a block holding capacity elements
// of T. Zero-size element types still get one byte so every element has a
// valid address.
func blockBytes[T any](capacity int) (int, error) {
	total, ok := mulOverflowSafe(capacity, sizeOf[T]())
	if !ok || total > maxBlockBytes {
		return 0, fmt.Errorf("vec: %d elements of %d bytes: %w", capacity, sizeOf[T](), ErrTooLarge)
	}
	if total == 0 {
		total = 1
	}
	return total, nil
}

// allocBlock reserves a raw block of n bytes aligned for T. The block is
// over-allocated by the element alignment and shifted so the first element
// lands on an aligned boundary.
func allocBlock[T any](n int) []byte {
	align := alignOf[T]()
	if align <= 1 {
		return make([]byte, n)
	}
	buf := make([]byte, n+align)
	addr := int(uintptr(unsafe.Pointer(&buf[0])))
	shift := (align - addr%align) % align
	return buf[shift : n+shift : n+shift]
}
