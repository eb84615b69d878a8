package vec

// Stats is a snapshot of a vector's storage accounting.
type Stats struct {
	Len         int     // Live elements
	Cap         int     // Elements the block can hold
	BytesInUse  int     // Bytes occupied by live elements
	BytesCap    int     // Bytes of the owned block
	Utilization float64 // Ratio of live elements to capacity (0.0-1.0)
}

// BytesInUse returns the number of bytes occupied by live elements.
func (v *Vector[T]) BytesInUse() int {
	return v.size * sizeOf[T]()
}

// BytesCap returns the byte size of the owned block.
func (v *Vector[T]) BytesCap() int {
	return v.data.cap * sizeOf[T]()
}

// Utilization returns the ratio of live elements to capacity (0.0 to 1.0).
// Returns 0.0 for a vector with no block.
func (v *Vector[T]) Utilization() float64 {
	if v.data.cap == 0 {
		return 0
	}
	return float64(v.size) / float64(v.data.cap)
}

// Stats returns a snapshot of the vector's storage accounting.
func (v *Vector[T]) Stats() Stats {
	return Stats{
		Len:         v.size,
		Cap:         v.data.cap,
		BytesInUse:  v.BytesInUse(),
		BytesCap:    v.BytesCap(),
		Utilization: v.Utilization(),
	}
}
