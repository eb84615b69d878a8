package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collect drains the read-only iterator into a slice.
func collect[T any](v *Vector[T]) []T {
	out := make([]T, 0, v.Len())
	for val := range v.Values() {
		out = append(out, val)
	}
	return out
}

func TestPushBackAndIndex(t *testing.T) {
	v := New[int]()
	const n = 100
	for i := 0; i < n; i++ {
		require.NoError(t, v.PushBack(i*3))
	}
	require.Equal(t, n, v.Len())
	require.GreaterOrEqual(t, v.Cap(), v.Len())
	for i := 0; i < n; i++ {
		assert.Equal(t, i*3, *v.At(i), "element %d", i)
	}
}

func TestDoublingGrowth(t *testing.T) {
	v := New[int]()
	wantCaps := []int{1, 2, 4, 4, 8, 8, 8, 8, 16}
	for i, want := range wantCaps {
		require.NoError(t, v.PushBack(i))
		require.Equal(t, want, v.Cap(), "capacity after push %d", i+1)
	}
}

func TestInsertEraseScenario(t *testing.T) {
	// Push 1,2,3 (capacity 1,2,4), insert 99 at index 1, erase index 0.
	v := New[int]()
	for i, val := range []int{1, 2, 3} {
		require.NoError(t, v.PushBack(val))
		require.Equal(t, []int{1, 2, 4}[i], v.Cap())
	}
	require.NoError(t, v.Insert(1, 99))
	require.Equal(t, []int{1, 99, 2, 3}, collect(v))
	require.Equal(t, 4, v.Len())

	require.NoError(t, v.Erase(0))
	require.Equal(t, []int{99, 2, 3}, collect(v))
	require.Equal(t, 3, v.Len())
}

func TestInsertEraseRoundTrip(t *testing.T) {
	base := []int{10, 20, 30, 40, 50}
	for k := 0; k <= len(base); k++ {
		v := New[int]()
		for _, val := range base {
			require.NoError(t, v.PushBack(val))
		}
		require.NoError(t, v.Insert(k, 999))
		require.Equal(t, 999, *v.At(k))
		require.NoError(t, v.Erase(k))
		require.Equal(t, base, collect(v), "round trip at position %d", k)
	}
}

func TestInsertAtEveryPosition(t *testing.T) {
	for k := 0; k <= 3; k++ {
		v := New[int]()
		for _, val := range []int{0, 1, 2} {
			require.NoError(t, v.PushBack(val))
		}
		require.NoError(t, v.Insert(k, 42))
		require.Equal(t, 4, v.Len())
		want := append(append(append([]int{}, []int{0, 1, 2}[:k]...), 42), []int{0, 1, 2}[k:]...)
		require.Equal(t, want, collect(v), "insert at %d", k)
	}
}

func TestNewLen(t *testing.T) {
	v, err := NewLen[int](3)
	require.NoError(t, err)
	require.Equal(t, 3, v.Len())
	require.GreaterOrEqual(t, v.Cap(), 3)
	for i := 0; i < 3; i++ {
		assert.Equal(t, 0, *v.At(i))
	}
}

func TestPopBack(t *testing.T) {
	v := New[int]()
	require.NoError(t, v.PushBack(1))
	require.NoError(t, v.PushBack(2))
	v.PopBack()
	require.Equal(t, []int{1}, collect(v))
	v.PopBack()
	require.Equal(t, 0, v.Len())
	require.Panics(t, func() { v.PopBack() })
}

func TestPreconditionPanics(t *testing.T) {
	v := New[int]()
	require.NoError(t, v.PushBack(1))

	require.Panics(t, func() { v.At(1) }, "At past the live range")
	require.Panics(t, func() { v.At(-1) }, "At negative")
	require.Panics(t, func() { v.Erase(1) }, "Erase past the live range")
	require.Panics(t, func() { v.Insert(2, 0) }, "Insert past end+1")
	require.Panics(t, func() { v.Resize(-1) }, "negative Resize")
}

func TestCloneIndependence(t *testing.T) {
	src := New[int]()
	for i := 0; i < 10; i++ {
		require.NoError(t, src.PushBack(i))
	}
	dup, err := src.Clone()
	require.NoError(t, err)
	require.Equal(t, collect(src), collect(dup))
	require.Equal(t, src.Len(), dup.Cap(), "clone capacity is exactly the source size")

	*dup.At(0) = -1
	require.NoError(t, dup.PushBack(10))
	assert.Equal(t, 0, *src.At(0), "mutating the clone must not touch the source")
	assert.Equal(t, 10, src.Len())

	*src.At(1) = -2
	assert.Equal(t, 1, *dup.At(1), "mutating the source must not touch the clone")
}

func TestMoveFrom(t *testing.T) {
	src := New[int]()
	for i := 0; i < 5; i++ {
		require.NoError(t, src.PushBack(i))
	}
	dst := New[int]()
	require.NoError(t, dst.PushBack(99))

	dst.MoveFrom(src)
	require.Equal(t, []int{0, 1, 2, 3, 4}, collect(dst))
	require.Equal(t, 0, src.Len())
	require.Equal(t, 0, src.Cap())

	// Self-move is a safe no-op.
	dst.MoveFrom(dst)
	require.Equal(t, []int{0, 1, 2, 3, 4}, collect(dst))
}

func TestSwap(t *testing.T) {
	a := New[int]()
	b := New[int]()
	require.NoError(t, a.PushBack(1))
	require.NoError(t, b.PushBack(2))
	require.NoError(t, b.PushBack(3))

	a.Swap(b)
	require.Equal(t, []int{2, 3}, collect(a))
	require.Equal(t, []int{1}, collect(b))

	a.Swap(a)
	require.Equal(t, []int{2, 3}, collect(a))
}

func TestAssignRebuildsWhenCapacityInsufficient(t *testing.T) {
	src := New[int]()
	for i := 0; i < 8; i++ {
		require.NoError(t, src.PushBack(i))
	}
	dst := New[int]()
	require.NoError(t, dst.PushBack(-1))

	require.NoError(t, dst.Assign(src))
	require.Equal(t, collect(src), collect(dst))

	*dst.At(0) = 100
	assert.Equal(t, 0, *src.At(0))
}

func TestAssignInPlaceShrink(t *testing.T) {
	src := New[int]()
	require.NoError(t, src.PushBack(7))
	dst := New[int]()
	for i := 0; i < 6; i++ {
		require.NoError(t, dst.PushBack(i))
	}
	capBefore := dst.Cap()

	require.NoError(t, dst.Assign(src))
	require.Equal(t, []int{7}, collect(dst))
	require.Equal(t, capBefore, dst.Cap(), "in-place assignment keeps the block")
}

func TestAssignInPlaceGrow(t *testing.T) {
	src := New[int]()
	for i := 0; i < 4; i++ {
		require.NoError(t, src.PushBack(i))
	}
	dst := New[int]()
	require.NoError(t, dst.Reserve(16))
	require.NoError(t, dst.PushBack(-1))

	require.NoError(t, dst.Assign(src))
	require.Equal(t, []int{0, 1, 2, 3}, collect(dst))
	require.Equal(t, 16, dst.Cap())
}

func TestAssignSelf(t *testing.T) {
	v := New[int]()
	require.NoError(t, v.PushBack(5))
	require.NoError(t, v.Assign(v))
	require.Equal(t, []int{5}, collect(v))
}

func TestClearKeepsCapacity(t *testing.T) {
	v := New[int]()
	for i := 0; i < 10; i++ {
		require.NoError(t, v.PushBack(i))
	}
	capBefore := v.Cap()
	v.Clear()
	require.Equal(t, 0, v.Len())
	require.Equal(t, capBefore, v.Cap())

	require.NoError(t, v.PushBack(1))
	require.Equal(t, capBefore, v.Cap(), "cleared block is reused")
}

func TestIterators(t *testing.T) {
	v := New[int]()
	for i := 0; i < 5; i++ {
		require.NoError(t, v.PushBack(i))
	}

	// Mutable traversal.
	for i, p := range v.All() {
		*p = i * 2
	}
	require.Equal(t, []int{0, 2, 4, 6, 8}, collect(v))

	// Early break.
	seen := 0
	for range v.Values() {
		seen++
		if seen == 2 {
			break
		}
	}
	require.Equal(t, 2, seen)
}

func TestEmplace(t *testing.T) {
	v := New[string]()
	p, err := v.EmplaceBack(func() (string, error) { return "a", nil })
	require.NoError(t, err)
	require.Equal(t, "a", *p)

	p, err = v.Emplace(0, func() (string, error) { return "b", nil })
	require.NoError(t, err)
	require.Equal(t, "b", *p)
	require.Equal(t, []string{"b", "a"}, collect(v))
}

func TestStats(t *testing.T) {
	v := New[int64]()
	for i := 0; i < 3; i++ {
		require.NoError(t, v.PushBack(int64(i)))
	}
	s := v.Stats()
	require.Equal(t, 3, s.Len)
	require.Equal(t, 4, s.Cap)
	require.Equal(t, 24, s.BytesInUse)
	require.Equal(t, 32, s.BytesCap)
	require.InDelta(t, 0.75, s.Utilization, 1e-9)

	empty := New[int64]()
	require.Zero(t, empty.Stats().Utilization)
}

func TestStructElements(t *testing.T) {
	type point struct {
		X, Y float64
		Tag  [3]byte
	}
	v := New[point]()
	for i := 0; i < 20; i++ {
		require.NoError(t, v.PushBack(point{X: float64(i), Y: float64(-i), Tag: [3]byte{byte(i)}}))
	}
	for i := 0; i < 20; i++ {
		got := *v.At(i)
		require.Equal(t, float64(i), got.X)
		require.Equal(t, float64(-i), got.Y)
		require.Equal(t, byte(i), got.Tag[0])
	}
}

func TestZeroSizeElements(t *testing.T) {
	v := New[struct{}]()
	for i := 0; i < 10; i++ {
		require.NoError(t, v.PushBack(struct{}{}))
	}
	require.Equal(t, 10, v.Len())
	v.PopBack()
	require.Equal(t, 9, v.Len())
}
