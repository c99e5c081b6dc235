package seq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevinxiao27/seqlist/seq"
)

func TestAListDefaultCapacity(t *testing.T) {
	l := seq.NewAList[int]()
	assert.Equal(t, 10, l.Capacity())
	assert.Equal(t, 0, l.Length())
}

func TestAListGrowsByDoubling(t *testing.T) {
	l := seq.NewAListCap[int](2)
	l.Append(1)
	l.Append(2)
	assert.Equal(t, 2, l.Capacity())

	l.Append(3)
	assert.Equal(t, 4, l.Capacity())

	l.Append(4)
	l.Append(5)
	assert.Equal(t, 8, l.Capacity())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, seq.ToSlice[int](l))
}

func TestAListZeroCapacityGrows(t *testing.T) {
	l := seq.NewAListCap[int](0)
	assert.Equal(t, 0, l.Capacity())
	l.Append(1)
	assert.Equal(t, 1, l.Capacity(), "doubling zero saturates to +1")
	l.Append(2)
	assert.Equal(t, 2, l.Capacity())
}

func TestAListReserve(t *testing.T) {
	l := seq.NewAListCap[int](4)
	seq.AppendAll[int](l, 1, 2, 3)
	require.NoError(t, l.MoveToPos(1))

	l.Reserve(32)
	assert.Equal(t, 32, l.Capacity())
	assert.Equal(t, 3, l.Length())
	assert.Equal(t, 1, l.CurrPos())
	assert.Equal(t, []int{1, 2, 3}, seq.ToSlice[int](l))

	// never shrinks
	l.Reserve(2)
	assert.Equal(t, 32, l.Capacity())
}

func TestAListShrinkToFit(t *testing.T) {
	l := seq.NewAListCap[int](64)
	seq.AppendAll[int](l, 1, 2, 3)
	l.ShrinkToFit()
	assert.Equal(t, 3, l.Capacity())
	assert.Equal(t, []int{1, 2, 3}, seq.ToSlice[int](l))

	empty := seq.NewAList[int]()
	empty.ShrinkToFit()
	assert.Equal(t, 1, empty.Capacity(), "empty list keeps a one-slot buffer")
}

func TestAListClearKeepsCapacity(t *testing.T) {
	l := seq.NewAListCap[int](8)
	seq.AppendAll[int](l, 1, 2, 3)
	l.Clear()
	assert.Equal(t, 8, l.Capacity())
	assert.Equal(t, 0, l.Length())
}

func TestAListCloneIsDeep(t *testing.T) {
	a := seq.NewAList[int]()
	seq.AppendAll[int](a, 1, 2, 3)
	require.NoError(t, a.MoveToPos(1))

	b := a.Clone()
	assert.Equal(t, a.Length(), b.Length())
	assert.Equal(t, a.Capacity(), b.Capacity())
	assert.Equal(t, 1, b.CurrPos())

	// mutate b's element at the cursor; a must be untouched
	_, err := b.Remove()
	require.NoError(t, err)
	b.Insert(99)

	assert.Equal(t, []int{1, 99, 3}, seq.ToSlice[int](b))
	assert.Equal(t, []int{1, 2, 3}, seq.ToSlice[int](a))
}

func TestAListMoveFrom(t *testing.T) {
	a := seq.NewAList[int]()
	seq.AppendAll[int](a, 1, 2, 3)
	require.NoError(t, a.MoveToPos(2))

	b := seq.NewAList[int]()
	b.MoveFrom(a)

	assert.Equal(t, []int{1, 2, 3}, seq.ToSlice[int](b))
	assert.Equal(t, 2, b.CurrPos())

	// source is empty, zero-capacity, and still usable
	assert.Equal(t, 0, a.Length())
	assert.Equal(t, 0, a.Capacity())
	assert.Equal(t, 0, a.CurrPos())
	a.Append(7)
	assert.Equal(t, []int{7}, seq.ToSlice[int](a))
	assert.Equal(t, []int{1, 2, 3}, seq.ToSlice[int](b), "the moved-to list keeps its own buffer")
}

func TestAListMoveFromSelf(t *testing.T) {
	a := seq.NewAList[int]()
	a.Append(1)
	a.MoveFrom(a)
	assert.Equal(t, []int{1}, seq.ToSlice[int](a))
}
