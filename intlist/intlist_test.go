package intlist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kevinxiao27/seqlist/intlist"
)

func TestZeroValueIsEmpty(t *testing.T) {
	var l intlist.IntList
	assert.True(t, l.Empty())
	assert.Equal(t, "", l.String())
}

func TestPushFrontOrder(t *testing.T) {
	l := intlist.New()
	l.PushFront(3)
	l.PushFront(2)
	l.PushFront(1)
	assert.Equal(t, "1 2 3", l.String())
}

func TestPushBackOrder(t *testing.T) {
	l := intlist.New()
	l.PushBack(1)
	l.PushBack(2)
	l.PushBack(3)
	assert.Equal(t, "1 2 3", l.String())
}

func TestMixedEnds(t *testing.T) {
	l := intlist.New()
	l.PushBack(2)
	l.PushFront(1)
	l.PushBack(3)
	assert.Equal(t, "1 2 3", l.String())
}

func TestPopFront(t *testing.T) {
	l := intlist.New()
	l.PushBack(1)
	l.PushBack(2)

	l.PopFront()
	assert.Equal(t, "2", l.String())
	l.PopFront()
	assert.True(t, l.Empty())

	// popping empty is a no-op
	l.PopFront()
	assert.True(t, l.Empty())

	// tail was reset, pushes still work
	l.PushBack(9)
	assert.Equal(t, "9", l.String())
}

func TestPopBack(t *testing.T) {
	l := intlist.New()
	l.PushBack(1)
	l.PushBack(2)
	l.PushBack(3)

	l.PopBack()
	assert.Equal(t, "1 2", l.String())
	l.PopBack()
	l.PopBack()
	assert.True(t, l.Empty())

	l.PopBack()
	assert.True(t, l.Empty())

	l.PushFront(4)
	assert.Equal(t, "4", l.String())
}
