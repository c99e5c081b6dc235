// Package vector provides a generic index-addressed growable array. It is
// independent of the cursor-based containers in seq; all access is by
// index.
package vector

import (
	"errors"
	"fmt"

	"github.com/kevinxiao27/seqlist/util"
)

// ErrOutOfRange is returned for any out-of-range index or empty-vector
// access.
var ErrOutOfRange = errors.New("index out of range")

const (
	defaultCapacity = 16
	growthFactor    = 2
)

// Vector is a growable array. The zero value is an empty vector with no
// allocated storage; the first PushBack allocates.
type Vector[T any] struct {
	items []T // len(items) is the capacity
	size  int
}

// New returns an empty vector with the given initial capacity.
func New[T any](capacity int) *Vector[T] {
	v := &Vector[T]{}
	if capacity > 0 {
		v.items = make([]T, capacity)
	}
	return v
}

// NewFilled returns a vector holding count copies of value.
func NewFilled[T any](count int, value T) *Vector[T] {
	v := New[T](count)
	for i := 0; i < count; i++ {
		v.items[i] = value
	}
	v.size = count
	return v
}

// Get returns the element at index without bounds checking; indexing past
// the capacity panics. Use At for checked access.
func (v *Vector[T]) Get(index int) T {
	return v.items[index]
}

// At returns the element at index, or ErrOutOfRange if index >= Size().
func (v *Vector[T]) At(index int) (T, error) {
	var zero T
	if index < 0 || index >= v.size {
		return zero, fmt.Errorf("vector at %d with size %d: %w", index, v.size, ErrOutOfRange)
	}
	return v.items[index], nil
}

// Set replaces the element at index, or returns ErrOutOfRange if
// index >= Size().
func (v *Vector[T]) Set(index int, value T) error {
	if index < 0 || index >= v.size {
		return fmt.Errorf("vector set %d with size %d: %w", index, v.size, ErrOutOfRange)
	}
	v.items[index] = value
	return nil
}

// Front returns the first element, or ErrOutOfRange when empty.
func (v *Vector[T]) Front() (T, error) {
	var zero T
	if v.Empty() {
		return zero, fmt.Errorf("vector front: %w", ErrOutOfRange)
	}
	return v.items[0], nil
}

// Back returns the last element, or ErrOutOfRange when empty.
func (v *Vector[T]) Back() (T, error) {
	var zero T
	if v.Empty() {
		return zero, fmt.Errorf("vector back: %w", ErrOutOfRange)
	}
	return v.items[v.size-1], nil
}

// Data returns the elements as a slice aliasing the internal buffer.
func (v *Vector[T]) Data() []T {
	return v.items[:v.size]
}

func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

func (v *Vector[T]) Size() int {
	return v.size
}

// Capacity returns the size of the backing buffer.
func (v *Vector[T]) Capacity() int {
	return len(v.items)
}

// Reserve grows the capacity to at least newCapacity. It never shrinks and
// does not change the size or contents.
func (v *Vector[T]) Reserve(newCapacity int) {
	if newCapacity <= len(v.items) {
		return
	}
	newItems := make([]T, newCapacity)
	copy(newItems, v.items[:v.size])
	v.items = newItems
}

// ShrinkToFit reallocates to exactly the current size, with a one-slot
// floor, releasing unused capacity.
func (v *Vector[T]) ShrinkToFit() {
	newCapacity := util.Choose(v.size > 0, v.size, 1)
	if len(v.items) <= newCapacity {
		return
	}
	newItems := make([]T, newCapacity)
	copy(newItems, v.items[:v.size])
	v.items = newItems
}

// Clear sets the size to 0. Capacity is unchanged.
func (v *Vector[T]) Clear() {
	var zero T
	for i := 0; i < v.size; i++ {
		v.items[i] = zero
	}
	v.size = 0
}

// PushBack appends item, growing the buffer if needed. Amortized O(1).
func (v *Vector[T]) PushBack(item T) {
	v.ensureCapacity()
	v.items[v.size] = item
	v.size++
}

// PopBack removes the last element without reallocating, or returns
// ErrOutOfRange when empty.
func (v *Vector[T]) PopBack() error {
	if v.Empty() {
		return fmt.Errorf("vector popBack: %w", ErrOutOfRange)
	}
	v.size--
	var zero T
	v.items[v.size] = zero
	return nil
}

// Resize sets the size to count. Growing introduces zero-valued elements;
// shrinking truncates.
func (v *Vector[T]) Resize(count int) {
	if count < 0 {
		count = 0
	}
	if count > len(v.items) {
		v.Reserve(count)
	}
	var zero T
	if count > v.size {
		for i := v.size; i < count; i++ {
			v.items[i] = zero
		}
	} else {
		for i := count; i < v.size; i++ {
			v.items[i] = zero
		}
	}
	v.size = count
}

// Swap exchanges storage, size, and capacity with other in O(1) without
// copying elements.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.items, other.items = other.items, v.items
	v.size, other.size = other.size, v.size
}

// Clone returns a deep copy with the same size and capacity.
func (v *Vector[T]) Clone() *Vector[T] {
	clone := New[T](len(v.items))
	copy(clone.items, v.items[:v.size])
	clone.size = v.size
	return clone
}

// MoveFrom steals src's storage and size. src is left valid, empty, and
// zero-capacity, safe to keep using.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.items = src.items
	v.size = src.size

	src.items = nil
	src.size = 0
}

// ensureCapacity makes room for at least one more element. A fresh vector
// gets the default capacity; otherwise the capacity doubles, with a
// saturating +1 fallback on overflow.
func (v *Vector[T]) ensureCapacity() {
	if v.size < len(v.items) {
		return
	}
	newCapacity := util.Choose(len(v.items) == 0, defaultCapacity, len(v.items)*growthFactor)
	if newCapacity <= len(v.items) && len(v.items) > 0 {
		newCapacity = len(v.items) + 1
	}
	v.Reserve(newCapacity)
}
