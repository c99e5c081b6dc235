package seq

import "fmt"

const (
	defaultCapacity = 10
	growthFactor    = 2
)

// AList is an array-backed List. The cursor is a direct index into the
// buffer, so all cursor movement and position queries are O(1); Insert and
// Remove shift elements and are O(n) in the worst case.
type AList[E any] struct {
	elems []E // len(elems) is the capacity
	size  int
	curr  int
}

var _ List[int] = (*AList[int])(nil)

// NewAList returns an empty AList with the default initial capacity.
func NewAList[E any]() *AList[E] {
	return NewAListCap[E](defaultCapacity)
}

// NewAListCap returns an empty AList with the given initial capacity.
func NewAListCap[E any](capacity int) *AList[E] {
	if capacity < 0 {
		capacity = 0
	}
	return &AList[E]{elems: make([]E, capacity)}
}

// resize moves the elements into a fresh buffer of at least size slots.
func (l *AList[E]) resize(newCapacity int) {
	if newCapacity < l.size {
		newCapacity = l.size
	}
	newElems := make([]E, newCapacity)
	copy(newElems, l.elems[:l.size])
	l.elems = newElems
}

// ensureCapacity makes room for at least one more element, doubling the
// capacity with a saturating +1 fallback on overflow.
func (l *AList[E]) ensureCapacity() {
	if l.size < len(l.elems) {
		return
	}
	newCapacity := len(l.elems) * growthFactor
	if newCapacity <= len(l.elems) {
		newCapacity = len(l.elems) + 1
	}
	l.resize(newCapacity)
}

func (l *AList[E]) Clear() {
	l.elems = make([]E, len(l.elems))
	l.size = 0
	l.curr = 0
}

// Insert shifts elements from the cursor onward one slot right and places
// item at the cursor. O(n).
func (l *AList[E]) Insert(item E) {
	l.ensureCapacity()
	for i := l.size; i > l.curr; i-- {
		l.elems[i] = l.elems[i-1]
	}
	l.elems[l.curr] = item
	l.size++
}

// Append places item after the last element. Amortized O(1).
func (l *AList[E]) Append(item E) {
	l.ensureCapacity()
	l.elems[l.size] = item
	l.size++
}

// Remove shifts elements after the cursor one slot left. O(n).
func (l *AList[E]) Remove() (E, error) {
	var zero E
	if l.curr >= l.size {
		return zero, fmt.Errorf("alist remove: %w", ErrNoCurrentElement)
	}
	item := l.elems[l.curr]
	for i := l.curr; i < l.size-1; i++ {
		l.elems[i] = l.elems[i+1]
	}
	l.size--
	l.elems[l.size] = zero
	return item, nil
}

func (l *AList[E]) MoveToStart() {
	l.curr = 0
}

func (l *AList[E]) MoveToEnd() {
	l.curr = l.size
}

func (l *AList[E]) Prev() {
	if l.curr > 0 {
		l.curr--
	}
}

func (l *AList[E]) Next() {
	if l.curr < l.size {
		l.curr++
	}
}

func (l *AList[E]) Length() int {
	return l.size
}

func (l *AList[E]) CurrPos() int {
	return l.curr
}

func (l *AList[E]) MoveToPos(pos int) error {
	if pos < 0 || pos > l.size {
		return fmt.Errorf("alist moveToPos %d with size %d: %w", pos, l.size, ErrPositionOutOfRange)
	}
	l.curr = pos
	return nil
}

func (l *AList[E]) GetValue() (E, error) {
	var zero E
	if l.curr >= l.size {
		return zero, fmt.Errorf("alist getValue: %w", ErrNoCurrentElement)
	}
	return l.elems[l.curr], nil
}

func (l *AList[E]) IsEmpty() bool {
	return l.size == 0
}

// Capacity returns the size of the backing buffer.
func (l *AList[E]) Capacity() int {
	return len(l.elems)
}

// Reserve grows the capacity to at least n. It never shrinks and does not
// change the size or contents.
func (l *AList[E]) Reserve(n int) {
	if n > len(l.elems) {
		l.resize(n)
	}
}

// ShrinkToFit reallocates to the minimum nonzero capacity holding the
// current elements.
func (l *AList[E]) ShrinkToFit() {
	if len(l.elems) <= l.size {
		return
	}
	newCapacity := l.size
	if newCapacity == 0 {
		newCapacity = 1
	}
	l.resize(newCapacity)
}

// Clone returns a deep copy with the same size, capacity, and cursor.
func (l *AList[E]) Clone() *AList[E] {
	clone := &AList[E]{
		elems: make([]E, len(l.elems)),
		size:  l.size,
		curr:  l.curr,
	}
	copy(clone.elems, l.elems[:l.size])
	return clone
}

// MoveFrom steals src's storage, size, and cursor. src is left valid,
// empty, and zero-capacity, safe to keep using.
func (l *AList[E]) MoveFrom(src *AList[E]) {
	if l == src {
		return
	}
	l.elems = src.elems
	l.size = src.size
	l.curr = src.curr

	src.elems = nil
	src.size = 0
	src.curr = 0
}
