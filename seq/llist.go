package seq

import "fmt"

// link is a single node in the chain. The owning LList manages the chain's
// lifetime; a link unreachable from the header is left for the collector
// with its next pointer cleared.
type link[E any] struct {
	element E
	next    *link[E]
}

// LList is a singly-linked List with a permanent header node. The cursor is
// represented as the node BEFORE the current element, so cursor-at-start is
// the header and cursor-at-end is the tail. That asymmetry is what makes
// Insert, Append, Remove, and Next O(1); Prev and CurrPos must walk from
// the header and are O(n) since no backward pointer exists.
type LList[E any] struct {
	head *link[E] // header node, never holds a real element
	tail *link[E] // last real node, or head when empty
	curr *link[E] // node before the current element
	size int
}

var _ List[int] = (*LList[int])(nil)

// NewLList returns an empty LList.
func NewLList[E any]() *LList[E] {
	l := &LList[E]{}
	l.init()
	return l
}

func (l *LList[E]) init() {
	l.head = &link[E]{}
	l.tail = l.head
	l.curr = l.head
	l.size = 0
}

func (l *LList[E]) Clear() {
	// drop the whole chain; clearing next pointers is unnecessary once the
	// header is unreachable
	l.init()
}

// Insert links a new node after the cursor node. The new element becomes
// the current element. O(1).
func (l *LList[E]) Insert(item E) {
	l.curr.next = &link[E]{element: item, next: l.curr.next}
	if l.tail == l.curr {
		l.tail = l.curr.next
	}
	l.size++
}

// Append links a new node after the tail. The cursor is untouched. O(1).
func (l *LList[E]) Append(item E) {
	l.tail.next = &link[E]{element: item}
	l.tail = l.tail.next
	l.size++
}

// Remove detaches the node after the cursor. The element that followed it
// becomes the new current element. O(1).
func (l *LList[E]) Remove() (E, error) {
	var zero E
	if l.curr.next == nil {
		return zero, fmt.Errorf("llist remove: %w", ErrNoCurrentElement)
	}
	removed := l.curr.next
	if l.tail == removed {
		l.tail = l.curr
	}
	l.curr.next = removed.next
	removed.next = nil
	l.size--
	return removed.element, nil
}

func (l *LList[E]) MoveToStart() {
	l.curr = l.head
}

func (l *LList[E]) MoveToEnd() {
	l.curr = l.tail
}

// Prev walks from the header to find the node before curr. O(n).
func (l *LList[E]) Prev() {
	if l.curr == l.head {
		return
	}
	node := l.head
	for node.next != l.curr {
		node = node.next
	}
	l.curr = node
}

func (l *LList[E]) Next() {
	if l.curr != l.tail {
		l.curr = l.curr.next
	}
}

func (l *LList[E]) Length() int {
	return l.size
}

// CurrPos counts steps from the header to curr. O(n).
func (l *LList[E]) CurrPos() int {
	pos := 0
	for node := l.head; node != l.curr; node = node.next {
		pos++
	}
	return pos
}

// MoveToPos restarts traversal from the header. O(n).
func (l *LList[E]) MoveToPos(pos int) error {
	if pos < 0 || pos > l.size {
		return fmt.Errorf("llist moveToPos %d with size %d: %w", pos, l.size, ErrPositionOutOfRange)
	}
	l.curr = l.head
	for i := 0; i < pos; i++ {
		l.curr = l.curr.next
	}
	return nil
}

func (l *LList[E]) GetValue() (E, error) {
	var zero E
	if l.curr.next == nil {
		return zero, fmt.Errorf("llist getValue: %w", ErrNoCurrentElement)
	}
	return l.curr.next.element, nil
}

func (l *LList[E]) IsEmpty() bool {
	return l.size == 0
}

// Clone returns a deep copy. Elements are appended in order and the clone's
// cursor is repositioned to the source's CurrPos.
func (l *LList[E]) Clone() *LList[E] {
	clone := NewLList[E]()
	for node := l.head.next; node != nil; node = node.next {
		clone.Append(node.element)
	}
	// pos is within [0, size] here, MoveToPos cannot fail
	_ = clone.MoveToPos(l.CurrPos())
	return clone
}

// MoveFrom steals src's chain and cursor. src is reset to a fresh empty
// list with its own header, safe to keep using.
func (l *LList[E]) MoveFrom(src *LList[E]) {
	if l == src {
		return
	}
	l.head = src.head
	l.tail = src.tail
	l.curr = src.curr
	l.size = src.size

	src.init()
}
