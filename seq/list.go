// Package seq provides cursor-based sequence containers: a common List
// interface with an array-backed implementation (AList) and a singly-linked
// implementation with a header node (LList).
//
// Every List carries a cursor in the range [0, Length()]. The element
// immediately after the cursor is the current element; a cursor equal to
// Length() means there is no current element.
package seq

import "errors"

var (
	// ErrPositionOutOfRange is returned when a requested position is
	// outside [0, Length()].
	ErrPositionOutOfRange = errors.New("position out of range")

	// ErrNoCurrentElement is returned when an operation needs a current
	// element but the cursor is at the end of the list.
	ErrNoCurrentElement = errors.New("no element at current position")
)

// List is the cursor-based sequence contract shared by AList and LList.
// The two implementations differ only in complexity class, never in
// observable behavior.
type List[E any] interface {
	// Clear removes all elements and resets the cursor to 0.
	Clear()

	// Insert places item at the cursor so that the next GetValue returns it.
	Insert(item E)

	// Append places item at the end of the list. The cursor is unaffected.
	Append(item E)

	// Remove removes and returns the current element. The element that
	// followed it, if any, becomes the new current element. Returns
	// ErrNoCurrentElement if the cursor has no current element.
	Remove() (E, error)

	// MoveToStart sets the cursor to 0.
	MoveToStart()

	// MoveToEnd sets the cursor to Length(); there is then no current element.
	MoveToEnd()

	// Prev moves the cursor one step left; no-op at the start.
	Prev()

	// Next moves the cursor one step right; no-op at the end.
	Next()

	// Length returns the number of elements.
	Length() int

	// CurrPos returns the 0-based cursor position.
	CurrPos() int

	// MoveToPos sets the cursor to pos. Returns ErrPositionOutOfRange if
	// pos is negative or greater than Length().
	MoveToPos(pos int) error

	// GetValue returns the current element, or ErrNoCurrentElement if the
	// cursor has no current element.
	GetValue() (E, error)

	// IsEmpty reports whether Length() == 0.
	IsEmpty() bool
}
