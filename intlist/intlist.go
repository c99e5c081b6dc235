// Package intlist provides a minimal doubly-ended singly-linked list of
// ints: push and pop at either end plus a printable rendering. It has no
// cursor and is independent of the containers in seq.
package intlist

import (
	"strconv"
	"strings"
)

type node struct {
	data int
	next *node
}

// IntList is a singly-linked list of ints with head and tail pointers. The
// zero value is an empty list ready for use.
type IntList struct {
	head *node
	tail *node
}

func New() *IntList {
	return &IntList{}
}

func (l *IntList) PushFront(value int) {
	l.head = &node{data: value, next: l.head}
	if l.tail == nil {
		l.tail = l.head
	}
}

func (l *IntList) PushBack(value int) {
	n := &node{data: value}
	if l.tail != nil {
		l.tail.next = n
		l.tail = n
	} else {
		l.head = n
		l.tail = n
	}
}

// PopFront removes the first element; no-op on an empty list.
func (l *IntList) PopFront() {
	if l.head == nil {
		return
	}
	l.head = l.head.next
	if l.head == nil {
		l.tail = nil
	}
}

// PopBack removes the last element; no-op on an empty list. O(n) since
// there is no backward pointer.
func (l *IntList) PopBack() {
	if l.head == nil {
		return
	}
	if l.head == l.tail {
		l.head = nil
		l.tail = nil
		return
	}
	curr := l.head
	for curr.next != l.tail {
		curr = curr.next
	}
	curr.next = nil
	l.tail = curr
}

func (l *IntList) Empty() bool {
	return l.head == nil
}

// String renders the elements head to tail, space separated.
func (l *IntList) String() string {
	var b strings.Builder
	for curr := l.head; curr != nil; curr = curr.next {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(curr.data))
	}
	return b.String()
}
