package collections

import "github.com/hasbyte1/go-lazy-ranges/ranges"

// ForwardList is a singly linked, multi-pass sequence. Positions can be
// cloned and re-walked but only move forwards.
//
// The zero ForwardList is an empty list ready to use.
type ForwardList[T any] struct {
	head *forwardNode[T]
	len  int
}

type forwardNode[T any] struct {
	next  *forwardNode[T]
	value T
}

// NewForwardList creates a ForwardList holding items in order.
func NewForwardList[T any](items ...T) *ForwardList[T] {
	l := &ForwardList[T]{}
	for i := len(items) - 1; i >= 0; i-- {
		l.PushFront(items[i])
	}
	return l
}

// Len returns the number of items.
func (l *ForwardList[T]) Len() int { return l.len }

// PushFront prepends item.
func (l *ForwardList[T]) PushFront(item T) {
	l.head = &forwardNode[T]{next: l.head, value: item}
	l.len++
}

// PopFront removes and returns the first item, or [ErrEmptyCollection].
func (l *ForwardList[T]) PopFront() (T, error) {
	if l.head == nil {
		var zero T
		return zero, ErrEmptyCollection
	}
	n := l.head
	l.head = n.next
	l.len--
	return n.value, nil
}

// All returns the items as a new slice.
func (l *ForwardList[T]) All() []T {
	out := make([]T, 0, l.len)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}

// Begin returns a position at the first item.
func (l *ForwardList[T]) Begin() ranges.Iterator[T] { return &forwardIter[T]{node: l.head} }

// End returns the past-the-end position.
func (l *ForwardList[T]) End() ranges.Iterator[T] { return &forwardIter[T]{} }

// Category always returns [ranges.MultiPass].
func (l *ForwardList[T]) Category() ranges.Category { return ranges.MultiPass }

type forwardIter[T any] struct {
	node *forwardNode[T]
}

func (it *forwardIter[T]) Get() T { return it.node.value }
func (it *forwardIter[T]) Next() { it.node = it.node.next }
func (it *forwardIter[T]) Clone() ranges.Iterator[T] { return &forwardIter[T]{node: it.node} }
func (it *forwardIter[T]) Category() ranges.Category { return ranges.MultiPass }

func (it *forwardIter[T]) Equal(other ranges.Iterator[T]) bool {
	o, ok := other.(*forwardIter[T])
	return ok && it.node == o.node
}
