package collections

import "github.com/hasbyte1/go-lazy-ranges/ranges"

// List is a doubly linked, bidirectional sequence. Positions can move both
// ways but have no constant-time jumps, so views over a List are at most
// [ranges.Bidirectional].
//
// The zero List is an empty list ready to use.
type List[T any] struct {
	root *listNode[T] // sentinel: root.next is the front, root.prev the back
	len  int
}

type listNode[T any] struct {
	prev, next *listNode[T]
	value      T
}

// NewList creates a List holding items in order.
func NewList[T any](items ...T) *List[T] {
	l := &List[T]{}
	for _, item := range items {
		l.PushBack(item)
	}
	return l
}

func (l *List[T]) lazyInit() {
	if l.root == nil {
		l.root = &listNode[T]{}
		l.root.next = l.root
		l.root.prev = l.root
	}
}

// Len returns the number of items.
func (l *List[T]) Len() int { return l.len }

// PushBack appends item.
func (l *List[T]) PushBack(item T) { l.insertAfter(l.backNode(), item) }

// PushFront prepends item.
func (l *List[T]) PushFront(item T) {
	l.lazyInit()
	l.insertAfter(l.root, item)
}

// PopFront removes and returns the first item, or [ErrEmptyCollection].
func (l *List[T]) PopFront() (T, error) {
	if l.len == 0 {
		var zero T
		return zero, ErrEmptyCollection
	}
	return l.remove(l.root.next), nil
}

// PopBack removes and returns the last item, or [ErrEmptyCollection].
func (l *List[T]) PopBack() (T, error) {
	if l.len == 0 {
		var zero T
		return zero, ErrEmptyCollection
	}
	return l.remove(l.root.prev), nil
}

// All returns the items as a new slice.
func (l *List[T]) All() []T {
	out := make([]T, 0, l.len)
	if l.root == nil {
		return out
	}
	for n := l.root.next; n != l.root; n = n.next {
		out = append(out, n.value)
	}
	return out
}

func (l *List[T]) backNode() *listNode[T] {
	l.lazyInit()
	return l.root.prev
}

func (l *List[T]) insertAfter(at *listNode[T], item T) {
	n := &listNode[T]{prev: at, next: at.next, value: item}
	at.next.prev = n
	at.next = n
	l.len++
}

func (l *List[T]) remove(n *listNode[T]) T {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev, n.next = nil, nil
	l.len--
	return n.value
}

// Begin returns a position at the first item.
func (l *List[T]) Begin() ranges.Iterator[T] {
	l.lazyInit()
	return &listIter[T]{node: l.root.next}
}

// End returns the past-the-end position (the sentinel).
func (l *List[T]) End() ranges.Iterator[T] {
	l.lazyInit()
	return &listIter[T]{node: l.root}
}

// Category always returns [ranges.Bidirectional].
func (l *List[T]) Category() ranges.Category { return ranges.Bidirectional }

type listIter[T any] struct {
	node *listNode[T]
}

func (it *listIter[T]) Get() T { return it.node.value }
func (it *listIter[T]) Next() { it.node = it.node.next }
func (it *listIter[T]) Prev() { it.node = it.node.prev }
func (it *listIter[T]) Clone() ranges.Iterator[T] { return &listIter[T]{node: it.node} }
func (it *listIter[T]) Category() ranges.Category { return ranges.Bidirectional }

func (it *listIter[T]) Equal(other ranges.Iterator[T]) bool {
	o, ok := other.(*listIter[T])
	return ok && it.node == o.node
}
