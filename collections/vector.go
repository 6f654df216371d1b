package collections

import (
	"cmp"
	"fmt"

	"github.com/hasbyte1/go-lazy-ranges/ranges"
)

// Vector is a random-access sequence backed by a slice.
//
// Its positions support every [ranges.RandomAccessIterator] operation in
// constant time, so transform views over a Vector keep random access.
//
// # Creating a vector
//
//	v := collections.New(1, 2, 3, 4, 5)
//	v := collections.From([]string{"a", "b", "c"})
//	v := collections.Empty[int]()
//
// A Vector is a small value (one slice header). Copies share their backing
// array until one of them grows past its capacity.
type Vector[T any] struct {
	items []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Vector from a variadic list of items (copied).
func New[T any](items ...T) Vector[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return Vector[T]{items: dst}
}

// From creates a Vector from a slice (the slice is copied).
func From[T any](items []T) Vector[T] {
	return New(items...)
}

// Empty creates an empty Vector of type T.
func Empty[T any]() Vector[T] {
	return Vector[T]{items: []T{}}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the number of items.
func (v Vector[T]) Len() int { return len(v.items) }

// At returns the item at index i. It panics when i is out of range, like
// indexing a slice.
func (v Vector[T]) At(i int) T { return v.items[i] }

// Get returns the item at index together with a presence flag.
func (v Vector[T]) Get(index int) (T, bool) {
	if index < 0 || index >= len(v.items) {
		var zero T
		return zero, false
	}
	return v.items[index], true
}

// All returns a copy of the underlying slice.
func (v Vector[T]) All() []T {
	out := make([]T, len(v.items))
	copy(out, v.items)
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutation
// ─────────────────────────────────────────────────────────────────────────────

// Push appends items. Positions taken before the call still end at the old
// length.
func (v *Vector[T]) Push(items ...T) { v.items = append(v.items, items...) }

// Set replaces the item at index. Returns [ErrIndexOutOfRange] when index
// is not a valid position.
func (v *Vector[T]) Set(index int, item T) error {
	if index < 0 || index >= len(v.items) {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, index, len(v.items))
	}
	v.items[index] = item
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Sequence
// ─────────────────────────────────────────────────────────────────────────────

// Begin returns a position at the first item.
func (v Vector[T]) Begin() ranges.Iterator[T] { return &vectorIter[T]{items: v.items} }

// End returns the past-the-end position.
func (v Vector[T]) End() ranges.Iterator[T] {
	return &vectorIter[T]{items: v.items, i: len(v.items)}
}

// Category always returns [ranges.RandomAccess].
func (v Vector[T]) Category() ranges.Category { return ranges.RandomAccess }

type vectorIter[T any] struct {
	items []T
	i     int
}

func (it *vectorIter[T]) Get() T { return it.items[it.i] }
func (it *vectorIter[T]) Next() { it.i++ }
func (it *vectorIter[T]) Prev() { it.i-- }
func (it *vectorIter[T]) Jump(n int) { it.i += n }
func (it *vectorIter[T]) At(n int) T { return it.items[it.i+n] }
func (it *vectorIter[T]) Category() ranges.Category { return ranges.RandomAccess }

func (it *vectorIter[T]) Clone() ranges.Iterator[T] {
	return &vectorIter[T]{items: it.items, i: it.i}
}

func (it *vectorIter[T]) Equal(other ranges.Iterator[T]) bool {
	o, ok := other.(*vectorIter[T])
	return ok && it.i == o.i
}

func (it *vectorIter[T]) Diff(other ranges.Iterator[T]) int {
	return it.i - other.(*vectorIter[T]).i
}

func (it *vectorIter[T]) Compare(other ranges.Iterator[T]) int {
	return cmp.Compare(it.i, other.(*vectorIter[T]).i)
}
