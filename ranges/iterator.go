package ranges

import "fmt"

// Iterator is a position in a sequence. It is the minimal, single-pass
// traversal contract every sequence in this package satisfies.
//
// Positions are mutable cursors: Next moves the receiver itself. Use Clone
// to keep a copy of a position before advancing it.
type Iterator[T any] interface {
	// Get dereferences the position. Calling Get on an end position is a
	// contract violation.
	Get() T

	// Next advances the position by one element.
	Next()

	// Equal reports whether both positions denote the same logical
	// location. Only positions drawn from the same sequence are comparable.
	Equal(other Iterator[T]) bool

	// Clone returns an independent copy of the position. For single-pass
	// positions the copy shares the underlying source.
	Clone() Iterator[T]

	// Category reports the traversal capability of the position.
	Category() Category
}

// BidirectionalIterator is an [Iterator] that can also step backwards.
type BidirectionalIterator[T any] interface {
	Iterator[T]

	// Prev moves the position back by one element.
	Prev()
}

// RandomAccessIterator is a [BidirectionalIterator] with constant-time
// positional arithmetic.
type RandomAccessIterator[T any] interface {
	BidirectionalIterator[T]

	// Jump moves the position by n elements; negative n moves backwards.
	Jump(n int)

	// At returns the element n positions away without moving.
	At(n int) T

	// Diff returns the number of elements between other and the receiver
	// (receiver minus other).
	Diff(other Iterator[T]) int

	// Compare orders the receiver against other: -1 when it comes first,
	// 0 when equal, +1 when it comes after.
	Compare(other Iterator[T]) int
}

// Range is a sequence: anything that can hand out a beginning and an ending
// position. Begin and End return fresh positions on every call.
type Range[T any] interface {
	Begin() Iterator[T]
	End() Iterator[T]
}

// categorized is implemented by ranges that know their category without
// creating a position.
type categorized interface {
	Category() Category
}

// CategoryOf returns the traversal capability exposed by r.
func CategoryOf[T any](r Range[T]) Category {
	if c, ok := r.(categorized); ok {
		return c.Category()
	}
	return r.Begin().Category()
}

// ─────────────────────────────────────────────────────────────────────────────
// Position helpers
// ─────────────────────────────────────────────────────────────────────────────

// Advance moves it by n elements. Random-access positions jump in constant
// time; the others step one element at a time. Moving backwards requires a
// bidirectional position and panics with [ErrCapability] otherwise.
func Advance[T any](it Iterator[T], n int) {
	if n == 0 {
		return
	}
	if ra, ok := it.(RandomAccessIterator[T]); ok {
		ra.Jump(n)
		return
	}
	if n < 0 {
		bi, ok := it.(BidirectionalIterator[T])
		if !ok {
			panic(fmt.Errorf("%w: cannot move a %s position backwards", ErrCapability, it.Category()))
		}
		for ; n < 0; n++ {
			bi.Prev()
		}
		return
	}
	for ; n > 0; n-- {
		it.Next()
	}
}

// Distance returns the number of elements from first up to last. It uses
// Diff for random-access positions and otherwise walks a clone of first,
// which consumes a single-pass source. Mappings are never invoked.
func Distance[T any](first, last Iterator[T]) int {
	if ra, ok := last.(RandomAccessIterator[T]); ok {
		return ra.Diff(first)
	}
	n := 0
	for it := first.Clone(); !it.Equal(last); it.Next() {
		n++
	}
	return n
}
