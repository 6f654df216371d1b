package ranges

import "fmt"

// Category is the traversal capability of a position. Categories are totally
// ordered:
//
//	SinglePass < MultiPass < Bidirectional < RandomAccess
//
// A stronger category supports every operation of the weaker ones.
type Category int

const (
	// SinglePass positions can be dereferenced and advanced; once advanced,
	// earlier positions (and their copies) are no longer meaningful.
	SinglePass Category = iota

	// MultiPass positions may be cloned and each clone traversed
	// independently, yielding the same elements every time.
	MultiPass

	// Bidirectional positions can additionally step backwards (Prev).
	Bidirectional

	// RandomAccess positions support constant-time jumps, subscripts,
	// differences and ordering.
	RandomAccess
)

// categories is the ordering every capability computation goes through.
var categories = NewOrdering(SinglePass, MultiPass, Bidirectional, RandomAccess)

// String implements [fmt.Stringer].
func (c Category) String() string {
	switch c {
	case SinglePass:
		return "single-pass"
	case MultiPass:
		return "multi-pass"
	case Bidirectional:
		return "bidirectional"
	case RandomAccess:
		return "random-access"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// AtLeast reports whether c supports every operation of want.
func (c Category) AtLeast(want Category) bool {
	return categories.Rank(c) >= categories.Rank(want)
}

// MinCategory returns the weaker of a and b. An adaptor exposes
// MinCategory(its own ceiling, the wrapped sequence's category).
//
//	ranges.MinCategory(ranges.RandomAccess, ranges.Bidirectional) // → Bidirectional
func MinCategory(a, b Category) Category {
	return categories.Min(a, b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Ordering
// ─────────────────────────────────────────────────────────────────────────────

// Ordering is a total order over an explicit list of values: a value ranks
// lower than every value listed after it. It is the general form of the
// category ordering and works for any comparable type:
//
//	sizes := ranges.NewOrdering("S", "M", "L", "XL")
//	sizes.Min("XL", "M") // → "M"
//
// Asking about a value that was not listed panics with [ErrNotRanked].
type Ordering[T comparable] struct {
	ranks map[T]int
}

// NewOrdering builds an Ordering from values listed weakest first. When a
// value is listed twice, its first position wins.
func NewOrdering[T comparable](values ...T) Ordering[T] {
	ranks := make(map[T]int, len(values))
	for i, v := range values {
		if _, seen := ranks[v]; !seen {
			ranks[v] = i
		}
	}
	return Ordering[T]{ranks: ranks}
}

// Rank returns the position of v in the ordering.
func (o Ordering[T]) Rank(v T) int {
	r, ok := o.ranks[v]
	if !ok {
		panic(fmt.Errorf("%w: %v", ErrNotRanked, v))
	}
	return r
}

// Contains reports whether v is part of the ordering.
func (o Ordering[T]) Contains(v T) bool {
	_, ok := o.ranks[v]
	return ok
}

// Less reports whether a ranks strictly below b.
func (o Ordering[T]) Less(a, b T) bool { return o.Rank(a) < o.Rank(b) }

// Min returns the lower-ranked of a and b.
func (o Ordering[T]) Min(a, b T) T {
	if o.Rank(a) <= o.Rank(b) {
		return a
	}
	return b
}

// Max returns the higher-ranked of a and b.
func (o Ordering[T]) Max(a, b T) T {
	if o.Rank(a) >= o.Rank(b) {
		return a
	}
	return b
}
