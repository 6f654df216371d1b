package collections

import (
	"cmp"
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/hasbyte1/go-lazy-ranges/ranges"
)

// IotaRange is the computed random-access sequence start, start+1, …, end-1.
// It stores no elements.
type IotaRange[T constraints.Integer] struct {
	start, end T
}

// Iota returns the half-open integer sequence [start, end). When end comes
// before start the sequence is empty.
//
//	ranges.Map(collections.Iota(1, 7), square).Collect() // → [1 4 9 16 25 36]
func Iota[T constraints.Integer](start, end T) IotaRange[T] {
	if end < start {
		end = start
	}
	return IotaRange[T]{start: start, end: end}
}

// NewIota is like [Iota] but rejects end < start with [ErrInvalidRange].
func NewIota[T constraints.Integer](start, end T) (IotaRange[T], error) {
	if end < start {
		return IotaRange[T]{}, fmt.Errorf("%w: [%d, %d)", ErrInvalidRange, start, end)
	}
	return IotaRange[T]{start: start, end: end}, nil
}

// Len returns the number of values in the sequence.
func (r IotaRange[T]) Len() int { return int(r.end - r.start) }

// All returns the values as a new slice.
func (r IotaRange[T]) All() []T {
	out := make([]T, 0, r.Len())
	for v := r.start; v < r.end; v++ {
		out = append(out, v)
	}
	return out
}

// Begin returns a position at start.
func (r IotaRange[T]) Begin() ranges.Iterator[T] { return &iotaIter[T]{v: r.start} }

// End returns the position at end.
func (r IotaRange[T]) End() ranges.Iterator[T] { return &iotaIter[T]{v: r.end} }

// Category always returns [ranges.RandomAccess].
func (r IotaRange[T]) Category() ranges.Category { return ranges.RandomAccess }

type iotaIter[T constraints.Integer] struct {
	v T
}

func (it *iotaIter[T]) Get() T { return it.v }
func (it *iotaIter[T]) Next() { it.v++ }
func (it *iotaIter[T]) Prev() { it.v-- }
func (it *iotaIter[T]) Jump(n int) { it.v = T(int(it.v) + n) }
func (it *iotaIter[T]) At(n int) T { return T(int(it.v) + n) }
func (it *iotaIter[T]) Clone() ranges.Iterator[T] { return &iotaIter[T]{v: it.v} }
func (it *iotaIter[T]) Category() ranges.Category { return ranges.RandomAccess }

func (it *iotaIter[T]) Equal(other ranges.Iterator[T]) bool {
	o, ok := other.(*iotaIter[T])
	return ok && it.v == o.v
}

func (it *iotaIter[T]) Diff(other ranges.Iterator[T]) int {
	return int(it.v) - int(other.(*iotaIter[T]).v)
}

func (it *iotaIter[T]) Compare(other ranges.Iterator[T]) int {
	return cmp.Compare(it.v, other.(*iotaIter[T]).v)
}
