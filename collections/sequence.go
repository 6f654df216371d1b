package collections

import "github.com/hasbyte1/go-lazy-ranges/ranges"

// Sequence is the interface satisfied by the finite, re-walkable sequences
// of this package: [Vector], [IotaRange], [*List] and [*ForwardList].
//
// Accept Sequence in your own functions when you need both the position
// protocol and an element count, without depending on a concrete type.
// [*Stream] is not a Sequence: its length is unknown until it is consumed.
type Sequence[T any] interface {
	ranges.Range[T]

	// Category reports the traversal capability of the sequence.
	Category() ranges.Category

	// Len returns the number of items.
	Len() int

	// All returns a copy of every item as a plain Go slice.
	All() []T
}

var (
	_ Sequence[int] = Vector[int]{}
	_ Sequence[int] = IotaRange[int]{}
	_ Sequence[int] = (*List[int])(nil)
	_ Sequence[int] = (*ForwardList[int])(nil)
)

// Snapshot copies every element of r into a new Vector. It is the eager
// counterpart of a view: the result no longer depends on r or on the
// mappings that produced its elements.
//
//	squares := collections.Snapshot[int](ranges.Map(v, square))
func Snapshot[T any](r ranges.Range[T]) Vector[T] {
	return Vector[T]{items: ranges.Wrap(r).Collect()}
}
