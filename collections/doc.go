// Package collections provides concrete source sequences for the ranges
// package, one for each traversal category:
//
//	Vector[T]       random-access, backed by a slice
//	IotaRange[T]    random-access, computed integers, stores nothing
//	List[T]         bidirectional, doubly linked
//	ForwardList[T]  multi-pass, singly linked
//	Stream[T]       single-pass, pulled from an iter.Seq or an io.Reader
//
// Each type implements [ranges.Range] and reports its category, so any view
// built on top of it exposes the strongest operations the source allows:
//
//	v := collections.New(1, 2, 3, 4, 5, 6)
//	squares := ranges.Map(v, func(n int) int { return n * n })
//	squares.Category() // → random-access
//
//	words := collections.Words(strings.NewReader("a b c"))
//	upper := ranges.Map(words, strings.ToUpper)
//	upper.Category() // → single-pass
//
// The finite types also satisfy [Sequence], which adds Len and All, and
// [Snapshot] copies any view into a new Vector when an eager result is
// needed.
//
// # Ownership
//
// Vector and IotaRange are small values; handing one to [ranges.Own] keeps
// a copy of the header, handing a pointer to [ranges.Borrow] keeps
// following the caller's variable. List, ForwardList and Stream are used
// through pointers and are always shared.
//
// # Concurrency
//
// None of the types are safe for concurrent use. Mutating a sequence while
// positions over it are in use is a contract violation.
package collections
