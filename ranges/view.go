package ranges

import (
	"fmt"
	"iter"

	"github.com/go-softwarelab/common/pkg/seq"
)

// View is the user-facing handle for any [Range]: it is itself a Range, so
// views nest, and it adds terminals that consume the sequence.
//
// A View does not own elements and does not cache them; every terminal walks
// the underlying chain again.
type View[T any] struct {
	r Range[T]
}

// Wrap returns a View over r. Wrapping a View returns it unchanged.
func Wrap[T any](r Range[T]) *View[T] {
	if v, ok := r.(*View[T]); ok {
		return v
	}
	return &View[T]{r: r}
}

// MakeView builds a sequence from a raw pair of positions, for sources that
// only hand out positions (a stream reader, a sub-range of another
// sequence). Begin and End return clones, so the pair itself never moves.
//
//	all := ranges.Wrap[int](vec)
//	b := all.Begin()
//	ranges.Advance(b, 2)
//	tail := ranges.MakeView(b, all.End())
func MakeView[T any](begin, end Iterator[T]) *View[T] {
	return &View[T]{r: &positionPair[T]{begin: begin, end: end}}
}

type positionPair[T any] struct {
	begin, end Iterator[T]
}

func (p *positionPair[T]) Begin() Iterator[T] { return p.begin.Clone() }
func (p *positionPair[T]) End() Iterator[T] { return p.end.Clone() }
func (p *positionPair[T]) Category() Category { return p.begin.Category() }
func (p *positionPair[T]) adopted() {}

// ─────────────────────────────────────────────────────────────────────────────
// Range surface
// ─────────────────────────────────────────────────────────────────────────────

// Begin returns a position at the first element.
func (v *View[T]) Begin() Iterator[T] { return v.r.Begin() }

// End returns the past-the-end position.
func (v *View[T]) End() Iterator[T] { return v.r.End() }

// Category reports the traversal capability of the view.
func (v *View[T]) Category() Category { return CategoryOf(v.r) }

// Range returns the range the view wraps.
func (v *View[T]) Range() Range[T] { return v.r }

// ─────────────────────────────────────────────────────────────────────────────
// Composition
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a view over the elements for which pred holds.
func (v *View[T]) Filter(pred func(T) bool) *View[T] { return Where[T](v, pred) }

// Through attaches every stage in order and returns the final view.
//
//	v.Through(ranges.Filter(ranges.FuncOf(isEven)), square)
func (v *View[T]) Through(stages ...Stage[T, T]) *View[T] {
	out := v
	for _, s := range stages {
		out = Pipe[T, T](out, s)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Terminals
// ─────────────────────────────────────────────────────────────────────────────

// All returns an iterator over the elements for use with range-over-func:
//
//	for n := range v.All() { ... }
//
// Every element is dereferenced exactly once per pass.
func (v *View[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		end := v.r.End()
		for it := v.r.Begin(); !it.Equal(end); it.Next() {
			if !yield(it.Get()) {
				return
			}
		}
	}
}

// Backward returns an iterator over the elements from last to first. It
// panics with [ErrCapability] unless the view is at least bidirectional.
func (v *View[T]) Backward() iter.Seq[T] {
	if c := v.Category(); !c.AtLeast(Bidirectional) {
		panic(fmt.Errorf("%w: backward iteration over a %s view", ErrCapability, c))
	}
	return func(yield func(T) bool) {
		begin := v.r.Begin()
		it := v.r.End().(BidirectionalIterator[T])
		for !it.Equal(begin) {
			it.Prev()
			if !yield(it.Get()) {
				return
			}
		}
	}
}

// Collect copies every element into a new slice.
func (v *View[T]) Collect() []T { return seq.Collect(v.All()) }

// CopyInto appends every element to dst and returns the extended slice.
func (v *View[T]) CopyInto(dst []T) []T { return seq.ToSlice(v.All(), dst) }

// Take copies at most n leading elements into a new slice.
func (v *View[T]) Take(n int) []T { return seq.Collect(seq.Take(v.All(), n)) }

// Each calls fn for every element.
func (v *View[T]) Each(fn func(T)) { seq.ForEach(v.All(), fn) }

// Count returns the number of elements. Positions are walked (or
// subtracted, for random-access views) without dereferencing, so mappings
// are not invoked. Counting consumes a single-pass source.
func (v *View[T]) Count() int { return Distance(v.r.Begin(), v.r.End()) }

// IsEmpty reports whether the view has no elements.
func (v *View[T]) IsEmpty() bool { return v.r.Begin().Equal(v.r.End()) }

// First returns the first element, or the zero value and false when the
// view is empty.
func (v *View[T]) First() (T, bool) {
	it := v.r.Begin()
	if it.Equal(v.r.End()) {
		var zero T
		return zero, false
	}
	return it.Get(), true
}

// ─────────────────────────────────────────────────────────────────────────────
// Capability-checked views
// ─────────────────────────────────────────────────────────────────────────────

// BidirectionalView is a view whose category was checked once, at
// construction, so its positions are statically typed.
type BidirectionalView[T any] struct {
	r Range[T]
}

// AsBidirectional returns a statically typed view over r, or an error
// wrapping [ErrCapability] when r is weaker than Bidirectional.
func AsBidirectional[T any](r Range[T]) (*BidirectionalView[T], error) {
	r = adopt(r)
	if c := CategoryOf(r); !c.AtLeast(Bidirectional) {
		return nil, fmt.Errorf("%w: have %s, need %s", ErrCapability, c, Bidirectional)
	}
	return &BidirectionalView[T]{r: r}, nil
}

// Begin returns a position at the first element.
func (v *BidirectionalView[T]) Begin() BidirectionalIterator[T] {
	return v.r.Begin().(BidirectionalIterator[T])
}

// End returns the past-the-end position.
func (v *BidirectionalView[T]) End() BidirectionalIterator[T] {
	return v.r.End().(BidirectionalIterator[T])
}

// View returns the checked range as a plain [View].
func (v *BidirectionalView[T]) View() *View[T] { return Wrap(v.r) }

// RandomAccessView is a view whose positions are statically typed as
// [RandomAccessIterator].
type RandomAccessView[T any] struct {
	r Range[T]
}

// AsRandomAccess returns a statically typed view over r, or an error
// wrapping [ErrCapability] when r is weaker than RandomAccess.
//
//	ra, err := ranges.AsRandomAccess[int](ranges.Map(vec, square))
//	if err != nil { ... }
//	third := ra.At(2)
func AsRandomAccess[T any](r Range[T]) (*RandomAccessView[T], error) {
	r = adopt(r)
	if c := CategoryOf(r); !c.AtLeast(RandomAccess) {
		return nil, fmt.Errorf("%w: have %s, need %s", ErrCapability, c, RandomAccess)
	}
	return &RandomAccessView[T]{r: r}, nil
}

// Begin returns a position at the first element.
func (v *RandomAccessView[T]) Begin() RandomAccessIterator[T] {
	return v.r.Begin().(RandomAccessIterator[T])
}

// End returns the past-the-end position.
func (v *RandomAccessView[T]) End() RandomAccessIterator[T] {
	return v.r.End().(RandomAccessIterator[T])
}

// Len returns the number of elements in constant time.
func (v *RandomAccessView[T]) Len() int { return v.End().Diff(v.Begin()) }

// At returns the i-th element without walking the sequence.
func (v *RandomAccessView[T]) At(i int) T { return v.Begin().At(i) }

// View returns the checked range as a plain [View].
func (v *RandomAccessView[T]) View() *View[T] { return Wrap(v.r) }
