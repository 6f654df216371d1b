package ranges

import "fmt"

// TransformRange is a lazy view whose elements are fn(element) for every
// element of the wrapped range, in the same order and with the same count.
//
// Nothing is computed up front: the mapping runs each time a position is
// dereferenced, and again on every repeated dereference of the same
// position. Moving a position is a pure pass-through to the wrapped
// position, so the view exposes exactly the wrapped range's category.
type TransformRange[A, B any] struct {
	base Range[A]
	fn   Func[A, B]
	cat  Category
}

// NewTransformRange wraps r with the mapping fn. It panics with
// [ErrNilCallable] if fn holds no function.
func NewTransformRange[A, B any](r Range[A], fn Func[A, B]) *TransformRange[A, B] {
	if fn.IsZero() {
		panic(ErrNilCallable)
	}
	base := adopt(r)
	return &TransformRange[A, B]{base: base, fn: fn, cat: CategoryOf(base)}
}

// Begin returns a position at the first mapped element.
func (t *TransformRange[A, B]) Begin() Iterator[B] { return t.position(t.base.Begin()) }

// End returns the past-the-end position.
func (t *TransformRange[A, B]) End() Iterator[B] { return t.position(t.base.End()) }

// Category returns the wrapped range's category.
func (t *TransformRange[A, B]) Category() Category { return t.cat }

// Base returns the wrapped range.
func (t *TransformRange[A, B]) Base() Range[A] { return t.base }

func (*TransformRange[A, B]) adopted() {}

// position picks the position type whose method set matches the category.
func (t *TransformRange[A, B]) position(it Iterator[A]) Iterator[B] {
	p := transformIter[A, B]{seq: t, it: it}
	switch t.cat {
	case RandomAccess:
		mustImplement[RandomAccessIterator[A]](it, RandomAccess)
		return &transformRandomIter[A, B]{transformBidiIter[A, B]{p}}
	case Bidirectional:
		mustImplement[BidirectionalIterator[A]](it, Bidirectional)
		return &transformBidiIter[A, B]{p}
	default:
		return &p
	}
}

// mustImplement guards against sources whose reported category is stronger
// than the methods their positions actually provide.
func mustImplement[I any](it any, cat Category) {
	if _, ok := it.(I); !ok {
		panic(fmt.Errorf("%w: %T reports %s but lacks its methods", ErrCapability, it, cat))
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Positions
// ─────────────────────────────────────────────────────────────────────────────

type transformIter[A, B any] struct {
	seq *TransformRange[A, B]
	it  Iterator[A]
}

func (p *transformIter[A, B]) Get() B { return p.seq.fn.Invoke(p.it.Get()) }
func (p *transformIter[A, B]) Next() { p.it.Next() }
func (p *transformIter[A, B]) Category() Category { return p.seq.cat }
func (p *transformIter[A, B]) base() Iterator[A] { return p.it }

func (p *transformIter[A, B]) Equal(other Iterator[B]) bool {
	o, ok := other.(based[A])
	return ok && p.it.Equal(o.base())
}

func (p *transformIter[A, B]) Clone() Iterator[B] {
	return &transformIter[A, B]{seq: p.seq, it: p.it.Clone()}
}

type transformBidiIter[A, B any] struct {
	transformIter[A, B]
}

func (p *transformBidiIter[A, B]) Prev() { p.it.(BidirectionalIterator[A]).Prev() }

func (p *transformBidiIter[A, B]) Clone() Iterator[B] {
	return &transformBidiIter[A, B]{transformIter[A, B]{seq: p.seq, it: p.it.Clone()}}
}

type transformRandomIter[A, B any] struct {
	transformBidiIter[A, B]
}

func (p *transformRandomIter[A, B]) inner() RandomAccessIterator[A] {
	return p.it.(RandomAccessIterator[A])
}

func (p *transformRandomIter[A, B]) Jump(n int) { p.inner().Jump(n) }
func (p *transformRandomIter[A, B]) At(n int) B { return p.seq.fn.Invoke(p.inner().At(n)) }

func (p *transformRandomIter[A, B]) Diff(other Iterator[B]) int {
	return p.inner().Diff(baseOf[A](other))
}

func (p *transformRandomIter[A, B]) Compare(other Iterator[B]) int {
	return p.inner().Compare(baseOf[A](other))
}

func (p *transformRandomIter[A, B]) Clone() Iterator[B] {
	return &transformRandomIter[A, B]{transformBidiIter[A, B]{transformIter[A, B]{seq: p.seq, it: p.it.Clone()}}}
}

// based is implemented by adaptor positions; base exposes the wrapped
// position.
type based[A any] interface {
	base() Iterator[A]
}

func baseOf[A, B any](other Iterator[B]) Iterator[A] {
	o, ok := other.(based[A])
	if !ok {
		panic(fmt.Errorf("%w: %T", ErrForeignPosition, other))
	}
	return o.base()
}
