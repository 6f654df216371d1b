package ranges

// FilterRange is a lazy view over the elements of the wrapped range for
// which the predicate holds, in their original relative order.
//
// Positions skip failing elements as soon as they are created and on every
// step, re-evaluating the predicate each time. Filtering caps the category
// at Bidirectional: the number of surviving elements between two raw
// positions is not known without walking them, so Jump, At and Diff are
// never offered.
type FilterRange[T any] struct {
	base Range[T]
	pred Func[T, bool]
	cat  Category
}

// NewFilterRange wraps r with the predicate pred. It panics with
// [ErrNilCallable] if pred holds no function.
func NewFilterRange[T any](r Range[T], pred Func[T, bool]) *FilterRange[T] {
	if pred.IsZero() {
		panic(ErrNilCallable)
	}
	base := adopt(r)
	return &FilterRange[T]{
		base: base,
		pred: pred,
		cat:  MinCategory(CategoryOf(base), Bidirectional),
	}
}

// Begin returns a position at the first element satisfying the predicate,
// or the end position when there is none.
func (f *FilterRange[T]) Begin() Iterator[T] {
	begin := f.base.Begin()
	p := filterIter[T]{seq: f, it: begin, begin: begin.Clone()}
	p.seekForward()
	return f.position(p)
}

// End returns the past-the-end position.
func (f *FilterRange[T]) End() Iterator[T] {
	end := f.base.End()
	return f.position(filterIter[T]{seq: f, it: end, end: end.Clone()})
}

// Category returns MinCategory(wrapped category, Bidirectional).
func (f *FilterRange[T]) Category() Category { return f.cat }

// Base returns the wrapped range.
func (f *FilterRange[T]) Base() Range[T] { return f.base }

func (*FilterRange[T]) adopted() {}

// position picks the position type whose method set matches the category.
func (f *FilterRange[T]) position(p filterIter[T]) Iterator[T] {
	if f.cat == Bidirectional {
		mustImplement[BidirectionalIterator[T]](p.it, Bidirectional)
		return &filterBidiIter[T]{p}
	}
	return &p
}

// ─────────────────────────────────────────────────────────────────────────────
// Positions
// ─────────────────────────────────────────────────────────────────────────────

type filterIter[T any] struct {
	seq *FilterRange[T]
	it  Iterator[T]

	// Wrapped bounds, fetched on first use. Building a bound may itself
	// seek (the wrapped range can be another filter), so each position
	// does it at most once. Bounds are only compared, never moved, so
	// clones share them.
	begin, end Iterator[T]
}

func (p *filterIter[T]) Get() T { return p.it.Get() }
func (p *filterIter[T]) Category() Category { return p.seq.cat }
func (p *filterIter[T]) base() Iterator[T] { return p.it }

// Next steps past the current element and seeks the next match.
func (p *filterIter[T]) Next() {
	p.it.Next()
	p.seekForward()
}

func (p *filterIter[T]) Equal(other Iterator[T]) bool {
	o, ok := other.(based[T])
	return ok && p.it.Equal(o.base())
}

func (p *filterIter[T]) Clone() Iterator[T] {
	c := *p
	c.it = p.it.Clone()
	return &c
}

func (p *filterIter[T]) baseBegin() Iterator[T] {
	if p.begin == nil {
		p.begin = p.seq.base.Begin()
	}
	return p.begin
}

func (p *filterIter[T]) baseEnd() Iterator[T] {
	if p.end == nil {
		p.end = p.seq.base.End()
	}
	return p.end
}

// seekForward stops on the first matching element at or after the current
// position, or at the end.
func (p *filterIter[T]) seekForward() {
	end := p.baseEnd()
	for !p.it.Equal(end) && !p.seq.pred.Invoke(p.it.Get()) {
		p.it.Next()
	}
}

type filterBidiIter[T any] struct {
	filterIter[T]
}

// Prev steps back to the previous matching element. The search stops at
// the wrapped range's begin and never moves before it; Prev on the begin
// itself does nothing. Retreating from the first match is a contract
// violation that leaves the position on the wrapped begin.
func (p *filterBidiIter[T]) Prev() {
	bi := p.it.(BidirectionalIterator[T])
	begin := p.baseBegin()
	if p.it.Equal(begin) {
		return
	}
	bi.Prev()
	for !p.it.Equal(begin) && !p.seq.pred.Invoke(p.it.Get()) {
		bi.Prev()
	}
}

func (p *filterBidiIter[T]) Clone() Iterator[T] {
	c := *p
	c.it = p.it.Clone()
	return &c
}
