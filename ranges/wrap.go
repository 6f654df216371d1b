package ranges

// Own wraps r by value. The wrapper holds its own copy of r, so the view's
// lifetime is independent of the caller's variable; the caller should treat
// r as handed over and stop mutating it.
//
//	v := collections.New(1, 2, 3)
//	owned := ranges.Own[int](v)
func Own[T any, R Range[T]](r R) Range[T] {
	return &owned[T, R]{r: r}
}

// Borrow wraps a pointer to r without copying it. Every call is forwarded
// to *r, so later changes to r are visible through the view. The caller
// guarantees r outlives every view and position derived from the wrapper;
// this is not checked.
//
//	v := collections.New(1, 2, 3)
//	borrowed := ranges.Borrow[int](&v)
func Borrow[T any, R Range[T]](r *R) Range[T] {
	return &borrowed[T, R]{r: r}
}

type owned[T any, R Range[T]] struct {
	r R
}

func (o *owned[T, R]) Begin() Iterator[T] { return o.r.Begin() }
func (o *owned[T, R]) End() Iterator[T] { return o.r.End() }
func (o *owned[T, R]) Category() Category { return CategoryOf[T](o.r) }

type borrowed[T any, R Range[T]] struct {
	r *R
}

func (b *borrowed[T, R]) Begin() Iterator[T] { return (*b.r).Begin() }
func (b *borrowed[T, R]) End() Iterator[T] { return (*b.r).End() }
func (b *borrowed[T, R]) Category() Category { return CategoryOf[T](*b.r) }

// adopted is implemented by the ranges this package builds itself: the
// ownership wrappers and the adaptors. adopt passes them through as they
// are.
type adopted interface {
	adopted()
}

func (*owned[T, R]) adopted() {}
func (*borrowed[T, R]) adopted() {}

// adopt is the wrapper every adaptor applies to its input. Views are
// unwrapped to the range they carry, ranges built by this package are kept,
// and any other source goes through [Own]. Own keeps the interface value it
// is given, so a value source is copied and a pointer source stays
// borrowed.
func adopt[T any](r Range[T]) Range[T] {
	switch v := r.(type) {
	case *View[T]:
		return v.r
	case adopted:
		return r
	default:
		return Own[T, Range[T]](r)
	}
}
