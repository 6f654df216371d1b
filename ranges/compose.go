package ranges

// StageKind tells transform stages, filter stages and composed chains apart.
type StageKind int

const (
	// KindTransform maps every element.
	KindTransform StageKind = iota + 1
	// KindFilter keeps the elements satisfying a predicate.
	KindFilter
	// KindChain is two or more stages composed with [Then].
	KindChain
)

// String implements [fmt.Stringer].
func (k StageKind) String() string {
	switch k {
	case KindTransform:
		return "transform"
	case KindFilter:
		return "filter"
	case KindChain:
		return "chain"
	default:
		return "none"
	}
}

// Stage is a reusable adaptor recipe: it holds a normalized callable and,
// when attached to a range with [Pipe], wraps that range in the matching
// adaptor. A Stage value can be attached to any number of ranges.
//
//	plusOne := ranges.Transform(ranges.FuncOf(func(n int) int { return n + 1 }))
//	atLeast3 := ranges.Filter(ranges.FuncOf(func(n int) bool { return n >= 3 }))
//
//	v := ranges.Pipe(ranges.Pipe(vec, plusOne), atLeast3) // → 3 4 5 6 7
type Stage[A, B any] struct {
	name  string
	kind  StageKind
	apply func(Range[A]) Range[B]
}

// Transform returns a stage that maps every element through fn. It panics
// with [ErrNilCallable] if fn holds no function.
func Transform[A, B any](fn Func[A, B]) Stage[A, B] {
	if fn.IsZero() {
		panic(ErrNilCallable)
	}
	return Stage[A, B]{
		kind: KindTransform,
		apply: func(r Range[A]) Range[B] {
			return NewTransformRange(r, fn)
		},
	}
}

// Filter returns a stage that keeps the elements satisfying pred. It panics
// with [ErrNilCallable] if pred holds no function.
func Filter[T any](pred Func[T, bool]) Stage[T, T] {
	if pred.IsZero() {
		panic(ErrNilCallable)
	}
	return Stage[T, T]{
		kind: KindFilter,
		apply: func(r Range[T]) Range[T] {
			return NewFilterRange(r, pred)
		},
	}
}

// Then composes two stages: attaching the result is the same as attaching
// first and then second.
func Then[A, B, C any](first Stage[A, B], second Stage[B, C]) Stage[A, C] {
	if first.apply == nil || second.apply == nil {
		panic(ErrNilCallable)
	}
	name := first.name
	if second.name != "" {
		if name != "" {
			name += "|"
		}
		name += second.name
	}
	return Stage[A, C]{
		name: name,
		kind: KindChain,
		apply: func(r Range[A]) Range[C] {
			return second.apply(first.apply(r))
		},
	}
}

// Named returns a copy of s carrying name. Names label stages in the
// registry and in traces; they do not affect behaviour.
func (s Stage[A, B]) Named(name string) Stage[A, B] {
	s.name = name
	return s
}

// Name returns the stage label, or "" if it was never named.
func (s Stage[A, B]) Name() string { return s.name }

// Kind reports what the stage does.
func (s Stage[A, B]) Kind() StageKind { return s.kind }

// Apply attaches s to r. It is the method form of [Pipe].
func (s Stage[A, B]) Apply(r Range[A]) *View[B] {
	if s.apply == nil {
		panic(ErrNilCallable)
	}
	return Wrap(s.apply(adopt(r)))
}

// ─────────────────────────────────────────────────────────────────────────────
// Composition entry points
// ─────────────────────────────────────────────────────────────────────────────

// Pipe attaches one stage to r and returns the resulting view. The result
// is a valid input to the next Pipe, so chains nest arbitrarily:
//
//	out := ranges.Pipe(ranges.Pipe(ranges.Pipe(vec, square), plusOne), multipleOf5)
func Pipe[A, B any](r Range[A], s Stage[A, B]) *View[B] {
	return s.Apply(r)
}

// Map is shorthand for Pipe(r, Transform(FuncOf(fn))).
//
//	upper := ranges.Map(words, strings.ToUpper)
func Map[A, B any](r Range[A], fn func(A) B) *View[B] {
	return Pipe(r, Transform(FuncOf(fn)))
}

// Where is shorthand for Pipe(r, Filter(FuncOf(pred))).
func Where[T any](r Range[T], pred func(T) bool) *View[T] {
	return Pipe(r, Filter(FuncOf(pred)))
}
