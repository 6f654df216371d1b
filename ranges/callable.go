package ranges

import "fmt"

// Callable is the single calling convention adaptors use for mappings and
// predicates.
type Callable[A, R any] interface {
	Invoke(arg A) R
}

// Caller is a function object: any value with a Call method. Stateful
// callers (counters, accumulators) should be passed by pointer.
type Caller[A, R any] interface {
	Call(arg A) R
}

// Shape identifies which kind of callable a [Func] was built from.
type Shape int

const (
	// ShapeNone is the shape of the zero Func.
	ShapeNone Shape = iota
	// ShapeObject is a function object (see [Object]).
	ShapeObject
	// ShapeFunc is a plain function value (see [FuncOf]).
	ShapeFunc
	// ShapeMethod is a method expression invoked on its argument (see [Method]).
	ShapeMethod
)

// String implements [fmt.Stringer].
func (s Shape) String() string {
	switch s {
	case ShapeNone:
		return "none"
	case ShapeObject:
		return "object"
	case ShapeFunc:
		return "func"
	case ShapeMethod:
		return "method"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// Func normalizes the three callable shapes behind [Callable]. The shape is
// fixed when the Func is built; invoking never inspects it.
//
// The zero Func holds no function. Invoking it panics with
// [ErrNilCallable], and stages refuse to be built from it.
type Func[A, R any] struct {
	c     Callable[A, R]
	shape Shape
}

// FuncOf normalizes a plain function value.
//
//	upper := ranges.FuncOf(strings.ToUpper)
func FuncOf[A, R any](fn func(A) R) Func[A, R] {
	if fn == nil {
		return Func[A, R]{}
	}
	return Func[A, R]{c: function[A, R](fn), shape: ShapeFunc}
}

// Object normalizes a function object. The object is stored by value and
// travels with every copy of the Func.
//
//	type above struct{ min int }
//	func (a above) Call(n int) bool { return n > a.min }
//
//	pred := ranges.Object[int, bool](above{min: 3})
func Object[A, R any, F Caller[A, R]](obj F) Func[A, R] {
	return Func[A, R]{c: object[A, R, F]{obj: obj}, shape: ShapeObject}
}

// Method normalizes a method expression: the argument becomes the receiver.
// This enables projections such as "map each record to record.Next()".
//
//	next := ranges.Method(Record.Next)      // value receiver
//	big := ranges.Method((*Record).IsLarge) // pointer receiver, elements are *Record
func Method[A, R any](m func(recv A) R) Func[A, R] {
	if m == nil {
		return Func[A, R]{}
	}
	return Func[A, R]{c: method[A, R]{m: m}, shape: ShapeMethod}
}

// Invoke calls the normalized function with arg.
func (f Func[A, R]) Invoke(arg A) R {
	if f.c == nil {
		panic(ErrNilCallable)
	}
	return f.c.Invoke(arg)
}

// Shape reports which callable shape f was built from.
func (f Func[A, R]) Shape() Shape { return f.shape }

// IsZero reports whether f holds no function.
func (f Func[A, R]) IsZero() bool { return f.c == nil }

type function[A, R any] func(A) R

func (fn function[A, R]) Invoke(arg A) R { return fn(arg) }

type object[A, R any, F Caller[A, R]] struct {
	obj F
}

func (o object[A, R, F]) Invoke(arg A) R { return o.obj.Call(arg) }

type method[A, R any] struct {
	m func(A) R
}

func (m method[A, R]) Invoke(recv A) R { return m.m(recv) }
