package ranges_test

import (
	"github.com/hasbyte1/go-lazy-ranges/collections"
	"github.com/hasbyte1/go-lazy-ranges/ranges"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

func ints(ns ...int) collections.Vector[int] { return collections.New(ns...) }

func oneToSix() collections.Vector[int] { return ints(1, 2, 3, 4, 5, 6) }

func plusOne(n int) int { return n + 1 }

func square(n int) int { return n * n }

func isEven(n int) bool { return n%2 == 0 }

// recoverErr runs fn and returns the error it panicked with, if any.
func recoverErr(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	fn()
	return nil
}

// walk collects the elements between two positions without using View.
func walk[T any](begin, end ranges.Iterator[T]) []T {
	var out []T
	for it := begin.Clone(); !it.Equal(end); it.Next() {
		out = append(out, it.Get())
	}
	return out
}

// record is the element type for method projection tests.
type record struct {
	val int
}

func (r record) next() record { return record{val: r.val + 1} }

func (r record) atLeast3() bool { return r.val >= 3 }

func (r *record) bump() *record {
	r.val += 10
	return r
}

// counter is a stateful function object.
type counter struct {
	calls int
}

func (c *counter) Call(n int) int {
	c.calls++
	return n
}
