package collections

import (
	"bufio"
	"io"
	"iter"

	"github.com/hasbyte1/go-lazy-ranges/ranges"
)

// Stream is a single-pass sequence pulled from an [iter.Seq] or a reader.
// Every position handed out by a Stream shares one cursor: advancing any of
// them consumes the element for all. Two positions compare equal when both
// are exhausted or both are not.
//
// Elements are pulled lazily, on the first dereference or comparison after
// an advance. A Stream built from an iter.Seq holds a pull handle until the
// sequence is exhausted; call Close to release it early.
type Stream[T any] struct {
	st *streamState[T]
}

type streamState[T any] struct {
	next   func() (T, bool)
	stop   func()
	cur    T
	primed bool
	done   bool
	closed bool
	err    error
}

// FromSeq creates a Stream over seq.
func FromSeq[T any](seq iter.Seq[T]) *Stream[T] {
	next, stop := iter.Pull(seq)
	return &Stream[T]{st: &streamState[T]{next: next, stop: stop}}
}

// Scan creates a Stream of tokens read from r with split, each converted by
// parse. Reading stops at the first parse or read error, which is then
// reported by [Stream.Err].
//
//	nums := collections.Scan(r, bufio.ScanWords, strconv.Atoi)
func Scan[T any](r io.Reader, split bufio.SplitFunc, parse func(string) (T, error)) *Stream[T] {
	sc := bufio.NewScanner(r)
	sc.Split(split)
	var s *Stream[T]
	s = FromSeq(func(yield func(T) bool) {
		for sc.Scan() {
			v, err := parse(sc.Text())
			if err != nil {
				s.st.err = err
				return
			}
			if !yield(v) {
				return
			}
		}
		s.st.err = sc.Err()
	})
	return s
}

// Words creates a Stream of whitespace-separated words read from r.
func Words(r io.Reader) *Stream[string] {
	return Scan(r, bufio.ScanWords, func(s string) (string, error) { return s, nil })
}

// Runes creates a Stream of the UTF-8 runes read from r, whitespace
// included.
func Runes(r io.Reader) *Stream[rune] {
	return Scan(r, bufio.ScanRunes, func(s string) (rune, error) { return []rune(s)[0], nil })
}

// Err returns the first error met while reading, if any.
func (s *Stream[T]) Err() error { return s.st.err }

// Close releases the underlying pull handle. Positions compare as
// exhausted afterwards. Closing twice returns [ErrStreamClosed].
func (s *Stream[T]) Close() error {
	if s.st.closed {
		return ErrStreamClosed
	}
	s.st.closed = true
	s.st.finish()
	return nil
}

// Begin returns a position at the current element.
func (s *Stream[T]) Begin() ranges.Iterator[T] { return &streamIter[T]{st: s.st} }

// End returns the exhausted position.
func (s *Stream[T]) End() ranges.Iterator[T] { return &streamIter[T]{st: s.st, end: true} }

// Category always returns [ranges.SinglePass].
func (s *Stream[T]) Category() ranges.Category { return ranges.SinglePass }

func (st *streamState[T]) prime() {
	if st.primed || st.done {
		return
	}
	v, ok := st.next()
	if !ok {
		st.finish()
		return
	}
	st.cur = v
	st.primed = true
}

func (st *streamState[T]) finish() {
	if !st.done {
		st.done = true
		st.stop()
	}
	var zero T
	st.cur = zero
	st.primed = false
}

type streamIter[T any] struct {
	st  *streamState[T]
	end bool
}

func (it *streamIter[T]) exhausted() bool {
	if it.end {
		return true
	}
	it.st.prime()
	return it.st.done
}

func (it *streamIter[T]) Get() T {
	it.st.prime()
	return it.st.cur
}

func (it *streamIter[T]) Next() {
	it.st.prime()
	it.st.primed = false
}

func (it *streamIter[T]) Equal(other ranges.Iterator[T]) bool {
	o, ok := other.(*streamIter[T])
	return ok && it.exhausted() == o.exhausted()
}

func (it *streamIter[T]) Clone() ranges.Iterator[T] { return &streamIter[T]{st: it.st, end: it.end} }
func (it *streamIter[T]) Category() ranges.Category { return ranges.SinglePass }
