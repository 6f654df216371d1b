package collections

import "errors"

// Sentinel errors returned by the sequence types in this package.
var (
	// ErrEmptyCollection is returned when an operation requires at least one
	// element but the sequence is empty.
	ErrEmptyCollection = errors.New("collections: operation on empty collection")

	// ErrIndexOutOfRange is returned when an index is outside [0, Len()-1].
	ErrIndexOutOfRange = errors.New("collections: index out of range")

	// ErrInvalidRange is returned by NewIota when end comes before start.
	ErrInvalidRange = errors.New("collections: range end precedes its start")

	// ErrStreamClosed is returned when a Stream is closed twice.
	ErrStreamClosed = errors.New("collections: stream already closed")
)
