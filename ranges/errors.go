package ranges

import "errors"

// Sentinel errors used by the ranges package.
//
// Contract violations made by the programmer (invoking a nil callable,
// asking a view for a capability it does not have) panic with one of these
// values so callers can recover and test them with [errors.Is].
var (
	// ErrNilCallable is raised when a zero [Func] is invoked or used to
	// build a [Stage].
	ErrNilCallable = errors.New("ranges: callable holds no function")

	// ErrCapability is returned when a view does not offer the traversal
	// category an operation requires.
	ErrCapability = errors.New("ranges: insufficient iterator category")

	// ErrNotRanked is raised when [Ordering] is asked about a value that
	// was not part of the ordering.
	ErrNotRanked = errors.New("ranges: value is not part of the ordering")

	// ErrForeignPosition is raised when positional arithmetic is asked to
	// relate positions that do not belong to the same kind of sequence.
	ErrForeignPosition = errors.New("ranges: position belongs to a different sequence")

	// ErrStageNotFound is returned by [LookupStage] for an unregistered
	// name.
	ErrStageNotFound = errors.New("ranges: stage not found")

	// ErrStageType is returned by [LookupStage] when the registered stage
	// has different element types than the ones requested.
	ErrStageType = errors.New("ranges: stage has a different element type")
)
