package ranges

import (
	"fmt"
	"sync"
)

// stageRegistry is the package-level, goroutine-safe store of named stages.
// Stages of every element type live in the same map; LookupStage restores
// the static type.
var stageRegistry struct {
	mu     sync.RWMutex
	stages map[string]any
}

func init() {
	stageRegistry.stages = make(map[string]any)
}

// RegisterStage stores s under name, replacing any stage already registered
// under it. The stage is also labelled with name. Safe to call from
// multiple goroutines.
//
//	ranges.RegisterStage("evens", ranges.Filter(ranges.FuncOf(func(n int) bool {
//	    return n%2 == 0
//	})))
//
//	evens, _ := ranges.PipeNamed[int, int](vec, "evens")
func RegisterStage[A, B any](name string, s Stage[A, B]) {
	stageRegistry.mu.Lock()
	defer stageRegistry.mu.Unlock()
	stageRegistry.stages[name] = s.Named(name)
}

// HasStage reports whether a stage is registered under name.
func HasStage(name string) bool {
	stageRegistry.mu.RLock()
	defer stageRegistry.mu.RUnlock()
	_, ok := stageRegistry.stages[name]
	return ok
}

// FlushStages removes every registered stage.
// Intended for use in tests.
func FlushStages() {
	stageRegistry.mu.Lock()
	defer stageRegistry.mu.Unlock()
	stageRegistry.stages = make(map[string]any)
}

// LookupStage returns the stage registered under name. It fails with
// [ErrStageNotFound] when nothing is registered and with [ErrStageType]
// when the stage maps between other element types.
func LookupStage[A, B any](name string) (Stage[A, B], error) {
	stageRegistry.mu.RLock()
	v, ok := stageRegistry.stages[name]
	stageRegistry.mu.RUnlock()
	if !ok {
		return Stage[A, B]{}, fmt.Errorf("%w: %q", ErrStageNotFound, name)
	}
	s, ok := v.(Stage[A, B])
	if !ok {
		return Stage[A, B]{}, fmt.Errorf("%w: %q is %T", ErrStageType, name, v)
	}
	return s, nil
}

// PipeNamed attaches the stage registered under name to r.
// It is a convenience wrapper around [LookupStage] and [Pipe].
func PipeNamed[A, B any](r Range[A], name string) (*View[B], error) {
	s, err := LookupStage[A, B](name)
	if err != nil {
		return nil, err
	}
	return Pipe(r, s), nil
}
