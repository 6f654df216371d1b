// Package rangelog traces elements flowing through a ranges chain with
// zerolog.
//
// [Trace] returns a pass-through transform stage: attach it anywhere in a
// chain and every dereference at that point emits one structured event.
//
//	trace, err := rangelog.Trace[int](log.Logger, rangelog.Config{Stage: "squared"})
//	if err != nil { ... }
//	out := ranges.Pipe(ranges.Map(vec, square), trace)
//
// [FromSettings] reads a [Config] out of a decoded YAML or JSON document.
//
// Because transform stages run on every dereference, the events count
// dereferences, not distinct elements; dereferencing the same position
// twice logs twice.
package rangelog
