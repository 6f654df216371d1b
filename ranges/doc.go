// Package ranges provides lazy, composable views over sequences: attach
// transform and filter stages to an existing sequence and iterate the
// result without building an intermediate container.
//
// # Overview
//
// A sequence is any [Range][T]: something that hands out a beginning and an
// ending [Iterator][T]. Attaching a stage wraps the sequence in an adaptor
// whose positions delegate to the wrapped positions and apply the stage only
// when the caller dereferences or advances:
//
//	vec := collections.New(1, 2, 3, 4, 5, 6)
//
//	out := ranges.Where(ranges.Map(vec, func(n int) int { return n + 1 }),
//	    func(n int) bool { return n >= 3 })
//
//	out.Collect() // → [3 4 5 6 7]
//
// Nothing is cached: a mapping runs on every dereference, a predicate on
// every step. Callables may have side effects and will observe each call.
//
// # Traversal categories
//
// Every position has a [Category]:
//
//	SinglePass < MultiPass < Bidirectional < RandomAccess
//
// Transform stages keep the wrapped category exactly; filter stages cap it
// at Bidirectional. The category decides the method set of the positions an
// adaptor hands out, so a transformed random-access sequence yields
// [RandomAccessIterator] positions while a filtered one never does. Use
// [AsBidirectional] and [AsRandomAccess] to check once and get statically
// typed positions:
//
//	ra, err := ranges.AsRandomAccess[int](ranges.Map(vec, square))
//	if err != nil {
//	    // the chain contains a filter, or the source is a list or stream
//	}
//	ra.At(3)
//
// # Stages and composition
//
// [Transform] and [Filter] build reusable [Stage] values from a normalized
// [Func]; [Pipe] attaches a stage to a sequence and [Then] composes stages.
// [Map] and [Where] are shorthands taking plain functions. Type-changing
// operations are package-level functions because Go methods cannot
// introduce type parameters; same-type operations are also available as
// [View] methods.
//
// # Callables
//
// [Func] accepts three shapes and invokes them the same way:
//
//	ranges.FuncOf(strings.ToUpper)            // plain function
//	ranges.Object[int, bool](above{min: 3})   // value with a Call method
//	ranges.Method(Record.Next)                // method invoked on each element
//
// # Ownership
//
// Adaptors never copy elements. [Own] stores a sequence value, [Borrow]
// stores a pointer to one; a borrowed sequence must outlive every view and
// position derived from it.
//
// # Concurrency
//
// Views and positions are not safe for concurrent use, and the underlying
// sequence must not be modified while positions over it are in use. The
// stage registry ([RegisterStage]) is the only goroutine-safe part of the
// package.
package ranges
