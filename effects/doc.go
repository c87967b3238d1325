// Package effects provides a family of effect containers for Go and the
// transformations between them.
//
// # Containers
//
// Each subpackage owns one container kind:
//   - identity: a bare value, no effect at all
//   - maybe: a value that might be absent
//   - either: a value or a failure payload describing what went wrong
//   - io: a deferred synchronous computation
//   - task: a deferred asynchronous computation with exactly-once settlement
//
// All kinds share one operation vocabulary. Of lifts a plain value in, Map
// rewrites the value inside without leaving the container, Chain sequences
// a dependent step that is itself effectful, Ap applies a wrapped function
// to a wrapped value, and Sequence and Traverse turn a collection of
// containers inside out. Code written against this vocabulary reads the
// same whether the effect is absence, failure, or asynchrony.
//
// # Transformations
//
// This package holds the natural transformations that move a value between
// container kinds without inventing or dropping information along the way.
// They only repackage structure, so they commute with Map: transforming
// and then mapping gives the same result as mapping and then transforming.
// Transformations into task never fork anything; they build a task that
// settles with what the source container already held.
//
// Example:
//
//	func lookup(id string) maybe.Maybe[User] { ... }
//
//	func handler(ctx context.Context) (User, error) {
//	    t := effects.MaybeToTask(lookup("42"), ErrUserNotFound)
//	    return t.Run(ctx)
//	}
package effects
