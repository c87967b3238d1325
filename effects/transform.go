package effects

import (
	"context"

	"github.com/gazm81/mostly-adequate-guide/effects/either"
	"github.com/gazm81/mostly-adequate-guide/effects/identity"
	"github.com/gazm81/mostly-adequate-guide/effects/io"
	"github.com/gazm81/mostly-adequate-guide/effects/maybe"
	"github.com/gazm81/mostly-adequate-guide/effects/task"
)

// IdentityToMaybe regards a bare value as a present optional.
func IdentityToMaybe[A any](i identity.Identity[A]) maybe.Maybe[A] {
	return maybe.Of(i.Get())
}

// IdentityToTask regards a bare value as an already-successful task.
func IdentityToTask[A any](i identity.Identity[A]) task.Task[A] {
	return task.Of(i.Get())
}

// MaybeToEither upgrades absence into the given failure payload. A present
// value carries over unchanged.
func MaybeToEither[E, A any](m maybe.Maybe[A], onNothing E) either.Either[E, A] {
	return maybe.Match(m,
		func() either.Either[E, A] { return either.Left[E, A](onNothing) },
		either.Right[E, A],
	)
}

// EitherToMaybe forgets the failure payload, keeping only whether a value
// is there.
func EitherToMaybe[E, A any](e either.Either[E, A]) maybe.Maybe[A] {
	return either.Match(e,
		func(E) maybe.Maybe[A] { return maybe.None[A]() },
		maybe.Of[A],
	)
}

// MaybeToTask turns absence into a task rejected with the given error and a
// present value into an immediate resolution.
func MaybeToTask[A any](m maybe.Maybe[A], onNothing error) task.Task[A] {
	return maybe.Match(m,
		func() task.Task[A] { return task.Rejected[A](onNothing) },
		task.Of[A],
	)
}

// EitherToTask turns a Left into a rejection and a Right into an immediate
// resolution. The failure type must already be an error; translate it with
// either.MapLeft first when it is not.
func EitherToTask[E error, A any](e either.Either[E, A]) task.Task[A] {
	return either.Match(e,
		func(err E) task.Task[A] { return task.Rejected[A](err) },
		task.Of[A],
	)
}

// IOToTask regards a deferred synchronous computation as a task that cannot
// reject. The computation stays deferred and is performed once per fork.
func IOToTask[A any](i io.IO[A]) task.Task[A] {
	return task.New(func(_ context.Context, _ func(error), resolve func(A)) {
		resolve(i.Perform())
	})
}
