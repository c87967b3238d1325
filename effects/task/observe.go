package task

import (
	"context"
	"time"

	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"
)

// Observed wraps a task with structured logging around its lifecycle: one
// entry when a fork starts and one when it settles, with the elapsed span.
// Entries carry the settlement guard's fork id, so overlapping forks of the
// same task stay distinguishable and line up with any guard panic.
func Observed[A any](logger *zap.Logger, name string, t Task[A]) Task[A] {
	return New(func(ctx context.Context, reject func(error), resolve func(A)) {
		forkID := forkIDFrom(ctx)
		started := time.Now()

		logger.Debug("task forked",
			zap.String("task", name),
			zap.String("fork_id", forkID),
		)

		t.fork(ctx,
			func(err error) {
				span := timespan.BetweenTimes(started, time.Now())
				logger.Debug("task rejected",
					zap.String("task", name),
					zap.String("fork_id", forkID),
					zap.Duration("elapsed", span.Duration()),
					zap.Error(err),
				)
				reject(err)
			},
			func(value A) {
				span := timespan.BetweenTimes(started, time.Now())
				logger.Debug("task resolved",
					zap.String("task", name),
					zap.String("fork_id", forkID),
					zap.Duration("elapsed", span.Duration()),
				)
				resolve(value)
			},
		)
	})
}
