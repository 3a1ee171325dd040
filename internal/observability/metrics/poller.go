package metrics

import (
	"context"
	"time"
)

type pollerFunction = func(ctx context.Context) error

// RecordPollerDuration wraps a poll method so every run is observed under
// the given poller type.
func RecordPollerDuration(typ string, f pollerFunction) pollerFunction {
	return func(ctx context.Context) error {
		startTime := time.Now()
		err := f(ctx)

		status := Success
		if err != nil {
			status = Error
		}
		pollerDurationHistogram.WithLabelValues(typ, status.String()).Observe(time.Since(startTime).Seconds())

		return err
	}
}
