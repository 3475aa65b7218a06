package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/citywatch/alert_dispatch_system/internal/notify"
)

// publishAsync delivers an event on a detached goroutine with its own
// deadline so a slow or broken subscriber can never add latency or failure
// to the calling pipeline. Publish errors are logged and swallowed.
func publishAsync(logger *logrus.Logger, publisher notify.Publisher, timeout time.Duration, event notify.Event) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := publisher.Publish(ctx, event); err != nil {
			logger.WithError(err).WithFields(logrus.Fields{
				"event":     event.Name,
				"partition": event.Partition,
			}).Error("Failed to publish notification event")
		}
	}()
}
