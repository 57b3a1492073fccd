package commands

import (
	"context"
	"log/slog"
	"time"

	"pedidos/internal/core/ports"
)

// publishTimeout bounds a single notification publish attempt.
const publishTimeout = 10 * time.Second

// publishEvent emits a lifecycle event on a best-effort basis. Publish
// failures are logged and swallowed so they never fail or roll back the
// order mutation that triggered them.
func publishEvent(publisher ports.NotificationPublisher, logger *slog.Logger, event ports.Event) {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	if err := publisher.Publish(ctx, event); err != nil {
		logger.Warn("failed to publish lifecycle event",
			"kind", event.Kind(),
			"error", err,
		)
	}
}
