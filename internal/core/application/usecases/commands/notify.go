package commands

import (
	"context"

	"reco/internal/core/domain/model/notification"
	"reco/internal/core/ports"
)

// notifyAfterCommit hands intents over once the transaction is durable. The
// notifier never fails the command.
func notifyAfterCommit(ctx context.Context, notifier ports.Notifier, intents []notification.Intent) {
	if notifier == nil || len(intents) == 0 {
		return
	}
	notifier.Notify(ctx, intents...)
}
