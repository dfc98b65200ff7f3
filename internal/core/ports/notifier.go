package ports

import (
	"context"
	"io"

	"reco/internal/core/domain/model/notification"
)

// Notifier delivers notification intents. It is best effort: failures are
// handled and logged by the implementation and never reach the caller.
type Notifier interface {
	Notify(ctx context.Context, intents ...notification.Intent)
}

// FileStorage stores uploaded proof images, signatures and certificates.
type FileStorage interface {
	// Upload stores body under folder and returns the object reference.
	Upload(ctx context.Context, folder, filename, contentType string, body io.Reader) (string, error)
}
