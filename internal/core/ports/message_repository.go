package ports

import (
	"context"

	"reco/internal/core/domain/model/kernel"
	"reco/internal/core/domain/model/message"
)

// MessageRepository persists the donation chat.
type MessageRepository interface {
	Add(ctx context.Context, aggregate *message.Message) error

	// Participants returns the profiles that exchanged messages with the
	// donor about the donation, in no particular order.
	Participants(ctx context.Context, donationID, donorID kernel.UUID) ([]kernel.UUID, error)
}
