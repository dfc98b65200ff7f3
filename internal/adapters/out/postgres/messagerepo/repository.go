package messagerepo

import (
	"context"
	"errors"

	"reco/internal/adapters/out/postgres/pgutil"
	"reco/internal/core/domain/model/kernel"
	"reco/internal/core/domain/model/message"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormMessageRepository implements ports.MessageRepository. Messages are
// append-only, so nothing is ever locked.
type GormMessageRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormMessageRepository(db *gorm.DB, tracker aggregateTracker) *GormMessageRepository {
	return &GormMessageRepository{db: db, tracker: tracker}
}

func (r *GormMessageRepository) Add(ctx context.Context, aggregate *message.Message) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgutil.WriteError("message", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormMessageRepository) Participants(ctx context.Context, donationID, donorID kernel.UUID) ([]kernel.UUID, error) {
	if err := errors.Join(donationID.Validate(), donorID.Validate()); err != nil {
		return nil, err
	}

	var rows []struct{ ID uuid.UUID }
	err := r.db.WithContext(ctx).Raw(`
		SELECT sender_id AS id FROM messages WHERE donation_id = ? AND recipient_id = ?
		UNION
		SELECT recipient_id AS id FROM messages WHERE donation_id = ? AND sender_id = ?`,
		donationID.Bytes(), donorID.Bytes(), donationID.Bytes(), donorID.Bytes(),
	).Scan(&ids).Error
	if err != nil {
		return nil, err
	}

	participants := make([]kernel.UUID, 0, len(rows))
	for _, row := range rows {
		p, err := kernel.UUIDFromGoogle(row.ID)
		if err != nil {
			return nil, err
		}
		participants = append(participants, p)
	}
	return participants, nil
}
