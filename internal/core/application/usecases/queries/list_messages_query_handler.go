package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"reco/internal/core/domain/model/donationrequest"
	"reco/internal/core/domain/model/kernel"
	"reco/internal/core/domain/services"
	"reco/internal/pkg/errs"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListMessagesQueryHandler struct {
	db       *gorm.DB
	workflow services.ChatWorkflow
}

func NewListMessagesQueryHandler(db *gorm.DB) ListMessagesQueryHandler {
	return ListMessagesQueryHandler{db: db, workflow: services.NewChatWorkflow()}
}

func (h ListMessagesQueryHandler) Handle(ctx context.Context, query ListMessagesQuery) (ListMessagesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListMessagesQueryResponse{}, err
	}

	resp := ListMessagesQueryResponse{
		DonationID:   query.donationID,
		Participants: make([]ChatParticipant, 0),
		Messages:     make([]MessageView, 0),
	}

	donorQuery, args, err := psql().
		Select("donor_id", "title").
		From("donations").
		Where(sq.Eq{"id": query.donationID.Bytes()}).
		ToSql()
	if err != nil {
		return resp, err
	}
	var rawDonor uuid.UUID
	err = h.db.WithContext(ctx).Raw(donorQuery, args...).Row().Scan(&rawDonor, &resp.DonationTitle)
	if errors.Is(err, sql.ErrNoRows) {
		return ListMessagesQueryResponse{}, errs.NewObjectNotFoundError("donation", query.donationID.String())
	}
	if err != nil {
		return resp, err
	}
	donorID, err := kernel.UUIDFromGoogle(rawDonor)
	if err != nil {
		return resp, err
	}

	ids := make([]kernel.UUID, 0)
	if query.actor.CanActFor(donorID) {
		if resp.Participants, err = h.participants(ctx, query.donationID, donorID); err != nil {
			return resp, err
		}
		for _, p := range resp.Participants {
			ids = append(ids, p.ProfileID)
		}
		if query.participant == nil && query.actor.Is(donorID) {
			return resp, nil
		}
	}

	thread, err := h.workflow.Thread(query.actor, donorID, query.participant, ids)
	if err != nil {
		return ListMessagesQueryResponse{}, err
	}

	if resp.Messages, err = h.messages(ctx, query.donationID, thread); err != nil {
		return resp, err
	}
	return resp, nil
}

// participants returns the beneficiaries with an approved or delivered
// request and everyone who exchanged messages with the donor, by username.
func (h ListMessagesQueryHandler) participants(
	ctx context.Context,
	donationID, donorID kernel.UUID,
) ([]ChatParticipant, error) {
	query := fmt.Sprintf(`
		SELECT p.id, p.username FROM profiles p WHERE p.id IN (
			SELECT beneficiary_id FROM donation_requests WHERE donation_id = ? AND status IN (%d, %d)
			UNION
			SELECT sender_id FROM messages WHERE donation_id = ? AND recipient_id = ?
			UNION
			SELECT recipient_id FROM messages WHERE donation_id = ? AND sender_id = ?
		) AND p.id <> ?
		ORDER BY p.username`,
		int(donationrequest.Approved), int(donationrequest.Delivered))

	d, donor := donationID.Bytes(), donorID.Bytes()
	rows, err := h.db.WithContext(ctx).Raw(query, d, d, donor, d, donor, donor).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ChatParticipant, 0)
	for rows.Next() {
		var p ChatParticipant
		var id uuid.UUID
		if err := rows.Scan(&id, &p.Username); err != nil {
			return nil, err
		}
		if p.ProfileID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (h ListMessagesQueryHandler) messages(
	ctx context.Context,
	donationID kernel.UUID,
	thread services.Thread,
) ([]MessageView, error) {
	self, other := thread.Self.Bytes(), thread.Other.Bytes()
	query, args, err := psql().
		Select("id", "sender_id", "recipient_id", "text", "image_ref", "read", "created_at").
		From("messages").
		Where(sq.Eq{"donation_id": donationID.Bytes()}).
		Where(sq.Or{
			sq.Eq{"sender_id": self, "recipient_id": other},
			sq.Eq{"sender_id": other, "recipient_id": self},
		}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]MessageView, 0)
	for rows.Next() {
		var m MessageView
		var id, sender, recipient uuid.UUID
		if err := rows.Scan(&id, &sender, &recipient, &m.Text, &m.ImageRef, &m.Read, &m.CreatedAt); err != nil {
			return nil, err
		}
		for _, conv := range []struct {
			dst *kernel.UUID
			src uuid.UUID
		}{{&m.ID, id}, {&m.SenderID, sender}, {&m.RecipientID, recipient}} {
			if *conv.dst, err = kernel.UUIDFromGoogle(conv.src); err != nil {
				return nil, err
			}
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
