package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"reco/internal/core/domain/model/delivery"
	"reco/internal/core/domain/model/donation"
	"reco/internal/core/domain/model/donationrequest"
	"reco/internal/core/domain/model/kernel"
	"reco/internal/pkg/errs"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetDonationQueryHandler struct {
	db *gorm.DB
}

func NewGetDonationQueryHandler(db *gorm.DB) GetDonationQueryHandler {
	return GetDonationQueryHandler{db: db}
}

func (h GetDonationQueryHandler) Handle(ctx context.Context, query GetDonationQuery) (GetDonationQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDonationQueryResponse{}, err
	}

	views, err := scanDonations(ctx, h.db, donationsFrom().Where(sq.Eq{"d.id": query.donationID.Bytes()}))
	if err != nil {
		return GetDonationQueryResponse{}, err
	}
	if len(views) == 0 {
		return GetDonationQueryResponse{}, errs.NewObjectNotFoundError("donation", query.donationID.String())
	}
	resp := GetDonationQueryResponse{Donation: views[0]}

	detailQuery, args, err := psql().
		Select("d.contact_email", "d.contact_phone", "d.pickup_address", "d.collection_point_id",
			"COALESCE(cp.name, '')", "d.beneficiary_id", "d.rejection_reason", "d.approved_at", "dl.status").
		From("donations d").
		LeftJoin("collection_points cp ON cp.id = d.collection_point_id").
		LeftJoin("deliveries dl ON dl.donation_id = d.id").
		Where(sq.Eq{"d.id": query.donationID.Bytes()}).
		ToSql()
	if err != nil {
		return resp, err
	}

	var pointID, beneficiaryID *uuid.UUID
	var approvedAt *time.Time
	var deliveryStatus sql.NullInt64
	err = h.db.WithContext(ctx).Raw(detailQuery, args...).Row().Scan(
		&resp.ContactEmail, &resp.ContactPhone, &resp.PickupAddress, &pointID,
		&resp.CollectionPointName, &beneficiaryID, &resp.RejectionReason, &approvedAt, &deliveryStatus)
	if err != nil {
		return resp, err
	}
	if resp.CollectionPointID, err = kernel.UUIDPtrFromGoogle(pointID); err != nil {
		return resp, err
	}
	if resp.BeneficiaryID, err = kernel.UUIDPtrFromGoogle(beneficiaryID); err != nil {
		return resp, err
	}
	resp.ApprovedAt = approvedAt
	if deliveryStatus.Valid {
		resp.DeliveryStatus = delivery.Status(deliveryStatus.Int64).String()
	}

	if err = h.authorize(query.actor, resp); err != nil {
		return GetDonationQueryResponse{}, err
	}

	own, err := h.ownRequestStatus(ctx, query)
	if err != nil {
		return resp, err
	}
	resp.OwnRequestStatus = own

	return resp, nil
}

func (h GetDonationQueryHandler) authorize(actor kernel.Actor, resp GetDonationQueryResponse) error {
	listed := resp.Donation.Status == donation.Approved.String() || resp.Donation.Status == donation.Delivered.String()
	if listed || actor.CanActFor(resp.Donation.DonorID) {
		return nil
	}
	if resp.BeneficiaryID != nil && actor.Is(*resp.BeneficiaryID) {
		return nil
	}
	return errs.NewPermissionDeniedError("view donation")
}

func (h GetDonationQueryHandler) ownRequestStatus(ctx context.Context, query GetDonationQuery) (string, error) {
	q, args, err := psql().
		Select("status").
		From("donation_requests").
		Where(sq.Eq{"donation_id": query.donationID.Bytes(), "beneficiary_id": query.actor.ID().Bytes()}).
		ToSql()
	if err != nil {
		return "", err
	}

	var status int
	err = h.db.WithContext(ctx).Raw(q, args...).Row().Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return donationrequest.Status(status).String(), nil
}
