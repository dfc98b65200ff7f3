package donationrequest

import (
	"errors"
	"strings"
	"time"

	"reco/internal/core/domain/model/kernel"
	"reco/internal/pkg/errs"
)

// DefaultRejectionReason is stored when staff rejects without a reason.
const DefaultRejectionReason = "Rejected by administrator"

var (
	ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest constructor")
	ErrReasonIsRequired        = errs.NewValueIsRequiredError("reason")
)

// Request is a beneficiary's claim on a donation. At most one exists per
// (donation, beneficiary) pair.
type Request struct {
	id              kernel.UUID
	donationID      kernel.UUID
	beneficiaryID   kernel.UUID
	reason          string
	status          Status
	rejectionReason string
	approverID      *kernel.UUID
	createdAt       time.Time
	updatedAt       time.Time
	isConstructed   bool
}

// NewRequest creates a pending request.
func NewRequest(id, donationID, beneficiaryID kernel.UUID, reason string, createdAt time.Time) (*Request, error) {
	return RestoreRequest(id, donationID, beneficiaryID, reason, Pending, "", nil, createdAt, createdAt)
}

func RestoreRequest(
	id, donationID, beneficiaryID kernel.UUID,
	reason string,
	status Status,
	rejectionReason string,
	approverID *kernel.UUID,
	createdAt, updatedAt time.Time,
) (*Request, error) {
	reason = strings.TrimSpace(reason)

	var reasonErr error
	if reason == "" {
		reasonErr = ErrReasonIsRequired
	}

	if err := errors.Join(
		id.Validate(),
		donationID.Validate(),
		beneficiaryID.Validate(),
		reasonErr,
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Request{
		id:              id,
		donationID:      donationID,
		beneficiaryID:   beneficiaryID,
		reason:          reason,
		status:          status,
		rejectionReason: rejectionReason,
		approverID:      approverID,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		isConstructed:   true,
	}, nil
}

func (r *Request) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRequestIsNotConstructed
	}
	return nil
}

func (r *Request) ID() kernel.UUID {
	return r.id
}

func (r *Request) DonationID() kernel.UUID {
	return r.donationID
}

func (r *Request) BeneficiaryID() kernel.UUID {
	return r.beneficiaryID
}

func (r *Request) Reason() string {
	return r.reason
}

func (r *Request) Status() Status {
	return r.status
}

func (r *Request) RejectionReason() string {
	return r.rejectionReason
}

func (r *Request) ApproverID() *kernel.UUID {
	return r.approverID
}

func (r *Request) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Request) UpdatedAt() time.Time {
	return r.updatedAt
}

// IsFrom reports whether the request belongs to beneficiaryID.
func (r *Request) IsFrom(beneficiaryID kernel.UUID) bool {
	return r.beneficiaryID.IsEqual(beneficiaryID)
}

func (r *Request) Approve(approverID kernel.UUID, at time.Time) error {
	if err := approverID.Validate(); err != nil {
		return err
	}
	if err := r.transitionTo(Approved, at); err != nil {
		return err
	}
	r.approverID = &approverID
	return nil
}

// Reject stores reason, falling back to DefaultRejectionReason.
func (r *Request) Reject(reason string, at time.Time) error {
	if err := r.transitionTo(Rejected, at); err != nil {
		return err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = DefaultRejectionReason
	}
	r.rejectionReason = reason
	return nil
}

// MarkDelivered promotes an approved request once its donation reached the
// beneficiary.
func (r *Request) MarkDelivered(at time.Time) error {
	return r.transitionTo(Delivered, at)
}

func (r *Request) transitionTo(next Status, at time.Time) error {
	status, err := r.status.TransitionTo(next)
	if err != nil {
		return err
	}
	r.status = status
	r.updatedAt = at
	return nil
}
