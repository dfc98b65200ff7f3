package recycling

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"reco/internal/core/domain/model/kernel"
	"reco/internal/pkg/errs"
)

var (
	ErrBatchIsNotConstructed       = errors.New("Batch must be created via NewBatch constructor")
	ErrCertificateNumberIsRequired = errs.NewValueIsRequiredError("certificate number")
)

// Certificate is the recycling certificate issued by the partner.
type Certificate struct {
	Number   string
	FileRef  string
	IssuedAt *time.Time
}

// StagePayload carries the data a stage may record. ActualWeightKg is only
// accepted when moving to processed; certificate fields only when moving to
// certified.
type StagePayload struct {
	ActualWeightKg      *float64
	CertificateNumber   string
	CertificateFileRef  string
	CertificateIssuedAt *time.Time
}

// BatchRecord is the full persisted state of a batch.
type BatchRecord struct {
	ID                kernel.UUID
	Code              Code
	PartnerID         kernel.UUID
	Status            BatchStatus
	Items             []kernel.UUID
	EstimatedWeightKg float64
	ActualWeightKg    *float64
	CollectedAt       *time.Time
	ShippedAt         *time.Time
	ProcessedAt       *time.Time
	ProcessedBy       *kernel.UUID
	Certificate       Certificate
	CreatedBy         kernel.UUID
	Notes             string
	CreatedAt         time.Time
}

// Batch groups donations sent together to one partner.
type Batch struct {
	rec           BatchRecord
	isConstructed bool
}

// NewBatch creates a batch in created status. The estimated weight assumes
// UnitWeightKg per item.
func NewBatch(
	id kernel.UUID,
	code Code,
	partnerID kernel.UUID,
	items []kernel.UUID,
	createdBy kernel.UUID,
	notes string,
	createdAt time.Time,
) (*Batch, error) {
	return RestoreBatch(BatchRecord{
		ID:                id,
		Code:              code,
		PartnerID:         partnerID,
		Status:            Created,
		Items:             append([]kernel.UUID(nil), items...),
		EstimatedWeightKg: EstimatedWeightKg(len(items)),
		CreatedBy:         createdBy,
		Notes:             strings.TrimSpace(notes),
		CreatedAt:         createdAt,
	})
}

func RestoreBatch(rec BatchRecord) (*Batch, error) {
	_, codeErr := ParseCode(rec.Code.String())

	errList := []error{
		rec.ID.Validate(),
		codeErr,
		rec.PartnerID.Validate(),
		rec.Status.Validate(),
		rec.CreatedBy.Validate(),
	}
	for _, item := range rec.Items {
		errList = append(errList, item.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return &Batch{rec: rec, isConstructed: true}, nil
}

func (b *Batch) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBatchIsNotConstructed
	}
	return nil
}

// Record returns a snapshot for persistence.
func (b *Batch) Record() BatchRecord {
	rec := b.rec
	rec.Items = append([]kernel.UUID(nil), b.rec.Items...)
	return rec
}

func (b *Batch) ID() kernel.UUID {
	return b.rec.ID
}

func (b *Batch) Code() Code {
	return b.rec.Code
}

func (b *Batch) PartnerID() kernel.UUID {
	return b.rec.PartnerID
}

func (b *Batch) Status() BatchStatus {
	return b.rec.Status
}

func (b *Batch) Items() []kernel.UUID {
	return append([]kernel.UUID(nil), b.rec.Items...)
}

func (b *Batch) CreatedBy() kernel.UUID {
	return b.rec.CreatedBy
}

func (b *Batch) EstimatedWeightKg() float64 {
	return b.rec.EstimatedWeightKg
}

func (b *Batch) ActualWeightKg() *float64 {
	return b.rec.ActualWeightKg
}

func (b *Batch) Certificate() Certificate {
	return b.rec.Certificate
}

// EffectiveWeightKg prefers the weighed value over the estimate.
func (b *Batch) EffectiveWeightKg() float64 {
	if b.rec.ActualWeightKg != nil {
		return *b.rec.ActualWeightKg
	}
	return b.rec.EstimatedWeightKg
}

func (b *Batch) Impact() Impact {
	return ImpactOf(b.EffectiveWeightKg())
}

// Advance moves the batch to next, which must be the unique successor of
// the current stage, and records the stage data.
func (b *Batch) Advance(next BatchStatus, payload StagePayload, by kernel.UUID, at time.Time) error {
	if _, err := b.rec.Status.TransitionTo(next); err != nil {
		return err
	}
	if err := validatePayload(next, payload); err != nil {
		return err
	}

	b.rec.Status = next
	switch next {
	case Collected:
		b.rec.CollectedAt = &at
	case Shipped:
		b.rec.ShippedAt = &at
	case Processed:
		b.rec.ProcessedAt = &at
		b.rec.ProcessedBy = &by
		if payload.ActualWeightKg != nil {
			w := *payload.ActualWeightKg
			b.rec.ActualWeightKg = &w
		}
	case Certified:
		issued := at
		if payload.CertificateIssuedAt != nil {
			issued = *payload.CertificateIssuedAt
		}
		b.rec.Certificate = Certificate{
			Number:   strings.TrimSpace(payload.CertificateNumber),
			FileRef:  payload.CertificateFileRef,
			IssuedAt: &issued,
		}
	}
	return nil
}

func validatePayload(next BatchStatus, p StagePayload) error {
	if p.ActualWeightKg != nil {
		if next != Processed {
			return errs.NewValueIsInvalidErrorWithCause("actual weight", fmt.Errorf("only recorded when moving to %s", Processed))
		}
		if *p.ActualWeightKg <= 0 {
			return errs.NewValueIsOutOfRangeError("actual weight", *p.ActualWeightKg, "> 0", "unbounded")
		}
	}

	hasCertificate := strings.TrimSpace(p.CertificateNumber) != "" || p.CertificateFileRef != "" || p.CertificateIssuedAt != nil
	if next == Certified {
		if strings.TrimSpace(p.CertificateNumber) == "" {
			return ErrCertificateNumberIsRequired
		}
		return nil
	}
	if hasCertificate {
		return errs.NewValueIsInvalidErrorWithCause("certificate", fmt.Errorf("only recorded when moving to %s", Certified))
	}
	return nil
}
