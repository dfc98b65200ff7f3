// Package notification describes the side effects a workflow transition asks
// for. Intents are plain records: the workflow returns them, the command
// handler hands them to a dispatcher after the transaction commits.
package notification

import (
	"fmt"
	"time"

	"reco/internal/core/domain/model/kernel"
	"reco/internal/pkg/errs"
)

// Kind enumerates the notification events of the donation network.
type Kind int

const (
	KindUnknown Kind = iota
	KindDonationApproved
	KindDonationRejected
	KindRequestApproved
	KindRequestRejected
	KindDeliveryInProgress
	KindDeliveryCompleted
	KindNewRequestAdmin
	KindRecyclingBatchUpdated
)

var kindNames = map[Kind]string{
	KindDonationApproved:      "donation_approved",
	KindDonationRejected:      "donation_rejected",
	KindRequestApproved:       "request_approved",
	KindRequestRejected:       "request_rejected",
	KindDeliveryInProgress:    "delivery_in_progress",
	KindDeliveryCompleted:     "delivery_completed",
	KindNewRequestAdmin:       "new_request_admin",
	KindRecyclingBatchUpdated: "recycling_batch_updated",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

func (k Kind) Validate() error {
	if _, ok := kindNames[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("notification kind", fmt.Errorf("%d is not a valid kind", k))
	}
	return nil
}

// Kinds lists every valid kind in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindDonationApproved,
		KindDonationRejected,
		KindRequestApproved,
		KindRequestRejected,
		KindDeliveryInProgress,
		KindDeliveryCompleted,
		KindNewRequestAdmin,
		KindRecyclingBatchUpdated,
	}
}

// Recipient addresses a profile by ID. Email is set when the workflow
// already knows the address (recycling partners have no profile); otherwise
// the dispatcher resolves it.
type Recipient struct {
	ID    kernel.UUID
	Email string
}

func ToProfile(id kernel.UUID) Recipient {
	return Recipient{ID: id}
}

func ToAddress(id kernel.UUID, email string) Recipient {
	return Recipient{ID: id, Email: email}
}

// Payload keys shared by the workflow and the message templates.
const (
	KeyDonationID    = "donation_id"
	KeyDonationTitle = "donation_title"
	KeyRequestID     = "request_id"
	KeyDeliveryID    = "delivery_id"
	KeyBatchID       = "batch_id"
	KeyBatchCode     = "batch_code"
	KeyStatus        = "status"
	KeyReason        = "reason"
)

// Intent asks the dispatcher to tell Recipient that Kind happened.
type Intent struct {
	Kind       Kind
	Recipient  Recipient
	Payload    map[string]string
	OccurredAt time.Time
}

func NewIntent(kind Kind, recipient Recipient, payload map[string]string, occurredAt time.Time) Intent {
	if payload == nil {
		payload = map[string]string{}
	}
	return Intent{Kind: kind, Recipient: recipient, Payload: payload, OccurredAt: occurredAt}
}

// Broadcast builds one intent per recipient, skipping duplicates by ID.
func Broadcast(kind Kind, recipients []Recipient, payload map[string]string, occurredAt time.Time) []Intent {
	intents := make([]Intent, 0, len(recipients))
	seen := make(map[kernel.UUID]struct{}, len(recipients))
	for _, r := range recipients {
		if r.ID.Validate() != nil {
			continue
		}
		if _, dup := seen[r.ID]; dup {
			continue
		}
		seen[r.ID] = struct{}{}
		intents = append(intents, NewIntent(kind, r, clonePayload(payload), occurredAt))
	}
	return intents
}

func clonePayload(p map[string]string) map[string]string {
	out := make(map[string]string, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}
