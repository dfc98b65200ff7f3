package services

import (
	"reco/internal/core/domain/model/donationrequest"
	"reco/internal/core/domain/model/kernel"
	"reco/internal/pkg/errs"
)

// ChatWorkflow decides who talks to whom about a donation. Interested
// profiles always talk to the donor. The donor picks the participant, who
// must hold an approved or delivered request or have written before.
type ChatWorkflow struct{}

func NewChatWorkflow() ChatWorkflow {
	return ChatWorkflow{}
}

// Thread is one conversation about a donation, seen from Self.
type Thread struct {
	Self  kernel.UUID
	Other kernel.UUID
}

// Participants merges the beneficiaries whose request was approved or
// delivered with the profiles that already exchanged messages with the donor.
func (w ChatWorkflow) Participants(requests []*donationrequest.Request, partners []kernel.UUID) []kernel.UUID {
	seen := make(map[kernel.UUID]struct{}, len(requests)+len(partners))
	out := make([]kernel.UUID, 0, len(requests)+len(partners))
	add := func(id kernel.UUID) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	for _, r := range requests {
		if r.Status() == donationrequest.Approved || r.Status() == donationrequest.Delivered {
			add(r.BeneficiaryID())
		}
	}
	for _, id := range partners {
		add(id)
	}
	return out
}

// Counterpart returns the profile actor writes to. participants are the
// profiles the donor may talk to.
func (w ChatWorkflow) Counterpart(
	actor kernel.Actor,
	donorID kernel.UUID,
	participant *kernel.UUID,
	participants []kernel.UUID,
) (kernel.UUID, error) {
	if err := actor.Validate(); err != nil {
		return kernel.UUID{}, err
	}
	if err := donorID.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	if !actor.Is(donorID) {
		if participant != nil && !participant.IsEqual(donorID) {
			return kernel.UUID{}, errs.NewValueIsInvalidError("participant")
		}
		return donorID, nil
	}

	if participant == nil {
		return kernel.UUID{}, errs.NewValueIsRequiredError("participant")
	}
	if participant.IsEqual(donorID) {
		return kernel.UUID{}, errs.NewValueIsInvalidError("participant")
	}
	for _, p := range participants {
		if p.IsEqual(*participant) {
			return *participant, nil
		}
	}
	return kernel.UUID{}, errs.NewPreconditionFailedError("participant", "has not started a conversation about this donation")
}

// Thread resolves the conversation actor may read. Staff outside the
// conversation may read the donor's thread with any participant.
func (w ChatWorkflow) Thread(
	actor kernel.Actor,
	donorID kernel.UUID,
	participant *kernel.UUID,
	participants []kernel.UUID,
) (Thread, error) {
	if err := actor.Validate(); err != nil {
		return Thread{}, err
	}
	if actor.IsStaff() && !actor.Is(donorID) && participant != nil && !participant.IsEqual(actor.ID()) {
		if participant.IsEqual(donorID) {
			return Thread{}, errs.NewValueIsInvalidError("participant")
		}
		return Thread{Self: donorID, Other: *participant}, nil
	}

	other, err := w.Counterpart(actor, donorID, participant, participants)
	if err != nil {
		return Thread{}, err
	}
	return Thread{Self: actor.ID(), Other: other}, nil
}
