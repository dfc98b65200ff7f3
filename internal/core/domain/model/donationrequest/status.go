// Package donationrequest models a beneficiary's claim on a donation.
//
// Legal status edges:
//
//	pending  -> approved, rejected
//	approved -> delivered
//
// approved -> delivered is only ever driven by beneficiary selection or by a
// completed delivery, never by a direct staff action.
package donationrequest

import (
	"fmt"
	"strings"

	"reco/internal/pkg/errs"
)

type Status int

const (
	Unknown Status = iota
	Pending
	Approved
	Rejected
	Delivered
)

var statusNames = map[Status]string{
	Pending:   "pending",
	Approved:  "approved",
	Rejected:  "rejected",
	Delivered: "delivered",
}

var transitions = map[Status][]Status{
	Pending:  {Approved, Rejected},
	Approved: {Delivered},
}

func Statuses() []Status {
	return []Status{Pending, Approved, Rejected, Delivered}
}

func ParseStatus(s string) (Status, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for st, name := range statusNames {
		if name == needle {
			return st, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("request status", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("request status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s Status) TransitionTo(next Status) (Status, error) {
	if !s.CanTransitionTo(next) {
		return s, errs.NewInvalidTransitionError("donation request", s.String(), next.String())
	}
	return next, nil
}
