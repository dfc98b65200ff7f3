package donation

import (
	"fmt"
	"strings"

	"reco/internal/pkg/errs"
)

// Status is the lifecycle state of a donation.
type Status int

const (
	Unknown Status = iota
	Pending
	Approved
	InRoute
	Delivered
	Canceled
	ForRecycling
)

var statusNames = map[Status]string{
	Pending:      "pending",
	Approved:     "approved",
	InRoute:      "in_route",
	Delivered:    "delivered",
	Canceled:     "canceled",
	ForRecycling: "for_recycling",
}

// transitions is the complete adjacency table. Anything absent is illegal.
var transitions = map[Status][]Status{
	Pending:      {Approved, Canceled, ForRecycling},
	Approved:     {InRoute, Canceled, ForRecycling},
	InRoute:      {Delivered},
	Canceled:     {ForRecycling},
	ForRecycling: {InRoute},
	Delivered:    {},
}

// Statuses lists every valid status in declaration order.
func Statuses() []Status {
	return []Status{Pending, Approved, InRoute, Delivered, Canceled, ForRecycling}
}

func ParseStatus(s string) (Status, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for st, name := range statusNames {
		if name == needle {
			return st, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("donation status", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("donation status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// CanTransitionTo reports whether next is an edge of the adjacency table.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo returns next when the edge exists, InvalidTransition otherwise.
func (s Status) TransitionTo(next Status) (Status, error) {
	if !s.CanTransitionTo(next) {
		return s, errs.NewInvalidTransitionError("donation", s.String(), next.String())
	}
	return next, nil
}

// IsInLogistics reports whether the item is already moving or has arrived.
func (s Status) IsInLogistics() bool {
	return s == InRoute || s == Delivered
}
