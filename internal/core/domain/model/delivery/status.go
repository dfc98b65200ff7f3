// Package delivery models the physical transport record fulfilling a
// donation match.
//
// Legal status edges (no skipping):
//
//	assigned   -> picked_up, canceled
//	picked_up  -> in_transit, canceled
//	in_transit -> delivered, canceled
//
// delivered and canceled are terminal.
package delivery

import (
	"fmt"
	"strings"

	"reco/internal/pkg/errs"
)

type Status int

const (
	Unknown Status = iota
	Assigned
	PickedUp
	InTransit
	Delivered
	Canceled
)

var statusNames = map[Status]string{
	Assigned:  "assigned",
	PickedUp:  "picked_up",
	InTransit: "in_transit",
	Delivered: "delivered",
	Canceled:  "canceled",
}

var transitions = map[Status][]Status{
	Assigned:  {PickedUp, Canceled},
	PickedUp:  {InTransit, Canceled},
	InTransit: {Delivered, Canceled},
}

func Statuses() []Status {
	return []Status{Assigned, PickedUp, InTransit, Delivered, Canceled}
}

func ParseStatus(s string) (Status, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for st, name := range statusNames {
		if name == needle {
			return st, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("delivery status", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("delivery status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether no further transition exists.
func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
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
		return s, errs.NewInvalidTransitionError("delivery", s.String(), next.String())
	}
	return next, nil
}
