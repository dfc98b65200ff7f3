package recycling

import (
	"fmt"
	"strings"

	"reco/internal/pkg/errs"
)

// BatchStatus is the stage of a recycling batch.
type BatchStatus int

const (
	Unknown BatchStatus = iota
	Created
	Collected
	Shipped
	Processed
	Certified
)

var statusNames = map[BatchStatus]string{
	Created:   "created",
	Collected: "collected",
	Shipped:   "shipped",
	Processed: "processed",
	Certified: "certified",
}

// successor is the linear adjacency table: each stage has exactly one next.
var successor = map[BatchStatus]BatchStatus{
	Created:   Collected,
	Collected: Shipped,
	Shipped:   Processed,
	Processed: Certified,
}

func Statuses() []BatchStatus {
	return []BatchStatus{Created, Collected, Shipped, Processed, Certified}
}

func ParseStatus(s string) (BatchStatus, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for st, name := range statusNames {
		if name == needle {
			return st, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("batch status", fmt.Errorf("%q is not a valid status", s))
}

func (s BatchStatus) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s BatchStatus) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("batch status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// Next returns the unique successor, false at certified.
func (s BatchStatus) Next() (BatchStatus, bool) {
	next, ok := successor[s]
	return next, ok
}

func (s BatchStatus) TransitionTo(next BatchStatus) (BatchStatus, error) {
	if want, ok := s.Next(); !ok || want != next {
		return s, errs.NewInvalidTransitionError("recycling batch", s.String(), next.String())
	}
	return next, nil
}
