package recycling

import (
	"fmt"
	"regexp"
	"time"

	"reco/internal/pkg/errs"
)

var codePattern = regexp.MustCompile(`^REC-\d{8}-\d{4,}$`)

// Code is the human readable batch identifier REC-YYYYMMDD-NNNN. The suffix
// is a running count of all batches ever created, not a per-day counter.
type Code string

// NewCode formats the code for a batch created on day with the given
// sequence (count of existing batches + 1).
func NewCode(day time.Time, sequence int) (Code, error) {
	if sequence < 1 {
		return "", errs.NewValueIsOutOfRangeError("batch sequence", sequence, 1, "unbounded")
	}
	return Code(fmt.Sprintf("REC-%s-%04d", day.Format("20060102"), sequence)), nil
}

func ParseCode(s string) (Code, error) {
	if !codePattern.MatchString(s) {
		return "", errs.NewValueIsInvalidErrorWithCause("batch code", fmt.Errorf("%q does not match REC-YYYYMMDD-NNNN", s))
	}
	return Code(s), nil
}

func (c Code) String() string {
	return string(c)
}
