package queries

import (
	"errors"
	"time"

	"reco/internal/core/domain/model/kernel"
	"reco/internal/pkg/guard"
)

var ErrGetBeneficiaryReportQueryIsNotConstructed = errors.New(
	"GetBeneficiaryReportQuery must be created via NewGetBeneficiaryReportQuery constructor",
)

// topBeneficiariesLimit caps the ranking in the beneficiary report.
const topBeneficiariesLimit = 20

// GetBeneficiaryReportQuery summarizes requests submitted in the period.
type GetBeneficiaryReportQuery struct {
	actor  kernel.Actor
	period ReportPeriod
	now    time.Time
	guard  guard.ConstructorGuard
}

func NewGetBeneficiaryReportQuery(actor kernel.Actor, period string, now time.Time) (GetBeneficiaryReportQuery, error) {
	p, periodErr := ParseReportPeriod(period)
	if err := errors.Join(actor.Validate(), periodErr); err != nil {
		return GetBeneficiaryReportQuery{}, err
	}
	return GetBeneficiaryReportQuery{actor: actor, period: p, now: now.UTC(), guard: guard.NewConstructorGuard()}, nil
}

func (q GetBeneficiaryReportQuery) Validate() error {
	return q.guard.Validate(ErrGetBeneficiaryReportQueryIsNotConstructed)
}

// BeneficiaryStats counts one beneficiary's requests. Accepted covers
// approved and delivered requests.
type BeneficiaryStats struct {
	ProfileID kernel.UUID
	Username  string
	Requests  int64
	Accepted  int64
}

// GetBeneficiaryReportQueryResponse reports ApprovalRate as the percentage of
// requests that were approved or delivered.
type GetBeneficiaryReportQueryResponse struct {
	Period              ReportPeriod
	Since               *time.Time
	Stats               RequestStats
	ApprovalRate        float64
	UniqueBeneficiaries int64
	TopBeneficiaries    []BeneficiaryStats
}
