package queries

import (
	"errors"
	"time"

	"reco/internal/core/domain/model/kernel"
	"reco/internal/core/domain/model/recycling"
	"reco/internal/pkg/guard"
)

var ErrGetImpactReportQueryIsNotConstructed = errors.New(
	"GetImpactReportQuery must be created via NewGetImpactReportQuery constructor",
)

// GetImpactReportQuery summarizes donations that reached a beneficiary.
type GetImpactReportQuery struct {
	actor  kernel.Actor
	period ReportPeriod
	now    time.Time
	guard  guard.ConstructorGuard
}

func NewGetImpactReportQuery(actor kernel.Actor, period string, now time.Time) (GetImpactReportQuery, error) {
	p, periodErr := ParseReportPeriod(period)
	if err := errors.Join(actor.Validate(), periodErr); err != nil {
		return GetImpactReportQuery{}, err
	}
	return GetImpactReportQuery{actor: actor, period: p, now: now.UTC(), guard: guard.NewConstructorGuard()}, nil
}

func (q GetImpactReportQuery) Validate() error {
	return q.guard.Validate(ErrGetImpactReportQueryIsNotConstructed)
}

func (q GetImpactReportQuery) Period() ReportPeriod {
	return q.period
}

// MonthlyCount is the number of deliveries completed in the month starting
// at Month.
type MonthlyCount struct {
	Month time.Time
	Count int64
}

// GetImpactReportQueryResponse estimates weight at recycling.UnitWeightKg
// per delivered item.
type GetImpactReportQueryResponse struct {
	Period              ReportPeriod
	Since               *time.Time
	DeliveredDonations  int64
	UniqueBeneficiaries int64
	EstimatedWeightKg   float64
	Impact              recycling.Impact
	ByCondition         map[string]int64
	Monthly             []MonthlyCount
}
