package queries

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"reco/internal/core/domain/model/kernel"
	"reco/internal/core/domain/model/recycling"
	"reco/internal/pkg/errs"
	"reco/internal/pkg/guard"
)

var ErrGetRecyclingReportQueryIsNotConstructed = errors.New(
	"GetRecyclingReportQuery must be created via NewGetRecyclingReportQuery constructor",
)

// ReportPeriod is the look-back of a report in days, or "all".
type ReportPeriod string

const (
	PeriodWeek    ReportPeriod = "7"
	PeriodMonth   ReportPeriod = "30"
	PeriodQuarter ReportPeriod = "90"
	PeriodYear    ReportPeriod = "365"
	PeriodAll     ReportPeriod = "all"
)

var periodDays = map[ReportPeriod]int{
	PeriodWeek:    7,
	PeriodMonth:   30,
	PeriodQuarter: 90,
	PeriodYear:    365,
}

// ParseReportPeriod defaults to the last 30 days.
func ParseReportPeriod(s string) (ReportPeriod, error) {
	p := ReportPeriod(strings.ToLower(strings.TrimSpace(s)))
	if p == "" {
		return PeriodMonth, nil
	}
	if _, ok := periodDays[p]; ok || p == PeriodAll {
		return p, nil
	}
	return "", errs.NewValueIsInvalidErrorWithCause("period", fmt.Errorf("%q is not one of 7, 30, 90, 365, all", s))
}

// Since returns the start of the period ending at now, or nil for all time.
func (p ReportPeriod) Since(now time.Time) *time.Time {
	days, ok := periodDays[p]
	if !ok {
		return nil
	}
	since := now.AddDate(0, 0, -days)
	return &since
}

type GetRecyclingReportQuery struct {
	actor  kernel.Actor
	period ReportPeriod
	now    time.Time
	guard  guard.ConstructorGuard
}

func NewGetRecyclingReportQuery(actor kernel.Actor, period string, now time.Time) (GetRecyclingReportQuery, error) {
	p, periodErr := ParseReportPeriod(period)
	if err := errors.Join(actor.Validate(), periodErr); err != nil {
		return GetRecyclingReportQuery{}, err
	}
	return GetRecyclingReportQuery{
		actor:  actor,
		period: p,
		now:    now.UTC(),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetRecyclingReportQuery) Validate() error {
	return q.guard.Validate(ErrGetRecyclingReportQueryIsNotConstructed)
}

func (q GetRecyclingReportQuery) Period() ReportPeriod {
	return q.period
}

// PartnerStats is one partner's share of the report, heaviest first.
type PartnerStats struct {
	PartnerID     kernel.UUID
	CompanyName   string
	BatchCount    int64
	TotalWeightKg float64
}

// GetRecyclingReportQueryResponse only counts weighed batches in the total
// weight; estimated weights are not reported.
type GetRecyclingReportQueryResponse struct {
	Period           ReportPeriod
	Since            *time.Time
	TotalBatches     int64
	CertifiedBatches int64
	TotalItems       int64
	TotalWeightKg    float64
	Impact           recycling.Impact
	Partners         []PartnerStats
}
