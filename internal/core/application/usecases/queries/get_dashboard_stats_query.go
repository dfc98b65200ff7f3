package queries

import (
	"errors"
	"time"

	"reco/internal/core/domain/model/kernel"
	"reco/internal/pkg/guard"
)

var ErrGetDashboardStatsQueryIsNotConstructed = errors.New(
	"GetDashboardStatsQuery must be created via NewGetDashboardStatsQuery constructor",
)

// recentWindow is the look-back of the "this month" counters.
const recentWindow = 30 * 24 * time.Hour

// GetDashboardStatsQuery asks for the administrative overview. Staff only.
type GetDashboardStatsQuery struct {
	actor kernel.Actor
	now   time.Time
	guard guard.ConstructorGuard
}

func NewGetDashboardStatsQuery(actor kernel.Actor, now time.Time) (GetDashboardStatsQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetDashboardStatsQuery{}, err
	}
	return GetDashboardStatsQuery{actor: actor, now: now.UTC(), guard: guard.NewConstructorGuard()}, nil
}

func (q GetDashboardStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardStatsQueryIsNotConstructed)
}

// GetDashboardStatsQueryResponse maps are keyed by status or role name.
// Statuses without records are present with zero.
type GetDashboardStatsQueryResponse struct {
	Donations              map[string]int64
	Requests               map[string]int64
	Deliveries             map[string]int64
	RecyclingBatches       map[string]int64
	ProfilesByRole         map[string]int64
	TotalDonations         int64
	TotalRequests          int64
	TotalDeliveries        int64
	DonationsLast30Days    int64
	RequestsLast30Days     int64
	DeliveriesLast30Days   int64
	AvailableDrivers       int64
	ActiveCollectionPoints int64
	EstimatedKg            float64
	EstimatedCO2Kg         float64
}
