package queries

import (
	"context"

	"reco/internal/core/domain/model/delivery"
	"reco/internal/core/domain/model/donation"
	"reco/internal/core/domain/model/donationrequest"
	"reco/internal/core/domain/model/kernel"
	"reco/internal/core/domain/model/recycling"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

type GetDashboardStatsQueryHandler struct {
	db *gorm.DB
}

func NewGetDashboardStatsQueryHandler(db *gorm.DB) GetDashboardStatsQueryHandler {
	return GetDashboardStatsQueryHandler{db: db}
}

// Handle counts every entity by status. The estimated weight counts the
// donations still in circulation (approved, in route or delivered) at
// recycling.UnitWeightKg each.
func (h GetDashboardStatsQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardStatsQuery,
) (GetDashboardStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}
	if err := query.actor.RequireStaff("view dashboard"); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	since := query.now.Add(-recentWindow)
	var resp GetDashboardStatsQueryResponse

	donations, err := countByColumn(ctx, h.db, "donations", "status", nil)
	if err != nil {
		return resp, err
	}
	resp.Donations = make(map[string]int64)
	for _, s := range donation.Statuses() {
		resp.Donations[s.String()] = donations[int(s)]
		resp.TotalDonations += donations[int(s)]
	}

	requests, err := countByColumn(ctx, h.db, "donation_requests", "status", nil)
	if err != nil {
		return resp, err
	}
	resp.Requests = make(map[string]int64)
	for _, s := range donationrequest.Statuses() {
		resp.Requests[s.String()] = requests[int(s)]
		resp.TotalRequests += requests[int(s)]
	}

	deliveries, err := countByColumn(ctx, h.db, "deliveries", "status", nil)
	if err != nil {
		return resp, err
	}
	resp.Deliveries = make(map[string]int64)
	for _, s := range delivery.Statuses() {
		resp.Deliveries[s.String()] = deliveries[int(s)]
		resp.TotalDeliveries += deliveries[int(s)]
	}

	batches, err := countByColumn(ctx, h.db, "recycling_batches", "status", nil)
	if err != nil {
		return resp, err
	}
	resp.RecyclingBatches = make(map[string]int64)
	for _, s := range recycling.Statuses() {
		resp.RecyclingBatches[s.String()] = batches[int(s)]
	}

	roles, err := countByColumn(ctx, h.db, "profiles", "role", nil)
	if err != nil {
		return resp, err
	}
	resp.ProfilesByRole = make(map[string]int64)
	for _, r := range kernel.Roles() {
		resp.ProfilesByRole[r.String()] = roles[int(r)]
	}

	counters := []struct {
		dst *int64
		b   sq.SelectBuilder
	}{
		{&resp.DonationsLast30Days, psql().Select("COUNT(*)").From("donations").Where(sq.GtOrEq{"created_at": since})},
		{&resp.RequestsLast30Days, psql().Select("COUNT(*)").From("donation_requests").Where(sq.GtOrEq{"created_at": since})},
		{&resp.DeliveriesLast30Days, psql().Select("COUNT(*)").From("deliveries").Where(sq.GtOrEq{"assigned_at": since})},
		{&resp.AvailableDrivers, psql().Select("COUNT(*)").From("profiles").
			Where(sq.Eq{"role": int(kernel.RoleDriver), "driver_available": true})},
		{&resp.ActiveCollectionPoints, psql().Select("COUNT(*)").From("collection_points").Where(sq.Eq{"active": true})},
	}
	for _, c := range counters {
		if *c.dst, err = countRows(ctx, h.db, c.b); err != nil {
			return resp, err
		}
	}

	inCirculation := donations[int(donation.Approved)] + donations[int(donation.InRoute)] + donations[int(donation.Delivered)]
	resp.EstimatedKg = recycling.EstimatedWeightKg(int(inCirculation))
	resp.EstimatedCO2Kg = recycling.ImpactOf(resp.EstimatedKg).CO2AvoidedKg

	return resp, nil
}
