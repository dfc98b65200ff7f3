package queries

import (
	"context"
	"fmt"
	"strings"
	"time"

	"reco/internal/core/domain/model/delivery"
	"reco/internal/core/domain/model/donation"
	"reco/internal/core/domain/model/donationrequest"
	"reco/internal/core/domain/model/kernel"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DonationView is a donation as shown in the catalog and in the personal
// and staff lists.
type DonationView struct {
	ID               kernel.UUID
	DonorID          kernel.UUID
	DonorName        string
	Title            string
	Description      string
	Condition        string
	City             string
	ImageRef         string
	DeliveryType     string
	Status           string
	Available        bool
	CreatedAt        time.Time
	RequestCount     int64
	ApprovedRequests int64
}

// DeliveryView is a delivery with the donation it moves.
type DeliveryView struct {
	ID            kernel.UUID
	DonationID    kernel.UUID
	DonationTitle string
	PickupAddress string
	City          string
	DriverID      *kernel.UUID
	DriverName    string
	Status        string
	AssignedAt    time.Time
	PickedUpAt    *time.Time
	DeliveredAt   *time.Time
}

// DonationStats counts donations per status.
type DonationStats struct {
	Total        int64
	Pending      int64
	Approved     int64
	InRoute      int64
	Delivered    int64
	Canceled     int64
	ForRecycling int64
}

// RequestView is a donation request with the donation it targets.
type RequestView struct {
	ID              kernel.UUID
	DonationID      kernel.UUID
	DonationTitle   string
	DonationStatus  string
	DonorID         kernel.UUID
	BeneficiaryID   kernel.UUID
	BeneficiaryName string
	Reason          string
	Status          string
	RejectionReason string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// RequestStats counts requests per status.
type RequestStats struct {
	Total     int64
	Pending   int64
	Approved  int64
	Rejected  int64
	Delivered int64
}

// DeliveryStats counts deliveries per status.
type DeliveryStats struct {
	Total     int64
	Assigned  int64
	PickedUp  int64
	InTransit int64
	Delivered int64
	Canceled  int64
}

// contains builds an ILIKE pattern that matches s literally.
func contains(s string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(strings.TrimSpace(s))
	return "%" + escaped + "%"
}

func donationsFrom() sq.SelectBuilder {
	accepted := fmt.Sprintf("%d, %d", int(donationrequest.Approved), int(donationrequest.Delivered))
	return psql().
		Select("d.id", "d.donor_id", "COALESCE(p.username, '')", "d.title", "d.description",
			"d.condition", "d.city", "d.image_ref", "d.delivery_type", "d.status", "d.available", "d.created_at",
			"(SELECT COUNT(*) FROM donation_requests r WHERE r.donation_id = d.id)",
			"(SELECT COUNT(*) FROM donation_requests r WHERE r.donation_id = d.id AND r.status IN ("+accepted+"))").
		From("donations d").
		LeftJoin("profiles p ON p.id = d.donor_id")
}

func scanDonations(ctx context.Context, db *gorm.DB, b sq.SelectBuilder) ([]DonationView, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]DonationView, 0)
	for rows.Next() {
		var v DonationView
		var id, donorID uuid.UUID
		var condition, deliveryType, status int
		err = rows.Scan(&id, &donorID, &v.DonorName, &v.Title, &v.Description,
			&condition, &v.City, &v.ImageRef, &deliveryType, &status, &v.Available, &v.CreatedAt,
			&v.RequestCount, &v.ApprovedRequests)
		if err != nil {
			return nil, err
		}

		if v.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		if v.DonorID, err = kernel.UUIDFromGoogle(donorID); err != nil {
			return nil, err
		}
		v.Condition = donation.Condition(condition).String()
		v.DeliveryType = donation.DeliveryType(deliveryType).String()
		v.Status = donation.Status(status).String()
		views = append(views, v)
	}

	return views, rows.Err()
}

func donationStats(ctx context.Context, db *gorm.DB, where sq.Sqlizer) (DonationStats, error) {
	byStatus, err := countByColumn(ctx, db, "donations", "status", where)
	if err != nil {
		return DonationStats{}, err
	}

	stats := DonationStats{
		Pending:      byStatus[int(donation.Pending)],
		Approved:     byStatus[int(donation.Approved)],
		InRoute:      byStatus[int(donation.InRoute)],
		Delivered:    byStatus[int(donation.Delivered)],
		Canceled:     byStatus[int(donation.Canceled)],
		ForRecycling: byStatus[int(donation.ForRecycling)],
	}
	for _, n := range byStatus {
		stats.Total += n
	}
	return stats, nil
}

func requestsFrom() sq.SelectBuilder {
	return psql().
		Select("r.id", "r.donation_id", "d.title", "d.status", "d.donor_id", "r.beneficiary_id",
			"COALESCE(p.username, '')", "r.reason", "r.status", "r.rejection_reason", "r.created_at", "r.updated_at").
		From("donation_requests r").
		Join("donations d ON d.id = r.donation_id").
		LeftJoin("profiles p ON p.id = r.beneficiary_id")
}

func scanRequests(ctx context.Context, db *gorm.DB, b sq.SelectBuilder) ([]RequestView, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]RequestView, 0)
	for rows.Next() {
		var v RequestView
		var id, donationID, donorID, beneficiaryID uuid.UUID
		var donationStatus, status int
		err = rows.Scan(&id, &donationID, &v.DonationTitle, &donationStatus, &donorID, &beneficiaryID,
			&v.BeneficiaryName, &v.Reason, &status, &v.RejectionReason, &v.CreatedAt, &v.UpdatedAt)
		if err != nil {
			return nil, err
		}

		for _, conv := range []struct {
			dst *kernel.UUID
			src uuid.UUID
		}{{&v.ID, id}, {&v.DonationID, donationID}, {&v.DonorID, donorID}, {&v.BeneficiaryID, beneficiaryID}} {
			if *conv.dst, err = kernel.UUIDFromGoogle(conv.src); err != nil {
				return nil, err
			}
		}
		v.DonationStatus = donation.Status(donationStatus).String()
		v.Status = donationrequest.Status(status).String()
		views = append(views, v)
	}

	return views, rows.Err()
}

func requestStats(ctx context.Context, db *gorm.DB, where sq.Sqlizer) (RequestStats, error) {
	byStatus, err := countByColumn(ctx, db, "donation_requests", "status", where)
	if err != nil {
		return RequestStats{}, err
	}

	stats := RequestStats{
		Pending:   byStatus[int(donationrequest.Pending)],
		Approved:  byStatus[int(donationrequest.Approved)],
		Rejected:  byStatus[int(donationrequest.Rejected)],
		Delivered: byStatus[int(donationrequest.Delivered)],
	}
	for _, n := range byStatus {
		stats.Total += n
	}
	return stats, nil
}

func deliveryStats(ctx context.Context, db *gorm.DB, where sq.Sqlizer) (DeliveryStats, error) {
	byStatus, err := countByColumn(ctx, db, "deliveries", "status", where)
	if err != nil {
		return DeliveryStats{}, err
	}

	stats := DeliveryStats{
		Assigned:  byStatus[int(delivery.Assigned)],
		PickedUp:  byStatus[int(delivery.PickedUp)],
		InTransit: byStatus[int(delivery.InTransit)],
		Delivered: byStatus[int(delivery.Delivered)],
		Canceled:  byStatus[int(delivery.Canceled)],
	}
	for _, n := range byStatus {
		stats.Total += n
	}
	return stats, nil
}

func deliveriesFrom() sq.SelectBuilder {
	return psql().
		Select("dl.id", "dl.donation_id", "d.title", "d.pickup_address", "d.city",
			"dl.driver_id", "COALESCE(p.username, '')",
			"dl.status", "dl.assigned_at", "dl.picked_up_at", "dl.delivered_at").
		From("deliveries dl").
		Join("donations d ON d.id = dl.donation_id").
		LeftJoin("profiles p ON p.id = dl.driver_id")
}

func scanDeliveries(ctx context.Context, db *gorm.DB, b sq.SelectBuilder) ([]DeliveryView, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]DeliveryView, 0)
	for rows.Next() {
		var v DeliveryView
		var id, donationID uuid.UUID
		var driverID *uuid.UUID
		var status int
		err = rows.Scan(&id, &donationID, &v.DonationTitle, &v.PickupAddress, &v.City,
			&driverID, &v.DriverName, &status, &v.AssignedAt, &v.PickedUpAt, &v.DeliveredAt)
		if err != nil {
			return nil, err
		}

		if v.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		if v.DonationID, err = kernel.UUIDFromGoogle(donationID); err != nil {
			return nil, err
		}
		if v.DriverID, err = kernel.UUIDPtrFromGoogle(driverID); err != nil {
			return nil, err
		}
		v.Status = delivery.Status(status).String()
		views = append(views, v)
	}

	return views, rows.Err()
}
