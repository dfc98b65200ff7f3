package postgres

import (
	"context"

	"reco/internal/adapters/out/postgres/deliveryrepo"
	"reco/internal/adapters/out/postgres/donationrepo"
	"reco/internal/adapters/out/postgres/messagerepo"
	"reco/internal/adapters/out/postgres/profilerepo"
	"reco/internal/adapters/out/postgres/recyclingrepo"

	"gorm.io/gorm"
)

// Tables lists every table owned by the store, children first, in an order
// TRUNCATE accepts.
var Tables = []string{
	"messages",
	"recycling_batch_items",
	"recycling_batches",
	"recycling_partners",
	"deliveries",
	"donation_requests",
	"donations",
	"collection_points",
	"profiles",
}

// Migrate creates or updates the schema.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(
		&profilerepo.ProfileDTO{},
		&profilerepo.CollectionPointDTO{},
		&donationrepo.DonationDTO{},
		&donationrepo.RequestDTO{},
		&deliveryrepo.DeliveryDTO{},
		&recyclingrepo.PartnerDTO{},
		&recyclingrepo.BatchDTO{},
		&recyclingrepo.BatchItemDTO{},
		&messagerepo.MessageDTO{},
	)
}
