// Package postgres binds the ReCo repositories to one GORM transaction.
//
// A unit of work hands out repositories bound to its transaction once Begin
// was called. Those repositories read rows with SELECT ... FOR UPDATE, so a
// command that loads a donation holds it until Commit or Rollback and a
// concurrent command on the same donation sees the committed result.
// Before Begin, repositories use the plain connection and do not lock.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	d, err := uow.DonationRepository().Get(ctx, id)
//	...
//	return uow.Commit(ctx)
package postgres

import (
	"context"

	"reco/internal/adapters/out/postgres/deliveryrepo"
	"reco/internal/adapters/out/postgres/donationrepo"
	"reco/internal/adapters/out/postgres/messagerepo"
	"reco/internal/adapters/out/postgres/profilerepo"
	"reco/internal/adapters/out/postgres/recyclingrepo"
	"reco/internal/core/domain/model/kernel"
	"reco/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate written during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates one UnitOfWork per command.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork implements ports.UnitOfWork.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin is idempotent while a transaction is open.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback returns gorm.ErrInvalidTransaction when nothing is open, which
// is the normal case for a deferred Rollback after Commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) DonationRepository() ports.DonationRepository {
	db, lock := uow.conn()
	return donationrepo.NewGormDonationRepository(db, uow, lock)
}

func (uow *GormUnitOfWork) DonationRequestRepository() ports.DonationRequestRepository {
	db, lock := uow.conn()
	return donationrepo.NewGormRequestRepository(db, uow, lock)
}

func (uow *GormUnitOfWork) DeliveryRepository() ports.DeliveryRepository {
	db, lock := uow.conn()
	return deliveryrepo.NewGormDeliveryRepository(db, uow, lock)
}

func (uow *GormUnitOfWork) RecyclingBatchRepository() ports.RecyclingBatchRepository {
	db, lock := uow.conn()
	return recyclingrepo.NewGormBatchRepository(db, uow, lock)
}

func (uow *GormUnitOfWork) RecyclingPartnerRepository() ports.RecyclingPartnerRepository {
	db, lock := uow.conn()
	return recyclingrepo.NewGormPartnerRepository(db, uow, lock)
}

func (uow *GormUnitOfWork) ProfileRepository() ports.ProfileRepository {
	db, lock := uow.conn()
	return profilerepo.NewGormProfileRepository(db, uow, lock)
}

func (uow *GormUnitOfWork) CollectionPointRepository() ports.CollectionPointRepository {
	db, _ := uow.conn()
	return profilerepo.NewGormCollectionPointRepository(db, uow)
}

func (uow *GormUnitOfWork) MessageRepository() ports.MessageRepository {
	db, _ := uow.conn()
	return messagerepo.NewGormMessageRepository(db, uow)
}

// TrackAggregate is called by repositories after every successful write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedCount reports how many writes the open or last committed
// transaction performed.
func (uow *GormUnitOfWork) TrackedCount() int {
	return len(uow.trackedAggregates)
}

func (uow *GormUnitOfWork) conn() (*gorm.DB, bool) {
	if uow.tx != nil {
		return uow.tx, true
	}
	return uow.db, false
}
