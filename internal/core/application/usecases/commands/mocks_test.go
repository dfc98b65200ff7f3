package commands_test

import (
	"context"
	"io"
	"testing"
	"time"

	"reco/internal/core/application/usecases/commands"
	"reco/internal/core/domain/model/collectionpoint"
	"reco/internal/core/domain/model/delivery"
	"reco/internal/core/domain/model/donation"
	"reco/internal/core/domain/model/donationrequest"
	"reco/internal/core/domain/model/kernel"
	"reco/internal/core/domain/model/message"
	"reco/internal/core/domain/model/notification"
	"reco/internal/core/domain/model/profile"
	"reco/internal/core/domain/model/recycling"
	"reco/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDonationRepository struct{ mock.Mock }

func (m *MockDonationRepository) Add(ctx context.Context, d *donation.Donation) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDonationRepository) Update(ctx context.Context, d *donation.Donation) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDonationRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockDonationRepository) Get(ctx context.Context, id kernel.UUID) (*donation.Donation, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*donation.Donation)
	return d, args.Error(1)
}

func (m *MockDonationRepository) ListByIDs(ctx context.Context, ids []kernel.UUID) ([]*donation.Donation, error) {
	args := m.Called(ctx, ids)
	ds, _ := args.Get(0).([]*donation.Donation)
	return ds, args.Error(1)
}

type MockDonationRequestRepository struct{ mock.Mock }

func (m *MockDonationRequestRepository) Add(ctx context.Context, r *donationrequest.Request) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockDonationRequestRepository) Update(ctx context.Context, r *donationrequest.Request) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockDonationRequestRepository) Get(ctx context.Context, id kernel.UUID) (*donationrequest.Request, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*donationrequest.Request)
	return r, args.Error(1)
}

func (m *MockDonationRequestRepository) FindByPair(
	ctx context.Context,
	donationID, beneficiaryID kernel.UUID,
) (*donationrequest.Request, error) {
	args := m.Called(ctx, donationID, beneficiaryID)
	r, _ := args.Get(0).(*donationrequest.Request)
	return r, args.Error(1)
}

func (m *MockDonationRequestRepository) ListByDonation(
	ctx context.Context,
	donationID kernel.UUID,
) ([]*donationrequest.Request, error) {
	args := m.Called(ctx, donationID)
	rs, _ := args.Get(0).([]*donationrequest.Request)
	return rs, args.Error(1)
}

func (m *MockDonationRequestRepository) CountByDonation(ctx context.Context, donationID kernel.UUID) (int64, error) {
	args := m.Called(ctx, donationID)
	return args.Get(0).(int64), args.Error(1)
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*delivery.Delivery)
	return d, args.Error(1)
}

func (m *MockDeliveryRepository) FindByDonation(ctx context.Context, donationID kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, donationID)
	d, _ := args.Get(0).(*delivery.Delivery)
	return d, args.Error(1)
}

type MockRecyclingBatchRepository struct{ mock.Mock }

func (m *MockRecyclingBatchRepository) Add(ctx context.Context, b *recycling.Batch) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockRecyclingBatchRepository) Update(ctx context.Context, b *recycling.Batch) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockRecyclingBatchRepository) Get(ctx context.Context, id kernel.UUID) (*recycling.Batch, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*recycling.Batch)
	return b, args.Error(1)
}

func (m *MockRecyclingBatchRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockRecyclingPartnerRepository struct{ mock.Mock }

func (m *MockRecyclingPartnerRepository) Add(ctx context.Context, p *recycling.Partner) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockRecyclingPartnerRepository) Update(ctx context.Context, p *recycling.Partner) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockRecyclingPartnerRepository) Get(ctx context.Context, id kernel.UUID) (*recycling.Partner, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*recycling.Partner)
	return p, args.Error(1)
}

type MockProfileRepository struct{ mock.Mock }

func (m *MockProfileRepository) Add(ctx context.Context, p *profile.Profile) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProfileRepository) Update(ctx context.Context, p *profile.Profile) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProfileRepository) Get(ctx context.Context, id kernel.UUID) (*profile.Profile, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*profile.Profile)
	return p, args.Error(1)
}

func (m *MockProfileRepository) ListStaff(ctx context.Context) ([]*profile.Profile, error) {
	args := m.Called(ctx)
	ps, _ := args.Get(0).([]*profile.Profile)
	return ps, args.Error(1)
}

type MockCollectionPointRepository struct{ mock.Mock }

func (m *MockCollectionPointRepository) Add(ctx context.Context, c *collectionpoint.CollectionPoint) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCollectionPointRepository) Get(ctx context.Context, id kernel.UUID) (*collectionpoint.CollectionPoint, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*collectionpoint.CollectionPoint)
	return c, args.Error(1)
}

// MockUoW satisfies every unit of work view.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) DonationRepository() ports.DonationRepository {
	return m.Called().Get(0).(ports.DonationRepository)
}

func (m *MockUoW) DonationRequestRepository() ports.DonationRequestRepository {
	return m.Called().Get(0).(ports.DonationRequestRepository)
}

func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository {
	return m.Called().Get(0).(ports.DeliveryRepository)
}

func (m *MockUoW) RecyclingBatchRepository() ports.RecyclingBatchRepository {
	return m.Called().Get(0).(ports.RecyclingBatchRepository)
}

func (m *MockUoW) RecyclingPartnerRepository() ports.RecyclingPartnerRepository {
	return m.Called().Get(0).(ports.RecyclingPartnerRepository)
}

func (m *MockUoW) ProfileRepository() ports.ProfileRepository {
	return m.Called().Get(0).(ports.ProfileRepository)
}

func (m *MockUoW) CollectionPointRepository() ports.CollectionPointRepository {
	return m.Called().Get(0).(ports.CollectionPointRepository)
}

func (m *MockUoW) MessageRepository() ports.MessageRepository {
	return m.Called().Get(0).(ports.MessageRepository)
}

type MockDonationUoWFactory struct{ mock.Mock }

func (m *MockDonationUoWFactory) Create() commands.DonationUoW {
	return m.Called().Get(0).(commands.DonationUoW)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return m.Called().Get(0).(commands.DeliveryUoW)
}

type MockRecyclingUoWFactory struct{ mock.Mock }

func (m *MockRecyclingUoWFactory) Create() commands.RecyclingUoW {
	return m.Called().Get(0).(commands.RecyclingUoW)
}

type MockProfileUoWFactory struct{ mock.Mock }

func (m *MockProfileUoWFactory) Create() commands.ProfileUoW {
	return m.Called().Get(0).(commands.ProfileUoW)
}

type MockChatUoWFactory struct{ mock.Mock }

func (m *MockChatUoWFactory) Create() commands.ChatUoW {
	return m.Called().Get(0).(commands.ChatUoW)
}

type MockMessageRepository struct{ mock.Mock }

func (m *MockMessageRepository) Add(ctx context.Context, msg *message.Message) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *MockMessageRepository) Participants(ctx context.Context, donationID, donorID kernel.UUID) ([]kernel.UUID, error) {
	args := m.Called(ctx, donationID, donorID)
	ids, _ := args.Get(0).([]kernel.UUID)
	return ids, args.Error(1)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Notify(ctx context.Context, intents ...notification.Intent) {
	m.Called(ctx, intents)
}

type MockFileStorage struct{ mock.Mock }

func (m *MockFileStorage) Upload(ctx context.Context, folder, filename, contentType string, body io.Reader) (string, error) {
	args := m.Called(ctx, folder, filename, contentType, body)
	return args.String(0), args.Error(1)
}

var fixedTime = time.Date(2026, 5, 10, 14, 0, 0, 0, time.UTC)

func actorWith(t *testing.T, role kernel.Role, staff bool) kernel.Actor {
	t.Helper()
	a, err := kernel.NewActor(kernel.NewUUID(), role, staff)
	require.NoError(t, err)
	return a
}

func staffActor(t *testing.T) kernel.Actor {
	return actorWith(t, kernel.RoleAdmin, false)
}

func donationIn(t *testing.T, donor kernel.UUID, status donation.Status) *donation.Donation {
	t.Helper()
	d, err := donation.RestoreDonation(kernel.NewUUID(), donor, donation.Details{
		Title:        "Notebook Dell",
		Condition:    donation.ConditionGood,
		DeliveryType: donation.DeliveryTypeCollectionPoint,
	}, donation.State{Status: status, Available: true, CreatedAt: fixedTime})
	require.NoError(t, err)
	return d
}

func requestIn(
	t *testing.T,
	d *donation.Donation,
	beneficiary kernel.UUID,
	status donationrequest.Status,
) *donationrequest.Request {
	t.Helper()
	r, err := donationrequest.RestoreRequest(kernel.NewUUID(), d.ID(), beneficiary, "school work", status, "", nil, fixedTime, fixedTime)
	require.NoError(t, err)
	return r
}

func activePartner(t *testing.T) *recycling.Partner {
	t.Helper()
	p, err := recycling.NewPartner(kernel.NewUUID(), recycling.PartnerDetails{
		CompanyName: "Recicla PR",
		TaxID:       "11.222.333/0001-44",
		Email:       "ops@recicla.example",
		Materials:   []recycling.Material{recycling.MaterialElectronics},
	}, fixedTime)
	require.NoError(t, err)
	return p
}
