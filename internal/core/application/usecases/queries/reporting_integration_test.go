package queries_test

import (
	"context"
	"strings"
	"testing"
	"time"

	postgres_adapter "reco/internal/adapters/out/postgres"
	"reco/internal/core/application/usecases/queries"
	"reco/internal/core/domain/model/collectionpoint"
	"reco/internal/core/domain/model/delivery"
	"reco/internal/core/domain/model/donation"
	"reco/internal/core/domain/model/donationrequest"
	"reco/internal/core/domain/model/kernel"
	"reco/internal/core/domain/model/profile"
	"reco/internal/core/domain/model/recycling"
	"reco/internal/core/ports"
	"reco/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// fixture holds the records seeded before every test.
type fixture struct {
	admin, driver, donor, beneficiary *profile.Profile
	centro, portao                    *collectionpoint.CollectionPoint
	approved, inRoute, pending        *donation.Donation
	delivered, claimed                *donation.Donation
	openRequest, doneRequest          *donationrequest.Request
	openDelivery, doneDelivery        *delivery.Delivery
	greenTech, ecoMetal               *recycling.Partner
	certified, old                    *recycling.Batch
}

type ReportingIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
	fx        fixture
}

func TestReportingIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(ReportingIntegrationTestSuite))
}

func (suite *ReportingIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(ctx, db))
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *ReportingIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ReportingIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE " + strings.Join(postgres_adapter.Tables, ", ")).Error
	suite.Require().NoError(err)
	suite.seed()
}

func (suite *ReportingIntegrationTestSuite) seed() {
	ctx := context.Background()
	require := suite.Require()
	fx := fixture{}
	var err error

	newProfile := func(name string, role kernel.Role, driver profile.DriverInfo) *profile.Profile {
		p, err := profile.NewProfile(kernel.NewUUID(), name, profile.Contact{Email: name + "@reco.example"},
			role, false, driver, now.AddDate(0, -3, 0))
		require.NoError(err)
		return p
	}
	fx.admin = newProfile("ana", kernel.RoleAdmin, profile.DriverInfo{})
	fx.driver = newProfile("dario", kernel.RoleDriver, profile.DriverInfo{Available: true, VehicleType: "van", MaxItems: 4})
	fx.donor = newProfile("dora", kernel.RoleDonor, profile.DriverInfo{})
	fx.beneficiary = newProfile("bia", kernel.RoleBeneficiary, profile.DriverInfo{})

	newPoint := func(name string, active bool, capacity int) *collectionpoint.CollectionPoint {
		geo, err := kernel.NewGeoPoint(-25.43, -49.27)
		require.NoError(err)
		cp, err := collectionpoint.RestoreCollectionPoint(kernel.NewUUID(), collectionpoint.Details{
			Name: name, Address: name + ", 1", Point: geo, Capacity: capacity,
		}, active, fx.admin.ID(), now.AddDate(0, -3, 0))
		require.NoError(err)
		return cp
	}
	fx.centro = newPoint("Centro", true, 2)
	fx.portao = newPoint("Portão", false, 0)

	newDonation := func(title string, status donation.Status, point *collectionpoint.CollectionPoint, created time.Time) *donation.Donation {
		details := donation.Details{
			Title:         title,
			Condition:     donation.ConditionGood,
			City:          "Curitiba",
			DeliveryType:  donation.DeliveryTypeHomePickup,
			PickupAddress: "Rua XV, 100",
		}
		if point != nil {
			id := point.ID()
			details.DeliveryType = donation.DeliveryTypeCollectionPoint
			details.CollectionPointID = &id
		}
		state := donation.State{Status: status, Available: true, CreatedAt: created}
		if status == donation.Delivered {
			beneficiaryID := fx.beneficiary.ID()
			state.BeneficiaryID = &beneficiaryID
		}
		d, err := donation.RestoreDonation(kernel.NewUUID(), fx.donor.ID(), details, state)
		require.NoError(err)
		return d
	}
	recent := now.AddDate(0, 0, -2)
	fx.approved = newDonation("Notebook", donation.Approved, fx.centro, recent)
	fx.inRoute = newDonation("Monitor", donation.InRoute, fx.centro, recent)
	fx.pending = newDonation("Teclado", donation.Pending, nil, recent)
	fx.delivered = newDonation("Impressora", donation.Delivered, nil, now.AddDate(0, 0, -60))
	fx.claimed = newDonation("Celular", donation.InRoute, nil, recent)

	fx.openRequest, err = donationrequest.NewRequest(kernel.NewUUID(), fx.approved.ID(), fx.beneficiary.ID(),
		"school", now.AddDate(0, 0, -1))
	require.NoError(err)
	fx.doneRequest, err = donationrequest.RestoreRequest(kernel.NewUUID(), fx.delivered.ID(), fx.beneficiary.ID(),
		"office", donationrequest.Delivered, "", nil, now.AddDate(0, 0, -60), now.AddDate(0, 0, -50))
	require.NoError(err)

	driverID := fx.driver.ID()
	fx.openDelivery, err = delivery.RestoreDelivery(delivery.Record{
		ID: kernel.NewUUID(), DonationID: fx.inRoute.ID(), DriverID: &driverID,
		Status: delivery.InTransit, AssignedAt: now.AddDate(0, 0, -1),
	})
	require.NoError(err)
	deliveredAt := now.AddDate(0, 0, -50)
	fx.doneDelivery, err = delivery.RestoreDelivery(delivery.Record{
		ID: kernel.NewUUID(), DonationID: fx.delivered.ID(), DriverID: &driverID,
		Status: delivery.Delivered, AssignedAt: now.AddDate(0, 0, -55), DeliveredAt: &deliveredAt,
	})
	require.NoError(err)

	newPartner := func(name, taxID string) *recycling.Partner {
		p, err := recycling.NewPartner(kernel.NewUUID(), recycling.PartnerDetails{
			CompanyName: name, TaxID: taxID, Email: "ops@" + strings.ToLower(name) + ".example",
			Materials: []recycling.Material{recycling.MaterialElectronics},
		}, now.AddDate(-1, 0, 0))
		require.NoError(err)
		return p
	}
	fx.greenTech = newPartner("GreenTech", "11222333000144")
	fx.ecoMetal = newPartner("EcoMetal", "55666777000188")

	weight := 12.5
	certCode, err := recycling.NewCode(now.AddDate(0, 0, -5), 2)
	require.NoError(err)
	fx.certified, err = recycling.RestoreBatch(recycling.BatchRecord{
		ID: kernel.NewUUID(), Code: certCode, PartnerID: fx.greenTech.ID(), Status: recycling.Certified,
		Items: []kernel.UUID{fx.claimed.ID()}, EstimatedWeightKg: recycling.EstimatedWeightKg(1),
		ActualWeightKg: &weight, CreatedBy: fx.admin.ID(), CreatedAt: now.AddDate(0, 0, -5),
		Certificate: recycling.Certificate{Number: "CERT-1"},
	})
	require.NoError(err)
	oldCode, err := recycling.NewCode(now.AddDate(0, 0, -100), 1)
	require.NoError(err)
	fx.old, err = recycling.NewBatch(kernel.NewUUID(), oldCode, fx.ecoMetal.ID(),
		[]kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}, fx.admin.ID(), "", now.AddDate(0, 0, -100))
	require.NoError(err)

	uow := suite.factory.Create()
	require.NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	for _, p := range []*profile.Profile{fx.admin, fx.driver, fx.donor, fx.beneficiary} {
		require.NoError(uow.ProfileRepository().Add(ctx, p))
	}
	for _, cp := range []*collectionpoint.CollectionPoint{fx.centro, fx.portao} {
		require.NoError(uow.CollectionPointRepository().Add(ctx, cp))
	}
	for _, d := range []*donation.Donation{fx.approved, fx.inRoute, fx.pending, fx.delivered, fx.claimed} {
		require.NoError(uow.DonationRepository().Add(ctx, d))
	}
	require.NoError(uow.DonationRequestRepository().Add(ctx, fx.openRequest))
	require.NoError(uow.DonationRequestRepository().Add(ctx, fx.doneRequest))
	require.NoError(uow.DeliveryRepository().Add(ctx, fx.openDelivery))
	require.NoError(uow.DeliveryRepository().Add(ctx, fx.doneDelivery))
	require.NoError(uow.RecyclingPartnerRepository().Add(ctx, fx.greenTech))
	require.NoError(uow.RecyclingPartnerRepository().Add(ctx, fx.ecoMetal))
	require.NoError(uow.RecyclingBatchRepository().Add(ctx, fx.certified))
	require.NoError(uow.RecyclingBatchRepository().Add(ctx, fx.old))
	require.NoError(uow.Commit(ctx))

	suite.fx = fx
}

func (suite *ReportingIntegrationTestSuite) actorOf(p *profile.Profile) kernel.Actor {
	a, err := p.Actor()
	suite.Require().NoError(err)
	return a
}

func (suite *ReportingIntegrationTestSuite) TestDashboardStats() {
	q, err := queries.NewGetDashboardStatsQuery(suite.actorOf(suite.fx.admin), now)
	suite.Require().NoError(err)

	stats, err := queries.NewGetDashboardStatsQueryHandler(suite.db).Handle(context.Background(), q)

	suite.Require().NoError(err)
	suite.Equal(int64(5), stats.TotalDonations)
	suite.Equal(int64(1), stats.Donations["pending"])
	suite.Equal(int64(1), stats.Donations["approved"])
	suite.Equal(int64(2), stats.Donations["in_route"])
	suite.Equal(int64(1), stats.Donations["delivered"])
	suite.Equal(int64(0), stats.Donations["for_recycling"])
	suite.Equal(int64(4), stats.DonationsLast30Days)

	suite.Equal(int64(2), stats.TotalRequests)
	suite.Equal(int64(1), stats.Requests["pending"])
	suite.Equal(int64(1), stats.RequestsLast30Days)

	suite.Equal(int64(2), stats.TotalDeliveries)
	suite.Equal(int64(1), stats.Deliveries["in_transit"])
	suite.Equal(int64(1), stats.DeliveriesLast30Days)

	suite.Equal(int64(1), stats.RecyclingBatches["certified"])
	suite.Equal(int64(1), stats.RecyclingBatches["created"])

	suite.Equal(int64(1), stats.ProfilesByRole["admin"])
	suite.Equal(int64(1), stats.ProfilesByRole["driver"])
	suite.Equal(int64(0), stats.ProfilesByRole["recycler"])
	suite.Equal(int64(1), stats.AvailableDrivers)
	suite.Equal(int64(1), stats.ActiveCollectionPoints)

	suite.InDelta(12.0, stats.EstimatedKg, 1e-9)
	suite.InDelta(720.0, stats.EstimatedCO2Kg, 1e-9)
}

func (suite *ReportingIntegrationTestSuite) TestRecyclingReport_LastMonth() {
	q, err := queries.NewGetRecyclingReportQuery(suite.actorOf(suite.fx.admin), "30", now)
	suite.Require().NoError(err)

	report, err := queries.NewGetRecyclingReportQueryHandler(suite.db).Handle(context.Background(), q)

	suite.Require().NoError(err)
	suite.Equal(queries.PeriodMonth, report.Period)
	suite.Require().NotNil(report.Since)
	suite.Equal(int64(1), report.TotalBatches)
	suite.Equal(int64(1), report.CertifiedBatches)
	suite.Equal(int64(1), report.TotalItems)
	suite.InDelta(12.5, report.TotalWeightKg, 1e-9)
	suite.InDelta(750.0, report.Impact.CO2AvoidedKg, 1e-9)
	suite.Require().Len(report.Partners, 1)
	suite.Equal("GreenTech", report.Partners[0].CompanyName)
	suite.True(report.Partners[0].PartnerID.IsEqual(suite.fx.greenTech.ID()))
}

func (suite *ReportingIntegrationTestSuite) TestRecyclingReport_AllTime() {
	q, err := queries.NewGetRecyclingReportQuery(suite.actorOf(suite.fx.admin), "all", now)
	suite.Require().NoError(err)

	report, err := queries.NewGetRecyclingReportQueryHandler(suite.db).Handle(context.Background(), q)

	suite.Require().NoError(err)
	suite.Nil(report.Since)
	suite.Equal(int64(2), report.TotalBatches)
	suite.Equal(int64(3), report.TotalItems)
	suite.InDelta(12.5, report.TotalWeightKg, 1e-9, "unweighed batches add nothing")
	suite.Require().Len(report.Partners, 2)
	suite.Equal("GreenTech", report.Partners[0].CompanyName)
	suite.Equal("EcoMetal", report.Partners[1].CompanyName)
	suite.Equal(int64(1), report.Partners[1].BatchCount)
	suite.InDelta(0.0, report.Partners[1].TotalWeightKg, 1e-9)
}

func (suite *ReportingIntegrationTestSuite) TestCollectionPoints_WithInventory() {
	handler := queries.NewListCollectionPointsQueryHandler(suite.db)

	all, err := handler.Handle(context.Background(), queries.NewListCollectionPointsQuery(false))
	suite.Require().NoError(err)
	suite.Require().Len(all, 2)
	suite.Equal("Centro", all[0].Name)
	suite.Equal(int64(2), all[0].Inventory)
	suite.False(all[0].HasRoom)
	suite.Equal("Portão", all[1].Name)
	suite.False(all[1].Active)
	suite.True(all[1].HasRoom)

	active, err := handler.Handle(context.Background(), queries.NewListCollectionPointsQuery(true))
	suite.Require().NoError(err)
	suite.Require().Len(active, 1)
	suite.True(active[0].ID.IsEqual(suite.fx.centro.ID()))
}

func (suite *ReportingIntegrationTestSuite) TestDriverDeliveries() {
	q, err := queries.NewGetDriverDeliveriesQuery(suite.actorOf(suite.fx.driver), suite.fx.driver.ID())
	suite.Require().NoError(err)

	resp, err := queries.NewGetDriverDeliveriesQueryHandler(suite.db).Handle(context.Background(), q)

	suite.Require().NoError(err)
	suite.Equal(queries.DriverDeliveryStats{Pending: 0, InTransit: 1, Completed: 1, Total: 2}, resp.Stats)
	suite.Require().Len(resp.Active, 1)
	suite.True(resp.Active[0].ID.IsEqual(suite.fx.openDelivery.ID()))
	suite.Equal("Monitor", resp.Active[0].DonationTitle)
	suite.Equal("in_transit", resp.Active[0].Status)
	suite.Require().Len(resp.Recent, 1)
	suite.Equal("delivered", resp.Recent[0].Status)
	suite.NotNil(resp.Recent[0].DeliveredAt)
}

func (suite *ReportingIntegrationTestSuite) TestDriverDeliveries_OtherDriverIsDenied() {
	q, err := queries.NewGetDriverDeliveriesQuery(suite.actorOf(suite.fx.donor), suite.fx.driver.ID())
	suite.Require().NoError(err)

	_, err = queries.NewGetDriverDeliveriesQueryHandler(suite.db).Handle(context.Background(), q)

	suite.Require().ErrorIs(err, errs.ErrPermissionDenied)
}

func (suite *ReportingIntegrationTestSuite) TestBatchImpact() {
	handler := queries.NewGetBatchImpactQueryHandler(suite.db)

	q, err := queries.NewGetBatchImpactQuery(suite.fx.old.ID())
	suite.Require().NoError(err)
	estimated, err := handler.Handle(context.Background(), q)
	suite.Require().NoError(err)
	suite.Equal(int64(2), estimated.Items)
	suite.Nil(estimated.ActualWeightKg)
	suite.Equal("created", estimated.Status)
	suite.InDelta(360.0, estimated.Impact.CO2AvoidedKg, 1e-9)

	q, err = queries.NewGetBatchImpactQuery(suite.fx.certified.ID())
	suite.Require().NoError(err)
	weighed, err := handler.Handle(context.Background(), q)
	suite.Require().NoError(err)
	suite.Equal(suite.fx.certified.Code().String(), weighed.Code)
	suite.InDelta(6250.0, weighed.Impact.WaterSavedL, 1e-9)

	q, err = queries.NewGetBatchImpactQuery(kernel.NewUUID())
	suite.Require().NoError(err)
	_, err = handler.Handle(context.Background(), q)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}
