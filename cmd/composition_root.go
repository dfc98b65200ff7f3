package cmd

import (
	"context"
	"log/slog"

	httpin "reco/internal/adapters/in/http"
	"reco/internal/adapters/out/notify"
	"reco/internal/adapters/out/postgres"
	"reco/internal/adapters/out/postgres/profilerepo"
	"reco/internal/adapters/out/s3storage"
	"reco/internal/core/application/usecases/commands"
	"reco/internal/core/application/usecases/queries"
	"reco/internal/core/ports"
	"reco/internal/jobs"
	"reco/internal/seed"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	hub        *notify.Hub
	dispatcher *notify.Dispatcher

	// storage is nil until WithStorage; only proof and certificate uploads
	// need it.
	storage ports.FileStorage
}

func NewCompositionRoot(config Config, logger *slog.Logger, gormDB *gorm.DB) *CompositionRoot {
	hub := notify.NewHub(logger, config.WSAllowedOrigins)
	smtpSink := notify.NewSMTPSink(notify.SMTPConfig{
		Host:     config.SMTPHost,
		Port:     config.SMTPPort,
		Username: config.SMTPUsername,
		Password: config.SMTPPassword,
		From:     config.SMTPFrom,
		Timeout:  config.SMTPTimeout,
	})

	return &CompositionRoot{
		config:     config,
		logger:     logger,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		hub:        hub,
		dispatcher: notify.NewDispatcher(
			logger,
			profilerepo.NewGormProfileDirectory(gormDB),
			config.NotificationRetryCapacity,
			smtpSink, hub,
		),
	}
}

func (c *CompositionRoot) WithStorage(ctx context.Context) error {
	storage, err := s3storage.New(ctx, s3storage.Config{
		Bucket:          c.config.S3Bucket,
		Region:          c.config.S3Region,
		Endpoint:        c.config.S3Endpoint,
		AccessKeyID:     c.config.S3AccessKeyID,
		SecretAccessKey: c.config.S3SecretAccessKey,
		PublicBaseURL:   c.config.S3PublicBaseURL,
		UsePathStyle:    c.config.S3UsePathStyle,
	})
	if err != nil {
		return err
	}
	c.storage = storage
	return nil
}

func (c *CompositionRoot) notifier() ports.Notifier {
	return c.dispatcher
}

func (c *CompositionRoot) donationUoWFactory() commands.DonationUoWFactory {
	return FuncDonationUoWFactory(func() commands.DonationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) recyclingUoWFactory() commands.RecyclingUoWFactory {
	return FuncRecyclingUoWFactory(func() commands.RecyclingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) profileUoWFactory() commands.ProfileUoWFactory {
	return FuncProfileUoWFactory(func() commands.ProfileUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) chatUoWFactory() commands.ChatUoWFactory {
	return FuncChatUoWFactory(func() commands.ChatUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateProfileCommandHandler() *commands.CreateProfileCommandHandler {
	return commands.NewCreateProfileCommandHandler(c.profileUoWFactory())
}

func (c *CompositionRoot) CreateSetDriverAvailabilityCommandHandler() *commands.SetDriverAvailabilityCommandHandler {
	return commands.NewSetDriverAvailabilityCommandHandler(c.profileUoWFactory())
}

func (c *CompositionRoot) CreateCreateCollectionPointCommandHandler() *commands.CreateCollectionPointCommandHandler {
	return commands.NewCreateCollectionPointCommandHandler(c.profileUoWFactory())
}

func (c *CompositionRoot) CreateCreateDonationCommandHandler() *commands.CreateDonationCommandHandler {
	return commands.NewCreateDonationCommandHandler(c.donationUoWFactory())
}

func (c *CompositionRoot) CreateEditDonationCommandHandler() *commands.EditDonationCommandHandler {
	return commands.NewEditDonationCommandHandler(c.donationUoWFactory())
}

func (c *CompositionRoot) CreatePostMessageCommandHandler() *commands.PostMessageCommandHandler {
	return commands.NewPostMessageCommandHandler(c.chatUoWFactory())
}

func (c *CompositionRoot) CreateDeleteDonationCommandHandler() *commands.DeleteDonationCommandHandler {
	return commands.NewDeleteDonationCommandHandler(c.donationUoWFactory())
}

func (c *CompositionRoot) CreateApproveDonationCommandHandler() *commands.ApproveDonationCommandHandler {
	return commands.NewApproveDonationCommandHandler(c.donationUoWFactory(), c.notifier())
}

func (c *CompositionRoot) CreateRejectDonationCommandHandler() *commands.RejectDonationCommandHandler {
	return commands.NewRejectDonationCommandHandler(c.donationUoWFactory(), c.notifier())
}

func (c *CompositionRoot) CreateMarkDonationForRecyclingCommandHandler() *commands.MarkDonationForRecyclingCommandHandler {
	return commands.NewMarkDonationForRecyclingCommandHandler(c.donationUoWFactory())
}

func (c *CompositionRoot) CreateSelectBeneficiaryCommandHandler() *commands.SelectBeneficiaryCommandHandler {
	return commands.NewSelectBeneficiaryCommandHandler(c.donationUoWFactory())
}

func (c *CompositionRoot) CreateSubmitDonationRequestCommandHandler() *commands.SubmitDonationRequestCommandHandler {
	return commands.NewSubmitDonationRequestCommandHandler(c.donationUoWFactory(), c.notifier())
}

func (c *CompositionRoot) CreateApproveDonationRequestCommandHandler() *commands.ApproveDonationRequestCommandHandler {
	return commands.NewApproveDonationRequestCommandHandler(c.donationUoWFactory(), c.notifier())
}

func (c *CompositionRoot) CreateRejectDonationRequestCommandHandler() *commands.RejectDonationRequestCommandHandler {
	return commands.NewRejectDonationRequestCommandHandler(c.donationUoWFactory(), c.notifier())
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() *commands.CreateDeliveryCommandHandler {
	return commands.NewCreateDeliveryCommandHandler(c.deliveryUoWFactory(), c.notifier())
}

func (c *CompositionRoot) CreateChangeDeliveryStatusCommandHandler() *commands.ChangeDeliveryStatusCommandHandler {
	return commands.NewChangeDeliveryStatusCommandHandler(c.deliveryUoWFactory(), c.notifier())
}

func (c *CompositionRoot) CreateAttachDeliveryProofCommandHandler() *commands.AttachDeliveryProofCommandHandler {
	return commands.NewAttachDeliveryProofCommandHandler(c.deliveryUoWFactory(), c.storage)
}

func (c *CompositionRoot) CreateRegisterRecyclingPartnerCommandHandler() *commands.RegisterRecyclingPartnerCommandHandler {
	return commands.NewRegisterRecyclingPartnerCommandHandler(c.recyclingUoWFactory())
}

func (c *CompositionRoot) CreateSetRecyclingPartnerActiveCommandHandler() *commands.SetRecyclingPartnerActiveCommandHandler {
	return commands.NewSetRecyclingPartnerActiveCommandHandler(c.recyclingUoWFactory())
}

func (c *CompositionRoot) CreateCreateRecyclingBatchCommandHandler() *commands.CreateRecyclingBatchCommandHandler {
	return commands.NewCreateRecyclingBatchCommandHandler(c.recyclingUoWFactory())
}

func (c *CompositionRoot) CreateChangeRecyclingBatchStatusCommandHandler() *commands.ChangeRecyclingBatchStatusCommandHandler {
	return commands.NewChangeRecyclingBatchStatusCommandHandler(c.recyclingUoWFactory(), c.notifier())
}

func (c *CompositionRoot) CreateUploadRecyclingCertificateCommandHandler() *commands.UploadRecyclingCertificateCommandHandler {
	return commands.NewUploadRecyclingCertificateCommandHandler(c.recyclingUoWFactory(), c.notifier(), c.storage)
}

func (c *CompositionRoot) CreateListCollectionPointsQueryHandler() queries.ListCollectionPointsQueryHandler {
	return queries.NewListCollectionPointsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDashboardStatsQueryHandler() queries.GetDashboardStatsQueryHandler {
	return queries.NewGetDashboardStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRecyclingReportQueryHandler() queries.GetRecyclingReportQueryHandler {
	return queries.NewGetRecyclingReportQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDriverDeliveriesQueryHandler() queries.GetDriverDeliveriesQueryHandler {
	return queries.NewGetDriverDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBatchImpactQueryHandler() queries.GetBatchImpactQueryHandler {
	return queries.NewGetBatchImpactQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListDonationsQueryHandler() queries.ListDonationsQueryHandler {
	return queries.NewListDonationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDonationQueryHandler() queries.GetDonationQueryHandler {
	return queries.NewGetDonationQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListMyDonationsQueryHandler() queries.ListMyDonationsQueryHandler {
	return queries.NewListMyDonationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListMyRequestsQueryHandler() queries.ListMyRequestsQueryHandler {
	return queries.NewListMyRequestsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRequestQueryHandler() queries.GetRequestQueryHandler {
	return queries.NewGetRequestQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListMessagesQueryHandler() queries.ListMessagesQueryHandler {
	return queries.NewListMessagesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListAllDonationsQueryHandler() queries.ListAllDonationsQueryHandler {
	return queries.NewListAllDonationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListAllRequestsQueryHandler() queries.ListAllRequestsQueryHandler {
	return queries.NewListAllRequestsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListAllDeliveriesQueryHandler() queries.ListAllDeliveriesQueryHandler {
	return queries.NewListAllDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetImpactReportQueryHandler() queries.GetImpactReportQueryHandler {
	return queries.NewGetImpactReportQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBeneficiaryReportQueryHandler() queries.GetBeneficiaryReportQueryHandler {
	return queries.NewGetBeneficiaryReportQueryHandler(c.gormDB)
}

// CreateHTTPHandlers collects every use case exposed over HTTP.
func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateProfile:         c.CreateCreateProfileCommandHandler(),
		SetDriverAvailability: c.CreateSetDriverAvailabilityCommandHandler(),

		CreateDonation:         c.CreateCreateDonationCommandHandler(),
		EditDonation:           c.CreateEditDonationCommandHandler(),
		DeleteDonation:         c.CreateDeleteDonationCommandHandler(),
		ApproveDonation:        c.CreateApproveDonationCommandHandler(),
		RejectDonation:         c.CreateRejectDonationCommandHandler(),
		MarkDonationRecycling:  c.CreateMarkDonationForRecyclingCommandHandler(),
		SelectBeneficiary:      c.CreateSelectBeneficiaryCommandHandler(),
		SubmitDonationRequest:  c.CreateSubmitDonationRequestCommandHandler(),
		ApproveDonationRequest: c.CreateApproveDonationRequestCommandHandler(),
		RejectDonationRequest:  c.CreateRejectDonationRequestCommandHandler(),

		CreateDelivery:       c.CreateCreateDeliveryCommandHandler(),
		ChangeDeliveryStatus: c.CreateChangeDeliveryStatusCommandHandler(),
		AttachDeliveryProof:  c.CreateAttachDeliveryProofCommandHandler(),

		RegisterRecyclingPartner:   c.CreateRegisterRecyclingPartnerCommandHandler(),
		SetRecyclingPartnerActive:  c.CreateSetRecyclingPartnerActiveCommandHandler(),
		CreateRecyclingBatch:       c.CreateCreateRecyclingBatchCommandHandler(),
		ChangeRecyclingBatchStatus: c.CreateChangeRecyclingBatchStatusCommandHandler(),
		UploadRecyclingCertificate: c.CreateUploadRecyclingCertificateCommandHandler(),

		CreateCollectionPoint: c.CreateCreateCollectionPointCommandHandler(),

		PostMessage: c.CreatePostMessageCommandHandler(),

		ListDonations:     c.CreateListDonationsQueryHandler(),
		GetDonation:       c.CreateGetDonationQueryHandler(),
		ListMyDonations:   c.CreateListMyDonationsQueryHandler(),
		ListMyRequests:    c.CreateListMyRequestsQueryHandler(),
		GetRequest:        c.CreateGetRequestQueryHandler(),
		ListMessages:      c.CreateListMessagesQueryHandler(),
		ListAllDonations:  c.CreateListAllDonationsQueryHandler(),
		ListAllRequests:   c.CreateListAllRequestsQueryHandler(),
		ListAllDeliveries: c.CreateListAllDeliveriesQueryHandler(),

		ListCollectionPoints: c.CreateListCollectionPointsQueryHandler(),
		GetDashboardStats:    c.CreateGetDashboardStatsQueryHandler(),
		GetRecyclingReport:   c.CreateGetRecyclingReportQueryHandler(),
		GetDriverDeliveries:  c.CreateGetDriverDeliveriesQueryHandler(),
		GetBatchImpact:       c.CreateGetBatchImpactQueryHandler(),
		GetImpactReport:      c.CreateGetImpactReportQueryHandler(),
		GetBeneficiaryReport: c.CreateGetBeneficiaryReportQueryHandler(),
	}
}

// CreateRouter builds the HTTP entry point with the live notification feed.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	return httpin.NewRouter(httpin.RouterConfig{
		Server:        httpin.NewServer(c.CreateHTTPHandlers()),
		Authenticator: httpin.NewAuthenticator(c.config.JWTSecret, c.config.JWTTTL),
		Feed:          c.hub,
		Logger:        c.logger,
		CORSOrigins:   c.config.CORSOrigins,
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.dispatcher, c.config.NotificationRetrySchedule, c.logger)
}

func (c *CompositionRoot) CreateSeeder() (*seed.Seeder, error) {
	return seed.NewSeeder(seed.Handlers{
		CreateProfile:            c.CreateCreateProfileCommandHandler(),
		CreateCollectionPoint:    c.CreateCreateCollectionPointCommandHandler(),
		RegisterRecyclingPartner: c.CreateRegisterRecyclingPartnerCommandHandler(),
		CreateDonation:           c.CreateCreateDonationCommandHandler(),
	}, c.logger)
}

type FuncDonationUoWFactory func() commands.DonationUoW

func (f FuncDonationUoWFactory) Create() commands.DonationUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncRecyclingUoWFactory func() commands.RecyclingUoW

func (f FuncRecyclingUoWFactory) Create() commands.RecyclingUoW {
	return f()
}

type FuncProfileUoWFactory func() commands.ProfileUoW

func (f FuncProfileUoWFactory) Create() commands.ProfileUoW {
	return f()
}

type FuncChatUoWFactory func() commands.ChatUoW

func (f FuncChatUoWFactory) Create() commands.ChatUoW {
	return f()
}
