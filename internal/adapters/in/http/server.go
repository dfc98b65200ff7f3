package http

import (
	"context"
	"mime/multipart"
	"net/http"
	"time"

	"reco/internal/core/application/usecases/commands"
	"reco/internal/core/application/usecases/queries"
	"reco/internal/core/domain/model/collectionpoint"
	"reco/internal/core/domain/model/delivery"
	"reco/internal/core/domain/model/donation"
	"reco/internal/core/domain/model/kernel"
	"reco/internal/core/domain/model/profile"
	"reco/internal/core/domain/model/recycling"
	"reco/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// CommandHandler runs a state-changing use case.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, command C) error
}

// ResultHandler runs a use case that produces a value.
type ResultHandler[Q, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}

// Handlers groups every use case the API exposes.
type Handlers struct {
	CreateProfile         CommandHandler[commands.CreateProfileCommand]
	SetDriverAvailability CommandHandler[commands.SetDriverAvailabilityCommand]

	CreateDonation         CommandHandler[commands.CreateDonationCommand]
	EditDonation           CommandHandler[commands.EditDonationCommand]
	DeleteDonation         CommandHandler[commands.DeleteDonationCommand]
	ApproveDonation        CommandHandler[commands.ApproveDonationCommand]
	RejectDonation         CommandHandler[commands.RejectDonationCommand]
	MarkDonationRecycling  CommandHandler[commands.MarkDonationForRecyclingCommand]
	SelectBeneficiary      CommandHandler[commands.SelectBeneficiaryCommand]
	SubmitDonationRequest  CommandHandler[commands.SubmitDonationRequestCommand]
	ApproveDonationRequest CommandHandler[commands.ApproveDonationRequestCommand]
	RejectDonationRequest  CommandHandler[commands.RejectDonationRequestCommand]

	CreateDelivery       CommandHandler[commands.CreateDeliveryCommand]
	ChangeDeliveryStatus CommandHandler[commands.ChangeDeliveryStatusCommand]
	AttachDeliveryProof  CommandHandler[commands.AttachDeliveryProofCommand]

	RegisterRecyclingPartner   CommandHandler[commands.RegisterRecyclingPartnerCommand]
	SetRecyclingPartnerActive  CommandHandler[commands.SetRecyclingPartnerActiveCommand]
	CreateRecyclingBatch       ResultHandler[commands.CreateRecyclingBatchCommand, recycling.Code]
	ChangeRecyclingBatchStatus CommandHandler[commands.ChangeRecyclingBatchStatusCommand]
	UploadRecyclingCertificate CommandHandler[commands.UploadRecyclingCertificateCommand]

	CreateCollectionPoint CommandHandler[commands.CreateCollectionPointCommand]

	PostMessage CommandHandler[commands.PostMessageCommand]

	ListDonations     ResultHandler[queries.ListDonationsQuery, queries.ListDonationsQueryResponse]
	GetDonation       ResultHandler[queries.GetDonationQuery, queries.GetDonationQueryResponse]
	ListMyDonations   ResultHandler[queries.ListMyDonationsQuery, queries.ListMyDonationsQueryResponse]
	ListMyRequests    ResultHandler[queries.ListMyRequestsQuery, queries.ListMyRequestsQueryResponse]
	GetRequest        ResultHandler[queries.GetRequestQuery, queries.GetRequestQueryResponse]
	ListMessages      ResultHandler[queries.ListMessagesQuery, queries.ListMessagesQueryResponse]
	ListAllDonations  ResultHandler[queries.ListAllDonationsQuery, queries.ListAllDonationsQueryResponse]
	ListAllRequests   ResultHandler[queries.ListAllRequestsQuery, queries.ListAllRequestsQueryResponse]
	ListAllDeliveries ResultHandler[queries.ListAllDeliveriesQuery, queries.ListAllDeliveriesQueryResponse]

	ListCollectionPoints ResultHandler[queries.ListCollectionPointsQuery, []queries.CollectionPointView]
	GetDashboardStats    ResultHandler[queries.GetDashboardStatsQuery, queries.GetDashboardStatsQueryResponse]
	GetRecyclingReport   ResultHandler[queries.GetRecyclingReportQuery, queries.GetRecyclingReportQueryResponse]
	GetDriverDeliveries  ResultHandler[queries.GetDriverDeliveriesQuery, queries.GetDriverDeliveriesQueryResponse]
	GetBatchImpact       ResultHandler[queries.GetBatchImpactQuery, queries.GetBatchImpactQueryResponse]
	GetImpactReport      ResultHandler[queries.GetImpactReportQuery, queries.GetImpactReportQueryResponse]
	GetBeneficiaryReport ResultHandler[queries.GetBeneficiaryReportQuery, queries.GetBeneficiaryReportQueryResponse]
}

// Server implements servers.ServerInterface on top of the use cases.
type Server struct {
	h   Handlers
	now func() time.Time
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers) *Server {
	return &Server{h: handlers, now: time.Now}
}

// CreateProfile handles POST /api/v1/profiles.
func (s *Server) CreateProfile(ctx echo.Context) error {
	var body servers.NewProfile
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	role, err := kernel.ParseRole(body.Role)
	if err != nil {
		return respondError(ctx, err, "create profile")
	}

	// Users register themselves under their token subject. Staff may register
	// someone else by passing that user's id.
	actor := s.actor(ctx)
	id := actor.ID()
	if body.Id != nil {
		if id, err = kernel.UUIDFromGoogle(*body.Id); err != nil {
			return respondError(ctx, err, "create profile")
		}
	}
	cmd, err := commands.NewCreateProfileCommand(
		actor, id, body.Username,
		profile.Contact{
			FullName: deref(body.FullName),
			Email:    deref(body.Email),
			Phone:    deref(body.Phone),
			City:     deref(body.City),
		},
		role, deref(body.Staff),
		profile.DriverInfo{
			Available:   deref(body.Available),
			VehicleType: deref(body.VehicleType),
			MaxItems:    deref(body.MaxItems),
		},
	)
	if err != nil {
		return respondError(ctx, err, "create profile")
	}
	if err := s.h.CreateProfile.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err, "create profile")
	}
	return created(ctx, id)
}

// SetMyAvailability handles POST /api/v1/profiles/me/availability.
func (s *Server) SetMyAvailability(ctx echo.Context) error {
	var body servers.Availability
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	actor := s.actor(ctx)
	cmd, err := commands.NewSetDriverAvailabilityCommand(actor, actor.ID(), body.Available)
	if err != nil {
		return respondError(ctx, err, "set availability")
	}
	return s.noContent(ctx, s.h.SetDriverAvailability.Handle(ctx.Request().Context(), cmd), "set availability")
}

// CreateDonation handles POST /api/v1/donations.
func (s *Server) CreateDonation(ctx echo.Context) error {
	var body servers.NewDonation
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	details, err := donationDetails(body)
	if err != nil {
		return respondError(ctx, err, "create donation")
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateDonationCommand(s.actor(ctx), id, details)
	if err != nil {
		return respondError(ctx, err, "create donation")
	}
	if err := s.h.CreateDonation.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err, "create donation")
	}
	return created(ctx, id)
}

// ListDonations handles GET /api/v1/donations.
func (s *Server) ListDonations(ctx echo.Context, params servers.ListDonationsParams) error {
	query, err := queries.NewListDonationsQuery(s.actor(ctx),
		deref(params.Q), deref(params.City), deref(params.Condition), deref(params.Order))
	if err != nil {
		return respondError(ctx, err, "retrieve donations")
	}
	res, err := s.h.ListDonations.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err, "retrieve donations")
	}
	return ctx.JSON(http.StatusOK, donationSummaries(res.Donations))
}

// GetDonation handles GET /api/v1/donations/{id}.
func (s *Server) GetDonation(ctx echo.Context, id openapi_types.UUID) error {
	donationID, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return respondError(ctx, err, "retrieve donation")
	}
	query, err := queries.NewGetDonationQuery(s.actor(ctx), donationID)
	if err != nil {
		return respondError(ctx, err, "retrieve donation")
	}
	res, err := s.h.GetDonation.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err, "retrieve donation")
	}
	return ctx.JSON(http.StatusOK, servers.DonationDetail{
		Donation:            donationSummary(res.Donation),
		ContactEmail:        res.ContactEmail,
		ContactPhone:        res.ContactPhone,
		PickupAddress:       res.PickupAddress,
		CollectionPointId:   kernel.GooglePtr(res.CollectionPointID),
		CollectionPointName: res.CollectionPointName,
		BeneficiaryId:       kernel.GooglePtr(res.BeneficiaryID),
		RejectionReason:     res.RejectionReason,
		ApprovedAt:          res.ApprovedAt,
		DeliveryStatus:      res.DeliveryStatus,
		OwnRequestStatus:    res.OwnRequestStatus,
	})
}

// EditDonation handles PUT /api/v1/donations/{id}.
func (s *Server) EditDonation(ctx echo.Context, id openapi_types.UUID) error {
	var body servers.NewDonation
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	donationID, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return respondError(ctx, err, "edit donation")
	}
	details, err := donationDetails(body)
	if err != nil {
		return respondError(ctx, err, "edit donation")
	}
	cmd, err := commands.NewEditDonationCommand(s.actor(ctx), donationID, details)
	if err != nil {
		return respondError(ctx, err, "edit donation")
	}
	return s.noContent(ctx, s.h.EditDonation.Handle(ctx.Request().Context(), cmd), "edit donation")
}

// ListMessages handles GET /api/v1/donations/{id}/messages.
func (s *Server) ListMessages(ctx echo.Context, id openapi_types.UUID, params servers.ListMessagesParams) error {
	donationID, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return respondError(ctx, err, "retrieve messages")
	}
	participant, err := optionalID(params.Participant)
	if err != nil {
		return respondError(ctx, err, "retrieve messages")
	}
	query, err := queries.NewListMessagesQuery(s.actor(ctx), donationID, participant)
	if err != nil {
		return respondError(ctx, err, "retrieve messages")
	}
	res, err := s.h.ListMessages.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err, "retrieve messages")
	}

	participants := make([]servers.ChatParticipant, len(res.Participants))
	for i, p := range res.Participants {
		participants[i] = servers.ChatParticipant{ProfileId: p.ProfileID.Bytes(), Username: p.Username}
	}
	messages := make([]servers.Message, len(res.Messages))
	for i, m := range res.Messages {
		messages[i] = servers.Message{
			Id:          m.ID.Bytes(),
			SenderId:    m.SenderID.Bytes(),
			RecipientId: m.RecipientID.Bytes(),
			Text:        m.Text,
			ImageRef:    m.ImageRef,
			Read:        m.Read,
			CreatedAt:   m.CreatedAt,
		}
	}
	return ctx.JSON(http.StatusOK, servers.Chat{
		DonationId:    res.DonationID.Bytes(),
		DonationTitle: res.DonationTitle,
		Participants:  participants,
		Messages:      messages,
	})
}

// PostMessage handles POST /api/v1/donations/{id}/messages.
func (s *Server) PostMessage(ctx echo.Context, id openapi_types.UUID) error {
	var body servers.NewMessage
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	donationID, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return respondError(ctx, err, "send message")
	}
	participant, err := optionalID(body.ParticipantId)
	if err != nil {
		return respondError(ctx, err, "send message")
	}

	messageID := kernel.NewUUID()
	cmd, err := commands.NewPostMessageCommand(s.actor(ctx), messageID, donationID, participant, body.Text)
	if err != nil {
		return respondError(ctx, err, "send message")
	}
	if err := s.h.PostMessage.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err, "send message")
	}
	return created(ctx, messageID)
}

// ListMyDonations handles GET /api/v1/profiles/me/donations.
func (s *Server) ListMyDonations(ctx echo.Context) error {
	query, err := queries.NewListMyDonationsQuery(s.actor(ctx))
	if err != nil {
		return respondError(ctx, err, "retrieve donations")
	}
	res, err := s.h.ListMyDonations.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err, "retrieve donations")
	}
	return ctx.JSON(http.StatusOK, servers.DonationList{
		Stats:     donationStats(res.Stats),
		Donations: donationSummaries(res.Donations),
	})
}

// ListMyRequests handles GET /api/v1/profiles/me/requests.
func (s *Server) ListMyRequests(ctx echo.Context, params servers.ListMyRequestsParams) error {
	query, err := queries.NewListMyRequestsQuery(s.actor(ctx), deref(params.Status))
	if err != nil {
		return respondError(ctx, err, "retrieve requests")
	}
	res, err := s.h.ListMyRequests.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err, "retrieve requests")
	}
	return ctx.JSON(http.StatusOK, servers.RequestList{
		Stats:    requestStats(res.Stats),
		Requests: requestSummaries(res.Requests),
	})
}

// DeleteDonation handles DELETE /api/v1/donations/{id}.
func (s *Server) DeleteDonation(ctx echo.Context, id openapi_types.UUID) error {
	donationID, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return respondError(ctx, err, "delete donation")
	}
	cmd, err := commands.NewDeleteDonationCommand(s.actor(ctx), donationID)
	if err != nil {
		return respondError(ctx, err, "delete donation")
	}
	return s.noContent(ctx, s.h.DeleteDonation.Handle(ctx.Request().Context(), cmd), "delete donation")
}

// ApproveDonation handles POST /api/v1/donations/{id}/approve.
func (s *Server) ApproveDonation(ctx echo.Context, id openapi_types.UUID) error {
	donationID, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return respondError(ctx, err, "approve donation")
	}
	cmd, err := commands.NewApproveDonationCommand(s.actor(ctx), donationID)
	if err != nil {
		return respondError(ctx, err, "approve donation")
	}
	return s.noContent(ctx, s.h.ApproveDonation.Handle(ctx.Request().Context(), cmd), "approve donation")
}

// RejectDonation handles POST /api/v1/donations/{id}/reject.
func (s *Server) RejectDonation(ctx echo.Context, id openapi_types.UUID) error {
	var body servers.Reason
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	donationID, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return respondError(ctx, err, "reject donation")
	}
	cmd, err := commands.NewRejectDonationCommand(s.actor(ctx), donationID, deref(body.Reason))
	if err != nil {
		return respondError(ctx, err, "reject donation")
	}
	return s.noContent(ctx, s.h.RejectDonation.Handle(ctx.Request().Context(), cmd), "reject donation")
}

// RecycleDonation handles POST /api/v1/donations/{id}/recycle.
func (s *Server) RecycleDonation(ctx echo.Context, id openapi_types.UUID) error {
	donationID, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return respondError(ctx, err, "mark donation for recycling")
	}
	cmd, err := commands.NewMarkDonationForRecyclingCommand(s.actor(ctx), donationID)
	if err != nil {
		return respondError(ctx, err, "mark donation for recycling")
	}
	return s.noContent(ctx, s.h.MarkDonationRecycling.Handle(ctx.Request().Context(), cmd), "mark donation for recycling")
}

// SelectBeneficiary handles POST /api/v1/donations/{id}/beneficiary.
func (s *Server) SelectBeneficiary(ctx echo.Context, id openapi_types.UUID) error {
	var body servers.BeneficiarySelection
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	donationID, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return respondError(ctx, err, "select beneficiary")
	}
	beneficiaryID, err := kernel.UUIDFromGoogle(body.BeneficiaryId)
	if err != nil {
		return respondError(ctx, err, "select beneficiary")
	}
	cmd, err := commands.NewSelectBeneficiaryCommand(s.actor(ctx), donationID, beneficiaryID)
	if err != nil {
		return respondError(ctx, err, "select beneficiary")
	}
	return s.noContent(ctx, s.h.SelectBeneficiary.Handle(ctx.Request().Context(), cmd), "select beneficiary")
}

// SubmitDonationRequest handles POST /api/v1/donations/{id}/requests.
func (s *Server) SubmitDonationRequest(ctx echo.Context, id openapi_types.UUID) error {
	var body servers.Reason
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	donationID, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return respondError(ctx, err, "submit request")
	}

	requestID := kernel.NewUUID()
	cmd, err := commands.NewSubmitDonationRequestCommand(s.actor(ctx), requestID, donationID, deref(body.Reason))
	if err != nil {
		return respondError(ctx, err, "submit request")
	}
	if err := s.h.SubmitDonationRequest.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err, "submit request")
	}
	return created(ctx, requestID)
}

// CreateDelivery handles POST /api/v1/donations/{id}/delivery.
func (s *Server) CreateDelivery(ctx echo.Context, id openapi_types.UUID) error {
	var body servers.NewDelivery
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	donationID, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return respondError(ctx, err, "create delivery")
	}
	driverID, err := optionalID(body.DriverId)
	if err != nil {
		return respondError(ctx, err, "create delivery")
	}

	deliveryID := kernel.NewUUID()
	cmd, err := commands.NewCreateDeliveryCommand(s.actor(ctx), deliveryID, donationID, driverID)
	if err != nil {
		return respondError(ctx, err, "create delivery")
	}
	if err := s.h.CreateDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err, "create delivery")
	}
	return created(ctx, deliveryID)
}

// GetRequest handles GET /api/v1/requests/{id}.
func (s *Server) GetRequest(ctx echo.Context, id openapi_types.UUID) error {
	requestID, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return respondError(ctx, err, "retrieve request")
	}
	query, err := queries.NewGetRequestQuery(s.actor(ctx), requestID)
	if err != nil {
		return respondError(ctx, err, "retrieve request")
	}
	res, err := s.h.GetRequest.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err, "retrieve request")
	}
	return ctx.JSON(http.StatusOK, requestSummary(res.Request))
}

// ApproveRequest handles POST /api/v1/requests/{id}/approve.
func (s *Server) ApproveRequest(ctx echo.Context, id openapi_types.UUID) error {
	requestID, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return respondError(ctx, err, "approve request")
	}
	cmd, err := commands.NewApproveDonationRequestCommand(s.actor(ctx), requestID)
	if err != nil {
		return respondError(ctx, err, "approve request")
	}
	return s.noContent(ctx, s.h.ApproveDonationRequest.Handle(ctx.Request().Context(), cmd), "approve request")
}

// RejectRequest handles POST /api/v1/requests/{id}/reject.
func (s *Server) RejectRequest(ctx echo.Context, id openapi_types.UUID) error {
	var body servers.Reason
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	requestID, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return respondError(ctx, err, "reject request")
	}
	cmd, err := commands.NewRejectDonationRequestCommand(s.actor(ctx), requestID, deref(body.Reason))
	if err != nil {
		return respondError(ctx, err, "reject request")
	}
	return s.noContent(ctx, s.h.RejectDonationRequest.Handle(ctx.Request().Context(), cmd), "reject request")
}

// ChangeDeliveryStatus handles POST /api/v1/deliveries/{id}/status.
func (s *Server) ChangeDeliveryStatus(ctx echo.Context, id openapi_types.UUID) error {
	var body servers.DeliveryStatusChange
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	deliveryID, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return respondError(ctx, err, "change delivery status")
	}
	status, err := delivery.ParseStatus(body.Status)
	if err != nil {
		return respondError(ctx, err, "change delivery status")
	}
	point, err := kernel.NewOptionalGeoPoint(body.Latitude, body.Longitude)
	if err != nil {
		return respondError(ctx, err, "change delivery status")
	}
	cmd, err := commands.NewChangeDeliveryStatusCommand(s.actor(ctx), deliveryID, status, point)
	if err != nil {
		return respondError(ctx, err, "change delivery status")
	}
	return s.noContent(ctx, s.h.ChangeDeliveryStatus.Handle(ctx.Request().Context(), cmd), "change delivery status")
}

// AttachDeliveryProof handles POST /api/v1/deliveries/{id}/proof.
func (s *Server) AttachDeliveryProof(ctx echo.Context, id openapi_types.UUID) error {
	deliveryID, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return respondError(ctx, err, "attach proof")
	}
	image, closeImage, err := formFile(ctx, "image")
	if err != nil {
		return badRequest(ctx, "Invalid image upload")
	}
	defer closeImage()
	signature, closeSignature, err := formFile(ctx, "signature")
	if err != nil {
		return badRequest(ctx, "Invalid signature upload")
	}
	defer closeSignature()

	cmd, err := commands.NewAttachDeliveryProofCommand(s.actor(ctx), deliveryID, image, signature, ctx.FormValue("notes"))
	if err != nil {
		return respondError(ctx, err, "attach proof")
	}
	return s.noContent(ctx, s.h.AttachDeliveryProof.Handle(ctx.Request().Context(), cmd), "attach proof")
}

// GetMyDeliveries handles GET /api/v1/drivers/me/deliveries.
func (s *Server) GetMyDeliveries(ctx echo.Context) error {
	actor := s.actor(ctx)
	query, err := queries.NewGetDriverDeliveriesQuery(actor, actor.ID())
	if err != nil {
		return respondError(ctx, err, "retrieve deliveries")
	}
	res, err := s.h.GetDriverDeliveries.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err, "retrieve deliveries")
	}
	return ctx.JSON(http.StatusOK, servers.DriverDeliveries{
		Stats: servers.DriverDeliveryStats{
			Pending:   res.Stats.Pending,
			InTransit: res.Stats.InTransit,
			Completed: res.Stats.Completed,
			Total:     res.Stats.Total,
		},
		Active: driverDeliveries(res.Active),
		Recent: driverDeliveries(res.Recent),
	})
}

// RegisterRecyclingPartner handles POST /api/v1/recycling/partners.
func (s *Server) RegisterRecyclingPartner(ctx echo.Context) error {
	var body servers.NewRecyclingPartner
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	materials, err := recycling.ParseMaterials(body.Materials)
	if err != nil {
		return respondError(ctx, err, "register partner")
	}
	point, err := kernel.NewOptionalGeoPoint(body.Latitude, body.Longitude)
	if err != nil {
		return respondError(ctx, err, "register partner")
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewRegisterRecyclingPartnerCommand(s.actor(ctx), id, recycling.PartnerDetails{
		CompanyName:          body.CompanyName,
		TaxID:                body.TaxId,
		Address:              deref(body.Address),
		Phone:                deref(body.Phone),
		Email:                deref(body.Email),
		ContactPerson:        deref(body.ContactPerson),
		EnvironmentalLicense: deref(body.EnvironmentalLicense),
		Materials:            materials,
		MonthlyCapacityKg:    deref(body.MonthlyCapacityKg),
		Point:                point,
	})
	if err != nil {
		return respondError(ctx, err, "register partner")
	}
	if err := s.h.RegisterRecyclingPartner.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err, "register partner")
	}
	return created(ctx, id)
}

// SetRecyclingPartnerActive handles POST /api/v1/recycling/partners/{id}/active.
func (s *Server) SetRecyclingPartnerActive(ctx echo.Context, id openapi_types.UUID) error {
	var body servers.PartnerActivity
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	partnerID, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return respondError(ctx, err, "update partner")
	}
	cmd, err := commands.NewSetRecyclingPartnerActiveCommand(s.actor(ctx), partnerID, body.Active)
	if err != nil {
		return respondError(ctx, err, "update partner")
	}
	return s.noContent(ctx, s.h.SetRecyclingPartnerActive.Handle(ctx.Request().Context(), cmd), "update partner")
}

// CreateRecyclingBatch handles POST /api/v1/recycling/batches.
func (s *Server) CreateRecyclingBatch(ctx echo.Context) error {
	var body servers.NewRecyclingBatch
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	partnerID, err := kernel.UUIDFromGoogle(body.PartnerId)
	if err != nil {
		return respondError(ctx, err, "create batch")
	}
	donationIDs := make([]kernel.UUID, 0, len(body.DonationIds))
	for _, raw := range body.DonationIds {
		id, err := kernel.UUIDFromGoogle(raw)
		if err != nil {
			return respondError(ctx, err, "create batch")
		}
		donationIDs = append(donationIDs, id)
	}

	batchID := kernel.NewUUID()
	cmd, err := commands.NewCreateRecyclingBatchCommand(s.actor(ctx), batchID, partnerID, donationIDs, deref(body.Notes))
	if err != nil {
		return respondError(ctx, err, "create batch")
	}
	code, err := s.h.CreateRecyclingBatch.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err, "create batch")
	}
	return ctx.JSON(http.StatusCreated, servers.BatchCreated{Id: batchID.Bytes(), Code: code.String()})
}

// ChangeRecyclingBatchStatus handles POST /api/v1/recycling/batches/{id}/status.
func (s *Server) ChangeRecyclingBatchStatus(ctx echo.Context, id openapi_types.UUID) error {
	var body servers.BatchStatusChange
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	batchID, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return respondError(ctx, err, "advance batch")
	}
	status, err := recycling.ParseStatus(body.Status)
	if err != nil {
		return respondError(ctx, err, "advance batch")
	}
	cmd, err := commands.NewChangeRecyclingBatchStatusCommand(s.actor(ctx), batchID, status, recycling.StagePayload{
		ActualWeightKg: body.ActualWeightKg,
	})
	if err != nil {
		return respondError(ctx, err, "advance batch")
	}
	return s.noContent(ctx, s.h.ChangeRecyclingBatchStatus.Handle(ctx.Request().Context(), cmd), "advance batch")
}

// UploadRecyclingCertificate handles POST /api/v1/recycling/batches/{id}/certificate.
func (s *Server) UploadRecyclingCertificate(ctx echo.Context, id openapi_types.UUID) error {
	batchID, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return respondError(ctx, err, "certify batch")
	}
	var issuedAt *time.Time
	if raw := ctx.FormValue("issuedAt"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return badRequest(ctx, "Invalid issuedAt, expected RFC 3339")
		}
		issuedAt = &t
	}
	file, closeFile, err := formFile(ctx, "file")
	if err != nil {
		return badRequest(ctx, "Invalid certificate upload")
	}
	defer closeFile()

	cmd, err := commands.NewUploadRecyclingCertificateCommand(s.actor(ctx), batchID, ctx.FormValue("number"), file, issuedAt)
	if err != nil {
		return respondError(ctx, err, "certify batch")
	}
	return s.noContent(ctx, s.h.UploadRecyclingCertificate.Handle(ctx.Request().Context(), cmd), "certify batch")
}

// GetBatchImpact handles GET /api/v1/recycling/batches/{id}/impact.
func (s *Server) GetBatchImpact(ctx echo.Context, id openapi_types.UUID) error {
	batchID, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return respondError(ctx, err, "retrieve batch impact")
	}
	query, err := queries.NewGetBatchImpactQuery(batchID)
	if err != nil {
		return respondError(ctx, err, "retrieve batch impact")
	}
	res, err := s.h.GetBatchImpact.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err, "retrieve batch impact")
	}
	return ctx.JSON(http.StatusOK, servers.BatchImpact{
		BatchId:           res.BatchID.Bytes(),
		Code:              res.Code,
		Status:            res.Status,
		Items:             res.Items,
		EstimatedWeightKg: res.EstimatedWeightKg,
		ActualWeightKg:    res.ActualWeightKg,
		Impact:            impact(res.Impact),
	})
}

// ListCollectionPoints handles GET /api/v1/collection-points.
func (s *Server) ListCollectionPoints(ctx echo.Context, params servers.ListCollectionPointsParams) error {
	query := queries.NewListCollectionPointsQuery(deref(params.Active))
	points, err := s.h.ListCollectionPoints.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err, "retrieve collection points")
	}

	response := make([]servers.CollectionPoint, len(points))
	for i, p := range points {
		response[i] = servers.CollectionPoint{
			Id:           p.ID.Bytes(),
			Name:         p.Name,
			Address:      p.Address,
			Latitude:     p.Latitude,
			Longitude:    p.Longitude,
			OpeningHours: p.OpeningHours,
			Capacity:     p.Capacity,
			Active:       p.Active,
			Inventory:    p.Inventory,
			HasRoom:      p.HasRoom,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateCollectionPoint handles POST /api/v1/collection-points.
func (s *Server) CreateCollectionPoint(ctx echo.Context) error {
	var body servers.NewCollectionPoint
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	point, err := kernel.NewGeoPoint(body.Latitude, body.Longitude)
	if err != nil {
		return respondError(ctx, err, "create collection point")
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateCollectionPointCommand(s.actor(ctx), id, collectionpoint.Details{
		Name:         body.Name,
		Address:      body.Address,
		Point:        point,
		OpeningHours: deref(body.OpeningHours),
		Capacity:     deref(body.Capacity),
		Phone:        deref(body.Phone),
		Email:        deref(body.Email),
	})
	if err != nil {
		return respondError(ctx, err, "create collection point")
	}
	if err := s.h.CreateCollectionPoint.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err, "create collection point")
	}
	return created(ctx, id)
}

// ListAllDonations handles GET /api/v1/admin/donations.
func (s *Server) ListAllDonations(ctx echo.Context, params servers.ListAllDonationsParams) error {
	query, err := queries.NewListAllDonationsQuery(s.actor(ctx),
		deref(params.Status), deref(params.Condition), deref(params.Q))
	if err != nil {
		return respondError(ctx, err, "retrieve donations")
	}
	res, err := s.h.ListAllDonations.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err, "retrieve donations")
	}
	return ctx.JSON(http.StatusOK, servers.DonationList{
		Stats:     donationStats(res.Stats),
		Donations: donationSummaries(res.Donations),
	})
}

// ListAllRequests handles GET /api/v1/admin/requests.
func (s *Server) ListAllRequests(ctx echo.Context, params servers.ListAllRequestsParams) error {
	query, err := queries.NewListAllRequestsQuery(s.actor(ctx), deref(params.Status))
	if err != nil {
		return respondError(ctx, err, "retrieve requests")
	}
	res, err := s.h.ListAllRequests.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err, "retrieve requests")
	}
	return ctx.JSON(http.StatusOK, servers.RequestList{
		Stats:    requestStats(res.Stats),
		Requests: requestSummaries(res.Requests),
	})
}

// ListAllDeliveries handles GET /api/v1/admin/deliveries.
func (s *Server) ListAllDeliveries(ctx echo.Context, params servers.ListAllDeliveriesParams) error {
	driverID, err := optionalID(params.Driver)
	if err != nil {
		return respondError(ctx, err, "retrieve deliveries")
	}
	query, err := queries.NewListAllDeliveriesQuery(s.actor(ctx), deref(params.Status), driverID)
	if err != nil {
		return respondError(ctx, err, "retrieve deliveries")
	}
	res, err := s.h.ListAllDeliveries.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err, "retrieve deliveries")
	}

	deliveries := make([]servers.Delivery, len(res.Deliveries))
	for i, v := range res.Deliveries {
		deliveries[i] = servers.Delivery{
			Id:            v.ID.Bytes(),
			DonationId:    v.DonationID.Bytes(),
			DonationTitle: v.DonationTitle,
			PickupAddress: v.PickupAddress,
			City:          v.City,
			DriverId:      kernel.GooglePtr(v.DriverID),
			DriverName:    v.DriverName,
			Status:        v.Status,
			AssignedAt:    v.AssignedAt,
			PickedUpAt:    v.PickedUpAt,
			DeliveredAt:   v.DeliveredAt,
		}
	}
	return ctx.JSON(http.StatusOK, servers.DeliveryList{
		Stats: servers.DeliveryStats{
			Total:     res.Stats.Total,
			Assigned:  res.Stats.Assigned,
			PickedUp:  res.Stats.PickedUp,
			InTransit: res.Stats.InTransit,
			Delivered: res.Stats.Delivered,
			Canceled:  res.Stats.Canceled,
		},
		Deliveries: deliveries,
	})
}

// GetDashboardStats handles GET /api/v1/reports/dashboard.
func (s *Server) GetDashboardStats(ctx echo.Context) error {
	query, err := queries.NewGetDashboardStatsQuery(s.actor(ctx), s.now())
	if err != nil {
		return respondError(ctx, err, "retrieve dashboard")
	}
	res, err := s.h.GetDashboardStats.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err, "retrieve dashboard")
	}
	return ctx.JSON(http.StatusOK, servers.DashboardStats{
		Donations:              res.Donations,
		Requests:               res.Requests,
		Deliveries:             res.Deliveries,
		RecyclingBatches:       res.RecyclingBatches,
		ProfilesByRole:         res.ProfilesByRole,
		TotalDonations:         res.TotalDonations,
		TotalRequests:          res.TotalRequests,
		TotalDeliveries:        res.TotalDeliveries,
		DonationsLast30Days:    res.DonationsLast30Days,
		RequestsLast30Days:     res.RequestsLast30Days,
		DeliveriesLast30Days:   res.DeliveriesLast30Days,
		AvailableDrivers:       res.AvailableDrivers,
		ActiveCollectionPoints: res.ActiveCollectionPoints,
		EstimatedKg:            res.EstimatedKg,
		EstimatedCo2Kg:         res.EstimatedCO2Kg,
	})
}

// GetRecyclingReport handles GET /api/v1/reports/recycling.
func (s *Server) GetRecyclingReport(ctx echo.Context, params servers.GetRecyclingReportParams) error {
	query, err := queries.NewGetRecyclingReportQuery(s.actor(ctx), deref(params.Period), s.now())
	if err != nil {
		return respondError(ctx, err, "retrieve recycling report")
	}
	res, err := s.h.GetRecyclingReport.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err, "retrieve recycling report")
	}

	partners := make([]servers.PartnerStats, len(res.Partners))
	for i, p := range res.Partners {
		partners[i] = servers.PartnerStats{
			PartnerId:     p.PartnerID.Bytes(),
			CompanyName:   p.CompanyName,
			BatchCount:    p.BatchCount,
			TotalWeightKg: p.TotalWeightKg,
		}
	}
	return ctx.JSON(http.StatusOK, servers.RecyclingReport{
		Period:           string(res.Period),
		Since:            res.Since,
		TotalBatches:     res.TotalBatches,
		CertifiedBatches: res.CertifiedBatches,
		TotalItems:       res.TotalItems,
		TotalWeightKg:    res.TotalWeightKg,
		Impact:           impact(res.Impact),
		Partners:         partners,
	})
}

// GetImpactReport handles GET /api/v1/reports/impact.
func (s *Server) GetImpactReport(ctx echo.Context, params servers.GetImpactReportParams) error {
	query, err := queries.NewGetImpactReportQuery(s.actor(ctx), deref(params.Period), s.now())
	if err != nil {
		return respondError(ctx, err, "retrieve impact report")
	}
	res, err := s.h.GetImpactReport.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err, "retrieve impact report")
	}

	monthly := make([]servers.MonthlyCount, len(res.Monthly))
	for i, m := range res.Monthly {
		monthly[i] = servers.MonthlyCount{Month: m.Month, Count: m.Count}
	}
	return ctx.JSON(http.StatusOK, servers.ImpactReport{
		Period:              string(res.Period),
		Since:               res.Since,
		DeliveredDonations:  res.DeliveredDonations,
		UniqueBeneficiaries: res.UniqueBeneficiaries,
		EstimatedWeightKg:   res.EstimatedWeightKg,
		Impact:              impact(res.Impact),
		ByCondition:         res.ByCondition,
		Monthly:             monthly,
	})
}

// GetBeneficiaryReport handles GET /api/v1/reports/beneficiaries.
func (s *Server) GetBeneficiaryReport(ctx echo.Context, params servers.GetBeneficiaryReportParams) error {
	query, err := queries.NewGetBeneficiaryReportQuery(s.actor(ctx), deref(params.Period), s.now())
	if err != nil {
		return respondError(ctx, err, "retrieve beneficiary report")
	}
	res, err := s.h.GetBeneficiaryReport.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err, "retrieve beneficiary report")
	}

	top := make([]servers.BeneficiaryStats, len(res.TopBeneficiaries))
	for i, b := range res.TopBeneficiaries {
		top[i] = servers.BeneficiaryStats{
			ProfileId: b.ProfileID.Bytes(),
			Username:  b.Username,
			Requests:  b.Requests,
			Accepted:  b.Accepted,
		}
	}
	return ctx.JSON(http.StatusOK, servers.BeneficiaryReport{
		Period:              string(res.Period),
		Since:               res.Since,
		Stats:               requestStats(res.Stats),
		ApprovalRate:        res.ApprovalRate,
		UniqueBeneficiaries: res.UniqueBeneficiaries,
		TopBeneficiaries:    top,
	})
}

func (s *Server) actor(ctx echo.Context) kernel.Actor {
	actor, _ := actorFrom(ctx)
	return actor
}

func (s *Server) noContent(ctx echo.Context, err error, action string) error {
	if err != nil {
		return respondError(ctx, err, action)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func created(ctx echo.Context, id kernel.UUID) error {
	return ctx.JSON(http.StatusCreated, servers.Created{Id: id.Bytes()})
}

func deref[T any](v *T) T {
	if v == nil {
		var zero T
		return zero
	}
	return *v
}

func optionalID(id *openapi_types.UUID) (*kernel.UUID, error) {
	return kernel.UUIDPtrFromGoogle(id)
}

// formFile opens an optional multipart file. The returned closer is always
// safe to call.
func formFile(ctx echo.Context, field string) (*commands.File, func(), error) {
	header, err := ctx.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, func() {}, nil
		}
		return nil, func() {}, err
	}
	f, err := header.Open()
	if err != nil {
		return nil, func() {}, err
	}
	return &commands.File{
		Filename:    header.Filename,
		ContentType: contentType(header),
		Body:        f,
	}, func() { _ = f.Close() }, nil
}

func contentType(header *multipart.FileHeader) string {
	if ct := header.Header.Get(echo.HeaderContentType); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

func impact(i recycling.Impact) servers.Impact {
	return servers.Impact{
		WeightKg:       i.WeightKg,
		Co2AvoidedKg:   i.CO2AvoidedKg,
		EnergySavedKWh: i.EnergySavedKWh,
		WaterSavedL:    i.WaterSavedL,
		TreesPreserved: i.TreesPreserved,
	}
}

func driverDeliveries(views []queries.DeliveryView) []servers.DriverDelivery {
	out := make([]servers.DriverDelivery, len(views))
	for i, v := range views {
		out[i] = servers.DriverDelivery{
			Id:            v.ID.Bytes(),
			DonationId:    v.DonationID.Bytes(),
			DonationTitle: v.DonationTitle,
			PickupAddress: v.PickupAddress,
			City:          v.City,
			Status:        v.Status,
			AssignedAt:    v.AssignedAt,
			PickedUpAt:    v.PickedUpAt,
			DeliveredAt:   v.DeliveredAt,
		}
	}
	return out
}

// donationDetails parses the listing fields shared by create and edit.
func donationDetails(body servers.NewDonation) (donation.Details, error) {
	condition, err := donation.ParseCondition(body.Condition)
	if err != nil {
		return donation.Details{}, err
	}
	deliveryType, err := donation.ParseDeliveryType(body.DeliveryType)
	if err != nil {
		return donation.Details{}, err
	}
	pickupPoint, err := kernel.NewOptionalGeoPoint(body.PickupLatitude, body.PickupLongitude)
	if err != nil {
		return donation.Details{}, err
	}
	collectionPointID, err := optionalID(body.CollectionPointId)
	if err != nil {
		return donation.Details{}, err
	}

	return donation.Details{
		Title:             body.Title,
		Description:       deref(body.Description),
		Condition:         condition,
		City:              deref(body.City),
		ContactEmail:      deref(body.ContactEmail),
		ContactPhone:      deref(body.ContactPhone),
		ImageRef:          deref(body.ImageRef),
		DeliveryType:      deliveryType,
		PickupAddress:     deref(body.PickupAddress),
		PickupPoint:       pickupPoint,
		CollectionPointID: collectionPointID,
	}, nil
}

func donationSummary(v queries.DonationView) servers.DonationSummary {
	return servers.DonationSummary{
		Id:               v.ID.Bytes(),
		DonorId:          v.DonorID.Bytes(),
		DonorName:        v.DonorName,
		Title:            v.Title,
		Description:      v.Description,
		Condition:        v.Condition,
		City:             v.City,
		ImageRef:         v.ImageRef,
		DeliveryType:     v.DeliveryType,
		Status:           v.Status,
		Available:        v.Available,
		CreatedAt:        v.CreatedAt,
		RequestCount:     v.RequestCount,
		ApprovedRequests: v.ApprovedRequests,
	}
}

func donationSummaries(views []queries.DonationView) []servers.DonationSummary {
	out := make([]servers.DonationSummary, len(views))
	for i, v := range views {
		out[i] = donationSummary(v)
	}
	return out
}

func donationStats(s queries.DonationStats) servers.DonationStats {
	return servers.DonationStats{
		Total:        s.Total,
		Pending:      s.Pending,
		Approved:     s.Approved,
		InRoute:      s.InRoute,
		Delivered:    s.Delivered,
		Canceled:     s.Canceled,
		ForRecycling: s.ForRecycling,
	}
}

func requestSummary(v queries.RequestView) servers.RequestSummary {
	return servers.RequestSummary{
		Id:              v.ID.Bytes(),
		DonationId:      v.DonationID.Bytes(),
		DonationTitle:   v.DonationTitle,
		DonationStatus:  v.DonationStatus,
		DonorId:         v.DonorID.Bytes(),
		BeneficiaryId:   v.BeneficiaryID.Bytes(),
		BeneficiaryName: v.BeneficiaryName,
		Reason:          v.Reason,
		Status:          v.Status,
		RejectionReason: v.RejectionReason,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

func requestSummaries(views []queries.RequestView) []servers.RequestSummary {
	out := make([]servers.RequestSummary, len(views))
	for i, v := range views {
		out[i] = requestSummary(v)
	}
	return out
}

func requestStats(s queries.RequestStats) servers.RequestStats {
	return servers.RequestStats{
		Total:     s.Total,
		Pending:   s.Pending,
		Approved:  s.Approved,
		Rejected:  s.Rejected,
		Delivered: s.Delivered,
	}
}
