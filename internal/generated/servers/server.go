package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Create a profile
	// (POST /api/v1/profiles)
	CreateProfile(ctx echo.Context) error

	// Toggle the calling driver's availability
	// (POST /api/v1/profiles/me/availability)
	SetMyAvailability(ctx echo.Context) error

	// List a donation
	// (POST /api/v1/donations)
	CreateDonation(ctx echo.Context) error

	// Withdraw a donation
	// (DELETE /api/v1/donations/{id})
	DeleteDonation(ctx echo.Context, id openapi_types.UUID) error

	// Approve a pending donation
	// (POST /api/v1/donations/{id}/approve)
	ApproveDonation(ctx echo.Context, id openapi_types.UUID) error

	// Reject a donation
	// (POST /api/v1/donations/{id}/reject)
	RejectDonation(ctx echo.Context, id openapi_types.UUID) error

	// Divert a donation to recycling
	// (POST /api/v1/donations/{id}/recycle)
	RecycleDonation(ctx echo.Context, id openapi_types.UUID) error

	// Select the beneficiary of a donation
	// (POST /api/v1/donations/{id}/beneficiary)
	SelectBeneficiary(ctx echo.Context, id openapi_types.UUID) error

	// Request a donation
	// (POST /api/v1/donations/{id}/requests)
	SubmitDonationRequest(ctx echo.Context, id openapi_types.UUID) error

	// Assign the delivery of a donation
	// (POST /api/v1/donations/{id}/delivery)
	CreateDelivery(ctx echo.Context, id openapi_types.UUID) error

	// Approve a donation request
	// (POST /api/v1/requests/{id}/approve)
	ApproveRequest(ctx echo.Context, id openapi_types.UUID) error

	// Reject a donation request
	// (POST /api/v1/requests/{id}/reject)
	RejectRequest(ctx echo.Context, id openapi_types.UUID) error

	// Move a delivery forward
	// (POST /api/v1/deliveries/{id}/status)
	ChangeDeliveryStatus(ctx echo.Context, id openapi_types.UUID) error

	// Attach proof of delivery
	// (POST /api/v1/deliveries/{id}/proof)
	AttachDeliveryProof(ctx echo.Context, id openapi_types.UUID) error

	// Deliveries of the calling driver
	// (GET /api/v1/drivers/me/deliveries)
	GetMyDeliveries(ctx echo.Context) error

	// Register a recycling partner
	// (POST /api/v1/recycling/partners)
	RegisterRecyclingPartner(ctx echo.Context) error

	// Activate or deactivate a partner
	// (POST /api/v1/recycling/partners/{id}/active)
	SetRecyclingPartnerActive(ctx echo.Context, id openapi_types.UUID) error

	// Create a recycling batch
	// (POST /api/v1/recycling/batches)
	CreateRecyclingBatch(ctx echo.Context) error

	// Advance a recycling batch
	// (POST /api/v1/recycling/batches/{id}/status)
	ChangeRecyclingBatchStatus(ctx echo.Context, id openapi_types.UUID) error

	// Certify a processed batch
	// (POST /api/v1/recycling/batches/{id}/certificate)
	UploadRecyclingCertificate(ctx echo.Context, id openapi_types.UUID) error

	// Environmental impact of a batch
	// (GET /api/v1/recycling/batches/{id}/impact)
	GetBatchImpact(ctx echo.Context, id openapi_types.UUID) error

	// List collection points
	// (GET /api/v1/collection-points)
	ListCollectionPoints(ctx echo.Context, params ListCollectionPointsParams) error

	// Create a collection point
	// (POST /api/v1/collection-points)
	CreateCollectionPoint(ctx echo.Context) error

	// Network wide statistics
	// (GET /api/v1/reports/dashboard)
	GetDashboardStats(ctx echo.Context) error

	// Recycling report
	// (GET /api/v1/reports/recycling)
	GetRecyclingReport(ctx echo.Context, params GetRecyclingReportParams) error

	// Browse the donation catalog
	// (GET /api/v1/donations)
	ListDonations(ctx echo.Context, params ListDonationsParams) error

	// Donation detail
	// (GET /api/v1/donations/{id})
	GetDonation(ctx echo.Context, id openapi_types.UUID) error

	// Edit a listed donation
	// (PUT /api/v1/donations/{id})
	EditDonation(ctx echo.Context, id openapi_types.UUID) error

	// Chat about a donation
	// (GET /api/v1/donations/{id}/messages)
	ListMessages(ctx echo.Context, id openapi_types.UUID, params ListMessagesParams) error

	// Send a chat message
	// (POST /api/v1/donations/{id}/messages)
	PostMessage(ctx echo.Context, id openapi_types.UUID) error

	// Donations of the calling donor
	// (GET /api/v1/profiles/me/donations)
	ListMyDonations(ctx echo.Context) error

	// Requests of the calling beneficiary
	// (GET /api/v1/profiles/me/requests)
	ListMyRequests(ctx echo.Context, params ListMyRequestsParams) error

	// Donation request detail
	// (GET /api/v1/requests/{id})
	GetRequest(ctx echo.Context, id openapi_types.UUID) error

	// Review every donation
	// (GET /api/v1/admin/donations)
	ListAllDonations(ctx echo.Context, params ListAllDonationsParams) error

	// Review every request
	// (GET /api/v1/admin/requests)
	ListAllRequests(ctx echo.Context, params ListAllRequestsParams) error

	// Logistics board
	// (GET /api/v1/admin/deliveries)
	ListAllDeliveries(ctx echo.Context, params ListAllDeliveriesParams) error

	// Impact of delivered donations
	// (GET /api/v1/reports/impact)
	GetImpactReport(ctx echo.Context, params GetImpactReportParams) error

	// Beneficiary report
	// (GET /api/v1/reports/beneficiaries)
	GetBeneficiaryReport(ctx echo.Context, params GetBeneficiaryReportParams) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// CreateProfile converts echo context to params.
func (w *ServerInterfaceWrapper) CreateProfile(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateProfile(ctx)
	return err
}

// SetMyAvailability converts echo context to params.
func (w *ServerInterfaceWrapper) SetMyAvailability(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.SetMyAvailability(ctx)
	return err
}

// CreateDonation converts echo context to params.
func (w *ServerInterfaceWrapper) CreateDonation(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateDonation(ctx)
	return err
}

// DeleteDonation converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteDonation(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.DeleteDonation(ctx, id)
	return err
}

// ApproveDonation converts echo context to params.
func (w *ServerInterfaceWrapper) ApproveDonation(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ApproveDonation(ctx, id)
	return err
}

// RejectDonation converts echo context to params.
func (w *ServerInterfaceWrapper) RejectDonation(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.RejectDonation(ctx, id)
	return err
}

// RecycleDonation converts echo context to params.
func (w *ServerInterfaceWrapper) RecycleDonation(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.RecycleDonation(ctx, id)
	return err
}

// SelectBeneficiary converts echo context to params.
func (w *ServerInterfaceWrapper) SelectBeneficiary(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.SelectBeneficiary(ctx, id)
	return err
}

// SubmitDonationRequest converts echo context to params.
func (w *ServerInterfaceWrapper) SubmitDonationRequest(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.SubmitDonationRequest(ctx, id)
	return err
}

// CreateDelivery converts echo context to params.
func (w *ServerInterfaceWrapper) CreateDelivery(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateDelivery(ctx, id)
	return err
}

// ApproveRequest converts echo context to params.
func (w *ServerInterfaceWrapper) ApproveRequest(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ApproveRequest(ctx, id)
	return err
}

// RejectRequest converts echo context to params.
func (w *ServerInterfaceWrapper) RejectRequest(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.RejectRequest(ctx, id)
	return err
}

// ChangeDeliveryStatus converts echo context to params.
func (w *ServerInterfaceWrapper) ChangeDeliveryStatus(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ChangeDeliveryStatus(ctx, id)
	return err
}

// AttachDeliveryProof converts echo context to params.
func (w *ServerInterfaceWrapper) AttachDeliveryProof(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.AttachDeliveryProof(ctx, id)
	return err
}

// GetMyDeliveries converts echo context to params.
func (w *ServerInterfaceWrapper) GetMyDeliveries(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetMyDeliveries(ctx)
	return err
}

// RegisterRecyclingPartner converts echo context to params.
func (w *ServerInterfaceWrapper) RegisterRecyclingPartner(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.RegisterRecyclingPartner(ctx)
	return err
}

// SetRecyclingPartnerActive converts echo context to params.
func (w *ServerInterfaceWrapper) SetRecyclingPartnerActive(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.SetRecyclingPartnerActive(ctx, id)
	return err
}

// CreateRecyclingBatch converts echo context to params.
func (w *ServerInterfaceWrapper) CreateRecyclingBatch(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateRecyclingBatch(ctx)
	return err
}

// ChangeRecyclingBatchStatus converts echo context to params.
func (w *ServerInterfaceWrapper) ChangeRecyclingBatchStatus(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ChangeRecyclingBatchStatus(ctx, id)
	return err
}

// UploadRecyclingCertificate converts echo context to params.
func (w *ServerInterfaceWrapper) UploadRecyclingCertificate(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UploadRecyclingCertificate(ctx, id)
	return err
}

// GetBatchImpact converts echo context to params.
func (w *ServerInterfaceWrapper) GetBatchImpact(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetBatchImpact(ctx, id)
	return err
}

// ListCollectionPoints converts echo context to params.
func (w *ServerInterfaceWrapper) ListCollectionPoints(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Parameter object where we will unmarshal all parameters from the context
	var params ListCollectionPointsParams
	// ------------- Optional query parameter "active" -------------

	err = runtime.BindQueryParameter("form", true, false, "active", ctx.QueryParams(), &params.Active)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter active: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListCollectionPoints(ctx, params)
	return err
}

// CreateCollectionPoint converts echo context to params.
func (w *ServerInterfaceWrapper) CreateCollectionPoint(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateCollectionPoint(ctx)
	return err
}

// GetDashboardStats converts echo context to params.
func (w *ServerInterfaceWrapper) GetDashboardStats(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetDashboardStats(ctx)
	return err
}

// GetRecyclingReport converts echo context to params.
func (w *ServerInterfaceWrapper) GetRecyclingReport(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Parameter object where we will unmarshal all parameters from the context
	var params GetRecyclingReportParams
	// ------------- Optional query parameter "period" -------------

	err = runtime.BindQueryParameter("form", true, false, "period", ctx.QueryParams(), &params.Period)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter period: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetRecyclingReport(ctx, params)
	return err
}

// ListDonations converts echo context to params.
func (w *ServerInterfaceWrapper) ListDonations(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Parameter object where we will unmarshal all parameters from the context
	var params ListDonationsParams
	// ------------- Optional query parameter "q" -------------

	err = runtime.BindQueryParameter("form", true, false, "q", ctx.QueryParams(), &params.Q)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter q: %s", err))
	}

	// ------------- Optional query parameter "city" -------------

	err = runtime.BindQueryParameter("form", true, false, "city", ctx.QueryParams(), &params.City)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter city: %s", err))
	}

	// ------------- Optional query parameter "condition" -------------

	err = runtime.BindQueryParameter("form", true, false, "condition", ctx.QueryParams(), &params.Condition)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter condition: %s", err))
	}

	// ------------- Optional query parameter "order" -------------

	err = runtime.BindQueryParameter("form", true, false, "order", ctx.QueryParams(), &params.Order)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter order: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListDonations(ctx, params)
	return err
}

// GetDonation converts echo context to params.
func (w *ServerInterfaceWrapper) GetDonation(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetDonation(ctx, id)
	return err
}

// EditDonation converts echo context to params.
func (w *ServerInterfaceWrapper) EditDonation(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.EditDonation(ctx, id)
	return err
}

// ListMessages converts echo context to params.
func (w *ServerInterfaceWrapper) ListMessages(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Parameter object where we will unmarshal all parameters from the context
	var params ListMessagesParams
	// ------------- Optional query parameter "participant" -------------

	err = runtime.BindQueryParameter("form", true, false, "participant", ctx.QueryParams(), &params.Participant)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter participant: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListMessages(ctx, id, params)
	return err
}

// PostMessage converts echo context to params.
func (w *ServerInterfaceWrapper) PostMessage(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.PostMessage(ctx, id)
	return err
}

// ListMyDonations converts echo context to params.
func (w *ServerInterfaceWrapper) ListMyDonations(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListMyDonations(ctx)
	return err
}

// ListMyRequests converts echo context to params.
func (w *ServerInterfaceWrapper) ListMyRequests(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Parameter object where we will unmarshal all parameters from the context
	var params ListMyRequestsParams
	// ------------- Optional query parameter "status" -------------

	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListMyRequests(ctx, params)
	return err
}

// GetRequest converts echo context to params.
func (w *ServerInterfaceWrapper) GetRequest(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetRequest(ctx, id)
	return err
}

// ListAllDonations converts echo context to params.
func (w *ServerInterfaceWrapper) ListAllDonations(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Parameter object where we will unmarshal all parameters from the context
	var params ListAllDonationsParams
	// ------------- Optional query parameter "status" -------------

	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	// ------------- Optional query parameter "condition" -------------

	err = runtime.BindQueryParameter("form", true, false, "condition", ctx.QueryParams(), &params.Condition)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter condition: %s", err))
	}

	// ------------- Optional query parameter "q" -------------

	err = runtime.BindQueryParameter("form", true, false, "q", ctx.QueryParams(), &params.Q)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter q: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListAllDonations(ctx, params)
	return err
}

// ListAllRequests converts echo context to params.
func (w *ServerInterfaceWrapper) ListAllRequests(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Parameter object where we will unmarshal all parameters from the context
	var params ListAllRequestsParams
	// ------------- Optional query parameter "status" -------------

	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListAllRequests(ctx, params)
	return err
}

// ListAllDeliveries converts echo context to params.
func (w *ServerInterfaceWrapper) ListAllDeliveries(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Parameter object where we will unmarshal all parameters from the context
	var params ListAllDeliveriesParams
	// ------------- Optional query parameter "status" -------------

	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	// ------------- Optional query parameter "driver" -------------

	err = runtime.BindQueryParameter("form", true, false, "driver", ctx.QueryParams(), &params.Driver)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter driver: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListAllDeliveries(ctx, params)
	return err
}

// GetImpactReport converts echo context to params.
func (w *ServerInterfaceWrapper) GetImpactReport(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Parameter object where we will unmarshal all parameters from the context
	var params GetImpactReportParams
	// ------------- Optional query parameter "period" -------------

	err = runtime.BindQueryParameter("form", true, false, "period", ctx.QueryParams(), &params.Period)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter period: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetImpactReport(ctx, params)
	return err
}

// GetBeneficiaryReport converts echo context to params.
func (w *ServerInterfaceWrapper) GetBeneficiaryReport(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Parameter object where we will unmarshal all parameters from the context
	var params GetBeneficiaryReportParams
	// ------------- Optional query parameter "period" -------------

	err = runtime.BindQueryParameter("form", true, false, "period", ctx.QueryParams(), &params.Period)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter period: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetBeneficiaryReport(ctx, params)
	return err
}

// EchoRouter is the subset of echo.Echo and echo.Group the handlers are
// registered on.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the
// paths, so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string, m ...echo.MiddlewareFunc) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/api/v1/profiles", wrapper.CreateProfile, m...)
	router.POST(baseURL+"/api/v1/profiles/me/availability", wrapper.SetMyAvailability, m...)
	router.POST(baseURL+"/api/v1/donations", wrapper.CreateDonation, m...)
	router.DELETE(baseURL+"/api/v1/donations/:id", wrapper.DeleteDonation, m...)
	router.POST(baseURL+"/api/v1/donations/:id/approve", wrapper.ApproveDonation, m...)
	router.POST(baseURL+"/api/v1/donations/:id/reject", wrapper.RejectDonation, m...)
	router.POST(baseURL+"/api/v1/donations/:id/recycle", wrapper.RecycleDonation, m...)
	router.POST(baseURL+"/api/v1/donations/:id/beneficiary", wrapper.SelectBeneficiary, m...)
	router.POST(baseURL+"/api/v1/donations/:id/requests", wrapper.SubmitDonationRequest, m...)
	router.POST(baseURL+"/api/v1/donations/:id/delivery", wrapper.CreateDelivery, m...)
	router.POST(baseURL+"/api/v1/requests/:id/approve", wrapper.ApproveRequest, m...)
	router.POST(baseURL+"/api/v1/requests/:id/reject", wrapper.RejectRequest, m...)
	router.POST(baseURL+"/api/v1/deliveries/:id/status", wrapper.ChangeDeliveryStatus, m...)
	router.POST(baseURL+"/api/v1/deliveries/:id/proof", wrapper.AttachDeliveryProof, m...)
	router.GET(baseURL+"/api/v1/drivers/me/deliveries", wrapper.GetMyDeliveries, m...)
	router.POST(baseURL+"/api/v1/recycling/partners", wrapper.RegisterRecyclingPartner, m...)
	router.POST(baseURL+"/api/v1/recycling/partners/:id/active", wrapper.SetRecyclingPartnerActive, m...)
	router.POST(baseURL+"/api/v1/recycling/batches", wrapper.CreateRecyclingBatch, m...)
	router.POST(baseURL+"/api/v1/recycling/batches/:id/status", wrapper.ChangeRecyclingBatchStatus, m...)
	router.POST(baseURL+"/api/v1/recycling/batches/:id/certificate", wrapper.UploadRecyclingCertificate, m...)
	router.GET(baseURL+"/api/v1/recycling/batches/:id/impact", wrapper.GetBatchImpact, m...)
	router.GET(baseURL+"/api/v1/collection-points", wrapper.ListCollectionPoints, m...)
	router.POST(baseURL+"/api/v1/collection-points", wrapper.CreateCollectionPoint, m...)
	router.GET(baseURL+"/api/v1/reports/dashboard", wrapper.GetDashboardStats, m...)
	router.GET(baseURL+"/api/v1/reports/recycling", wrapper.GetRecyclingReport, m...)
	router.GET(baseURL+"/api/v1/donations", wrapper.ListDonations, m...)
	router.GET(baseURL+"/api/v1/donations/:id", wrapper.GetDonation, m...)
	router.PUT(baseURL+"/api/v1/donations/:id", wrapper.EditDonation, m...)
	router.GET(baseURL+"/api/v1/donations/:id/messages", wrapper.ListMessages, m...)
	router.POST(baseURL+"/api/v1/donations/:id/messages", wrapper.PostMessage, m...)
	router.GET(baseURL+"/api/v1/profiles/me/donations", wrapper.ListMyDonations, m...)
	router.GET(baseURL+"/api/v1/profiles/me/requests", wrapper.ListMyRequests, m...)
	router.GET(baseURL+"/api/v1/requests/:id", wrapper.GetRequest, m...)
	router.GET(baseURL+"/api/v1/admin/donations", wrapper.ListAllDonations, m...)
	router.GET(baseURL+"/api/v1/admin/requests", wrapper.ListAllRequests, m...)
	router.GET(baseURL+"/api/v1/admin/deliveries", wrapper.ListAllDeliveries, m...)
	router.GET(baseURL+"/api/v1/reports/impact", wrapper.GetImpactReport, m...)
	router.GET(baseURL+"/api/v1/reports/beneficiaries", wrapper.GetBeneficiaryReport, m...)
}
