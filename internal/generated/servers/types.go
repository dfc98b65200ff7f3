// Package servers provides primitives to interact with the openapi HTTP API.
package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

const (
	BearerAuthScopes = "bearerAuth.Scopes"
)

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Created defines model for Created.
type Created struct {
	Id openapi_types.UUID `json:"id"`
}

// BatchCreated defines model for BatchCreated.
type BatchCreated struct {
	Code string             `json:"code"`
	Id   openapi_types.UUID `json:"id"`
}

// NewProfile defines model for NewProfile.
type NewProfile struct {
	Available   *bool               `json:"available,omitempty"`
	City        *string             `json:"city,omitempty"`
	Email       *string             `json:"email,omitempty"`
	FullName    *string             `json:"fullName,omitempty"`
	Id          *openapi_types.UUID `json:"id,omitempty"`
	MaxItems    *int                `json:"maxItems,omitempty"`
	Phone       *string             `json:"phone,omitempty"`
	Role        string              `json:"role"`
	Staff       *bool               `json:"staff,omitempty"`
	Username    string              `json:"username"`
	VehicleType *string             `json:"vehicleType,omitempty"`
}

// Availability defines model for Availability.
type Availability struct {
	Available bool `json:"available"`
}

// NewDonation defines model for NewDonation.
type NewDonation struct {
	City              *string             `json:"city,omitempty"`
	CollectionPointId *openapi_types.UUID `json:"collectionPointId,omitempty"`
	Condition         string              `json:"condition"`
	ContactEmail      *string             `json:"contactEmail,omitempty"`
	ContactPhone      *string             `json:"contactPhone,omitempty"`
	DeliveryType      string              `json:"deliveryType"`
	Description       *string             `json:"description,omitempty"`
	ImageRef          *string             `json:"imageRef,omitempty"`
	PickupAddress     *string             `json:"pickupAddress,omitempty"`
	PickupLatitude    *float64            `json:"pickupLatitude,omitempty"`
	PickupLongitude   *float64            `json:"pickupLongitude,omitempty"`
	Title             string              `json:"title"`
}

// Reason defines model for Reason.
type Reason struct {
	Reason *string `json:"reason,omitempty"`
}

// BeneficiarySelection defines model for BeneficiarySelection.
type BeneficiarySelection struct {
	BeneficiaryId openapi_types.UUID `json:"beneficiaryId"`
}

// NewDelivery defines model for NewDelivery.
type NewDelivery struct {
	DriverId *openapi_types.UUID `json:"driverId,omitempty"`
}

// DeliveryStatusChange defines model for DeliveryStatusChange.
type DeliveryStatusChange struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Status    string   `json:"status"`
}

// NewRecyclingPartner defines model for NewRecyclingPartner.
type NewRecyclingPartner struct {
	Address              *string  `json:"address,omitempty"`
	CompanyName          string   `json:"companyName"`
	ContactPerson        *string  `json:"contactPerson,omitempty"`
	Email                *string  `json:"email,omitempty"`
	EnvironmentalLicense *string  `json:"environmentalLicense,omitempty"`
	Latitude             *float64 `json:"latitude,omitempty"`
	Longitude            *float64 `json:"longitude,omitempty"`
	Materials            []string `json:"materials"`
	MonthlyCapacityKg    *float64 `json:"monthlyCapacityKg,omitempty"`
	Phone                *string  `json:"phone,omitempty"`
	TaxId                string   `json:"taxId"`
}

// PartnerActivity defines model for PartnerActivity.
type PartnerActivity struct {
	Active bool `json:"active"`
}

// NewRecyclingBatch defines model for NewRecyclingBatch.
type NewRecyclingBatch struct {
	DonationIds []openapi_types.UUID `json:"donationIds"`
	Notes       *string              `json:"notes,omitempty"`
	PartnerId   openapi_types.UUID   `json:"partnerId"`
}

// BatchStatusChange defines model for BatchStatusChange.
type BatchStatusChange struct {
	ActualWeightKg *float64 `json:"actualWeightKg,omitempty"`
	Status         string   `json:"status"`
}

// NewCollectionPoint defines model for NewCollectionPoint.
type NewCollectionPoint struct {
	Address      string  `json:"address"`
	Capacity     *int    `json:"capacity,omitempty"`
	Email        *string `json:"email,omitempty"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Name         string  `json:"name"`
	OpeningHours *string `json:"openingHours,omitempty"`
	Phone        *string `json:"phone,omitempty"`
}

// CollectionPoint defines model for CollectionPoint.
type CollectionPoint struct {
	Active       bool               `json:"active"`
	Address      string             `json:"address"`
	Capacity     int                `json:"capacity"`
	HasRoom      bool               `json:"hasRoom"`
	Id           openapi_types.UUID `json:"id"`
	Inventory    int64              `json:"inventory"`
	Latitude     float64            `json:"latitude"`
	Longitude    float64            `json:"longitude"`
	Name         string             `json:"name"`
	OpeningHours string             `json:"openingHours"`
}

// Impact defines model for Impact.
type Impact struct {
	Co2AvoidedKg   float64 `json:"co2AvoidedKg"`
	EnergySavedKWh float64 `json:"energySavedKWh"`
	TreesPreserved float64 `json:"treesPreserved"`
	WaterSavedL    float64 `json:"waterSavedL"`
	WeightKg       float64 `json:"weightKg"`
}

// BatchImpact defines model for BatchImpact.
type BatchImpact struct {
	ActualWeightKg    *float64           `json:"actualWeightKg"`
	BatchId           openapi_types.UUID `json:"batchId"`
	Code              string             `json:"code"`
	EstimatedWeightKg float64            `json:"estimatedWeightKg"`
	Impact            Impact             `json:"impact"`
	Items             int64              `json:"items"`
	Status            string             `json:"status"`
}

// Counts defines model for Counts.
type Counts map[string]int64

// DashboardStats defines model for DashboardStats.
type DashboardStats struct {
	ActiveCollectionPoints int64   `json:"activeCollectionPoints"`
	AvailableDrivers       int64   `json:"availableDrivers"`
	Deliveries             Counts  `json:"deliveries"`
	DeliveriesLast30Days   int64   `json:"deliveriesLast30Days"`
	Donations              Counts  `json:"donations"`
	DonationsLast30Days    int64   `json:"donationsLast30Days"`
	EstimatedCo2Kg         float64 `json:"estimatedCo2Kg"`
	EstimatedKg            float64 `json:"estimatedKg"`
	ProfilesByRole         Counts  `json:"profilesByRole"`
	RecyclingBatches       Counts  `json:"recyclingBatches"`
	Requests               Counts  `json:"requests"`
	RequestsLast30Days     int64   `json:"requestsLast30Days"`
	TotalDeliveries        int64   `json:"totalDeliveries"`
	TotalDonations         int64   `json:"totalDonations"`
	TotalRequests          int64   `json:"totalRequests"`
}

// PartnerStats defines model for PartnerStats.
type PartnerStats struct {
	BatchCount    int64              `json:"batchCount"`
	CompanyName   string             `json:"companyName"`
	PartnerId     openapi_types.UUID `json:"partnerId"`
	TotalWeightKg float64            `json:"totalWeightKg"`
}

// RecyclingReport defines model for RecyclingReport.
type RecyclingReport struct {
	CertifiedBatches int64          `json:"certifiedBatches"`
	Impact           Impact         `json:"impact"`
	Partners         []PartnerStats `json:"partners"`
	Period           string         `json:"period"`
	Since            *time.Time     `json:"since"`
	TotalBatches     int64          `json:"totalBatches"`
	TotalItems       int64          `json:"totalItems"`
	TotalWeightKg    float64        `json:"totalWeightKg"`
}

// DriverDelivery defines model for DriverDelivery.
type DriverDelivery struct {
	AssignedAt    time.Time          `json:"assignedAt"`
	City          string             `json:"city"`
	DeliveredAt   *time.Time         `json:"deliveredAt"`
	DonationId    openapi_types.UUID `json:"donationId"`
	DonationTitle string             `json:"donationTitle"`
	Id            openapi_types.UUID `json:"id"`
	PickedUpAt    *time.Time         `json:"pickedUpAt"`
	PickupAddress string             `json:"pickupAddress"`
	Status        string             `json:"status"`
}

// DriverDeliveryStats defines model for the stats of DriverDeliveries.
type DriverDeliveryStats struct {
	Completed int64 `json:"completed"`
	InTransit int64 `json:"inTransit"`
	Pending   int64 `json:"pending"`
	Total     int64 `json:"total"`
}

// DriverDeliveries defines model for DriverDeliveries.
type DriverDeliveries struct {
	Active []DriverDelivery    `json:"active"`
	Recent []DriverDelivery    `json:"recent"`
	Stats  DriverDeliveryStats `json:"stats"`
}

// DonationSummary defines model for DonationSummary.
type DonationSummary struct {
	ApprovedRequests int64              `json:"approvedRequests"`
	Available        bool               `json:"available"`
	City             string             `json:"city"`
	Condition        string             `json:"condition"`
	CreatedAt        time.Time          `json:"createdAt"`
	DeliveryType     string             `json:"deliveryType"`
	Description      string             `json:"description"`
	DonorId          openapi_types.UUID `json:"donorId"`
	DonorName        string             `json:"donorName"`
	Id               openapi_types.UUID `json:"id"`
	ImageRef         string             `json:"imageRef"`
	RequestCount     int64              `json:"requestCount"`
	Status           string             `json:"status"`
	Title            string             `json:"title"`
}

// DonationDetail defines model for DonationDetail.
type DonationDetail struct {
	ApprovedAt          *time.Time          `json:"approvedAt"`
	BeneficiaryId       *openapi_types.UUID `json:"beneficiaryId"`
	CollectionPointId   *openapi_types.UUID `json:"collectionPointId"`
	CollectionPointName string              `json:"collectionPointName"`
	ContactEmail        string              `json:"contactEmail"`
	ContactPhone        string              `json:"contactPhone"`
	DeliveryStatus      string              `json:"deliveryStatus"`
	Donation            DonationSummary     `json:"donation"`
	OwnRequestStatus    string              `json:"ownRequestStatus"`
	PickupAddress       string              `json:"pickupAddress"`
	RejectionReason     string              `json:"rejectionReason"`
}

// DonationStats defines model for DonationStats.
type DonationStats struct {
	Approved     int64 `json:"approved"`
	Canceled     int64 `json:"canceled"`
	Delivered    int64 `json:"delivered"`
	ForRecycling int64 `json:"forRecycling"`
	InRoute      int64 `json:"inRoute"`
	Pending      int64 `json:"pending"`
	Total        int64 `json:"total"`
}

// DonationList defines model for DonationList.
type DonationList struct {
	Donations []DonationSummary `json:"donations"`
	Stats     DonationStats     `json:"stats"`
}

// RequestSummary defines model for RequestSummary.
type RequestSummary struct {
	BeneficiaryId   openapi_types.UUID `json:"beneficiaryId"`
	BeneficiaryName string             `json:"beneficiaryName"`
	CreatedAt       time.Time          `json:"createdAt"`
	DonationId      openapi_types.UUID `json:"donationId"`
	DonationStatus  string             `json:"donationStatus"`
	DonationTitle   string             `json:"donationTitle"`
	DonorId         openapi_types.UUID `json:"donorId"`
	Id              openapi_types.UUID `json:"id"`
	Reason          string             `json:"reason"`
	RejectionReason string             `json:"rejectionReason"`
	Status          string             `json:"status"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

// RequestStats defines model for RequestStats.
type RequestStats struct {
	Approved  int64 `json:"approved"`
	Delivered int64 `json:"delivered"`
	Pending   int64 `json:"pending"`
	Rejected  int64 `json:"rejected"`
	Total     int64 `json:"total"`
}

// RequestList defines model for RequestList.
type RequestList struct {
	Requests []RequestSummary `json:"requests"`
	Stats    RequestStats     `json:"stats"`
}

// Delivery defines model for Delivery.
type Delivery struct {
	AssignedAt    time.Time           `json:"assignedAt"`
	City          string              `json:"city"`
	DeliveredAt   *time.Time          `json:"deliveredAt"`
	DonationId    openapi_types.UUID  `json:"donationId"`
	DonationTitle string              `json:"donationTitle"`
	DriverId      *openapi_types.UUID `json:"driverId"`
	DriverName    string              `json:"driverName"`
	Id            openapi_types.UUID  `json:"id"`
	PickedUpAt    *time.Time          `json:"pickedUpAt"`
	PickupAddress string              `json:"pickupAddress"`
	Status        string              `json:"status"`
}

// DeliveryStats defines model for DeliveryStats.
type DeliveryStats struct {
	Assigned  int64 `json:"assigned"`
	Canceled  int64 `json:"canceled"`
	Delivered int64 `json:"delivered"`
	InTransit int64 `json:"inTransit"`
	PickedUp  int64 `json:"pickedUp"`
	Total     int64 `json:"total"`
}

// DeliveryList defines model for DeliveryList.
type DeliveryList struct {
	Deliveries []Delivery    `json:"deliveries"`
	Stats      DeliveryStats `json:"stats"`
}

// MonthlyCount defines model for MonthlyCount.
type MonthlyCount struct {
	Count int64     `json:"count"`
	Month time.Time `json:"month"`
}

// ImpactReport defines model for ImpactReport.
type ImpactReport struct {
	ByCondition         Counts         `json:"byCondition"`
	DeliveredDonations  int64          `json:"deliveredDonations"`
	EstimatedWeightKg   float64        `json:"estimatedWeightKg"`
	Impact              Impact         `json:"impact"`
	Monthly             []MonthlyCount `json:"monthly"`
	Period              string         `json:"period"`
	Since               *time.Time     `json:"since"`
	UniqueBeneficiaries int64          `json:"uniqueBeneficiaries"`
}

// BeneficiaryStats defines model for BeneficiaryStats.
type BeneficiaryStats struct {
	Accepted  int64              `json:"accepted"`
	ProfileId openapi_types.UUID `json:"profileId"`
	Requests  int64              `json:"requests"`
	Username  string             `json:"username"`
}

// BeneficiaryReport defines model for BeneficiaryReport.
type BeneficiaryReport struct {
	ApprovalRate        float64            `json:"approvalRate"`
	Period              string             `json:"period"`
	Since               *time.Time         `json:"since"`
	Stats               RequestStats       `json:"stats"`
	TopBeneficiaries    []BeneficiaryStats `json:"topBeneficiaries"`
	UniqueBeneficiaries int64              `json:"uniqueBeneficiaries"`
}

// NewMessage defines model for NewMessage.
type NewMessage struct {
	ParticipantId *openapi_types.UUID `json:"participantId,omitempty"`
	Text          string              `json:"text"`
}

// ChatParticipant defines model for ChatParticipant.
type ChatParticipant struct {
	ProfileId openapi_types.UUID `json:"profileId"`
	Username  string             `json:"username"`
}

// Message defines model for Message.
type Message struct {
	CreatedAt   time.Time          `json:"createdAt"`
	Id          openapi_types.UUID `json:"id"`
	ImageRef    string             `json:"imageRef"`
	Read        bool               `json:"read"`
	RecipientId openapi_types.UUID `json:"recipientId"`
	SenderId    openapi_types.UUID `json:"senderId"`
	Text        string             `json:"text"`
}

// Chat defines model for Chat.
type Chat struct {
	DonationId    openapi_types.UUID `json:"donationId"`
	DonationTitle string             `json:"donationTitle"`
	Messages      []Message          `json:"messages"`
	Participants  []ChatParticipant  `json:"participants"`
}

// ListCollectionPointsParams defines parameters for ListCollectionPoints.
type ListCollectionPointsParams struct {
	Active *bool `form:"active,omitempty" json:"active,omitempty"`
}

// GetRecyclingReportParams defines parameters for GetRecyclingReport.
type GetRecyclingReportParams struct {
	Period *string `form:"period,omitempty" json:"period,omitempty"`
}

// ListDonationsParams defines parameters for ListDonations.
type ListDonationsParams struct {
	Q         *string `form:"q,omitempty" json:"q,omitempty"`
	City      *string `form:"city,omitempty" json:"city,omitempty"`
	Condition *string `form:"condition,omitempty" json:"condition,omitempty"`
	Order     *string `form:"order,omitempty" json:"order,omitempty"`
}

// ListMessagesParams defines parameters for ListMessages.
type ListMessagesParams struct {
	Participant *openapi_types.UUID `form:"participant,omitempty" json:"participant,omitempty"`
}

// ListMyRequestsParams defines parameters for ListMyRequests.
type ListMyRequestsParams struct {
	Status *string `form:"status,omitempty" json:"status,omitempty"`
}

// ListAllDonationsParams defines parameters for ListAllDonations.
type ListAllDonationsParams struct {
	Status    *string `form:"status,omitempty" json:"status,omitempty"`
	Condition *string `form:"condition,omitempty" json:"condition,omitempty"`
	Q         *string `form:"q,omitempty" json:"q,omitempty"`
}

// ListAllRequestsParams defines parameters for ListAllRequests.
type ListAllRequestsParams struct {
	Status *string `form:"status,omitempty" json:"status,omitempty"`
}

// ListAllDeliveriesParams defines parameters for ListAllDeliveries.
type ListAllDeliveriesParams struct {
	Status *string             `form:"status,omitempty" json:"status,omitempty"`
	Driver *openapi_types.UUID `form:"driver,omitempty" json:"driver,omitempty"`
}

// GetImpactReportParams defines parameters for GetImpactReport.
type GetImpactReportParams struct {
	Period *string `form:"period,omitempty" json:"period,omitempty"`
}

// GetBeneficiaryReportParams defines parameters for GetBeneficiaryReport.
type GetBeneficiaryReportParams struct {
	Period *string `form:"period,omitempty" json:"period,omitempty"`
}

// Request body aliases.
type (
	CreateProfileJSONRequestBody              = NewProfile
	SetMyAvailabilityJSONRequestBody          = Availability
	CreateDonationJSONRequestBody             = NewDonation
	RejectDonationJSONRequestBody             = Reason
	SelectBeneficiaryJSONRequestBody          = BeneficiarySelection
	SubmitDonationRequestJSONRequestBody      = Reason
	CreateDeliveryJSONRequestBody             = NewDelivery
	RejectRequestJSONRequestBody              = Reason
	ChangeDeliveryStatusJSONRequestBody       = DeliveryStatusChange
	RegisterRecyclingPartnerJSONRequestBody   = NewRecyclingPartner
	SetRecyclingPartnerActiveJSONRequestBody  = PartnerActivity
	CreateRecyclingBatchJSONRequestBody       = NewRecyclingBatch
	ChangeRecyclingBatchStatusJSONRequestBody = BatchStatusChange
	CreateCollectionPointJSONRequestBody      = NewCollectionPoint
	EditDonationJSONRequestBody               = NewDonation
	PostMessageJSONRequestBody                = NewMessage
)
