package recycling

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"reco/internal/core/domain/model/kernel"
	"reco/internal/pkg/errs"
)

const taxIDLength = 14

var (
	ErrPartnerIsNotConstructed = errors.New("Partner must be created via NewPartner constructor")
	ErrCompanyNameIsRequired   = errs.NewValueIsRequiredError("company name")
	ErrPartnerEmailIsRequired  = errs.NewValueIsRequiredError("partner email")
	ErrMaterialsAreRequired    = errs.NewValueIsRequiredError("accepted materials")
)

// PartnerDetails is the registry data of a recycling company.
type PartnerDetails struct {
	CompanyName          string
	TaxID                string
	Address              string
	Phone                string
	Email                string
	ContactPerson        string
	EnvironmentalLicense string
	Materials            []Material
	MonthlyCapacityKg    float64
	Point                *kernel.GeoPoint
}

func (d PartnerDetails) normalized() PartnerDetails {
	d.CompanyName = strings.TrimSpace(d.CompanyName)
	d.Email = strings.TrimSpace(d.Email)
	d.TaxID = strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, d.TaxID)
	return d
}

func (d PartnerDetails) validate() error {
	var errList []error
	if d.CompanyName == "" {
		errList = append(errList, ErrCompanyNameIsRequired)
	}
	if len(d.TaxID) != taxIDLength {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"tax id", fmt.Errorf("expected %d digits, got %d", taxIDLength, len(d.TaxID)),
		))
	}
	if d.Email == "" {
		errList = append(errList, ErrPartnerEmailIsRequired)
	}
	if len(d.Materials) == 0 {
		errList = append(errList, ErrMaterialsAreRequired)
	}
	for _, m := range d.Materials {
		errList = append(errList, m.Validate())
	}
	if d.MonthlyCapacityKg < 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("monthly capacity", d.MonthlyCapacityKg, 0, "unbounded"))
	}
	if d.Point != nil {
		errList = append(errList, d.Point.Validate())
	}
	return errors.Join(errList...)
}

// Partner is a licensed company receiving recycling batches.
type Partner struct {
	id            kernel.UUID
	details       PartnerDetails
	active        bool
	createdAt     time.Time
	isConstructed bool
}

// NewPartner registers an active partner. The tax id is stored digits only.
func NewPartner(id kernel.UUID, details PartnerDetails, createdAt time.Time) (*Partner, error) {
	return RestorePartner(id, details, true, createdAt)
}

func RestorePartner(id kernel.UUID, details PartnerDetails, active bool, createdAt time.Time) (*Partner, error) {
	details = details.normalized()
	if err := errors.Join(id.Validate(), details.validate()); err != nil {
		return nil, err
	}
	return &Partner{
		id:            id,
		details:       details,
		active:        active,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

func (p *Partner) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPartnerIsNotConstructed
	}
	return nil
}

func (p *Partner) ID() kernel.UUID {
	return p.id
}

func (p *Partner) Details() PartnerDetails {
	return p.details
}

func (p *Partner) CompanyName() string {
	return p.details.CompanyName
}

func (p *Partner) Email() string {
	return p.details.Email
}

func (p *Partner) IsActive() bool {
	return p.active
}

func (p *Partner) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Partner) Deactivate() {
	p.active = false
}

func (p *Partner) Activate() {
	p.active = true
}

// Accepts reports whether the partner takes material m.
func (p *Partner) Accepts(m Material) bool {
	for _, accepted := range p.details.Materials {
		if accepted == m {
			return true
		}
	}
	return false
}
