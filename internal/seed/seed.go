// Package seed loads demo fixtures through the regular use cases, so seeded
// data obeys the same rules as data created through the API.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"reco/internal/core/application/usecases/commands"
	"reco/internal/core/domain/model/collectionpoint"
	"reco/internal/core/domain/model/donation"
	"reco/internal/core/domain/model/kernel"
	"reco/internal/core/domain/model/profile"
	"reco/internal/core/domain/model/recycling"
	"reco/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

type Fixtures struct {
	Profiles          []ProfileFixture         `yaml:"profiles"`
	CollectionPoints  []CollectionPointFixture `yaml:"collectionPoints"`
	RecyclingPartners []PartnerFixture         `yaml:"recyclingPartners"`
	Donations         []DonationFixture        `yaml:"donations"`
}

type ProfileFixture struct {
	ID       string `yaml:"id"`
	Username string `yaml:"username"`
	FullName string `yaml:"fullName"`
	Email    string `yaml:"email"`
	Phone    string `yaml:"phone"`
	City     string `yaml:"city"`
	Role     string `yaml:"role"`
	Staff    bool   `yaml:"staff"`
	Driver   struct {
		Available   bool   `yaml:"available"`
		VehicleType string `yaml:"vehicleType"`
		MaxItems    int    `yaml:"maxItems"`
	} `yaml:"driver"`
}

type CollectionPointFixture struct {
	ID           string  `yaml:"id"`
	Name         string  `yaml:"name"`
	Address      string  `yaml:"address"`
	Latitude     float64 `yaml:"latitude"`
	Longitude    float64 `yaml:"longitude"`
	OpeningHours string  `yaml:"openingHours"`
	Capacity     int     `yaml:"capacity"`
	Phone        string  `yaml:"phone"`
	Email        string  `yaml:"email"`
}

type PartnerFixture struct {
	ID                   string   `yaml:"id"`
	CompanyName          string   `yaml:"companyName"`
	TaxID                string   `yaml:"taxId"`
	Address              string   `yaml:"address"`
	Phone                string   `yaml:"phone"`
	Email                string   `yaml:"email"`
	ContactPerson        string   `yaml:"contactPerson"`
	EnvironmentalLicense string   `yaml:"environmentalLicense"`
	Materials            []string `yaml:"materials"`
	MonthlyCapacityKg    float64  `yaml:"monthlyCapacityKg"`
}

type DonationFixture struct {
	ID              string `yaml:"id"`
	Donor           string `yaml:"donor"`
	Title           string `yaml:"title"`
	Description     string `yaml:"description"`
	Condition       string `yaml:"condition"`
	City            string `yaml:"city"`
	DeliveryType    string `yaml:"deliveryType"`
	PickupAddress   string `yaml:"pickupAddress"`
	CollectionPoint string `yaml:"collectionPoint"`
}

// DefaultFixtures returns the fixtures shipped with the binary.
func DefaultFixtures() (Fixtures, error) {
	return Load(bytes.NewReader(defaultFixtures))
}

// Load decodes fixtures, rejecting unknown keys.
func Load(r io.Reader) (Fixtures, error) {
	var f Fixtures
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return Fixtures{}, fmt.Errorf("decode fixtures: %w", err)
	}
	return f, nil
}

type commandHandler[C any] interface {
	Handle(ctx context.Context, command C) error
}

// Handlers are the use cases the seeder writes through.
type Handlers struct {
	CreateProfile            commandHandler[commands.CreateProfileCommand]
	CreateCollectionPoint    commandHandler[commands.CreateCollectionPointCommand]
	RegisterRecyclingPartner commandHandler[commands.RegisterRecyclingPartnerCommand]
	CreateDonation           commandHandler[commands.CreateDonationCommand]
}

// Seeder applies fixtures as a staff operator. Records that already exist
// are skipped, so seeding twice is harmless.
type Seeder struct {
	h        Handlers
	operator kernel.Actor
	logger   *slog.Logger
}

func NewSeeder(handlers Handlers, logger *slog.Logger) (*Seeder, error) {
	operator, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleAdmin, true)
	if err != nil {
		return nil, err
	}
	return &Seeder{h: handlers, operator: operator, logger: logger.With("component", "seed")}, nil
}

// Result counts created and skipped records.
type Result struct {
	Created int
	Skipped int
}

func (s *Seeder) Apply(ctx context.Context, f Fixtures) (Result, error) {
	var res Result
	steps := []func(context.Context, *Result, Fixtures) error{
		s.profiles,
		s.collectionPoints,
		s.partners,
		s.donations,
	}
	for _, step := range steps {
		if err := step(ctx, &res, f); err != nil {
			return res, err
		}
	}
	s.logger.InfoContext(ctx, "Fixtures applied", "created", res.Created, "skipped", res.Skipped)
	return res, nil
}

func (s *Seeder) profiles(ctx context.Context, res *Result, f Fixtures) error {
	for _, p := range f.Profiles {
		id, err := kernel.UUIDFromString(p.ID)
		if err != nil {
			return fmt.Errorf("profile %s: %w", p.Username, err)
		}
		role, err := kernel.ParseRole(p.Role)
		if err != nil {
			return fmt.Errorf("profile %s: %w", p.Username, err)
		}
		cmd, err := commands.NewCreateProfileCommand(s.operator, id, p.Username,
			profile.Contact{FullName: p.FullName, Email: p.Email, Phone: p.Phone, City: p.City},
			role, p.Staff,
			profile.DriverInfo{Available: p.Driver.Available, VehicleType: p.Driver.VehicleType, MaxItems: p.Driver.MaxItems},
		)
		if err != nil {
			return fmt.Errorf("profile %s: %w", p.Username, err)
		}
		if err := s.record(res, "profile", p.Username, s.h.CreateProfile.Handle(ctx, cmd)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) collectionPoints(ctx context.Context, res *Result, f Fixtures) error {
	for _, p := range f.CollectionPoints {
		id, err := kernel.UUIDFromString(p.ID)
		if err != nil {
			return fmt.Errorf("collection point %s: %w", p.Name, err)
		}
		point, err := kernel.NewGeoPoint(p.Latitude, p.Longitude)
		if err != nil {
			return fmt.Errorf("collection point %s: %w", p.Name, err)
		}
		cmd, err := commands.NewCreateCollectionPointCommand(s.operator, id, collectionpoint.Details{
			Name:         p.Name,
			Address:      p.Address,
			Point:        point,
			OpeningHours: p.OpeningHours,
			Capacity:     p.Capacity,
			Phone:        p.Phone,
			Email:        p.Email,
		})
		if err != nil {
			return fmt.Errorf("collection point %s: %w", p.Name, err)
		}
		if err := s.record(res, "collection point", p.Name, s.h.CreateCollectionPoint.Handle(ctx, cmd)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) partners(ctx context.Context, res *Result, f Fixtures) error {
	for _, p := range f.RecyclingPartners {
		id, err := kernel.UUIDFromString(p.ID)
		if err != nil {
			return fmt.Errorf("partner %s: %w", p.CompanyName, err)
		}
		materials, err := recycling.ParseMaterials(p.Materials)
		if err != nil {
			return fmt.Errorf("partner %s: %w", p.CompanyName, err)
		}
		cmd, err := commands.NewRegisterRecyclingPartnerCommand(s.operator, id, recycling.PartnerDetails{
			CompanyName:          p.CompanyName,
			TaxID:                p.TaxID,
			Address:              p.Address,
			Phone:                p.Phone,
			Email:                p.Email,
			ContactPerson:        p.ContactPerson,
			EnvironmentalLicense: p.EnvironmentalLicense,
			Materials:            materials,
			MonthlyCapacityKg:    p.MonthlyCapacityKg,
		})
		if err != nil {
			return fmt.Errorf("partner %s: %w", p.CompanyName, err)
		}
		if err := s.record(res, "recycling partner", p.CompanyName, s.h.RegisterRecyclingPartner.Handle(ctx, cmd)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) donations(ctx context.Context, res *Result, f Fixtures) error {
	for _, d := range f.Donations {
		id, err := kernel.UUIDFromString(d.ID)
		if err != nil {
			return fmt.Errorf("donation %s: %w", d.Title, err)
		}
		donorID, err := kernel.UUIDFromString(d.Donor)
		if err != nil {
			return fmt.Errorf("donation %s: %w", d.Title, err)
		}
		donor, err := kernel.NewActor(donorID, kernel.RoleDonor, false)
		if err != nil {
			return err
		}
		condition, err := donation.ParseCondition(d.Condition)
		if err != nil {
			return fmt.Errorf("donation %s: %w", d.Title, err)
		}
		deliveryType, err := donation.ParseDeliveryType(d.DeliveryType)
		if err != nil {
			return fmt.Errorf("donation %s: %w", d.Title, err)
		}
		var pointID *kernel.UUID
		if d.CollectionPoint != "" {
			p, err := kernel.UUIDFromString(d.CollectionPoint)
			if err != nil {
				return fmt.Errorf("donation %s: %w", d.Title, err)
			}
			pointID = &p
		}

		cmd, err := commands.NewCreateDonationCommand(donor, id, donation.Details{
			Title:             d.Title,
			Description:       d.Description,
			Condition:         condition,
			City:              d.City,
			DeliveryType:      deliveryType,
			PickupAddress:     d.PickupAddress,
			CollectionPointID: pointID,
		})
		if err != nil {
			return fmt.Errorf("donation %s: %w", d.Title, err)
		}
		if err := s.record(res, "donation", d.Title, s.h.CreateDonation.Handle(ctx, cmd)); err != nil {
			return err
		}
	}
	return nil
}

// record counts the outcome of one fixture. Conflict means the record was
// seeded before.
func (s *Seeder) record(res *Result, kind, name string, err error) error {
	switch {
	case err == nil:
		res.Created++
		return nil
	case errors.Is(err, errs.ErrConflict):
		res.Skipped++
		s.logger.Debug("Fixture already present", "kind", kind, "name", name)
		return nil
	default:
		return fmt.Errorf("seed %s %s: %w", kind, name, err)
	}
}
