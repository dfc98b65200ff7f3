package commands

import (
	"errors"
	"strings"
	"time"

	"reco/internal/core/domain/model/kernel"
	"reco/internal/core/domain/model/recycling"
	"reco/internal/pkg/guard"
)

var ErrUploadRecyclingCertificateCommandIsNotConstructed = errors.New(
	"UploadRecyclingCertificateCommand must be created via NewUploadRecyclingCertificateCommand constructor",
)

// UploadRecyclingCertificateCommand stores the partner's recycling
// certificate and certifies a processed batch.
type UploadRecyclingCertificateCommand struct { //nolint:recvcheck //using for validation
	actor    kernel.Actor
	batchID  kernel.UUID
	number   string
	file     *File
	issuedAt *time.Time

	guard guard.ConstructorGuard
}

func NewUploadRecyclingCertificateCommand(
	actor kernel.Actor,
	batchID kernel.UUID,
	number string,
	file *File,
	issuedAt *time.Time,
) (UploadRecyclingCertificateCommand, error) {
	cmd := UploadRecyclingCertificateCommand{
		issuedAt: issuedAt,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setBatchID(batchID),
		cmd.setNumber(number),
		cmd.setFile(file),
	); err != nil {
		return UploadRecyclingCertificateCommand{}, err
	}

	return cmd, nil
}

func (c UploadRecyclingCertificateCommand) Validate() error {
	return c.guard.Validate(ErrUploadRecyclingCertificateCommandIsNotConstructed)
}

func (c UploadRecyclingCertificateCommand) Actor() kernel.Actor {
	return c.actor
}

func (c UploadRecyclingCertificateCommand) BatchID() kernel.UUID {
	return c.batchID
}

func (c UploadRecyclingCertificateCommand) Number() string {
	return c.number
}

func (c UploadRecyclingCertificateCommand) File() *File {
	return c.file
}

// IssuedAt is nil when the certificate is dated at upload time.
func (c UploadRecyclingCertificateCommand) IssuedAt() *time.Time {
	return c.issuedAt
}

func (c *UploadRecyclingCertificateCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *UploadRecyclingCertificateCommand) setBatchID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.batchID = id
	return nil
}

func (c *UploadRecyclingCertificateCommand) setNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return recycling.ErrCertificateNumberIsRequired
	}

	c.number = number
	return nil
}

func (c *UploadRecyclingCertificateCommand) setFile(file *File) error {
	if file == nil {
		return nil
	}
	if err := file.validate("certificate file"); err != nil {
		return err
	}

	c.file = file
	return nil
}
