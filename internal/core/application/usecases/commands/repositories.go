// Package commands contains the state-changing use cases of the donation
// network. Every handler follows the same shape: validate the command, open a
// unit of work, load and lock the records, run the workflow, persist, commit,
// and only then hand the produced notification intents to the notifier.
package commands

import (
	"context"

	"reco/internal/core/ports"
)

// Unit of work views. Each handler depends on the narrowest one it needs.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	DonationRepoFactory interface {
		DonationRepository() ports.DonationRepository
	}

	DonationRequestRepoFactory interface {
		DonationRequestRepository() ports.DonationRequestRepository
	}

	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	RecyclingRepoFactory interface {
		RecyclingBatchRepository() ports.RecyclingBatchRepository
		RecyclingPartnerRepository() ports.RecyclingPartnerRepository
	}

	ProfileRepoFactory interface {
		ProfileRepository() ports.ProfileRepository
	}

	CollectionPointRepoFactory interface {
		CollectionPointRepository() ports.CollectionPointRepository
	}

	MessageRepoFactory interface {
		MessageRepository() ports.MessageRepository
	}

	// DonationUoW covers listing, review and matching of donations.
	DonationUoW interface {
		TxManager
		DonationRepoFactory
		DonationRequestRepoFactory
		ProfileRepoFactory
		CollectionPointRepoFactory
	}

	DonationUoWFactory interface {
		Create() DonationUoW
	}

	// DeliveryUoW covers delivery assignment and progress, which cascade
	// into donations and requests.
	DeliveryUoW interface {
		TxManager
		DonationRepoFactory
		DonationRequestRepoFactory
		DeliveryRepoFactory
		ProfileRepoFactory
	}

	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// RecyclingUoW covers partners and batches, which claim donations.
	RecyclingUoW interface {
		TxManager
		DonationRepoFactory
		RecyclingRepoFactory
	}

	RecyclingUoWFactory interface {
		Create() RecyclingUoW
	}

	// ProfileUoW covers profiles and collection points.
	ProfileUoW interface {
		TxManager
		ProfileRepoFactory
		CollectionPointRepoFactory
	}

	ProfileUoWFactory interface {
		Create() ProfileUoW
	}

	// ChatUoW covers messages, which are addressed by the donation's
	// requests and earlier messages.
	ChatUoW interface {
		TxManager
		DonationRepoFactory
		DonationRequestRepoFactory
		MessageRepoFactory
	}

	ChatUoWFactory interface {
		Create() ChatUoW
	}
)
