package commands_test

import (
	"errors"
	"testing"

	"reco/internal/core/application/usecases/commands"
	"reco/internal/core/domain/model/collectionpoint"
	"reco/internal/core/domain/model/donation"
	"reco/internal/core/domain/model/kernel"
	"reco/internal/core/domain/model/notification"
	"reco/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestApproveDonationCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	donor := kernel.NewUUID()
	d := donationIn(t, donor, donation.Pending)
	cmd, err := commands.NewApproveDonationCommand(staffActor(t), d.ID())
	require.NoError(t, err)

	repo := new(MockDonationRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DonationRepository").Return(repo).Once(),
		repo.On("Get", ctx, d.ID()).Return(d, nil).Once(),
		repo.On("Update", ctx, d).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("Notify", ctx, mock.MatchedBy(func(intents []notification.Intent) bool {
			return len(intents) == 1 &&
				intents[0].Kind == notification.KindDonationApproved &&
				intents[0].Recipient.ID.IsEqual(donor)
		})).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDonationUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewApproveDonationCommandHandler(factory, notifier).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, donation.Approved, d.Status())
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestApproveDonationCommandHandler_Handle_SecondApprovalFails(t *testing.T) {
	ctx := t.Context()
	d := donationIn(t, kernel.NewUUID(), donation.Approved)
	cmd, err := commands.NewApproveDonationCommand(staffActor(t), d.ID())
	require.NoError(t, err)

	repo := new(MockDonationRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DonationRepository").Return(repo).Once(),
		repo.On("Get", ctx, d.ID()).Return(d, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDonationUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewApproveDonationCommandHandler(factory, notifier).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestApproveDonationCommandHandler_Handle_CommitFailureSkipsNotification(t *testing.T) {
	ctx := t.Context()
	d := donationIn(t, kernel.NewUUID(), donation.Pending)
	cmd, err := commands.NewApproveDonationCommand(staffActor(t), d.ID())
	require.NoError(t, err)

	repo := new(MockDonationRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)
	commitErr := errors.New("connection reset")
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DonationRepository").Return(repo).Once(),
		repo.On("Get", ctx, d.ID()).Return(d, nil).Once(),
		repo.On("Update", ctx, d).Return(nil).Once(),
		uow.On("Commit", ctx).Return(commitErr).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDonationUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewApproveDonationCommandHandler(factory, notifier).Handle(ctx, cmd)

	require.ErrorIs(t, err, commitErr)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestApproveDonationCommandHandler_Handle_NotConstructed(t *testing.T) {
	factory := new(MockDonationUoWFactory)

	err := commands.NewApproveDonationCommandHandler(factory, new(MockNotifier)).
		Handle(t.Context(), commands.ApproveDonationCommand{})

	require.ErrorIs(t, err, commands.ErrApproveDonationCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestRejectDonationCommandHandler_Handle_NotifiesDonorWithReason(t *testing.T) {
	ctx := t.Context()
	donor := kernel.NewUUID()
	d := donationIn(t, donor, donation.Pending)
	cmd, err := commands.NewRejectDonationCommand(staffActor(t), d.ID(), "  broken screen ")
	require.NoError(t, err)

	repo := new(MockDonationRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DonationRepository").Return(repo).Once(),
		repo.On("Get", ctx, d.ID()).Return(d, nil).Once(),
		repo.On("Update", ctx, d).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("Notify", ctx, mock.MatchedBy(func(intents []notification.Intent) bool {
			return len(intents) == 1 &&
				intents[0].Kind == notification.KindDonationRejected &&
				intents[0].Payload[notification.KeyReason] == "broken screen"
		})).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDonationUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewRejectDonationCommandHandler(factory, notifier).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, donation.Canceled, d.Status())
	notifier.AssertExpectations(t)
}

func TestMarkDonationForRecyclingCommandHandler_Handle_InRouteFails(t *testing.T) {
	ctx := t.Context()
	d := donationIn(t, kernel.NewUUID(), donation.InRoute)
	cmd, err := commands.NewMarkDonationForRecyclingCommand(staffActor(t), d.ID())
	require.NoError(t, err)

	repo := new(MockDonationRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DonationRepository").Return(repo).Once(),
		repo.On("Get", ctx, d.ID()).Return(d, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDonationUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewMarkDonationForRecyclingCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, donation.InRoute, d.Status())
}

func TestDeleteDonationCommandHandler_Handle(t *testing.T) {
	t.Run("owner deletes a donation without requests", func(t *testing.T) {
		ctx := t.Context()
		donor := actorWith(t, kernel.RoleDonor, false)
		d := donationIn(t, donor.ID(), donation.Pending)
		cmd, err := commands.NewDeleteDonationCommand(donor, d.ID())
		require.NoError(t, err)

		repo := new(MockDonationRepository)
		requests := new(MockDonationRequestRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("DonationRepository").Return(repo).Once(),
			repo.On("Get", ctx, d.ID()).Return(d, nil).Once(),
			uow.On("DonationRequestRepository").Return(requests).Once(),
			requests.On("CountByDonation", ctx, d.ID()).Return(int64(0), nil).Once(),
			repo.On("Delete", ctx, d.ID()).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockDonationUoWFactory)
		factory.On("Create").Return(uow).Once()

		require.NoError(t, commands.NewDeleteDonationCommandHandler(factory).Handle(ctx, cmd))
		repo.AssertExpectations(t)
	})

	t.Run("requested donation is kept", func(t *testing.T) {
		ctx := t.Context()
		donor := actorWith(t, kernel.RoleDonor, false)
		d := donationIn(t, donor.ID(), donation.Approved)
		cmd, err := commands.NewDeleteDonationCommand(donor, d.ID())
		require.NoError(t, err)

		repo := new(MockDonationRepository)
		requests := new(MockDonationRequestRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("DonationRepository").Return(repo).Once(),
			repo.On("Get", ctx, d.ID()).Return(d, nil).Once(),
			uow.On("DonationRequestRepository").Return(requests).Once(),
			requests.On("CountByDonation", ctx, d.ID()).Return(int64(2), nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockDonationUoWFactory)
		factory.On("Create").Return(uow).Once()

		err = commands.NewDeleteDonationCommandHandler(factory).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrPreconditionFailed)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestCreateDonationCommandHandler_Handle_InactiveCollectionPoint(t *testing.T) {
	ctx := t.Context()
	point := inactivePoint(t)
	pointID := point.ID()
	cmd, err := commands.NewCreateDonationCommand(actorWith(t, kernel.RoleDonor, false), kernel.NewUUID(), donation.Details{
		Title:             "Monitor",
		Condition:         donation.ConditionNew,
		DeliveryType:      donation.DeliveryTypeCollectionPoint,
		CollectionPointID: &pointID,
	})
	require.NoError(t, err)

	points := new(MockCollectionPointRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CollectionPointRepository").Return(points).Once(),
		points.On("Get", ctx, pointID).Return(point, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDonationUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewCreateDonationCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrPreconditionFailed)
	uow.AssertNotCalled(t, "DonationRepository")
}

func TestCreateDonationCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	donor := actorWith(t, kernel.RoleDonor, false)
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateDonationCommand(donor, id, donation.Details{
		Title:         "Printer",
		Condition:     donation.ConditionNeedsRepair,
		DeliveryType:  donation.DeliveryTypeHomePickup,
		PickupAddress: "Rua das Flores, 12",
	})
	require.NoError(t, err)

	repo := new(MockDonationRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DonationRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.MatchedBy(func(d *donation.Donation) bool {
			return d.ID().IsEqual(id) && d.IsOwnedBy(donor.ID()) && d.Status() == donation.Pending
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDonationUoWFactory)
	factory.On("Create").Return(uow).Once()

	require.NoError(t, commands.NewCreateDonationCommandHandler(factory).Handle(ctx, cmd))
	repo.AssertExpectations(t)
}

func inactivePoint(t *testing.T) *collectionpoint.CollectionPoint {
	t.Helper()
	geo, err := kernel.NewGeoPoint(-25.43, -49.27)
	require.NoError(t, err)
	p, err := collectionpoint.RestoreCollectionPoint(kernel.NewUUID(), collectionpoint.Details{
		Name:    "Centro",
		Address: "Praça Tiradentes",
		Point:   geo,
	}, false, kernel.NewUUID(), fixedTime)
	require.NoError(t, err)
	return p
}

func TestEditDonationCommandHandler_Handle(t *testing.T) {
	details := donation.Details{
		Title:        "  Notebook Lenovo ",
		Condition:    donation.ConditionNeedsRepair,
		DeliveryType: donation.DeliveryTypeCollectionPoint,
	}

	t.Run("owner rewrites the details", func(t *testing.T) {
		ctx := t.Context()
		donor := actorWith(t, kernel.RoleDonor, false)
		d := donationIn(t, donor.ID(), donation.Approved)
		cmd, err := commands.NewEditDonationCommand(donor, d.ID(), details)
		require.NoError(t, err)

		repo := new(MockDonationRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("DonationRepository").Return(repo).Once(),
			repo.On("Get", ctx, d.ID()).Return(d, nil).Once(),
			repo.On("Update", ctx, mock.MatchedBy(func(got *donation.Donation) bool {
				return got.Title() == "Notebook Lenovo" && got.Details().Condition == donation.ConditionNeedsRepair
			})).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockDonationUoWFactory)
		factory.On("Create").Return(uow).Once()

		require.NoError(t, commands.NewEditDonationCommandHandler(factory).Handle(ctx, cmd))
		repo.AssertExpectations(t)
		uow.AssertNotCalled(t, "CollectionPointRepository")
	})

	t.Run("another donor cannot edit", func(t *testing.T) {
		ctx := t.Context()
		d := donationIn(t, kernel.NewUUID(), donation.Pending)
		cmd, err := commands.NewEditDonationCommand(actorWith(t, kernel.RoleDonor, false), d.ID(), details)
		require.NoError(t, err)

		repo := new(MockDonationRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("DonationRepository").Return(repo).Once(),
			repo.On("Get", ctx, d.ID()).Return(d, nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockDonationUoWFactory)
		factory.On("Create").Return(uow).Once()

		err = commands.NewEditDonationCommandHandler(factory).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrPermissionDenied)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("moving to an inactive collection point fails", func(t *testing.T) {
		ctx := t.Context()
		donor := actorWith(t, kernel.RoleDonor, false)
		d := donationIn(t, donor.ID(), donation.Pending)
		point := inactivePoint(t)
		pointID := point.ID()
		moved := details
		moved.CollectionPointID = &pointID
		cmd, err := commands.NewEditDonationCommand(donor, d.ID(), moved)
		require.NoError(t, err)

		repo := new(MockDonationRepository)
		points := new(MockCollectionPointRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("DonationRepository").Return(repo).Once(),
			repo.On("Get", ctx, d.ID()).Return(d, nil).Once(),
			uow.On("CollectionPointRepository").Return(points).Once(),
			points.On("Get", ctx, pointID).Return(point, nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockDonationUoWFactory)
		factory.On("Create").Return(uow).Once()

		err = commands.NewEditDonationCommandHandler(factory).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrPreconditionFailed)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}
