package commands_test

import (
	"testing"

	"reco/internal/core/application/usecases/commands"
	"reco/internal/core/domain/model/donation"
	"reco/internal/core/domain/model/donationrequest"
	"reco/internal/core/domain/model/kernel"
	"reco/internal/core/domain/model/notification"
	"reco/internal/core/domain/model/profile"
	"reco/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSubmitDonationRequestCommandHandler_Handle_NotifiesStaff(t *testing.T) {
	ctx := t.Context()
	beneficiary := actorWith(t, kernel.RoleBeneficiary, false)
	d := donationIn(t, kernel.NewUUID(), donation.Approved)
	requestID := kernel.NewUUID()
	cmd, err := commands.NewSubmitDonationRequestCommand(beneficiary, requestID, d.ID(), "for my daughter's classes")
	require.NoError(t, err)

	admin, err := profile.NewProfile(kernel.NewUUID(), "admin", profile.Contact{Email: "admin@reco.example"},
		kernel.RoleAdmin, true, profile.DriverInfo{}, fixedTime)
	require.NoError(t, err)
	silent, err := profile.NewProfile(kernel.NewUUID(), "ops", profile.Contact{},
		kernel.RoleOrganization, true, profile.DriverInfo{}, fixedTime)
	require.NoError(t, err)

	donations := new(MockDonationRepository)
	requests := new(MockDonationRequestRepository)
	profiles := new(MockProfileRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DonationRepository").Return(donations).Once(),
		donations.On("Get", ctx, d.ID()).Return(d, nil).Once(),
		uow.On("DonationRequestRepository").Return(requests).Once(),
		requests.On("FindByPair", ctx, d.ID(), beneficiary.ID()).Return(nil, nil).Once(),
		uow.On("ProfileRepository").Return(profiles).Once(),
		profiles.On("ListStaff", ctx).Return([]*profile.Profile{admin, silent}, nil).Once(),
		requests.On("Add", ctx, mock.MatchedBy(func(r *donationrequest.Request) bool {
			return r.ID().IsEqual(requestID) && r.Status() == donationrequest.Pending
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("Notify", ctx, mock.MatchedBy(func(intents []notification.Intent) bool {
			return len(intents) == 1 &&
				intents[0].Kind == notification.KindNewRequestAdmin &&
				intents[0].Recipient.Email == "admin@reco.example"
		})).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDonationUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewSubmitDonationRequestCommandHandler(factory, notifier).Handle(ctx, cmd)

	require.NoError(t, err)
	requests.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestSubmitDonationRequestCommandHandler_Handle_DuplicateIsConflict(t *testing.T) {
	ctx := t.Context()
	beneficiary := actorWith(t, kernel.RoleBeneficiary, false)
	d := donationIn(t, kernel.NewUUID(), donation.Approved)
	existing := requestIn(t, d, beneficiary.ID(), donationrequest.Pending)
	cmd, err := commands.NewSubmitDonationRequestCommand(beneficiary, kernel.NewUUID(), d.ID(), "again")
	require.NoError(t, err)

	donations := new(MockDonationRepository)
	requests := new(MockDonationRequestRepository)
	profiles := new(MockProfileRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DonationRepository").Return(donations).Once(),
		donations.On("Get", ctx, d.ID()).Return(d, nil).Once(),
		uow.On("DonationRequestRepository").Return(requests).Once(),
		requests.On("FindByPair", ctx, d.ID(), beneficiary.ID()).Return(existing, nil).Once(),
		uow.On("ProfileRepository").Return(profiles).Once(),
		profiles.On("ListStaff", ctx).Return([]*profile.Profile{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDonationUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewSubmitDonationRequestCommandHandler(factory, notifier).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	requests.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestNewSubmitDonationRequestCommand_ReasonIsRequired(t *testing.T) {
	_, err := commands.NewSubmitDonationRequestCommand(
		actorWith(t, kernel.RoleBeneficiary, false), kernel.NewUUID(), kernel.NewUUID(), "   ",
	)

	require.ErrorIs(t, err, donationrequest.ErrReasonIsRequired)
}

func TestApproveDonationRequestCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	beneficiary := kernel.NewUUID()
	d := donationIn(t, kernel.NewUUID(), donation.Approved)
	r := requestIn(t, d, beneficiary, donationrequest.Pending)
	cmd, err := commands.NewApproveDonationRequestCommand(staffActor(t), r.ID())
	require.NoError(t, err)

	donations := new(MockDonationRepository)
	requests := new(MockDonationRequestRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DonationRequestRepository").Return(requests).Once(),
		requests.On("Get", ctx, r.ID()).Return(r, nil).Once(),
		uow.On("DonationRepository").Return(donations).Once(),
		donations.On("Get", ctx, d.ID()).Return(d, nil).Once(),
		requests.On("Update", ctx, r).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("Notify", ctx, mock.MatchedBy(func(intents []notification.Intent) bool {
			return len(intents) == 1 &&
				intents[0].Kind == notification.KindRequestApproved &&
				intents[0].Recipient.ID.IsEqual(beneficiary)
		})).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDonationUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewApproveDonationRequestCommandHandler(factory, notifier).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, donationrequest.Approved, r.Status())
	notifier.AssertExpectations(t)
}

func TestRejectDonationRequestCommandHandler_Handle_DefaultReason(t *testing.T) {
	ctx := t.Context()
	d := donationIn(t, kernel.NewUUID(), donation.Approved)
	r := requestIn(t, d, kernel.NewUUID(), donationrequest.Pending)
	cmd, err := commands.NewRejectDonationRequestCommand(staffActor(t), r.ID(), "")
	require.NoError(t, err)

	donations := new(MockDonationRepository)
	requests := new(MockDonationRequestRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DonationRequestRepository").Return(requests).Once(),
		requests.On("Get", ctx, r.ID()).Return(r, nil).Once(),
		uow.On("DonationRepository").Return(donations).Once(),
		donations.On("Get", ctx, d.ID()).Return(d, nil).Once(),
		requests.On("Update", ctx, r).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("Notify", ctx, mock.Anything).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDonationUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewRejectDonationRequestCommandHandler(factory, notifier).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, donationrequest.Rejected, r.Status())
	assert.Equal(t, donationrequest.DefaultRejectionReason, r.RejectionReason())
}

func TestSelectBeneficiaryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	donor := actorWith(t, kernel.RoleDonor, false)
	beneficiary := kernel.NewUUID()
	d := donationIn(t, donor.ID(), donation.Approved)
	other := requestIn(t, d, kernel.NewUUID(), donationrequest.Pending)
	chosen := requestIn(t, d, beneficiary, donationrequest.Approved)
	cmd, err := commands.NewSelectBeneficiaryCommand(donor, d.ID(), beneficiary)
	require.NoError(t, err)

	donations := new(MockDonationRepository)
	requests := new(MockDonationRequestRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DonationRepository").Return(donations).Once(),
		donations.On("Get", ctx, d.ID()).Return(d, nil).Once(),
		uow.On("DonationRequestRepository").Return(requests).Once(),
		requests.On("ListByDonation", ctx, d.ID()).Return([]*donationrequest.Request{other, chosen}, nil).Once(),
		donations.On("Update", ctx, d).Return(nil).Once(),
		requests.On("Update", ctx, chosen).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDonationUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewSelectBeneficiaryCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, donation.InRoute, d.Status())
	require.NotNil(t, d.BeneficiaryID())
	assert.True(t, d.BeneficiaryID().IsEqual(beneficiary))
	assert.Equal(t, donationrequest.Delivered, chosen.Status())
	assert.Equal(t, donationrequest.Pending, other.Status())
}

func TestSelectBeneficiaryCommandHandler_Handle_NoApprovedRequest(t *testing.T) {
	ctx := t.Context()
	donor := actorWith(t, kernel.RoleDonor, false)
	beneficiary := kernel.NewUUID()
	d := donationIn(t, donor.ID(), donation.Approved)
	pending := requestIn(t, d, beneficiary, donationrequest.Pending)
	cmd, err := commands.NewSelectBeneficiaryCommand(donor, d.ID(), beneficiary)
	require.NoError(t, err)

	donations := new(MockDonationRepository)
	requests := new(MockDonationRequestRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DonationRepository").Return(donations).Once(),
		donations.On("Get", ctx, d.ID()).Return(d, nil).Once(),
		uow.On("DonationRequestRepository").Return(requests).Once(),
		requests.On("ListByDonation", ctx, d.ID()).Return([]*donationrequest.Request{pending}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDonationUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewSelectBeneficiaryCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Equal(t, donation.Approved, d.Status())
}
