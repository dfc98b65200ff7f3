package queries_test

import (
	"context"
	"time"

	"reco/internal/core/application/usecases/queries"
	"reco/internal/core/domain/model/kernel"
	"reco/internal/core/domain/model/message"
	"reco/internal/pkg/errs"
)

func (suite *ReportingIntegrationTestSuite) TestListDonations_Catalog() {
	handler := queries.NewListDonationsQueryHandler(suite.db)
	visitor := suite.actorOf(suite.fx.beneficiary)

	q, err := queries.NewListDonationsQuery(visitor, "", "", "", "")
	suite.Require().NoError(err)
	all, err := handler.Handle(context.Background(), q)
	suite.Require().NoError(err)
	suite.Require().Len(all.Donations, 2, "only approved and delivered listings are public")
	suite.Equal("Notebook", all.Donations[0].Title)
	suite.Equal("dora", all.Donations[0].DonorName)
	suite.Equal(int64(1), all.Donations[0].RequestCount)
	suite.Equal(int64(0), all.Donations[0].ApprovedRequests)
	suite.Equal("Impressora", all.Donations[1].Title)
	suite.Equal(int64(1), all.Donations[1].ApprovedRequests)

	q, err = queries.NewListDonationsQuery(visitor, "NOTE", "curi", "good", "oldest")
	suite.Require().NoError(err)
	filtered, err := handler.Handle(context.Background(), q)
	suite.Require().NoError(err)
	suite.Require().Len(filtered.Donations, 1)
	suite.True(filtered.Donations[0].ID.IsEqual(suite.fx.approved.ID()))

	q, err = queries.NewListDonationsQuery(visitor, "", "", "new", "")
	suite.Require().NoError(err)
	none, err := handler.Handle(context.Background(), q)
	suite.Require().NoError(err)
	suite.Empty(none.Donations)

	q, err = queries.NewListDonationsQuery(visitor, "", "", "", "name")
	suite.Require().NoError(err)
	byName, err := handler.Handle(context.Background(), q)
	suite.Require().NoError(err)
	suite.Equal("Impressora", byName.Donations[0].Title)
}

func (suite *ReportingIntegrationTestSuite) TestGetDonation_Visibility() {
	handler := queries.NewGetDonationQueryHandler(suite.db)
	get := func(actor kernel.Actor, id kernel.UUID) (queries.GetDonationQueryResponse, error) {
		q, err := queries.NewGetDonationQuery(actor, id)
		suite.Require().NoError(err)
		return handler.Handle(context.Background(), q)
	}

	listed, err := get(suite.actorOf(suite.fx.beneficiary), suite.fx.approved.ID())
	suite.Require().NoError(err)
	suite.Equal("Notebook", listed.Donation.Title)
	suite.Equal("Centro", listed.CollectionPointName)
	suite.Equal("pending", listed.OwnRequestStatus)
	suite.Empty(listed.DeliveryStatus)

	_, err = get(suite.actorOf(suite.fx.beneficiary), suite.fx.pending.ID())
	suite.Require().ErrorIs(err, errs.ErrPermissionDenied)

	own, err := get(suite.actorOf(suite.fx.donor), suite.fx.pending.ID())
	suite.Require().NoError(err)
	suite.Equal("pending", own.Donation.Status)
	suite.Equal("Rua XV, 100", own.PickupAddress)

	moving, err := get(suite.actorOf(suite.fx.admin), suite.fx.inRoute.ID())
	suite.Require().NoError(err)
	suite.Equal("in_transit", moving.DeliveryStatus)
	suite.Empty(moving.OwnRequestStatus)

	_, err = get(suite.actorOf(suite.fx.admin), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ReportingIntegrationTestSuite) TestListMyDonations() {
	q, err := queries.NewListMyDonationsQuery(suite.actorOf(suite.fx.donor))
	suite.Require().NoError(err)

	resp, err := queries.NewListMyDonationsQueryHandler(suite.db).Handle(context.Background(), q)

	suite.Require().NoError(err)
	suite.Len(resp.Donations, 5)
	suite.Equal(queries.DonationStats{Total: 5, Pending: 1, Approved: 1, InRoute: 2, Delivered: 1}, resp.Stats)
	suite.Equal("Impressora", resp.Donations[4].Title, "oldest last")

	q, err = queries.NewListMyDonationsQuery(suite.actorOf(suite.fx.beneficiary))
	suite.Require().NoError(err)
	empty, err := queries.NewListMyDonationsQueryHandler(suite.db).Handle(context.Background(), q)
	suite.Require().NoError(err)
	suite.Empty(empty.Donations)
}

func (suite *ReportingIntegrationTestSuite) TestListMyRequests() {
	handler := queries.NewListMyRequestsQueryHandler(suite.db)
	beneficiary := suite.actorOf(suite.fx.beneficiary)

	q, err := queries.NewListMyRequestsQuery(beneficiary, "")
	suite.Require().NoError(err)
	all, err := handler.Handle(context.Background(), q)
	suite.Require().NoError(err)
	suite.Require().Len(all.Requests, 2)
	suite.Equal("Notebook", all.Requests[0].DonationTitle)
	suite.Equal(queries.RequestStats{Total: 2, Pending: 1, Delivered: 1}, all.Stats)

	q, err = queries.NewListMyRequestsQuery(beneficiary, "delivered")
	suite.Require().NoError(err)
	delivered, err := handler.Handle(context.Background(), q)
	suite.Require().NoError(err)
	suite.Require().Len(delivered.Requests, 1)
	suite.True(delivered.Requests[0].ID.IsEqual(suite.fx.doneRequest.ID()))
	suite.Equal(int64(2), delivered.Stats.Total, "stats ignore the filter")
}

func (suite *ReportingIntegrationTestSuite) TestGetRequest_Access() {
	handler := queries.NewGetRequestQueryHandler(suite.db)
	get := func(p kernel.Actor, id kernel.UUID) (queries.GetRequestQueryResponse, error) {
		q, err := queries.NewGetRequestQuery(p, id)
		suite.Require().NoError(err)
		return handler.Handle(context.Background(), q)
	}

	mine, err := get(suite.actorOf(suite.fx.beneficiary), suite.fx.openRequest.ID())
	suite.Require().NoError(err)
	suite.Equal("school", mine.Request.Reason)
	suite.Equal("bia", mine.Request.BeneficiaryName)
	suite.True(mine.Request.DonorID.IsEqual(suite.fx.donor.ID()))

	_, err = get(suite.actorOf(suite.fx.donor), suite.fx.openRequest.ID())
	suite.Require().NoError(err)
	_, err = get(suite.actorOf(suite.fx.admin), suite.fx.openRequest.ID())
	suite.Require().NoError(err)

	_, err = get(suite.actorOf(suite.fx.driver), suite.fx.openRequest.ID())
	suite.Require().ErrorIs(err, errs.ErrPermissionDenied)

	_, err = get(suite.actorOf(suite.fx.admin), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ReportingIntegrationTestSuite) TestStaffLists() {
	ctx := context.Background()
	admin := suite.actorOf(suite.fx.admin)

	dq, err := queries.NewListAllDonationsQuery(admin, "in_route", "", "")
	suite.Require().NoError(err)
	donations, err := queries.NewListAllDonationsQueryHandler(suite.db).Handle(ctx, dq)
	suite.Require().NoError(err)
	suite.Len(donations.Donations, 2)
	suite.Equal(int64(5), donations.Stats.Total)

	dq, err = queries.NewListAllDonationsQuery(admin, "", "", "dora")
	suite.Require().NoError(err)
	byDonor, err := queries.NewListAllDonationsQueryHandler(suite.db).Handle(ctx, dq)
	suite.Require().NoError(err)
	suite.Len(byDonor.Donations, 5)

	rq, err := queries.NewListAllRequestsQuery(admin, "")
	suite.Require().NoError(err)
	requests, err := queries.NewListAllRequestsQueryHandler(suite.db).Handle(ctx, rq)
	suite.Require().NoError(err)
	suite.Require().Len(requests.Requests, 2)
	suite.Equal("pending", requests.Requests[0].Status, "pending requests come first")

	lq, err := queries.NewListAllDeliveriesQuery(admin, "delivered", nil)
	suite.Require().NoError(err)
	deliveries, err := queries.NewListAllDeliveriesQueryHandler(suite.db).Handle(ctx, lq)
	suite.Require().NoError(err)
	suite.Require().Len(deliveries.Deliveries, 1)
	suite.Equal("dario", deliveries.Deliveries[0].DriverName)
	suite.Equal(queries.DeliveryStats{Total: 2, InTransit: 1, Delivered: 1}, deliveries.Stats)

	driverID := suite.fx.driver.ID()
	lq, err = queries.NewListAllDeliveriesQuery(admin, "", &driverID)
	suite.Require().NoError(err)
	byDriver, err := queries.NewListAllDeliveriesQueryHandler(suite.db).Handle(ctx, lq)
	suite.Require().NoError(err)
	suite.Len(byDriver.Deliveries, 2)

	rq, err = queries.NewListAllRequestsQuery(suite.actorOf(suite.fx.donor), "")
	suite.Require().NoError(err)
	_, err = queries.NewListAllRequestsQueryHandler(suite.db).Handle(ctx, rq)
	suite.Require().ErrorIs(err, errs.ErrPermissionDenied)
}

func (suite *ReportingIntegrationTestSuite) TestImpactReport() {
	handler := queries.NewGetImpactReportQueryHandler(suite.db)
	admin := suite.actorOf(suite.fx.admin)

	q, err := queries.NewGetImpactReportQuery(admin, "90", now)
	suite.Require().NoError(err)
	report, err := handler.Handle(context.Background(), q)
	suite.Require().NoError(err)
	suite.Equal(int64(1), report.DeliveredDonations)
	suite.Equal(int64(1), report.UniqueBeneficiaries)
	suite.InDelta(3.0, report.EstimatedWeightKg, 1e-9)
	suite.InDelta(180.0, report.Impact.CO2AvoidedKg, 1e-9)
	suite.Equal(map[string]int64{"good": 1}, report.ByCondition)
	suite.Require().Len(report.Monthly, 1)
	suite.Equal(time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), report.Monthly[0].Month)

	q, err = queries.NewGetImpactReportQuery(admin, "30", now)
	suite.Require().NoError(err)
	recent, err := handler.Handle(context.Background(), q)
	suite.Require().NoError(err)
	suite.Zero(recent.DeliveredDonations)
	suite.Empty(recent.Monthly)
}

func (suite *ReportingIntegrationTestSuite) TestBeneficiaryReport() {
	handler := queries.NewGetBeneficiaryReportQueryHandler(suite.db)
	admin := suite.actorOf(suite.fx.admin)

	q, err := queries.NewGetBeneficiaryReportQuery(admin, "all", now)
	suite.Require().NoError(err)
	report, err := handler.Handle(context.Background(), q)
	suite.Require().NoError(err)
	suite.Equal(queries.RequestStats{Total: 2, Pending: 1, Delivered: 1}, report.Stats)
	suite.InDelta(50.0, report.ApprovalRate, 1e-9)
	suite.Equal(int64(1), report.UniqueBeneficiaries)
	suite.Require().Len(report.TopBeneficiaries, 1)
	suite.Equal(queries.BeneficiaryStats{
		ProfileID: suite.fx.beneficiary.ID(), Username: "bia", Requests: 2, Accepted: 1,
	}, report.TopBeneficiaries[0])

	q, err = queries.NewGetBeneficiaryReportQuery(admin, "30", now)
	suite.Require().NoError(err)
	month, err := handler.Handle(context.Background(), q)
	suite.Require().NoError(err)
	suite.Equal(int64(1), month.Stats.Total)
	suite.InDelta(0.0, month.ApprovalRate, 1e-9)
}

func (suite *ReportingIntegrationTestSuite) TestListMessages_Threads() {
	ctx := context.Background()
	fx := suite.fx

	ask, err := message.NewMessage(kernel.NewUUID(), fx.approved.ID(), fx.beneficiary.ID(), fx.donor.ID(),
		"still available?", "", now.Add(-time.Hour))
	suite.Require().NoError(err)
	answer, err := message.NewMessage(kernel.NewUUID(), fx.approved.ID(), fx.donor.ID(), fx.beneficiary.ID(),
		"yes", "", now.Add(-30*time.Minute))
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.MessageRepository().Add(ctx, answer))
	suite.Require().NoError(uow.MessageRepository().Add(ctx, ask))
	suite.Require().NoError(uow.Commit(ctx))

	handler := queries.NewListMessagesQueryHandler(suite.db)
	list := func(p kernel.Actor, participant *kernel.UUID) (queries.ListMessagesQueryResponse, error) {
		q, err := queries.NewListMessagesQuery(p, fx.approved.ID(), participant)
		suite.Require().NoError(err)
		return handler.Handle(ctx, q)
	}

	asker, err := list(suite.actorOf(fx.beneficiary), nil)
	suite.Require().NoError(err)
	suite.Equal("Notebook", asker.DonationTitle)
	suite.Empty(asker.Participants)
	suite.Require().Len(asker.Messages, 2)
	suite.Equal("still available?", asker.Messages[0].Text)
	suite.Equal("yes", asker.Messages[1].Text)

	inbox, err := list(suite.actorOf(fx.donor), nil)
	suite.Require().NoError(err)
	suite.Require().Len(inbox.Participants, 1)
	suite.Equal("bia", inbox.Participants[0].Username)
	suite.Empty(inbox.Messages)

	beneficiaryID := fx.beneficiary.ID()
	thread, err := list(suite.actorOf(fx.donor), &beneficiaryID)
	suite.Require().NoError(err)
	suite.Len(thread.Messages, 2)

	moderated, err := list(suite.actorOf(fx.admin), &beneficiaryID)
	suite.Require().NoError(err)
	suite.Len(moderated.Messages, 2)

	outsider, err := list(suite.actorOf(fx.driver), nil)
	suite.Require().NoError(err)
	suite.Empty(outsider.Messages)

	driverID := fx.driver.ID()
	_, err = list(suite.actorOf(fx.donor), &driverID)
	suite.Require().ErrorIs(err, errs.ErrPreconditionFailed)
}
