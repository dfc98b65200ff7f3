package jobs

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRetrier struct {
	mock.Mock
}

func (m *MockRetrier) RetryFailed(ctx context.Context) int {
	return m.Called(ctx).Int(0)
}

func (m *MockRetrier) Pending() int {
	return m.Called().Int(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNotificationRetryJob_SkipsWhenNothingPending(t *testing.T) {
	retrier := &MockRetrier{}
	retrier.On("Pending").Return(0).Once()

	NewNotificationRetryJob(retrier, "", discardLogger()).run()

	retrier.AssertExpectations(t)
	retrier.AssertNotCalled(t, "RetryFailed", mock.Anything)
}

func TestNotificationRetryJob_RetriesPending(t *testing.T) {
	retrier := &MockRetrier{}
	retrier.On("Pending").Return(3).Once()
	retrier.On("RetryFailed", mock.Anything).Return(2).Once()
	retrier.On("Pending").Return(1).Once()

	NewNotificationRetryJob(retrier, "", discardLogger()).run()

	retrier.AssertExpectations(t)
}

func TestNotificationRetryJob_DefaultSchedule(t *testing.T) {
	job := NewNotificationRetryJob(&MockRetrier{}, "", discardLogger())
	assert.Equal(t, DefaultRetrySchedule, job.schedule)
}

func TestNotificationRetryJob_RejectsInvalidSchedule(t *testing.T) {
	job := NewNotificationRetryJob(&MockRetrier{}, "not a schedule", discardLogger())
	require.Error(t, job.Start())
}

func TestJobManager_StartAndStop(t *testing.T) {
	jm := NewJobManager(&MockRetrier{}, "0 0 0 1 1 *", discardLogger())
	require.NoError(t, jm.StartAll())
	jm.StopAll()
}
