package verification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/elegantevents/wedding-finance/pkg/api"
	"github.com/elegantevents/wedding-finance/pkg/gateway"
	gateway_mocks "github.com/elegantevents/wedding-finance/pkg/gateway/mocks"
	"github.com/elegantevents/wedding-finance/pkg/models"
	scheduler_mocks "github.com/elegantevents/wedding-finance/pkg/scheduler/mocks"
	storage_mocks "github.com/elegantevents/wedding-finance/pkg/storage/mocks"
	"github.com/elegantevents/wedding-finance/pkg/websockets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func job(attempt int32) *api.VerificationJob {
	return &api.VerificationJob{
		TxRef:         "wedding-w1-payment-p1-1700000000000",
		WeddingId:     "w1",
		InstallmentId: "p1",
		Attempt:       attempt,
	}
}

func TestProcess_Paid(t *testing.T) {
	mockGateway := new(gateway_mocks.Gateway)
	mockStore := new(storage_mocks.SettlementStore)
	mockScheduler := new(scheduler_mocks.Scheduler)
	processor := NewProcessor(mockGateway, mockStore, mockScheduler, &websockets.NoOpPublisher{})

	mockGateway.On("Verify", mock.Anything, job(1).TxRef).Return(gateway.OutcomePaid, nil)
	mockStore.On("SetInstallmentOutcome", mock.Anything, "w1", "p1", models.InstallmentPaid, job(1).TxRef).Return(true, nil)
	mockStore.On("SettleAttempt", mock.Anything, job(1).TxRef).Return(nil)

	err := processor.Process(context.Background(), job(1))

	assert.NoError(t, err)
	mockGateway.AssertExpectations(t)
	mockStore.AssertExpectations(t)
	mockScheduler.AssertNotCalled(t, "ScheduleVerification")
}

func TestProcess_PaidIsIdempotent(t *testing.T) {
	// A duplicate delivery finds the installment already resolved; the
	// conditional update reports false and the run still succeeds.
	mockGateway := new(gateway_mocks.Gateway)
	mockStore := new(storage_mocks.SettlementStore)
	processor := NewProcessor(mockGateway, mockStore, nil, &websockets.NoOpPublisher{})

	mockGateway.On("Verify", mock.Anything, mock.Anything).Return(gateway.OutcomePaid, nil)
	mockStore.On("SetInstallmentOutcome", mock.Anything, "w1", "p1", models.InstallmentPaid, mock.Anything).Return(false, nil)
	mockStore.On("SettleAttempt", mock.Anything, mock.Anything).Return(nil)

	err := processor.Process(context.Background(), job(3))

	assert.NoError(t, err)
	mockStore.AssertExpectations(t)
}

func TestProcess_Failed(t *testing.T) {
	mockGateway := new(gateway_mocks.Gateway)
	mockStore := new(storage_mocks.SettlementStore)
	processor := NewProcessor(mockGateway, mockStore, nil, &websockets.NoOpPublisher{})

	mockGateway.On("Verify", mock.Anything, mock.Anything).Return(gateway.OutcomeFailed, nil)
	mockStore.On("SetInstallmentOutcome", mock.Anything, "w1", "p1", models.InstallmentFailed, mock.Anything).Return(true, nil)
	mockStore.On("SettleAttempt", mock.Anything, mock.Anything).Return(nil)

	err := processor.Process(context.Background(), job(2))

	assert.NoError(t, err)
	mockStore.AssertExpectations(t)
}

func TestProcess_PendingReschedulesWithGrowingDelay(t *testing.T) {
	mockGateway := new(gateway_mocks.Gateway)
	mockStore := new(storage_mocks.SettlementStore)
	mockScheduler := new(scheduler_mocks.Scheduler)
	processor := NewProcessor(mockGateway, mockStore, mockScheduler, &websockets.NoOpPublisher{})

	mockGateway.On("Verify", mock.Anything, mock.Anything).Return(gateway.OutcomePending, nil)
	mockScheduler.On("ScheduleVerification", mock.Anything, mock.MatchedBy(func(j *api.VerificationJob) bool {
		return j.Attempt == 3
	}), Delay(3)).Return(nil)

	err := processor.Process(context.Background(), job(2))

	assert.NoError(t, err)
	mockScheduler.AssertExpectations(t)
	mockStore.AssertNotCalled(t, "SetInstallmentOutcome")
	mockStore.AssertNotCalled(t, "ExhaustAttempt")
}

func TestProcess_VerifyErrorIsIndeterminate(t *testing.T) {
	// A failed verification call never fails the installment; it keeps the
	// backoff schedule alive.
	mockGateway := new(gateway_mocks.Gateway)
	mockStore := new(storage_mocks.SettlementStore)
	mockScheduler := new(scheduler_mocks.Scheduler)
	processor := NewProcessor(mockGateway, mockStore, mockScheduler, &websockets.NoOpPublisher{})

	mockGateway.On("Verify", mock.Anything, mock.Anything).Return(gateway.OutcomePending, errors.New("provider timeout"))
	mockScheduler.On("ScheduleVerification", mock.Anything, mock.Anything, 2*BaseDelay).Return(nil)

	err := processor.Process(context.Background(), job(1))

	assert.NoError(t, err)
	mockScheduler.AssertExpectations(t)
	mockStore.AssertNotCalled(t, "SetInstallmentOutcome")
}

func TestProcess_ExhaustsAfterMaxAttempts(t *testing.T) {
	mockGateway := new(gateway_mocks.Gateway)
	mockStore := new(storage_mocks.SettlementStore)
	mockScheduler := new(scheduler_mocks.Scheduler)
	processor := NewProcessor(mockGateway, mockStore, mockScheduler, &websockets.NoOpPublisher{})

	mockGateway.On("Verify", mock.Anything, mock.Anything).Return(gateway.OutcomePending, nil)
	mockStore.On("ExhaustAttempt", mock.Anything, job(MaxAttempts).TxRef).Return(nil)

	err := processor.Process(context.Background(), job(MaxAttempts))

	assert.NoError(t, err)
	mockStore.AssertExpectations(t)
	// Exhaustion never marks the installment FAILED and schedules nothing.
	mockStore.AssertNotCalled(t, "SetInstallmentOutcome")
	mockScheduler.AssertNotCalled(t, "ScheduleVerification")
}

func TestDelayGrowsStrictly(t *testing.T) {
	var prev time.Duration
	for k := int32(1); k <= MaxAttempts; k++ {
		d := Delay(k)
		assert.Greater(t, d, prev, "attempt %d delay must exceed attempt %d delay", k, k-1)
		prev = d
	}
}
