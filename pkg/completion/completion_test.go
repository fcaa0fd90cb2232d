package completion

import (
	"context"
	"testing"

	"github.com/elegantevents/wedding-finance/pkg/models"
	"github.com/elegantevents/wedding-finance/pkg/storage"
	storage_mocks "github.com/elegantevents/wedding-finance/pkg/storage/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func activeAssignment() *models.WeddingAssignment {
	return &models.WeddingAssignment{
		WeddingId:  "w1",
		CoupleId:   "couple-1",
		ManagerId:  "mgr-1",
		ProtocolId: "proto-1",
		Status:     models.AssignmentActive,
	}
}

func newGate() (*Gate, *storage_mocks.AssignmentStore, *storage_mocks.TaskReader, *storage_mocks.InstallmentReader) {
	assignments := new(storage_mocks.AssignmentStore)
	tasks := new(storage_mocks.TaskReader)
	installments := new(storage_mocks.InstallmentReader)
	return NewGate(assignments, tasks, installments), assignments, tasks, installments
}

func TestCompleteWedding_Succeeds(t *testing.T) {
	gate, assignments, tasks, installments := newGate()

	rating := int32(5)
	completed := activeAssignment()
	completed.Status = models.AssignmentCompleted
	completed.ProtocolRating = &rating
	completed.ProtocolFeedback = "excellent coordination"

	assignments.On("GetAssignment", mock.Anything, "w1").Return(activeAssignment(), nil)
	tasks.On("ListTasksForWedding", mock.Anything, "w1").Return([]models.Task{
		{Id: "t1", WeddingId: "w1", Status: models.TaskCompleted},
		{Id: "t2", WeddingId: "w1", Status: models.TaskRejected},
	}, nil)
	installments.On("ListInstallments", mock.Anything, "w1").Return([]models.PaymentInstallment{
		{Id: "p1", WeddingId: "w1", Amount: 60000, Status: models.InstallmentPaid},
	}, nil)
	assignments.On("CompleteAssignment", mock.Anything, "w1", int32(5), "excellent coordination").
		Return(completed, nil)

	result, err := gate.CompleteWedding(context.Background(), "w1", "mgr-1", 5, "excellent coordination")

	assert.NoError(t, err)
	assert.Equal(t, models.AssignmentCompleted, result.Status)
	assignments.AssertExpectations(t)
}

func TestCompleteWedding_ValidatesInput(t *testing.T) {
	gate, assignments, _, _ := newGate()

	t.Run("rating too low", func(t *testing.T) {
		_, err := gate.CompleteWedding(context.Background(), "w1", "mgr-1", 0, "fine")
		assert.ErrorIs(t, err, ErrInvalidRating)
	})
	t.Run("rating too high", func(t *testing.T) {
		_, err := gate.CompleteWedding(context.Background(), "w1", "mgr-1", 6, "fine")
		assert.ErrorIs(t, err, ErrInvalidRating)
	})
	t.Run("empty feedback", func(t *testing.T) {
		_, err := gate.CompleteWedding(context.Background(), "w1", "mgr-1", 3, "")
		assert.ErrorIs(t, err, ErrFeedbackRequired)
	})

	// Validation failures never touch storage.
	assignments.AssertNotCalled(t, "GetAssignment")
}

func TestCompleteWedding_RejectsWrongManager(t *testing.T) {
	gate, assignments, _, _ := newGate()

	assignments.On("GetAssignment", mock.Anything, "w1").Return(activeAssignment(), nil)

	_, err := gate.CompleteWedding(context.Background(), "w1", "mgr-2", 4, "good")

	assert.ErrorIs(t, err, ErrNotAssignedManager)
	assignments.AssertNotCalled(t, "CompleteAssignment")
}

func TestCompleteWedding_BlockedByOutstandingTask(t *testing.T) {
	gate, assignments, tasks, _ := newGate()

	assignments.On("GetAssignment", mock.Anything, "w1").Return(activeAssignment(), nil)
	tasks.On("ListTasksForWedding", mock.Anything, "w1").Return([]models.Task{
		{Id: "t1", WeddingId: "w1", Status: models.TaskAccepted},
	}, nil)

	_, err := gate.CompleteWedding(context.Background(), "w1", "mgr-1", 4, "good")

	assert.ErrorIs(t, err, ErrPreconditionFailed)
	assignments.AssertNotCalled(t, "CompleteAssignment")
}

func TestCompleteWedding_BlockedByPendingInstallment(t *testing.T) {
	gate, assignments, tasks, installments := newGate()

	assignments.On("GetAssignment", mock.Anything, "w1").Return(activeAssignment(), nil)
	tasks.On("ListTasksForWedding", mock.Anything, "w1").Return([]models.Task{}, nil)
	installments.On("ListInstallments", mock.Anything, "w1").Return([]models.PaymentInstallment{
		{Id: "p1", WeddingId: "w1", Amount: 60000, Status: models.InstallmentPending},
	}, nil)

	_, err := gate.CompleteWedding(context.Background(), "w1", "mgr-1", 4, "good")

	// Assignment stays ACTIVE; the caller may retry after the payment
	// resolves.
	assert.ErrorIs(t, err, ErrPreconditionFailed)
	assignments.AssertNotCalled(t, "CompleteAssignment")
}

func TestCompleteWedding_AlreadyCompleted(t *testing.T) {
	gate, assignments, _, _ := newGate()

	done := activeAssignment()
	done.Status = models.AssignmentCompleted
	assignments.On("GetAssignment", mock.Anything, "w1").Return(done, nil)

	_, err := gate.CompleteWedding(context.Background(), "w1", "mgr-1", 4, "good")

	assert.ErrorIs(t, err, storage.ErrAssignmentNotActive)
}
