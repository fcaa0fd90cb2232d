package weddings

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/elegantevents/wedding-finance/pkg/api"
	"github.com/elegantevents/wedding-finance/pkg/completion"
	"github.com/elegantevents/wedding-finance/pkg/models"
	"github.com/elegantevents/wedding-finance/pkg/storage"
	storage_mocks "github.com/elegantevents/wedding-finance/pkg/storage/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func routeRequest(r *http.Request, weddingID string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("weddingId", weddingID)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func newHandler() (*Handler, *storage_mocks.AssignmentStore, *storage_mocks.TaskReader, *storage_mocks.InstallmentReader) {
	assignments := new(storage_mocks.AssignmentStore)
	tasks := new(storage_mocks.TaskReader)
	installments := new(storage_mocks.InstallmentReader)
	gate := completion.NewGate(assignments, tasks, installments)
	return NewHandler(gate, assignments), assignments, tasks, installments
}

func completeBody(t *testing.T) *bytes.Reader {
	t.Helper()
	body, err := json.Marshal(api.CompleteWeddingRequest{ManagerId: "mgr-1", Rating: 5, Feedback: "flawless"})
	assert.NoError(t, err)
	return bytes.NewReader(body)
}

func TestCompleteWedding_Success(t *testing.T) {
	handler, assignments, tasks, installments := newHandler()

	active := &models.WeddingAssignment{WeddingId: "w1", ManagerId: "mgr-1", Status: models.AssignmentActive}
	rating := int32(5)
	completed := &models.WeddingAssignment{
		WeddingId: "w1", ManagerId: "mgr-1", Status: models.AssignmentCompleted,
		ProtocolRating: &rating, ProtocolFeedback: "flawless",
	}

	assignments.On("GetAssignment", mock.Anything, "w1").Return(active, nil)
	tasks.On("ListTasksForWedding", mock.Anything, "w1").Return([]models.Task{}, nil)
	installments.On("ListInstallments", mock.Anything, "w1").Return([]models.PaymentInstallment{
		{Id: "p1", Status: models.InstallmentPaid},
	}, nil)
	assignments.On("CompleteAssignment", mock.Anything, "w1", int32(5), "flawless").Return(completed, nil)

	req := routeRequest(httptest.NewRequest(http.MethodPatch, "/weddings/w1/complete", completeBody(t)), "w1")
	rr := httptest.NewRecorder()

	handler.CompleteWedding(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp api.Assignment
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, api.AssignmentStatus("COMPLETED"), resp.Status)
}

func TestCompleteWedding_PreconditionFailure(t *testing.T) {
	handler, assignments, tasks, _ := newHandler()

	active := &models.WeddingAssignment{WeddingId: "w1", ManagerId: "mgr-1", Status: models.AssignmentActive}
	assignments.On("GetAssignment", mock.Anything, "w1").Return(active, nil)
	tasks.On("ListTasksForWedding", mock.Anything, "w1").Return([]models.Task{
		{Id: "t1", Status: models.TaskPendingAcceptance},
	}, nil)

	req := routeRequest(httptest.NewRequest(http.MethodPatch, "/weddings/w1/complete", completeBody(t)), "w1")
	rr := httptest.NewRecorder()

	handler.CompleteWedding(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
	var resp api.Error
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, completion.PreconditionMessage, resp.Error)
}

func TestCompleteWedding_InvalidRating(t *testing.T) {
	handler, _, _, _ := newHandler()

	body, _ := json.Marshal(api.CompleteWeddingRequest{ManagerId: "mgr-1", Rating: 9, Feedback: "x"})
	req := routeRequest(httptest.NewRequest(http.MethodPatch, "/weddings/w1/complete", bytes.NewReader(body)), "w1")
	rr := httptest.NewRecorder()

	handler.CompleteWedding(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCompleteWedding_WrongManager(t *testing.T) {
	handler, assignments, _, _ := newHandler()

	active := &models.WeddingAssignment{WeddingId: "w1", ManagerId: "mgr-other", Status: models.AssignmentActive}
	assignments.On("GetAssignment", mock.Anything, "w1").Return(active, nil)

	req := routeRequest(httptest.NewRequest(http.MethodPatch, "/weddings/w1/complete", completeBody(t)), "w1")
	rr := httptest.NewRecorder()

	handler.CompleteWedding(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestGetAssignment(t *testing.T) {
	handler, assignments, _, _ := newHandler()

	t.Run("Success", func(t *testing.T) {
		assignments.On("GetAssignment", mock.Anything, "w1").Once().
			Return(&models.WeddingAssignment{WeddingId: "w1", ManagerId: "mgr-1", Status: models.AssignmentActive}, nil)

		req := routeRequest(httptest.NewRequest(http.MethodGet, "/weddings/w1/assignment", nil), "w1")
		rr := httptest.NewRecorder()

		handler.GetAssignment(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Not Found", func(t *testing.T) {
		assignments.On("GetAssignment", mock.Anything, "w2").Once().
			Return(nil, storage.ErrAssignmentNotFound)

		req := routeRequest(httptest.NewRequest(http.MethodGet, "/weddings/w2/assignment", nil), "w2")
		rr := httptest.NewRecorder()

		handler.GetAssignment(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
