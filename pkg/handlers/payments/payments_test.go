package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/elegantevents/wedding-finance/pkg/api"
	"github.com/elegantevents/wedding-finance/pkg/models"
	"github.com/elegantevents/wedding-finance/pkg/schedule"
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

func TestGetFinancials(t *testing.T) {
	mockBookings := new(storage_mocks.BookingReader)
	mockInstallments := new(storage_mocks.InstallmentStore)
	manager := schedule.NewManager(mockBookings, mockInstallments)
	handler := NewHandler(manager, mockBookings, mockInstallments)

	bookings := []models.Booking{{
		Id: "b1", WeddingId: "w1", ServiceId: "s1", Status: models.BookingAccepted,
		Service: &models.Service{Id: "s1", Price: 50000},
	}}
	installments := []models.PaymentInstallment{{
		Id: "p1", WeddingId: "w1", Amount: 60000, Status: models.InstallmentPaid,
		Sequence: 1, TotalInSchedule: 1,
	}}
	mockBookings.On("ListBookingsForWedding", mock.Anything, "w1").Return(bookings, nil)
	mockInstallments.On("ListInstallments", mock.Anything, "w1").Return(installments, nil)

	req := routeRequest(httptest.NewRequest(http.MethodGet, "/weddings/w1/financials", nil), "w1")
	rr := httptest.NewRecorder()

	handler.GetFinancials(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var summary api.FinancialSummary
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &summary))
	assert.Equal(t, int64(50000), summary.ServicesSubtotal)
	assert.Equal(t, int64(10000), summary.ServiceCharge)
	assert.Equal(t, int64(60000), summary.TotalCost)
	assert.Equal(t, int64(60000), summary.PaidAmount)
	assert.Equal(t, int64(0), summary.RemainingBalance)
	assert.Equal(t, "FULLY_PAID", summary.PaymentStatus)
	assert.Len(t, summary.Installments, 1)
}

func TestGetFinancials_NoBookings(t *testing.T) {
	mockBookings := new(storage_mocks.BookingReader)
	mockInstallments := new(storage_mocks.InstallmentStore)
	manager := schedule.NewManager(mockBookings, mockInstallments)
	handler := NewHandler(manager, mockBookings, mockInstallments)

	mockBookings.On("ListBookingsForWedding", mock.Anything, "w1").Return([]models.Booking{}, nil)
	mockInstallments.On("ListInstallments", mock.Anything, "w1").Return([]models.PaymentInstallment{}, nil)

	req := routeRequest(httptest.NewRequest(http.MethodGet, "/weddings/w1/financials", nil), "w1")
	rr := httptest.NewRecorder()

	handler.GetFinancials(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var summary api.FinancialSummary
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &summary))
	// The service charge applies even with zero bookings, but nothing is
	// scheduled for it.
	assert.Equal(t, int64(10000), summary.TotalCost)
	assert.Equal(t, "NOT_PAID", summary.PaymentStatus)
	assert.Empty(t, summary.Installments)
	mockInstallments.AssertNotCalled(t, "ReplaceSchedule")
}

func TestListPayments(t *testing.T) {
	mockBookings := new(storage_mocks.BookingReader)
	mockInstallments := new(storage_mocks.InstallmentStore)
	handler := NewHandler(schedule.NewManager(mockBookings, mockInstallments), mockBookings, mockInstallments)

	mockInstallments.On("ListInstallments", mock.Anything, "w1").Return([]models.PaymentInstallment{
		{Id: "p1", WeddingId: "w1", Amount: 60000, Status: models.InstallmentPending},
	}, nil)

	req := routeRequest(httptest.NewRequest(http.MethodGet, "/weddings/w1/payments", nil), "w1")
	rr := httptest.NewRecorder()

	handler.ListPayments(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var list []*api.Installment
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	assert.Len(t, list, 1)
	assert.Equal(t, int64(0), list[0].PaidAmount)
	// Listing never ensures; that is the financials endpoint's job.
	mockBookings.AssertNotCalled(t, "ListBookingsForWedding")
}

func TestEnsureSchedule(t *testing.T) {
	mockBookings := new(storage_mocks.BookingReader)
	mockInstallments := new(storage_mocks.InstallmentStore)
	handler := NewHandler(schedule.NewManager(mockBookings, mockInstallments), mockBookings, mockInstallments)

	mockBookings.On("ListBookingsForWedding", mock.Anything, "w1").Return([]models.Booking{{
		Id: "b1", WeddingId: "w1", ServiceId: "s1", Status: models.BookingAccepted,
		Service: &models.Service{Id: "s1", Price: 50000},
	}}, nil)
	mockInstallments.On("ListInstallments", mock.Anything, "w1").Return([]models.PaymentInstallment{}, nil)
	mockInstallments.On("ReplaceSchedule", mock.Anything, "w1", mock.Anything).
		Return(func(ctx context.Context, weddingID string, items []models.PaymentInstallment) []models.PaymentInstallment {
			return items
		}, nil)

	body, _ := json.Marshal(api.EnsureScheduleRequest{PayerId: "couple-1"})
	req := routeRequest(httptest.NewRequest(http.MethodPost, "/weddings/w1/payments/schedule", bytes.NewReader(body)), "w1")
	rr := httptest.NewRecorder()

	handler.EnsureSchedule(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var list []*api.Installment
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	assert.Len(t, list, 1)
	assert.Equal(t, int64(60000), list[0].Amount)
}
