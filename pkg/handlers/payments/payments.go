// Package payments serves a wedding's financial summary and payment
// schedule.
package payments

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/elegantevents/wedding-finance/pkg/api"
	"github.com/elegantevents/wedding-finance/pkg/mapping"
	"github.com/elegantevents/wedding-finance/pkg/pricing"
	"github.com/elegantevents/wedding-finance/pkg/schedule"
	"github.com/elegantevents/wedding-finance/pkg/storage"
	"github.com/go-chi/chi/v5"
)

// Handler holds the dependencies for payment-related handlers.
type Handler struct {
	Schedule     *schedule.Manager
	Bookings     storage.BookingReader
	Installments storage.InstallmentReader
}

// NewHandler creates a new payments Handler.
func NewHandler(scheduleManager *schedule.Manager, bookings storage.BookingReader, installments storage.InstallmentReader) *Handler {
	return &Handler{Schedule: scheduleManager, Bookings: bookings, Installments: installments}
}

// GetFinancials returns the wedding's authoritative cost breakdown. The
// schedule is ensured as a side effect so a couple always sees something
// payable once bookings are accepted.
func (h *Handler) GetFinancials(w http.ResponseWriter, r *http.Request) {
	weddingID := chi.URLParam(r, "weddingId")

	bookings, installments, err := h.Schedule.Financials(r.Context(), weddingID, r.URL.Query().Get("payer_id"))
	if err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to load financials: %v", err))
		return
	}

	subtotal := pricing.ServicesSubtotal(bookings)
	total := pricing.TotalCost(subtotal)
	paid := pricing.PaidAmount(installments)

	summary := &api.FinancialSummary{
		WeddingId:        weddingID,
		ServicesSubtotal: subtotal,
		ServiceCharge:    pricing.ServiceCharge,
		TotalCost:        total,
		PaidAmount:       paid,
		RemainingBalance: pricing.RemainingBalance(total, paid),
		PaymentStatus:    string(pricing.Bucket(total, paid)),
		Installments:     mapping.ToApiInstallments(installments),
	}

	respondJSON(w, http.StatusOK, summary)
}

// ListPayments returns the wedding's payment schedule as stored, without
// ensuring it first.
func (h *Handler) ListPayments(w http.ResponseWriter, r *http.Request) {
	weddingID := chi.URLParam(r, "weddingId")

	installments, err := h.Installments.ListInstallments(r.Context(), weddingID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to list payments: %v", err))
		return
	}

	respondJSON(w, http.StatusOK, mapping.ToApiInstallments(installments))
}

// EnsureSchedule explicitly (re)derives the wedding's payment schedule.
func (h *Handler) EnsureSchedule(w http.ResponseWriter, r *http.Request) {
	weddingID := chi.URLParam(r, "weddingId")

	var req api.EnsureScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	installments, err := h.Schedule.EnsureSchedule(r.Context(), weddingID, req.PayerId)
	if err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to ensure schedule: %v", err))
		return
	}

	respondJSON(w, http.StatusOK, mapping.ToApiInstallments(installments))
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, api.Error{Success: false, Error: msg})
}
