// Package checkout drives the gateway payment flow: initiating a checkout
// session, on-demand verification, and the redirect landing that hands the
// payer back from the provider.
package checkout

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/elegantevents/wedding-finance/pkg/api"
	"github.com/elegantevents/wedding-finance/pkg/gateway"
	"github.com/elegantevents/wedding-finance/pkg/models"
	"github.com/elegantevents/wedding-finance/pkg/reconciler"
	"github.com/elegantevents/wedding-finance/pkg/scheduler"
	"github.com/elegantevents/wedding-finance/pkg/storage"
	"github.com/elegantevents/wedding-finance/pkg/verification"
)

// Handler holds the dependencies for checkout-related handlers.
type Handler struct {
	Store      storage.ApiStore
	Settlement storage.SettlementStore
	Gateway    gateway.Gateway
	Scheduler  scheduler.Scheduler
	Reconciler *reconciler.Manager
}

// NewHandler creates a new checkout Handler.
func NewHandler(store storage.ApiStore, settlement storage.SettlementStore, gw gateway.Gateway, sched scheduler.Scheduler, rec *reconciler.Manager) *Handler {
	return &Handler{Store: store, Settlement: settlement, Gateway: gw, Scheduler: sched, Reconciler: rec}
}

// Initiate opens a gateway checkout session for one installment. The
// attempt record is durable before the client ever sees the checkout URL,
// so the workflow survives the external redirect.
func (h *Handler) Initiate(w http.ResponseWriter, r *http.Request) {
	var req api.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if req.WeddingId == "" || req.InstallmentId == "" {
		respondError(w, http.StatusBadRequest, "wedding_id and installment_id are required")
		return
	}

	installment, err := h.findInstallment(r, req.WeddingId, req.InstallmentId)
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}
	if !models.CanTransitionInstallment(installment.Status, models.InstallmentPaid) {
		respondError(w, http.StatusConflict, "installment is already paid")
		return
	}

	txRef := gateway.NewTxRef(req.WeddingId, req.InstallmentId)
	result, err := h.Gateway.Initiate(r.Context(), &gateway.InitRequest{
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Amount:      installment.Amount,
		TxRef:       txRef,
		ReturnURL:   req.ReturnUrl,
	})
	if err != nil {
		var validationErr *gateway.ValidationError
		var initErr *gateway.InitError
		// Provider rejections surface verbatim so the payer sees the
		// provider's own explanation.
		if errors.As(err, &validationErr) || errors.As(err, &initErr) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondError(w, http.StatusBadGateway, fmt.Sprintf("Failed to initiate payment: %v", err))
		return
	}

	attempt := &models.CheckoutAttempt{
		TxRef:         result.TxRef,
		WeddingId:     req.WeddingId,
		InstallmentId: req.InstallmentId,
		PayerId:       installment.PayerId,
		Amount:        installment.Amount,
		Attempts:      1,
		CheckoutURL:   result.CheckoutURL,
	}
	if err := h.Store.CreateAttempt(r.Context(), attempt); err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to record checkout attempt: %v", err))
		return
	}

	job := &api.VerificationJob{
		TxRef:         result.TxRef,
		WeddingId:     req.WeddingId,
		InstallmentId: req.InstallmentId,
		Attempt:       1,
	}
	if err := h.Scheduler.ScheduleVerification(r.Context(), job, verification.Delay(1)); err != nil {
		// The attempt is durable; the reconciler and the cron sweep will
		// still pick it up.
		slog.Error("failed to enqueue verification", "txRef", result.TxRef, "error", err)
	}

	if h.Reconciler != nil {
		h.Reconciler.Track(req.WeddingId, req.InstallmentId, result.TxRef)
	}

	respondJSON(w, http.StatusCreated, &api.CheckoutResponse{
		Success:     true,
		CheckoutUrl: result.CheckoutURL,
		TxRef:       result.TxRef,
	})
}

// Verify performs one on-demand verification of a transaction reference.
// It is idempotent: verifying an already settled payment reports the
// status without changing anything.
func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	txRef := r.URL.Query().Get("tx_ref")
	if txRef == "" {
		respondError(w, http.StatusBadRequest, "tx_ref is required")
		return
	}

	attempt, err := h.Store.GetAttempt(r.Context(), txRef)
	if err != nil {
		if errors.Is(err, storage.ErrAttemptNotFound) {
			respondError(w, http.StatusNotFound, "unknown transaction reference")
			return
		}
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to load checkout attempt: %v", err))
		return
	}

	outcome, err := h.Gateway.Verify(r.Context(), txRef)
	if err != nil {
		respondError(w, http.StatusBadGateway, fmt.Sprintf("Verification failed: %v", err))
		return
	}

	var updated bool
	switch outcome {
	case gateway.OutcomePaid, gateway.OutcomeFailed:
		status := models.InstallmentPaid
		if outcome == gateway.OutcomeFailed {
			status = models.InstallmentFailed
		}
		updated, err = h.Settlement.SetInstallmentOutcome(r.Context(), attempt.WeddingId, attempt.InstallmentId, status, txRef)
		if err != nil {
			respondError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to record outcome: %v", err))
			return
		}
		if err := h.Settlement.SettleAttempt(r.Context(), txRef); err != nil {
			slog.Error("failed to settle checkout attempt", "txRef", txRef, "error", err)
		}
	default:
		// Still pending is a normal answer, not an error.
		if h.Reconciler != nil {
			h.Reconciler.Track(attempt.WeddingId, attempt.InstallmentId, txRef)
		}
	}

	respondJSON(w, http.StatusOK, &api.VerifyResponse{
		Success:        true,
		Status:         string(outcome),
		PaymentUpdated: updated,
	})
}

// Return is the redirect landing after the provider hands the payer back.
// It kicks the wedding's reconciliation session and reports the attempt's
// current state.
func (h *Handler) Return(w http.ResponseWriter, r *http.Request) {
	txRef := r.URL.Query().Get("tx_ref")
	if txRef == "" {
		respondError(w, http.StatusBadRequest, "tx_ref is required")
		return
	}

	attempt, err := h.Store.GetAttempt(r.Context(), txRef)
	if err != nil {
		if errors.Is(err, storage.ErrAttemptNotFound) {
			respondError(w, http.StatusNotFound, "unknown transaction reference")
			return
		}
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to load checkout attempt: %v", err))
		return
	}

	// An attempt that already exhausted its burst is not re-triggered by a
	// page reload; the cron sweep owns it from here.
	if attempt.Status == models.AttemptPending && h.Reconciler != nil {
		h.Reconciler.Track(attempt.WeddingId, attempt.InstallmentId, txRef)
	}

	respondJSON(w, http.StatusOK, &api.VerifyResponse{
		Success: true,
		Status:  string(attempt.Status),
	})
}

func (h *Handler) findInstallment(r *http.Request, weddingID, installmentID string) (*models.PaymentInstallment, error) {
	installments, err := h.Store.ListInstallments(r.Context(), weddingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list installments: %w", err)
	}
	for i := range installments {
		if installments[i].Id == installmentID {
			return &installments[i], nil
		}
	}
	return nil, fmt.Errorf("installment %s not found for wedding %s", installmentID, weddingID)
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
