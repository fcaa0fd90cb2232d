// Package weddings serves the wedding assignment and its completion gate.
package weddings

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/elegantevents/wedding-finance/pkg/api"
	"github.com/elegantevents/wedding-finance/pkg/completion"
	"github.com/elegantevents/wedding-finance/pkg/mapping"
	"github.com/elegantevents/wedding-finance/pkg/storage"
	"github.com/go-chi/chi/v5"
)

// Handler holds the dependencies for wedding-level handlers.
type Handler struct {
	Gate        *completion.Gate
	Assignments storage.AssignmentReader
}

// NewHandler creates a new weddings Handler.
func NewHandler(gate *completion.Gate, assignments storage.AssignmentReader) *Handler {
	return &Handler{Gate: gate, Assignments: assignments}
}

// CompleteWedding runs the completion gate: the assigned manager closes
// the wedding with the protocol officer's review, provided no task is
// outstanding and no payment is still pending.
func (h *Handler) CompleteWedding(w http.ResponseWriter, r *http.Request) {
	weddingID := chi.URLParam(r, "weddingId")

	var req api.CompleteWeddingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	assignment, err := h.Gate.CompleteWedding(r.Context(), weddingID, req.ManagerId, req.Rating, req.Feedback)
	if err != nil {
		switch {
		case errors.Is(err, completion.ErrInvalidRating), errors.Is(err, completion.ErrFeedbackRequired):
			respondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, completion.ErrNotAssignedManager):
			respondError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, completion.ErrPreconditionFailed):
			respondError(w, http.StatusConflict, completion.PreconditionMessage)
		case errors.Is(err, storage.ErrAssignmentNotFound):
			respondError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, storage.ErrAssignmentNotActive):
			respondError(w, http.StatusConflict, err.Error())
		default:
			respondError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to complete wedding: %v", err))
		}
		return
	}

	respondJSON(w, http.StatusOK, mapping.ToApiAssignment(assignment))
}

// GetAssignment returns the wedding's assignment state.
func (h *Handler) GetAssignment(w http.ResponseWriter, r *http.Request) {
	weddingID := chi.URLParam(r, "weddingId")

	assignment, err := h.Assignments.GetAssignment(r.Context(), weddingID)
	if err != nil {
		if errors.Is(err, storage.ErrAssignmentNotFound) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to load assignment: %v", err))
		return
	}

	respondJSON(w, http.StatusOK, mapping.ToApiAssignment(assignment))
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
