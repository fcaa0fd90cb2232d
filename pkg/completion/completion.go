// Package completion gates the terminal wedding transition: the assigned
// manager closes out the wedding once every task is resolved and no payment
// is still pending, attaching the protocol officer's performance review.
package completion

import (
	"context"
	"errors"
	"fmt"

	"github.com/elegantevents/wedding-finance/pkg/models"
	"github.com/elegantevents/wedding-finance/pkg/storage"
)

// PreconditionMessage is the client-facing message when the wedding is not
// ready to complete. It deliberately does not distinguish which
// precondition failed.
const PreconditionMessage = "Failed to complete wedding. Please check tasks and payments."

var (
	// ErrInvalidRating is returned when the protocol rating is outside 1-5.
	ErrInvalidRating = errors.New("protocol rating must be between 1 and 5")

	// ErrFeedbackRequired is returned when the protocol feedback is empty.
	ErrFeedbackRequired = errors.New("protocol feedback is required")

	// ErrNotAssignedManager is returned when the caller is not the manager
	// assigned to the wedding.
	ErrNotAssignedManager = errors.New("caller is not the assigned manager")

	// ErrPreconditionFailed is returned when outstanding tasks or pending
	// payments block completion. The assignment stays ACTIVE and the call
	// may be retried after the blockers clear.
	ErrPreconditionFailed = errors.New(PreconditionMessage)
)

// Gate enforces the completion preconditions and performs the one-way
// ACTIVE -> COMPLETED transition.
type Gate struct {
	Assignments  storage.AssignmentStore
	Tasks        storage.TaskReader
	Installments storage.InstallmentReader
}

// NewGate creates a new completion Gate.
func NewGate(assignments storage.AssignmentStore, tasks storage.TaskReader, installments storage.InstallmentReader) *Gate {
	return &Gate{Assignments: assignments, Tasks: tasks, Installments: installments}
}

// CompleteWedding transitions the wedding's assignment to COMPLETED with
// the protocol officer's rating and feedback. The write is conditional on
// the assignment still being ACTIVE, so concurrent completions collapse to
// one winner.
func (g *Gate) CompleteWedding(ctx context.Context, weddingID, managerID string, rating int32, feedback string) (*models.WeddingAssignment, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}
	if feedback == "" {
		return nil, ErrFeedbackRequired
	}

	assignment, err := g.Assignments.GetAssignment(ctx, weddingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load assignment for wedding %s: %w", weddingID, err)
	}
	if assignment.ManagerId != managerID {
		return nil, ErrNotAssignedManager
	}
	if !models.CanTransitionAssignment(assignment.Status, models.AssignmentCompleted) {
		return nil, storage.ErrAssignmentNotActive
	}

	tasks, err := g.Tasks.ListTasksForWedding(ctx, weddingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks for wedding %s: %w", weddingID, err)
	}
	for i := range tasks {
		if tasks[i].Outstanding() {
			return nil, ErrPreconditionFailed
		}
	}

	installments, err := g.Installments.ListInstallments(ctx, weddingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list installments for wedding %s: %w", weddingID, err)
	}
	for i := range installments {
		if installments[i].Status == models.InstallmentPending {
			return nil, ErrPreconditionFailed
		}
	}

	completed, err := g.Assignments.CompleteAssignment(ctx, weddingID, rating, feedback)
	if err != nil {
		return nil, fmt.Errorf("failed to complete assignment for wedding %s: %w", weddingID, err)
	}
	return completed, nil
}
