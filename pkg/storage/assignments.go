package storage

import (
	"context"

	"github.com/elegantevents/wedding-finance/pkg/models"
)

// AssignmentReader defines the interface for reading wedding assignments.
type AssignmentReader interface {
	// GetAssignment retrieves the assignment for a wedding.
	GetAssignment(ctx context.Context, weddingID string) (*models.WeddingAssignment, error)
}

// AssignmentManager defines the interface for the completion gate's single
// write: the one-way ACTIVE -> COMPLETED transition with the protocol
// officer's rating and feedback attached.
type AssignmentManager interface {
	// CompleteAssignment atomically transitions the assignment to
	// COMPLETED. It fails with ErrAssignmentNotActive if the assignment
	// has already completed (the transition is terminal).
	CompleteAssignment(ctx context.Context, weddingID string, rating int32, feedback string) (*models.WeddingAssignment, error)
}

// AssignmentStore combines the reader and manager interfaces.
type AssignmentStore interface {
	AssignmentReader
	AssignmentManager
}
