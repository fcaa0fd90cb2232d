package storage

import (
	"context"

	"github.com/elegantevents/wedding-finance/pkg/models"
)

// TaskReader defines the interface for reading a wedding's tasks. Task CRUD
// lives elsewhere; this core only reads tasks to gate completion.
type TaskReader interface {
	// ListTasksForWedding retrieves all tasks for a wedding.
	ListTasksForWedding(ctx context.Context, weddingID string) ([]models.Task, error)
}
