package storage

import (
	"context"

	"github.com/elegantevents/wedding-finance/pkg/models"
)

// InstallmentReader defines the interface for reading a wedding's payment
// schedule. The installment list is the authoritative payment state;
// gateway verification responses never are.
type InstallmentReader interface {
	// ListInstallments retrieves all installments for a wedding, ordered by
	// sequence number.
	ListInstallments(ctx context.Context, weddingID string) ([]models.PaymentInstallment, error)
}

// InstallmentManager defines the interface for creating and replacing
// payment schedules.
type InstallmentManager interface {
	// ReplaceSchedule atomically supersedes a wedding's existing
	// installments with a new set. The old set is only removed if writing
	// the new set succeeds; on failure the prior schedule is left intact.
	ReplaceSchedule(ctx context.Context, weddingID string, items []models.PaymentInstallment) ([]models.PaymentInstallment, error)
}

// InstallmentStore combines the reader and manager interfaces.
type InstallmentStore interface {
	InstallmentReader
	InstallmentManager
}
