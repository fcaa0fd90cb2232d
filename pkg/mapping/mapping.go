package mapping

import (
	"github.com/elegantevents/wedding-finance/pkg/api"
	"github.com/elegantevents/wedding-finance/pkg/models"
)

// ToApiInstallment converts a domain PaymentInstallment to its API model.
func ToApiInstallment(p *models.PaymentInstallment) *api.Installment {
	return &api.Installment{
		Id:              p.Id,
		WeddingId:       p.WeddingId,
		Amount:          p.Amount,
		PaidAmount:      p.PaidAmount(),
		Status:          api.InstallmentStatus(p.Status),
		Sequence:        p.Sequence,
		TotalInSchedule: p.TotalInSchedule,
		Description:     p.Description,
		DueDate:         p.DueDate,
		PaidDate:        p.PaidDate,
	}
}

// ToApiInstallments converts a slice of domain installments.
func ToApiInstallments(installments []models.PaymentInstallment) []*api.Installment {
	out := make([]*api.Installment, len(installments))
	for i := range installments {
		out[i] = ToApiInstallment(&installments[i])
	}
	return out
}

// ToApiAssignment converts a domain WeddingAssignment to its API model.
func ToApiAssignment(a *models.WeddingAssignment) *api.Assignment {
	return &api.Assignment{
		WeddingId:        a.WeddingId,
		ManagerId:        a.ManagerId,
		ProtocolId:       a.ProtocolId,
		Status:           api.AssignmentStatus(a.Status),
		ProtocolRating:   a.ProtocolRating,
		ProtocolFeedback: a.ProtocolFeedback,
	}
}
