package verification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/elegantevents/wedding-finance/pkg/api"
	"github.com/elegantevents/wedding-finance/pkg/gateway"
	"github.com/elegantevents/wedding-finance/pkg/models"
	"github.com/elegantevents/wedding-finance/pkg/scheduler"
	"github.com/elegantevents/wedding-finance/pkg/storage"
	"github.com/elegantevents/wedding-finance/pkg/websockets"
)

// Processor handles one verification job at a time. It is safe to invoke
// multiple times for the same job: settlement is conditional, so duplicate
// deliveries are no-ops.
type Processor struct {
	Gateway   gateway.Gateway
	Store     storage.SettlementStore
	Scheduler scheduler.Scheduler
	Publisher websockets.Publisher
}

// NewProcessor creates a new Processor.
func NewProcessor(gw gateway.Gateway, store storage.SettlementStore, sched scheduler.Scheduler, publisher websockets.Publisher) *Processor {
	return &Processor{Gateway: gw, Store: store, Scheduler: sched, Publisher: publisher}
}

// Process verifies the job's transaction reference and resolves payment
// state accordingly. An indeterminate outcome re-enqueues the next attempt
// with a strictly larger delay; running out of attempts exhausts the
// checkout attempt without failing the installment.
func (p *Processor) Process(ctx context.Context, job *api.VerificationJob) error {
	outcome, err := p.Gateway.Verify(ctx, job.TxRef)
	if err != nil {
		// A failed verification call is indeterminate, not a payment
		// failure. It must not abort the remaining backoff schedule.
		slog.Warn("verification call failed, treating as indeterminate",
			"txRef", job.TxRef, "attempt", job.Attempt, "error", err)
		outcome = gateway.OutcomePending
	}

	switch outcome {
	case gateway.OutcomePaid:
		return p.settle(ctx, job, models.InstallmentPaid)
	case gateway.OutcomeFailed:
		return p.settle(ctx, job, models.InstallmentFailed)
	default:
		return p.reschedule(ctx, job)
	}
}

func (p *Processor) settle(ctx context.Context, job *api.VerificationJob, status models.InstallmentStatus) error {
	updated, err := p.Store.SetInstallmentOutcome(ctx, job.WeddingId, job.InstallmentId, status, job.TxRef)
	if err != nil {
		return fmt.Errorf("failed to record %s outcome for installment %s: %w", status, job.InstallmentId, err)
	}

	if err := p.Store.SettleAttempt(ctx, job.TxRef); err != nil {
		return fmt.Errorf("failed to settle checkout attempt %s: %w", job.TxRef, err)
	}

	if !updated {
		// Already resolved by an earlier delivery or an on-demand verify.
		slog.Info("installment already resolved", "txRef", job.TxRef, "installmentId", job.InstallmentId)
		return nil
	}

	slog.Info("installment resolved", "txRef", job.TxRef, "installmentId", job.InstallmentId, "status", status)

	msg := websockets.Message{
		Type: websockets.MessageTypePaymentUpdate,
		Payload: websockets.PaymentUpdatePayload{
			WeddingID:     job.WeddingId,
			InstallmentID: job.InstallmentId,
			TxRef:         job.TxRef,
			Status:        string(status),
		},
	}
	if err := p.Publisher.Publish(ctx, msg); err != nil {
		// Push is best-effort; the reconciliation poller covers clients
		// that miss it.
		slog.Error("failed to publish payment update", "txRef", job.TxRef, "error", err)
	}

	return nil
}

func (p *Processor) reschedule(ctx context.Context, job *api.VerificationJob) error {
	if job.Attempt >= MaxAttempts {
		slog.Info("verification attempts exhausted, leaving installment pending",
			"txRef", job.TxRef, "attempts", job.Attempt)
		if err := p.Store.ExhaustAttempt(ctx, job.TxRef); err != nil {
			return fmt.Errorf("failed to exhaust checkout attempt %s: %w", job.TxRef, err)
		}
		return nil
	}

	next := &api.VerificationJob{
		TxRef:         job.TxRef,
		WeddingId:     job.WeddingId,
		InstallmentId: job.InstallmentId,
		Attempt:       job.Attempt + 1,
	}
	if err := p.Scheduler.ScheduleVerification(ctx, next, Delay(next.Attempt)); err != nil {
		return fmt.Errorf("failed to schedule verification attempt %d for %s: %w", next.Attempt, job.TxRef, err)
	}

	return nil
}
