package scheduler

import (
	"context"
	"time"

	"github.com/elegantevents/wedding-finance/pkg/api"
)

// Scheduler defines the interface for a component that schedules a
// verification attempt for later processing.
type Scheduler interface {
	// ScheduleVerification enqueues a verification job to run after the
	// given delay. A zero delay means as soon as possible.
	ScheduleVerification(ctx context.Context, job *api.VerificationJob, delay time.Duration) error
}
