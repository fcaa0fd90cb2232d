package models

import "fmt"

// ErrInvalidTransition is returned when a status change is not allowed by
// the entity's transition table.
type ErrInvalidTransition struct {
	Entity string
	From   string
	To     string
}

func (e *ErrInvalidTransition) Error() string {
	return fmt.Sprintf("invalid %s transition: %s -> %s", e.Entity, e.From, e.To)
}

var installmentTransitions = map[InstallmentStatus][]InstallmentStatus{
	InstallmentPending: {InstallmentPaid, InstallmentFailed},
	// A confirmed failure may still be paid by a later attempt.
	InstallmentFailed: {InstallmentPaid},
	// PAID is terminal: an installment never reverts to PENDING.
	InstallmentPaid: {},
}

var attemptTransitions = map[AttemptStatus][]AttemptStatus{
	AttemptPending: {AttemptSettled, AttemptExhausted},
	// The gateway may confirm out-of-band after the verification burst
	// gave up, so an exhausted attempt can still settle.
	AttemptExhausted: {AttemptSettled},
	AttemptSettled:   {},
}

var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:   {BookingAccepted, BookingRejected},
	BookingAccepted:  {BookingCompleted, BookingCancelled},
	BookingRejected:  {},
	BookingCompleted: {},
	BookingCancelled: {},
}

var taskTransitions = map[TaskStatus][]TaskStatus{
	TaskPendingAcceptance: {TaskAccepted, TaskRejected},
	TaskAccepted:          {TaskCompleted},
	TaskRejected:          {},
	TaskCompleted:         {},
}

var assignmentTransitions = map[AssignmentStatus][]AssignmentStatus{
	AssignmentActive:    {AssignmentCompleted},
	AssignmentCompleted: {},
}

func contains[S ~string](allowed []S, to S) bool {
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// CanTransitionInstallment reports whether an installment may move between
// the two statuses.
func CanTransitionInstallment(from, to InstallmentStatus) bool {
	return contains(installmentTransitions[from], to)
}

// TransitionInstallment validates and applies a status change.
func TransitionInstallment(from, to InstallmentStatus) (InstallmentStatus, error) {
	if !CanTransitionInstallment(from, to) {
		return from, &ErrInvalidTransition{Entity: "installment", From: string(from), To: string(to)}
	}
	return to, nil
}

// CanTransitionAttempt reports whether a checkout attempt may move between
// the two statuses.
func CanTransitionAttempt(from, to AttemptStatus) bool {
	return contains(attemptTransitions[from], to)
}

// CanTransitionBooking reports whether a booking may move between the two
// statuses.
func CanTransitionBooking(from, to BookingStatus) bool {
	return contains(bookingTransitions[from], to)
}

// CanTransitionTask reports whether a task may move between the two
// statuses.
func CanTransitionTask(from, to TaskStatus) bool {
	return contains(taskTransitions[from], to)
}

// CanTransitionAssignment reports whether a wedding assignment may move
// between the two statuses.
func CanTransitionAssignment(from, to AssignmentStatus) bool {
	return contains(assignmentTransitions[from], to)
}

// TransitionAssignment validates and applies a status change.
func TransitionAssignment(from, to AssignmentStatus) (AssignmentStatus, error) {
	if !CanTransitionAssignment(from, to) {
		return from, &ErrInvalidTransition{Entity: "assignment", From: string(from), To: string(to)}
	}
	return to, nil
}
