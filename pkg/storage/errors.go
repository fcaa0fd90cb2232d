package storage

import "errors"

// ErrAttemptExists is returned when a checkout attempt with the same
// transaction reference already exists.
var ErrAttemptExists = errors.New("checkout attempt already exists")

// ErrAttemptNotFound is returned when no checkout attempt matches the
// given transaction reference.
var ErrAttemptNotFound = errors.New("checkout attempt not found")

// ErrAssignmentNotFound is returned when a wedding has no assignment.
var ErrAssignmentNotFound = errors.New("wedding assignment not found")

// ErrAssignmentNotActive is returned when completing an assignment that is
// not ACTIVE, e.g. because it is already completed.
var ErrAssignmentNotActive = errors.New("assignment not in an active state")
