package errors

import (
	"fmt"

	"fleetshare/internal/entities"
)

// ValidationError reports a missing or invalid field on a proposed booking.
// The booking is not created and the store is untouched.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ConflictError means the vehicle already has a booking on that date. It is
// distinct from ValidationError so callers can say "vehicle unavailable"
// rather than "invalid input", and it names the occupying booking.
type ConflictError struct {
	VehicleID string
	Date      string
	Existing  entities.Booking
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("vehicle %s is already booked on %s by %s", e.VehicleID, e.Date, e.Existing.UserName)
}

func NewConflictError(existing entities.Booking) *ConflictError {
	return &ConflictError{
		VehicleID: existing.VehicleID,
		Date:      existing.Date,
		Existing:  existing,
	}
}

// PersistenceError wraps a failed load or save against the durable state
// blob. A blob that exists but cannot be parsed must surface as one of
// these instead of being silently replaced with seed data.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func NewPersistenceError(op string, err error) *PersistenceError {
	return &PersistenceError{Op: op, Err: err}
}

// AssistantError is a failed external assistant call. It is always recovered
// into a fallback answer and never propagated as a crash; the type exists so
// the bridge can log the cause distinctly.
type AssistantError struct {
	Reason string
	Err    error
}

func (e *AssistantError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("assistant: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("assistant: %s", e.Reason)
}

func (e *AssistantError) Unwrap() error {
	return e.Err
}
