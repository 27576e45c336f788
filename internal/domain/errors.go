package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors for RSVP operations.
var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrDuplicateEmail = errors.New("email already in use")
	ErrDeadlinePassed = errors.New("rsvp deadline has passed")
)

// ValidationError lists every field-level problem found in a payload.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidInput, strings.Join(e.Errors, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// DeadlinePassedError is returned by guest mutations after the RSVP deadline.
type DeadlinePassedError struct {
	EventName string
	EventDate time.Time
	Deadline  time.Time
}

func (e *DeadlinePassedError) Error() string {
	return fmt.Sprintf("%s for %s (deadline %s)", ErrDeadlinePassed, e.EventName, e.Deadline.Format(time.RFC3339))
}

func (e *DeadlinePassedError) Unwrap() error { return ErrDeadlinePassed }

// DuplicateRSVPError is returned on create when the email already has an RSVP.
// Existing is the stored record, so the caller can point the guest at its update link.
type DuplicateRSVPError struct {
	Existing *RSVP
}

func (e *DuplicateRSVPError) Error() string {
	return fmt.Sprintf("%s: %s", ErrDuplicateEmail, e.Existing.Email)
}

func (e *DuplicateRSVPError) Unwrap() error { return ErrDuplicateEmail }
