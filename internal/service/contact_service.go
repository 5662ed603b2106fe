package service

import (
	"context"
	"net/http"

	"github.com/contactform/backend/internal/model"
)

// Outcome is the terminal state of one submission.
type Outcome int

const (
	// OutcomeDelivered: stored and notified.
	OutcomeDelivered Outcome = iota
	// OutcomeStoredNotNotified: stored, but the notification failed. The row is kept.
	OutcomeStoredNotNotified
	// OutcomeValidationFailed: rejected before touching the store.
	OutcomeValidationFailed
	// OutcomeStorageFailed: the insert failed; no notification was attempted.
	OutcomeStorageFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDelivered:
		return "delivered"
	case OutcomeStoredNotNotified:
		return "stored_not_notified"
	case OutcomeValidationFailed:
		return "validation_failed"
	case OutcomeStorageFailed:
		return "storage_failed"
	default:
		return "unknown"
	}
}

// SubmitResult is what ContactService.Submit produces. Message is set whenever
// the row was stored; Err is set for every outcome except OutcomeDelivered.
type SubmitResult struct {
	Outcome Outcome
	Message *model.ContactMessage
	Err     error
}

// Stored reports whether the submission was persisted.
func (r SubmitResult) Stored() bool {
	return r.Outcome == OutcomeDelivered || r.Outcome == OutcomeStoredNotNotified
}

// Status maps the outcome onto an HTTP status code.
func (r SubmitResult) Status() int {
	switch r.Outcome {
	case OutcomeDelivered:
		return http.StatusOK
	case OutcomeValidationFailed:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ContactService runs the contact form submission pipeline.
type ContactService interface {
	// Submit validates in, stores it and sends the notification, stopping at
	// the first failure. A notification failure does not roll back the row.
	Submit(ctx context.Context, in model.ContactInput) SubmitResult
}
