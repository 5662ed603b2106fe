package service

import (
	"context"

	"github.com/contactform/backend/internal/logging"
	"github.com/contactform/backend/internal/metrics"
	"github.com/contactform/backend/internal/model"
	"github.com/contactform/backend/internal/notify"
	"github.com/contactform/backend/internal/repository"
	"github.com/contactform/backend/internal/validate"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo     repository.ContactRepository
	notifier notify.Notifier
}

// NewContactService creates a ContactService backed by the given store and notifier.
func NewContactService(repo repository.ContactRepository, notifier notify.Notifier) ContactService {
	return &contactServiceImpl{repo: repo, notifier: notifier}
}

func (s *contactServiceImpl) Submit(ctx context.Context, in model.ContactInput) SubmitResult {
	res := s.submit(ctx, in)
	metrics.RecordSubmission(res.Outcome.String())
	return res
}

func (s *contactServiceImpl) submit(ctx context.Context, in model.ContactInput) SubmitResult {
	log := logging.FromContext(ctx)

	clean, err := validate.Contact(in)
	if err != nil {
		log.Info("contact submission rejected", "error", err)
		return SubmitResult{Outcome: OutcomeValidationFailed, Err: err}
	}

	msg := model.NewContactMessage(clean)
	err = s.repo.Insert(ctx, msg)
	metrics.RecordUpstream("store", err)
	if err != nil {
		log.Error("contact message insert failed", "error", err)
		return SubmitResult{Outcome: OutcomeStorageFailed, Err: err}
	}

	err = s.notifier.Notify(ctx, msg)
	metrics.RecordUpstream("notify", err)
	if err != nil {
		log.Warn("contact message stored but notification failed", "message_id", msg.ID, "error", err)
		return SubmitResult{Outcome: OutcomeStoredNotNotified, Message: msg, Err: err}
	}

	log.Info("contact message delivered", "message_id", msg.ID)
	return SubmitResult{Outcome: OutcomeDelivered, Message: msg}
}
