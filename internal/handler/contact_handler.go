package handler

import (
	"encoding/json"
	"net/http"

	"github.com/contactform/backend/internal/model"
	"github.com/contactform/backend/internal/service"
)

const maxSubmitBodyBytes = 64 << 10

const (
	msgDelivered          = "Message was sent and the notification email delivered."
	msgStoredNotNotified  = "Message was saved, but the notification email could not be sent."
	codeInvalidJSON       = "invalid_json"
	codeValidation        = "validation_failed"
	codeStorageFailed     = "storage_failed"
	codeStoredNotNotified = "stored_not_notified"
)

// ContactHandler handles contact form submissions.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// submitResponse is the JSON body returned by POST /submit_form.
// Saved is true only on the partial-success path so clients can tell
// "nothing happened" from "saved, not notified" without parsing Error.
type submitResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
	MailError string `json:"mail_error,omitempty"`
	Code      string `json:"code,omitempty"`
	Saved     bool   `json:"saved,omitempty"`
}

// Submit handles POST /submit_form.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var in model.ContactInput
	r.Body = http.MaxBytesReader(w, r.Body, maxSubmitBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, submitResponse{Error: "invalid JSON", Code: codeInvalidJSON})
		return
	}

	res := h.contactService.Submit(r.Context(), in)

	switch res.Outcome {
	case service.OutcomeDelivered:
		writeJSON(w, res.Status(), submitResponse{Success: true, Message: msgDelivered})
	case service.OutcomeValidationFailed:
		writeJSON(w, res.Status(), submitResponse{Error: res.Err.Error(), Code: codeValidation})
	case service.OutcomeStoredNotNotified:
		writeJSON(w, res.Status(), submitResponse{
			Error:     msgStoredNotNotified,
			MailError: res.Err.Error(),
			Code:      codeStoredNotNotified,
			Saved:     true,
		})
	default:
		writeJSON(w, res.Status(), submitResponse{Error: res.Err.Error(), Code: codeStorageFailed})
	}
}
