// Package validate holds the field rules applied to contact form input before
// anything is persisted.
package validate

import (
	"regexp"
	"strings"

	"github.com/contactform/backend/internal/model"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	// Czech numbers only: +420 followed by 9 digits, or 9 digits without prefix.
	phonePattern = regexp.MustCompile(`^(?:\+420[0-9]{9}|[0-9]{9})$`)
)

const (
	MsgRequired     = "required fields missing"
	MsgInvalidEmail = "invalid email"
	MsgInvalidPhone = "invalid phone"
)

// ValidationError reports input the caller can fix. Field is empty when the
// failure concerns more than one field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Email reports whether s is a syntactically valid address. s is not trimmed
// or case-folded.
func Email(s string) bool {
	return emailPattern.MatchString(s)
}

// Phone reports whether s is +420 followed by 9 digits or exactly 9 digits.
func Phone(s string) bool {
	return phonePattern.MatchString(s)
}

// Contact trims every field of in and checks it. Required fields are checked
// before any format rule. The trimmed input is returned on success.
func Contact(in model.ContactInput) (model.ContactInput, error) {
	out := model.ContactInput{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Phone:   strings.TrimSpace(in.Phone),
		Message: strings.TrimSpace(in.Message),
	}

	if out.Name == "" || out.Email == "" || out.Phone == "" || out.Message == "" {
		return out, &ValidationError{Message: MsgRequired}
	}
	if !Email(out.Email) {
		return out, &ValidationError{Field: "email", Message: MsgInvalidEmail}
	}
	if !Phone(out.Phone) {
		return out, &ValidationError{Field: "phone", Message: MsgInvalidPhone}
	}
	return out, nil
}
