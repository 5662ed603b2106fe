// Package notify delivers a notification for every stored contact message.
package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/contactform/backend/internal/model"
)

// Subject is the subject line of every notification.
const Subject = "New message from the contact form"

// Notifier sends a single notification for msg. Implementations make exactly
// one attempt and report any failure as a *NotificationError.
type Notifier interface {
	Notify(ctx context.Context, msg *model.ContactMessage) error
}

// NotificationError wraps a transport failure (auth, network, bad recipient).
type NotificationError struct {
	Transport string
	Err       error
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("notify via %s: %v", e.Transport, e.Err)
}

func (e *NotificationError) Unwrap() error {
	return e.Err
}

// FormatBody renders the plain-text notification body.
func FormatBody(msg *model.ContactMessage) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", msg.Name)
	fmt.Fprintf(&b, "Email: %s\n", msg.Email)
	fmt.Fprintf(&b, "Phone: %s\n", msg.Phone)
	b.WriteString("\nMessage:\n")
	b.WriteString(msg.Message)
	return b.String()
}
