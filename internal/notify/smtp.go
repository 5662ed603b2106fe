package notify

import (
	"context"
	"errors"
	"strings"

	"github.com/wneessen/go-mail"

	"github.com/contactform/backend/internal/logging"
	"github.com/contactform/backend/internal/model"
)

// SMTPConfig carries the outbound mail settings.
type SMTPConfig struct {
	Host      string
	Port      int
	UseTLS    bool
	Username  string
	Password  string
	From      string
	Recipient string
}

// SMTPNotifier emails the notification to a fixed recipient.
type SMTPNotifier struct {
	cfg SMTPConfig
}

// NewSMTPNotifier validates cfg and returns an SMTPNotifier. Recipient falls
// back to Username and From falls back to Recipient.
func NewSMTPNotifier(cfg SMTPConfig) (*SMTPNotifier, error) {
	cfg.Host = strings.TrimSpace(cfg.Host)
	if cfg.Host == "" {
		return nil, errors.New("notify: mail server required")
	}
	if cfg.Port <= 0 {
		cfg.Port = 587
	}
	if cfg.Recipient == "" {
		cfg.Recipient = cfg.Username
	}
	if cfg.From == "" {
		cfg.From = cfg.Recipient
	}
	if cfg.Recipient == "" {
		return nil, errors.New("notify: mail recipient required")
	}
	return &SMTPNotifier{cfg: cfg}, nil
}

var _ Notifier = (*SMTPNotifier)(nil)

func (n *SMTPNotifier) Notify(ctx context.Context, msg *model.ContactMessage) error {
	m, err := n.buildMessage(ctx, msg)
	if err != nil {
		return &NotificationError{Transport: "smtp", Err: err}
	}

	client, err := mail.NewClient(n.cfg.Host, n.clientOptions()...)
	if err != nil {
		return &NotificationError{Transport: "smtp", Err: err}
	}
	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return &NotificationError{Transport: "smtp", Err: err}
	}
	return nil
}

// buildMessage sets Reply-To to the visitor's address when the mail parser
// accepts it. The address is always in the body.
func (n *SMTPNotifier) buildMessage(ctx context.Context, msg *model.ContactMessage) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(n.cfg.From); err != nil {
		return nil, err
	}
	if err := m.To(n.cfg.Recipient); err != nil {
		return nil, err
	}
	if err := m.ReplyTo(msg.Email); err != nil {
		logging.FromContext(ctx).Warn("reply-to header skipped", "message_id", msg.ID, "error", err)
	}
	m.Subject(Subject)
	m.SetBodyString(mail.TypeTextPlain, FormatBody(msg))
	return m, nil
}

func (n *SMTPNotifier) clientOptions() []mail.Option {
	opts := []mail.Option{mail.WithPort(n.cfg.Port)}
	if n.cfg.UseTLS {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.NoTLS))
	}
	if n.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(n.cfg.Username),
			mail.WithPassword(n.cfg.Password),
		)
	}
	return opts
}
