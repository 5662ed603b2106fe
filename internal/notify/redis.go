package notify

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/contactform/backend/internal/model"
)

const defaultQueueKey = "contact:notifications"

// Envelope is the JSON document pushed onto the queue. A separate mailer
// process pops it and delivers Body to Recipient.
type Envelope struct {
	MessageID int64     `json:"message_id"`
	Recipient string    `json:"recipient"`
	ReplyTo   string    `json:"reply_to"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// RedisConfig configures RedisNotifier.
type RedisConfig struct {
	Addr      string
	Password  string
	Key       string
	Recipient string
}

// RedisNotifier hands notifications to an external mailer through a Redis list.
type RedisNotifier struct {
	client    *redis.Client
	key       string
	recipient string
}

// NewRedisNotifier creates a RedisNotifier. It does not dial until the first Notify.
func NewRedisNotifier(cfg RedisConfig) (*RedisNotifier, error) {
	addr := strings.TrimSpace(cfg.Addr)
	if addr == "" {
		return nil, errors.New("notify: redis addr required")
	}
	if cfg.Recipient == "" {
		return nil, errors.New("notify: mail recipient required")
	}
	key := strings.TrimSpace(cfg.Key)
	if key == "" {
		key = defaultQueueKey
	}
	return &RedisNotifier{
		client:    redis.NewClient(&redis.Options{Addr: addr, Password: cfg.Password, MaxRetries: -1}),
		key:       key,
		recipient: cfg.Recipient,
	}, nil
}

var _ Notifier = (*RedisNotifier)(nil)

func (n *RedisNotifier) Notify(ctx context.Context, msg *model.ContactMessage) error {
	payload, err := json.Marshal(Envelope{
		MessageID: msg.ID,
		Recipient: n.recipient,
		ReplyTo:   msg.Email,
		Subject:   Subject,
		Body:      FormatBody(msg),
		CreatedAt: msg.CreatedAt,
	})
	if err != nil {
		return &NotificationError{Transport: "redis", Err: err}
	}
	if err := n.client.RPush(ctx, n.key, payload).Err(); err != nil {
		return &NotificationError{Transport: "redis", Err: err}
	}
	return nil
}

// Close releases the underlying client.
func (n *RedisNotifier) Close() error {
	return n.client.Close()
}
