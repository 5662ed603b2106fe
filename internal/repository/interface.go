package repository

import (
	"context"

	"github.com/contactform/backend/internal/model"
)

// DB checks that the underlying store is reachable.
type DB interface {
	Ping(ctx context.Context) error
}

// ContactRepository is the append-only store for contact form messages.
// Rows are never updated or deleted.
type ContactRepository interface {
	DB

	// Insert appends msg and populates msg.ID and msg.CreatedAt from the store.
	// Any failure is returned as a *StorageError.
	Insert(ctx context.Context, msg *model.ContactMessage) error

	// Migrate creates the messages table if it does not exist.
	Migrate(ctx context.Context) error

	Close() error
}
