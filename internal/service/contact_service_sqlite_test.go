package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contactform/backend/internal/model"
	"github.com/contactform/backend/internal/notify"
	"github.com/contactform/backend/internal/repository"
)

// The pipeline against the real SQLite store.
func TestContactService_Submit_SQLite(t *testing.T) {
	repo, err := repository.OpenSQLite(filepath.Join(t.TempDir(), "contacts.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	require.NoError(t, repo.Migrate(context.Background()))

	failing := &mockNotifier{notifyFunc: func(ctx context.Context, msg *model.ContactMessage) error {
		return &notify.NotificationError{Transport: "smtp", Err: errors.New("dial tcp: connection refused")}
	}}

	ok := NewContactService(repo, &mockNotifier{}).Submit(context.Background(), validInput())
	partial := NewContactService(repo, failing).Submit(context.Background(), validInput())

	require.Equal(t, OutcomeDelivered, ok.Outcome)
	require.Equal(t, OutcomeStoredNotNotified, partial.Outcome)
	assert.Greater(t, partial.Message.ID, ok.Message.ID)
	assert.False(t, ok.Message.CreatedAt.IsZero())

	require.NoError(t, repo.Close())
	down := NewContactService(repo, failing)
	res := down.Submit(context.Background(), validInput())
	assert.Equal(t, OutcomeStorageFailed, res.Outcome)
	assert.Equal(t, 1, failing.calls)
}
