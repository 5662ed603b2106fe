package repository

import (
	"context"

	"github.com/contactform/backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgCreateMessagesTable = `CREATE TABLE IF NOT EXISTS messages (
	id         BIGSERIAL PRIMARY KEY,
	name       TEXT NOT NULL,
	email      TEXT NOT NULL,
	phone      TEXT NOT NULL,
	message    TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

// Ensure PgContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*PgContactRepository)(nil)

// Insert adds a messages row and populates msg.ID and msg.CreatedAt from the
// RETURNING clause. The connection is held only for the duration of the call.
func (r *PgContactRepository) Insert(ctx context.Context, msg *model.ContactMessage) error {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return storageErr("acquire", err)
	}
	defer conn.Release()

	err = conn.QueryRow(ctx,
		`INSERT INTO messages (name, email, phone, message)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		msg.Name, msg.Email, msg.Phone, msg.Message,
	).Scan(&msg.ID, &msg.CreatedAt)
	return storageErr("insert", err)
}

func (r *PgContactRepository) Migrate(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, pgCreateMessagesTable)
	return storageErr("migrate", err)
}

func (r *PgContactRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *PgContactRepository) Close() error {
	r.pool.Close()
	return nil
}
