package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPool creates a PostgreSQL connection pool and verifies it with a ping.
func NewPool(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// Open returns the ContactRepository for databaseURL.
//
//	postgres://..., postgresql://...  PgContactRepository
//	sqlite://path, bare file path      GormContactRepository (SQLite)
func Open(ctx context.Context, databaseURL string) (ContactRepository, error) {
	u := strings.TrimSpace(databaseURL)
	switch {
	case strings.HasPrefix(u, "postgres://"), strings.HasPrefix(u, "postgresql://"):
		pool, err := NewPool(ctx, u)
		if err != nil {
			return nil, storageErr("connect", err)
		}
		return NewPgContactRepository(pool), nil
	case strings.HasPrefix(u, "sqlite://"):
		return OpenSQLite(strings.TrimPrefix(u, "sqlite://"))
	case u == "":
		return nil, fmt.Errorf("%w: empty", ErrUnsupportedDatabase)
	case strings.Contains(u, "://"):
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDatabase, u[:strings.Index(u, "://")])
	default:
		return OpenSQLite(u)
	}
}
