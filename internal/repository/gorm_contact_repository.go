package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/contactform/backend/internal/model"
)

// GormContactRepository stores messages through gorm. The server uses it with
// a local SQLite file.
type GormContactRepository struct {
	db *gorm.DB
}

var _ ContactRepository = (*GormContactRepository)(nil)

// OpenSQLite opens (creating if needed) the SQLite database at path.
func OpenSQLite(path string) (*GormContactRepository, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty sqlite path", ErrUnsupportedDatabase)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, storageErr("mkdir", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path+"?_busy_timeout=5000&_foreign_keys=on"), &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, storageErr("open", err)
	}
	return NewGormContactRepository(db), nil
}

// NewGormContactRepository wraps an already opened gorm handle.
func NewGormContactRepository(db *gorm.DB) *GormContactRepository {
	return &GormContactRepository{db: db}
}

// Insert creates the row inside a single statement. ID and CreatedAt supplied
// by the caller are discarded so the store alone assigns them.
func (r *GormContactRepository) Insert(ctx context.Context, msg *model.ContactMessage) error {
	msg.ID = 0
	msg.CreatedAt = time.Time{}
	if err := r.db.WithContext(ctx).Create(msg).Error; err != nil {
		return storageErr("insert", err)
	}
	return nil
}

func (r *GormContactRepository) Migrate(ctx context.Context) error {
	return storageErr("migrate", r.db.WithContext(ctx).AutoMigrate(&model.ContactMessage{}))
}

func (r *GormContactRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (r *GormContactRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
