package sqlite

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	interfaces "github.com/Miguelburitica/accounts-project/internal/interfaces"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Blob is one persisted state value.
type Blob struct {
	Key       string `gorm:"primaryKey"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}

func (Blob) TableName() string { return "ledger_state" }

type SQLiteStateStore struct {
	db *gorm.DB
}

// Open creates the database file (and its directory) if needed and migrates
// the state table.
func Open(path string) (*SQLiteStateStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	_, _ = sqlDB.Exec("PRAGMA journal_mode = WAL;")

	if err := db.AutoMigrate(&Blob{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &SQLiteStateStore{db: db}, nil
}

func (s *SQLiteStateStore) Get(ctx context.Context, key string) (string, bool, error) {
	var blob Blob
	err := s.db.WithContext(ctx).First(&blob, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return blob.Value, true, nil
}

func (s *SQLiteStateStore) Set(ctx context.Context, key, value string) error {
	return s.db.WithContext(ctx).Save(&Blob{Key: key, Value: value}).Error
}

func (s *SQLiteStateStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

var _ interfaces.StateStore = (*SQLiteStateStore)(nil)
