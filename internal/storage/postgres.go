package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CollectionRecord is one whole collection serialized as a JSON document.
type CollectionRecord struct {
	Name      string         `gorm:"primaryKey;size:64" json:"name"`
	Data      datatypes.JSON `gorm:"type:jsonb" json:"data"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (CollectionRecord) TableName() string { return "collections" }

// PostgresStore persists collections one row each, payload in a jsonb column.
type PostgresStore struct {
	db *gorm.DB
}

func NewPostgresStore(db *gorm.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Get(ctx context.Context, collection string) ([]byte, error) {
	var rec CollectionRecord
	err := s.db.WithContext(ctx).First(&rec, "name = ?", collection).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load collection %q: %w", collection, err)
	}
	return []byte(rec.Data), nil
}

func (s *PostgresStore) Put(ctx context.Context, collection string, data []byte) error {
	rec := CollectionRecord{
		Name: collection,
		Data: datatypes.JSON(data),
	}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
		}).
		Create(&rec).Error
	if err != nil {
		return fmt.Errorf("store collection %q: %w", collection, err)
	}
	return nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
