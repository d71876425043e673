package store

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Record is one persisted key-value row.
type Record struct {
	Key       string         `gorm:"primaryKey;type:text"`
	Value     datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time
}

func (Record) TableName() string { return "kv_records" }

// GormStore backs the KV contract with a single gorm table.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Get(key string) ([]byte, bool, error) {
	var rec Record
	err := s.db.First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("kv get %q: %w", key, err)
	}
	return []byte(rec.Value), true, nil
}

func (s *GormStore) Set(key string, value []byte) error {
	rec := Record{Key: key, Value: datatypes.JSON(value), UpdatedAt: time.Now()}
	err := s.db.Save(&rec).Error
	if err != nil {
		return fmt.Errorf("kv set %q: %w", key, err)
	}
	return nil
}

func (s *GormStore) Delete(key string) error {
	err := s.db.Delete(&Record{}, "key = ?", key).Error
	if err != nil {
		return fmt.Errorf("kv delete %q: %w", key, err)
	}
	return nil
}

func (s *GormStore) Keys(prefix string) ([]string, error) {
	var keys []string
	err := s.db.Model(&Record{}).
		Where("key LIKE ?", prefix+"%").
		Pluck("key", &keys).Error
	if err != nil {
		return nil, fmt.Errorf("kv keys %q: %w", prefix, err)
	}
	return keys, nil
}
