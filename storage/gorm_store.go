package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/abreai/abreai-api/utils"
)

// StateEntry is one storage key and its serialized collection. Keeping the
// whole collection in a single jsonb value preserves the store's
// key-per-container layout on Postgres.
type StateEntry struct {
	Key   string `gorm:"primaryKey"`
	Value string `gorm:"type:jsonb"`
}

// GormStore persists state entries in a Postgres table via gorm
type GormStore struct {
	db *gorm.DB
}

// NewGormStore migrates the state table and returns the store
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&StateEntry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate state table: %v", err)
	}
	return &GormStore{db: db}, nil
}

// Get decodes the collection stored under key. Missing rows and corrupt
// values both degrade to ErrNotFound; corruption is logged.
func (s *GormStore) Get(key string, dest interface{}) error {
	var entry StateEntry
	if err := s.db.First(&entry, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		utils.LogError("Failed to read state for key %s: %v", key, err)
		return ErrNotFound
	}
	if err := json.Unmarshal([]byte(entry.Value), dest); err != nil {
		utils.LogError("Corrupt state for key %s, falling back to empty: %v", key, err)
		return ErrNotFound
	}
	return nil
}

// Put serializes the value and upserts the key's row
func (s *GormStore) Put(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize state for key %s: %v", key, err)
	}
	entry := StateEntry{Key: key, Value: string(data)}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("failed to store state for key %s: %v", key, err)
	}
	return nil
}

// Delete removes the key's row if present
func (s *GormStore) Delete(key string) error {
	if err := s.db.Delete(&StateEntry{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("failed to delete state for key %s: %v", key, err)
	}
	return nil
}
