package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"bizhub-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore persists state records in Postgres, one row per
// (owner, key). This is the server-side analog of the browser storage
// the frontend keeps its carts in.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Load(ctx context.Context, owner, key string, dest interface{}) error {
	ownerUUID, err := uuid.Parse(owner)
	if err != nil {
		return err
	}

	var record models.StateRecord
	err = s.db.WithContext(ctx).
		Where("owner_id = ? AND key = ?", ownerUUID, key).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := json.Unmarshal([]byte(record.Value), dest); err != nil {
		return fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return nil
}

func (s *GormStore) Save(ctx context.Context, owner, key string, value interface{}) error {
	ownerUUID, err := uuid.Parse(owner)
	if err != nil {
		return err
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	record := models.StateRecord{
		OwnerID: ownerUUID,
		Key:     key,
		Value:   string(data),
	}

	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner_id"}, {Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&record).Error
}

func (s *GormStore) Delete(ctx context.Context, owner, key string) error {
	ownerUUID, err := uuid.Parse(owner)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).
		Where("owner_id = ? AND key = ?", ownerUUID, key).
		Delete(&models.StateRecord{}).Error
}
