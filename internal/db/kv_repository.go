package db

import (
	"errors"
	"time"

	"github.com/petalhq/petal/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type KVRepository struct {
	database *gorm.DB
}

func NewKVRepository(database *gorm.DB) *KVRepository {
	return &KVRepository{database: database}
}

// Get returns the stored value for key. The second result reports presence;
// a missing key is not an error.
func (repo *KVRepository) Get(key string) (string, bool, error) {
	entry := models.KVEntry{}
	err := repo.database.Where("key = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return entry.Value, true, nil
}

func (repo *KVRepository) Set(key string, value string) error {
	entry := models.KVEntry{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	}
	return repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

func (repo *KVRepository) Delete(key string) error {
	return repo.database.Where("key = ?", key).Delete(&models.KVEntry{}).Error
}

// Clear removes every stored entry. Used by the clear-all-data operation.
func (repo *KVRepository) Clear() error {
	return repo.database.Where("1 = 1").Delete(&models.KVEntry{}).Error
}
