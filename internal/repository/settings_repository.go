package repository

import (
	"errors"

	"github.com/daontrade/exportdesk/internal/entity"
	"gorm.io/gorm"
)

// settingsRowID is the fixed primary key of the singleton row.
const settingsRowID = 1

type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get returns the singleton settings row, zero-valued when the row
// has never been saved.
func (r *SettingsRepository) Get() (*entity.CompanySettings, error) {
	var s entity.CompanySettings
	err := r.db.Where("id = ?", settingsRowID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.CompanySettings{ID: settingsRowID}, nil
	}
	return &s, err
}

// Upsert writes the singleton row, creating it on first save.
func (r *SettingsRepository) Upsert(s *entity.CompanySettings) error {
	s.ID = settingsRowID
	return r.db.Save(s).Error
}
