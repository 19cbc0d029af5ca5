package storage

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/folio-cms/folio/storage/model"
)

// SiteSettingsStorage provides access to the SiteSettings records.
type SiteSettingsStorage struct {
	db *gorm.DB
}

const errSettingsNotFound = model.NotFoundError("Settings not found")

// Current returns the first stored settings row
func (s *SiteSettingsStorage) Current() (*model.SiteSettings, error) {
	var item model.SiteSettings
	if err := s.db.Order("id").First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errSettingsNotFound
		}
		return nil, errors.Wrap(err, "site_settings: get failed")
	}
	return &item, nil
}

// Create stores a new settings row; the passed ID is ignored
func (s *SiteSettingsStorage) Create(settings model.SiteSettings) (*model.SiteSettings, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	settings.ID = 0
	if err := s.db.Create(&settings).Error; err != nil {
		return nil, errors.Wrap(err, "site_settings: create failed")
	}
	return &settings, nil
}

// Update replaces all attributes of an existing settings row
func (s *SiteSettingsStorage) Update(ident string, update model.SiteSettings) (*model.SiteSettings, error) {
	var item model.SiteSettings
	if err := findByID(s.db, ident, &item, errSettingsNotFound); err != nil {
		return nil, err
	}
	if err := update.Validate(); err != nil {
		return nil, err
	}
	update.ID = item.ID
	update.CreatedAt = item.CreatedAt
	if err := s.db.Save(&update).Error; err != nil {
		return nil, errors.Wrap(err, "site_settings: update failed")
	}
	return &update, nil
}
