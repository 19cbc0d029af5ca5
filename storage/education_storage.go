package storage

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/folio-cms/folio/storage/model"
)

// EducationStorage provides CRUD access to Education records.
type EducationStorage struct {
	db *gorm.DB
}

const errEducationNotFound = model.NotFoundError("Education not found")

// List returns all education entries in display order
func (s *EducationStorage) List() ([]model.Education, error) {
	items := []model.Education{}
	if err := s.db.Clauses(displayOrder).Find(&items).Error; err != nil {
		return nil, errors.Wrap(err, "education: list failed")
	}
	return items, nil
}

// Create stores a new education entry; the passed ID is ignored
func (s *EducationStorage) Create(entry model.Education) (*model.Education, error) {
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	entry.ID = 0
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, errors.Wrap(err, "education: create failed")
	}
	return &entry, nil
}

// Get returns the education entry with the passed id
func (s *EducationStorage) Get(ident string) (*model.Education, error) {
	var item model.Education
	if err := findByID(s.db, ident, &item, errEducationNotFound); err != nil {
		return nil, err
	}
	return &item, nil
}

// Update replaces all attributes of an existing education entry
func (s *EducationStorage) Update(ident string, update model.Education) (*model.Education, error) {
	item, err := s.Get(ident)
	if err != nil {
		return nil, err
	}
	if err = update.Validate(); err != nil {
		return nil, err
	}
	update.ID = item.ID
	update.CreatedAt = item.CreatedAt
	if err = s.db.Save(&update).Error; err != nil {
		return nil, errors.Wrap(err, "education: update failed")
	}
	return &update, nil
}

// Delete removes the education entry with the passed id
func (s *EducationStorage) Delete(ident string) error {
	item, err := s.Get(ident)
	if err != nil {
		return err
	}
	if err = s.db.Delete(item).Error; err != nil {
		return errors.Wrap(err, "education: delete failed")
	}
	return nil
}
