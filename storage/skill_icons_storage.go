package storage

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/folio-cms/folio/storage/model"
)

// SkillIconsStorage provides CRUD access to SkillIcon records.
type SkillIconsStorage struct {
	db *gorm.DB
}

const errSkillIconNotFound = model.NotFoundError("Skill icon not found")

// List returns all skill icons in insertion order
func (s *SkillIconsStorage) List() ([]model.SkillIcon, error) {
	items := []model.SkillIcon{}
	if err := s.db.Order("id").Find(&items).Error; err != nil {
		return nil, errors.Wrap(err, "skill_icons: list failed")
	}
	return items, nil
}

// Create stores a new skill icon; the passed ID is ignored
func (s *SkillIconsStorage) Create(icon model.SkillIcon) (*model.SkillIcon, error) {
	if err := icon.Validate(); err != nil {
		return nil, err
	}
	icon.ID = 0
	if err := s.db.Create(&icon).Error; err != nil {
		return nil, errors.Wrap(err, "skill_icons: create failed")
	}
	return &icon, nil
}

// Get returns the skill icon with the passed id
func (s *SkillIconsStorage) Get(ident string) (*model.SkillIcon, error) {
	var item model.SkillIcon
	if err := findByID(s.db, ident, &item, errSkillIconNotFound); err != nil {
		return nil, err
	}
	return &item, nil
}

// Update replaces the name and icon of an existing skill icon
func (s *SkillIconsStorage) Update(ident string, update model.SkillIcon) (*model.SkillIcon, error) {
	item, err := s.Get(ident)
	if err != nil {
		return nil, err
	}
	if err = update.Validate(); err != nil {
		return nil, err
	}
	item.SkillName = update.SkillName
	item.IconURL = update.IconURL
	if err = s.db.Save(item).Error; err != nil {
		return nil, errors.Wrap(err, "skill_icons: update failed")
	}
	return item, nil
}

// Delete removes the skill icon with the passed id
func (s *SkillIconsStorage) Delete(ident string) error {
	item, err := s.Get(ident)
	if err != nil {
		return err
	}
	if err = s.db.Delete(item).Error; err != nil {
		return errors.Wrap(err, "skill_icons: delete failed")
	}
	return nil
}
